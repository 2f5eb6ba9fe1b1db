package command

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gosh-shell/gosh/internal/prompt"
	"github.com/gosh-shell/gosh/internal/theme"
)

// chdirForTest changes into dir and restores the old working directory.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

// writeThemeFile writes a single-color theme file and returns its path.
func writeThemeFile(t *testing.T, dir, color string) string {
	t.Helper()
	path := filepath.Join(dir, "theme.toml")
	content := fmt.Sprintf("[shell]\ncolor = %q\n[time]\ncolor = %q\n", color, color)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}
	return path
}

func TestHello_PrintsGreeting(t *testing.T) {
	var out bytes.Buffer
	h := &Hello{Out: &out}

	if err := h.Execute(nil); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out.String() != Greeting+"\n" {
		t.Errorf("output = %q, want %q", out.String(), Greeting+"\n")
	}
}

func TestClear_EmitsControlSequence(t *testing.T) {
	var out bytes.Buffer
	c := &Clear{Out: &out}

	if err := c.Execute(nil); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out.String() != "\x1b[2J\x1b[H" {
		t.Errorf("output = %q, want clear+home sequence", out.String())
	}
}

func TestCd_ChangesDirectory(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "projects")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("failed to create target: %v", err)
	}
	chdirForTest(t, base)

	c := &Cd{}
	if err := c.Execute([]string{target}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if filepath.Base(wd) != "projects" {
		t.Errorf("working dir = %q, want to end in %q", wd, "projects")
	}
}

func TestCd_InvalidPathKeepsCwd(t *testing.T) {
	base := t.TempDir()
	chdirForTest(t, base)
	before, _ := os.Getwd()

	c := &Cd{}
	err := c.Execute([]string{"definitely-not-here"})
	if err == nil {
		t.Fatal("cd to a missing path should fail")
	}
	if !strings.Contains(err.Error(), "definitely-not-here") {
		t.Errorf("error %q should name the attempted path", err)
	}
	after, _ := os.Getwd()
	if after != before {
		t.Errorf("working dir changed on failure: %q -> %q", before, after)
	}
}

func TestCd_RequiresExactlyOneArg(t *testing.T) {
	c := &Cd{}
	for _, args := range [][]string{nil, {}, {"a", "b"}} {
		err := c.Execute(args)
		if err == nil || !strings.Contains(err.Error(), "usage: cd <path>") {
			t.Errorf("Execute(%v) error = %v, want usage error", args, err)
		}
	}
}

func TestTheme_ReloadSwapsPromptTheme(t *testing.T) {
	dir := t.TempDir()
	path := writeThemeFile(t, dir, "red")
	p := prompt.New(path, nil)

	writeThemeFile(t, dir, "brightyellow")

	var out bytes.Buffer
	cmd := &Theme{Out: &out, Prompt: p}
	if err := cmd.Execute([]string{"reload"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if p.Theme().Time != theme.BrightYellow {
		t.Errorf("time color after reload = %v, want BrightYellow", p.Theme().Time)
	}
	if !strings.Contains(out.String(), "theme reloaded") {
		t.Errorf("output = %q, want reload confirmation", out.String())
	}
}

func TestTheme_ReloadFailureKeepsTheme(t *testing.T) {
	dir := t.TempDir()
	path := writeThemeFile(t, dir, "red")
	p := prompt.New(path, nil)
	before := p.Theme()

	if err := os.WriteFile(path, []byte("[shell\ncolor="), 0644); err != nil {
		t.Fatalf("failed to corrupt theme file: %v", err)
	}

	cmd := &Theme{Out: new(bytes.Buffer), Prompt: p}
	err := cmd.Execute([]string{"reload"})
	if err == nil {
		t.Fatal("reload of a broken file should fail")
	}
	if !strings.Contains(err.Error(), "keeping current theme") {
		t.Errorf("error %q should say the prior theme is kept", err)
	}
	if p.Theme() != before {
		t.Errorf("theme changed after failed reload: %+v", p.Theme())
	}
}

func TestTheme_UnknownSubcommand(t *testing.T) {
	cmd := &Theme{Out: new(bytes.Buffer), Prompt: prompt.New(filepath.Join(t.TempDir(), "t.toml"), nil)}
	for _, args := range [][]string{nil, {"set"}, {"reload", "extra"}} {
		err := cmd.Execute(args)
		if err == nil || !strings.Contains(err.Error(), "usage: theme reload") {
			t.Errorf("Execute(%v) error = %v, want usage error", args, err)
		}
	}
}

func TestHelp_PlainSummaryListsAllCommands(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(filepath.Join(t.TempDir(), "t.toml"), nil)
	r, err := NewDefaultRegistry(p, &out, new(bytes.Buffer), true)
	if err != nil {
		t.Fatalf("NewDefaultRegistry() error: %v", err)
	}

	if !r.Execute("help", nil) {
		t.Fatal("help should be registered")
	}
	for _, name := range []string{"hello", "clear", "cd", "help", "theme"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help output missing command %q:\n%s", name, out.String())
		}
	}
}

func TestHelp_SingleCommandDetail(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(filepath.Join(t.TempDir(), "t.toml"), nil)
	r, err := NewDefaultRegistry(p, &out, new(bytes.Buffer), true)
	if err != nil {
		t.Fatalf("NewDefaultRegistry() error: %v", err)
	}

	r.Execute("help", []string{"cd"})
	if !strings.Contains(out.String(), "cd <path>") {
		t.Errorf("help cd output missing usage:\n%s", out.String())
	}
}

func TestHelp_UnknownCommandSuggests(t *testing.T) {
	p := prompt.New(filepath.Join(t.TempDir(), "t.toml"), nil)
	r, err := NewDefaultRegistry(p, new(bytes.Buffer), new(bytes.Buffer), true)
	if err != nil {
		t.Fatalf("NewDefaultRegistry() error: %v", err)
	}
	help, _ := r.Lookup("help")

	execErr := help.Execute([]string{"helo"})
	if execErr == nil {
		t.Fatal("help for an unknown command should fail")
	}
	if !strings.Contains(execErr.Error(), "hello") {
		t.Errorf("error %q should suggest %q", execErr, "hello")
	}
}

func TestDefaultRegistry_AliasesResolve(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(filepath.Join(t.TempDir(), "t.toml"), nil)
	r, err := NewDefaultRegistry(p, &out, new(bytes.Buffer), true)
	if err != nil {
		t.Fatalf("NewDefaultRegistry() error: %v", err)
	}

	if !r.Execute("cls", nil) {
		t.Error("alias cls should resolve to clear")
	}
	if !r.Execute("h", nil) {
		t.Error("alias h should resolve to help")
	}
}
