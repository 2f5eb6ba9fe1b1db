package command

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"
)

// fakeCommand is a minimal Command for registry tests.
type fakeCommand struct {
	name    string
	aliases []string
	err     error
	calls   int
	gotArgs []string
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Description() string { return "a test command" }
func (f *fakeCommand) Usage() string       { return f.name }
func (f *fakeCommand) Aliases() []string   { return f.aliases }
func (f *fakeCommand) Execute(args []string) error {
	f.calls++
	f.gotArgs = args
	return f.err
}

func newTestRegistry(t *testing.T, stderr io.Writer, cmds ...Command) *Registry {
	t.Helper()
	r := NewRegistry(stderr)
	for _, c := range cmds {
		if err := r.Register(c); err != nil {
			t.Fatalf("failed to register %s: %v", c.Name(), err)
		}
	}
	return r
}

func TestRegister_DuplicateNameFails(t *testing.T) {
	r := newTestRegistry(t, io.Discard, &fakeCommand{name: "one"})
	if err := r.Register(&fakeCommand{name: "one"}); err == nil {
		t.Fatal("duplicate name should fail registration")
	}
}

func TestRegister_AliasClashes(t *testing.T) {
	r := newTestRegistry(t, io.Discard, &fakeCommand{name: "one", aliases: []string{"o"}})

	if err := r.Register(&fakeCommand{name: "o"}); err == nil {
		t.Error("command name equal to an existing alias should fail")
	}
	if err := r.Register(&fakeCommand{name: "two", aliases: []string{"o"}}); err == nil {
		t.Error("duplicate alias should fail")
	}
	if err := r.Register(&fakeCommand{name: "three", aliases: []string{"one"}}); err == nil {
		t.Error("alias equal to an existing command name should fail")
	}
}

func TestLookup_ExactCaseSensitive(t *testing.T) {
	r := newTestRegistry(t, io.Discard, &fakeCommand{name: "hello", aliases: []string{"hi"}})

	if _, ok := r.Lookup("hello"); !ok {
		t.Error("lookup of registered name should succeed")
	}
	if _, ok := r.Lookup("hi"); !ok {
		t.Error("lookup of alias should succeed")
	}
	for _, name := range []string{"Hello", "HELLO", "hell", "helloo"} {
		if _, ok := r.Lookup(name); ok {
			t.Errorf("lookup of %q should fail (exact, case-sensitive match only)", name)
		}
	}
}

func TestExecute_FoundAndNotFound(t *testing.T) {
	fake := &fakeCommand{name: "greet"}
	var stderr bytes.Buffer
	r := newTestRegistry(t, &stderr, fake)

	if !r.Execute("greet", []string{"a", "b"}) {
		t.Fatal("Execute of a registered command should report found")
	}
	if fake.calls != 1 || !reflect.DeepEqual(fake.gotArgs, []string{"a", "b"}) {
		t.Errorf("command invoked %d times with args %v", fake.calls, fake.gotArgs)
	}

	// Repeated lookups of the same unknown name stay not-found, with no
	// side effects.
	for i := 0; i < 3; i++ {
		if r.Execute("nope", nil) {
			t.Fatal("Execute of an unregistered name should report not found")
		}
	}
	if fake.calls != 1 {
		t.Errorf("unregistered dispatch had side effects: calls = %d", fake.calls)
	}
	if stderr.Len() != 0 {
		t.Errorf("not-found dispatch wrote output: %q", stderr.String())
	}
}

func TestExecute_PrintsCommandError(t *testing.T) {
	fake := &fakeCommand{name: "broken", err: errors.New("boom")}
	var stderr bytes.Buffer
	r := newTestRegistry(t, &stderr, fake)

	if !r.Execute("broken", nil) {
		t.Fatal("a failing built-in is still found")
	}
	got := stderr.String()
	if got != "gosh: broken: boom\n" {
		t.Errorf("error output = %q", got)
	}
}

func TestNames_Sorted(t *testing.T) {
	r := newTestRegistry(t, io.Discard,
		&fakeCommand{name: "zeta"},
		&fakeCommand{name: "alpha", aliases: []string{"a"}},
		&fakeCommand{name: "mid"},
	)

	want := []string{"alpha", "mid", "zeta"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v (canonical names only, sorted)", got, want)
	}
}
