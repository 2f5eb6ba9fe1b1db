package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk TOML form of a Theme: four tables, one per
// prompt segment, each holding a single color name.
//
//	[shell]
//	color = "brightgreen"
//	[path]
//	color = "brightblue"
//	[time]
//	color = "brightyellow"
//	[symbol]
//	color = "brightmagenta"
type Config struct {
	Shell  Section `toml:"shell"`
	Path   Section `toml:"path"`
	Time   Section `toml:"time"`
	Symbol Section `toml:"symbol"`
}

// Section is a single segment's configuration table.
type Section struct {
	Color string `toml:"color"`
}

// Load reads and parses a theme file. A read or parse failure returns
// the error and a zero Theme; callers keep whatever theme they already
// have, so a broken file never corrupts in-memory state.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Theme{}, fmt.Errorf("parse theme file %s: %w", path, err)
	}
	return cfg.Theme(), nil
}

// Theme converts the parsed config into a Theme. A missing table (empty
// color string) keeps that segment's default color; an unrecognized
// color name resolves to Fallback via ParseColor.
func (c Config) Theme() Theme {
	def := Default()
	return Theme{
		Shell:  colorOrDefault(c.Shell.Color, def.Shell),
		Path:   colorOrDefault(c.Path.Color, def.Path),
		Time:   colorOrDefault(c.Time.Color, def.Time),
		Symbol: colorOrDefault(c.Symbol.Color, def.Symbol),
	}
}

func colorOrDefault(name string, def Color) Color {
	if strings.TrimSpace(name) == "" {
		return def
	}
	return ParseColor(name)
}
