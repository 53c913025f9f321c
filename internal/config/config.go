// Package config loads gwtgen.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/chriserin/gwtgen/internal/codegen"
)

// FileName is the config file looked up in the working directory.
const FileName = "gwtgen.toml"

type Config struct {
	Output   OutputConfig   `toml:"output"`
	Tracking TrackingConfig `toml:"tracking"`
	Log      LogConfig      `toml:"log"`
}

type OutputConfig struct {
	Indent                string   `toml:"indent"`
	Placeholder           string   `toml:"placeholder"`
	ClassSuffix           string   `toml:"class_suffix"`
	BaseClass             string   `toml:"base_class"`
	TestAnnotation        string   `toml:"test_annotation"`
	DescriptionAnnotation string   `toml:"description_annotation"`
	Continuations         []string `toml:"continuations"`
	Extension             string   `toml:"extension"`
}

type TrackingConfig struct {
	Database string `toml:"database"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default is the configuration used when no file is present.
func Default() Config {
	opts := codegen.DefaultOptions()
	return Config{
		Output: OutputConfig{
			Indent:                opts.Indent,
			Placeholder:           string(opts.Placeholder),
			ClassSuffix:           opts.ClassSuffix,
			BaseClass:             opts.BaseClass,
			TestAnnotation:        opts.TestAnnotation,
			DescriptionAnnotation: opts.DescriptionAnnotation,
			Continuations:         opts.Continuations,
			Extension:             ".java",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load decodes path over the defaults. When optional is set a missing file
// yields the defaults.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if _, err := cfg.Options(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if !strings.HasPrefix(cfg.Output.Extension, ".") {
		return Config{}, fmt.Errorf("%s: [output].extension must start with a dot", path)
	}
	return cfg, nil
}

// Options converts the [output] table into generator options.
func (c Config) Options() (codegen.Options, error) {
	if utf8.RuneCountInString(c.Output.Placeholder) != 1 {
		return codegen.Options{}, fmt.Errorf("[output].placeholder must be a single character, got %q", c.Output.Placeholder)
	}
	placeholder, _ := utf8.DecodeRuneInString(c.Output.Placeholder)
	opts := codegen.Options{
		Indent:                c.Output.Indent,
		Placeholder:           placeholder,
		ClassSuffix:           c.Output.ClassSuffix,
		BaseClass:             c.Output.BaseClass,
		TestAnnotation:        c.Output.TestAnnotation,
		DescriptionAnnotation: c.Output.DescriptionAnnotation,
		Continuations:         c.Output.Continuations,
	}
	if err := opts.Validate(); err != nil {
		return codegen.Options{}, fmt.Errorf("[output]: %w", err)
	}
	return opts, nil
}

// Write encodes c as TOML to path.
func Write(path string, c Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
