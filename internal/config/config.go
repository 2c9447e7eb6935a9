// Package config loads interpreter settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/fconsole/pkg/console"
)

// Environment overrides, applied after the file.
const (
	EnvMaxLine    = "FCONSOLE_MAX_LINE"
	EnvStackDepth = "FCONSOLE_STACK_DEPTH"
	EnvWordBits   = "FCONSOLE_WORD_BITS"
	EnvWantHelp   = "FCONSOLE_WANT_HELP"
	EnvNewline    = "FCONSOLE_NEWLINE"
	EnvLogLevel   = "FCONSOLE_LOG_LEVEL"
)

// Upper bounds accepted from configuration.
const (
	MaxLineLimit    = 1024
	StackDepthLimit = 256
)

// File mirrors the YAML layout. Pointers tell an absent key from a zero one.
type File struct {
	MaxLine    *int    `mapstructure:"max_line"`
	StackDepth *int    `mapstructure:"stack_depth"`
	WordBits   *int    `mapstructure:"word_bits"`
	WantHelp   *bool   `mapstructure:"want_help"`
	Newline    *string `mapstructure:"newline"`
	LogLevel   *string `mapstructure:"log_level"`
	Prompt     *string `mapstructure:"prompt"`
}

// Settings is the resolved configuration.
type Settings struct {
	Console  console.Config
	LogLevel string
	Prompt   string
}

// Defaults returns the settings used when no file or variable is present.
func Defaults() Settings {
	return Settings{
		Console:  console.DefaultConfig(),
		LogLevel: "info",
		Prompt:   ">",
	}
}

// Load reads path (if not empty and present), applies environment
// overrides and validates the result.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return s, fmt.Errorf("read config: %w", err)
		default:
			if err := s.apply(data); err != nil {
				return s, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	if err := s.applyEnv(os.LookupEnv); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Parse decodes YAML data on top of the defaults and validates it.
func Parse(data []byte) (Settings, error) {
	s := Defaults()
	if err := s.apply(data); err != nil {
		return s, err
	}
	return s, s.Validate()
}

func (s *Settings) apply(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if raw == nil {
		return nil
	}

	var f File
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &f,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return s.merge(f)
}

func (s *Settings) merge(f File) error {
	if f.MaxLine != nil {
		s.Console.MaxLine = *f.MaxLine
	}
	if f.StackDepth != nil {
		s.Console.StackDepth = *f.StackDepth
	}
	if f.WordBits != nil {
		s.Console.WordBits = *f.WordBits
	}
	if f.WantHelp != nil {
		s.Console.WantHelp = *f.WantHelp
	}
	if f.Newline != nil {
		nl, err := ParseNewline(*f.Newline)
		if err != nil {
			return &ValidationError{Key: "newline", Reason: err.Error(), Value: *f.Newline}
		}
		s.Console.Newline = nl
	}
	if f.LogLevel != nil {
		s.LogLevel = *f.LogLevel
	}
	if f.Prompt != nil {
		s.Prompt = *f.Prompt
	}
	return nil
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		env string
		dst *int
	}{
		{EnvMaxLine, &s.Console.MaxLine},
		{EnvStackDepth, &s.Console.StackDepth},
		{EnvWordBits, &s.Console.WordBits},
	}
	for _, v := range ints {
		val, ok := lookup(v.env)
		if !ok || val == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return &ValidationError{Key: v.env, Reason: "not an integer", Value: val}
		}
		*v.dst = n
	}

	if val, ok := lookup(EnvWantHelp); ok && val != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return &ValidationError{Key: EnvWantHelp, Reason: "not a boolean", Value: val}
		}
		s.Console.WantHelp = b
	}
	if val, ok := lookup(EnvNewline); ok && val != "" {
		nl, err := ParseNewline(val)
		if err != nil {
			return &ValidationError{Key: EnvNewline, Reason: err.Error(), Value: val}
		}
		s.Console.Newline = nl
	}
	if val, ok := lookup(EnvLogLevel); ok && val != "" {
		s.LogLevel = val
	}
	return nil
}

// Validate checks every bound and reports all failures at once.
func (s Settings) Validate() error {
	var errs []error
	c := s.Console
	if c.MaxLine < 1 || c.MaxLine > MaxLineLimit {
		errs = append(errs, &ValidationError{Key: "max_line", Reason: fmt.Sprintf("must be in 1..%d", MaxLineLimit), Value: c.MaxLine})
	}
	if c.StackDepth < 1 || c.StackDepth > StackDepthLimit {
		errs = append(errs, &ValidationError{Key: "stack_depth", Reason: fmt.Sprintf("must be in 1..%d", StackDepthLimit), Value: c.StackDepth})
	}
	switch c.WordBits {
	case 8, 16, 32, 64:
	default:
		errs = append(errs, &ValidationError{Key: "word_bits", Reason: "must be 8, 16, 32 or 64", Value: c.WordBits})
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return &AggregateError{Errors: errs}
}

// ParseNewline accepts "lf", "cr", an escape such as `\n`, or a single
// character.
func ParseNewline(s string) (byte, error) {
	switch strings.ToLower(s) {
	case "lf", `\n`, "\n":
		return '\n', nil
	case "cr", `\r`, "\r":
		return '\r', nil
	}
	if len(s) == 1 {
		return s[0], nil
	}
	return 0, fmt.Errorf("newline must be lf, cr or a single character")
}
