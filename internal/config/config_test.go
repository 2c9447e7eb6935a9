package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fconsole.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
max_line: 80
stack_depth: "16"
word_bits: 16
want_help: false
newline: cr
log_level: debug
prompt: "ok>"
`), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 80, s.Console.MaxLine)
	assert.Equal(t, 16, s.Console.StackDepth, "weakly typed input accepts strings")
	assert.Equal(t, 16, s.Console.WordBits)
	assert.False(t, s.Console.WantHelp)
	assert.Equal(t, byte('\r'), s.Console.Newline)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "ok>", s.Prompt)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fconsole.yaml")
	require.NoError(t, os.WriteFile(path, []byte("word_bits: 16\n"), 0o600))

	t.Setenv(EnvWordBits, "64")
	t.Setenv(EnvStackDepth, "32")
	t.Setenv(EnvWantHelp, "false")
	t.Setenv(EnvNewline, "lf")
	t.Setenv(EnvLogLevel, "warn")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, s.Console.WordBits)
	assert.Equal(t, 32, s.Console.StackDepth)
	assert.False(t, s.Console.WantHelp)
	assert.Equal(t, byte('\n'), s.Console.Newline)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv(EnvMaxLine, "lots")

	_, err := Load("")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, EnvMaxLine, verr.Key)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("stack_size: 4\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		keys []string
	}{
		{"line too long", "max_line: 2048", []string{"max_line"}},
		{"line zero", "max_line: 0", []string{"max_line"}},
		{"stack too deep", "stack_depth: 512", []string{"stack_depth"}},
		{"odd word", "word_bits: 24", []string{"word_bits"}},
		{"several", "max_line: 0\nword_bits: 7", []string{"max_line", "word_bits"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)

			errs := ValidationErrors(err)
			if errs == nil {
				errs = []error{err}
			}
			require.Len(t, errs, len(tt.keys))
			for i, e := range errs {
				verr, ok := e.(*ValidationError)
				require.True(t, ok)
				assert.Equal(t, tt.keys[i], verr.Key)
			}
		})
	}
}

func TestParseNewline(t *testing.T) {
	tests := map[string]byte{"lf": '\n', "LF": '\n', `\n`: '\n', "cr": '\r', `\r`: '\r', ";": ';'}
	for in, want := range tests {
		got, err := ParseNewline(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseNewline("crlf")
	assert.Error(t, err)

	_, err = Parse([]byte("newline: crlf\n"))
	assert.Error(t, err)
}
