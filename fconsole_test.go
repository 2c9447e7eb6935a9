package fconsole_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fconsole"
	"github.com/aretw0/fconsole/pkg/console"
	"github.com/aretw0/fconsole/pkg/domain"
	"github.com/aretw0/fconsole/pkg/observability"
	"github.com/aretw0/fconsole/pkg/runner"
)

func TestNew_InvalidConfig(t *testing.T) {
	cfg := console.DefaultConfig()
	cfg.WordBits = 48
	_, err := fconsole.New(cfg)
	assert.ErrorIs(t, err, console.ErrInvalidConfig)
}

func TestEngine_HooksAndMetrics(t *testing.T) {
	m := observability.NewMetrics()
	var lines int
	eng, err := fconsole.New(console.DefaultConfig(),
		fconsole.WithReporter(runner.NewJSONReporter(&bytes.Buffer{})),
		fconsole.WithMetrics(m),
		fconsole.WithHooks(domain.Hooks{OnLine: func(*domain.LineEvent) { lines++ }}),
	)
	require.NoError(t, err)

	eng.Eval("1 2")
	eng.Eval("NOPE")

	assert.Equal(t, 2, lines)
	assert.Equal(t, float64(3), testutil.ToFloat64(m.Tokens))
}

func TestEngine_Recognisers(t *testing.T) {
	eng, err := fconsole.New(console.DefaultConfig(),
		fconsole.WithReporter(runner.NewJSONReporter(&bytes.Buffer{})),
		fconsole.WithRecognisers(console.RecogniseHex),
	)
	require.NoError(t, err)

	rc, _ := eng.Eval("$ff")
	assert.Equal(t, domain.StatusOK, rc)
	rc, _ = eng.Eval("12")
	assert.Equal(t, domain.ErrBadCommand, rc)
}

func TestEngine_RunSanitized(t *testing.T) {
	var out bytes.Buffer
	eng, err := fconsole.New(console.DefaultConfig(),
		fconsole.WithReporter(runner.NewJSONReporter(&out)),
		fconsole.WithSanitizer(&runner.Sanitizer{Newline: '\n', MapCR: true}),
	)
	require.NoError(t, err)

	res, err := eng.Run(context.Background(), strings.NewReader("1\x1b[D 2\r"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Lines)
	assert.Equal(t, 2, eng.Console().Depth())
	assert.Contains(t, out.String(), `"line":"1 2"`)
}
