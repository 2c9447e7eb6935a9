package observability

import (
	"log/slog"

	"github.com/aretw0/fconsole/pkg/domain"
)

// Aggregate combines several hook sets into one. Callbacks run in the
// order the sets are given; nil callbacks are skipped.
func Aggregate(sets ...domain.Hooks) domain.Hooks {
	var tokens []func(*domain.TokenEvent)
	var lines []func(*domain.LineEvent)
	for _, h := range sets {
		if h.OnToken != nil {
			tokens = append(tokens, h.OnToken)
		}
		if h.OnLine != nil {
			lines = append(lines, h.OnLine)
		}
	}

	var out domain.Hooks
	if len(tokens) > 0 {
		out.OnToken = func(e *domain.TokenEvent) {
			for _, fn := range tokens {
				fn(e)
			}
		}
	}
	if len(lines) > 0 {
		out.OnLine = func(e *domain.LineEvent) {
			for _, fn := range lines {
				fn(e)
			}
		}
	}
	return out
}

// LogHooks logs every error line at warn level and every token at debug
// level. Signals such as a comment line are logged at debug level only.
func LogHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnToken: func(e *domain.TokenEvent) {
			logger.Debug("token", "token", e.Token, "status", int(e.Status), "depth", e.Depth)
		},
		OnLine: func(e *domain.LineEvent) {
			if e.Status.IsError() {
				logger.Warn("line failed",
					"token", e.Token,
					"status", int(e.Status),
					"error", domain.Describe(e.Status),
					"depth", e.Depth,
				)
				return
			}
			logger.Debug("line", "status", int(e.Status), "tokens", e.Tokens, "depth", e.Depth)
		},
	}
}
