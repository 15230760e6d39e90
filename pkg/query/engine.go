// Package query turns raw launcher input into date conversions. Both
// calendar directions are tried against every query; an input that parses
// as two calendars produces two matches.
package query

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guykh/hebdate/internal/log"
)

// Engine runs queries through every conversion direction.
type Engine struct {
	directions []direction
	log        zerolog.Logger
}

// NewEngine creates an engine backed by the given converter.
func NewEngine(conv Converter) *Engine {
	return &Engine{
		directions: []direction{
			gregorianToHebrew{conv: conv},
			hebrewToGregorian{conv: conv},
		},
		log: log.WithComponent("query"),
	}
}

// Run parses the input in both calendars, independently, and attempts a
// conversion for every parse. Conversion failures never surface as errors;
// the direction yields no match and the outcome records the cause.
func (e *Engine) Run(ctx context.Context, input string) *Result {
	start := time.Now()

	trimmed := strings.TrimSpace(input)
	result := &Result{Query: trimmed}
	if trimmed == "" {
		result.Empty = true
		result.Duration = time.Since(start)
		return result
	}

	for _, dir := range e.directions {
		match, parsed, err := dir.Run(ctx, trimmed)
		outcome := Outcome{Direction: dir.Direction()}
		switch {
		case err != nil:
			e.log.Debug().
				Str("direction", string(dir.Direction())).
				Str("query", trimmed).
				Err(err).
				Msg("conversion failed")
			outcome.Status = OutcomeFailed
			outcome.Err = err
		case !parsed:
			e.log.Debug().
				Str("direction", string(dir.Direction())).
				Str("query", trimmed).
				Msg("no parse")
			outcome.Status = OutcomeNoParse
		default:
			e.log.Debug().
				Str("direction", string(dir.Direction())).
				Str("input", match.Input).
				Str("converted", match.Converted).
				Msg("converted")
			outcome.Status = OutcomeConverted
			result.Matches = append(result.Matches, match)
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.Duration = time.Since(start)
	return result
}
