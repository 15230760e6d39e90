package query

import (
	"context"

	"github.com/guykh/hebdate/pkg/dateparse"
)

// Converter is the conversion service surface the engine needs.
// *hebcal.Client satisfies it.
type Converter interface {
	ToGregorian(ctx context.Context, d dateparse.HebrewDate) (dateparse.GregorianDate, error)
	ToHebrew(ctx context.Context, d dateparse.GregorianDate) (dateparse.HebrewDate, error)
}

// direction is one conversion strategy: parse the query in its input
// calendar, then convert it through the service.
type direction interface {
	// Direction returns the identifier used in matches and outcomes.
	Direction() Direction

	// Run attempts the conversion. parsed is false when the query is not
	// a date in this direction's input calendar; err is set when parsing
	// succeeded but the conversion did not.
	Run(ctx context.Context, query string) (match *Match, parsed bool, err error)
}

type gregorianToHebrew struct {
	conv Converter
}

func (gregorianToHebrew) Direction() Direction { return DirectionGregorianToHebrew }

func (d gregorianToHebrew) Run(ctx context.Context, query string) (*Match, bool, error) {
	parsed, ok := dateparse.Gregorian(query)
	if !ok {
		return nil, false, nil
	}
	converted, err := d.conv.ToHebrew(ctx, parsed)
	if err != nil {
		return nil, true, err
	}
	return &Match{
		Direction: DirectionGregorianToHebrew,
		Input:     parsed.String(),
		Converted: converted.String(),
		Gregorian: &parsed,
		Hebrew:    &converted,
	}, true, nil
}

type hebrewToGregorian struct {
	conv Converter
}

func (hebrewToGregorian) Direction() Direction { return DirectionHebrewToGregorian }

func (d hebrewToGregorian) Run(ctx context.Context, query string) (*Match, bool, error) {
	parsed, ok := dateparse.Hebrew(query)
	if !ok {
		return nil, false, nil
	}
	converted, err := d.conv.ToGregorian(ctx, parsed)
	if err != nil {
		return nil, true, err
	}
	return &Match{
		Direction: DirectionHebrewToGregorian,
		Input:     parsed.String(),
		Converted: converted.String(),
		Hebrew:    &parsed,
		Gregorian: &converted,
	}, true, nil
}
