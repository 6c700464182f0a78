// Package contrast checks WCAG contrast between pairs of hex colors.
package contrast

import (
	"fmt"

	"github.com/mcuc-cli/mcuc/argb"
	"github.com/mcuc-cli/mcuc/util"
)

// WCAG 2.x minimum ratios.
const (
	ThresholdAALarge = 3.0
	ThresholdAA      = 4.5
	ThresholdAAA     = 7.0
)

// Result is the contrast ratio of two colors, rounded to three decimals.
// The colors are echoed as they were given.
type Result struct {
	Ratio  float64 `json:"ratio" yaml:"ratio" jsonschema:"minimum=1,maximum=21"`
	ColorA string  `json:"colorA" yaml:"colorA"`
	ColorB string  `json:"colorB" yaml:"colorB"`
}

// Check computes the contrast ratio between two hex colors.
func Check(colorA, colorB string) (Result, error) {
	a, err := argb.Parse(colorA)
	if err != nil {
		return Result{}, err
	}

	b, err := argb.Parse(colorB)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Ratio:  util.Round(argb.ContrastRatio(a, b), 3),
		ColorA: colorA,
		ColorB: colorB,
	}, nil
}

// CheckAll checks one foreground against every background, in order.
func CheckAll(foreground string, backgrounds []string) ([]Result, error) {
	if len(backgrounds) == 0 {
		return nil, fmt.Errorf("no background colors to check %s against", foreground)
	}

	results := make([]Result, 0, len(backgrounds))
	for _, bg := range backgrounds {
		r, err := Check(foreground, bg)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Band is the outcome of a single WCAG requirement.
type Band string

const (
	Pass Band = "pass"
	Fail Band = "fail"
)

func bandOf(ratio, threshold float64) Band {
	if ratio >= threshold {
		return Pass
	}
	return Fail
}

// Levels reduces a result to its WCAG pass/fail bands.
type Levels struct {
	ColorA  string `json:"colorA" yaml:"colorA"`
	ColorB  string `json:"colorB" yaml:"colorB"`
	AALarge Band   `json:"aaLarge" yaml:"aaLarge" jsonschema:"enum=pass,enum=fail"`
	AA      Band   `json:"aa" yaml:"aa" jsonschema:"enum=pass,enum=fail"`
	AAA     Band   `json:"aaa" yaml:"aaa" jsonschema:"enum=pass,enum=fail"`
}

// Levels returns the WCAG bands of r: AA large text at 3.0, AA at 4.5 and AAA at 7.0.
func (r Result) Levels() Levels {
	return Levels{
		ColorA:  r.ColorA,
		ColorB:  r.ColorB,
		AALarge: bandOf(r.Ratio, ThresholdAALarge),
		AA:      bandOf(r.Ratio, ThresholdAA),
		AAA:     bandOf(r.Ratio, ThresholdAAA),
	}
}

// LevelsOf maps Levels over results.
func LevelsOf(results []Result) []Levels {
	levels := make([]Levels, len(results))
	for i, r := range results {
		levels[i] = r.Levels()
	}
	return levels
}
