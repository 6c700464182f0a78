package format

import (
	"io"
	"os"
	"strconv"

	"github.com/mcuc-cli/mcuc/colorinfo"
	"github.com/mcuc-cli/mcuc/contrast"
	"github.com/samber/lo"
)

// ContrastData is the payload of a contrast check.
type ContrastData struct {
	// Results holds one result per checked pair.
	Results []contrast.Result
	// List renders Results as an array even when it holds a single result.
	List bool
	// WCAGOnly replaces ratios with pass/fail bands.
	WCAGOnly bool
}

func (d ContrastData) value() any {
	single := !d.List && len(d.Results) == 1
	switch {
	case d.WCAGOnly && single:
		return d.Results[0].Levels()
	case d.WCAGOnly:
		return contrast.LevelsOf(d.Results)
	case single:
		return d.Results[0]
	default:
		return d.Results
	}
}

func (d ContrastData) table() ([]string, [][]string) {
	if d.WCAGOnly {
		return []string{"Color A", "Color B", "AA large", "AA", "AAA"},
			lo.Map(contrast.LevelsOf(d.Results), func(l contrast.Levels, _ int) []string {
				return []string{l.ColorA, l.ColorB, string(l.AALarge), string(l.AA), string(l.AAA)}
			})
	}

	return []string{"Ratio", "Color A", "Color B"},
		lo.Map(d.Results, func(r contrast.Result, _ int) []string {
			return []string{formatFloat(r.Ratio), r.ColorA, r.ColorB}
		})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderData renders a fixed-shape value in one of DataSyntaxes.
func renderData(value any, headers []string, rows [][]string, syntax string, out io.Writer) string {
	s, ok := ParseSyntax(syntax)
	if !ok || !lo.Contains(DataSyntaxes(), s) {
		return Unsupported(syntax)
	}

	switch s {
	case JSON:
		return indentJSON(value)
	case YAML:
		return encodeYAML(value)
	default:
		if out == nil {
			out = os.Stdout
		}
		writeTable(out, headers, rows, -1)
		return ""
	}
}

// Contrast renders contrast results as json, yaml or a table printed to out.
func Contrast(data ContrastData, syntax string, out io.Writer) string {
	headers, rows := data.table()
	return renderData(data.value(), headers, rows, syntax, out)
}

// Info renders color info as json, yaml or a table printed to out.
func Info(info colorinfo.Info, syntax string, out io.Writer) string {
	rows := [][]string{
		{"hex", info.Hex},
		{"hct.hue", formatFloat(info.HCT.Hue)},
		{"hct.chroma", formatFloat(info.HCT.Chroma)},
		{"hct.tone", formatFloat(info.HCT.Tone)},
	}

	if e := info.Extended; e != nil {
		rows = append(rows,
			[]string{"lab", triple(e.Lab.L, e.Lab.A, e.Lab.B)},
			[]string{"lch", triple(e.LCh.L, e.LCh.C, e.LCh.H)},
			[]string{"oklch", triple(e.OkLCh.L, e.OkLCh.C, e.OkLCh.H)},
			[]string{"luminance", formatFloat(e.Luminance)},
		)
	}

	if d := info.Distance; d != nil {
		rows = append(rows,
			[]string{"distance.color", d.Color},
			[]string{"distance.deltaE", formatFloat(d.DeltaE)},
		)
	}

	return renderData(info, []string{"Field", "Value"}, rows, syntax, out)
}

func triple(a, b, c float64) string {
	return formatFloat(a) + " " + formatFloat(b) + " " + formatFloat(c)
}
