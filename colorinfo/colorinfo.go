// Package colorinfo describes a single color in the HCT, CIE and OkLCh color spaces.
package colorinfo

import (
	"cogentcore.org/core/colors/cam/hct"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mcuc-cli/mcuc/argb"
	"github.com/mcuc-cli/mcuc/util"
	"github.com/samber/mo"
)

// HCT holds hue (degrees), chroma and tone (0-100), rounded to two decimals.
type HCT struct {
	Hue    float64 `json:"hue" yaml:"hue"`
	Chroma float64 `json:"chroma" yaml:"chroma"`
	Tone   float64 `json:"tone" yaml:"tone"`
}

// Lab is a CIE L*a*b* (D65) triple with L* on a 0-100 scale.
type Lab struct {
	L float64 `json:"l" yaml:"l"`
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
}

// LCh is a lightness, chroma, hue triple.
type LCh struct {
	L float64 `json:"l" yaml:"l"`
	C float64 `json:"c" yaml:"c"`
	H float64 `json:"h" yaml:"h"`
}

// Extended holds the additional color spaces shown with --extended.
type Extended struct {
	Lab       Lab     `json:"lab" yaml:"lab"`
	LCh       LCh     `json:"lch" yaml:"lch"`
	OkLCh     LCh     `json:"oklch" yaml:"oklch"`
	Luminance float64 `json:"luminance" yaml:"luminance"`
}

// Distance is the CIEDE2000 color difference to another color.
type Distance struct {
	Color  string  `json:"color" yaml:"color"`
	DeltaE float64 `json:"deltaE" yaml:"deltaE"`
}

// Info describes a color.
type Info struct {
	Hex      string    `json:"hex" yaml:"hex"`
	HCT      HCT       `json:"hct" yaml:"hct"`
	Extended *Extended `json:"extended,omitempty" yaml:"extended,omitempty"`
	Distance *Distance `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// Options select the optional parts of Info.
type Options struct {
	Extended bool
	Distance mo.Option[argb.ARGB]
}

func colorfulOf(c argb.ARGB) colorful.Color {
	r, g, b := c.Channels()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Describe computes the info of c.
func Describe(c argb.ARGB, opts Options) Info {
	h := hct.FromColor(c.RGBA())
	info := Info{
		Hex: c.Hex(),
		HCT: HCT{
			Hue:    util.Round(float64(h.Hue), 2),
			Chroma: util.Round(float64(h.Chroma), 2),
			Tone:   util.Round(float64(h.Tone), 2),
		},
	}

	if opts.Extended {
		info.Extended = extended(c)
	}

	if other, ok := opts.Distance.Get(); ok {
		info.Distance = &Distance{
			Color:  other.Hex(),
			DeltaE: DeltaE(c, other),
		}
	}

	return info
}

// go-colorful works with L in [0, 1]; values are scaled to the usual 0-100 range.
func extended(c argb.ARGB) *Extended {
	col := colorfulOf(c)
	l, a, b := col.Lab()
	hue, chroma, light := col.Hcl()
	okL, okC, okH := col.OkLch()

	return &Extended{
		Lab: Lab{L: util.Round(l*100, 2), A: util.Round(a*100, 2), B: util.Round(b*100, 2)},
		LCh: LCh{L: util.Round(light*100, 2), C: util.Round(chroma*100, 2), H: util.Round(hue, 2)},
		OkLCh: LCh{
			L: util.Round(okL, 4),
			C: util.Round(okC, 4),
			H: util.Round(okH, 2),
		},
		Luminance: util.Round(argb.RelativeLuminance(c), 4),
	}
}

// DeltaE returns the CIEDE2000 difference between two colors on the 0-100 scale.
func DeltaE(a, b argb.ARGB) float64 {
	return util.Round(colorfulOf(a).DistanceCIEDE2000(colorfulOf(b))*100, 2)
}
