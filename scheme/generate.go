package scheme

import (
	"fmt"
	"math/rand/v2"

	"cogentcore.org/core/colors/cam/hct"
	"cogentcore.org/core/colors/matcolor"
	"github.com/mcuc-cli/mcuc/argb"
	"github.com/samber/mo"
)

// PaletteTones are the tones emitted for each key palette in palette mode.
var PaletteTones = []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}

// Options tune theme generation.
type Options struct {
	// Hue, Chroma and Tone override the corresponding HCT component of the seed.
	Hue    mo.Option[float64]
	Chroma mo.Option[float64]
	Tone   mo.Option[float64]

	// Selection picks the variants to generate. The zero value generates both.
	Selection Selection
}

func (o Options) validate() error {
	check := func(name string, opt mo.Option[float64], max float64) error {
		if v, ok := opt.Get(); ok && (v < 0 || v > max) {
			return fmt.Errorf("%s override %v out of range [0, %v]", name, v, max)
		}
		return nil
	}

	if err := check("hue", o.Hue, 360); err != nil {
		return err
	}
	if err := check("chroma", o.Chroma, 150); err != nil {
		return err
	}
	return check("tone", o.Tone, 100)
}

// ApplyOverrides returns the seed with the HCT overrides of opts applied.
func ApplyOverrides(seed argb.ARGB, opts Options) argb.ARGB {
	if opts.Hue.IsAbsent() && opts.Chroma.IsAbsent() && opts.Tone.IsAbsent() {
		return seed
	}

	h := hct.FromColor(seed.RGBA())
	if v, ok := opts.Hue.Get(); ok {
		h.SetHue(float32(v))
	}
	if v, ok := opts.Chroma.Get(); ok {
		h.SetChroma(float32(v))
	}
	if v, ok := opts.Tone.Get(); ok {
		h.SetTone(float32(v))
	}
	return argb.FromColor(h.AsRGBA())
}

// palettes holds the key tonal palettes derived from one seed.
type palettes map[PaletteName]*matcolor.Tones

func newPalettes(seed argb.ARGB) palettes {
	key := matcolor.KeyFromPrimary(seed.RGBA())
	tones := func(c argb.ARGB) *matcolor.Tones {
		t := matcolor.NewTones(c.RGBA())
		return &t
	}

	return palettes{
		PalettePrimary:        tones(argb.FromColor(key.Primary)),
		PaletteSecondary:      tones(argb.FromColor(key.Secondary)),
		PaletteTertiary:       tones(argb.FromColor(key.Tertiary)),
		PaletteNeutral:        tones(argb.FromColor(key.Neutral)),
		PaletteNeutralVariant: tones(argb.FromColor(key.NeutralVariant)),
		PaletteError:          tones(argb.FromColor(key.Error)),
	}
}

func (p palettes) tone(name PaletteName, tone int) argb.ARGB {
	return argb.FromColor(p[name].AbsTone(tone))
}

// Generate builds a Material theme from a seed color. Every generated scheme
// contains all roles in canonical order.
func Generate(seed argb.ARGB, opts Options) (*Theme, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	p := newPalettes(ApplyOverrides(seed, opts))
	theme := NewTheme()
	for _, variant := range opts.Selection.Variants() {
		s := NewScheme(string(variant))
		for _, spec := range specs {
			s.Set(spec.Role, p.tone(spec.Palette, spec.Tone(variant)))
		}
		theme.Add(s)
	}

	return theme, nil
}

// Palette builds the key tonal palettes of a seed. Each palette becomes a scheme
// whose roles are named "tone<N>".
func Palette(seed argb.ARGB, opts Options) (*Theme, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	p := newPalettes(ApplyOverrides(seed, opts))
	theme := NewTheme()
	for _, name := range Palettes() {
		s := NewScheme(string(name))
		for _, tone := range PaletteTones {
			s.Set(ToneRole(tone), p.tone(name, tone))
		}
		theme.Add(s)
	}

	return theme, nil
}

// ToneRole names the palette slot of a tone.
func ToneRole(tone int) Role {
	return Role(fmt.Sprintf("tone%d", tone))
}

// Random returns a uniformly distributed opaque color.
func Random(r *rand.Rand) argb.ARGB {
	v := r.Uint32()
	return argb.FromRGB(uint8(v>>16), uint8(v>>8), uint8(v))
}
