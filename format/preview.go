package format

import (
	"html/template"
	"strings"

	"github.com/mcuc-cli/mcuc/argb"
	"github.com/mcuc-cli/mcuc/scheme"
	"github.com/samber/lo"
)

// swatch is one colored block of the preview page.
type swatch struct {
	Label string
	Hex   string
	Style template.CSS
}

func newSwatch(label, hex string) swatch {
	ink := "#000000"
	if c, err := argb.Parse(hex); err == nil && argb.ContrastRatio(c, argb.White) > argb.ContrastRatio(c, argb.Black) {
		ink = "#ffffff"
	}

	return swatch{
		Label: label,
		Hex:   hex,
		Style: template.CSS("background:" + hex + ";color:" + ink),
	}
}

// sheet is the group of swatches of a single scheme.
type sheet struct {
	Name     string
	Swatches []swatch
	Usage    *usage
}

// usage holds the inline styles of the example components.
type usage struct {
	Surface   template.CSS
	Headline  template.CSS
	Body      template.CSS
	Filled    template.CSS
	Tonal     template.CSS
	Outlined  template.CSS
	Card      template.CSS
	CardTitle template.CSS
	ErrorChip template.CSS
}

// usageRoles are required to render the example components of a scheme.
var usageRoles = []scheme.Role{
	scheme.Surface, scheme.OnSurface, scheme.OnSurfaceVariant,
	scheme.Primary, scheme.OnPrimary,
	scheme.SecondaryContainer, scheme.OnSecondaryContainer,
	scheme.Outline,
	scheme.SurfaceContainerHigh, scheme.TertiaryContainer, scheme.OnTertiaryContainer,
	scheme.ErrorContainer, scheme.OnErrorContainer,
}

func newUsage(s *scheme.Scheme) *usage {
	hex := make(map[scheme.Role]string, len(usageRoles))
	for _, role := range usageRoles {
		c, ok := s.Get(role)
		if !ok {
			return nil
		}
		hex[role] = c.Hex()
	}

	css := func(decls ...string) template.CSS {
		return template.CSS(strings.Join(decls, ";"))
	}

	return &usage{
		Surface:   css("background:"+hex[scheme.Surface], "color:"+hex[scheme.OnSurface]),
		Headline:  css("color:" + hex[scheme.Primary]),
		Body:      css("color:" + hex[scheme.OnSurfaceVariant]),
		Filled:    css("background:"+hex[scheme.Primary], "color:"+hex[scheme.OnPrimary]),
		Tonal:     css("background:"+hex[scheme.SecondaryContainer], "color:"+hex[scheme.OnSecondaryContainer]),
		Outlined:  css("background:transparent", "border:1px solid "+hex[scheme.Outline], "color:"+hex[scheme.Primary]),
		Card:      css("background:"+hex[scheme.SurfaceContainerHigh], "color:"+hex[scheme.OnSurface]),
		CardTitle: css("background:"+hex[scheme.TertiaryContainer], "color:"+hex[scheme.OnTertiaryContainer]),
		ErrorChip: css("background:"+hex[scheme.ErrorContainer], "color:"+hex[scheme.OnErrorContainer]),
	}
}

type previewData struct {
	Sheets []sheet
}

var previewTemplate = lo.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Material theme preview</title>
<style>
body { font-family: sans-serif; margin: 24px; }
.swatch-container { display: flex; flex-wrap: wrap; gap: 10px; }
.swatch { width: 180px; height: 120px; display: flex; flex-direction: column; justify-content: center; align-items: center; border-radius: 8px; font-weight: bold; }
.swatch span { padding: 2px 8px; }
.usage { margin: 16px 0 32px; padding: 24px; border-radius: 16px; }
.usage button { border: none; border-radius: 20px; padding: 10px 24px; margin-right: 8px; font-weight: bold; }
.card { margin-top: 16px; border-radius: 12px; overflow: hidden; max-width: 360px; }
.card h4 { margin: 0; padding: 12px 16px; }
.card p { margin: 0; padding: 12px 16px; }
.chip { display: inline-block; margin-top: 16px; border-radius: 8px; padding: 6px 12px; }
</style>
</head>
<body>
{{- range .Sheets }}
<h2>{{ .Name }} theme</h2>
<div class="swatch-container">
{{- range .Swatches }}
<div class="swatch" style="{{ .Style }}"><span>{{ .Label }}</span><span>{{ .Hex }}</span></div>
{{- end }}
</div>
{{- with .Usage }}
<section class="usage" style="{{ .Surface }}">
<h3 style="{{ .Headline }}">Headline text</h3>
<p style="{{ .Body }}">Body text rendered in the on-surface-variant color.</p>
<button style="{{ .Filled }}">Filled</button>
<button style="{{ .Tonal }}">Tonal</button>
<button style="{{ .Outlined }}">Outlined</button>
<div class="card" style="{{ .Card }}">
<h4 style="{{ .CardTitle }}">Card title</h4>
<p>Cards group related content on a raised container surface.</p>
</div>
<span class="chip" style="{{ .ErrorChip }}">Error message</span>
</section>
{{- end }}
{{- end }}
</body>
</html>`))

func renderPreview(data previewData) (string, error) {
	var b strings.Builder
	if err := previewTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Preview renders a standalone HTML page with one swatch per role of every
// scheme, labelled with the role name and hex value. With usage set, each
// scheme also gets example text, buttons and a card drawn in its colors.
func Preview(theme *scheme.Theme, withUsage bool) (string, error) {
	sheets := lo.Map(theme.Schemes(), func(s *scheme.Scheme, _ int) sheet {
		sh := sheet{
			Name: s.Name,
			Swatches: lo.Map(s.Entries(), func(e scheme.Entry, _ int) swatch {
				return newSwatch(e.Role.String(), e.Color.Hex())
			}),
		}
		if withUsage {
			sh.Usage = newUsage(s)
		}
		return sh
	})

	return renderPreview(previewData{Sheets: sheets})
}
