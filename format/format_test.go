package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mcuc-cli/mcuc/argb"
	"github.com/mcuc-cli/mcuc/colorinfo"
	"github.com/mcuc-cli/mcuc/contrast"
	"github.com/mcuc-cli/mcuc/scheme"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

func sampleTheme() *scheme.Theme {
	return scheme.NewTheme(
		scheme.NewScheme("light").
			Set(scheme.Primary, argb.MustParse("#6750a4")).
			Set(scheme.OnPrimary, argb.MustParse("#ffffff")),
	)
}

func twoVariantTheme() *scheme.Theme {
	return scheme.NewTheme(
		scheme.NewScheme("light").
			Set(scheme.Primary, argb.MustParse("#6750a4")).
			Set(scheme.OnPrimary, argb.MustParse("#ffffff")),
		scheme.NewScheme("dark").
			Set(scheme.Primary, argb.MustParse("#d0bcff")).
			Set(scheme.OnPrimary, argb.MustParse("#381e72")),
	)
}

func TestConvertCase(t *testing.T) {
	Convey("ConvertCase", t, func() {
		cases := []struct {
			in                   string
			kebab, camel, pascal string
		}{
			{"primary", "primary", "primary", "Primary"},
			{"onPrimaryContainer", "on-primary-container", "onPrimaryContainer", "OnPrimaryContainer"},
			{"surface_container high", "surface-container-high", "surfaceContainerHigh", "SurfaceContainerHigh"},
			{"On-Surface", "on-surface", "onSurface", "OnSurface"},
			{"tone40", "tone40", "tone40", "Tone40"},
		}

		for _, c := range cases {
			So(ConvertCase(c.in, Kebab), ShouldEqual, c.kebab)
			So(ConvertCase(c.in, Camel), ShouldEqual, c.camel)
			So(ConvertCase(c.in, Pascal), ShouldEqual, c.pascal)
		}

		Convey("Unknown styles behave like kebab", func() {
			So(ConvertCase("onPrimary", Case("snake")), ShouldEqual, "on-primary")
			So(ParseCase("snake"), ShouldEqual, Kebab)
			So(ParseCase("CAMEL"), ShouldEqual, Camel)
			So(IsCase("snake"), ShouldBeFalse)
		})

		Convey("Is idempotent for every role and style", func() {
			inputs := append(lo.Map(scheme.Roles(), func(r scheme.Role, _ int) string { return r.String() }),
				"ABC", "already-kebab", "Mixed_case value")
			for _, in := range inputs {
				for _, style := range Cases() {
					once := ConvertCase(in, style)
					So(ConvertCase(once, style), ShouldEqual, once)
				}
			}
		})
	})
}

func TestTransformKeys(t *testing.T) {
	Convey("TransformKeys", t, func() {
		theme, err := scheme.Generate(argb.MustParse("#6750a4"), scheme.Options{})
		So(err, ShouldBeNil)

		doc := TransformKeys(theme, "md-", Kebab)
		So(doc.Len(), ShouldEqual, theme.Len())

		for _, s := range theme.Schemes() {
			section, ok := doc.Get(s.Name)
			So(ok, ShouldBeTrue)
			So(section.Len(), ShouldEqual, s.Len())
		}

		light, _ := doc.Get("light")
		So(light.Oldest().Key, ShouldEqual, "md-primary")
		So(light.Newest().Key, ShouldEqual, "md-surface-container-highest")

		Convey("Leaves the theme untouched", func() {
			s, _ := theme.Scheme("light")
			So(s.Entries()[1].Role, ShouldEqual, scheme.OnPrimary)
		})
	})
}

func TestTheme(t *testing.T) {
	Convey("Theme", t, func() {
		Convey("css", func() {
			out := Theme(sampleTheme(), Options{Syntax: "css", Case: Kebab})
			So(out, ShouldEqual, ".light {\n  --primary: #6750a4;\n  --on-primary: #ffffff;\n}")
		})

		Convey("css with two variants and a prefix", func() {
			out := Theme(twoVariantTheme(), Options{Syntax: "css", Prefix: "md-", Case: Kebab})
			So(out, ShouldEqual, ".light {\n  --md-primary: #6750a4;\n  --md-on-primary: #ffffff;\n}\n"+
				".dark {\n  --md-primary: #d0bcff;\n  --md-on-primary: #381e72;\n}")
		})

		Convey("scss, less and styl flatten across variants", func() {
			theme := twoVariantTheme()
			So(Theme(theme, Options{Syntax: "scss", Case: Camel}), ShouldEqual,
				"$primary: #6750a4;\n$onPrimary: #ffffff;\n$primary: #d0bcff;\n$onPrimary: #381e72;")
			So(Theme(theme, Options{Syntax: "less", Case: Pascal}), ShouldEqual,
				"@Primary: #6750a4;\n@OnPrimary: #ffffff;\n@Primary: #d0bcff;\n@OnPrimary: #381e72;")
			So(Theme(theme, Options{Syntax: "styl", Case: Kebab}), ShouldEqual,
				"primary = #6750a4\non-primary = #ffffff\nprimary = #d0bcff\non-primary = #381e72")
		})

		Convey("json keeps insertion order", func() {
			out := Theme(twoVariantTheme(), Options{Syntax: "json", Case: Kebab})
			So(out, ShouldEqual, `{
  "light": {
    "primary": "#6750a4",
    "on-primary": "#ffffff"
  },
  "dark": {
    "primary": "#d0bcff",
    "on-primary": "#381e72"
  }
}`)
		})

		Convey("ts and js wrap the json form", func() {
			theme := sampleTheme()
			body := Theme(theme, Options{Syntax: "json"})
			So(Theme(theme, Options{Syntax: "ts"}), ShouldEqual, "export const theme = "+body+";")
			So(Theme(theme, Options{Syntax: "js"}), ShouldEqual, "const theme = "+body+";\nexport { theme }")
		})

		Convey("json family keeps markup characters in prefixes", func() {
			theme := sampleTheme()
			opts := Options{Prefix: "a&<", Case: Kebab}

			for _, syntax := range []string{"json", "ts", "js"} {
				opts.Syntax = syntax
				out := Theme(theme, opts)
				So(out, ShouldContainSubstring, `"a&<primary": "#6750a4"`)
				So(out, ShouldNotContainSubstring, `\u0026`)
				So(out, ShouldNotContainSubstring, `\u003c`)
			}

			opts.Syntax = "json"
			var back map[string]map[string]string
			So(json.Unmarshal([]byte(Theme(theme, opts)), &back), ShouldBeNil)
			So(back["light"]["a&<on-primary"], ShouldEqual, "#ffffff")
		})

		Convey("json of an empty theme", func() {
			So(Theme(scheme.NewTheme(), Options{Syntax: "json"}), ShouldEqual, "{}")
		})

		Convey("yaml is equivalent to json", func() {
			out := Theme(twoVariantTheme(), Options{Syntax: "yaml", Case: Kebab})
			So(strings.Index(out, "light:"), ShouldBeLessThan, strings.Index(out, "dark:"))

			var fromYAML, fromJSON map[string]map[string]string
			So(yaml.Unmarshal([]byte(out), &fromYAML), ShouldBeNil)
			So(json.Unmarshal([]byte(Theme(twoVariantTheme(), Options{Syntax: "json"})), &fromJSON), ShouldBeNil)
			So(fromYAML, ShouldResemble, fromJSON)
		})

		Convey("xml", func() {
			out := Theme(sampleTheme(), Options{Syntax: "xml", Case: Camel})
			So(out, ShouldEqual, `<theme>
  <light>
    <color name="primary">#6750a4</color>
    <color name="onPrimary">#ffffff</color>
  </light>
</theme>`)
		})

		Convey("html shows every swatch", func() {
			out := Theme(twoVariantTheme(), Options{Syntax: "html", Case: Kebab})
			So(out, ShouldStartWith, "<!DOCTYPE html>")
			So(out, ShouldContainSubstring, "<h2>dark theme</h2>")
			So(out, ShouldContainSubstring, "<span>on-primary</span>")
			So(strings.Count(out, `class="swatch"`), ShouldEqual, 4)
		})

		Convey("table prints and returns nothing", func() {
			var buf bytes.Buffer
			out := Theme(sampleTheme(), Options{Syntax: "table", Out: &buf})
			So(out, ShouldBeEmpty)
			So(buf.String(), ShouldContainSubstring, "Scheme: light")
			So(buf.String(), ShouldContainSubstring, "on-primary")
		})

		Convey("unknown syntax returns the sentinel", func() {
			So(Theme(sampleTheme(), Options{Syntax: "toml"}), ShouldEqual, "Unsupported format: toml")
			So(Theme(sampleTheme(), Options{Syntax: ""}), ShouldEqual, "Unsupported format: ")
			So(IsUnsupported(Theme(sampleTheme(), Options{Syntax: "CSS"})), ShouldBeTrue)
		})

		Convey("every syntax has a renderer", func() {
			for _, s := range Syntaxes() {
				_, ok := themeRenderers[s]
				So(ok, ShouldBeTrue)
			}
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Suggest", t, func() {
		So(Suggest("jsno", Syntaxes()), ShouldEqual, JSON)
		So(Suggest("sass", Syntaxes()), ShouldEqual, SCSS)
		So(Suggest("tabel", DataSyntaxes()), ShouldEqual, Table)
	})
}

func TestContrast(t *testing.T) {
	Convey("Contrast", t, func() {
		r, err := contrast.Check("#000000", "#ffffff")
		So(err, ShouldBeNil)

		Convey("json of a single result", func() {
			out := Contrast(ContrastData{Results: []contrast.Result{r}}, "json", nil)
			So(out, ShouldEqual, "{\n  \"ratio\": 21,\n  \"colorA\": \"#000000\",\n  \"colorB\": \"#ffffff\"\n}")
		})

		Convey("json list", func() {
			out := Contrast(ContrastData{Results: []contrast.Result{r}, List: true}, "json", nil)
			So(out, ShouldStartWith, "[")
		})

		Convey("wcag-only projection", func() {
			out := Contrast(ContrastData{Results: []contrast.Result{r}, WCAGOnly: true}, "json", nil)
			So(out, ShouldContainSubstring, `"aaa": "pass"`)
			So(out, ShouldNotContainSubstring, "ratio")
		})

		Convey("yaml", func() {
			out := Contrast(ContrastData{Results: []contrast.Result{r}}, "yaml", nil)
			var back contrast.Result
			So(yaml.Unmarshal([]byte(out), &back), ShouldBeNil)
			So(back, ShouldResemble, r)
		})

		Convey("table", func() {
			var buf bytes.Buffer
			So(Contrast(ContrastData{Results: []contrast.Result{r}}, "table", &buf), ShouldBeEmpty)
			So(buf.String(), ShouldContainSubstring, "21")
		})

		Convey("theme-only syntaxes are unsupported", func() {
			So(Contrast(ContrastData{Results: []contrast.Result{r}}, "css", nil), ShouldEqual, "Unsupported format: css")
		})
	})
}

func TestInfo(t *testing.T) {
	Convey("Info", t, func() {
		info := colorinfo.Info{Hex: "#6750a4", HCT: colorinfo.HCT{Hue: 282.1, Chroma: 47.2, Tone: 40}}

		out := Info(info, "json", nil)
		So(out, ShouldEqual, `{
  "hex": "#6750a4",
  "hct": {
    "hue": 282.1,
    "chroma": 47.2,
    "tone": 40
  }
}`)

		var buf bytes.Buffer
		So(Info(info, "table", &buf), ShouldBeEmpty)
		So(buf.String(), ShouldContainSubstring, "hct.hue")

		So(Info(info, "xml", nil), ShouldEqual, "Unsupported format: xml")
	})
}

func TestPreview(t *testing.T) {
	Convey("Preview", t, func() {
		theme, err := scheme.Generate(argb.MustParse("#6750a4"), scheme.Options{Selection: scheme.SelectBoth})
		So(err, ShouldBeNil)

		Convey("Has one swatch per role per variant", func() {
			out, err := Preview(theme, false)
			So(err, ShouldBeNil)
			So(strings.Count(out, `class="swatch"`), ShouldEqual, 2*len(scheme.Roles()))
			So(out, ShouldContainSubstring, "<span>surfaceContainerHighest</span>")
			So(out, ShouldNotContainSubstring, `class="usage"`)
		})

		Convey("Adds usage examples on request", func() {
			out, err := Preview(theme, true)
			So(err, ShouldBeNil)
			So(strings.Count(out, `class="usage"`), ShouldEqual, 2)
			So(out, ShouldContainSubstring, "Filled")
		})

		Convey("Colors swatches inline", func() {
			out, _ := Preview(sampleTheme(), false)
			So(out, ShouldContainSubstring, `style="background:#6750a4;color:#ffffff"`)
			So(out, ShouldContainSubstring, `style="background:#ffffff;color:#000000"`)
		})
	})
}

func TestEncodeYAML(t *testing.T) {
	Convey("yaml output is flushed through the last role", t, func() {
		out := renderYAML(TransformKeys(twoVariantTheme(), "", Kebab), Options{})
		lines := strings.Split(out, "\n")

		So(lines, ShouldHaveLength, 6)
		So(lines[0], ShouldEqual, "light:")
		So(lines[5], ShouldStartWith, "  on-primary: ")
		So(lines[5], ShouldContainSubstring, "#381e72")
	})
}
