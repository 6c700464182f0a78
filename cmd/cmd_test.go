package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/mcuc-cli/mcuc/argb"
	"github.com/mcuc-cli/mcuc/config"
	"github.com/mcuc-cli/mcuc/filesystem"
	"github.com/mcuc-cli/mcuc/key"
	"github.com/mcuc-cli/mcuc/log"
	"github.com/mcuc-cli/mcuc/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
	viper.Set(key.CliColored, false)
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// setOut redirects cmd and every descendant, overriding writers set in init.
func setOut(cmd *cobra.Command, w io.Writer) {
	cmd.SetOut(w)
	for _, child := range cmd.Commands() {
		setOut(child, w)
	}
}

// run executes the root command with args and returns what it printed.
func run(args ...string) string {
	resetFlags(rootCmd)

	var out bytes.Buffer
	setOut(rootCmd, &out)
	rootCmd.SetArgs(args)
	lo.Must0(rootCmd.Execute())
	return out.String()
}

func writePNG(path string, c color.Color) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	lo.Must0(png.Encode(&buf, img))
	lo.Must0(filesystem.API().WriteFile(path, buf.Bytes(), 0o644))
}

func TestGenerate(t *testing.T) {
	Convey("generate", t, func() {
		Convey("Renders a light css theme", func() {
			out := run("generate", "#6750a4", "-f", "css", "-T", "light")
			So(out, ShouldStartWith, ".light {\n  --primary: #")
			So(out, ShouldContainSubstring, "--on-primary-container: #")
			So(out, ShouldNotContainSubstring, ".dark {")
		})

		Convey("Applies prefix and case to json keys", func() {
			out := run("generate", "#6750a4", "-f", "json", "-T", "both", "-C", "camel", "-P", "md-")

			var doc map[string]map[string]string
			So(json.Unmarshal([]byte(out), &doc), ShouldBeNil)
			So(doc, ShouldContainKey, "light")
			So(doc, ShouldContainKey, "dark")
			So(doc["dark"], ShouldContainKey, "md-onPrimary")
			So(doc["dark"], ShouldHaveLength, 37)
		})

		Convey("Prints the sentinel for unknown formats", func() {
			out := run("generate", "#6750a4", "-f", "sass")
			So(out, ShouldEqual, "Unsupported format: sass\n")
		})

		Convey("Generates tonal palettes", func() {
			out := run("generate", "#6750a4", "-p", "-f", "yaml")
			So(out, ShouldContainSubstring, "primary:\n")
			So(out, ShouldContainSubstring, "  tone50: ")
		})

		Convey("Writes to a file", func() {
			out := run("generate", "#6750a4", "-f", "scss", "-o", "/theme.scss")
			So(out, ShouldBeEmpty)

			data, err := filesystem.API().ReadFile("/theme.scss")
			So(err, ShouldBeNil)
			So(string(data), ShouldStartWith, "$primary: #")
		})

		Convey("Reads the seed from an image", func() {
			writePNG("/seed.png", color.RGBA{R: 0x67, G: 0x50, B: 0xa4, A: 0xff})
			fromImage := run("generate", "-i", "/seed.png", "-f", "css")
			fromHex := run("generate", "#6750a4", "-f", "css")
			So(fromImage, ShouldEqual, fromHex)
		})
	})
}

func TestInfo(t *testing.T) {
	Convey("info", t, func() {
		out := run("info", "#6750a4", "-e", "-d", "#ffffff")

		var info map[string]any
		So(json.Unmarshal([]byte(out), &info), ShouldBeNil)
		So(info["hex"], ShouldEqual, "#6750a4")
		So(info, ShouldContainKey, "hct")
		So(info, ShouldContainKey, "extended")
		So(info, ShouldContainKey, "distance")
	})
}

func TestContrast(t *testing.T) {
	Convey("contrast", t, func() {
		Convey("Checks a pair", func() {
			out := run("contrast", "#000000", "#ffffff")
			So(out, ShouldEqual, "{\n  \"ratio\": 21,\n  \"colorA\": \"#000000\",\n  \"colorB\": \"#ffffff\"\n}\n")
		})

		Convey("Checks one color against backgrounds as a list", func() {
			out := run("contrast", "#000000", "-b", "#ffffff", "-b", "#000000", "-w")

			var levels []map[string]string
			So(json.Unmarshal([]byte(out), &levels), ShouldBeNil)
			So(levels, ShouldHaveLength, 2)
			So(levels[0]["aaa"], ShouldEqual, "pass")
			So(levels[1]["aaLarge"], ShouldEqual, "fail")
		})
	})
}

func TestCheckContrast(t *testing.T) {
	Convey("checkContrast", t, func() {
		Convey("Needs two colors without backgrounds", func() {
			_, err := checkContrast([]string{"#000000"}, nil)
			So(errors.Is(err, errContrastArgs), ShouldBeTrue)
		})

		Convey("Surfaces parse errors", func() {
			_, err := checkContrast([]string{"#000", "#fff"}, nil)
			var parseErr *argb.ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
		})

		Convey("A single background still yields a list", func() {
			data, err := checkContrast([]string{"#000000"}, []string{"#ffffff"})
			So(err, ShouldBeNil)
			So(data.List, ShouldBeTrue)
			So(data.Results, ShouldHaveLength, 1)
		})
	})
}

func TestPreview(t *testing.T) {
	Convey("preview", t, func() {
		out := run("preview", "#6750a4", "-u")
		So(out, ShouldStartWith, "<!DOCTYPE html>")
		So(out, ShouldContainSubstring, "primary")
	})
}

func TestSource(t *testing.T) {
	Convey("source.seed", t, func() {
		Convey("Reports missing input", func() {
			_, err := source{}.seed()
			So(errors.Is(err, ErrMissingInput), ShouldBeTrue)
		})

		Convey("Parses hex input", func() {
			c, err := source{input: "#6750A4"}.seed()
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "#6750a4")
		})

		Convey("Treats an existing path as an image", func() {
			writePNG("/input.png", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})
			c, err := source{input: "/input.png"}.seed()
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "#123456")
		})

		Convey("Random seeds are opaque", func() {
			c, err := source{random: true}.seed()
			So(err, ShouldBeNil)
			So(uint32(c)>>24, ShouldEqual, 0xff)
		})
	})
}

func TestRoles(t *testing.T) {
	Convey("roles", t, func() {
		Convey("Filters roles fuzzily", func() {
			specs := matchRoles("onprimcont")
			So(specs, ShouldHaveLength, 1)
			So(string(specs[0].Role), ShouldEqual, "onPrimaryContainer")
		})

		Convey("Lists every role without a query", func() {
			So(matchRoles(""), ShouldHaveLength, 37)
		})

		Convey("Encodes json", func() {
			out := run("roles", "surfaceDim", "-j")
			var roles []roleOutput
			So(json.Unmarshal([]byte(out), &roles), ShouldBeNil)
			So(roles, ShouldHaveLength, 1)
			So(roles[0].Light, ShouldEqual, 87)
			So(roles[0].Dark, ShouldEqual, 6)
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("schema", t, func() {
		Convey("Reflects known outputs", func() {
			for _, name := range []string{"info", "contrast", "levels"} {
				schema, err := schemaOf(name)
				So(err, ShouldBeNil)
				So(schema.Properties, ShouldNotBeNil)
			}
		})

		Convey("Rejects unknown names with a stable message", func() {
			for i := 0; i < 20; i++ {
				_, err := schemaOf("palette")
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, `unknown schema "palette", expected one of info, contrast, levels`)
			}
		})

		Convey("Offers every target for completion", func() {
			So(schemaCmd.ValidArgs, ShouldResemble, schemaNames)
			So(schemaNames, ShouldHaveLength, len(schemaTargets))
		})

		Convey("Prints json", func() {
			out := run("schema", "contrast")
			So(out, ShouldContainSubstring, `"ratio"`)
		})
	})
}

func TestVersion(t *testing.T) {
	Convey("version --short", t, func() {
		So(run("version", "-s"), ShouldEqual, "1.1.0\n")
	})
}

func TestConfigValues(t *testing.T) {
	Convey("config values", t, func() {
		Convey("Accepts values later commands can use", func() {
			for k, raw := range map[string]string{
				key.GenerateFormat: "scss",
				key.GenerateCase:   "camel",
				key.GenerateTheme:  "both",
				key.InfoFormat:     "table",
				key.ContrastFormat: "yaml",
				key.LogsLevel:      "debug",
				key.IconsVariant:   "nerd",
			} {
				value, err := parseConfigValue(k, []string{raw})
				So(err, ShouldBeNil)
				So(value, ShouldEqual, raw)
			}
		})

		Convey("Rejects an unknown theme with a hint", func() {
			_, err := parseConfigValue(key.GenerateTheme, []string{"purple"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "purple")
		})

		Convey("Rejects an unknown case and suggests the nearest", func() {
			_, err := parseConfigValue(key.GenerateCase, []string{"snake"})
			So(err, ShouldNotBeNil)

			_, err = parseConfigValue(key.GenerateCase, []string{"camell"})
			So(err.Error(), ShouldContainSubstring, "did you mean camel?")
		})

		Convey("Suggests the nearest syntax", func() {
			_, err := parseConfigValue(key.GenerateFormat, []string{"jsno"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did you mean json?")
		})

		Convey("Data formats reject theme-only syntaxes", func() {
			_, err := parseConfigValue(key.InfoFormat, []string{"css"})
			So(err, ShouldNotBeNil)
			_, err = parseConfigValue(key.ContrastFormat, []string{"html"})
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects unknown log levels", func() {
			_, err := parseConfigValue(key.LogsLevel, []string{"loud"})
			So(err, ShouldNotBeNil)
		})

		Convey("Parses booleans", func() {
			value, err := parseConfigValue(key.PreviewUsage, []string{"true"})
			So(err, ShouldBeNil)
			So(value, ShouldEqual, true)

			_, err = parseConfigValue(key.PreviewUsage, []string{"maybe"})
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects unknown keys and missing values", func() {
			_, err := parseConfigValue("generate.fromat", []string{"css"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did you mean generate.format?")

			_, err = parseConfigValue(key.GenerateFormat, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestConfig(t *testing.T) {
	Convey("config", t, func() {
		defer viper.Set(key.LogsLevel, "info")
		fs := filesystem.API()

		Convey("Set persists, get reads back, reset restores and delete removes", func() {
			out := run("config", "set", key.LogsLevel, "debug")
			So(out, ShouldContainSubstring, "set logs.level to debug")

			exists, err := fs.Exists(where.ConfigFile())
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)

			data, err := fs.ReadFile(where.ConfigFile())
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "debug")

			So(run("config", "get", key.LogsLevel), ShouldEqual, "debug\n")

			out = run("config", "reset", "-k", key.LogsLevel)
			So(out, ShouldContainSubstring, "reset logs.level to info")
			So(run("config", "get", "-k", key.LogsLevel), ShouldEqual, "info\n")

			out = run("config", "delete")
			So(out, ShouldContainSubstring, "deleted config")

			exists, err = fs.Exists(where.ConfigFile())
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Info describes keys as json", func() {
			out := run("config", "info", "-k", key.GenerateTheme, "-j")

			var fields []map[string]any
			So(json.Unmarshal([]byte(out), &fields), ShouldBeNil)
			So(fields, ShouldHaveLength, 1)
			So(fields[0]["key"], ShouldEqual, key.GenerateTheme)
			So(fields[0]["default"], ShouldEqual, "dark")
		})

		Convey("Fields are listed in key order", func() {
			fields, err := lookupFields(nil)
			So(err, ShouldBeNil)
			So(fields, ShouldHaveLength, len(config.Default))
			for i := 1; i < len(fields); i++ {
				So(fields[i-1].Key, ShouldBeLessThan, fields[i].Key)
			}
		})
	})
}

func TestEnv(t *testing.T) {
	Convey("env", t, func() {
		t.Setenv("MCUC_LOGS_TIMESTAMP", "true")

		Convey("Lists every exposed variable", func() {
			out := run("env")
			So(out, ShouldContainSubstring, "MCUC_GENERATE_FORMAT=")
			So(out, ShouldContainSubstring, where.EnvConfigPath+"=")
			So(strings.Count(out, "\n"), ShouldEqual, len(config.EnvExposed)+1)
		})

		Convey("Filters set variables", func() {
			out := run("env", "-s")
			So(out, ShouldContainSubstring, "MCUC_LOGS_TIMESTAMP=true")
			So(out, ShouldNotContainSubstring, "MCUC_GENERATE_CASE")
		})

		Convey("Filters unset variables", func() {
			out := run("env", "-u")
			So(out, ShouldNotContainSubstring, "MCUC_LOGS_TIMESTAMP")
			So(out, ShouldContainSubstring, "MCUC_GENERATE_CASE=unset")
		})
	})
}

func TestWhere(t *testing.T) {
	Convey("where", t, func() {
		Convey("Prints a single path", func() {
			So(run("where", "--config-file"), ShouldEqual, where.ConfigFile()+"\n")
			So(run("where", "--logs"), ShouldEqual, where.Logs()+"\n")
		})

		Convey("Lists every visible path", func() {
			out := run("where")
			So(out, ShouldContainSubstring, "Config file?")
			So(out, ShouldContainSubstring, where.Config())
			So(out, ShouldContainSubstring, "--logs")
		})
	})
}

func TestReportErr(t *testing.T) {
	Convey("reportErr", t, func() {
		err := errors.New("unknown theme variant \"purple\"\n")

		Convey("Prints one icon line when logging is off", func() {
			var buf bytes.Buffer
			reportErr(&buf, err)
			So(strings.Count(buf.String(), "\n"), ShouldEqual, 1)
			So(buf.String(), ShouldEndWith, `unknown theme variant "purple"`+"\n")
		})

		Convey("Leaves the message to the logger when logging is on", func() {
			viper.Set(key.LogsEnabled, true)
			So(log.Setup(), ShouldBeNil)
			defer func() {
				viper.Set(key.LogsEnabled, false)
				lo.Must0(log.Setup())
			}()

			var buf bytes.Buffer
			reportErr(&buf, err)
			So(buf.Len(), ShouldEqual, 0)
		})
	})
}
