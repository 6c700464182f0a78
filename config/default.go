package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/mcuc-cli/mcuc/color"
	"github.com/mcuc-cli/mcuc/constant"
	"github.com/mcuc-cli/mcuc/key"
	"github.com/mcuc-cli/mcuc/style"
	"github.com/mcuc-cli/mcuc/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// descriptionWidth bounds the wrapped description in Pretty output.
const descriptionWidth = 60

// wrapWidth caps the terminal width at descriptionWidth.
func wrapWidth(terminal int) int {
	return util.Min(terminal, descriptionWidth)
}

// wrapDescription wraps s to fit the terminal.
func wrapDescription(s string) string {
	return wordwrap.String(s, wrapWidth(util.TerminalWidth(descriptionWidth)))
}

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string) {
	if _, exists := Default[k]; exists {
		panic("Duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: desc}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.GenerateFormat, "json", "Default output format for generated themes.\nAvailable options are: json, yaml, css, scss, less, styl, js, ts, xml, html, table")
	register(key.GenerateCase, "kebab", "Case style applied to role keys.\nAvailable options are: kebab, camel, pascal")
	register(key.GeneratePrefix, "", "Prefix prepended to every role key before case conversion")
	register(key.GenerateTheme, "dark", "Schemes to generate.\nAvailable options are: light, dark, both")
	register(key.InfoFormat, "json", "Default output format for color info.\nAvailable options are: json, yaml, table")
	register(key.ContrastFormat, "json", "Default output format for contrast checks.\nAvailable options are: json, yaml, table")
	register(key.PreviewUsage, false, "Include the usage section in HTML previews")
	register(key.LogsEnabled, false, "Print log entries to stderr")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsTimestamp, false, "Prefix console log entries with a timestamp")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsWrite, false, "Also write logs to a file in the logs directory")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"wrap":     wrapDescription,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(strconv.Quote(value))
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint (wrap .Description) }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
