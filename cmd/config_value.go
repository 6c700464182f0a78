package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mcuc-cli/mcuc/color"
	"github.com/mcuc-cli/mcuc/config"
	"github.com/mcuc-cli/mcuc/format"
	"github.com/mcuc-cli/mcuc/icon"
	"github.com/mcuc-cli/mcuc/key"
	"github.com/mcuc-cli/mcuc/scheme"
	"github.com/mcuc-cli/mcuc/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// closest returns the option nearest to s by edit distance.
func closest(s string, options []string) string {
	return lo.MinBy(options, func(a, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	})
}

func didYouMean(what, got, hint string) error {
	return fmt.Errorf(
		"unknown %s %s, did you mean %s?",
		what,
		style.Fg(color.Red)(got),
		style.Fg(color.Yellow)(hint),
	)
}

func errUnknownKey(k string) error {
	return didYouMean("key", k, closest(k, lo.Keys(config.Default)))
}

func syntaxValue(among []format.Syntax) func(string) error {
	return func(v string) error {
		if lo.Contains(among, format.Syntax(v)) {
			return nil
		}
		return didYouMean("format", v, string(format.Suggest(v, among)))
	}
}

func oneOf(what string, options []string, valid func(string) bool) func(string) error {
	return func(v string) error {
		if valid(v) {
			return nil
		}
		return didYouMean(what, v, closest(v, options))
	}
}

// valueChecks guards the string keys whose values are read back as enums.
var valueChecks = map[string]func(string) error{
	key.GenerateFormat: syntaxValue(format.Syntaxes()),
	key.InfoFormat:     syntaxValue(format.DataSyntaxes()),
	key.ContrastFormat: syntaxValue(format.DataSyntaxes()),
	key.GenerateCase: oneOf("case",
		lo.Map(format.Cases(), func(c format.Case, _ int) string { return string(c) }),
		format.IsCase,
	),
	key.GenerateTheme: oneOf("theme",
		[]string{string(scheme.SelectLight), string(scheme.SelectDark), string(scheme.SelectBoth)},
		func(v string) bool {
			_, err := scheme.ParseSelection(v)
			return err == nil
		},
	),
	key.LogsLevel: oneOf("log level",
		lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) string { return l.String() }),
		func(v string) bool {
			_, err := logrus.ParseLevel(v)
			return err == nil
		},
	),
	key.IconsVariant: oneOf("icons variant", icon.AvailableVariants(), func(v string) bool {
		return lo.Contains(icon.AvailableVariants(), v)
	}),
}

// parseConfigValue converts raw command line values to the type of the key's
// default, rejecting values later commands could not use.
func parseConfigValue(k string, raw []string) (any, error) {
	field, ok := config.Default[k]
	if !ok {
		return nil, errUnknownKey(k)
	}

	if len(raw) == 0 {
		return nil, errors.New("value is required as an argument or --value flag")
	}

	switch field.Value.(type) {
	case string:
		if check, ok := valueChecks[k]; ok {
			if err := check(raw[0]); err != nil {
				return nil, err
			}
		}
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %q", k, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %q", k, raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type %T for %s", field.Value, k)
	}
}
