package format

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Case is the naming style applied to role names.
type Case string

const (
	Kebab  Case = "kebab"
	Camel  Case = "camel"
	Pascal Case = "pascal"
)

// Cases returns the supported naming styles.
func Cases() []Case {
	return []Case{Kebab, Camel, Pascal}
}

// ParseCase maps a style name to a Case. Unknown names fall back to Kebab;
// use IsCase to detect them.
func ParseCase(name string) Case {
	if c := Case(strings.ToLower(name)); IsCase(string(c)) {
		return c
	}
	return Kebab
}

// IsCase reports whether name is a supported naming style.
func IsCase(name string) bool {
	return lo.Contains(Cases(), Case(strings.ToLower(name)))
}

// words splits s before every uppercase letter and on '_', '-' and whitespace.
func words(s string) []string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	return strings.FieldsFunc(b.String(), func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ConvertCase rewrites s in the given style. Applying the same style twice
// gives the same result as applying it once.
func ConvertCase(s string, c Case) string {
	parts := words(s)

	switch c {
	case Camel:
		return strings.Join(lo.Map(parts, func(p string, i int) string {
			if i == 0 {
				return strings.ToLower(p)
			}
			return capitalize(p)
		}), "")
	case Pascal:
		return strings.Join(lo.Map(parts, func(p string, _ int) string {
			return capitalize(p)
		}), "")
	default:
		return strings.Join(lo.Map(parts, func(p string, _ int) string {
			return strings.ToLower(p)
		}), "-")
	}
}
