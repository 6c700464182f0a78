package format

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Syntax is a supported output syntax.
type Syntax string

const (
	JSON  Syntax = "json"
	YAML  Syntax = "yaml"
	CSS   Syntax = "css"
	SCSS  Syntax = "scss"
	LESS  Syntax = "less"
	Styl  Syntax = "styl"
	JS    Syntax = "js"
	TS    Syntax = "ts"
	XML   Syntax = "xml"
	HTML  Syntax = "html"
	Table Syntax = "table"
)

// Syntaxes returns every syntax accepted for themes.
func Syntaxes() []Syntax {
	return []Syntax{JSON, YAML, CSS, SCSS, LESS, Styl, JS, TS, XML, HTML, Table}
}

// DataSyntaxes returns the syntaxes accepted for color info and contrast results.
func DataSyntaxes() []Syntax {
	return []Syntax{JSON, YAML, Table}
}

// ParseSyntax resolves a syntax name. Names are matched exactly.
func ParseSyntax(name string) (Syntax, bool) {
	return lo.Find(Syntaxes(), func(s Syntax) bool {
		return string(s) == name
	})
}

// Unsupported is the result returned for unknown syntax names.
func Unsupported(name string) string {
	return fmt.Sprintf("Unsupported format: %s", name)
}

// IsUnsupported reports whether output is the unknown-syntax sentinel.
func IsUnsupported(output string) bool {
	return strings.HasPrefix(output, "Unsupported format: ")
}

// Suggest returns the known syntax closest to name.
func Suggest(name string, among []Syntax) Syntax {
	return lo.MinBy(among, func(a, b Syntax) bool {
		return levenshtein.Distance(name, string(a)) < levenshtein.Distance(name, string(b))
	})
}
