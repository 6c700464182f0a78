package format

import (
	"github.com/mcuc-cli/mcuc/scheme"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Section maps output identifiers to hex colors, in role order.
type Section = orderedmap.OrderedMap[string, string]

// Document is the transformed, serializable form of a theme: scheme name to Section.
type Document = orderedmap.OrderedMap[string, *Section]

// TransformKeys renames every role of theme to prefix + ConvertCase(role, c).
// The theme itself is not modified.
func TransformKeys(theme *scheme.Theme, prefix string, c Case) *Document {
	doc := orderedmap.New[string, *Section]()
	for _, s := range theme.Schemes() {
		section := orderedmap.New[string, string]()
		for _, e := range s.Entries() {
			section.Set(prefix+ConvertCase(e.Role.String(), c), e.Color.Hex())
		}
		doc.Set(s.Name, section)
	}
	return doc
}

// each walks a section in order.
func each(section *Section, fn func(key, value string)) {
	for pair := section.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// eachSection walks a document in order.
func eachSection(doc *Document, fn func(name string, section *Section)) {
	for pair := doc.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
