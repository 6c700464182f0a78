// Package format renders themes, color info and contrast results as text.
//
// Rendering is deterministic: schemes and roles are emitted in the order the
// theme holds them. Unknown syntax names never fail; they produce the
// Unsupported sentinel so batch callers can detect them in the output.
package format

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcuc-cli/mcuc/scheme"
	"gopkg.in/yaml.v3"
)

// Options configure theme rendering.
type Options struct {
	// Syntax is the target syntax name, see Syntaxes.
	Syntax string
	// Prefix is prepended to every converted role name.
	Prefix string
	// Case is the naming style of role names.
	Case Case
	// Out receives the table syntax, which prints instead of returning text.
	// Defaults to os.Stdout.
	Out io.Writer
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

type themeRenderer func(doc *Document, opts Options) string

var themeRenderers = map[Syntax]themeRenderer{
	JSON:  renderJSON,
	YAML:  renderYAML,
	CSS:   renderCSS,
	SCSS:  variables("$", ": ", ";"),
	LESS:  variables("@", ": ", ";"),
	Styl:  variables("", " = ", ""),
	JS:    renderJS,
	TS:    renderTS,
	XML:   renderXML,
	HTML:  renderHTML,
	Table: renderThemeTable,
}

// Theme renders theme in the syntax named by opts.Syntax after renaming its
// roles with opts.Prefix and opts.Case.
func Theme(theme *scheme.Theme, opts Options) string {
	syntax, ok := ParseSyntax(opts.Syntax)
	if !ok {
		return Unsupported(opts.Syntax)
	}

	render, ok := themeRenderers[syntax]
	if !ok {
		return Unsupported(opts.Syntax)
	}

	return render(TransformKeys(theme, opts.Prefix, opts.Case), opts)
}

// marshalJSON encodes v without HTML escaping, so keys and values keep
// characters such as '&' and '<' literally.
func marshalJSON(v any, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(indent, "  ")
	if err := enc.Encode(v); err != nil {
		// Values are strings and numbers only.
		panic(fmt.Sprintf("format: marshal json: %v", err))
	}
	return strings.TrimRight(buf.String(), "\n")
}

func indentJSON(v any) string {
	return marshalJSON(v, "")
}

// documentJSON writes doc as 2-space indented JSON in insertion order.
func documentJSON(doc *Document) string {
	if doc.Len() == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{")
	first := true
	eachSection(doc, func(name string, section *Section) {
		if !first {
			b.WriteString(",")
		}
		first = false

		fmt.Fprintf(&b, "\n  %s: ", marshalJSON(name, ""))
		if section.Len() == 0 {
			b.WriteString("{}")
			return
		}

		b.WriteString("{")
		i := 0
		each(section, func(key, value string) {
			if i > 0 {
				b.WriteString(",")
			}
			i++
			fmt.Fprintf(&b, "\n    %s: %s", marshalJSON(key, ""), marshalJSON(value, ""))
		})
		b.WriteString("\n  }")
	})
	b.WriteString("\n}")
	return b.String()
}

func renderJSON(doc *Document, _ Options) string {
	return documentJSON(doc)
}

func renderTS(doc *Document, _ Options) string {
	return fmt.Sprintf("export const theme = %s;", documentJSON(doc))
}

func renderJS(doc *Document, _ Options) string {
	return fmt.Sprintf("const theme = %s;\nexport { theme }", documentJSON(doc))
}

func renderCSS(doc *Document, _ Options) string {
	var b strings.Builder
	eachSection(doc, func(name string, section *Section) {
		fmt.Fprintf(&b, ".%s {\n", name)
		each(section, func(key, value string) {
			fmt.Fprintf(&b, "  --%s: %s;\n", key, value)
		})
		b.WriteString("}\n")
	})
	return strings.TrimSpace(b.String())
}

// variables renders one flat "<sigil><key><assign><value><end>" line per role
// across all schemes.
func variables(sigil, assign, end string) themeRenderer {
	return func(doc *Document, _ Options) string {
		var b strings.Builder
		eachSection(doc, func(_ string, section *Section) {
			each(section, func(key, value string) {
				fmt.Fprintf(&b, "%s%s%s%s%s\n", sigil, key, assign, value, end)
			})
		})
		return strings.TrimSpace(b.String())
	}
}

func encodeYAML(v any) string {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		panic(fmt.Sprintf("format: marshal yaml: %v", err))
	}
	if err := enc.Close(); err != nil {
		panic(fmt.Sprintf("format: flush yaml: %v", err))
	}
	return strings.TrimSpace(buf.String())
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func renderYAML(doc *Document, _ Options) string {
	root := &yaml.Node{Kind: yaml.MappingNode}
	eachSection(doc, func(name string, section *Section) {
		node := &yaml.Node{Kind: yaml.MappingNode}
		each(section, func(key, value string) {
			node.Content = append(node.Content, yamlString(key), yamlString(value))
		})
		root.Content = append(root.Content, yamlString(name), node)
	})
	return encodeYAML(root)
}

type xmlColor struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlScheme struct {
	XMLName xml.Name
	Colors  []xmlColor `xml:"color"`
}

type xmlTheme struct {
	XMLName xml.Name `xml:"theme"`
	Schemes []xmlScheme
}

func renderXML(doc *Document, _ Options) string {
	var root xmlTheme
	eachSection(doc, func(name string, section *Section) {
		s := xmlScheme{XMLName: xml.Name{Local: name}}
		each(section, func(key, value string) {
			s.Colors = append(s.Colors, xmlColor{Name: key, Value: value})
		})
		root.Schemes = append(root.Schemes, s)
	})

	b, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	return string(b)
}

func renderHTML(doc *Document, _ Options) string {
	var sheets []sheet
	eachSection(doc, func(name string, section *Section) {
		sh := sheet{Name: name}
		each(section, func(key, value string) {
			sh.Swatches = append(sh.Swatches, newSwatch(key, value))
		})
		sheets = append(sheets, sh)
	})

	html, err := renderPreview(previewData{Sheets: sheets})
	if err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	return html
}
