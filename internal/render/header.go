// Package render holds the two external collaborators the core's printed
// output passes through before it reaches disk: a text/template-based
// header/import renderer, and a narrow pretty-print pass that tidies
// blank-line runs in the fully assembled file.
package render

import (
	"fmt"
	"strings"
	"text/template"
)

const headerTemplate = `// {{.Namespace}} {{.Version}}, generated by girgen, do not edit.
{{range .Imports}}import * as {{.Package}} from "./{{.Package}}";
{{end}}
`

// HeaderData is the template data for one module's header/import block.
type HeaderData struct {
	Namespace string
	Version   string
	Imports   []ImportEntry
}

// ImportEntry names one imported package.
type ImportEntry struct {
	Package string
}

// Header renders the header/import block for data.
func Header(data HeaderData) (string, error) {
	tmpl, err := template.New("header").Parse(headerTemplate)
	if err != nil {
		return "", fmt.Errorf("render: parsing header template: %w", err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render: executing header template: %w", err)
	}
	return buf.String(), nil
}
