// Package templates renders the editor pages from compiled html/template
// strings. Each page combines the shared layout with its own content block.
package templates

import (
	"fmt"
	"html/template"
	"io"
	"sync"
)

var (
	once  sync.Once
	pages map[string]*template.Template
)

func build() {
	contents := map[string]string{
		"campaign":    tmplCampaign,
		"circuits":    tmplCircuits,
		"arms":        tmplArms,
		"lagoons":     tmplLagoons,
		"segments":    tmplSegments,
		"analyses":    tmplAnalyses,
		"attachments": tmplAttachments,
		"ontologies":  tmplOntologies,
		"schematic":   tmplSchematic,
		"validate":    tmplValidate,
	}
	pages = make(map[string]*template.Template, len(contents))
	for name, content := range contents {
		pages[name] = template.Must(template.New(name).Funcs(funcMap).Parse(tmplLayout + content))
	}
}

// Render writes the named page to w.
func Render(w io.Writer, page string, data any) error {
	once.Do(build)
	t, ok := pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
