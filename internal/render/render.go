// Package render produces the name-templated greeting page.
package render

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"text/template/parse"
)

// PageTemplate is the built-in greeting page. It holds a single {{.Name}} placeholder.
const PageTemplate = "<!DOCTYPE html>\n" +
	"<html lang=\"en\">\n" +
	"<head>\n" +
	"    <meta charset=\"utf-8\">\n" +
	"    <title>Hello</title>\n" +
	"</head>\n" +
	"<body>\n" +
	"    <p>Hi {{.Name}} from Rust</p>\n" +
	"</body>\n" +
	"</html>\n"

// nameField is the only field a page template may reference.
const nameField = "Name"

var (
	// ErrTemplateCompilationFailed is returned when the template source cannot be parsed
	ErrTemplateCompilationFailed = errors.New("template compilation failed")
	// ErrSubstitutionFailed is returned when the name cannot be substituted into the template
	ErrSubstitutionFailed = errors.New("substitution failed")
)

// Context is the per-request data handed to the template.
type Context struct {
	Name string
}

// Renderer renders a compiled page template. It is immutable after New and
// safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	err  error
}

// New compiles src into a Renderer. A defective template does not panic; the
// defect is kept and reported by Err and by every call to Render.
func New(src string) *Renderer {
	tmpl, err := template.New("page").Option("missingkey=error").Parse(src)
	if err != nil {
		return &Renderer{err: fmt.Errorf("%w: %v", ErrTemplateCompilationFailed, err)}
	}

	n := 0
	if tmpl.Tree != nil {
		n = countNameFields(tmpl.Tree.Root)
	}
	if n != 1 {
		return &Renderer{
			tmpl: tmpl,
			err:  fmt.Errorf("%w: template references .%s %d times, want 1", ErrSubstitutionFailed, nameField, n),
		}
	}

	return &Renderer{tmpl: tmpl}
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// Default returns the process-wide renderer for PageTemplate.
func Default() *Renderer {
	defaultOnce.Do(func() {
		defaultRenderer = New(PageTemplate)
	})
	return defaultRenderer
}

// Err reports whether the template is defective.
func (r *Renderer) Err() error {
	return r.err
}

// Render substitutes name verbatim into the page. No HTML escaping is performed.
func (r *Renderer) Render(name string) (string, error) {
	if r.err != nil {
		return "", r.err
	}

	var b strings.Builder
	b.Grow(len(PageTemplate) + len(name))
	if err := r.tmpl.Execute(&b, Context{Name: name}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSubstitutionFailed, err)
	}

	return b.String(), nil
}

// countNameFields counts {{.Name}} references in the parse tree.
func countNameFields(node parse.Node) int {
	count := 0
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return 0
		}
		for _, child := range n.Nodes {
			count += countNameFields(child)
		}
	case *parse.ActionNode:
		count += countNameFields(n.Pipe)
	case *parse.PipeNode:
		if n == nil {
			return 0
		}
		for _, cmd := range n.Cmds {
			count += countNameFields(cmd)
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			count += countNameFields(arg)
		}
	case *parse.FieldNode:
		if len(n.Ident) == 1 && n.Ident[0] == nameField {
			count++
		}
	case *parse.IfNode:
		count += countNameFields(n.Pipe) + countNameFields(n.List) + countNameFields(n.ElseList)
	case *parse.RangeNode:
		count += countNameFields(n.Pipe) + countNameFields(n.List) + countNameFields(n.ElseList)
	case *parse.WithNode:
		count += countNameFields(n.Pipe) + countNameFields(n.List) + countNameFields(n.ElseList)
	}
	return count
}
