package render

import (
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/tagz/pkg/vdom"
)

// DefaultIndent is the indentation unit used in pretty mode when none is
// configured.
const DefaultIndent = "\t"

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output with one node or text line per line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to a tab if not specified.
	Indent string
}

// Renderer serializes element trees and pages to HTML.
//
// All output modes share one traversal, so compact, pretty, line and chunk
// output agree byte for byte. Deferred children and attributes are invoked
// exactly once per traversal, in document order with attributes before
// children. A Renderer holds no per-render state and may be shared.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = DefaultIndent
	}
	return &Renderer{config: config}
}

// Config returns the effective configuration.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// indent returns the indent unit for the configured mode, "" when compact.
func (r *Renderer) indent() string {
	if r.config.Pretty {
		return r.config.Indent
	}
	return ""
}

// RenderToString renders an element tree to a string.
func (r *Renderer) RenderToString(node *vdom.Element) string {
	return collect(r.indent(), nodeSource(node))
}

// RenderToWriter streams an element tree to the given writer and returns
// the first write error. Rendering stops at that error.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.Element) error {
	return write(w, r.indent(), nodeSource(node))
}

// RenderPageToString renders a full document, preamble included.
func (r *Renderer) RenderPageToString(page *vdom.Page) string {
	return collect(r.indent(), pageSource(page))
}

// RenderPage streams a full document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page *vdom.Page) error {
	return write(w, r.indent(), pageSource(page))
}

// emitFunc receives output fragments. Returning false stops the traversal.
type emitFunc func(string) bool

// source drives a walker over some content.
type source func(w *walker) bool

func nodeSource(node *vdom.Element) source {
	return func(w *walker) bool {
		if node == nil {
			return true
		}
		return w.element(node, 0)
	}
}

func pageSource(page *vdom.Page) source {
	return func(w *walker) bool {
		if page == nil {
			return true
		}
		if page.Preamble != "" && !w.emit(page.Preamble) {
			return false
		}
		return w.element(page.Root, 0)
	}
}

func collect(indent string, src source) string {
	var b strings.Builder
	src(&walker{indent: indent, emit: func(s string) bool {
		b.WriteString(s)
		return true
	}})
	return b.String()
}

func write(out io.Writer, indent string, src source) error {
	var err error
	src(&walker{indent: indent, emit: func(s string) bool {
		_, err = io.WriteString(out, s)
		return err == nil
	}})
	return err
}

// walker performs one render pass. An empty indent means compact output.
type walker struct {
	indent string
	emit   emitFunc
}

func (w *walker) pretty() bool {
	return w.indent != ""
}

func (w *walker) pad(level int) string {
	if !w.pretty() || level == 0 {
		return ""
	}
	return strings.Repeat(w.indent, level)
}

func (w *walker) newline() string {
	if w.pretty() {
		return "\n"
	}
	return ""
}

// element renders a node at the given indent level. Fragments render their
// children at level zero with no markup of their own.
func (w *walker) element(el *vdom.Element, level int) bool {
	if el.IsFragment() {
		for _, child := range el.Children() {
			if !w.child(el, child, 0) {
				return false
			}
		}
		return true
	}

	pad := w.pad(level)
	open := pad + w.openTag(el)
	if el.IsVoid() {
		return w.emit(open + "/>" + w.newline())
	}
	if !w.emit(open + ">" + w.newline()) {
		return false
	}
	for _, child := range el.Children() {
		if !w.child(el, child, level+1) {
			return false
		}
	}
	return w.emit(pad + "</" + el.Name() + ">" + w.newline())
}

// child renders a stored child. Stored strings are already escape-safe.
func (w *walker) child(parent *vdom.Element, child any, level int) bool {
	switch v := child.(type) {
	case *vdom.Element:
		return w.element(v, level)
	case string:
		return w.text(v, level)
	case vdom.Deferred:
		return w.produced(parent, v(), level)
	}
	return true
}

// produced renders the result of a deferred child. Elements render as
// nested nodes; anything else is stringified and escaped unless the parent
// is raw-text.
func (w *walker) produced(parent *vdom.Element, value any, level int) bool {
	var s string
	switch v := value.(type) {
	case nil:
		return true
	case *vdom.Element:
		if v == nil {
			return true
		}
		return w.element(v, level)
	case string:
		s = v
	default:
		s = vdom.Stringify(v)
	}
	if !parent.IsRawText() {
		s = vdom.EscapeHTML(s)
	}
	return w.text(s, level)
}

// text emits text verbatim in compact mode. In pretty mode the text is
// trimmed, skipped when empty, and each of its lines is indented.
func (w *walker) text(s string, level int) bool {
	if !w.pretty() {
		if s == "" {
			return true
		}
		return w.emit(s)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	pad := w.pad(level)
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			b.WriteString(pad)
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return w.emit(b.String())
}

// attrPart is one rendered attribute keyed for sorting.
type attrPart struct {
	key  string
	text string
}

// openTag renders "<name" plus the sorted attribute list, evaluating
// deferred attribute values once.
func (w *walker) openTag(el *vdom.Element) string {
	attrs := el.Attrs()
	parts := make([]attrPart, 0, len(attrs)+1)

	if classes := el.Classes(); len(classes) > 0 {
		parts = append(parts, attrPart{
			key:  "class",
			text: `class="` + vdom.EscapeAttr(strings.Join(classes, " ")) + `"`,
		})
	}

	for _, key := range el.AttrKeys() {
		value := attrs[key]
		if fn, ok := value.(vdom.Deferred); ok {
			value = fn()
		}
		if vdom.IsAbsent(value) {
			continue
		}
		if value == nil {
			parts = append(parts, attrPart{key: key, text: key})
			continue
		}
		parts = append(parts, attrPart{
			key:  key,
			text: key + `="` + vdom.EscapeAttr(vdom.Stringify(value)) + `"`,
		})
	}

	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].key < parts[j].key
	})

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(el.Name())
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p.text)
	}
	return b.String()
}

// String renders an element tree compactly.
func String(node *vdom.Element) string {
	return compact.RenderToString(node)
}

// Pretty renders an element tree with tab indentation.
func Pretty(node *vdom.Element) string {
	return indented.RenderToString(node)
}

// HTML5 renders a full document.
func HTML5(page *vdom.Page, pretty bool) string {
	if pretty {
		return indented.RenderPageToString(page)
	}
	return compact.RenderPageToString(page)
}

var (
	compact  = NewRenderer(RendererConfig{})
	indented = NewRenderer(RendererConfig{Pretty: true})
)
