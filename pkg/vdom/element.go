package vdom

import (
	"sort"
	"strings"

	"github.com/vango-dev/tagz/internal/errors"
)

var (
	// ErrVoidChildren is returned when children are given to a void element.
	ErrVoidChildren = errors.New("E101")

	// ErrClassType is returned when a class value has an unsupported type.
	ErrClassType = errors.New("E102")

	// ErrAttrNotFound is returned when looking up a missing attribute.
	ErrAttrNotFound = errors.New("E103")
)

// Element is a markup element, or a fragment when its name is empty.
//
// Children are *Element, string, or Deferred values. Plain string children
// of non raw-text elements are stored already escaped.
type Element struct {
	name     string
	classes  map[string]struct{}
	attrs    map[string]any
	children []any
	void     bool
	rawText  bool
}

// NewElement creates a non-void, escaping element. Arguments are handled as
// described for Tag.New.
func NewElement(name string, args ...any) (*Element, error) {
	return newElement(name, TagConfig{}, args)
}

// NewElementConfig creates an element with the Void and RawText flags of
// cfg. Default children and attributes in cfg are not applied.
func NewElementConfig(name string, cfg TagConfig, args ...any) (*Element, error) {
	return newElement(name, cfg, args)
}

func newElement(name string, cfg TagConfig, args []any) (*Element, error) {
	el := &Element{
		name:    EscapeHTML(name),
		classes: make(map[string]struct{}),
		attrs:   make(map[string]any),
		void:    cfg.Void,
		rawText: cfg.RawText,
	}
	if err := el.apply(args); err != nil {
		return nil, err
	}
	return el, nil
}

// apply processes constructor arguments in order.
func (e *Element) apply(args []any) error {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional children)
			continue

		case Attr:
			if err := e.applyAttr(v); err != nil {
				return err
			}

		case []Attr:
			for _, a := range v {
				if err := e.applyAttr(a); err != nil {
					return err
				}
			}

		case *Element:
			if v == nil {
				continue
			}
			if err := e.Append(v); err != nil {
				return err
			}

		case []*Element:
			for _, child := range v {
				if child == nil {
					continue
				}
				if err := e.Append(child); err != nil {
					return err
				}
			}

		case string:
			if err := e.Append(v); err != nil {
				return err
			}

		case []string:
			for _, s := range v {
				if err := e.Append(s); err != nil {
					return err
				}
			}

		default:
			fn, ok := asDeferred(arg)
			if !ok {
				return errors.Newf(errors.CategoryType, "unsupported argument of type %T for <%s>", arg, e.name)
			}
			if err := e.Append(fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyAttr applies a constructor attribute. Keys have underscores replaced
// by hyphens and class assignments merge into the class set.
func (e *Element) applyAttr(a Attr) error {
	if a.IsEmpty() {
		return nil
	}
	key := strings.ReplaceAll(a.Key, "_", "-")
	if isClassKey(key) {
		return e.addClasses(a.Value)
	}
	return e.SetAttr(key, a.Value)
}

func isClassKey(key string) bool {
	return key == "class" || key == "classes"
}

// Name returns the escaped tag name, empty for fragments.
func (e *Element) Name() string {
	return e.name
}

// IsFragment reports whether the element is a grouping pseudo-node.
func (e *Element) IsFragment() bool {
	return e.name == ""
}

// IsVoid reports whether the element can never have children.
func (e *Element) IsVoid() bool {
	return e.void
}

// IsRawText reports whether string children are emitted unescaped.
func (e *Element) IsRawText() bool {
	return e.rawText
}

// Append adds a child. Plain strings are escaped immediately unless the
// element is raw-text; Deferred children are escaped when rendered.
func (e *Element) Append(child any) error {
	if e.void {
		return errors.New("E101").WithDetailf("<%s> is a void element", e.name)
	}
	switch v := child.(type) {
	case string:
		if !e.rawText {
			v = EscapeHTML(v)
		}
		e.children = append(e.children, v)
	case *Element:
		if v == nil {
			return nil
		}
		e.children = append(e.children, v)
	default:
		fn, ok := asDeferred(child)
		if !ok {
			return errors.Newf(errors.CategoryType, "unsupported child of type %T for <%s>", child, e.name)
		}
		e.children = append(e.children, fn)
	}
	return nil
}

// Children returns a snapshot of the children.
func (e *Element) Children() []any {
	out := make([]any, len(e.children))
	copy(out, e.children)
	return out
}

// Len returns the number of children.
func (e *Element) Len() int {
	return len(e.children)
}

// SetAttr assigns an attribute.
//
// "class" and "classes" replace the class set. Absent and false remove the
// attribute; true and nil make it present without a value. Other values are
// stored as given and escaped at render time.
func (e *Element) SetAttr(key string, value any) error {
	if isClassKey(key) {
		return e.SetClasses(value)
	}
	key = EscapeHTML(key)
	value = normalizeAttrValue(value)
	if IsAbsent(value) {
		delete(e.attrs, key)
		return nil
	}
	e.attrs[key] = value
	return nil
}

// Attr returns the stored value of an attribute.
func (e *Element) Attr(key string) (any, error) {
	v, ok := e.attrs[EscapeHTML(key)]
	if !ok {
		return nil, errors.New("E103").WithDetailf("<%s> has no attribute %q", e.name, key)
	}
	return v, nil
}

// HasAttr reports whether an attribute is set.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.attrs[EscapeHTML(key)]
	return ok
}

// DeleteAttr removes an attribute. Deleting "class" clears the class set.
func (e *Element) DeleteAttr(key string) error {
	if isClassKey(key) {
		e.classes = make(map[string]struct{})
		return nil
	}
	key = EscapeHTML(key)
	if _, ok := e.attrs[key]; !ok {
		return errors.New("E103").WithDetailf("<%s> has no attribute %q", e.name, key)
	}
	delete(e.attrs, key)
	return nil
}

// Attrs returns a snapshot of the attribute map.
func (e *Element) Attrs() map[string]any {
	out := make(map[string]any, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// AttrKeys returns the attribute keys in sorted order.
func (e *Element) AttrKeys() []string {
	keys := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Copy returns a deep copy of the element. Element children are copied
// recursively; strings and attribute values (including Deferred ones) are
// shared.
func (e *Element) Copy() *Element {
	if e == nil {
		return nil
	}
	clone := &Element{
		name:     e.name,
		classes:  make(map[string]struct{}, len(e.classes)),
		attrs:    make(map[string]any, len(e.attrs)),
		children: make([]any, len(e.children)),
		void:     e.void,
		rawText:  e.rawText,
	}
	for c := range e.classes {
		clone.classes[c] = struct{}{}
	}
	for k, v := range e.attrs {
		clone.attrs[k] = v
	}
	for i, child := range e.children {
		if el, ok := child.(*Element); ok {
			clone.children[i] = el.Copy()
			continue
		}
		clone.children[i] = child
	}
	return clone
}

// Summary returns a short representation of the element: the opening tag
// with static attributes, followed by "...</name>" when it has children or
// "/>" otherwise. Deferred attribute values are not evaluated.
func (e *Element) Summary() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.name)
	if classes := e.Classes(); len(classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(EscapeAttr(strings.Join(classes, " ")))
		b.WriteByte('"')
	}
	for _, key := range e.AttrKeys() {
		b.WriteByte(' ')
		b.WriteString(key)
		switch v := e.attrs[key].(type) {
		case nil:
		case Deferred:
			b.WriteString(`="..."`)
		default:
			b.WriteString(`="`)
			b.WriteString(EscapeAttr(Stringify(v)))
			b.WriteByte('"')
		}
	}
	if len(e.children) > 0 {
		b.WriteString(">...</")
		b.WriteString(e.name)
		b.WriteByte('>')
	} else {
		b.WriteString("/>")
	}
	return b.String()
}
