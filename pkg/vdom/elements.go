package vdom

import (
	"strings"
	"sync"
)

// TagConfig holds the per-tag defaults applied at construction time.
type TagConfig struct {
	// Void elements cannot have children and have no closing tag.
	Void bool

	// RawText elements emit their string children without escaping.
	RawText bool

	// DefaultChildren are prepended to the children of every instance.
	// Element defaults are copied per instance.
	DefaultChildren []any

	// DefaultAttrs are applied before the constructor's own attributes.
	DefaultAttrs map[string]any
}

// DefaultTags is the HTML5 defaults table.
var DefaultTags = map[string]TagConfig{
	"area":   {Void: true},
	"base":   {Void: true},
	"br":     {Void: true},
	"col":    {Void: true},
	"embed":  {Void: true},
	"hr":     {Void: true},
	"img":    {Void: true},
	"input":  {Void: true},
	"link":   {Void: true},
	"meta":   {Void: true},
	"param":  {Void: true},
	"source": {Void: true},
	"track":  {Void: true},
	"wbr":    {Void: true},
	"script": {RawText: true},
	"style":  {RawText: true},
}

// IsVoidElement returns true if the tag is void in the default table.
func IsVoidElement(tag string) bool {
	return DefaultTags[NormalizeTagName(tag)].Void
}

// NormalizeTagName lowercases a tag name and replaces underscores with
// hyphens, so "My_Custom_Tag" becomes "my-custom-tag".
func NormalizeTagName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// Tag is an element constructor bound to a tag name and its defaults.
type Tag struct {
	name   string
	config TagConfig
}

// Name returns the normalized tag name.
func (t *Tag) Name() string {
	return t.name
}

// Config returns the defaults the tag was created with.
func (t *Tag) Config() TagConfig {
	return t.config
}

// New creates an element.
//
// Arguments can be: nil, Attr, []Attr, *Element, []*Element, string,
// []string, Deferred, func() any, func() string, func() *Element.
// Element arguments are copied so the same element can be passed to several
// constructors. Giving children to a void tag fails with ErrVoidChildren.
func (t *Tag) New(args ...any) (*Element, error) {
	return t.build(args, true)
}

// Must is like New but panics on error.
func (t *Tag) Must(args ...any) *Element {
	el, err := t.New(args...)
	if err != nil {
		panic(err)
	}
	return el
}

func (t *Tag) build(args []any, copyChildren bool) (*Element, error) {
	all := make([]any, 0, len(t.config.DefaultAttrs)+len(t.config.DefaultChildren)+len(args))
	for k, v := range t.config.DefaultAttrs {
		all = append(all, Attr{Key: k, Value: v})
	}
	for _, c := range t.config.DefaultChildren {
		if el, ok := c.(*Element); ok {
			c = el.Copy()
		}
		all = append(all, c)
	}
	for _, arg := range args {
		if copyChildren {
			arg = copyArg(arg)
		}
		all = append(all, arg)
	}
	return newElement(t.name, t.config, all)
}

func copyArg(arg any) any {
	switch v := arg.(type) {
	case *Element:
		return v.Copy()
	case []*Element:
		out := make([]*Element, len(v))
		for i, el := range v {
			out[i] = el.Copy()
		}
		return out
	}
	return arg
}

// Factory hands out memoized Tag constructors configured from a defaults
// table. It is safe for concurrent use.
type Factory struct {
	mu       sync.Mutex
	defaults map[string]TagConfig
	tags     map[string]*Tag
}

// NewFactory creates a factory over the given defaults table. Table keys are
// normalized with NormalizeTagName.
func NewFactory(defaults map[string]TagConfig) *Factory {
	table := make(map[string]TagConfig, len(defaults))
	for name, cfg := range defaults {
		table[NormalizeTagName(name)] = cfg
	}
	return &Factory{
		defaults: table,
		tags:     make(map[string]*Tag),
	}
}

// Get returns the constructor for a tag name. Repeated calls with names
// that normalize to the same tag return the same *Tag.
func (f *Factory) Get(name string) *Tag {
	name = NormalizeTagName(name)

	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.tags[name]; ok {
		return t
	}
	t := &Tag{name: name, config: f.defaults[name]}
	f.tags[name] = t
	return t
}

// Config returns the defaults for a tag name.
func (f *Factory) Config(name string) TagConfig {
	return f.defaults[NormalizeTagName(name)]
}

// HTML is the default factory over DefaultTags.
var HTML = NewFactory(DefaultTags)

// El creates an element through the default factory.
func El(name string, args ...any) (*Element, error) {
	return HTML.Get(name).New(args...)
}

// MustEl is like El but panics on error.
func MustEl(name string, args ...any) *Element {
	return HTML.Get(name).Must(args...)
}
