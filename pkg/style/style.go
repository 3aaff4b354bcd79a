// Package style renders inline CSS declarations and small style sheets.
package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vango-dev/tagz/pkg/vdom"
)

// Style is a set of CSS declarations. Underscores in property names are
// rendered as hyphens, so "text_align" becomes "text-align".
//
// Style implements fmt.Stringer and can be used directly as an attribute
// value:
//
//	vdom.MustEl("div", vdom.StyleAttr(style.Style{"color": "#ff0000"}))
type Style map[string]any

// Set assigns a declaration and returns the style for chaining.
func (s Style) Set(property string, value any) Style {
	s[normalize(property)] = value
	return s
}

// String renders "property: value;" pairs sorted by property.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	raw := make([]string, 0, len(s))
	for k := range s {
		raw = append(raw, k)
	}
	sort.Strings(raw)

	// When "a_b" and "a-b" are both set, the key sorting last wins.
	props := make(map[string]any, len(s))
	for _, k := range raw {
		props[normalize(k)] = s[k]
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %v;", k, props[k])
	}
	return strings.Join(parts, " ")
}

func normalize(property string) string {
	return strings.ReplaceAll(property, "_", "-")
}

// StyleSheet maps selectors to styles. Use Add to register a rule for a
// selector group.
type StyleSheet map[string]Style

// Add registers a rule for one or more selectors. Several selectors form a
// group rendered as "a, b, c".
func (ss StyleSheet) Add(s Style, selectors ...string) StyleSheet {
	ss[strings.Join(selectors, ", ")] = s
	return ss
}

// String renders one "selector {declarations}" rule per line, sorted by
// selector.
func (ss StyleSheet) String() string {
	selectors := make([]string, 0, len(ss))
	for sel := range ss {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)

	rules := make([]string, len(selectors))
	for i, sel := range selectors {
		rules[i] = sel + " {" + ss[sel].String() + "}"
	}
	return strings.Join(rules, "\n")
}

// Element wraps the style sheet in a <style> element. Its content is not
// escaped.
func (ss StyleSheet) Element() *vdom.Element {
	return vdom.HTML.Get("style").Must(ss.String())
}
