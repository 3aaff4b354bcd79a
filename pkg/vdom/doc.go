// Package vdom provides the in-memory HTML document model for tagz.
//
// # Core Types
//
// Element is the single node type. It carries a tag name (empty for a
// fragment), a class set, an attribute map and ordered children. Children
// are *Element, string or Deferred values; attribute values are strings,
// nil (present without a value), Absent (omitted) or Deferred producers.
//
// Page groups an html root with its head and body.
//
// # Element API
//
// Elements are created through a Factory that maps tag names to
// constructors configured from a defaults table (void tags, raw-text tags,
// default children and attributes):
//
//	div := vdom.MustEl("div", vdom.Class("card"), vdom.ID("main"),
//	    vdom.MustEl("h1", "Title"),
//	    vdom.MustEl("p", "Content"),
//	)
//
// HTML.Get returns the same *Tag for names that normalize to the same tag,
// so HTML.Get("my_tag") == HTML.Get("my-tag").
//
// # Escaping
//
// Tag names and attribute keys are escaped at construction, string children
// when appended (unless the element is raw-text), and attribute values and
// deferred content when rendered by package render.
package vdom
