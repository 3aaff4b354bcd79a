package vdom

import "fmt"

// absent is the type of the Absent sentinel.
type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent marks an attribute that must be omitted from the output.
// Assigning it removes the attribute; a Deferred that produces it drops the
// attribute for that render pass only.
var Absent = absent{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}

// Deferred is a zero-argument producer evaluated at render time.
//
// As a child it may produce an *Element or a string; as an attribute value it
// may produce a string, nil, Absent, or anything fmt can print. A Deferred is
// invoked at most once per render pass and its result is not evaluated again,
// so a Deferred producing another Deferred renders that value's printed form.
type Deferred func() any

// Attr is a single attribute assignment.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// A creates an attribute with the given key and value.
// Underscores in the key become hyphens when the attribute is applied
// through a constructor, so A("data_id", "1") renders as data-id="1".
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// asDeferred normalizes the function forms accepted in place of a Deferred.
func asDeferred(v any) (Deferred, bool) {
	switch fn := v.(type) {
	case Deferred:
		return fn, fn != nil
	case func() any:
		return Deferred(fn), fn != nil
	case func() string:
		if fn == nil {
			return nil, false
		}
		return func() any { return fn() }, true
	case func() *Element:
		if fn == nil {
			return nil, false
		}
		return func() any { return fn() }, true
	}
	return nil, false
}

// normalizeAttrValue maps booleans onto the attribute value model:
// true is a present, valueless attribute and false is Absent.
func normalizeAttrValue(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return nil
		}
		return Absent
	}
	if fn, ok := asDeferred(v); ok {
		return fn
	}
	return v
}

// Stringify converts a resolved attribute or child value to text.
// Elements use their Summary form.
func Stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case *Element:
		return val.Summary()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
