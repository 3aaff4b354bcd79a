// Package errors provides coded, categorized errors for tagz.
//
// Every failure surfaced by the document model carries a stable code
// (e.g. "E101") that maps to a registered template with a short message,
// a longer explanation and a documentation link. Errors compare equal under
// errors.Is when their codes match, so callers can test against the
// sentinels exported by the public packages:
//
//	if errors.Is(err, vdom.ErrVoidChildren) {
//	    // tried to give a <br> children
//	}
//
// # Categories
//
//   - structure: tree shape violations (children on void elements)
//   - type: values of the wrong kind (class assignment)
//   - lookup: missing keys
//   - config: tagz.json problems
//   - io: reading input
//   - publish: uploading rendered documents
//
// # Usage
//
//	err := errors.New("E101").
//	    WithDetail(`"br" is a void element`).
//	    WithSuggestion("Remove the children or use a non-void tag")
//
//	fmt.Println(err.Format())
package errors
