package vdom

import (
	"iter"
	"sort"
	"strings"

	"github.com/vango-dev/tagz/internal/errors"
)

// Classes returns the class tokens in sorted order.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// HasClass reports whether the class token is set.
func (e *Element) HasClass(class string) bool {
	_, ok := e.classes[class]
	return ok
}

// AddClass adds class tokens. Each argument may hold several
// space-separated tokens.
func (e *Element) AddClass(classes ...string) {
	for _, c := range classes {
		for _, token := range strings.Fields(c) {
			e.classes[token] = struct{}{}
		}
	}
}

// RemoveClass removes class tokens.
func (e *Element) RemoveClass(classes ...string) {
	for _, c := range classes {
		for _, token := range strings.Fields(c) {
			delete(e.classes, token)
		}
	}
}

// SetClasses replaces the class set. Accepted values are a space-separated
// string, []string, map[string]struct{}, map[string]bool (true entries) and
// iter.Seq[string]; nil and Absent clear the set. Any other type fails with
// ErrClassType and leaves the set unchanged.
func (e *Element) SetClasses(value any) error {
	tokens, err := classTokens(value)
	if err != nil {
		return err
	}
	e.classes = make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		e.classes[t] = struct{}{}
	}
	return nil
}

// addClasses merges validated class tokens into the set.
func (e *Element) addClasses(value any) error {
	tokens, err := classTokens(value)
	if err != nil {
		return err
	}
	for _, t := range tokens {
		e.classes[t] = struct{}{}
	}
	return nil
}

func classTokens(value any) ([]string, error) {
	var raw []string
	switch v := value.(type) {
	case nil:
		return nil, nil
	case absent:
		return nil, nil
	case string:
		raw = []string{v}
	case []string:
		raw = v
	case map[string]struct{}:
		for c := range v {
			raw = append(raw, c)
		}
	case map[string]bool:
		for c, include := range v {
			if include {
				raw = append(raw, c)
			}
		}
	case iter.Seq[string]:
		for c := range v {
			raw = append(raw, c)
		}
	default:
		return nil, errors.New("E102").WithDetailf("got %T", value)
	}

	var tokens []string
	for _, r := range raw {
		tokens = append(tokens, strings.Fields(r)...)
	}
	return tokens, nil
}
