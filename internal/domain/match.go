package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoMatch is returned when no object matches a name pattern
	ErrNoMatch = errors.New("no match")
	// ErrMultipleMatches is returned when a pattern matches more than one object
	ErrMultipleMatches = errors.New("multiple matches")
)

// MatchError reports a failed name lookup together with the candidates
// that were considered
type MatchError struct {
	Kind       string
	Pattern    string
	Candidates []string
	err        error
}

func (e *MatchError) Error() string {
	if errors.Is(e.err, ErrMultipleMatches) {
		return fmt.Sprintf("%s pattern %q matches multiple objects: %s",
			e.Kind, e.Pattern, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("no %s matches %q", e.Kind, e.Pattern)
}

func (e *MatchError) Unwrap() error {
	return e.err
}

// NameMatcher matches object names against a user supplied pattern. The
// pattern is a regular expression; if it does not compile it is matched as
// a literal substring.
type NameMatcher struct {
	re *regexp.Regexp
}

// NewNameMatcher compiles pattern into a matcher
func NewNameMatcher(pattern string, ignoreCase bool) *NameMatcher {
	expr := pattern
	if _, err := regexp.Compile(expr); err != nil {
		expr = regexp.QuoteMeta(pattern)
	}
	if ignoreCase {
		expr = "(?i)" + expr
	}
	return &NameMatcher{re: regexp.MustCompile(expr)}
}

// Match reports whether name matches the pattern
func (m *NameMatcher) Match(name string) bool {
	return m.re.MatchString(name)
}

// Filter returns the items whose name matches pattern
func Filter[T Named](items []T, pattern string, ignoreCase bool) []T {
	m := NewNameMatcher(pattern, ignoreCase)
	var out []T
	for _, it := range items {
		if m.Match(it.GetName()) {
			out = append(out, it)
		}
	}
	return out
}

// MatchOne returns the single item whose name matches pattern. An item
// whose name equals the pattern exactly wins over partial matches.
func MatchOne[T Named](items []T, kind, pattern string, ignoreCase bool) (T, error) {
	var zero T

	matches := Filter(items, pattern, ignoreCase)
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) == 0 {
		return zero, &MatchError{Kind: kind, Pattern: pattern, err: ErrNoMatch}
	}

	var exact []T
	for _, it := range matches {
		name := it.GetName()
		if name == pattern || (ignoreCase && strings.EqualFold(name, pattern)) {
			exact = append(exact, it)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}

	return zero, &MatchError{
		Kind:       kind,
		Pattern:    pattern,
		Candidates: Names(matches),
		err:        ErrMultipleMatches,
	}
}

// Names returns the names of items in order
func Names[T Named](items []T) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.GetName()
	}
	return names
}
