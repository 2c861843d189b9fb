package bot

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Policy decides how messages are normalized and how a trigger is found in
// a normalized message.
type Policy interface {
	Normalize(message string) string
	Contains(text, trigger string) bool
}

// Policy names accepted by PolicyByName.
const (
	PolicySubstring = "substring"
	PolicyWholeWord = "word"
)

// SubstringPolicy lower-cases the message and matches triggers anywhere in it,
// without regard to word boundaries: "pay" matches inside "repay".
type SubstringPolicy struct{}

func (SubstringPolicy) Normalize(message string) string { return strings.ToLower(message) }

func (SubstringPolicy) Contains(text, trigger string) bool {
	return strings.Contains(text, trigger)
}

// WholeWordPolicy lower-cases the message and only matches a trigger that is
// not directly adjacent to another letter or digit.
type WholeWordPolicy struct{}

func (WholeWordPolicy) Normalize(message string) string { return strings.ToLower(message) }

func (WholeWordPolicy) Contains(text, trigger string) bool {
	if trigger == "" {
		return false
	}
	for offset := 0; offset <= len(text)-len(trigger); {
		i := strings.Index(text[offset:], trigger)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(trigger)
		if isBoundary(text, start, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func isBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}

// PolicyByName returns the policy registered under name. The empty name selects
// the substring policy.
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicySubstring:
		return SubstringPolicy{}, nil
	case PolicyWholeWord, "whole_word":
		return WholeWordPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown match policy %q", name)
	}
}
