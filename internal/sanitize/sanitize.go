// FILE: lixenwraith/colog/internal/sanitize/sanitize.go
// Package sanitize provides a small, composable text-sanitization helper
// used by colog's formatters to keep log output free of control characters
// and other bytes that would corrupt a text or JSON log line.
//
// Adapted from lixenwraith/log's sanitizer package: same filter/transform
// bitmask design, trimmed to the policies colog's formatters actually use.
package sanitize

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching.
const (
	FilterNonPrintable uint64 = 1 << iota // runes not classified as printable by strconv.IsPrint
	FilterControl                         // control characters (unicode.IsControl)
	FilterJSONSpecial                     // '"' and '\\', which must be escaped inside a JSON string
)

// Transform flags for character transformation.
const (
	TransformHexEncode  uint64 = 1 << iota // encodes the rune's UTF-8 bytes as "<hex>"
	TransformJSONEscape                    // escapes with JSON-style backslashes
)

// Policy is a pre-configured filter+transform pair.
type Policy string

const (
	PolicyRaw  Policy = "raw"  // no-op passthrough
	PolicyText Policy = "text" // policy for sanitizing values written to text log lines
	PolicyJSON Policy = "json" // policy for sanitizing values embedded in JSON log lines
)

type rule struct {
	filter    uint64
	transform uint64
}

var policyRules = map[Policy][]rule{
	PolicyRaw:  {},
	PolicyText: {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyJSON: {{filter: FilterControl | FilterJSONSpecial, transform: TransformJSONEscape}},
}

var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterJSONSpecial:  func(r rune) bool { return r == '"' || r == '\\' },
}

// Sanitizer applies one or more policies to arbitrary text.
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates a Sanitizer with the given policy applied.
func New(policy Policy) *Sanitizer {
	s := &Sanitizer{buf: make([]byte, 0, 256)}
	if rules, ok := policyRules[policy]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Sanitize applies every configured rule to data, first match wins per rune.
func (s *Sanitizer) Sanitize(data string) string {
	s.buf = s.buf[:0]
	for _, r := range data {
		matched := false
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				applyTransform(&s.buf, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}
	return string(s.buf)
}

func matchesFilter(r rune, mask uint64) bool {
	for flag, checker := range filterCheckers {
		if mask&flag != 0 && checker(r) {
			return true
		}
	}
	return false
}

func applyTransform(buf *[]byte, r rune, mask uint64) {
	switch {
	case mask&TransformHexEncode != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		*buf = append(*buf, '<')
		*buf = append(*buf, hex.EncodeToString(runeBytes[:n])...)
		*buf = append(*buf, '>')
	case mask&TransformJSONEscape != 0:
		switch r {
		case '\n':
			*buf = append(*buf, '\\', 'n')
		case '\r':
			*buf = append(*buf, '\\', 'r')
		case '\t':
			*buf = append(*buf, '\\', 't')
		case '"':
			*buf = append(*buf, '\\', '"')
		case '\\':
			*buf = append(*buf, '\\', '\\')
		default:
			*buf = append(*buf, fmt.Sprintf("\\u%04x", r)...)
		}
	}
}
