// FILE: lixenwraith/colog/internal/sanitize/sanitize_test.go
package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeText(t *testing.T) {
	s := New(PolicyText)
	out := s.Sanitize("hello\x01world")
	require.Equal(t, "hello<01>world", out)
}

func TestSanitizeJSON(t *testing.T) {
	s := New(PolicyJSON)
	out := s.Sanitize("line\nbreak\"quote")
	require.Equal(t, `line\nbreak\"quote`, out)
}

func TestSanitizeRawPassthrough(t *testing.T) {
	s := New(PolicyRaw)
	require.Equal(t, "unchanged\x01", s.Sanitize("unchanged\x01"))
}
