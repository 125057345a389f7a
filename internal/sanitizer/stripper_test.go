package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLStripper_StripHTML(t *testing.T) {
	s := NewHTMLStripper()

	assert.Equal(t, "u", s.StripHTML("u"))
	assert.Equal(t, "", s.StripHTML("<script>alert(1)</script>"))
	assert.Equal(t, "c", s.StripHTML("<b>c</b>"))
}

func TestHasMarkup(t *testing.T) {
	s := NewHTMLStripper()

	for _, value := range []string{"u", "&", "'", "\"", "<", ">", "Ö"} {
		assert.False(t, HasMarkup(s, value), value)
	}
	for _, value := range []string{"<b>", "<b>c</b>", "<script>alert(1)</script>"} {
		assert.True(t, HasMarkup(s, value), value)
	}
}
