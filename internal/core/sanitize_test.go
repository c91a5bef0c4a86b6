// AngelaMos | 2026
// sanitize_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML(t *testing.T) {
	out := SanitizeHTML(`<p>Soft <b>cotton</b> tee</p><script>alert(1)</script>`)
	assert.Equal(t, "<p>Soft <b>cotton</b> tee</p>", out)

	out = SanitizeHTML(`<a href="javascript:alert(1)" onclick="x()">link</a>`)
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "onclick")
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Graphic Tees", StripTags("  <i>Graphic</i> Tees "))
	assert.Equal(t, "Tees & Tops", StripTags("Tees & Tops"))
}
