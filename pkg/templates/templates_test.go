package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render(context.Background(), "Hi {{ prospect.name }}, {{ organization.name }} wants to see you play {{ prospect.sport | upcase }}.", map[string]interface{}{
		"prospect":     map[string]interface{}{"name": "Jordan", "sport": "football"},
		"organization": map[string]interface{}{"name": "Go4It Academy"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi Jordan, Go4It Academy wants to see you play FOOTBALL.", out)
}

func TestRenderer_RenderErrors(t *testing.T) {
	r := NewRenderer()

	_, err := r.Render(context.Background(), "{% if %}", nil)
	assert.Error(t, err)

	_, err = r.Render(context.Background(), strings.Repeat("x", DefaultMaxTemplateSize+1), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestRenderer_Validate(t *testing.T) {
	r := NewRenderer()
	assert.NoError(t, r.Validate("Hello {{ name }}"))
	assert.Error(t, r.Validate("Hello {% for %}"))
}

func TestBuildMJML(t *testing.T) {
	doc := BuildMJML(EmailContent{
		Preheader:  "Registration confirmed",
		Heading:    "You're in!",
		Paragraphs: []string{"Summer Elite Camp <Dallas>"},
		ButtonText: "View registration",
		ButtonURL:  "https://app.go4itsports.org/camps/1?a=1&b=2",
		Footer:     "Go4It Sports",
	})

	assert.True(t, strings.HasPrefix(doc, "<mjml>"))
	assert.Contains(t, doc, "<mj-preview>Registration confirmed</mj-preview>")
	assert.Contains(t, doc, "Summer Elite Camp &lt;Dallas&gt;")
	assert.Contains(t, doc, "a=1&amp;b=2")
	assert.Contains(t, doc, "<mj-button")
}

func TestPlainText(t *testing.T) {
	text := PlainText(EmailContent{Heading: "Level up", Paragraphs: []string{"You reached level 5"}, ButtonURL: "https://x.y"})
	assert.Equal(t, "Level up\n\nYou reached level 5\n\nhttps://x.y", text)
}
