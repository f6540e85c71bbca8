package templates

import (
	"context"
	"fmt"
	"html"
	"strings"

	mjmlgo "github.com/Boostport/mjml-go"
)

// EmailContent is the input of the shared email layout
type EmailContent struct {
	Preheader  string
	Heading    string
	Paragraphs []string
	ButtonText string
	ButtonURL  string
	Footer     string
}

const brandColor = "#0b3d91"

// BuildMJML returns the MJML document for content. All text is HTML escaped.
func BuildMJML(c EmailContent) string {
	var b strings.Builder

	b.WriteString("<mjml><mj-head>")
	if c.Preheader != "" {
		fmt.Fprintf(&b, "<mj-preview>%s</mj-preview>", html.EscapeString(c.Preheader))
	}
	b.WriteString(`<mj-attributes><mj-all font-family="Helvetica, Arial, sans-serif"></mj-all></mj-attributes>`)
	b.WriteString("</mj-head><mj-body background-color=\"#f4f5f7\">")

	fmt.Fprintf(&b, `<mj-section background-color="%s"><mj-column><mj-text color="#ffffff" font-size="20px" font-weight="bold">Go4It Sports</mj-text></mj-column></mj-section>`, brandColor)

	b.WriteString(`<mj-section background-color="#ffffff"><mj-column>`)
	if c.Heading != "" {
		fmt.Fprintf(&b, `<mj-text font-size="22px" font-weight="bold">%s</mj-text>`, html.EscapeString(c.Heading))
	}
	for _, p := range c.Paragraphs {
		fmt.Fprintf(&b, `<mj-text font-size="15px" line-height="22px">%s</mj-text>`, html.EscapeString(p))
	}
	if c.ButtonURL != "" {
		text := c.ButtonText
		if text == "" {
			text = "Open"
		}
		fmt.Fprintf(&b, `<mj-button background-color="%s" href="%s">%s</mj-button>`, brandColor, html.EscapeString(c.ButtonURL), html.EscapeString(text))
	}
	b.WriteString("</mj-column></mj-section>")

	if c.Footer != "" {
		fmt.Fprintf(&b, `<mj-section><mj-column><mj-text font-size="12px" color="#6b7280">%s</mj-text></mj-column></mj-section>`, html.EscapeString(c.Footer))
	}

	b.WriteString("</mj-body></mjml>")
	return b.String()
}

// PlainText renders the same content without markup
func PlainText(c EmailContent) string {
	var parts []string
	if c.Heading != "" {
		parts = append(parts, c.Heading)
	}
	parts = append(parts, c.Paragraphs...)
	if c.ButtonURL != "" {
		parts = append(parts, c.ButtonURL)
	}
	if c.Footer != "" {
		parts = append(parts, c.Footer)
	}
	return strings.Join(parts, "\n\n")
}

// CompileEmail turns content into HTML through the MJML compiler
func CompileEmail(ctx context.Context, c EmailContent) (string, error) {
	out, err := mjmlgo.ToHTML(ctx, BuildMJML(c))
	if err != nil {
		return "", fmt.Errorf("failed to compile email layout: %w", err)
	}
	return out, nil
}
