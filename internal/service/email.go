package service

import (
	"context"

	"github.com/Go4ItSports/go4it/pkg/mailer"
	"github.com/Go4ItSports/go4it/pkg/templates"
)

// sendLayoutEmail renders content with the shared MJML layout and sends it
func sendLayoutEmail(ctx context.Context, m mailer.Mailer, to, toName, subject, category string, content templates.EmailContent) error {
	html, err := templates.CompileEmail(ctx, content)
	if err != nil {
		return err
	}
	return m.Send(ctx, mailer.Message{
		To:       to,
		ToName:   toName,
		Subject:  subject,
		HTML:     html,
		Text:     templates.PlainText(content),
		Category: category,
	})
}
