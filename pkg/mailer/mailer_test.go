package mailer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/pkg/logger"
)

func testConfig() *Config {
	return &Config{
		SMTPHost:  "localhost",
		SMTPPort:  2525,
		FromEmail: "noreply@go4itsports.org",
		FromName:  "Go4It Sports",
	}
}

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		wantErr string
	}{
		{"valid", Message{To: "a@b.co", Subject: "Hi", Text: "body"}, ""},
		{"missing recipient", Message{Subject: "Hi", Text: "body"}, "recipient"},
		{"missing subject", Message{To: "a@b.co", Text: "body"}, "subject"},
		{"sms without subject", Message{To: "5551234567@vtext.com", Text: "body", Category: "sms"}, ""},
		{"missing body", Message{To: "a@b.co", Subject: "Hi"}, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSMTPMailer_BuildMessage(t *testing.T) {
	m := NewSMTPMailer(testConfig())

	msg, err := m.BuildMessage(Message{
		To:      "coach@example.com",
		ToName:  "Coach Carter",
		Subject: "Camp registration confirmed",
		HTML:    "<p>See you there</p>",
		Text:    "See you there",
		ReplyTo: "camps@go4itsports.org",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "Subject: Camp registration confirmed")
	assert.Contains(t, raw, "coach@example.com")
	assert.Contains(t, raw, "noreply@go4itsports.org")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "text/plain")
}

func TestSMTPMailer_BuildMessage_Invalid(t *testing.T) {
	m := NewSMTPMailer(testConfig())

	_, err := m.BuildMessage(Message{To: "not an email", Subject: "x", Text: "y"})
	assert.Error(t, err)

	_, err = m.BuildMessage(Message{Subject: "x", Text: "y"})
	assert.Error(t, err)
}

func TestConsoleMailer(t *testing.T) {
	m := NewConsoleMailer(logger.NewMockLogger(t))

	err := m.Send(context.Background(), Message{To: "a@b.co", Subject: "Code", Text: "123456"})
	require.NoError(t, err)

	err = m.Send(context.Background(), Message{To: "a@b.co"})
	assert.Error(t, err)

	sent := m.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "123456", sent[0].Text)
}
