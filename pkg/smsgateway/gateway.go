// Package smsgateway delivers short text messages through carrier email-to-SMS gateways.
package smsgateway

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/Go4ItSports/go4it/pkg/mailer"
)

// MaxMessageLength is the length of a single SMS segment
const MaxMessageLength = 160

var (
	ErrUnknownCarrier = errors.New("unknown carrier")
	ErrInvalidPhone   = errors.New("invalid phone number")
)

var carrierGateways = map[string]string{
	"verizon":    "vtext.com",
	"att":        "txt.att.net",
	"tmobile":    "tmomail.net",
	"sprint":     "messaging.sprintpcs.com",
	"uscellular": "email.uscc.net",
	"boost":      "sms.myboostmobile.com",
	"cricket":    "sms.cricketwireless.net",
	"metropcs":   "mymetropcs.com",
	"googlefi":   "msg.fi.google.com",
}

// Carriers lists the supported carrier identifiers in alphabetical order
func Carriers() []string {
	out := make([]string, 0, len(carrierGateways))
	for c := range carrierGateways {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// NormalizeCarrier lowercases and strips separators, so "T-Mobile" becomes "tmobile"
func NormalizeCarrier(carrier string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(carrier) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	switch s := b.String(); s {
	case "atandt", "atampt":
		return "att"
	case "fi", "projectfi":
		return "googlefi"
	default:
		return s
	}
}

// IsSupportedCarrier reports whether messages can be routed for carrier
func IsSupportedCarrier(carrier string) bool {
	_, ok := carrierGateways[NormalizeCarrier(carrier)]
	return ok
}

// NormalizePhone reduces a North American number to its 10 digits
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return d, nil
}

// GatewayAddress returns the email address that reaches phone on carrier
func GatewayAddress(phone, carrier string) (string, error) {
	domain, ok := carrierGateways[NormalizeCarrier(carrier)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCarrier, carrier)
	}
	digits, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}
	return digits + "@" + domain, nil
}

// Truncate shortens message to fit a single segment, marking the cut with "..."
func Truncate(message string) string {
	runes := []rune(strings.TrimSpace(message))
	if len(runes) <= MaxMessageLength {
		return string(runes)
	}
	return string(runes[:MaxMessageLength-3]) + "..."
}

// Sender is the interface services depend on
type Sender interface {
	SendSMS(ctx context.Context, phone, carrier, message string) error
}

// Gateway sends SMS as plain-text email through a Mailer
type Gateway struct {
	mailer mailer.Mailer
}

func NewGateway(m mailer.Mailer) *Gateway {
	return &Gateway{mailer: m}
}

func (g *Gateway) SendSMS(ctx context.Context, phone, carrier, message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New("message is empty")
	}

	to, err := GatewayAddress(phone, carrier)
	if err != nil {
		return err
	}

	if err := g.mailer.Send(ctx, mailer.Message{
		To:       to,
		Text:     Truncate(message),
		Category: "sms",
	}); err != nil {
		return fmt.Errorf("failed to send sms via %s: %w", NormalizeCarrier(carrier), err)
	}
	return nil
}
