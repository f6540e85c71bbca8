package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrganizationMemberKey(t *testing.T) {
	assert.Equal(t, contextKey("organization_member_org123"), OrganizationMemberKey("org123"))
	assert.Equal(t, contextKey("organization_member_"), OrganizationMemberKey(""))
	assert.NotEqual(t, OrganizationMemberKey("a"), OrganizationMemberKey("b"))
}

func TestSignInInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		want    string
		wantErr bool
	}{
		{name: "normalizes", email: "  Coach@Example.COM ", want: "coach@example.com"},
		{name: "empty", email: "  ", wantErr: true},
		{name: "malformed", email: "coach@", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := SignInInput{Email: tt.email}
			err := in.Validate()
			if tt.wantErr {
				assert.True(t, IsValidation(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, in.Email)
		})
	}
}

func TestVerifyCodeInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   VerifyCodeInput
		wantErr bool
	}{
		{name: "valid", input: VerifyCodeInput{Email: "a@b.com", Code: " 123456 "}},
		{name: "short code", input: VerifyCodeInput{Email: "a@b.com", Code: "12345"}, wantErr: true},
		{name: "letters", input: VerifyCodeInput{Email: "a@b.com", Code: "12a456"}, wantErr: true},
		{name: "bad email", input: VerifyCodeInput{Email: "nope", Code: "123456"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.True(t, IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
