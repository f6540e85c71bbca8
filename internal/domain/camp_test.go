package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamp_Validate(t *testing.T) {
	start := time.Date(2026, 6, 22, 0, 0, 0, 0, time.UTC)
	valid := func() *Camp {
		return &Camp{OrganizationID: "o", Name: "QB Camp", Sport: "Football", Location: "Austin, TX",
			StartDate: start, EndDate: start.Add(48 * time.Hour), PriceCents: 19900, Capacity: 40}
	}

	c := valid()
	require.NoError(t, c.Validate())
	assert.Equal(t, CampStatusDraft, c.Status)
	assert.Equal(t, "football", c.Sport)

	tests := []struct {
		name   string
		mutate func(c *Camp)
	}{
		{"ends before start", func(c *Camp) { c.EndDate = start.Add(-time.Hour) }},
		{"negative price", func(c *Camp) { c.PriceCents = -1 }},
		{"no capacity", func(c *Camp) { c.Capacity = 0 }},
		{"no location", func(c *Camp) { c.Location = " " }},
		{"bad status", func(c *Camp) { c.Status = "full" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.True(t, IsValidation(c.Validate()))
		})
	}
}

func TestCampRegistrationRequest_Validate(t *testing.T) {
	req := CampRegistrationRequest{OrganizationID: "o", CampID: "c", ParticipantName: " Ava ",
		Email: "AVA@example.com", CouponCode: " summer10 "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Ava", req.ParticipantName)
	assert.Equal(t, "ava@example.com", req.Email)
	assert.Equal(t, "SUMMER10", req.CouponCode)

	req.Email = "ava"
	assert.Error(t, req.Validate())
}
