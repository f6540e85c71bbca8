package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSVPStatusFor(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		headcount int
		guests    int
		want      RSVPStatus
	}{
		{"unlimited", 0, 500, 10, RSVPConfirmed},
		{"fits exactly", 10, 7, 2, RSVPConfirmed},
		{"one over", 10, 8, 2, RSVPWaitlisted},
		{"full", 5, 5, 0, RSVPWaitlisted},
		{"empty event", 1, 0, 0, RSVPConfirmed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RSVPStatusFor(tt.capacity, tt.headcount, tt.guests))
		})
	}
}

func TestPromotableRSVPs(t *testing.T) {
	a := &RSVP{ID: "a", Guests: 1} // 2 people
	b := &RSVP{ID: "b", Guests: 3} // 4 people
	c := &RSVP{ID: "c", Guests: 0} // 1 person

	t.Run("promotes in order while they fit", func(t *testing.T) {
		got := PromotableRSVPs(10, 4, []*RSVP{a, b, c})
		assert.Equal(t, []*RSVP{a, b}, got)
	})

	t.Run("stops at the first that does not fit", func(t *testing.T) {
		// b needs 4 seats but only 3 remain after a; c would fit but must wait
		got := PromotableRSVPs(10, 5, []*RSVP{a, b, c})
		assert.Equal(t, []*RSVP{a}, got)
	})

	t.Run("nothing fits", func(t *testing.T) {
		assert.Empty(t, PromotableRSVPs(3, 3, []*RSVP{c}))
	})

	t.Run("unlimited promotes everyone", func(t *testing.T) {
		assert.Len(t, PromotableRSVPs(0, 1000, []*RSVP{a, b, c}), 3)
	})
}

func TestEvent_Validate(t *testing.T) {
	start := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	e := &Event{OrganizationID: "o", Title: "Open Tryout", Type: EventKindTryout, StartsAt: start}
	require.NoError(t, e.Validate())
	assert.Equal(t, start.Add(2*time.Hour), e.EndsAt)

	e = &Event{OrganizationID: "o", Title: "t", Type: "party", StartsAt: start}
	assert.Error(t, e.Validate())

	e = &Event{OrganizationID: "o", Title: "t", Type: EventKindShowcase, StartsAt: start, EndsAt: start}
	assert.Error(t, e.Validate())
}

func TestLead_Validate(t *testing.T) {
	l := &Lead{OrganizationID: "o", Name: "Pat", Email: " PAT@EXAMPLE.COM "}
	require.NoError(t, l.Validate())
	assert.Equal(t, "pat@example.com", l.Email)
	assert.Equal(t, LeadNew, l.Status)
	assert.Equal(t, "website", l.Source)

	l = &Lead{OrganizationID: "o", Name: "Pat", Email: "pat@example.com", Status: "hot"}
	assert.Error(t, l.Validate())
}

func TestCreateRSVPRequest_Validate(t *testing.T) {
	r := CreateRSVPRequest{EventID: "e", Name: "Sam", Email: "sam@example.com", Guests: 10}
	assert.NoError(t, r.Validate())

	r.Guests = 11
	assert.Error(t, r.Validate())

	r.Guests = -1
	assert.Error(t, r.Validate())
}
