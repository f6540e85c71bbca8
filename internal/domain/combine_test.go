package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineEvent_Validate(t *testing.T) {
	date := time.Date(2026, 7, 18, 9, 0, 0, 0, time.UTC)
	e := &CombineEvent{OrganizationID: "o", Name: "Dallas Stop", City: "Dallas", State: "tx",
		EventDate: date, Capacity: 150, Sports: []string{"Football", " track "}}
	require.NoError(t, e.Validate())
	assert.Equal(t, "TX", e.State)
	assert.Equal(t, date, e.RegistrationDeadline)
	assert.Equal(t, []string{"football", "track"}, e.Sports)
	assert.Equal(t, CombineScheduled, e.Status)

	e = &CombineEvent{OrganizationID: "o", Name: "x", City: "c", State: "s", EventDate: date,
		RegistrationDeadline: date.Add(time.Hour), Capacity: 1}
	assert.Error(t, e.Validate())

	e = &CombineEvent{OrganizationID: "o", Name: "x", City: "c", State: "s", EventDate: date, Capacity: 1,
		Sports: []string{"quidditch"}}
	assert.Error(t, e.Validate())
}

func TestCombineEvent_Windows(t *testing.T) {
	date := time.Date(2026, 7, 18, 15, 0, 0, 0, time.UTC)
	e := &CombineEvent{Status: CombineOpen, EventDate: date, RegistrationDeadline: date.Add(-24 * time.Hour)}

	assert.True(t, e.AcceptsRegistrations(date.Add(-48*time.Hour)))
	assert.True(t, e.AcceptsRegistrations(e.RegistrationDeadline))
	assert.False(t, e.AcceptsRegistrations(date))

	e.Status = CombineClosed
	assert.False(t, e.AcceptsRegistrations(date.Add(-48*time.Hour)))

	assert.False(t, e.ResultsOpen(date.Add(-16*time.Hour)))
	assert.True(t, e.ResultsOpen(time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC)), "same day counts")
	assert.True(t, e.ResultsOpen(date.Add(72*time.Hour)))
}

func TestCombineResult_Validate(t *testing.T) {
	forty := 4.52
	slow := 12.0
	reps := 18

	r := &CombineResult{CombineEventID: "e", AthleteID: "a", FortyYardDash: &forty, BenchReps: &reps}
	assert.NoError(t, r.Validate())

	r = &CombineResult{CombineEventID: "e", AthleteID: "a"}
	assert.Error(t, r.Validate(), "needs a measurement")

	r = &CombineResult{CombineEventID: "e", AthleteID: "a", FortyYardDash: &slow}
	assert.Error(t, r.Validate())
}
