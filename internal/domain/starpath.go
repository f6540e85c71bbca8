package domain

import (
	"context"
	"database/sql"
	"time"
)

//go:generate mockgen -destination mocks/mock_starpath_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain StarPathRepository
//go:generate mockgen -destination mocks/mock_starpath_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain StarPathService

const (
	MaxLevel       = 50
	xpPerLevelStep = 50
)

type XPSource string

const (
	XPSourceVideoAnalysis    XPSource = "video_analysis"
	XPSourceCourseCompletion XPSource = "course_completion"
	XPSourceCombine          XPSource = "combine"
	XPSourceManual           XPSource = "manual"
)

const (
	CourseCompletionXP = 200
	CombineResultXP    = 100
)

// XPForLevel is the cumulative XP needed to reach level n
func XPForLevel(n int) int {
	if n <= 1 {
		return 0
	}
	return xpPerLevelStep * n * (n - 1)
}

// LevelForXP returns the highest level whose threshold xp reaches, capped at MaxLevel
func LevelForXP(xp int) int {
	level := 1
	for level < MaxLevel && XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

type LevelProgress struct {
	Level        int `json:"level"`
	CurrentFloor int `json:"current_level_xp"`
	NextLevelXP  int `json:"next_level_xp"`
	Percent      int `json:"percent"`
}

// ProgressToNextLevel reports how far xp is between the current level floor and the next threshold
func ProgressToNextLevel(xp int) LevelProgress {
	level := LevelForXP(xp)
	floor := XPForLevel(level)
	if level >= MaxLevel {
		return LevelProgress{Level: level, CurrentFloor: floor, NextLevelXP: floor, Percent: 100}
	}
	next := XPForLevel(level + 1)
	return LevelProgress{
		Level:        level,
		CurrentFloor: floor,
		NextLevelXP:  next,
		Percent:      (xp - floor) * 100 / (next - floor),
	}
}

// StarPathProgress is the per athlete XP ledger summary
type StarPathProgress struct {
	AthleteID        string     `json:"athlete_id"`
	OrganizationID   string     `json:"organization_id"`
	TotalXP          int        `json:"total_xp"`
	Level            int        `json:"level"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ApplyStreak updates the streak for an activity on the given UTC day
func (p *StarPathProgress) ApplyStreak(at time.Time) {
	day := utcDay(at)
	switch {
	case p.LastActivityDate == nil:
		p.CurrentStreak = 1
	default:
		last := utcDay(*p.LastActivityDate)
		switch {
		case day.Before(last):
			return
		case day.Equal(last):
			if p.CurrentStreak == 0 {
				p.CurrentStreak = 1
			}
		case day.Equal(last.AddDate(0, 0, 1)):
			p.CurrentStreak++
		default:
			p.CurrentStreak = 1
		}
	}
	p.LastActivityDate = &day
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
}

// AddXP credits amount, applies the streak and recomputes the level. It returns the previous level.
func (p *StarPathProgress) AddXP(amount int, at time.Time) int {
	previous := p.Level
	if previous == 0 {
		previous = 1
	}
	p.TotalXP += amount
	p.ApplyStreak(at)
	p.Level = LevelForXP(p.TotalXP)
	p.UpdatedAt = at.UTC()
	return previous
}

// XPTransaction is one credit in the XP ledger
type XPTransaction struct {
	ID          string    `json:"id"`
	AthleteID   string    `json:"athlete_id"`
	Amount      int       `json:"amount"`
	Source      XPSource  `json:"source"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type AchievementCode string

const (
	AchievementFirstSteps AchievementCode = "first_steps"
	AchievementLevel5     AchievementCode = "level_5"
	AchievementLevel10    AchievementCode = "level_10"
	AchievementStreak7    AchievementCode = "streak_7"
	AchievementStreak30   AchievementCode = "streak_30"
	AchievementXP5000     AchievementCode = "xp_5000"
	AchievementEliteGAR   AchievementCode = "elite_gar"
)

// AchievementTitles is also the evaluation order
var AchievementTitles = []struct {
	Code  AchievementCode
	Title string
}{
	{AchievementFirstSteps, "First Steps"},
	{AchievementLevel5, "Rising Star"},
	{AchievementLevel10, "Double Digits"},
	{AchievementStreak7, "Week Warrior"},
	{AchievementStreak30, "Iron Habit"},
	{AchievementXP5000, "XP Hunter"},
	{AchievementEliteGAR, "Elite Performer"},
}

// AchievementTitle returns the display title for a code
func AchievementTitle(code AchievementCode) string {
	for _, a := range AchievementTitles {
		if a.Code == code {
			return a.Title
		}
	}
	return string(code)
}

// Achievement is an unlocked badge, at most one per code and athlete
type Achievement struct {
	ID         string          `json:"id"`
	AthleteID  string          `json:"athlete_id"`
	Code       AchievementCode `json:"code"`
	Title      string          `json:"title"`
	UnlockedAt time.Time       `json:"unlocked_at"`
}

// EligibleAchievements lists every code the progress currently qualifies for
func EligibleAchievements(p *StarPathProgress, source XPSource, garScore int) []AchievementCode {
	checks := map[AchievementCode]bool{
		AchievementFirstSteps: p.TotalXP > 0,
		AchievementLevel5:     p.Level >= 5,
		AchievementLevel10:    p.Level >= 10,
		AchievementStreak7:    p.CurrentStreak >= 7,
		AchievementStreak30:   p.CurrentStreak >= 30,
		AchievementXP5000:     p.TotalXP >= 5000,
		AchievementEliteGAR:   source == XPSourceVideoAnalysis && garScore >= 90,
	}
	var out []AchievementCode
	for _, a := range AchievementTitles {
		if checks[a.Code] {
			out = append(out, a.Code)
		}
	}
	return out
}

type AwardXPInput struct {
	OrganizationID string   `json:"organization_id"`
	AthleteID      string   `json:"athlete_id"`
	Amount         int      `json:"amount"`
	Source         XPSource `json:"source"`
	ReferenceID    string   `json:"reference_id,omitempty"`
	// GARScore is only read for video_analysis awards
	GARScore int `json:"gar_score,omitempty"`
}

func (i *AwardXPInput) Validate() error {
	if i.OrganizationID == "" || i.AthleteID == "" {
		return NewValidationError("organization_id and athlete_id are required")
	}
	if i.Amount <= 0 {
		return NewValidationError("xp amount must be positive")
	}
	if i.Amount > 100000 {
		return NewValidationError("xp amount is too large")
	}
	switch i.Source {
	case XPSourceVideoAnalysis, XPSourceCourseCompletion, XPSourceCombine, XPSourceManual:
	default:
		return NewValidationError("invalid xp source: " + string(i.Source))
	}
	return nil
}

type AwardXPResult struct {
	Progress        *StarPathProgress `json:"progress"`
	Transaction     *XPTransaction    `json:"transaction"`
	PreviousLevel   int               `json:"previous_level"`
	LeveledUp       bool              `json:"leveled_up"`
	NewAchievements []*Achievement    `json:"new_achievements"`
}

type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	AthleteID string `json:"athlete_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Sport     string `json:"sport"`
	TotalXP   int    `json:"total_xp"`
	Level     int    `json:"level"`
}

type StarPathView struct {
	Progress *StarPathProgress `json:"progress"`
	Next     LevelProgress     `json:"next"`
}

type StarPathService interface {
	// AwardXP is the internal entry point used by other services
	AwardXP(ctx context.Context, input AwardXPInput) (*AwardXPResult, error)
	// GrantXP is the authorized manual award
	GrantXP(ctx context.Context, input AwardXPInput) (*AwardXPResult, error)
	GetProgress(ctx context.Context, organizationID, athleteID string) (*StarPathView, error)
	ListAchievements(ctx context.Context, organizationID, athleteID string) ([]*Achievement, error)
	ListXPHistory(ctx context.Context, organizationID, athleteID string, limit int) ([]*XPTransaction, error)
	Leaderboard(ctx context.Context, organizationID string, limit int) ([]*LeaderboardEntry, error)
}

type StarPathRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
	// LockProgressTx creates the row when missing and returns it locked FOR UPDATE
	LockProgressTx(ctx context.Context, tx *sql.Tx, organizationID, athleteID string) (*StarPathProgress, error)
	SaveProgressTx(ctx context.Context, tx *sql.Tx, progress *StarPathProgress) error
	InsertTransactionTx(ctx context.Context, tx *sql.Tx, txn *XPTransaction) error
	// UnlockAchievementTx reports false when the athlete already had the code
	UnlockAchievementTx(ctx context.Context, tx *sql.Tx, achievement *Achievement) (bool, error)
	GetProgress(ctx context.Context, organizationID, athleteID string) (*StarPathProgress, error)
	ListAchievements(ctx context.Context, athleteID string) ([]*Achievement, error)
	ListTransactions(ctx context.Context, athleteID string, limit int) ([]*XPTransaction, error)
	Leaderboard(ctx context.Context, organizationID string, limit int) ([]*LeaderboardEntry, error)
}
