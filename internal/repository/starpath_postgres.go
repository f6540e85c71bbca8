package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
)

// StarPathRepository stores XP progress, the XP ledger and achievements
type StarPathRepository struct {
	systemDB *sql.DB
}

// NewStarPathRepository creates a new StarPathRepository
func NewStarPathRepository(db *sql.DB) domain.StarPathRepository {
	return &StarPathRepository{systemDB: db}
}

func (r *StarPathRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.systemDB, fn)
}

var progressColumns = []string{
	"athlete_id", "organization_id", "total_xp", "level", "current_streak", "longest_streak",
	"last_activity_date", "updated_at",
}

func scanProgress(row rowScanner) (*domain.StarPathProgress, error) {
	var (
		p            domain.StarPathProgress
		lastActivity sql.NullTime
	)
	err := row.Scan(&p.AthleteID, &p.OrganizationID, &p.TotalXP, &p.Level, &p.CurrentStreak,
		&p.LongestStreak, &lastActivity, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.LastActivityDate = timePtr(lastActivity)
	return &p, nil
}

// LockProgressTx creates the progress row on first use, then locks it
func (r *StarPathRepository) LockProgressTx(ctx context.Context, tx *sql.Tx, organizationID, athleteID string) (*domain.StarPathProgress, error) {
	_, err := execBuilder(ctx, tx, psql.Insert("starpath_progress").
		Columns("athlete_id", "organization_id", "total_xp", "level", "current_streak", "longest_streak", "updated_at").
		Values(athleteID, organizationID, 0, 1, 0, 0, time.Now().UTC()).
		Suffix("ON CONFLICT (athlete_id) DO NOTHING"))
	if err != nil {
		return nil, fmt.Errorf("failed to init starpath progress: %w", err)
	}

	query, args, err := psql.Select(progressColumns...).
		From("starpath_progress").
		Where(sq.Eq{"athlete_id": athleteID, "organization_id": organizationID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	p, err := scanProgress(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "starpath_progress", athleteID, "lock starpath progress")
	}
	return p, nil
}

func (r *StarPathRepository) SaveProgressTx(ctx context.Context, tx *sql.Tx, p *domain.StarPathProgress) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, tx, psql.Update("starpath_progress").
		Set("total_xp", p.TotalXP).
		Set("level", p.Level).
		Set("current_streak", p.CurrentStreak).
		Set("longest_streak", p.LongestStreak).
		Set("last_activity_date", nullTime(p.LastActivityDate)).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"athlete_id": p.AthleteID}))
	if err != nil {
		return fmt.Errorf("failed to save starpath progress: %w", err)
	}
	return expectOneRow(res, "starpath_progress", p.AthleteID)
}

func (r *StarPathRepository) InsertTransactionTx(ctx context.Context, tx *sql.Tx, txn *domain.XPTransaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now().UTC()
	}
	_, err := execBuilder(ctx, tx, psql.Insert("xp_transactions").
		Columns("id", "athlete_id", "amount", "source", "reference_id", "created_at").
		Values(txn.ID, txn.AthleteID, txn.Amount, txn.Source, nullString(txn.ReferenceID), txn.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert xp transaction: %w", err)
	}
	return nil
}

// UnlockAchievementTx relies on UNIQUE (athlete_id, code) so a code unlocks once
func (r *StarPathRepository) UnlockAchievementTx(ctx context.Context, tx *sql.Tx, a *domain.Achievement) (bool, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.UnlockedAt.IsZero() {
		a.UnlockedAt = time.Now().UTC()
	}
	res, err := execBuilder(ctx, tx, psql.Insert("achievements").
		Columns("id", "athlete_id", "code", "title", "unlocked_at").
		Values(a.ID, a.AthleteID, a.Code, a.Title, a.UnlockedAt).
		Suffix("ON CONFLICT (athlete_id, code) DO NOTHING"))
	if err != nil {
		return false, fmt.Errorf("failed to unlock achievement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n == 1, nil
}

func (r *StarPathRepository) GetProgress(ctx context.Context, organizationID, athleteID string) (*domain.StarPathProgress, error) {
	query, args, err := psql.Select(progressColumns...).
		From("starpath_progress").
		Where(sq.Eq{"athlete_id": athleteID, "organization_id": organizationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	p, err := scanProgress(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "starpath_progress", athleteID, "get starpath progress")
	}
	return p, nil
}

func (r *StarPathRepository) ListAchievements(ctx context.Context, athleteID string) ([]*domain.Achievement, error) {
	query, args, err := psql.Select("id", "athlete_id", "code", "title", "unlocked_at").
		From("achievements").
		Where(sq.Eq{"athlete_id": athleteID}).
		OrderBy("unlocked_at", "code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	achievements := []*domain.Achievement{}
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.AthleteID, &a.Code, &a.Title, &a.UnlockedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, &a)
	}
	return achievements, rows.Err()
}

func (r *StarPathRepository) ListTransactions(ctx context.Context, athleteID string, limit int) ([]*domain.XPTransaction, error) {
	query, args, err := psql.Select("id", "athlete_id", "amount", "source", "reference_id", "created_at").
		From("xp_transactions").
		Where(sq.Eq{"athlete_id": athleteID}).
		OrderBy("created_at DESC").
		Limit(pageLimit(limit, 50, 500)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list xp transactions: %w", err)
	}
	defer rows.Close()

	txns := []*domain.XPTransaction{}
	for rows.Next() {
		var (
			t   domain.XPTransaction
			ref sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.AthleteID, &t.Amount, &t.Source, &ref, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan xp transaction: %w", err)
		}
		t.ReferenceID = ref.String
		txns = append(txns, &t)
	}
	return txns, rows.Err()
}

func (r *StarPathRepository) Leaderboard(ctx context.Context, organizationID string, limit int) ([]*domain.LeaderboardEntry, error) {
	query, args, err := psql.Select("p.athlete_id", "a.first_name", "a.last_name", "a.sport", "p.total_xp", "p.level").
		From("starpath_progress p").
		Join("athlete_profiles a ON a.id = p.athlete_id").
		Where(sq.Eq{"p.organization_id": organizationID}).
		OrderBy("p.total_xp DESC", "p.updated_at", "p.athlete_id").
		Limit(pageLimit(limit, 10, 100)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []*domain.LeaderboardEntry{}
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.AthleteID, &e.FirstName, &e.LastName, &e.Sport, &e.TotalXP, &e.Level); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		e.Rank = len(entries) + 1
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
