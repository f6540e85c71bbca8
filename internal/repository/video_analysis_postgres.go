package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Go4ItSports/go4it/internal/domain"
)

// VideoAnalysisRepository stores GAR analyses
type VideoAnalysisRepository struct {
	systemDB *sql.DB
}

// NewVideoAnalysisRepository creates a new VideoAnalysisRepository
func NewVideoAnalysisRepository(db *sql.DB) domain.VideoAnalysisRepository {
	return &VideoAnalysisRepository{systemDB: db}
}

var videoAnalysisColumns = []string{
	"id", "organization_id", "athlete_id", "video_url", "sport", "duration_seconds", "status",
	"speed", "agility", "technique", "endurance", "decision", "gar_score", "tier",
	"strengths", "improvements", "error_message", "created_at", "completed_at",
}

func scanVideoAnalysis(row rowScanner) (*domain.VideoAnalysis, error) {
	var (
		v            domain.VideoAnalysis
		tier, errMsg sql.NullString
		completedAt  sql.NullTime
	)
	err := row.Scan(
		&v.ID, &v.OrganizationID, &v.AthleteID, &v.VideoURL, &v.Sport, &v.DurationSeconds, &v.Status,
		&v.Components.Speed, &v.Components.Agility, &v.Components.Technique, &v.Components.Endurance,
		&v.Components.Decision, &v.GARScore, &tier,
		pq.Array(&v.Strengths), pq.Array(&v.Improvements), &errMsg, &v.CreatedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Tier = domain.GARTier(tier.String)
	v.ErrorMessage = errMsg.String
	v.CompletedAt = timePtr(completedAt)
	if v.Strengths == nil {
		v.Strengths = []string{}
	}
	if v.Improvements == nil {
		v.Improvements = []string{}
	}
	return &v, nil
}

func (r *VideoAnalysisRepository) Create(ctx context.Context, v *domain.VideoAnalysis) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	v.CreatedAt = time.Now().UTC()
	if v.Status == "" {
		v.Status = domain.AnalysisStatusPending
	}

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("video_analyses").
		Columns("id", "organization_id", "athlete_id", "video_url", "sport", "duration_seconds", "status", "created_at").
		Values(v.ID, v.OrganizationID, v.AthleteID, v.VideoURL, v.Sport, v.DurationSeconds, v.Status, v.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create video analysis: %w", err)
	}
	return nil
}

// Complete stores the scores and copies the GAR onto the athlete atomically
func (r *VideoAnalysisRepository) Complete(ctx context.Context, v *domain.VideoAnalysis) error {
	return withTransaction(ctx, r.systemDB, func(tx *sql.Tx) error {
		res, err := execBuilder(ctx, tx, psql.Update("video_analyses").
			Set("status", v.Status).
			Set("speed", v.Components.Speed).
			Set("agility", v.Components.Agility).
			Set("technique", v.Components.Technique).
			Set("endurance", v.Components.Endurance).
			Set("decision", v.Components.Decision).
			Set("gar_score", v.GARScore).
			Set("tier", string(v.Tier)).
			Set("strengths", pq.Array(v.Strengths)).
			Set("improvements", pq.Array(v.Improvements)).
			Set("completed_at", nullTime(v.CompletedAt)).
			Where(sq.Eq{"id": v.ID, "organization_id": v.OrganizationID}))
		if err != nil {
			return fmt.Errorf("failed to complete video analysis: %w", err)
		}
		if err := expectOneRow(res, "video_analysis", v.ID); err != nil {
			return err
		}

		res, err = execBuilder(ctx, tx, psql.Update("athlete_profiles").
			Set("gar_score", v.GARScore).
			Set("updated_at", time.Now().UTC()).
			Where(sq.Eq{"id": v.AthleteID, "organization_id": v.OrganizationID}))
		if err != nil {
			return fmt.Errorf("failed to update athlete gar score: %w", err)
		}
		return expectOneRow(res, "athlete", v.AthleteID)
	})
}

func (r *VideoAnalysisRepository) MarkFailed(ctx context.Context, organizationID, id, reason string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Update("video_analyses").
		Set("status", domain.AnalysisStatusFailed).
		Set("error_message", reason).
		Set("completed_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to mark video analysis failed: %w", err)
	}
	return expectOneRow(res, "video_analysis", id)
}

func (r *VideoAnalysisRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.VideoAnalysis, error) {
	query, args, err := psql.Select(videoAnalysisColumns...).
		From("video_analyses").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	v, err := scanVideoAnalysis(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "video_analysis", id, "get video analysis")
	}
	return v, nil
}

func (r *VideoAnalysisRepository) ListByAthlete(ctx context.Context, organizationID, athleteID string, limit int) ([]*domain.VideoAnalysis, error) {
	query, args, err := psql.Select(videoAnalysisColumns...).
		From("video_analyses").
		Where(sq.Eq{"athlete_id": athleteID, "organization_id": organizationID}).
		OrderBy("created_at DESC").
		Limit(pageLimit(limit, 20, 100)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list video analyses: %w", err)
	}
	defer rows.Close()

	analyses := []*domain.VideoAnalysis{}
	for rows.Next() {
		v, err := scanVideoAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video analysis: %w", err)
		}
		analyses = append(analyses, v)
	}
	return analyses, rows.Err()
}

func (r *VideoAnalysisRepository) CountSince(ctx context.Context, organizationID string, since time.Time) (int, error) {
	n, err := countQuery(ctx, r.systemDB, psql.Select("COUNT(*)").
		From("video_analyses").
		Where(sq.Eq{"organization_id": organizationID}).
		Where(sq.GtOrEq{"created_at": since.UTC()}))
	if err != nil {
		return 0, fmt.Errorf("failed to count video analyses: %w", err)
	}
	return n, nil
}
