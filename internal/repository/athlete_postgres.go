package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
)

// AthleteRepository stores athlete profiles
type AthleteRepository struct {
	systemDB *sql.DB
}

// NewAthleteRepository creates a new AthleteRepository
func NewAthleteRepository(db *sql.DB) domain.AthleteRepository {
	return &AthleteRepository{systemDB: db}
}

var athleteColumns = []string{
	"id", "organization_id", "user_id", "first_name", "last_name", "email", "sport", "position",
	"graduation_year", "school", "city", "state", "height_inches", "weight_lbs", "gpa", "bio",
	"gar_score", "verified", "created_at", "updated_at",
}

func scanAthlete(row rowScanner) (*domain.AthleteProfile, error) {
	var (
		a                                    domain.AthleteProfile
		userID                               sql.NullString
		email, position, school, city, state sql.NullString
		bio                                  sql.NullString
		gradYear, height, weight, garScore   sql.NullInt64
		gpa                                  sql.NullFloat64
	)
	err := row.Scan(
		&a.ID, &a.OrganizationID, &userID, &a.FirstName, &a.LastName, &email, &a.Sport, &position,
		&gradYear, &school, &city, &state, &height, &weight, &gpa, &bio,
		&garScore, &a.Verified, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.UserID = stringPtr(userID)
	a.Email = email.String
	a.Position = position.String
	a.GraduationYear = int(gradYear.Int64)
	a.School = school.String
	a.City = city.String
	a.State = state.String
	a.HeightInches = int(height.Int64)
	a.WeightLbs = int(weight.Int64)
	a.GPA = gpa.Float64
	a.Bio = bio.String
	a.GARScore = intPtr(garScore)
	return &a, nil
}

func (r *AthleteRepository) Create(ctx context.Context, a *domain.AthleteProfile) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("athlete_profiles").
		Columns(athleteColumns...).
		Values(
			a.ID, a.OrganizationID, nullStringPtr(a.UserID), a.FirstName, a.LastName, nullString(a.Email),
			a.Sport, nullString(a.Position), nullInt(a.GraduationYear), nullString(a.School),
			nullString(a.City), nullString(a.State), nullInt(a.HeightInches), nullInt(a.WeightLbs),
			sql.NullFloat64{Float64: a.GPA, Valid: a.GPA != 0}, nullString(a.Bio),
			nullIntPtr(a.GARScore), a.Verified, a.CreatedAt, a.UpdatedAt,
		))
	if err != nil {
		return fmt.Errorf("failed to create athlete: %w", err)
	}
	return nil
}

func (r *AthleteRepository) getByID(ctx context.Context, q querier, organizationID, id string) (*domain.AthleteProfile, error) {
	query, args, err := psql.Select(athleteColumns...).
		From("athlete_profiles").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	a, err := scanAthlete(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "athlete", id, "get athlete")
	}
	return a, nil
}

func (r *AthleteRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.AthleteProfile, error) {
	return r.getByID(ctx, r.systemDB, organizationID, id)
}

func (r *AthleteRepository) GetByIDTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*domain.AthleteProfile, error) {
	return r.getByID(ctx, tx, organizationID, id)
}

func (r *AthleteRepository) Update(ctx context.Context, a *domain.AthleteProfile) error {
	a.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("athlete_profiles").
		SetMap(map[string]interface{}{
			"user_id":         nullStringPtr(a.UserID),
			"first_name":      a.FirstName,
			"last_name":       a.LastName,
			"email":           nullString(a.Email),
			"sport":           a.Sport,
			"position":        nullString(a.Position),
			"graduation_year": nullInt(a.GraduationYear),
			"school":          nullString(a.School),
			"city":            nullString(a.City),
			"state":           nullString(a.State),
			"height_inches":   nullInt(a.HeightInches),
			"weight_lbs":      nullInt(a.WeightLbs),
			"gpa":             sql.NullFloat64{Float64: a.GPA, Valid: a.GPA != 0},
			"bio":             nullString(a.Bio),
			"verified":        a.Verified,
			"updated_at":      a.UpdatedAt,
		}).
		Where(sq.Eq{"id": a.ID, "organization_id": a.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to update athlete: %w", err)
	}
	return expectOneRow(res, "athlete", a.ID)
}

func (r *AthleteRepository) Delete(ctx context.Context, organizationID, id string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Delete("athlete_profiles").
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to delete athlete: %w", err)
	}
	return expectOneRow(res, "athlete", id)
}

// athleteFilterWhere applies the optional list filters
func athleteFilterWhere(b sq.SelectBuilder, f domain.AthleteFilter) sq.SelectBuilder {
	b = b.Where(sq.Eq{"organization_id": f.OrganizationID})
	if f.Sport != "" {
		b = b.Where(sq.Eq{"sport": strings.ToLower(f.Sport)})
	}
	if f.Position != "" {
		b = b.Where(sq.ILike{"position": f.Position})
	}
	if f.GraduationYear != 0 {
		b = b.Where(sq.Eq{"graduation_year": f.GraduationYear})
	}
	if f.State != "" {
		b = b.Where(sq.ILike{"state": f.State})
	}
	if f.MinGAR > 0 {
		b = b.Where(sq.GtOrEq{"gar_score": f.MinGAR})
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
			sq.ILike{"first_name || ' ' || last_name": pattern},
			sq.ILike{"school": pattern},
		})
	}
	return b
}

func (r *AthleteRepository) List(ctx context.Context, filter domain.AthleteFilter) ([]*domain.AthleteProfile, int, error) {
	total, err := countQuery(ctx, r.systemDB, athleteFilterWhere(psql.Select("COUNT(*)").From("athlete_profiles"), filter))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count athletes: %w", err)
	}

	query, args, err := athleteFilterWhere(psql.Select(athleteColumns...).From("athlete_profiles"), filter).
		OrderBy("last_name", "first_name", "id").
		Limit(pageLimit(filter.Limit, 50, 200)).
		Offset(uint64(max(filter.Offset, 0))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	athletes, err := r.queryAthletes(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}
	return athletes, total, nil
}

func (r *AthleteRepository) queryAthletes(ctx context.Context, query string, args []interface{}) ([]*domain.AthleteProfile, error) {
	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	defer rows.Close()

	athletes := []*domain.AthleteProfile{}
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan athlete: %w", err)
		}
		athletes = append(athletes, a)
	}
	return athletes, rows.Err()
}

func (r *AthleteRepository) UpdateGARScore(ctx context.Context, organizationID, id string, score int) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Update("athlete_profiles").
		Set("gar_score", score).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to update gar score: %w", err)
	}
	return expectOneRow(res, "athlete", id)
}

func (r *AthleteRepository) TopByGAR(ctx context.Context, organizationID string, limit int) ([]*domain.AthleteProfile, error) {
	query, args, err := psql.Select(athleteColumns...).
		From("athlete_profiles").
		Where(sq.Eq{"organization_id": organizationID}).
		Where(sq.NotEq{"gar_score": nil}).
		OrderBy("gar_score DESC", "last_name", "id").
		Limit(pageLimit(limit, domain.DashboardTopAthletes, 100)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return r.queryAthletes(ctx, query, args)
}

func (r *AthleteRepository) GARStats(ctx context.Context, organizationID string) (int, float64, error) {
	query, args, err := psql.Select("COUNT(*)", "COALESCE(AVG(gar_score), 0)").
		From("athlete_profiles").
		Where(sq.Eq{"organization_id": organizationID}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build query: %w", err)
	}

	var (
		count int
		avg   float64
	)
	if err := r.systemDB.QueryRowContext(ctx, query, args...).Scan(&count, &avg); err != nil {
		return 0, 0, fmt.Errorf("failed to get gar stats: %w", err)
	}
	return count, avg, nil
}
