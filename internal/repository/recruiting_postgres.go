package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Go4ItSports/go4it/internal/domain"
)

// ProspectRepository stores the recruiting pipeline
type ProspectRepository struct {
	systemDB *sql.DB
}

// NewProspectRepository creates a new ProspectRepository
func NewProspectRepository(db *sql.DB) domain.ProspectRepository {
	return &ProspectRepository{systemDB: db}
}

var prospectColumns = []string{
	"id", "organization_id", "name", "email", "phone", "carrier", "sport", "position", "graduation_year",
	"school", "state", "status", "score", "source", "source_url", "notes", "created_at", "updated_at",
}

func scanProspect(row rowScanner) (*domain.Prospect, error) {
	var (
		p                                  domain.Prospect
		email, phone, carrier, sport       sql.NullString
		position, school, state, sourceURL sql.NullString
		notes                              sql.NullString
		gradYear, score                    sql.NullInt64
	)
	err := row.Scan(&p.ID, &p.OrganizationID, &p.Name, &email, &phone, &carrier, &sport, &position, &gradYear,
		&school, &state, &p.Status, &score, &p.Source, &sourceURL, &notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Email = email.String
	p.Phone = phone.String
	p.Carrier = carrier.String
	p.Sport = sport.String
	p.Position = position.String
	p.GraduationYear = int(gradYear.Int64)
	p.School = school.String
	p.State = state.String
	p.Score = intPtr(score)
	p.SourceURL = sourceURL.String
	p.Notes = notes.String
	return &p, nil
}

func (r *ProspectRepository) Create(ctx context.Context, p *domain.Prospect) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("prospects").
		Columns(prospectColumns...).
		Values(p.ID, p.OrganizationID, p.Name, nullString(p.Email), nullString(p.Phone), nullString(p.Carrier),
			nullString(p.Sport), nullString(p.Position), nullInt(p.GraduationYear), nullString(p.School),
			nullString(p.State), p.Status, nullIntPtr(p.Score), p.Source, nullString(p.SourceURL),
			nullString(p.Notes), p.CreatedAt, p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create prospect: %w", err)
	}
	return nil
}

func (r *ProspectRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Prospect, error) {
	query, args, err := psql.Select(prospectColumns...).
		From("prospects").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	p, err := scanProspect(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "prospect", id, "get prospect")
	}
	return p, nil
}

func (r *ProspectRepository) Update(ctx context.Context, p *domain.Prospect) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("prospects").
		SetMap(map[string]interface{}{
			"name":            p.Name,
			"email":           nullString(p.Email),
			"phone":           nullString(p.Phone),
			"carrier":         nullString(p.Carrier),
			"sport":           nullString(p.Sport),
			"position":        nullString(p.Position),
			"graduation_year": nullInt(p.GraduationYear),
			"school":          nullString(p.School),
			"state":           nullString(p.State),
			"status":          p.Status,
			"score":           nullIntPtr(p.Score),
			"notes":           nullString(p.Notes),
			"updated_at":      p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID, "organization_id": p.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to update prospect: %w", err)
	}
	return expectOneRow(res, "prospect", p.ID)
}

func (r *ProspectRepository) Delete(ctx context.Context, organizationID, id string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Delete("prospects").
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to delete prospect: %w", err)
	}
	return expectOneRow(res, "prospect", id)
}

func prospectFilterWhere(b sq.SelectBuilder, f domain.ProspectFilter) sq.SelectBuilder {
	b = b.Where(sq.Eq{"organization_id": f.OrganizationID})
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		b = b.Where(sq.Eq{"status": statuses})
	}
	if f.Sport != "" {
		b = b.Where(sq.Eq{"sport": strings.ToLower(f.Sport)})
	}
	if f.GraduationYear != 0 {
		b = b.Where(sq.Eq{"graduation_year": f.GraduationYear})
	}
	if f.State != "" {
		b = b.Where(sq.Eq{"state": strings.ToUpper(f.State)})
	}
	if f.MinScore > 0 {
		b = b.Where(sq.GtOrEq{"score": f.MinScore})
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"school": pattern},
		})
	}
	return b
}

func (r *ProspectRepository) List(ctx context.Context, filter domain.ProspectFilter) ([]*domain.Prospect, int, error) {
	total, err := countQuery(ctx, r.systemDB, prospectFilterWhere(psql.Select("COUNT(*)").From("prospects"), filter))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count prospects: %w", err)
	}

	query, args, err := prospectFilterWhere(psql.Select(prospectColumns...).From("prospects"), filter).
		OrderBy("score DESC NULLS LAST", "created_at", "id").
		Limit(pageLimit(filter.Limit, 50, 500)).
		Offset(uint64(max(filter.Offset, 0))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list prospects: %w", err)
	}
	defer rows.Close()

	prospects := []*domain.Prospect{}
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan prospect: %w", err)
		}
		prospects = append(prospects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return prospects, total, nil
}

func (r *ProspectRepository) MarkContacted(ctx context.Context, organizationID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := execBuilder(ctx, r.systemDB, psql.Update("prospects").
		Set("status", domain.ProspectContacted).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"organization_id": organizationID, "status": domain.ProspectNew}).
		Where("id = ANY(?)", pq.Array(ids)))
	if err != nil {
		return fmt.Errorf("failed to mark prospects contacted: %w", err)
	}
	return nil
}

func (r *ProspectRepository) CountByStatus(ctx context.Context, organizationID string) (map[string]int, error) {
	query, args, err := psql.Select("status", "COUNT(*)").
		From("prospects").
		Where(sq.Eq{"organization_id": organizationID}).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return groupCounts(ctx, r.systemDB, query, args)
}

// groupCounts reads (key, count) rows into a map
func groupCounts(ctx context.Context, q querier, query string, args []interface{}) (map[string]int, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count by group: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

// CampaignRepository stores outreach campaigns
type CampaignRepository struct {
	systemDB *sql.DB
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *sql.DB) domain.CampaignRepository {
	return &CampaignRepository{systemDB: db}
}

var campaignColumns = []string{
	"id", "organization_id", "name", "channel", "subject", "body", "status", "filter", "sent_count",
	"failed_count", "launched_at", "completed_at", "created_at", "updated_at",
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		c                       domain.Campaign
		subject                 sql.NullString
		launchedAt, completedAt sql.NullTime
	)
	err := row.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.Channel, &subject, &c.Body, &c.Status, &c.Filter,
		&c.SentCount, &c.FailedCount, &launchedAt, &completedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Subject = subject.String
	c.LaunchedAt = timePtr(launchedAt)
	c.CompletedAt = timePtr(completedAt)
	return &c, nil
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("campaigns").
		Columns(campaignColumns...).
		Values(c.ID, c.OrganizationID, c.Name, c.Channel, nullString(c.Subject), c.Body, c.Status, c.Filter,
			c.SentCount, c.FailedCount, nullTime(c.LaunchedAt), nullTime(c.CompletedAt), c.CreatedAt, c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Campaign, error) {
	query, args, err := psql.Select(campaignColumns...).
		From("campaigns").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	c, err := scanCampaign(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "campaign", id, "get campaign")
	}
	return c, nil
}

// Update edits draft campaigns only
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("campaigns").
		Set("name", c.Name).
		Set("channel", c.Channel).
		Set("subject", nullString(c.Subject)).
		Set("body", c.Body).
		Set("filter", c.Filter).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID, "organization_id": c.OrganizationID, "status": domain.CampaignDraft}))
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	return expectOneRow(res, "campaign", c.ID)
}

func (r *CampaignRepository) Delete(ctx context.Context, organizationID, id string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Delete("campaigns").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		Where(sq.NotEq{"status": domain.CampaignSending}))
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return expectOneRow(res, "campaign", id)
}

func (r *CampaignRepository) List(ctx context.Context, organizationID string) ([]*domain.Campaign, error) {
	query, args, err := psql.Select(campaignColumns...).
		From("campaigns").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []*domain.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) ClaimDraft(ctx context.Context, organizationID, id string, launchedAt time.Time) (bool, error) {
	res, err := execBuilder(ctx, r.systemDB, psql.Update("campaigns").
		Set("status", domain.CampaignSending).
		Set("launched_at", launchedAt.UTC()).
		Set("updated_at", launchedAt.UTC()).
		Where(sq.Eq{"id": id, "organization_id": organizationID, "status": domain.CampaignDraft}))
	if err != nil {
		return false, fmt.Errorf("failed to claim campaign: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n == 1, nil
}

func (r *CampaignRepository) Finish(ctx context.Context, c *domain.Campaign) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("campaigns").
		Set("status", c.Status).
		Set("sent_count", c.SentCount).
		Set("failed_count", c.FailedCount).
		Set("completed_at", nullTime(c.CompletedAt)).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID, "organization_id": c.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to finish campaign: %w", err)
	}
	return expectOneRow(res, "campaign", c.ID)
}
