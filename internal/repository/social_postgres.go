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

// SocialRepository stores connected accounts and the post queue
type SocialRepository struct {
	systemDB *sql.DB
}

// NewSocialRepository creates a new SocialRepository
func NewSocialRepository(db *sql.DB) domain.SocialRepository {
	return &SocialRepository{systemDB: db}
}

var socialAccountColumns = []string{"id", "organization_id", "platform", "handle", "encrypted_access_token", "created_at", "updated_at"}

// UpsertAccount replaces the organization's account for the platform
func (r *SocialRepository) UpsertAccount(ctx context.Context, a *domain.SocialAccount) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()

	query, args, err := psql.Insert("social_accounts").
		Columns(socialAccountColumns...).
		Values(a.ID, a.OrganizationID, a.Platform, a.Handle, a.EncryptedAccessToken, now, now).
		Suffix("ON CONFLICT (organization_id, platform) DO UPDATE SET handle = EXCLUDED.handle, " +
			"encrypted_access_token = EXCLUDED.encrypted_access_token, updated_at = EXCLUDED.updated_at " +
			"RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if err := r.systemDB.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert social account: %w", err)
	}
	return nil
}

func (r *SocialRepository) ListAccounts(ctx context.Context, organizationID string) ([]*domain.SocialAccount, error) {
	query, args, err := psql.Select(socialAccountColumns...).
		From("social_accounts").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("platform").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list social accounts: %w", err)
	}
	defer rows.Close()

	accounts := []*domain.SocialAccount{}
	for rows.Next() {
		var a domain.SocialAccount
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.Platform, &a.Handle, &a.EncryptedAccessToken, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan social account: %w", err)
		}
		accounts = append(accounts, &a)
	}
	return accounts, rows.Err()
}

func (r *SocialRepository) DeleteAccount(ctx context.Context, organizationID, id string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Delete("social_accounts").
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to delete social account: %w", err)
	}
	return expectOneRow(res, "social_account", id)
}

var socialPostColumns = []string{
	"id", "organization_id", "content", "media_urls", "platforms", "status", "scheduled_at", "published_at",
	"results", "created_by", "created_at", "updated_at",
}

func scanSocialPost(row rowScanner) (*domain.SocialPost, error) {
	var (
		p                        domain.SocialPost
		mediaURLs, platforms     pq.StringArray
		scheduledAt, publishedAt sql.NullTime
		createdBy                sql.NullString
	)
	err := row.Scan(&p.ID, &p.OrganizationID, &p.Content, &mediaURLs, &platforms, &p.Status, &scheduledAt,
		&publishedAt, &p.Results, &createdBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.MediaURLs = []string(mediaURLs)
	if p.MediaURLs == nil {
		p.MediaURLs = []string{}
	}
	p.Platforms = make([]domain.SocialPlatform, len(platforms))
	for i, pl := range platforms {
		p.Platforms[i] = domain.SocialPlatform(pl)
	}
	p.ScheduledAt = timePtr(scheduledAt)
	p.PublishedAt = timePtr(publishedAt)
	p.CreatedBy = createdBy.String
	return &p, nil
}

func platformArray(platforms []domain.SocialPlatform) interface{} {
	out := make([]string, len(platforms))
	for i, p := range platforms {
		out[i] = string(p)
	}
	return pq.Array(out)
}

func (r *SocialRepository) CreatePost(ctx context.Context, p *domain.SocialPost) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.MediaURLs == nil {
		p.MediaURLs = []string{}
	}
	if p.Results == nil {
		p.Results = domain.PlatformResults{}
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("social_posts").
		Columns(socialPostColumns...).
		Values(p.ID, p.OrganizationID, p.Content, pq.Array(p.MediaURLs), platformArray(p.Platforms), p.Status,
			nullTime(p.ScheduledAt), nullTime(p.PublishedAt), p.Results, nullString(p.CreatedBy), p.CreatedAt, p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create social post: %w", err)
	}
	return nil
}

func (r *SocialRepository) GetPost(ctx context.Context, organizationID, id string) (*domain.SocialPost, error) {
	query, args, err := psql.Select(socialPostColumns...).
		From("social_posts").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	p, err := scanSocialPost(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "social_post", id, "get social post")
	}
	return p, nil
}

func (r *SocialRepository) UpdatePost(ctx context.Context, p *domain.SocialPost) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("social_posts").
		Set("content", p.Content).
		Set("media_urls", pq.Array(p.MediaURLs)).
		Set("platforms", platformArray(p.Platforms)).
		Set("status", p.Status).
		Set("scheduled_at", nullTime(p.ScheduledAt)).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID, "organization_id": p.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to update social post: %w", err)
	}
	return expectOneRow(res, "social_post", p.ID)
}

func (r *SocialRepository) DeletePost(ctx context.Context, organizationID, id string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Delete("social_posts").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		Where(sq.NotEq{"status": domain.PostPublishing}))
	if err != nil {
		return fmt.Errorf("failed to delete social post: %w", err)
	}
	return expectOneRow(res, "social_post", id)
}

func (r *SocialRepository) queryPosts(ctx context.Context, q querier, query string, args []interface{}) ([]*domain.SocialPost, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list social posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.SocialPost{}
	for rows.Next() {
		p, err := scanSocialPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan social post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *SocialRepository) ListPosts(ctx context.Context, organizationID string, status domain.SocialPostStatus) ([]*domain.SocialPost, error) {
	where := sq.Eq{"organization_id": organizationID}
	if status != "" {
		where["status"] = status
	}
	query, args, err := psql.Select(socialPostColumns...).
		From("social_posts").
		Where(where).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return r.queryPosts(ctx, r.systemDB, query, args)
}

func (r *SocialRepository) ClaimPost(ctx context.Context, organizationID, id string) (bool, error) {
	res, err := execBuilder(ctx, r.systemDB, psql.Update("social_posts").
		Set("status", domain.PostPublishing).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{
			"id":              id,
			"organization_id": organizationID,
			"status":          []domain.SocialPostStatus{domain.PostDraft, domain.PostScheduled},
		}))
	if err != nil {
		return false, fmt.Errorf("failed to claim social post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n == 1, nil
}

// ClaimDuePosts hands each due post to exactly one scheduler instance
func (r *SocialRepository) ClaimDuePosts(ctx context.Context, now time.Time, limit int) ([]*domain.SocialPost, error) {
	var posts []*domain.SocialPost
	err := withTransaction(ctx, r.systemDB, func(tx *sql.Tx) error {
		query, args, err := psql.Select(socialPostColumns...).
			From("social_posts").
			Where(sq.Eq{"status": domain.PostScheduled}).
			Where(sq.LtOrEq{"scheduled_at": now.UTC()}).
			OrderBy("scheduled_at", "id").
			Limit(pageLimit(limit, 20, 100)).
			Suffix("FOR UPDATE SKIP LOCKED").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}
		posts, err = r.queryPosts(ctx, tx, query, args)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			return nil
		}

		ids := make([]string, len(posts))
		for i, p := range posts {
			ids[i] = p.ID
			p.Status = domain.PostPublishing
		}
		_, err = execBuilder(ctx, tx, psql.Update("social_posts").
			Set("status", domain.PostPublishing).
			Set("updated_at", now.UTC()).
			Where(sq.Eq{"id": ids}))
		if err != nil {
			return fmt.Errorf("failed to claim due posts: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *SocialRepository) FinishPost(ctx context.Context, p *domain.SocialPost) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("social_posts").
		Set("status", p.Status).
		Set("results", p.Results).
		Set("published_at", nullTime(p.PublishedAt)).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID, "organization_id": p.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to finish social post: %w", err)
	}
	return expectOneRow(res, "social_post", p.ID)
}

// RequeuePost hands a publishing post back to its previous state when the
// publish never reached the platforms
func (r *SocialRepository) RequeuePost(ctx context.Context, p *domain.SocialPost) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("social_posts").
		Set("status", p.Status).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID, "organization_id": p.OrganizationID, "status": domain.PostPublishing}))
	if err != nil {
		return fmt.Errorf("failed to requeue social post: %w", err)
	}
	return expectOneRow(res, "social_post", p.ID)
}

// FailStalePosts marks posts stuck in publishing since before the cutoff as failed
func (r *SocialRepository) FailStalePosts(ctx context.Context, before time.Time) (int64, error) {
	res, err := execBuilder(ctx, r.systemDB, psql.Update("social_posts").
		Set("status", domain.PostFailed).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"status": domain.PostPublishing}).
		Where(sq.Lt{"updated_at": before.UTC()}))
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale social posts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n, nil
}
