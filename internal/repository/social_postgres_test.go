package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
)

func TestSocialRepository_ClaimDuePosts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewSocialRepository(db)
	now := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM social_posts WHERE status = \$1 AND scheduled_at <= \$2 ORDER BY scheduled_at, id LIMIT 10 FOR UPDATE SKIP LOCKED`).
		WithArgs(domain.PostScheduled, now).
		WillReturnRows(sqlmock.NewRows(socialPostColumns).
			AddRow("p1", "org-1", "Signing day!", "{}", "{twitter,facebook}", "scheduled", now.Add(-time.Minute), nil,
				[]byte(`{}`), nil, now, now).
			AddRow("p2", "org-2", "Camp recap", `{https://cdn.example.com/a.jpg}`, "{instagram}", "scheduled", now, nil,
				[]byte(`{}`), "user-9", now, now))
	mock.ExpectExec(`UPDATE social_posts SET status = \$1, updated_at = \$2 WHERE id IN \(\$3,\$4\)`).
		WithArgs(domain.PostPublishing, now, "p1", "p2").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	posts, err := repo.ClaimDuePosts(context.Background(), now, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, []domain.SocialPlatform{domain.PlatformTwitter, domain.PlatformFacebook}, posts[0].Platforms)
	assert.Equal(t, domain.PostPublishing, posts[0].Status)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, posts[1].MediaURLs)
	assert.Equal(t, "user-9", posts[1].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialRepository_ClaimDuePosts_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewSocialRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM social_posts`).WillReturnRows(sqlmock.NewRows(socialPostColumns))
	mock.ExpectCommit()

	posts, err := repo.ClaimDuePosts(context.Background(), time.Now(), 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialRepository_ClaimPost(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewSocialRepository(db)

	mock.ExpectExec(`UPDATE social_posts SET status = \$1, updated_at = \$2 WHERE id = \$3 AND organization_id = \$4 AND status IN \(\$5,\$6\)`).
		WithArgs(domain.PostPublishing, sqlmock.AnyArg(), "p1", "org-1", domain.PostDraft, domain.PostScheduled).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.ClaimPost(context.Background(), "org-1", "p1")
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestSocialRepository_RequeuePost(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewSocialRepository(db)

	mock.ExpectExec(`UPDATE social_posts SET status = \$1, updated_at = \$2 WHERE id = \$3 AND organization_id = \$4 AND status = \$5`).
		WithArgs(domain.PostScheduled, sqlmock.AnyArg(), "p1", "org-1", domain.PostPublishing).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RequeuePost(context.Background(), &domain.SocialPost{ID: "p1", OrganizationID: "org-1", Status: domain.PostScheduled}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialRepository_FailStalePosts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewSocialRepository(db)
	cutoff := time.Date(2026, 2, 14, 8, 45, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE social_posts SET status = \$1, updated_at = \$2 WHERE status = \$3 AND updated_at < \$4`).
		WithArgs(domain.PostFailed, sqlmock.AnyArg(), domain.PostPublishing, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.FailStalePosts(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialRepository_UpsertAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewSocialRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO social_accounts (.+) ON CONFLICT \(organization_id, platform\) DO UPDATE SET (.+) RETURNING id, created_at, updated_at`).
		WithArgs(sqlmock.AnyArg(), "org-1", domain.PlatformTwitter, "go4it", "enc:abc", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("acc-existing", now, now))

	acc := &domain.SocialAccount{OrganizationID: "org-1", Platform: domain.PlatformTwitter, Handle: "go4it", EncryptedAccessToken: "enc:abc"}
	require.NoError(t, repo.UpsertAccount(context.Background(), acc))
	assert.Equal(t, "acc-existing", acc.ID)
}
