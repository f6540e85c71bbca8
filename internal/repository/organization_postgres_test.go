package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/repository/testutil"
)

func TestOrganizationRepository_Create(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	t.Run("inserts organization and owner", func(t *testing.T) {
		org := &domain.Organization{Name: "Go4It Academy", Slug: "go4it-academy"}
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO organizations`).
			WithArgs(sqlmock.AnyArg(), "Go4It Academy", "go4it-academy", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO organization_members`).
			WithArgs(sqlmock.AnyArg(), "user-1", domain.RoleOwner, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Create(ctx, org, "user-1"))
		assert.NotEmpty(t, org.ID)
	})

	t.Run("slug taken", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO organizations`).
			WillReturnError(&pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "organizations_slug_key"`})
		mock.ExpectRollback()

		err := repo.Create(ctx, &domain.Organization{Name: "X", Slug: "x"}, "user-1")
		var conflict *domain.ErrConflict
		assert.ErrorAs(t, err, &conflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_ListForUser(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewOrganizationRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM organizations o JOIN organization_members m ON m.organization_id = o.id WHERE m.user_id = \$1 ORDER BY o.name`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "sport", "created_at", "updated_at", "role"}).
			AddRow("o1", "Alpha", "alpha", "football", now, now, "owner").
			AddRow("o2", "Beta", "beta", nil, now, now, "coach"))

	orgs, err := repo.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, domain.RoleOwner, orgs[0].Role)
	assert.Equal(t, "", orgs[1].Sport)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_Members(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewOrganizationRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("get member", func(t *testing.T) {
		mock.ExpectQuery(`SELECT organization_id, user_id, role, created_at FROM organization_members WHERE organization_id = \$1 AND user_id = \$2`).
			WithArgs("o1", "u1").
			WillReturnRows(sqlmock.NewRows([]string{"organization_id", "user_id", "role", "created_at"}).AddRow("o1", "u1", "scout", now))
		m, err := repo.GetMember(ctx, "o1", "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleScout, m.Role)
	})

	t.Run("add member upserts role", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO organization_members (.+) ON CONFLICT \(organization_id, user_id\) DO UPDATE SET role`).
			WithArgs("o1", "u2", domain.RoleCoach, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		require.NoError(t, repo.AddMember(ctx, &domain.OrganizationMember{OrganizationID: "o1", UserID: "u2", Role: domain.RoleCoach}))
	})

	t.Run("remove missing member", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM organization_members WHERE organization_id = \$1 AND user_id = \$2`).
			WithArgs("o1", "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		assert.True(t, domain.IsNotFound(repo.RemoveMember(ctx, "o1", "ghost")))
	})

	t.Run("count owners", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM organization_members WHERE organization_id = \$1 AND role = \$2`).
			WithArgs("o1", domain.RoleOwner).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		n, err := repo.CountOwners(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("list with roles", func(t *testing.T) {
		mock.ExpectQuery(`SELECT user_id FROM organization_members WHERE organization_id = \$1 AND role = ANY\(\$2\)`).
			WithArgs("o1", `{"owner","admin"}`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u1").AddRow("u3"))
		ids, err := repo.ListUserIDsWithRoles(ctx, "o1", []domain.Role{domain.RoleOwner, domain.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u3"}, ids)
	})

	t.Run("list members", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM organization_members m JOIN users u`).
			WithArgs("o1").
			WillReturnRows(sqlmock.NewRows([]string{"organization_id", "user_id", "role", "created_at", "email", "name"}).
				AddRow("o1", "u1", "owner", now, "a@b.co", nil))
		members, err := repo.ListMembers(ctx, "o1")
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "a@b.co", members[0].Email)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
