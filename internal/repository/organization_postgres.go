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

// OrganizationRepository stores organizations and their members
type OrganizationRepository struct {
	systemDB *sql.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *sql.DB) domain.OrganizationRepository {
	return &OrganizationRepository{systemDB: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization, ownerID string) error {
	if org.ID == "" {
		org.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	org.CreatedAt = now
	org.UpdatedAt = now

	return withTransaction(ctx, r.systemDB, func(tx *sql.Tx) error {
		_, err := execBuilder(ctx, tx, psql.Insert("organizations").
			Columns("id", "name", "slug", "sport", "created_at", "updated_at").
			Values(org.ID, org.Name, org.Slug, nullString(org.Sport), org.CreatedAt, org.UpdatedAt))
		if err != nil {
			if domain.IsUniqueViolation(err) {
				return domain.NewConflict("organization", "slug already taken: "+org.Slug)
			}
			return fmt.Errorf("failed to create organization: %w", err)
		}

		_, err = execBuilder(ctx, tx, psql.Insert("organization_members").
			Columns("organization_id", "user_id", "role", "created_at").
			Values(org.ID, ownerID, domain.RoleOwner, now))
		if err != nil {
			return fmt.Errorf("failed to add owner: %w", err)
		}
		return nil
	})
}

func scanOrganization(row rowScanner, extra ...interface{}) (*domain.Organization, error) {
	var (
		org   domain.Organization
		sport sql.NullString
	)
	dest := append([]interface{}{&org.ID, &org.Name, &org.Slug, &sport, &org.CreatedAt, &org.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	org.Sport = sport.String
	return &org, nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	query, args, err := psql.Select("id", "name", "slug", "sport", "created_at", "updated_at").
		From("organizations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	org, err := scanOrganization(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "organization", id, "get organization")
	}
	return org, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	org.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("organizations").
		Set("name", org.Name).
		Set("sport", nullString(org.Sport)).
		Set("updated_at", org.UpdatedAt).
		Where(sq.Eq{"id": org.ID}))
	if err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}
	return expectOneRow(res, "organization", org.ID)
}

func (r *OrganizationRepository) ListForUser(ctx context.Context, userID string) ([]*domain.OrganizationWithRole, error) {
	query, args, err := psql.Select("o.id", "o.name", "o.slug", "o.sport", "o.created_at", "o.updated_at", "m.role").
		From("organizations o").
		Join("organization_members m ON m.organization_id = o.id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("o.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	result := []*domain.OrganizationWithRole{}
	for rows.Next() {
		var role domain.Role
		org, err := scanOrganization(rows, &role)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		result = append(result, &domain.OrganizationWithRole{Organization: *org, Role: role})
	}
	return result, rows.Err()
}

func (r *OrganizationRepository) GetMember(ctx context.Context, organizationID, userID string) (*domain.OrganizationMember, error) {
	query, args, err := psql.Select("organization_id", "user_id", "role", "created_at").
		From("organization_members").
		Where(sq.Eq{"organization_id": organizationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var m domain.OrganizationMember
	err = r.systemDB.QueryRowContext(ctx, query, args...).Scan(&m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err, "organization_member", userID, "get member")
	}
	return &m, nil
}

func (r *OrganizationRepository) ListMembers(ctx context.Context, organizationID string) ([]*domain.MemberWithUser, error) {
	query, args, err := psql.Select("m.organization_id", "m.user_id", "m.role", "m.created_at", "u.email", "u.name").
		From("organization_members m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.organization_id": organizationID}).
		OrderBy("m.created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []*domain.MemberWithUser{}
	for rows.Next() {
		var (
			m    domain.MemberWithUser
			name sql.NullString
		)
		if err := rows.Scan(&m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt, &m.Email, &name); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.Name = name.String
		members = append(members, &m)
	}
	return members, rows.Err()
}

func (r *OrganizationRepository) AddMember(ctx context.Context, member *domain.OrganizationMember) error {
	member.CreatedAt = time.Now().UTC()
	_, err := execBuilder(ctx, r.systemDB, psql.Insert("organization_members").
		Columns("organization_id", "user_id", "role", "created_at").
		Values(member.OrganizationID, member.UserID, member.Role, member.CreatedAt).
		Suffix("ON CONFLICT (organization_id, user_id) DO UPDATE SET role = EXCLUDED.role"))
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) RemoveMember(ctx context.Context, organizationID, userID string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Delete("organization_members").
		Where(sq.Eq{"organization_id": organizationID, "user_id": userID}))
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return expectOneRow(res, "organization_member", userID)
}

func (r *OrganizationRepository) CountOwners(ctx context.Context, organizationID string) (int, error) {
	n, err := countQuery(ctx, r.systemDB, psql.Select("COUNT(*)").
		From("organization_members").
		Where(sq.Eq{"organization_id": organizationID, "role": domain.RoleOwner}))
	if err != nil {
		return 0, fmt.Errorf("failed to count owners: %w", err)
	}
	return n, nil
}

func (r *OrganizationRepository) ListUserIDsWithRoles(ctx context.Context, organizationID string, roles []domain.Role) ([]string, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	query, args, err := psql.Select("user_id").
		From("organization_members").
		Where(sq.Eq{"organization_id": organizationID}).
		Where("role = ANY(?)", pq.Array(names)).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members by role: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
