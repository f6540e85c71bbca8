package domain

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_organization_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain OrganizationRepository
//go:generate mockgen -destination mocks/mock_organization_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain OrganizationService

// Role is a member's role inside one organization
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleCoach   Role = "coach"
	RoleScout   Role = "scout"
	RoleAthlete Role = "athlete"
	RoleParent  Role = "parent"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleCoach, RoleScout, RoleAthlete, RoleParent:
		return true
	}
	return false
}

// IsStaff is true for roles that run the organization rather than train in it
func (r Role) IsStaff() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleCoach || r == RoleScout
}

// Resource names a permission scope
type Resource string

const (
	ResourceOrganization  Resource = "organization"
	ResourceAthletes      Resource = "athletes"
	ResourceAnalyses      Resource = "video_analyses"
	ResourceStarPath      Resource = "starpath"
	ResourceAcademy       Resource = "academy"
	ResourceEnrollments   Resource = "enrollments"
	ResourceTeams         Resource = "teams"
	ResourceCoupons       Resource = "coupons"
	ResourceCamps         Resource = "camps"
	ResourcePayments      Resource = "payments"
	ResourceProspects     Resource = "prospects"
	ResourceCampaigns     Resource = "campaigns"
	ResourceLeads         Resource = "leads"
	ResourceEvents        Resource = "events"
	ResourceCombine       Resource = "combine"
	ResourceTasks         Resource = "tasks"
	ResourceNotifications Resource = "notifications"
	ResourceSocial        Resource = "social"
	ResourceAdmin         Resource = "admin"
)

// AllResources lists every resource in display order
var AllResources = []Resource{
	ResourceOrganization, ResourceAthletes, ResourceAnalyses, ResourceStarPath,
	ResourceAcademy, ResourceEnrollments, ResourceTeams, ResourceCoupons, ResourceCamps,
	ResourcePayments, ResourceProspects, ResourceCampaigns, ResourceLeads, ResourceEvents,
	ResourceCombine, ResourceTasks, ResourceNotifications, ResourceSocial, ResourceAdmin,
}

// Action is either read or write; write implies read
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

type access struct {
	read  []Resource
	write []Resource
}

var roleAccess = map[Role]access{
	RoleCoach: {
		write: []Resource{
			ResourceAcademy, ResourceEnrollments, ResourceTeams, ResourceCamps,
			ResourceAthletes, ResourceAnalyses, ResourceTasks, ResourceNotifications,
		},
		read: []Resource{
			ResourceOrganization, ResourceStarPath, ResourceCoupons, ResourceProspects,
			ResourceCampaigns, ResourceLeads, ResourceEvents, ResourceCombine, ResourceSocial,
		},
	},
	RoleScout: {
		write: []Resource{
			ResourceProspects, ResourceCampaigns, ResourceLeads, ResourceEvents, ResourceNotifications,
		},
		read: []Resource{ResourceOrganization, ResourceAthletes, ResourceCombine},
	},
	RoleAthlete: {
		write: []Resource{ResourceNotifications, ResourceAnalyses, ResourceEnrollments},
		read: []Resource{
			ResourceOrganization, ResourceAthletes, ResourceAcademy, ResourceCamps,
			ResourceCombine, ResourceEvents, ResourceStarPath,
		},
	},
}

func init() {
	roleAccess[RoleParent] = roleAccess[RoleAthlete]
}

// RoleAllows reports whether role may perform action on resource
func RoleAllows(role Role, resource Resource, action Action) bool {
	if role == RoleOwner || role == RoleAdmin {
		return true
	}
	acl, ok := roleAccess[role]
	if !ok {
		return false
	}
	for _, r := range acl.write {
		if r == resource {
			return true
		}
	}
	if action != ActionRead {
		return false
	}
	for _, r := range acl.read {
		if r == resource {
			return true
		}
	}
	return false
}

// Organization is a tenant: a club, school or academy
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Sport     string    `json:"sport,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
var slugReplacer = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a url safe slug
func Slugify(name string) string {
	s := slugReplacer.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if len(s) > 50 {
		s = strings.TrimRight(s[:50], "-")
	}
	return s
}

func (o *Organization) Validate() error {
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return NewValidationError("organization name is required")
	}
	if len(o.Name) > 255 {
		return NewValidationError("organization name must be at most 255 characters")
	}
	if o.Slug == "" {
		o.Slug = Slugify(o.Name)
	}
	if len(o.Slug) < 3 || len(o.Slug) > 50 || !slugPattern.MatchString(o.Slug) {
		return NewValidationError("slug must be 3-50 lowercase letters, digits or hyphens")
	}
	if o.Sport != "" && !IsSupportedSport(o.Sport) {
		return NewValidationError("unsupported sport: " + o.Sport)
	}
	return nil
}

// OrganizationMember links a user to an organization with a role
type OrganizationMember struct {
	OrganizationID string    `json:"organization_id"`
	UserID         string    `json:"user_id"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// Can is a shortcut for RoleAllows on the member's role
func (m *OrganizationMember) Can(resource Resource, action Action) bool {
	return m != nil && RoleAllows(m.Role, resource, action)
}

// MemberWithUser is a membership joined with the user's identity
type MemberWithUser struct {
	OrganizationMember
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// OrganizationWithRole is an organization as seen by one of its members
type OrganizationWithRole struct {
	Organization
	Role Role `json:"role"`
}

type CreateOrganizationRequest struct {
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Sport string `json:"sport,omitempty"`
}

func (r *CreateOrganizationRequest) Validate() (*Organization, error) {
	org := &Organization{
		Name:  r.Name,
		Slug:  strings.ToLower(strings.TrimSpace(r.Slug)),
		Sport: strings.ToLower(strings.TrimSpace(r.Sport)),
	}
	if err := org.Validate(); err != nil {
		return nil, err
	}
	return org, nil
}

type AddMemberRequest struct {
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
}

func (r *AddMemberRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return NewValidationError("invalid email format")
	}
	if !r.Role.IsValid() {
		return NewValidationError("invalid role: " + string(r.Role))
	}
	return nil
}

type OrganizationService interface {
	CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*Organization, error)
	GetOrganization(ctx context.Context, organizationID string) (*Organization, error)
	UpdateOrganization(ctx context.Context, org *Organization) (*Organization, error)
	ListOrganizations(ctx context.Context) ([]*OrganizationWithRole, error)
	ListMembers(ctx context.Context, organizationID string) ([]*MemberWithUser, error)
	AddMember(ctx context.Context, req AddMemberRequest) (*MemberWithUser, error)
	RemoveMember(ctx context.Context, organizationID, userID string) error
}

type OrganizationRepository interface {
	// Create inserts the organization and its first owner atomically
	Create(ctx context.Context, org *Organization, ownerID string) error
	GetByID(ctx context.Context, id string) (*Organization, error)
	Update(ctx context.Context, org *Organization) error
	ListForUser(ctx context.Context, userID string) ([]*OrganizationWithRole, error)
	GetMember(ctx context.Context, organizationID, userID string) (*OrganizationMember, error)
	ListMembers(ctx context.Context, organizationID string) ([]*MemberWithUser, error)
	AddMember(ctx context.Context, member *OrganizationMember) error
	RemoveMember(ctx context.Context, organizationID, userID string) error
	CountOwners(ctx context.Context, organizationID string) (int, error)
	// ListUserIDsWithRoles returns members holding any of the given roles
	ListUserIDsWithRoles(ctx context.Context, organizationID string, roles []Role) ([]string, error)
}
