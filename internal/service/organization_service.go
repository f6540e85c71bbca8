package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type OrganizationService struct {
	repo        domain.OrganizationRepository
	userRepo    domain.UserRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewOrganizationService(repo domain.OrganizationRepository, userRepo domain.UserRepository, authService domain.AuthService, logger logger.Logger) *OrganizationService {
	return &OrganizationService{
		repo:        repo,
		userRepo:    userRepo,
		authService: authService,
		logger:      logger,
	}
}

var _ domain.OrganizationService = (*OrganizationService)(nil)

// CreateOrganization creates a tenant and makes the caller its owner
func (s *OrganizationService) CreateOrganization(ctx context.Context, req domain.CreateOrganizationRequest) (*domain.Organization, error) {
	user, err := s.authService.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	org, err := req.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, org, user.ID); err != nil {
		s.logger.WithField("slug", org.Slug).Error(fmt.Sprintf("Failed to create organization: %v", err))
		return nil, err
	}
	return org, nil
}

func (s *OrganizationService) GetOrganization(ctx context.Context, organizationID string) (*domain.Organization, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceOrganization, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID)
}

// UpdateOrganization changes the name, slug and sport
func (s *OrganizationService) UpdateOrganization(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, org.ID, domain.ResourceOrganization, domain.ActionWrite)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	existing.Name = org.Name
	existing.Sport = strings.ToLower(strings.TrimSpace(org.Sport))
	if org.Slug != "" {
		existing.Slug = strings.ToLower(strings.TrimSpace(org.Slug))
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.WithField("organization_id", org.ID).Error(fmt.Sprintf("Failed to update organization: %v", err))
		return nil, err
	}
	return existing, nil
}

func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]*domain.OrganizationWithRole, error) {
	user, err := s.authService.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListForUser(ctx, user.ID)
}

func (s *OrganizationService) ListMembers(ctx context.Context, organizationID string) ([]*domain.MemberWithUser, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceOrganization, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, organizationID)
}

// AddMember adds a user by email, creating the account when it does not exist yet.
// Only owners may grant the owner role.
func (s *OrganizationService) AddMember(ctx context.Context, req domain.AddMemberRequest) (*domain.MemberWithUser, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, _, caller, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceOrganization, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	if req.Role == domain.RoleOwner && caller.Role != domain.RoleOwner {
		return nil, domain.NewPermissionError(domain.ResourceOrganization, domain.ActionWrite, "only owners can add owners")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if !domain.IsNotFound(err) {
			return nil, err
		}
		user = &domain.User{Email: req.Email}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			s.logger.WithField("email", req.Email).Error(fmt.Sprintf("Failed to create invited user: %v", err))
			return nil, err
		}
	}

	member := &domain.OrganizationMember{
		OrganizationID: req.OrganizationID,
		UserID:         user.ID,
		Role:           req.Role,
	}
	if err := s.repo.AddMember(ctx, member); err != nil {
		s.logger.WithField("organization_id", req.OrganizationID).
			WithField("user_id", user.ID).
			Error(fmt.Sprintf("Failed to add member: %v", err))
		return nil, err
	}

	return &domain.MemberWithUser{
		OrganizationMember: *member,
		Email:              user.Email,
		Name:               user.Name,
	}, nil
}

// RemoveMember removes a membership. Members may always leave; removing others needs write access.
// The last owner can never be removed.
func (s *OrganizationService) RemoveMember(ctx context.Context, organizationID, userID string) error {
	ctx, caller, callerMember, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceOrganization, domain.ActionRead)
	if err != nil {
		return err
	}
	if caller.ID != userID && !callerMember.Can(domain.ResourceOrganization, domain.ActionWrite) {
		return domain.NewPermissionError(domain.ResourceOrganization, domain.ActionWrite, "only admins can remove members")
	}

	target, err := s.repo.GetMember(ctx, organizationID, userID)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleOwner {
		if caller.ID != userID && callerMember.Role != domain.RoleOwner {
			return domain.NewPermissionError(domain.ResourceOrganization, domain.ActionWrite, "only owners can remove owners")
		}
		owners, err := s.repo.CountOwners(ctx, organizationID)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return domain.NewConflict("organization_member", "cannot remove the last owner")
		}
	}

	if err := s.repo.RemoveMember(ctx, organizationID, userID); err != nil {
		s.logger.WithField("organization_id", organizationID).
			WithField("user_id", userID).
			Error(fmt.Sprintf("Failed to remove member: %v", err))
		return err
	}
	return nil
}
