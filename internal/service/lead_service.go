package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/smsgateway"
)

type LeadService struct {
	repo        domain.LeadRepository
	prospects   domain.ProspectRepository
	authService domain.AuthService
	logger      logger.Logger
	now         func() time.Time
}

func NewLeadService(repo domain.LeadRepository, prospects domain.ProspectRepository, authService domain.AuthService, logger logger.Logger) *LeadService {
	return &LeadService{
		repo:        repo,
		prospects:   prospects,
		authService: authService,
		logger:      logger,
		now:         time.Now,
	}
}

var _ domain.LeadService = (*LeadService)(nil)

func (s *LeadService) CreateLead(ctx context.Context, lead *domain.Lead) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, lead.OrganizationID, domain.ResourceLeads, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := lead.Validate(); err != nil {
		return err
	}
	lead.ID = uuid.New().String()
	lead.CreatedAt = s.now().UTC()
	lead.UpdatedAt = lead.CreatedAt
	if err := s.repo.Create(ctx, lead); err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("lead", "a lead with email "+lead.Email+" already exists")
		}
		s.logger.WithField("organization_id", lead.OrganizationID).Error(fmt.Sprintf("Failed to create lead: %v", err))
		return err
	}
	return nil
}

func (s *LeadService) GetLead(ctx context.Context, organizationID, id string) (*domain.Lead, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceLeads, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID, id)
}

func (s *LeadService) UpdateLead(ctx context.Context, lead *domain.Lead) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, lead.OrganizationID, domain.ResourceLeads, domain.ActionWrite)
	if err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, lead.OrganizationID, lead.ID)
	if err != nil {
		return err
	}
	if err := lead.Validate(); err != nil {
		return err
	}
	lead.CreatedAt = existing.CreatedAt
	lead.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, lead); err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("lead", "a lead with email "+lead.Email+" already exists")
		}
		return err
	}
	return nil
}

func (s *LeadService) DeleteLead(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceLeads, domain.ActionWrite)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, organizationID, id)
}

func (s *LeadService) ListLeads(ctx context.Context, organizationID string, status domain.LeadStatus) ([]*domain.Lead, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceLeads, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	if status != "" && !status.IsValid() {
		return nil, domain.NewValidationError("invalid lead status: " + string(status))
	}
	leads, err := s.repo.List(ctx, organizationID, status)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []*domain.Lead{}
	}
	return leads, nil
}

// ConvertLeadToProspect copies the lead into the recruiting pipeline and
// closes it as converted
func (s *LeadService) ConvertLeadToProspect(ctx context.Context, organizationID, leadID string) (*domain.Prospect, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceProspects, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	lead, err := s.repo.GetByID(ctx, organizationID, leadID)
	if err != nil {
		return nil, err
	}
	if lead.Status == domain.LeadConverted {
		return nil, domain.NewConflict("lead", "lead is already converted")
	}

	now := s.now().UTC()
	prospect := &domain.Prospect{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Name:           lead.Name,
		Email:          lead.Email,
		Status:         domain.ProspectNew,
		Source:         domain.ProspectSourceLead,
		Notes:          lead.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if phone, err := smsgateway.NormalizePhone(lead.Phone); err == nil {
		prospect.Phone = phone
	}
	if err := prospect.Validate(); err != nil {
		return nil, err
	}
	if err := s.prospects.Create(ctx, prospect); err != nil {
		s.logger.WithField("lead_id", leadID).Error(fmt.Sprintf("Failed to create prospect from lead: %v", err))
		return nil, err
	}

	lead.Status = domain.LeadConverted
	lead.UpdatedAt = now
	if err := s.repo.Update(ctx, lead); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"lead_id":     leadID,
			"prospect_id": prospect.ID,
		}).Error(fmt.Sprintf("Failed to mark lead converted: %v", err))
		return nil, err
	}
	return prospect, nil
}
