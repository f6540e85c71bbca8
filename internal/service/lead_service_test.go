package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

func setupLeadTest(t *testing.T) (*mocks.MockLeadRepository, *mocks.MockProspectRepository, *mocks.MockAuthService, *LeadService) {
	ctrl := gomock.NewController(t)
	leads := mocks.NewMockLeadRepository(ctrl)
	prospects := mocks.NewMockProspectRepository(ctrl)
	auth := mocks.NewMockAuthService(ctrl)
	return leads, prospects, auth, NewLeadService(leads, prospects, auth, logger.NewMockLogger(t))
}

func TestLeadService_ConvertLeadToProspect(t *testing.T) {
	scout := &domain.User{ID: "scout-1"}
	lead := func() *domain.Lead {
		return &domain.Lead{
			ID: "lead-1", OrganizationID: "org-1", Name: "Riley Shaw", Email: "riley@example.com",
			Phone: "+1 (555) 867-5309", Status: domain.LeadQualified, Notes: "met at tryout",
		}
	}

	t.Run("creates prospect and closes lead", func(t *testing.T) {
		leads, prospects, auth, svc := setupLeadTest(t)
		expectAuthorize(auth, "org-1", scout, domain.RoleScout)
		leads.EXPECT().GetByID(gomock.Any(), "org-1", "lead-1").Return(lead(), nil)
		prospects.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Prospect) error {
				assert.Equal(t, domain.ProspectSourceLead, p.Source)
				assert.Equal(t, domain.ProspectNew, p.Status)
				assert.Equal(t, "5558675309", p.Phone)
				assert.Equal(t, "met at tryout", p.Notes)
				return nil
			})
		leads.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *domain.Lead) error {
				assert.Equal(t, domain.LeadConverted, l.Status)
				return nil
			})

		p, err := svc.ConvertLeadToProspect(context.Background(), "org-1", "lead-1")
		require.NoError(t, err)
		assert.Equal(t, "Riley Shaw", p.Name)
	})

	t.Run("already converted", func(t *testing.T) {
		leads, _, auth, svc := setupLeadTest(t)
		expectAuthorize(auth, "org-1", scout, domain.RoleScout)
		l := lead()
		l.Status = domain.LeadConverted
		leads.EXPECT().GetByID(gomock.Any(), "org-1", "lead-1").Return(l, nil)

		_, err := svc.ConvertLeadToProspect(context.Background(), "org-1", "lead-1")
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("prospect insert fails", func(t *testing.T) {
		leads, prospects, auth, svc := setupLeadTest(t)
		expectAuthorize(auth, "org-1", scout, domain.RoleScout)
		leads.EXPECT().GetByID(gomock.Any(), "org-1", "lead-1").Return(lead(), nil)
		prospects.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.ConvertLeadToProspect(context.Background(), "org-1", "lead-1")
		assert.EqualError(t, err, "db down")
	})
}

func TestLeadService_CreateLead(t *testing.T) {
	t.Run("duplicate email is a conflict", func(t *testing.T) {
		leads, _, auth, svc := setupLeadTest(t)
		expectAuthorize(auth, "org-1", &domain.User{ID: "s"}, domain.RoleScout)
		leads.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "leads_org_email_key"`})

		err := svc.CreateLead(context.Background(), &domain.Lead{OrganizationID: "org-1", Name: "A", Email: "a@example.com"})
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("defaults", func(t *testing.T) {
		leads, _, auth, svc := setupLeadTest(t)
		expectAuthorize(auth, "org-1", &domain.User{ID: "s"}, domain.RoleScout)
		leads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		l := &domain.Lead{OrganizationID: "org-1", Name: "A", Email: "A@Example.com"}
		require.NoError(t, svc.CreateLead(context.Background(), l))
		assert.Equal(t, domain.LeadNew, l.Status)
		assert.Equal(t, "website", l.Source)
		assert.Equal(t, "a@example.com", l.Email)
	})
}

func TestLeadService_ListLeads(t *testing.T) {
	leads, _, auth, svc := setupLeadTest(t)
	expectAuthorize(auth, "org-1", &domain.User{ID: "c"}, domain.RoleCoach)
	leads.EXPECT().List(gomock.Any(), "org-1", domain.LeadNew).Return(nil, nil)

	out, err := svc.ListLeads(context.Background(), "org-1", domain.LeadNew)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
