package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type combineDeps struct {
	repo     *mocks.MockCombineRepository
	athletes *mocks.MockAthleteRepository
	payments *mocks.MockPaymentService
	starPath *mocks.MockStarPathService
	auth     *mocks.MockAuthService
}

func setupCombineTest(t *testing.T, now time.Time) (*combineDeps, *CombineService) {
	ctrl := gomock.NewController(t)
	d := &combineDeps{
		repo:     mocks.NewMockCombineRepository(ctrl),
		athletes: mocks.NewMockAthleteRepository(ctrl),
		payments: mocks.NewMockPaymentService(ctrl),
		starPath: mocks.NewMockStarPathService(ctrl),
		auth:     mocks.NewMockAuthService(ctrl),
	}
	d.repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx).AnyTimes()
	svc := NewCombineService(CombineServiceConfig{
		Repository:        d.repo,
		AthleteRepository: d.athletes,
		PaymentService:    d.payments,
		StarPathService:   d.starPath,
		AuthService:       d.auth,
		Logger:            logger.NewMockLogger(t),
	})
	svc.now = func() time.Time { return now }
	return d, svc
}

func openCombine(now time.Time, price int64) *domain.CombineEvent {
	return &domain.CombineEvent{
		ID: "cmb-1", OrganizationID: "org-1", Name: "Dallas Combine", City: "Dallas", State: "TX",
		EventDate: now.Add(72 * time.Hour), RegistrationDeadline: now.Add(24 * time.Hour),
		Capacity: 50, PriceCents: price, Sports: []string{"football"}, Status: domain.CombineOpen,
	}
}

func TestCombineService_RegisterAthlete(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	parent := &domain.User{ID: "parent-1"}
	athlete := &domain.AthleteProfile{ID: "ath-1", OrganizationID: "org-1", Sport: "football", Email: "ath@example.com"}
	req := domain.CombineRegisterRequest{OrganizationID: "org-1", CombineEventID: "cmb-1", AthleteID: "ath-1"}
	notFound := domain.NewNotFound("combine_registration", "ath-1")

	t.Run("priced event opens checkout", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", parent, domain.RoleParent)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(athlete, nil)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(openCombine(now, 7500), nil)
		d.repo.EXPECT().GetRegistrationTx(gomock.Any(), gomock.Any(), "cmb-1", "ath-1").Return(nil, notFound)
		d.repo.EXPECT().CountActiveRegistrationsTx(gomock.Any(), gomock.Any(), "cmb-1").Return(12, nil)
		d.repo.EXPECT().CreateRegistrationTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.payments.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r domain.CheckoutRequest) (*domain.CheckoutResult, error) {
				assert.Equal(t, domain.PurposeCombine, r.Purpose)
				assert.Equal(t, int64(7500), r.AmountCents)
				assert.Equal(t, "ath@example.com", r.Email)
				return &domain.CheckoutResult{SessionID: "cs_9", URL: "https://pay.example.com/cs_9"}, nil
			})

		res, err := svc.RegisterAthlete(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.CombinePendingPayment, res.Registration.Status)
		assert.Equal(t, "https://pay.example.com/cs_9", res.CheckoutURL)
	})

	t.Run("free event registers directly", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", parent, domain.RoleParent)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(athlete, nil)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(openCombine(now, 0), nil)
		d.repo.EXPECT().GetRegistrationTx(gomock.Any(), gomock.Any(), "cmb-1", "ath-1").Return(nil, notFound)
		d.repo.EXPECT().CountActiveRegistrationsTx(gomock.Any(), gomock.Any(), "cmb-1").Return(0, nil)
		d.repo.EXPECT().CreateRegistrationTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.RegisterAthlete(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.CombineRegistered, res.Registration.Status)
		assert.Empty(t, res.CheckoutURL)
	})

	t.Run("cancelled registration is reactivated", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", parent, domain.RoleParent)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(athlete, nil)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(openCombine(now, 0), nil)
		d.repo.EXPECT().GetRegistrationTx(gomock.Any(), gomock.Any(), "cmb-1", "ath-1").
			Return(&domain.CombineRegistration{ID: "reg-1", OrganizationID: "org-1", Status: domain.CombineCancelled}, nil)
		d.repo.EXPECT().CountActiveRegistrationsTx(gomock.Any(), gomock.Any(), "cmb-1").Return(3, nil)
		d.repo.EXPECT().UpdateRegistrationStatusTx(gomock.Any(), gomock.Any(), "reg-1", domain.CombineRegistered).Return(nil)

		res, err := svc.RegisterAthlete(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "reg-1", res.Registration.ID)
	})

	t.Run("already registered", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", parent, domain.RoleParent)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(athlete, nil)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(openCombine(now, 0), nil)
		d.repo.EXPECT().GetRegistrationTx(gomock.Any(), gomock.Any(), "cmb-1", "ath-1").
			Return(&domain.CombineRegistration{ID: "reg-1", Status: domain.CombineRegistered}, nil)

		_, err := svc.RegisterAthlete(context.Background(), req)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("full", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", parent, domain.RoleParent)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(athlete, nil)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(openCombine(now, 0), nil)
		d.repo.EXPECT().GetRegistrationTx(gomock.Any(), gomock.Any(), "cmb-1", "ath-1").Return(nil, notFound)
		d.repo.EXPECT().CountActiveRegistrationsTx(gomock.Any(), gomock.Any(), "cmb-1").Return(50, nil)

		_, err := svc.RegisterAthlete(context.Background(), req)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("deadline passed", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", parent, domain.RoleParent)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(athlete, nil)
		ev := openCombine(now, 0)
		ev.RegistrationDeadline = now.Add(-time.Hour)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(ev, nil)

		_, err := svc.RegisterAthlete(context.Background(), req)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("sport not tested", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", parent, domain.RoleParent)
		hoops := *athlete
		hoops.Sport = "basketball"
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(&hoops, nil)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(openCombine(now, 0), nil)

		_, err := svc.RegisterAthlete(context.Background(), req)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("checkout failure releases the spot", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", parent, domain.RoleParent)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(athlete, nil)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(openCombine(now, 7500), nil)
		d.repo.EXPECT().GetRegistrationTx(gomock.Any(), gomock.Any(), "cmb-1", "ath-1").Return(nil, notFound)
		d.repo.EXPECT().CountActiveRegistrationsTx(gomock.Any(), gomock.Any(), "cmb-1").Return(0, nil)
		d.repo.EXPECT().CreateRegistrationTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.payments.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(nil, errors.New("stripe down"))
		d.repo.EXPECT().UpdateRegistrationStatus(gomock.Any(), gomock.Any(), domain.CombineCancelled).Return(nil)

		_, err := svc.RegisterAthlete(context.Background(), req)
		assert.EqualError(t, err, "stripe down")
	})
}

func TestCombineService_RecordResult(t *testing.T) {
	now := time.Date(2026, 5, 13, 15, 0, 0, 0, time.UTC)
	admin := &domain.User{ID: "admin-1"}
	event := func() *domain.CombineEvent {
		ev := openCombine(now, 0)
		ev.EventDate = time.Date(2026, 5, 13, 9, 0, 0, 0, time.UTC)
		ev.RegistrationDeadline = ev.EventDate
		return ev
	}
	forty := 4.62
	result := func() *domain.CombineResult {
		return &domain.CombineResult{CombineEventID: "cmb-1", AthleteID: "ath-1", FortyYardDash: &forty}
	}

	t.Run("first result marks attended and awards xp", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", admin, domain.RoleAdmin)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(event(), nil)
		d.repo.EXPECT().GetRegistrationTx(gomock.Any(), gomock.Any(), "cmb-1", "ath-1").
			Return(&domain.CombineRegistration{ID: "reg-1", Status: domain.CombineRegistered}, nil)
		d.repo.EXPECT().InsertResultTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.repo.EXPECT().UpdateRegistrationStatusTx(gomock.Any(), gomock.Any(), "reg-1", domain.CombineAttended).Return(nil)
		d.starPath.EXPECT().AwardXP(gomock.Any(), domain.AwardXPInput{
			OrganizationID: "org-1", AthleteID: "ath-1", Amount: 100,
			Source: domain.XPSourceCombine, ReferenceID: "cmb-1",
		}).Return(&domain.AwardXPResult{}, nil)

		r := result()
		require.NoError(t, svc.RecordResult(context.Background(), "org-1", r))
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, now, r.RecordedAt)
	})

	t.Run("retest does not award again", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", admin, domain.RoleAdmin)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(event(), nil)
		d.repo.EXPECT().GetRegistrationTx(gomock.Any(), gomock.Any(), "cmb-1", "ath-1").
			Return(&domain.CombineRegistration{ID: "reg-1", Status: domain.CombineAttended}, nil)
		d.repo.EXPECT().InsertResultTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.RecordResult(context.Background(), "org-1", result()))
	})

	t.Run("before event day", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", admin, domain.RoleAdmin)
		ev := event()
		ev.EventDate = now.Add(48 * time.Hour)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(ev, nil)

		err := svc.RecordResult(context.Background(), "org-1", result())
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("pending payment is not registered", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", admin, domain.RoleAdmin)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(event(), nil)
		d.repo.EXPECT().GetRegistrationTx(gomock.Any(), gomock.Any(), "cmb-1", "ath-1").
			Return(&domain.CombineRegistration{ID: "reg-1", Status: domain.CombinePendingPayment}, nil)

		err := svc.RecordResult(context.Background(), "org-1", result())
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("xp failure does not fail the result", func(t *testing.T) {
		d, svc := setupCombineTest(t, now)
		expectAuthorize(d.auth, "org-1", admin, domain.RoleAdmin)
		d.repo.EXPECT().LockEventTx(gomock.Any(), gomock.Any(), "org-1", "cmb-1").Return(event(), nil)
		d.repo.EXPECT().GetRegistrationTx(gomock.Any(), gomock.Any(), "cmb-1", "ath-1").
			Return(&domain.CombineRegistration{ID: "reg-1", Status: domain.CombineRegistered}, nil)
		d.repo.EXPECT().InsertResultTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.repo.EXPECT().UpdateRegistrationStatusTx(gomock.Any(), gomock.Any(), "reg-1", domain.CombineAttended).Return(nil)
		d.starPath.EXPECT().AwardXP(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		assert.NoError(t, svc.RecordResult(context.Background(), "org-1", result()))
	})
}

func TestCombineService_ConfirmPaidRegistration(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     domain.CombineRegistrationStatus
		wantUpdate bool
	}{
		{"pending becomes registered", domain.CombinePendingPayment, true},
		{"already registered", domain.CombineRegistered, false},
		{"cancelled is left alone", domain.CombineCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc := setupCombineTest(t, now)
			d.repo.EXPECT().GetRegistrationByID(gomock.Any(), "reg-1").
				Return(&domain.CombineRegistration{ID: "reg-1", Status: tt.status}, nil)
			if tt.wantUpdate {
				d.repo.EXPECT().UpdateRegistrationStatus(gomock.Any(), "reg-1", domain.CombineRegistered).Return(nil)
			}
			assert.NoError(t, svc.ConfirmPaidRegistration(context.Background(), "reg-1"))
		})
	}
}
