package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

func setupCouponTest(t *testing.T) (*mocks.MockCouponRepository, *mocks.MockAuthService, *CouponService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCouponRepository(ctrl)
	auth := mocks.NewMockAuthService(ctrl)
	svc := NewCouponService(repo, auth, logger.NewMockLogger(t))
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) }
	return repo, auth, svc
}

func rejectReason(t *testing.T, err error) domain.CouponRejectReason {
	t.Helper()
	var rejected *domain.ErrCouponRejected
	require.ErrorAs(t, err, &rejected)
	return rejected.Reason
}

func TestCouponService_ValidateCoupon(t *testing.T) {
	coupon := &domain.Coupon{
		ID: "cp-1", Code: "SUMMER25", DiscountType: domain.DiscountPercent, DiscountValue: 25,
		AppliesTo: domain.PurposeAll, Active: true, MaxUsesPerUser: 1,
	}

	t.Run("preview discount", func(t *testing.T) {
		repo, _, svc := setupCouponTest(t)
		repo.EXPECT().GetByCode(gomock.Any(), "org-1", "SUMMER25").Return(coupon, nil)
		repo.EXPECT().CountUserUses(gomock.Any(), "cp-1", "parent@example.com").Return(0, nil)

		eval, err := svc.ValidateCoupon(context.Background(), domain.ValidateCouponRequest{
			OrganizationID: "org-1", Code: " summer25 ", AmountCents: 19999, Purpose: domain.PurposeCamp, Email: "Parent@Example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5000), eval.DiscountCents)
		assert.Equal(t, int64(14999), eval.FinalCents)
	})

	t.Run("user limit", func(t *testing.T) {
		repo, _, svc := setupCouponTest(t)
		repo.EXPECT().GetByCode(gomock.Any(), "org-1", "SUMMER25").Return(coupon, nil)
		repo.EXPECT().CountUserUses(gomock.Any(), "cp-1", "parent@example.com").Return(1, nil)

		_, err := svc.ValidateCoupon(context.Background(), domain.ValidateCouponRequest{
			OrganizationID: "org-1", Code: "SUMMER25", AmountCents: 1000, Purpose: domain.PurposeCamp, Email: "parent@example.com",
		})
		assert.Equal(t, domain.CouponUserLimit, rejectReason(t, err))
	})

	t.Run("unknown code", func(t *testing.T) {
		repo, _, svc := setupCouponTest(t)
		repo.EXPECT().GetByCode(gomock.Any(), "org-1", "NOPE").Return(nil, domain.NewNotFound("coupon", "NOPE"))

		_, err := svc.ValidateCoupon(context.Background(), domain.ValidateCouponRequest{
			OrganizationID: "org-1", Code: "nope", AmountCents: 1000, Purpose: domain.PurposeCourse,
		})
		assert.Equal(t, domain.CouponUnknown, rejectReason(t, err))
		assert.True(t, domain.IsValidation(err))
	})
}

func TestCouponService_RedeemInTx(t *testing.T) {
	fixed := func() *domain.Coupon {
		return &domain.Coupon{
			ID: "cp-2", Code: "TENOFF", DiscountType: domain.DiscountFixed, DiscountValue: 1000,
			AppliesTo: domain.PurposeCamp, Active: true, MaxUses: 5, UsedCount: 4,
		}
	}
	input := domain.RedeemCouponInput{
		OrganizationID: "org-1", Code: "tenoff", AmountCents: 4000, Purpose: domain.PurposeCamp,
		Email: "p@example.com", ReferenceID: "reg-1",
	}

	t.Run("records usage", func(t *testing.T) {
		repo, _, svc := setupCouponTest(t)
		repo.EXPECT().LockByCodeTx(gomock.Any(), gomock.Any(), "org-1", "TENOFF").Return(fixed(), nil)
		repo.EXPECT().IncrementUsedTx(gomock.Any(), gomock.Any(), "cp-2").Return(nil)
		repo.EXPECT().InsertUsageTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, u *domain.CouponUsage) error {
				assert.Equal(t, "reg-1", u.ReferenceID)
				assert.Equal(t, domain.PurposeCamp, u.ReferenceType)
				assert.Equal(t, int64(1000), u.DiscountCents)
				return nil
			})

		eval, err := svc.RedeemInTx(context.Background(), nil, input)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), eval.FinalCents)
	})

	t.Run("exhausted under lock", func(t *testing.T) {
		repo, _, svc := setupCouponTest(t)
		c := fixed()
		c.UsedCount = 5
		repo.EXPECT().LockByCodeTx(gomock.Any(), gomock.Any(), "org-1", "TENOFF").Return(c, nil)

		_, err := svc.RedeemInTx(context.Background(), nil, input)
		assert.Equal(t, domain.CouponExhausted, rejectReason(t, err))
	})

	t.Run("wrong purpose", func(t *testing.T) {
		repo, _, svc := setupCouponTest(t)
		repo.EXPECT().LockByCodeTx(gomock.Any(), gomock.Any(), "org-1", "TENOFF").Return(fixed(), nil)
		in := input
		in.Purpose = domain.PurposeCourse
		_, err := svc.RedeemInTx(context.Background(), nil, in)
		assert.Equal(t, domain.CouponNotApplicable, rejectReason(t, err))
	})

	t.Run("usage insert failure", func(t *testing.T) {
		repo, _, svc := setupCouponTest(t)
		repo.EXPECT().LockByCodeTx(gomock.Any(), gomock.Any(), "org-1", "TENOFF").Return(fixed(), nil)
		repo.EXPECT().IncrementUsedTx(gomock.Any(), gomock.Any(), "cp-2").Return(nil)
		repo.EXPECT().InsertUsageTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db"))
		_, err := svc.RedeemInTx(context.Background(), nil, input)
		assert.EqualError(t, err, "db")
	})
}

func TestCouponService_ReleaseInTx(t *testing.T) {
	t.Run("releases recorded usage", func(t *testing.T) {
		repo, _, svc := setupCouponTest(t)
		repo.EXPECT().ReleaseUsageTx(gomock.Any(), gomock.Any(), domain.PurposeCamp, "reg-1").Return(1, nil)

		assert.NoError(t, svc.ReleaseInTx(context.Background(), nil, domain.PurposeCamp, "reg-1"))
	})

	t.Run("storage failure", func(t *testing.T) {
		repo, _, svc := setupCouponTest(t)
		repo.EXPECT().ReleaseUsageTx(gomock.Any(), gomock.Any(), domain.PurposeCamp, "reg-1").Return(0, errors.New("db"))

		assert.EqualError(t, svc.ReleaseInTx(context.Background(), nil, domain.PurposeCamp, "reg-1"), "db")
	})
}

func TestCouponService_CreateCoupon(t *testing.T) {
	t.Run("duplicate code", func(t *testing.T) {
		repo, auth, svc := setupCouponTest(t)
		expectAuthorize(auth, "org-1", &domain.User{ID: "u"}, domain.RoleAdmin)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "coupons_org_code_key"`})

		err := svc.CreateCoupon(context.Background(), &domain.Coupon{
			OrganizationID: "org-1", Code: "fall10", DiscountType: domain.DiscountPercent, DiscountValue: 10, Active: true,
		})
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("coach cannot create", func(t *testing.T) {
		_, auth, svc := setupCouponTest(t)
		expectAuthorize(auth, "org-1", &domain.User{ID: "u"}, domain.RoleCoach)
		err := svc.CreateCoupon(context.Background(), &domain.Coupon{OrganizationID: "org-1"})
		var perm *domain.PermissionError
		assert.ErrorAs(t, err, &perm)
	})
}

func TestCouponService_UpdateCoupon_KeepsUsage(t *testing.T) {
	repo, auth, svc := setupCouponTest(t)
	expectAuthorize(auth, "org-1", &domain.User{ID: "u"}, domain.RoleOwner)
	repo.EXPECT().GetByID(gomock.Any(), "org-1", "cp-1").Return(&domain.Coupon{ID: "cp-1", UsedCount: 7}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	c := &domain.Coupon{
		ID: "cp-1", OrganizationID: "org-1", Code: "FALL10", DiscountType: domain.DiscountPercent,
		DiscountValue: 15, UsedCount: 0, Active: true,
	}
	require.NoError(t, svc.UpdateCoupon(context.Background(), c))
	assert.Equal(t, 7, c.UsedCount)
}
