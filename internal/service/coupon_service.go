package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type CouponService struct {
	repo        domain.CouponRepository
	authService domain.AuthService
	logger      logger.Logger
	now         func() time.Time
}

func NewCouponService(repo domain.CouponRepository, authService domain.AuthService, logger logger.Logger) *CouponService {
	return &CouponService{
		repo:        repo,
		authService: authService,
		logger:      logger,
		now:         time.Now,
	}
}

var _ domain.CouponService = (*CouponService)(nil)

func (s *CouponService) CreateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, coupon.OrganizationID, domain.ResourceCoupons, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := coupon.Validate(); err != nil {
		return err
	}
	coupon.ID = uuid.New().String()
	coupon.UsedCount = 0
	coupon.CreatedAt = s.now().UTC()
	coupon.UpdatedAt = coupon.CreatedAt
	if err := s.repo.Create(ctx, coupon); err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("coupon", "code "+coupon.Code+" already exists")
		}
		s.logger.WithField("organization_id", coupon.OrganizationID).Error(fmt.Sprintf("Failed to create coupon: %v", err))
		return err
	}
	return nil
}

func (s *CouponService) GetCoupon(ctx context.Context, organizationID, id string) (*domain.Coupon, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCoupons, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID, id)
}

// UpdateCoupon edits terms; the usage counter is never taken from the caller
func (s *CouponService) UpdateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, coupon.OrganizationID, domain.ResourceCoupons, domain.ActionWrite)
	if err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, coupon.OrganizationID, coupon.ID)
	if err != nil {
		return err
	}
	if err := coupon.Validate(); err != nil {
		return err
	}
	coupon.UsedCount = existing.UsedCount
	coupon.CreatedAt = existing.CreatedAt
	coupon.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, coupon); err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("coupon", "code "+coupon.Code+" already exists")
		}
		s.logger.WithField("coupon_id", coupon.ID).Error(fmt.Sprintf("Failed to update coupon: %v", err))
		return err
	}
	return nil
}

func (s *CouponService) DeactivateCoupon(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCoupons, domain.ActionWrite)
	if err != nil {
		return err
	}
	coupon, err := s.repo.GetByID(ctx, organizationID, id)
	if err != nil {
		return err
	}
	if !coupon.Active {
		return nil
	}
	coupon.Active = false
	coupon.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, coupon)
}

func (s *CouponService) DeleteCoupon(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCoupons, domain.ActionWrite)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, organizationID, id)
}

func (s *CouponService) ListCoupons(ctx context.Context, organizationID string, activeOnly bool) ([]*domain.Coupon, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCoupons, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	coupons, err := s.repo.List(ctx, organizationID, activeOnly)
	if err != nil {
		return nil, err
	}
	if coupons == nil {
		coupons = []*domain.Coupon{}
	}
	return coupons, nil
}

func (s *CouponService) ListUsage(ctx context.Context, organizationID, couponID string) ([]*domain.CouponUsage, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCoupons, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, organizationID, couponID); err != nil {
		return nil, err
	}
	usage, err := s.repo.ListUsage(ctx, couponID)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		usage = []*domain.CouponUsage{}
	}
	return usage, nil
}

// ValidateCoupon previews the discount for a checkout form. Unknown codes
// are reported as a rejection so callers cannot tell them apart from disabled ones.
func (s *CouponService) ValidateCoupon(ctx context.Context, req domain.ValidateCouponRequest) (*domain.CouponEvaluation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	coupon, err := s.repo.GetByCode(ctx, req.OrganizationID, req.Code)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, &domain.ErrCouponRejected{Reason: domain.CouponUnknown}
		}
		return nil, err
	}
	userUses := 0
	if req.Email != "" && coupon.MaxUsesPerUser > 0 {
		if userUses, err = s.repo.CountUserUses(ctx, coupon.ID, req.Email); err != nil {
			return nil, err
		}
	}
	return domain.EvaluateCoupon(coupon, req.AmountCents, req.Purpose, userUses, s.now())
}

// RedeemInTx locks the coupon row, re-evaluates it and records the usage
func (s *CouponService) RedeemInTx(ctx context.Context, tx *sql.Tx, input domain.RedeemCouponInput) (*domain.CouponEvaluation, error) {
	code := domain.NormalizeCouponCode(input.Code)
	coupon, err := s.repo.LockByCodeTx(ctx, tx, input.OrganizationID, code)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, &domain.ErrCouponRejected{Reason: domain.CouponUnknown}
		}
		return nil, err
	}
	userUses := 0
	if input.Email != "" && coupon.MaxUsesPerUser > 0 {
		if userUses, err = s.repo.CountUserUsesTx(ctx, tx, coupon.ID, input.Email); err != nil {
			return nil, err
		}
	}
	now := s.now()
	eval, err := domain.EvaluateCoupon(coupon, input.AmountCents, input.Purpose, userUses, now)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementUsedTx(ctx, tx, coupon.ID); err != nil {
		return nil, err
	}
	usage := &domain.CouponUsage{
		ID:            uuid.New().String(),
		CouponID:      coupon.ID,
		UserEmail:     input.Email,
		ReferenceType: input.Purpose,
		ReferenceID:   input.ReferenceID,
		DiscountCents: eval.DiscountCents,
		CreatedAt:     now.UTC(),
	}
	if err := s.repo.InsertUsageTx(ctx, tx, usage); err != nil {
		return nil, err
	}
	s.logger.WithFields(map[string]interface{}{
		"coupon_id":    coupon.ID,
		"reference_id": input.ReferenceID,
		"discount":     eval.DiscountCents,
	}).Info("Coupon redeemed")
	return eval, nil
}

// ReleaseInTx gives back the coupon uses held by a reference, typically a
// registration whose checkout could not be opened
func (s *CouponService) ReleaseInTx(ctx context.Context, tx *sql.Tx, purpose domain.Purpose, referenceID string) error {
	released, err := s.repo.ReleaseUsageTx(ctx, tx, purpose, referenceID)
	if err != nil {
		return err
	}
	if released > 0 {
		s.logger.WithFields(map[string]interface{}{
			"reference_id": referenceID,
			"released":     released,
		}).Info("Coupon redemption released")
	}
	return nil
}
