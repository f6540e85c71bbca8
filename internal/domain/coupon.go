package domain

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_coupon_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain CouponRepository
//go:generate mockgen -destination mocks/mock_coupon_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain CouponService

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Purpose is what a payment or coupon is for
type Purpose string

const (
	PurposeAll     Purpose = "all"
	PurposeCamp    Purpose = "camp"
	PurposeCourse  Purpose = "course"
	PurposeCombine Purpose = "combine"
)

func (p Purpose) IsPayable() bool {
	return p == PurposeCamp || p == PurposeCourse || p == PurposeCombine
}

var couponCodePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// NormalizeCouponCode upper-cases and trims a user supplied code
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Coupon is a discount code. MaxUses and MaxUsesPerUser of 0 mean unlimited.
// DiscountValue is a percentage for percent coupons and cents for fixed ones.
type Coupon struct {
	ID               string       `json:"id"`
	OrganizationID   string       `json:"organization_id"`
	Code             string       `json:"code"`
	Description      string       `json:"description,omitempty"`
	DiscountType     DiscountType `json:"discount_type"`
	DiscountValue    int64        `json:"discount_value"`
	MinPurchaseCents int64        `json:"min_purchase_cents"`
	MaxUses          int          `json:"max_uses"`
	MaxUsesPerUser   int          `json:"max_uses_per_user"`
	UsedCount        int          `json:"used_count"`
	AppliesTo        Purpose      `json:"applies_to"`
	ValidFrom        *time.Time   `json:"valid_from,omitempty"`
	ValidUntil       *time.Time   `json:"valid_until,omitempty"`
	Active           bool         `json:"active"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

func (c *Coupon) Validate() error {
	c.Code = NormalizeCouponCode(c.Code)
	if c.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if !couponCodePattern.MatchString(c.Code) {
		return NewValidationError("code must be 3-32 characters of A-Z, 0-9, underscore or hyphen")
	}
	switch c.DiscountType {
	case DiscountPercent:
		if c.DiscountValue < 1 || c.DiscountValue > 100 {
			return NewValidationError("percent discount must be between 1 and 100")
		}
	case DiscountFixed:
		if c.DiscountValue <= 0 {
			return NewValidationError("fixed discount must be positive")
		}
	default:
		return NewValidationError("discount type must be percent or fixed")
	}
	if c.AppliesTo == "" {
		c.AppliesTo = PurposeAll
	}
	if c.AppliesTo != PurposeAll && !c.AppliesTo.IsPayable() {
		return NewValidationError("applies_to must be all, camp, course or combine")
	}
	if c.MinPurchaseCents < 0 || c.MaxUses < 0 || c.MaxUsesPerUser < 0 {
		return NewValidationError("limits cannot be negative")
	}
	if c.ValidFrom != nil && c.ValidUntil != nil && !c.ValidUntil.After(*c.ValidFrom) {
		return NewValidationError("valid_until must be after valid_from")
	}
	return nil
}

// CouponEvaluation is the outcome of applying a coupon to an amount
type CouponEvaluation struct {
	Code          string `json:"code"`
	AmountCents   int64  `json:"amount_cents"`
	DiscountCents int64  `json:"discount_cents"`
	FinalCents    int64  `json:"final_cents"`
}

// EvaluateCoupon checks a coupon against a purchase and computes the discount.
// Checks run in a fixed order and the first failure is reported.
func EvaluateCoupon(c *Coupon, amountCents int64, purpose Purpose, userUses int, now time.Time) (*CouponEvaluation, error) {
	switch {
	case !c.Active:
		return nil, &ErrCouponRejected{Reason: CouponInactive}
	case c.ValidFrom != nil && now.Before(*c.ValidFrom):
		return nil, &ErrCouponRejected{Reason: CouponNotYetValid}
	case c.ValidUntil != nil && now.After(*c.ValidUntil):
		return nil, &ErrCouponRejected{Reason: CouponExpired}
	case c.MaxUses > 0 && c.UsedCount >= c.MaxUses:
		return nil, &ErrCouponRejected{Reason: CouponExhausted}
	case c.MaxUsesPerUser > 0 && userUses >= c.MaxUsesPerUser:
		return nil, &ErrCouponRejected{Reason: CouponUserLimit}
	case c.AppliesTo != PurposeAll && c.AppliesTo != purpose:
		return nil, &ErrCouponRejected{Reason: CouponNotApplicable}
	case amountCents < c.MinPurchaseCents:
		return nil, &ErrCouponRejected{Reason: CouponMinPurchase}
	}

	var discount int64
	switch c.DiscountType {
	case DiscountPercent:
		// round half up in integer arithmetic
		discount = (amountCents*c.DiscountValue + 50) / 100
	default:
		discount = c.DiscountValue
	}
	if discount > amountCents {
		discount = amountCents
	}
	if discount < 0 {
		discount = 0
	}

	return &CouponEvaluation{
		Code:          c.Code,
		AmountCents:   amountCents,
		DiscountCents: discount,
		FinalCents:    amountCents - discount,
	}, nil
}

// CouponUsage records one redemption
type CouponUsage struct {
	ID            string    `json:"id"`
	CouponID      string    `json:"coupon_id"`
	UserEmail     string    `json:"user_email"`
	ReferenceType Purpose   `json:"reference_type"`
	ReferenceID   string    `json:"reference_id"`
	DiscountCents int64     `json:"discount_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

type ValidateCouponRequest struct {
	OrganizationID string  `json:"organization_id"`
	Code           string  `json:"code"`
	AmountCents    int64   `json:"amount_cents"`
	Purpose        Purpose `json:"purpose"`
	Email          string  `json:"email,omitempty"`
}

func (r *ValidateCouponRequest) Validate() error {
	r.Code = NormalizeCouponCode(r.Code)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.OrganizationID == "" || r.Code == "" {
		return NewValidationError("organization_id and code are required")
	}
	if r.AmountCents < 0 {
		return NewValidationError("amount cannot be negative")
	}
	if !r.Purpose.IsPayable() {
		return NewValidationError("purpose must be camp, course or combine")
	}
	return nil
}

// RedeemCouponInput is used inside a caller owned transaction
type RedeemCouponInput struct {
	OrganizationID string
	Code           string
	AmountCents    int64
	Purpose        Purpose
	Email          string
	ReferenceID    string
}

type CouponService interface {
	CreateCoupon(ctx context.Context, coupon *Coupon) error
	GetCoupon(ctx context.Context, organizationID, id string) (*Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *Coupon) error
	DeactivateCoupon(ctx context.Context, organizationID, id string) error
	DeleteCoupon(ctx context.Context, organizationID, id string) error
	ListCoupons(ctx context.Context, organizationID string, activeOnly bool) ([]*Coupon, error)
	ListUsage(ctx context.Context, organizationID, couponID string) ([]*CouponUsage, error)
	// ValidateCoupon previews a discount without recording usage. It is public.
	ValidateCoupon(ctx context.Context, req ValidateCouponRequest) (*CouponEvaluation, error)
	// RedeemInTx re-checks the coupon under lock and records usage in the caller's transaction
	RedeemInTx(ctx context.Context, tx *sql.Tx, input RedeemCouponInput) (*CouponEvaluation, error)
	// ReleaseInTx undoes the redemptions recorded for a reference that never completed
	ReleaseInTx(ctx context.Context, tx *sql.Tx, purpose Purpose, referenceID string) error
}

type CouponRepository interface {
	Create(ctx context.Context, coupon *Coupon) error
	GetByID(ctx context.Context, organizationID, id string) (*Coupon, error)
	GetByCode(ctx context.Context, organizationID, code string) (*Coupon, error)
	LockByCodeTx(ctx context.Context, tx *sql.Tx, organizationID, code string) (*Coupon, error)
	Update(ctx context.Context, coupon *Coupon) error
	Delete(ctx context.Context, organizationID, id string) error
	List(ctx context.Context, organizationID string, activeOnly bool) ([]*Coupon, error)
	CountUserUses(ctx context.Context, couponID, email string) (int, error)
	CountUserUsesTx(ctx context.Context, tx *sql.Tx, couponID, email string) (int, error)
	IncrementUsedTx(ctx context.Context, tx *sql.Tx, couponID string) error
	InsertUsageTx(ctx context.Context, tx *sql.Tx, usage *CouponUsage) error
	ReleaseUsageTx(ctx context.Context, tx *sql.Tx, referenceType Purpose, referenceID string) (int, error)
	ListUsage(ctx context.Context, couponID string) ([]*CouponUsage, error)
}
