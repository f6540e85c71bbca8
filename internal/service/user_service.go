package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/crypto"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/mailer"
	"github.com/Go4ItSports/go4it/pkg/ratelimiter"
	"github.com/Go4ItSports/go4it/pkg/smsgateway"
	"github.com/Go4ItSports/go4it/pkg/templates"
	"github.com/Go4ItSports/go4it/pkg/tracing"
)

const (
	magicCodeTTL         = 15 * time.Minute
	SignInNamespace      = "signin"
	VerifyCodeNamespace  = "verify"
	defaultSessionExpiry = 30 * 24 * time.Hour
)

type UserService struct {
	repo          domain.UserRepository
	orgRepo       domain.OrganizationRepository
	authService   domain.AuthService
	mailer        mailer.Mailer
	rateLimiter   *ratelimiter.RateLimiter
	secretKey     string
	sessionExpiry time.Duration
	isProduction  bool
	logger        logger.Logger
	tracer        tracing.Tracer
	now           func() time.Time
}

type UserServiceConfig struct {
	Repository             domain.UserRepository
	OrganizationRepository domain.OrganizationRepository
	AuthService            domain.AuthService
	Mailer                 mailer.Mailer
	RateLimiter            *ratelimiter.RateLimiter
	SecretKey              string
	SessionExpiry          time.Duration
	IsProduction           bool
	Logger                 logger.Logger
	Tracer                 tracing.Tracer
}

func NewUserService(cfg UserServiceConfig) (*UserService, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("secret key is required")
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}
	expiry := cfg.SessionExpiry
	if expiry <= 0 {
		expiry = defaultSessionExpiry
	}

	return &UserService{
		repo:          cfg.Repository,
		orgRepo:       cfg.OrganizationRepository,
		authService:   cfg.AuthService,
		mailer:        cfg.Mailer,
		rateLimiter:   cfg.RateLimiter,
		secretKey:     cfg.SecretKey,
		sessionExpiry: expiry,
		isProduction:  cfg.IsProduction,
		logger:        cfg.Logger,
		tracer:        tracer,
		now:           time.Now,
	}, nil
}

var _ domain.UserServiceInterface = (*UserService)(nil)

func (s *UserService) checkRateLimit(namespace, email string) error {
	if s.rateLimiter == nil || s.rateLimiter.Allow(namespace, email) {
		return nil
	}
	retry := s.rateLimiter.GetRemainingWindow(namespace, email)
	s.logger.WithField("email", email).WithField("namespace", namespace).Warn("Rate limit exceeded")
	return &domain.ErrRateLimited{RetryAfter: time.Duration(retry) * time.Second}
}

// SignIn emails a one time code, creating the user on first sign in.
// Outside production the code is also returned so local setups work without SMTP.
func (s *UserService) SignIn(ctx context.Context, input domain.SignInInput) (string, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "SignIn")
	defer span.End()

	if err := input.Validate(); err != nil {
		return "", err
	}
	s.tracer.AddAttribute(ctx, "user.email", input.Email)

	if err := s.checkRateLimit(SignInNamespace, input.Email); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return "", err
	}

	user, err := s.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WithField("email", input.Email).Error(fmt.Sprintf("Failed to get user by email: %v", err))
			s.tracer.MarkSpanError(ctx, err)
			return "", err
		}
		user = &domain.User{Email: input.Email}
		if err := s.repo.CreateUser(ctx, user); err != nil {
			s.logger.WithField("email", input.Email).Error(fmt.Sprintf("Failed to create user: %v", err))
			s.tracer.MarkSpanError(ctx, err)
			return "", err
		}
		s.tracer.AddAttribute(ctx, "action", "create_user")
	}

	code, err := crypto.GenerateNumericCode(6)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return "", err
	}

	now := s.now().UTC()
	codeExpires := now.Add(magicCodeTTL)
	session := &domain.Session{
		ID:               uuid.New().String(),
		UserID:           user.ID,
		ExpiresAt:        now.Add(s.sessionExpiry),
		CreatedAt:        now,
		MagicCode:        crypto.HashMagicCode(code, s.secretKey),
		MagicCodeExpires: &codeExpires,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to create session: %v", err))
		s.tracer.MarkSpanError(ctx, err)
		return "", err
	}

	if err := s.sendMagicCode(ctx, user, code); err != nil {
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to send magic code: %v", err))
		s.tracer.MarkSpanError(ctx, err)
		return "", err
	}

	if !s.isProduction {
		return code, nil
	}
	return "", nil
}

func (s *UserService) sendMagicCode(ctx context.Context, user *domain.User, code string) error {
	content := templates.EmailContent{
		Preheader:  "Your sign-in code is " + code,
		Heading:    "Your sign-in code",
		Paragraphs: []string{"Enter this code to sign in to Go4It Sports:", code, "It expires in 15 minutes."},
		Footer:     "If you did not request this code you can ignore this email.",
	}
	return sendLayoutEmail(ctx, s.mailer, user.Email, user.Name, "Your Go4It Sports sign-in code", "auth", content)
}

// VerifyCode exchanges a valid code for a session token
func (s *UserService) VerifyCode(ctx context.Context, input domain.VerifyCodeInput) (*domain.AuthResponse, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "VerifyCode")
	defer span.End()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkRateLimit(VerifyCodeNamespace, input.Email); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	user, err := s.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewValidationError("invalid or expired code")
		}
		s.logger.WithField("email", input.Email).Error(fmt.Sprintf("Failed to get user by email: %v", err))
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	sessions, err := s.repo.GetSessionsByUserID(ctx, user.ID)
	if err != nil {
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to get sessions: %v", err))
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	now := s.now()
	var matching *domain.Session
	for _, session := range sessions {
		if session.MagicCodeExpires == nil || now.After(*session.MagicCodeExpires) {
			continue
		}
		if crypto.VerifyMagicCode(input.Code, session.MagicCode, s.secretKey) {
			matching = session
			break
		}
	}
	if matching == nil {
		s.logger.WithField("user_id", user.ID).Warn("Invalid or expired magic code")
		return nil, domain.NewValidationError("invalid or expired code")
	}

	matching.MagicCode = ""
	matching.MagicCodeExpires = nil
	if err := s.repo.UpdateSession(ctx, matching); err != nil {
		s.logger.WithField("session_id", matching.ID).Error(fmt.Sprintf("Failed to update session: %v", err))
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	token, err := s.authService.GenerateUserAuthToken(user, matching.ID, matching.ExpiresAt)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Reset(VerifyCodeNamespace, input.Email)
	}

	return &domain.AuthResponse{
		Token:     token,
		User:      *user,
		ExpiresAt: matching.ExpiresAt,
	}, nil
}

// VerifyUserSession verifies a user session and returns the associated user
func (s *UserService) VerifyUserSession(ctx context.Context, userID string, sessionID string) (*domain.User, error) {
	session, err := s.repo.GetSessionByID(ctx, sessionID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if session.UserID != userID {
		s.logger.WithField("user_id", userID).WithField("session_id", sessionID).Warn("Session does not belong to user")
		return nil, domain.ErrUnauthorized
	}
	if s.now().After(session.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	return s.repo.GetUserByID(ctx, userID)
}

// GetUserByID retrieves a user by their ID
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "GetUserByID")
	defer span.End()

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}
	return user, nil
}

// Me returns the caller and the organizations they belong to
func (s *UserService) Me(ctx context.Context) (*domain.User, []*domain.OrganizationWithRole, error) {
	user, err := s.authService.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	orgs, err := s.orgRepo.ListForUser(ctx, user.ID)
	if err != nil {
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to list organizations: %v", err))
		return nil, nil, err
	}
	return user, orgs, nil
}

// UpdateProfile changes the caller's name and SMS contact details
func (s *UserService) UpdateProfile(ctx context.Context, input domain.UpdateProfileInput) (*domain.User, error) {
	user, err := s.authService.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if len(name) > 255 {
		return nil, domain.NewValidationError("name must be at most 255 characters")
	}
	phone := strings.TrimSpace(input.Phone)
	carrier := smsgateway.NormalizeCarrier(input.Carrier)
	if phone != "" {
		if phone, err = smsgateway.NormalizePhone(phone); err != nil {
			return nil, domain.NewValidationError("phone must be a 10 digit number")
		}
	}
	if carrier != "" && !smsgateway.IsSupportedCarrier(carrier) {
		return nil, domain.NewValidationError("unsupported carrier: " + input.Carrier)
	}

	updated := *user
	updated.Name = name
	updated.Phone = phone
	updated.Carrier = carrier
	updated.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateUser(ctx, &updated); err != nil {
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to update user: %v", err))
		return nil, err
	}
	return &updated, nil
}

// Logout deletes the caller's current session
func (s *UserService) Logout(ctx context.Context) error {
	if _, err := s.authService.AuthenticateUserFromContext(ctx); err != nil {
		return err
	}
	sessionID, _ := ctx.Value(domain.SessionIDKey).(string)
	if sessionID == "" {
		return domain.ErrUnauthorized
	}
	if err := s.repo.DeleteSession(ctx, sessionID); err != nil && !domain.IsNotFound(err) {
		s.logger.WithField("session_id", sessionID).Error(fmt.Sprintf("Failed to delete session: %v", err))
		return err
	}
	return nil
}
