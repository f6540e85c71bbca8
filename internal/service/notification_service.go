package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/mailer"
	"github.com/Go4ItSports/go4it/pkg/smsgateway"
	"github.com/Go4ItSports/go4it/pkg/templates"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

// NotificationService stores in-app notifications and fans them out to
// email and SMS
type NotificationService struct {
	repo        domain.NotificationRepository
	userRepo    domain.UserRepository
	orgRepo     domain.OrganizationRepository
	athleteRepo domain.AthleteRepository
	mailer      mailer.Mailer
	sms         smsgateway.Sender
	authService domain.AuthService
	logger      logger.Logger
	now         func() time.Time
}

type NotificationServiceConfig struct {
	Repository             domain.NotificationRepository
	UserRepository         domain.UserRepository
	OrganizationRepository domain.OrganizationRepository
	AthleteRepository      domain.AthleteRepository
	Mailer                 mailer.Mailer
	SMSSender              smsgateway.Sender
	AuthService            domain.AuthService
	Logger                 logger.Logger
}

func NewNotificationService(cfg NotificationServiceConfig) *NotificationService {
	return &NotificationService{
		repo:        cfg.Repository,
		userRepo:    cfg.UserRepository,
		orgRepo:     cfg.OrganizationRepository,
		athleteRepo: cfg.AthleteRepository,
		mailer:      cfg.Mailer,
		sms:         cfg.SMSSender,
		authService: cfg.AuthService,
		logger:      cfg.Logger,
		now:         time.Now,
	}
}

var _ domain.NotificationService = (*NotificationService)(nil)

// Notify always stores the in-app notification. Email and SMS are best effort.
func (s *NotificationService) Notify(ctx context.Context, req domain.NotifyRequest) (*domain.Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	n := &domain.Notification{
		ID:             uuid.New().String(),
		OrganizationID: req.OrganizationID,
		UserID:         req.UserID,
		Type:           req.Type,
		Title:          req.Title,
		Message:        req.Message,
		Link:           req.Link,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.WithField("user_id", req.UserID).Error(fmt.Sprintf("Failed to store notification: %v", err))
		return nil, err
	}

	if !req.Wants(domain.NotifyEmail) && !req.Wants(domain.NotifySMS) {
		return n, nil
	}
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		s.logger.WithField("user_id", req.UserID).Warn(fmt.Sprintf("Skipping notification delivery, user lookup failed: %v", err))
		return n, nil
	}
	log := s.logger.WithFields(map[string]interface{}{
		"notification_id": n.ID,
		"user_id":         user.ID,
	})

	if req.Wants(domain.NotifyEmail) {
		if err := s.sendEmail(ctx, user, n); err != nil {
			log.Warn(fmt.Sprintf("Notification email failed: %v", err))
		}
	}
	if req.Wants(domain.NotifySMS) {
		if err := s.sendSMS(ctx, user, n); err != nil {
			log.Warn(fmt.Sprintf("Notification SMS failed: %v", err))
		}
	}
	return n, nil
}

func (s *NotificationService) sendEmail(ctx context.Context, user *domain.User, n *domain.Notification) error {
	if s.mailer == nil {
		return fmt.Errorf("mailer is not configured")
	}
	content := templates.EmailContent{
		Preheader:  n.Title,
		Heading:    n.Title,
		Paragraphs: splitParagraphs(n.Message),
		Footer:     "You are receiving this because you are a member of a Go4It Sports organization.",
	}
	if n.Link != "" {
		content.ButtonText = "View"
		content.ButtonURL = n.Link
	}
	return sendLayoutEmail(ctx, s.mailer, user.Email, user.Name, n.Title, "notification", content)
}

func (s *NotificationService) sendSMS(ctx context.Context, user *domain.User, n *domain.Notification) error {
	if s.sms == nil {
		return fmt.Errorf("sms gateway is not configured")
	}
	if user.Phone == "" || user.Carrier == "" {
		return fmt.Errorf("user has no phone or carrier")
	}
	text := n.Title
	if n.Message != "" {
		text += ": " + n.Message
	}
	return s.sms.SendSMS(ctx, user.Phone, user.Carrier, text)
}

// Send lets staff notify another member of the organization
func (s *NotificationService) Send(ctx context.Context, req domain.NotifyRequest) (*domain.Notification, error) {
	ctx, _, member, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceNotifications, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	if !member.Role.IsStaff() {
		return nil, domain.NewPermissionError(domain.ResourceNotifications, domain.ActionWrite, "only staff can send notifications")
	}
	if _, err := s.orgRepo.GetMember(ctx, req.OrganizationID, req.UserID); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewValidationError("recipient is not a member of the organization")
		}
		return nil, err
	}
	return s.Notify(ctx, req)
}

func (s *NotificationService) List(ctx context.Context, req domain.ListNotificationsRequest) ([]*domain.Notification, error) {
	ctx, user, _, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceNotifications, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	notifications, err := s.repo.ListForUser(ctx, req.OrganizationID, user.ID, req.UnreadOnly, limit)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*domain.Notification{}
	}
	return notifications, nil
}

// MarkRead only reaches the caller's own notifications
func (s *NotificationService) MarkRead(ctx context.Context, organizationID, id string) error {
	ctx, user, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceNotifications, domain.ActionRead)
	if err != nil {
		return err
	}
	ok, err := s.repo.MarkRead(ctx, organizationID, user.ID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewNotFound("notification", id)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, organizationID string) (int64, error) {
	ctx, user, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceNotifications, domain.ActionRead)
	if err != nil {
		return 0, err
	}
	return s.repo.MarkAllRead(ctx, organizationID, user.ID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, organizationID string) (int, error) {
	ctx, user, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceNotifications, domain.ActionRead)
	if err != nil {
		return 0, err
	}
	return s.repo.UnreadCount(ctx, organizationID, user.ID)
}

// athleteUser resolves the user linked to the athlete named in an event
func (s *NotificationService) athleteUser(ctx context.Context, payload domain.EventPayload) (string, bool) {
	athleteID, _ := payload.Data["athlete_id"].(string)
	if athleteID == "" {
		s.logger.WithField("event_type", string(payload.Type)).Error("Event missing athlete_id")
		return "", false
	}
	athlete, err := s.athleteRepo.GetByID(ctx, payload.OrganizationID, athleteID)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"event_type": string(payload.Type),
			"athlete_id": athleteID,
		}).Warn(fmt.Sprintf("Failed to load athlete for notification: %v", err))
		return "", false
	}
	if athlete.UserID == nil || *athlete.UserID == "" {
		return "", false
	}
	return *athlete.UserID, true
}

func (s *NotificationService) notifyFromEvent(ctx context.Context, payload domain.EventPayload, req domain.NotifyRequest) {
	userID, ok := s.athleteUser(ctx, payload)
	if !ok {
		return
	}
	req.OrganizationID = payload.OrganizationID
	req.UserID = userID
	if _, err := s.Notify(ctx, req); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"event_type": string(payload.Type),
			"user_id":    userID,
		}).Error(fmt.Sprintf("Failed to notify from event: %v", err))
	}
}

func (s *NotificationService) HandleAchievement(ctx context.Context, payload domain.EventPayload) {
	title, _ := payload.Data["title"].(string)
	if title == "" {
		title = "New achievement"
	}
	s.notifyFromEvent(ctx, payload, domain.NotifyRequest{
		Type:     domain.NotificationAchievement,
		Title:    "Achievement unlocked: " + title,
		Message:  "You earned a new StarPath achievement.",
		Channels: []domain.NotificationChannel{domain.NotifyInApp, domain.NotifyEmail},
	})
}

func (s *NotificationService) HandleLevelUp(ctx context.Context, payload domain.EventPayload) {
	s.notifyFromEvent(ctx, payload, domain.NotifyRequest{
		Type:     domain.NotificationLevelUp,
		Title:    fmt.Sprintf("You reached level %v", payload.Data["level"]),
		Message:  "Keep training to climb the StarPath.",
		Channels: []domain.NotificationChannel{domain.NotifyInApp, domain.NotifyEmail},
	})
}

func (s *NotificationService) HandleAnalysisCompleted(ctx context.Context, payload domain.EventPayload) {
	msg := fmt.Sprintf("Your GAR score is %v", payload.Data["gar_score"])
	if tier, _ := payload.Data["tier"].(string); tier != "" {
		msg += " (" + strings.ReplaceAll(tier, "_", " ") + ")"
	}
	s.notifyFromEvent(ctx, payload, domain.NotifyRequest{
		Type:     domain.NotificationAnalysis,
		Title:    "Video analysis complete",
		Message:  msg + ".",
		Channels: []domain.NotificationChannel{domain.NotifyInApp},
	})
}

// HandleEnrollmentPromoted tells a waitlisted student their seat opened. A
// pending_payment seat is paid for by enrolling again, which reopens checkout.
func (s *NotificationService) HandleEnrollmentPromoted(ctx context.Context, payload domain.EventPayload) {
	course, _ := payload.Data["course_title"].(string)
	if course == "" {
		course = "your course"
	}
	msg := "You are now enrolled. See you in class."
	if status, _ := payload.Data["status"].(string); status == string(domain.EnrollmentPendingPayment) {
		msg = "Enroll again from the Academy to complete payment and keep your seat."
	}
	s.notifyFromEvent(ctx, payload, domain.NotifyRequest{
		Type:     domain.NotificationEnrollment,
		Title:    "A seat opened in " + course,
		Message:  msg,
		Channels: []domain.NotificationChannel{domain.NotifyInApp, domain.NotifyEmail},
	})
}

// RegisterWithEventBus subscribes the athlete-facing notifications
func (s *NotificationService) RegisterWithEventBus(eventBus domain.EventBus) {
	eventBus.Subscribe(domain.EventStarPathAchievement, s.HandleAchievement)
	eventBus.Subscribe(domain.EventStarPathLevelUp, s.HandleLevelUp)
	eventBus.Subscribe(domain.EventAnalysisCompleted, s.HandleAnalysisCompleted)
	eventBus.Subscribe(domain.EventEnrollmentPromoted, s.HandleEnrollmentPromoted)
	s.logger.Info("Notification service registered with event bus")
}
