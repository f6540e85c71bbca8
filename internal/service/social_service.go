package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/crypto"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/tracing"
)

// SocialService manages connected accounts and cross posting
type SocialService struct {
	repo        domain.SocialRepository
	poster      domain.SocialPoster
	authService domain.AuthService
	secretKey   string
	logger      logger.Logger
	tracer      tracing.Tracer
	now         func() time.Time
}

type SocialServiceConfig struct {
	Repository  domain.SocialRepository
	Poster      domain.SocialPoster
	AuthService domain.AuthService
	// SecretKey encrypts platform access tokens at rest
	SecretKey string
	Logger    logger.Logger
	Tracer    tracing.Tracer
}

func NewSocialService(cfg SocialServiceConfig) *SocialService {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}
	return &SocialService{
		repo:        cfg.Repository,
		poster:      cfg.Poster,
		authService: cfg.AuthService,
		secretKey:   cfg.SecretKey,
		logger:      cfg.Logger,
		tracer:      tracer,
		now:         time.Now,
	}
}

var _ domain.SocialService = (*SocialService)(nil)

// stalePublishingAfter bounds how long a post may sit in publishing before
// the scheduler gives up on it
const stalePublishingAfter = 15 * time.Minute

func (s *SocialService) ConnectAccount(ctx context.Context, req domain.ConnectAccountRequest) (*domain.SocialAccount, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceSocial, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	encrypted, err := crypto.EncryptString(req.AccessToken, s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}
	now := s.now().UTC()
	account := &domain.SocialAccount{
		ID:                   uuid.New().String(),
		OrganizationID:       req.OrganizationID,
		Platform:             req.Platform,
		Handle:               req.Handle,
		EncryptedAccessToken: encrypted,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.repo.UpsertAccount(ctx, account); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"organization_id": req.OrganizationID,
			"platform":        string(req.Platform),
		}).Error(fmt.Sprintf("Failed to save social account: %v", err))
		return nil, err
	}
	return account, nil
}

func (s *SocialService) ListAccounts(ctx context.Context, organizationID string) ([]*domain.SocialAccount, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceSocial, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	accounts, err := s.repo.ListAccounts(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []*domain.SocialAccount{}
	}
	return accounts, nil
}

func (s *SocialService) DisconnectAccount(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceSocial, domain.ActionWrite)
	if err != nil {
		return err
	}
	return s.repo.DeleteAccount(ctx, organizationID, id)
}

// CreatePost stores a draft, or a scheduled post when ScheduledAt is set.
// Every target platform needs a connected account.
func (s *SocialService) CreatePost(ctx context.Context, post *domain.SocialPost) error {
	ctx, user, _, err := s.authService.AuthorizeOrganization(ctx, post.OrganizationID, domain.ResourceSocial, domain.ActionWrite)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	post.Status = domain.PostDraft
	if post.ScheduledAt != nil {
		if !post.ScheduledAt.After(now) {
			return domain.NewValidationError("scheduled_at must be in the future")
		}
		post.Status = domain.PostScheduled
	}
	if err := post.Validate(); err != nil {
		return err
	}
	accounts, err := s.repo.ListAccounts(ctx, post.OrganizationID)
	if err != nil {
		return err
	}
	connected := make(map[domain.SocialPlatform]bool, len(accounts))
	for _, a := range accounts {
		connected[a.Platform] = true
	}
	for _, p := range post.Platforms {
		if !connected[p] {
			return domain.NewValidationError("no connected account for " + string(p))
		}
	}

	post.ID = uuid.New().String()
	post.Results = domain.PlatformResults{}
	post.PublishedAt = nil
	post.CreatedBy = user.ID
	post.CreatedAt = now
	post.UpdatedAt = now
	if err := s.repo.CreatePost(ctx, post); err != nil {
		s.logger.WithField("organization_id", post.OrganizationID).Error(fmt.Sprintf("Failed to create social post: %v", err))
		return err
	}
	return nil
}

func (s *SocialService) GetPost(ctx context.Context, organizationID, id string) (*domain.SocialPost, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceSocial, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetPost(ctx, organizationID, id)
}

func (s *SocialService) ListPosts(ctx context.Context, organizationID string, status domain.SocialPostStatus) ([]*domain.SocialPost, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceSocial, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	posts, err := s.repo.ListPosts(ctx, organizationID, status)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*domain.SocialPost{}
	}
	return posts, nil
}

func (s *SocialService) DeletePost(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceSocial, domain.ActionWrite)
	if err != nil {
		return err
	}
	post, err := s.repo.GetPost(ctx, organizationID, id)
	if err != nil {
		return err
	}
	if post.Status == domain.PostPublishing {
		return domain.NewConflict("social_post", "post is being published")
	}
	return s.repo.DeletePost(ctx, organizationID, id)
}

func (s *SocialService) SchedulePost(ctx context.Context, req domain.SchedulePostRequest) (*domain.SocialPost, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceSocial, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	if !req.ScheduledAt.After(s.now()) {
		return nil, domain.NewValidationError("scheduled_at must be in the future")
	}
	post, err := s.repo.GetPost(ctx, req.OrganizationID, req.PostID)
	if err != nil {
		return nil, err
	}
	if post.Status != domain.PostDraft && post.Status != domain.PostScheduled {
		return nil, domain.NewConflict("social_post", "only draft or scheduled posts can be scheduled")
	}
	at := req.ScheduledAt.UTC()
	post.ScheduledAt = &at
	post.Status = domain.PostScheduled
	post.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// PublishNow claims the post so the scheduler cannot publish it twice
func (s *SocialService) PublishNow(ctx context.Context, organizationID, id string) (*domain.SocialPost, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceSocial, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	post, err := s.repo.GetPost(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	claimed, err := s.repo.ClaimPost(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, domain.NewConflict("social_post", "post is already published or being published")
	}
	post.Status = domain.PostPublishing
	if err := s.publish(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// PublishDue publishes scheduled posts whose time has come. A failing post
// does not stop the batch.
func (s *SocialService) PublishDue(ctx context.Context, limit int) (int, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "SocialService", "PublishDue")
	defer span.End()

	if n, err := s.repo.FailStalePosts(ctx, s.now().UTC().Add(-stalePublishingAfter)); err != nil {
		s.logger.Warn(fmt.Sprintf("Failed to fail stale posts: %v", err))
	} else if n > 0 {
		s.logger.WithField("count", n).Warn("Stale publishing posts marked failed")
	}

	posts, err := s.repo.ClaimDuePosts(ctx, s.now().UTC(), limit)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.Error(fmt.Sprintf("Failed to claim due posts: %v", err))
		return 0, err
	}
	s.tracer.AddAttribute(ctx, "social.due_posts", len(posts))

	for _, post := range posts {
		if err := s.publish(ctx, post); err != nil {
			s.logger.WithField("post_id", post.ID).Error(fmt.Sprintf("Failed to publish scheduled post: %v", err))
		}
	}
	return len(posts), nil
}

// publish sends the post to every platform in parallel and records the
// outcome per platform
func (s *SocialService) publish(ctx context.Context, post *domain.SocialPost) error {
	accounts, err := s.repo.ListAccounts(ctx, post.OrganizationID)
	if err != nil {
		s.requeue(ctx, post)
		return err
	}
	byPlatform := make(map[domain.SocialPlatform]*domain.SocialAccount, len(accounts))
	for _, a := range accounts {
		byPlatform[a.Platform] = a
	}

	results := domain.PlatformResults{}
	var mu sync.Mutex
	record := func(platform domain.SocialPlatform, r domain.PlatformResult) {
		mu.Lock()
		results[platform] = r
		mu.Unlock()
	}

	var g errgroup.Group
	for _, platform := range post.Platforms {
		platform := platform
		account, ok := byPlatform[platform]
		if !ok {
			record(platform, domain.PlatformResult{Error: "no connected account"})
			continue
		}
		g.Go(func() error {
			token, err := crypto.DecryptString(account.EncryptedAccessToken, s.secretKey)
			if err != nil {
				record(platform, domain.PlatformResult{Error: "access token could not be decrypted"})
				return nil
			}
			externalID, err := s.poster.Post(ctx, platform, token, post.Content, post.MediaURLs)
			if err != nil {
				s.logger.WithFields(map[string]interface{}{
					"post_id":  post.ID,
					"platform": string(platform),
				}).Warn(fmt.Sprintf("Platform rejected post: %v", err))
				record(platform, domain.PlatformResult{Error: err.Error()})
				return nil
			}
			record(platform, domain.PlatformResult{ExternalID: externalID})
			return nil
		})
	}
	_ = g.Wait()

	now := s.now().UTC()
	post.Results = results
	post.Status = domain.FinalPostStatus(results)
	if post.Status != domain.PostFailed {
		post.PublishedAt = &now
	}
	post.UpdatedAt = now
	if err := s.repo.FinishPost(ctx, post); err != nil {
		s.logger.WithField("post_id", post.ID).Error(fmt.Sprintf("Failed to record publish results: %v", err))
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"post_id": post.ID,
		"status":  string(post.Status),
	}).Info("Social post processed")
	return nil
}

// requeue returns a claimed post to scheduled, or draft when it had no
// schedule, so a later run can pick it up
func (s *SocialService) requeue(ctx context.Context, post *domain.SocialPost) {
	post.Status = domain.PostDraft
	if post.ScheduledAt != nil {
		post.Status = domain.PostScheduled
	}
	if err := s.repo.RequeuePost(ctx, post); err != nil {
		s.logger.WithField("post_id", post.ID).Error(fmt.Sprintf("Failed to requeue post: %v", err))
	}
}
