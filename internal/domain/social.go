package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_social_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain SocialRepository
//go:generate mockgen -destination mocks/mock_social_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain SocialService
//go:generate mockgen -destination mocks/mock_social_poster.go -package mocks github.com/Go4ItSports/go4it/internal/domain SocialPoster

type SocialPlatform string

const (
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformLinkedIn  SocialPlatform = "linkedin"
)

// ContentLimits is the maximum post length per platform, in characters
var ContentLimits = map[SocialPlatform]int{
	PlatformTwitter:   280,
	PlatformInstagram: 2200,
	PlatformLinkedIn:  3000,
	PlatformFacebook:  63206,
}

func (p SocialPlatform) IsValid() bool {
	_, ok := ContentLimits[p]
	return ok
}

type SocialAccount struct {
	ID                   string         `json:"id"`
	OrganizationID       string         `json:"organization_id"`
	Platform             SocialPlatform `json:"platform"`
	Handle               string         `json:"handle"`
	EncryptedAccessToken string         `json:"-"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

type ConnectAccountRequest struct {
	OrganizationID string         `json:"organization_id"`
	Platform       SocialPlatform `json:"platform"`
	Handle         string         `json:"handle"`
	AccessToken    string         `json:"access_token"`
}

func (r *ConnectAccountRequest) Validate() error {
	r.Handle = strings.TrimPrefix(strings.TrimSpace(r.Handle), "@")
	if r.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if !r.Platform.IsValid() {
		return NewValidationError("unsupported platform: " + string(r.Platform))
	}
	if r.Handle == "" {
		return NewValidationError("handle is required")
	}
	if strings.TrimSpace(r.AccessToken) == "" {
		return NewValidationError("access_token is required")
	}
	return nil
}

type SocialPostStatus string

const (
	PostDraft              SocialPostStatus = "draft"
	PostScheduled          SocialPostStatus = "scheduled"
	PostPublishing         SocialPostStatus = "publishing"
	PostPublished          SocialPostStatus = "published"
	PostPartiallyPublished SocialPostStatus = "partially_published"
	PostFailed             SocialPostStatus = "failed"
)

type PlatformResult struct {
	ExternalID string `json:"external_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PlatformResults is stored as JSONB
type PlatformResults map[SocialPlatform]PlatformResult

// Value implements the driver.Valuer interface for PlatformResults
func (r PlatformResults) Value() (driver.Value, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r)
}

// Scan implements the sql.Scanner interface for PlatformResults
func (r *PlatformResults) Scan(value interface{}) error {
	if value == nil {
		*r = PlatformResults{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("expected []byte, got %T", value)
	}
	out := PlatformResults{}
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*r = out
	return nil
}

type SocialPost struct {
	ID             string           `json:"id"`
	OrganizationID string           `json:"organization_id"`
	Content        string           `json:"content"`
	MediaURLs      []string         `json:"media_urls"`
	Platforms      []SocialPlatform `json:"platforms"`
	Status         SocialPostStatus `json:"status"`
	ScheduledAt    *time.Time       `json:"scheduled_at,omitempty"`
	PublishedAt    *time.Time       `json:"published_at,omitempty"`
	Results        PlatformResults  `json:"results"`
	CreatedBy      string           `json:"created_by,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (p *SocialPost) Validate() error {
	p.Content = strings.TrimSpace(p.Content)
	if p.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if p.Content == "" {
		return NewValidationError("post content is required")
	}
	if len(p.Platforms) == 0 {
		return NewValidationError("at least one platform is required")
	}
	for _, u := range p.MediaURLs {
		if !govalidator.IsURL(u) {
			return NewValidationError("invalid media url: " + u)
		}
	}
	length := utf8.RuneCountInString(p.Content)
	seen := make(map[SocialPlatform]bool, len(p.Platforms))
	for _, platform := range p.Platforms {
		limit, ok := ContentLimits[platform]
		if !ok {
			return NewValidationError("unsupported platform: " + string(platform))
		}
		if seen[platform] {
			return NewValidationError("duplicate platform: " + string(platform))
		}
		seen[platform] = true
		if length > limit {
			return NewValidationError(fmt.Sprintf("content exceeds %d characters for %s", limit, platform))
		}
		if platform == PlatformInstagram && len(p.MediaURLs) == 0 {
			return NewValidationError("instagram posts need at least one media url")
		}
	}
	if p.Status == "" {
		p.Status = PostDraft
	}
	if p.MediaURLs == nil {
		p.MediaURLs = []string{}
	}
	return nil
}

// FinalPostStatus derives the outcome from the per platform results
func FinalPostStatus(results PlatformResults) SocialPostStatus {
	succeeded, failed := 0, 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		} else {
			succeeded++
		}
	}
	switch {
	case succeeded > 0 && failed == 0:
		return PostPublished
	case succeeded > 0:
		return PostPartiallyPublished
	default:
		return PostFailed
	}
}

// SocialPoster publishes content to one platform and returns the platform's post ID
type SocialPoster interface {
	Post(ctx context.Context, platform SocialPlatform, accessToken, content string, mediaURLs []string) (string, error)
}

type SchedulePostRequest struct {
	OrganizationID string    `json:"organization_id"`
	PostID         string    `json:"post_id"`
	ScheduledAt    time.Time `json:"scheduled_at"`
}

type SocialService interface {
	ConnectAccount(ctx context.Context, req ConnectAccountRequest) (*SocialAccount, error)
	ListAccounts(ctx context.Context, organizationID string) ([]*SocialAccount, error)
	DisconnectAccount(ctx context.Context, organizationID, id string) error
	CreatePost(ctx context.Context, post *SocialPost) error
	GetPost(ctx context.Context, organizationID, id string) (*SocialPost, error)
	ListPosts(ctx context.Context, organizationID string, status SocialPostStatus) ([]*SocialPost, error)
	DeletePost(ctx context.Context, organizationID, id string) error
	SchedulePost(ctx context.Context, req SchedulePostRequest) (*SocialPost, error)
	PublishNow(ctx context.Context, organizationID, id string) (*SocialPost, error)
	// PublishDue is driven by the scheduler and returns how many posts were processed
	PublishDue(ctx context.Context, limit int) (int, error)
}

type SocialRepository interface {
	UpsertAccount(ctx context.Context, account *SocialAccount) error
	ListAccounts(ctx context.Context, organizationID string) ([]*SocialAccount, error)
	DeleteAccount(ctx context.Context, organizationID, id string) error
	CreatePost(ctx context.Context, post *SocialPost) error
	GetPost(ctx context.Context, organizationID, id string) (*SocialPost, error)
	UpdatePost(ctx context.Context, post *SocialPost) error
	DeletePost(ctx context.Context, organizationID, id string) error
	ListPosts(ctx context.Context, organizationID string, status SocialPostStatus) ([]*SocialPost, error)
	// ClaimPost moves a draft or scheduled post to publishing; false when another worker has it
	ClaimPost(ctx context.Context, organizationID, id string) (bool, error)
	// ClaimDuePosts locks due scheduled posts with SKIP LOCKED and marks them publishing
	ClaimDuePosts(ctx context.Context, now time.Time, limit int) ([]*SocialPost, error)
	FinishPost(ctx context.Context, post *SocialPost) error
	// RequeuePost moves a publishing post back to post.Status
	RequeuePost(ctx context.Context, post *SocialPost) error
	FailStalePosts(ctx context.Context, before time.Time) (int64, error)
}
