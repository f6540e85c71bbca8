package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_prospect_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain ProspectRepository
//go:generate mockgen -destination mocks/mock_campaign_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain CampaignRepository
//go:generate mockgen -destination mocks/mock_recruiting_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain RecruitingService

type ProspectStatus string

const (
	ProspectNew        ProspectStatus = "new"
	ProspectContacted  ProspectStatus = "contacted"
	ProspectInterested ProspectStatus = "interested"
	ProspectCommitted  ProspectStatus = "committed"
	ProspectDeclined   ProspectStatus = "declined"
)

var prospectTransitions = map[ProspectStatus][]ProspectStatus{
	ProspectNew:        {ProspectContacted, ProspectDeclined},
	ProspectContacted:  {ProspectInterested, ProspectDeclined},
	ProspectInterested: {ProspectCommitted, ProspectDeclined},
	ProspectDeclined:   {ProspectContacted},
}

// CanTransitionProspect reports whether the pipeline allows from -> to
func CanTransitionProspect(from, to ProspectStatus) bool {
	for _, next := range prospectTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ProspectStatus) IsValid() bool {
	switch s {
	case ProspectNew, ProspectContacted, ProspectInterested, ProspectCommitted, ProspectDeclined:
		return true
	}
	return false
}

type ProspectSource string

const (
	ProspectSourceManual  ProspectSource = "manual"
	ProspectSourceScraped ProspectSource = "scraped"
	ProspectSourceLead    ProspectSource = "lead"
)

type Prospect struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organization_id"`
	Name           string         `json:"name"`
	Email          string         `json:"email,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Carrier        string         `json:"carrier,omitempty"`
	Sport          string         `json:"sport,omitempty"`
	Position       string         `json:"position,omitempty"`
	GraduationYear int            `json:"graduation_year,omitempty"`
	School         string         `json:"school,omitempty"`
	State          string         `json:"state,omitempty"`
	Status         ProspectStatus `json:"status"`
	Score          *int           `json:"score,omitempty"`
	Source         ProspectSource `json:"source"`
	SourceURL      string         `json:"source_url,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (p *Prospect) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Sport = strings.ToLower(strings.TrimSpace(p.Sport))
	p.State = strings.ToUpper(strings.TrimSpace(p.State))
	p.Carrier = strings.ToLower(strings.TrimSpace(p.Carrier))
	if p.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if p.Name == "" {
		return NewValidationError("prospect name is required")
	}
	if p.Email != "" && !govalidator.IsEmail(p.Email) {
		return NewValidationError("invalid email format")
	}
	if p.Sport != "" && !IsSupportedSport(p.Sport) {
		return NewValidationError("unsupported sport: " + p.Sport)
	}
	if p.GraduationYear != 0 && (p.GraduationYear < 2000 || p.GraduationYear > 2100) {
		return NewValidationError("graduation year must be between 2000 and 2100")
	}
	if p.Score != nil && (*p.Score < 0 || *p.Score > 100) {
		return NewValidationError("score must be between 0 and 100")
	}
	if p.Status == "" {
		p.Status = ProspectNew
	}
	if !p.Status.IsValid() {
		return NewValidationError("invalid prospect status: " + string(p.Status))
	}
	if p.Source == "" {
		p.Source = ProspectSourceManual
	}
	switch p.Source {
	case ProspectSourceManual, ProspectSourceScraped, ProspectSourceLead:
	default:
		return NewValidationError("invalid prospect source: " + string(p.Source))
	}
	if p.SourceURL != "" && !govalidator.IsURL(p.SourceURL) {
		return NewValidationError("source_url must be a valid URL")
	}
	return nil
}

// TemplateData exposes the prospect to campaign templates
func (p *Prospect) TemplateData() map[string]interface{} {
	first := p.Name
	if i := strings.IndexByte(p.Name, ' '); i > 0 {
		first = p.Name[:i]
	}
	return map[string]interface{}{
		"id":              p.ID,
		"name":            p.Name,
		"first_name":      first,
		"email":           p.Email,
		"sport":           p.Sport,
		"position":        p.Position,
		"graduation_year": p.GraduationYear,
		"school":          p.School,
		"state":           p.State,
		"status":          string(p.Status),
	}
}

type ProspectFilter struct {
	OrganizationID string
	Statuses       []ProspectStatus
	Sport          string
	GraduationYear int
	State          string
	MinScore       int
	Search         string
	Limit          int
	Offset         int
}

type CampaignChannel string

const (
	ChannelEmail CampaignChannel = "email"
	ChannelSMS   CampaignChannel = "sms"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignSending   CampaignStatus = "sending"
	CampaignCompleted CampaignStatus = "completed"
	CampaignFailed    CampaignStatus = "failed"
)

// CampaignFilter selects the prospects a campaign targets
type CampaignFilter struct {
	Sport          string           `json:"sport,omitempty"`
	GraduationYear int              `json:"graduation_year,omitempty"`
	State          string           `json:"state,omitempty"`
	MinScore       int              `json:"min_score,omitempty"`
	Statuses       []ProspectStatus `json:"statuses,omitempty"`
}

// Value implements the driver.Valuer interface for CampaignFilter
func (f CampaignFilter) Value() (driver.Value, error) {
	return json.Marshal(f)
}

// Scan implements the sql.Scanner interface for CampaignFilter
func (f *CampaignFilter) Scan(value interface{}) error {
	if value == nil {
		*f = CampaignFilter{}
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
	return json.Unmarshal(b, f)
}

// ProspectFilter converts the campaign targeting into a repository filter
func (f CampaignFilter) ProspectFilter(organizationID string) ProspectFilter {
	return ProspectFilter{
		OrganizationID: organizationID,
		Statuses:       f.Statuses,
		Sport:          f.Sport,
		GraduationYear: f.GraduationYear,
		State:          f.State,
		MinScore:       f.MinScore,
	}
}

type Campaign struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Name           string          `json:"name"`
	Channel        CampaignChannel `json:"channel"`
	Subject        string          `json:"subject,omitempty"`
	Body           string          `json:"body"`
	Status         CampaignStatus  `json:"status"`
	Filter         CampaignFilter  `json:"filter"`
	SentCount      int             `json:"sent_count"`
	FailedCount    int             `json:"failed_count"`
	LaunchedAt     *time.Time      `json:"launched_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (c *Campaign) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if c.Name == "" {
		return NewValidationError("campaign name is required")
	}
	switch c.Channel {
	case ChannelEmail:
		if strings.TrimSpace(c.Subject) == "" {
			return NewValidationError("email campaigns need a subject")
		}
	case ChannelSMS:
	default:
		return NewValidationError("channel must be email or sms")
	}
	if strings.TrimSpace(c.Body) == "" {
		return NewValidationError("campaign body is required")
	}
	if c.Status == "" {
		c.Status = CampaignDraft
	}
	for _, s := range c.Filter.Statuses {
		if !s.IsValid() {
			return NewValidationError("invalid prospect status in filter: " + string(s))
		}
	}
	c.Filter.Sport = strings.ToLower(c.Filter.Sport)
	c.Filter.State = strings.ToUpper(c.Filter.State)
	return nil
}

// FinalCampaignStatus is failed only when nothing was delivered
func FinalCampaignStatus(sent, failed int) CampaignStatus {
	if sent == 0 && failed > 0 {
		return CampaignFailed
	}
	return CampaignCompleted
}

type UpdateProspectStatusRequest struct {
	OrganizationID string         `json:"organization_id"`
	ProspectID     string         `json:"prospect_id"`
	Status         ProspectStatus `json:"status"`
}

type ImportProspectRequest struct {
	OrganizationID string `json:"organization_id"`
	URL            string `json:"url"`
}

func (r *ImportProspectRequest) Validate() error {
	if r.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if !govalidator.IsURL(r.URL) || !(strings.HasPrefix(r.URL, "http://") || strings.HasPrefix(r.URL, "https://")) {
		return NewValidationError("url must be an absolute http(s) URL")
	}
	return nil
}

type RecruitingService interface {
	CreateProspect(ctx context.Context, prospect *Prospect) error
	GetProspect(ctx context.Context, organizationID, id string) (*Prospect, error)
	UpdateProspect(ctx context.Context, prospect *Prospect) error
	UpdateProspectStatus(ctx context.Context, req UpdateProspectStatusRequest) (*Prospect, error)
	DeleteProspect(ctx context.Context, organizationID, id string) error
	ListProspects(ctx context.Context, filter ProspectFilter) ([]*Prospect, int, error)
	ImportFromURL(ctx context.Context, req ImportProspectRequest) (*Prospect, error)

	CreateCampaign(ctx context.Context, campaign *Campaign) error
	GetCampaign(ctx context.Context, organizationID, id string) (*Campaign, error)
	UpdateCampaign(ctx context.Context, campaign *Campaign) error
	DeleteCampaign(ctx context.Context, organizationID, id string) error
	ListCampaigns(ctx context.Context, organizationID string) ([]*Campaign, error)
	LaunchCampaign(ctx context.Context, organizationID, id string) (*Campaign, error)
}

type ProspectRepository interface {
	Create(ctx context.Context, prospect *Prospect) error
	GetByID(ctx context.Context, organizationID, id string) (*Prospect, error)
	Update(ctx context.Context, prospect *Prospect) error
	Delete(ctx context.Context, organizationID, id string) error
	List(ctx context.Context, filter ProspectFilter) ([]*Prospect, int, error)
	// MarkContacted moves the given new prospects to contacted
	MarkContacted(ctx context.Context, organizationID string, ids []string) error
	CountByStatus(ctx context.Context, organizationID string) (map[string]int, error)
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *Campaign) error
	GetByID(ctx context.Context, organizationID, id string) (*Campaign, error)
	Update(ctx context.Context, campaign *Campaign) error
	Delete(ctx context.Context, organizationID, id string) error
	List(ctx context.Context, organizationID string) ([]*Campaign, error)
	// ClaimDraft atomically moves a draft to sending; false when it was not a draft
	ClaimDraft(ctx context.Context, organizationID, id string, launchedAt time.Time) (bool, error)
	Finish(ctx context.Context, campaign *Campaign) error
}
