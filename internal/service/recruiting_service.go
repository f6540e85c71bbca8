package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/mailer"
	"github.com/Go4ItSports/go4it/pkg/scraper"
	"github.com/Go4ItSports/go4it/pkg/smsgateway"
	"github.com/Go4ItSports/go4it/pkg/templates"
	"github.com/Go4ItSports/go4it/pkg/tracing"
)

const defaultCampaignConcurrency = 4

// ProfileScraper recovers athlete details from a public profile page
type ProfileScraper interface {
	ScrapeAthlete(ctx context.Context, pageURL string) (*scraper.AthleteStats, error)
}

type RecruitingService struct {
	prospects   domain.ProspectRepository
	campaigns   domain.CampaignRepository
	orgRepo     domain.OrganizationRepository
	mailer      mailer.Mailer
	sms         smsgateway.Sender
	scraper     ProfileScraper
	renderer    *templates.Renderer
	authService domain.AuthService
	eventBus    domain.EventBus
	logger      logger.Logger
	tracer      tracing.Tracer
	concurrency int64
	now         func() time.Time
}

type RecruitingServiceConfig struct {
	ProspectRepository     domain.ProspectRepository
	CampaignRepository     domain.CampaignRepository
	OrganizationRepository domain.OrganizationRepository
	Mailer                 mailer.Mailer
	SMSSender              smsgateway.Sender
	Scraper                ProfileScraper
	AuthService            domain.AuthService
	EventBus               domain.EventBus
	Logger                 logger.Logger
	Tracer                 tracing.Tracer
	// Concurrency bounds parallel sends per campaign
	Concurrency int
}

func NewRecruitingService(cfg RecruitingServiceConfig) *RecruitingService {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultCampaignConcurrency
	}
	return &RecruitingService{
		prospects:   cfg.ProspectRepository,
		campaigns:   cfg.CampaignRepository,
		orgRepo:     cfg.OrganizationRepository,
		mailer:      cfg.Mailer,
		sms:         cfg.SMSSender,
		scraper:     cfg.Scraper,
		renderer:    templates.NewRenderer(),
		authService: cfg.AuthService,
		eventBus:    cfg.EventBus,
		logger:      cfg.Logger,
		tracer:      tracer,
		concurrency: int64(concurrency),
		now:         time.Now,
	}
}

var _ domain.RecruitingService = (*RecruitingService)(nil)

func (s *RecruitingService) CreateProspect(ctx context.Context, prospect *domain.Prospect) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, prospect.OrganizationID, domain.ResourceProspects, domain.ActionWrite)
	if err != nil {
		return err
	}
	return s.createProspect(ctx, prospect)
}

func (s *RecruitingService) createProspect(ctx context.Context, prospect *domain.Prospect) error {
	if err := prospect.Validate(); err != nil {
		return err
	}
	if prospect.Phone != "" {
		phone, err := smsgateway.NormalizePhone(prospect.Phone)
		if err != nil {
			return domain.NewValidationError(err.Error())
		}
		prospect.Phone = phone
	}
	prospect.ID = uuid.New().String()
	prospect.CreatedAt = s.now().UTC()
	prospect.UpdatedAt = prospect.CreatedAt
	if err := s.prospects.Create(ctx, prospect); err != nil {
		s.logger.WithField("organization_id", prospect.OrganizationID).Error(fmt.Sprintf("Failed to create prospect: %v", err))
		return err
	}
	return nil
}

func (s *RecruitingService) GetProspect(ctx context.Context, organizationID, id string) (*domain.Prospect, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceProspects, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.prospects.GetByID(ctx, organizationID, id)
}

// UpdateProspect edits details. Status only moves through UpdateProspectStatus.
func (s *RecruitingService) UpdateProspect(ctx context.Context, prospect *domain.Prospect) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, prospect.OrganizationID, domain.ResourceProspects, domain.ActionWrite)
	if err != nil {
		return err
	}
	existing, err := s.prospects.GetByID(ctx, prospect.OrganizationID, prospect.ID)
	if err != nil {
		return err
	}
	prospect.Status = existing.Status
	prospect.Source = existing.Source
	if err := prospect.Validate(); err != nil {
		return err
	}
	if prospect.Phone != "" {
		phone, err := smsgateway.NormalizePhone(prospect.Phone)
		if err != nil {
			return domain.NewValidationError(err.Error())
		}
		prospect.Phone = phone
	}
	prospect.CreatedAt = existing.CreatedAt
	prospect.UpdatedAt = s.now().UTC()
	return s.prospects.Update(ctx, prospect)
}

// UpdateProspectStatus moves a prospect along the recruiting pipeline
func (s *RecruitingService) UpdateProspectStatus(ctx context.Context, req domain.UpdateProspectStatusRequest) (*domain.Prospect, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceProspects, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, domain.NewValidationError("invalid prospect status: " + string(req.Status))
	}
	prospect, err := s.prospects.GetByID(ctx, req.OrganizationID, req.ProspectID)
	if err != nil {
		return nil, err
	}
	if prospect.Status == req.Status {
		return prospect, nil
	}
	if !domain.CanTransitionProspect(prospect.Status, req.Status) {
		return nil, domain.NewValidationError(fmt.Sprintf("cannot move prospect from %s to %s", prospect.Status, req.Status))
	}
	prospect.Status = req.Status
	prospect.UpdatedAt = s.now().UTC()
	if err := s.prospects.Update(ctx, prospect); err != nil {
		return nil, err
	}
	return prospect, nil
}

func (s *RecruitingService) DeleteProspect(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceProspects, domain.ActionWrite)
	if err != nil {
		return err
	}
	return s.prospects.Delete(ctx, organizationID, id)
}

func (s *RecruitingService) ListProspects(ctx context.Context, filter domain.ProspectFilter) ([]*domain.Prospect, int, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, filter.OrganizationID, domain.ResourceProspects, domain.ActionRead)
	if err != nil {
		return nil, 0, err
	}
	filter.Limit, filter.Offset = domain.NormalizePage(filter.Limit, filter.Offset)
	prospects, total, err := s.prospects.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if prospects == nil {
		prospects = []*domain.Prospect{}
	}
	return prospects, total, nil
}

// ImportFromURL scrapes a public athlete profile into a new prospect
func (s *RecruitingService) ImportFromURL(ctx context.Context, req domain.ImportProspectRequest) (*domain.Prospect, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "RecruitingService", "ImportFromURL")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceProspects, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	if s.scraper == nil {
		return nil, fmt.Errorf("scraper is not configured")
	}

	stats, err := s.scraper.ScrapeAthlete(ctx, req.URL)
	if err != nil {
		s.logger.WithField("url", req.URL).Warn(fmt.Sprintf("Failed to scrape profile: %v", err))
		s.tracer.MarkSpanError(ctx, err)
		return nil, domain.NewValidationError("could not read profile page: " + err.Error())
	}
	if stats.Name == "" {
		return nil, domain.NewValidationError("no athlete name found on the page")
	}

	prospect := &domain.Prospect{
		OrganizationID: req.OrganizationID,
		Name:           stats.Name,
		Position:       stats.Position,
		GraduationYear: stats.GraduationYear,
		School:         stats.School,
		Source:         domain.ProspectSourceScraped,
		SourceURL:      stats.SourceURL,
		Notes:          scrapedNotes(stats),
	}
	if domain.IsSupportedSport(strings.ToLower(stats.Sport)) {
		prospect.Sport = strings.ToLower(stats.Sport)
	}
	if prospect.GraduationYear != 0 && (prospect.GraduationYear < 2000 || prospect.GraduationYear > 2100) {
		prospect.GraduationYear = 0
	}
	if err := s.createProspect(ctx, prospect); err != nil {
		return nil, err
	}
	return prospect, nil
}

// scrapedNotes keeps the measurables and stat table the prospect has no columns for
func scrapedNotes(stats *scraper.AthleteStats) string {
	var lines []string
	if stats.HeightInches > 0 {
		lines = append(lines, fmt.Sprintf("Height: %d'%d\"", stats.HeightInches/12, stats.HeightInches%12))
	}
	if stats.WeightLbs > 0 {
		lines = append(lines, fmt.Sprintf("Weight: %d lbs", stats.WeightLbs))
	}
	keys := make([]string, 0, len(stats.Stats))
	for k := range stats.Stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, stats.Stats[k]))
	}
	return strings.Join(lines, "\n")
}

func (s *RecruitingService) CreateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, campaign.OrganizationID, domain.ResourceCampaigns, domain.ActionWrite)
	if err != nil {
		return err
	}
	campaign.Status = domain.CampaignDraft
	if err := s.validateCampaign(campaign); err != nil {
		return err
	}
	campaign.ID = uuid.New().String()
	campaign.SentCount, campaign.FailedCount = 0, 0
	campaign.CreatedAt = s.now().UTC()
	campaign.UpdatedAt = campaign.CreatedAt
	return s.campaigns.Create(ctx, campaign)
}

func (s *RecruitingService) validateCampaign(campaign *domain.Campaign) error {
	if err := campaign.Validate(); err != nil {
		return err
	}
	if err := s.renderer.Validate(campaign.Body); err != nil {
		return domain.NewValidationError("body: " + err.Error())
	}
	if campaign.Channel == domain.ChannelEmail {
		if err := s.renderer.Validate(campaign.Subject); err != nil {
			return domain.NewValidationError("subject: " + err.Error())
		}
	}
	return nil
}

func (s *RecruitingService) GetCampaign(ctx context.Context, organizationID, id string) (*domain.Campaign, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCampaigns, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.campaigns.GetByID(ctx, organizationID, id)
}

// UpdateCampaign only edits drafts
func (s *RecruitingService) UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, campaign.OrganizationID, domain.ResourceCampaigns, domain.ActionWrite)
	if err != nil {
		return err
	}
	existing, err := s.campaigns.GetByID(ctx, campaign.OrganizationID, campaign.ID)
	if err != nil {
		return err
	}
	if existing.Status != domain.CampaignDraft {
		return domain.NewConflict("campaign", "only draft campaigns can be edited")
	}
	campaign.Status = domain.CampaignDraft
	if err := s.validateCampaign(campaign); err != nil {
		return err
	}
	campaign.CreatedAt = existing.CreatedAt
	campaign.UpdatedAt = s.now().UTC()
	return s.campaigns.Update(ctx, campaign)
}

func (s *RecruitingService) DeleteCampaign(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCampaigns, domain.ActionWrite)
	if err != nil {
		return err
	}
	existing, err := s.campaigns.GetByID(ctx, organizationID, id)
	if err != nil {
		return err
	}
	if existing.Status == domain.CampaignSending {
		return domain.NewConflict("campaign", "campaign is sending")
	}
	return s.campaigns.Delete(ctx, organizationID, id)
}

func (s *RecruitingService) ListCampaigns(ctx context.Context, organizationID string) ([]*domain.Campaign, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCampaigns, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.campaigns.List(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []*domain.Campaign{}
	}
	return campaigns, nil
}

// targetProspects pages through every prospect matching the campaign filter
func (s *RecruitingService) targetProspects(ctx context.Context, campaign *domain.Campaign) ([]*domain.Prospect, error) {
	filter := campaign.Filter.ProspectFilter(campaign.OrganizationID)
	filter.Limit = domain.MaxPageSize
	var all []*domain.Prospect
	for {
		page, _, err := s.prospects.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < filter.Limit {
			return all, nil
		}
		filter.Offset += len(page)
	}
}

// LaunchCampaign claims a draft, renders it per prospect and sends it on
// the campaign channel. New prospects that were reached become contacted.
func (s *RecruitingService) LaunchCampaign(ctx context.Context, organizationID, id string) (*domain.Campaign, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "RecruitingService", "LaunchCampaign")
	defer span.End()

	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCampaigns, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	campaign, err := s.campaigns.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	org, err := s.orgRepo.GetByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	launchedAt := s.now().UTC()
	claimed, err := s.campaigns.ClaimDraft(ctx, organizationID, id, launchedAt)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, domain.NewConflict("campaign", "campaign is not a draft")
	}
	campaign.Status = domain.CampaignSending
	campaign.LaunchedAt = &launchedAt

	prospects, err := s.targetProspects(ctx, campaign)
	if err != nil {
		s.logger.WithField("campaign_id", id).Error(fmt.Sprintf("Failed to select campaign prospects: %v", err))
		s.finishCampaign(ctx, campaign, 0, 0, domain.CampaignFailed)
		return nil, err
	}
	s.tracer.AddAttribute(ctx, "campaign.recipients", len(prospects))

	sent, failed, reached := s.deliver(ctx, campaign, org, prospects)
	if len(reached) > 0 {
		if err := s.prospects.MarkContacted(ctx, organizationID, reached); err != nil {
			s.logger.WithField("campaign_id", id).Error(fmt.Sprintf("Failed to mark prospects contacted: %v", err))
		}
	}

	s.finishCampaign(ctx, campaign, sent, failed, domain.FinalCampaignStatus(sent, failed))
	return campaign, nil
}

func (s *RecruitingService) finishCampaign(ctx context.Context, campaign *domain.Campaign, sent, failed int, status domain.CampaignStatus) {
	completedAt := s.now().UTC()
	campaign.SentCount = sent
	campaign.FailedCount = failed
	campaign.Status = status
	campaign.CompletedAt = &completedAt
	campaign.UpdatedAt = completedAt
	if err := s.campaigns.Finish(ctx, campaign); err != nil {
		s.logger.WithField("campaign_id", campaign.ID).Error(fmt.Sprintf("Failed to finish campaign: %v", err))
	}
	if s.eventBus != nil {
		s.eventBus.Publish(ctx, domain.EventPayload{
			Type:           domain.EventCampaignCompleted,
			OrganizationID: campaign.OrganizationID,
			EntityID:       campaign.ID,
			Data: map[string]interface{}{
				"status":       string(status),
				"sent_count":   sent,
				"failed_count": failed,
			},
		})
	}
}

// deliver sends to every prospect with bounded parallelism and returns the
// counts plus the ids of new prospects that were reached
func (s *RecruitingService) deliver(ctx context.Context, campaign *domain.Campaign, org *domain.Organization, prospects []*domain.Prospect) (int, int, []string) {
	var (
		mu      sync.Mutex
		sent    int
		failed  int
		reached []string
	)
	sem := semaphore.NewWeighted(s.concurrency)
	for _, p := range prospects {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			failed++
			mu.Unlock()
			continue
		}
		go func(p *domain.Prospect) {
			defer sem.Release(1)
			err := s.sendToProspect(ctx, campaign, org, p)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				s.logger.WithFields(map[string]interface{}{
					"campaign_id": campaign.ID,
					"prospect_id": p.ID,
				}).Warn(fmt.Sprintf("Campaign delivery failed: %v", err))
				return
			}
			sent++
			if p.Status == domain.ProspectNew {
				reached = append(reached, p.ID)
			}
		}(p)
	}
	// wait for in-flight sends; a background context so cancellation cannot skip the wait
	_ = sem.Acquire(context.Background(), s.concurrency)
	sem.Release(s.concurrency)
	return sent, failed, reached
}

func (s *RecruitingService) sendToProspect(ctx context.Context, campaign *domain.Campaign, org *domain.Organization, p *domain.Prospect) error {
	data := map[string]interface{}{
		"prospect": p.TemplateData(),
		"organization": map[string]interface{}{
			"id":   org.ID,
			"name": org.Name,
		},
		"campaign": map[string]interface{}{
			"name": campaign.Name,
		},
	}
	body, err := s.renderer.Render(ctx, campaign.Body, data)
	if err != nil {
		return err
	}

	switch campaign.Channel {
	case domain.ChannelSMS:
		if p.Phone == "" || p.Carrier == "" {
			return fmt.Errorf("prospect has no phone or carrier")
		}
		return s.sms.SendSMS(ctx, p.Phone, p.Carrier, body)
	default:
		if p.Email == "" {
			return fmt.Errorf("prospect has no email")
		}
		subject, err := s.renderer.Render(ctx, campaign.Subject, data)
		if err != nil {
			return err
		}
		content := templates.EmailContent{
			Preheader:  subject,
			Paragraphs: splitParagraphs(body),
			Footer:     "Sent by " + org.Name + " via Go4It Sports.",
		}
		return sendLayoutEmail(ctx, s.mailer, p.Email, p.Name, subject, "campaign", content)
	}
}

// splitParagraphs breaks rendered text on blank lines
func splitParagraphs(text string) []string {
	var out []string
	for _, part := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
