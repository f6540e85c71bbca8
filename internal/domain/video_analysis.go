package domain

import (
	"context"
	"hash/fnv"
	"math"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_video_analysis_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain VideoAnalysisRepository
//go:generate mockgen -destination mocks/mock_video_analysis_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain VideoAnalysisService
//go:generate mockgen -destination mocks/mock_video_storage.go -package mocks github.com/Go4ItSports/go4it/internal/domain VideoStorage

type AnalysisStatus string

const (
	AnalysisStatusPending   AnalysisStatus = "pending"
	AnalysisStatusCompleted AnalysisStatus = "completed"
	AnalysisStatusFailed    AnalysisStatus = "failed"
)

type GARTier string

const (
	TierElite      GARTier = "Elite"
	TierAdvanced   GARTier = "Advanced"
	TierProficient GARTier = "Proficient"
	TierDeveloping GARTier = "Developing"
	TierFoundation GARTier = "Foundation"
)

// TierForScore maps a GAR score onto its tier
func TierForScore(score int) GARTier {
	switch {
	case score >= 90:
		return TierElite
	case score >= 80:
		return TierAdvanced
	case score >= 70:
		return TierProficient
	case score >= 60:
		return TierDeveloping
	default:
		return TierFoundation
	}
}

const (
	ComponentSpeed     = "speed"
	ComponentAgility   = "agility"
	ComponentTechnique = "technique"
	ComponentEndurance = "endurance"
	ComponentDecision  = "decision"
)

// GARComponentNames is sorted alphabetically
var GARComponentNames = []string{
	ComponentAgility, ComponentDecision, ComponentEndurance, ComponentSpeed, ComponentTechnique,
}

// GARComponents holds the five 0-100 sub scores
type GARComponents struct {
	Speed     float64 `json:"speed"`
	Agility   float64 `json:"agility"`
	Technique float64 `json:"technique"`
	Endurance float64 `json:"endurance"`
	Decision  float64 `json:"decision"`
}

func (c GARComponents) Get(name string) float64 {
	switch name {
	case ComponentSpeed:
		return c.Speed
	case ComponentAgility:
		return c.Agility
	case ComponentTechnique:
		return c.Technique
	case ComponentEndurance:
		return c.Endurance
	case ComponentDecision:
		return c.Decision
	}
	return 0
}

func (c *GARComponents) set(name string, v float64) {
	switch name {
	case ComponentSpeed:
		c.Speed = v
	case ComponentAgility:
		c.Agility = v
	case ComponentTechnique:
		c.Technique = v
	case ComponentEndurance:
		c.Endurance = v
	case ComponentDecision:
		c.Decision = v
	}
}

type garWeights map[string]float64

var equalWeights = garWeights{
	ComponentSpeed: 0.2, ComponentAgility: 0.2, ComponentTechnique: 0.2,
	ComponentEndurance: 0.2, ComponentDecision: 0.2,
}

var sportWeights = map[string]garWeights{
	"football": {
		ComponentSpeed: 0.25, ComponentAgility: 0.20, ComponentTechnique: 0.20,
		ComponentEndurance: 0.15, ComponentDecision: 0.20,
	},
	"basketball": {
		ComponentSpeed: 0.20, ComponentAgility: 0.20, ComponentTechnique: 0.25,
		ComponentEndurance: 0.15, ComponentDecision: 0.20,
	},
	"baseball": {
		ComponentSpeed: 0.15, ComponentAgility: 0.15, ComponentTechnique: 0.35,
		ComponentEndurance: 0.10, ComponentDecision: 0.25,
	},
	"soccer": {
		ComponentSpeed: 0.20, ComponentAgility: 0.20, ComponentTechnique: 0.20,
		ComponentEndurance: 0.25, ComponentDecision: 0.15,
	},
	"volleyball": {
		ComponentSpeed: 0.15, ComponentAgility: 0.25, ComponentTechnique: 0.25,
		ComponentEndurance: 0.15, ComponentDecision: 0.20,
	},
	"track": {
		ComponentSpeed: 0.40, ComponentAgility: 0.10, ComponentTechnique: 0.20,
		ComponentEndurance: 0.25, ComponentDecision: 0.05,
	},
}

// WeightsForSport returns the component weights, equal weights for unlisted sports
func WeightsForSport(sport string) map[string]float64 {
	w, ok := sportWeights[sport]
	if !ok {
		w = equalWeights
	}
	out := make(map[string]float64, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

const (
	ShortVideoSeconds      = 10
	shortVideoPenalty      = 0.9
	derivedComponentFloor  = 55
	derivedComponentSpread = 40
	StrengthThreshold      = 80
	ImprovementThreshold   = 70
)

// derivedComponent is stable for a given video, sport and component: 55..94
func derivedComponent(videoURL, sport, component string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(videoURL + "|" + sport + "|" + component))
	return float64(derivedComponentFloor + h.Sum32()%derivedComponentSpread)
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// GARResult is the outcome of scoring one video
type GARResult struct {
	Components   GARComponents `json:"components"`
	Score        int           `json:"gar_score"`
	Tier         GARTier       `json:"tier"`
	Strengths    []string      `json:"strengths"`
	Improvements []string      `json:"improvements"`
}

// ScoreGAR runs the heuristic scorer. Supplied metrics win, missing ones are derived from the video URL.
func ScoreGAR(videoURL, sport string, durationSeconds float64, metrics map[string]float64) GARResult {
	var comps GARComponents
	for _, name := range GARComponentNames {
		if v, ok := metrics[name]; ok {
			comps.set(name, clampScore(v))
			continue
		}
		comps.set(name, derivedComponent(videoURL, sport, name))
	}

	if durationSeconds > 0 && durationSeconds < ShortVideoSeconds {
		comps.Technique = comps.Technique * shortVideoPenalty
	}

	weights := WeightsForSport(sport)
	var total float64
	for _, name := range GARComponentNames {
		total += weights[name] * comps.Get(name)
	}
	score := int(math.Round(clampScore(total)))

	result := GARResult{
		Components:   comps,
		Score:        score,
		Tier:         TierForScore(score),
		Strengths:    []string{},
		Improvements: []string{},
	}
	for _, name := range GARComponentNames {
		v := comps.Get(name)
		if v >= StrengthThreshold {
			result.Strengths = append(result.Strengths, name)
		}
		if v < ImprovementThreshold {
			result.Improvements = append(result.Improvements, name)
		}
	}
	sort.Strings(result.Strengths)
	sort.Strings(result.Improvements)
	return result
}

// AnalysisXP is the StarPath reward for a completed analysis
func AnalysisXP(score int) int {
	return 25 + score/4
}

// VideoAnalysis is one scored upload
type VideoAnalysis struct {
	ID              string         `json:"id"`
	OrganizationID  string         `json:"organization_id"`
	AthleteID       string         `json:"athlete_id"`
	VideoURL        string         `json:"video_url"`
	Sport           string         `json:"sport"`
	DurationSeconds float64        `json:"duration_seconds"`
	Status          AnalysisStatus `json:"status"`
	Components      GARComponents  `json:"components"`
	GARScore        int            `json:"gar_score"`
	Tier            GARTier        `json:"tier,omitempty"`
	Strengths       []string       `json:"strengths"`
	Improvements    []string       `json:"improvements"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
}

// ApplyResult copies a scoring result onto the analysis and marks it completed
func (v *VideoAnalysis) ApplyResult(r GARResult, at time.Time) {
	v.Components = r.Components
	v.GARScore = r.Score
	v.Tier = r.Tier
	v.Strengths = r.Strengths
	v.Improvements = r.Improvements
	v.Status = AnalysisStatusCompleted
	v.CompletedAt = &at
}

type AnalyzeRequest struct {
	OrganizationID  string             `json:"organization_id"`
	AthleteID       string             `json:"athlete_id"`
	VideoURL        string             `json:"video_url"`
	Sport           string             `json:"sport,omitempty"`
	DurationSeconds float64            `json:"duration_seconds"`
	Metrics         map[string]float64 `json:"metrics,omitempty"`
}

func (r *AnalyzeRequest) Validate() error {
	r.Sport = strings.ToLower(strings.TrimSpace(r.Sport))
	if r.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if r.AthleteID == "" {
		return NewValidationError("athlete_id is required")
	}
	if !govalidator.IsURL(r.VideoURL) {
		return NewValidationError("video_url must be a valid URL")
	}
	if r.Sport != "" && !IsSupportedSport(r.Sport) {
		return NewValidationError("unsupported sport: " + r.Sport)
	}
	if r.DurationSeconds <= 0 || r.DurationSeconds > 3600 {
		return NewValidationError("duration_seconds must be between 0 and 3600")
	}
	for name := range r.Metrics {
		known := false
		for _, c := range GARComponentNames {
			if c == name {
				known = true
				break
			}
		}
		if !known {
			return NewValidationError("unknown metric: " + name)
		}
	}
	return nil
}

// AllowedVideoContentTypes maps upload content types to file extensions
var AllowedVideoContentTypes = map[string]string{
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
}

type UploadURLRequest struct {
	OrganizationID string `json:"organization_id"`
	AthleteID      string `json:"athlete_id"`
	Filename       string `json:"filename"`
	ContentType    string `json:"content_type"`
}

func (r *UploadURLRequest) Validate() error {
	if r.OrganizationID == "" || r.AthleteID == "" {
		return NewValidationError("organization_id and athlete_id are required")
	}
	if strings.TrimSpace(r.Filename) == "" {
		return NewValidationError("filename is required")
	}
	if _, ok := AllowedVideoContentTypes[r.ContentType]; !ok {
		return NewValidationError("content type must be video/mp4, video/quicktime or video/webm")
	}
	return nil
}

// ObjectKey builds the storage key for an upload
func (r *UploadURLRequest) ObjectKey(id string) string {
	base := strings.TrimSuffix(path.Base(r.Filename), path.Ext(r.Filename))
	base = Slugify(base)
	if base == "" {
		base = "video"
	}
	return path.Join("organizations", r.OrganizationID, "athletes", r.AthleteID, "videos",
		id+"-"+base+AllowedVideoContentTypes[r.ContentType])
}

type UploadURLResponse struct {
	UploadURL string    `json:"upload_url"`
	ObjectKey string    `json:"object_key"`
	VideoURL  string    `json:"video_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VideoStorage issues presigned upload URLs
type VideoStorage interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error)
	ObjectURL(key string) string
}

type VideoAnalysisService interface {
	RequestUploadURL(ctx context.Context, req UploadURLRequest) (*UploadURLResponse, error)
	Analyze(ctx context.Context, req AnalyzeRequest) (*VideoAnalysis, error)
	GetAnalysis(ctx context.Context, organizationID, id string) (*VideoAnalysis, error)
	ListAnalyses(ctx context.Context, organizationID, athleteID string, limit int) ([]*VideoAnalysis, error)
}

type VideoAnalysisRepository interface {
	Create(ctx context.Context, analysis *VideoAnalysis) error
	// Complete stores the result and copies the score onto the athlete in one transaction
	Complete(ctx context.Context, analysis *VideoAnalysis) error
	MarkFailed(ctx context.Context, organizationID, id, reason string) error
	GetByID(ctx context.Context, organizationID, id string) (*VideoAnalysis, error)
	ListByAthlete(ctx context.Context, organizationID, athleteID string, limit int) ([]*VideoAnalysis, error)
	CountSince(ctx context.Context, organizationID string, since time.Time) (int, error)
}
