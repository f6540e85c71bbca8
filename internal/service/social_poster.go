package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/Go4ItSports/go4it/config"
	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/tracing"
)

const defaultSocialRequestsPerMinute = 30

// HTTPSocialPoster publishes through the platforms' HTTP APIs, throttled per platform
type HTTPSocialPoster struct {
	cfg      config.SocialConfig
	client   *http.Client
	logger   logger.Logger
	mu       sync.Mutex
	limiters map[domain.SocialPlatform]*rate.Limiter
}

func NewHTTPSocialPoster(cfg config.SocialConfig, client *http.Client, logger logger.Logger) *HTTPSocialPoster {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = defaultSocialRequestsPerMinute
	}
	return &HTTPSocialPoster{
		cfg:      cfg,
		client:   tracing.WrapHTTPClient(client),
		logger:   logger,
		limiters: make(map[domain.SocialPlatform]*rate.Limiter),
	}
}

var _ domain.SocialPoster = (*HTTPSocialPoster)(nil)

func (p *HTTPSocialPoster) limiter(platform domain.SocialPlatform) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.limiters[platform]
	if !ok {
		l = rate.NewLimiter(rate.Every(time.Minute/time.Duration(p.cfg.RequestsPerMinute)), 1)
		p.limiters[platform] = l
	}
	return l
}

type socialPostPayload struct {
	Content   string   `json:"content"`
	MediaURLs []string `json:"media_urls,omitempty"`
}

func (p *HTTPSocialPoster) Post(ctx context.Context, platform domain.SocialPlatform, accessToken, content string, mediaURLs []string) (string, error) {
	base := p.cfg.APIURL(string(platform))
	if base == "" {
		return "", fmt.Errorf("no API endpoint configured for %s", platform)
	}
	if err := p.limiter(platform).Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(socialPostPayload{Content: content, MediaURLs: mediaURLs})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(base, "/")+"/posts", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", platform, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := gjson.GetBytes(raw, "error.message").String()
		if msg == "" {
			msg = gjson.GetBytes(raw, "error").String()
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		p.logger.WithFields(map[string]interface{}{
			"platform": string(platform),
			"status":   resp.StatusCode,
		}).Debug("Social platform returned an error")
		return "", fmt.Errorf("%s returned %d: %s", platform, resp.StatusCode, msg)
	}

	for _, path := range []string{"id", "data.id", "post_id"} {
		if id := gjson.GetBytes(raw, path).String(); id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("%s response did not include a post id", platform)
}
