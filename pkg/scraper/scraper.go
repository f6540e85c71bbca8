// Package scraper extracts athlete details from public profile and roster pages.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
)

const (
	DefaultMaxBodyBytes = 2 << 20
	DefaultTimeout      = 15 * time.Second
	userAgent           = "Go4ItSportsBot/1.0 (+https://go4itsports.org/bot)"
)

// AthleteStats is everything the heuristics could recover from a page
type AthleteStats struct {
	Name           string            `json:"name"`
	Sport          string            `json:"sport,omitempty"`
	Position       string            `json:"position,omitempty"`
	School         string            `json:"school,omitempty"`
	GraduationYear int               `json:"graduation_year,omitempty"`
	HeightInches   int               `json:"height_inches,omitempty"`
	WeightLbs      int               `json:"weight_lbs,omitempty"`
	Stats          map[string]string `json:"stats"`
	SourceURL      string            `json:"source_url"`
}

// ErrPrivateAddress is returned for pages on loopback, private or
// link-local addresses
var ErrPrivateAddress = errors.New("scraper: address is not publicly routable")

// Scraper fetches and parses pages
type Scraper struct {
	client       *http.Client
	maxBodyBytes int64
	allowPrivate bool
}

type Option func(*Scraper)

// WithPrivateHosts lets the scraper reach internal addresses
func WithPrivateHosts() Option {
	return func(s *Scraper) { s.allowPrivate = true }
}

// New builds a scraper. A nil client gets a PublicTransport.
func New(client *http.Client, opts ...Option) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout, Transport: PublicTransport()}
	}
	s := &Scraper{client: client, maxBodyBytes: DefaultMaxBodyBytes}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PublicTransport refuses to dial non-public addresses, so DNS answers and
// redirects cannot point the scraper at internal services
func PublicTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
		Control: func(_, address string, _ syscall.RawConn) error {
			host, _, err := net.SplitHostPort(address)
			if err != nil {
				return err
			}
			if ip := net.ParseIP(host); ip == nil || !isPublicIP(ip) {
				return ErrPrivateAddress
			}
			return nil
		},
	}
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.Proxy = nil
	t.DialContext = dialer.DialContext
	return t
}

var sharedAddressSpace = &net.IPNet{IP: net.IPv4(100, 64, 0, 0), Mask: net.CIDRMask(10, 32)}

func isPublicIP(ip net.IP) bool {
	return !(ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() || ip.IsMulticast() ||
		sharedAddressSpace.Contains(ip))
}

// checkHost rejects literal internal addresses before any request is made
func (s *Scraper) checkHost(u *url.URL) error {
	if s.allowPrivate {
		return nil
	}
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return ErrPrivateAddress
	}
	if ip := net.ParseIP(host); ip != nil && !isPublicIP(ip) {
		return ErrPrivateAddress
	}
	return nil
}

// ScrapeAthlete downloads pageURL and parses it
func (s *Scraper) ScrapeAthlete(ctx context.Context, pageURL string) (*AthleteStats, error) {
	u, err := url.Parse(pageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid url: %q", pageURL)
	}
	if err := s.checkHost(u); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d fetching page", resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, s.maxBodyBytes)
	stats, err := Parse(body)
	if err != nil {
		return nil, err
	}
	stats.SourceURL = u.String()
	return stats, nil
}

var (
	heightPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b([4-7])\s*'\s*(\d{1,2})\s*(?:"|''|”)?`),
		regexp.MustCompile(`(?i)\b([4-7])\s*ft\.?\s*(\d{1,2})\s*in\b`),
		regexp.MustCompile(`(?i)(?:height|ht)\.?\s*:?\s*([4-7])-(\d{1,2})\b`),
		// roster shorthand such as "6-2"; digits, dashes and slashes on
		// either side mean a date, score or phone number instead
		regexp.MustCompile(`(?:^|[^\d/-])([4-7])-(\d{1,2})(?:[^\d/-]|$)`),
	}
	weightPattern   = regexp.MustCompile(`(?i)\b(\d{2,3})\s*(?:lbs?|pounds)\b`)
	gradYearPattern = []*regexp.Regexp{
		regexp.MustCompile(`(?i)class\s+of\s+(20\d{2})`),
		regexp.MustCompile(`(?i)grad(?:uation)?\s*(?:year)?\s*:?\s*(20\d{2})`),
		regexp.MustCompile(`(?i)'(\d{2})\s+grad\b`),
	}
	positionLabel = regexp.MustCompile(`(?i)\bpos(?:ition)?\.?\s*:\s*([A-Za-z][A-Za-z /-]{0,30}?)(?:\s{2,}|\n|\||,|$)`)
	schoolLabel   = regexp.MustCompile(`(?i)\b(?:high\s+)?school\s*:\s*([A-Z][A-Za-z .'-]{2,60}?)(?:\s{2,}|\n|\||,|$)`)
	spaceRun      = regexp.MustCompile(`\s+`)
)

var knownPositions = []string{
	"Quarterback", "Running Back", "Wide Receiver", "Tight End", "Offensive Lineman", "Linebacker",
	"Cornerback", "Safety", "Defensive End", "Point Guard", "Shooting Guard", "Small Forward",
	"Power Forward", "Center", "Pitcher", "Catcher", "Shortstop", "Outfielder", "Goalkeeper",
	"Midfielder", "Defender", "Forward", "Setter", "Libero", "Outside Hitter", "Middle Blocker",
}

var knownSports = []string{
	"football", "basketball", "baseball", "softball", "soccer", "volleyball", "track", "lacrosse", "hockey", "wrestling",
}

// Parse runs every heuristic over an HTML document
func Parse(r io.Reader) (*AthleteStats, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	stats := &AthleteStats{Stats: map[string]string{}}
	text := spaceRun.ReplaceAllString(doc.Find("body").Text(), " ")
	lines := doc.Find("body").Text()

	stats.Name = extractName(doc)
	stats.HeightInches = extractHeight(text)
	stats.WeightLbs = extractWeight(text)
	stats.GraduationYear = extractGradYear(text)
	stats.Position = extractPosition(lines, text)
	stats.School = extractSchool(doc, lines)
	stats.Sport = extractSport(doc, text)

	extractTables(doc, stats.Stats)
	extractDefinitionLists(doc, stats.Stats)

	return stats, nil
}

func extractName(doc *goquery.Document) string {
	var name string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := s.Text()
		if !gjson.Valid(raw) {
			return true
		}
		res := gjson.Parse(raw)
		candidates := []gjson.Result{res}
		if res.IsArray() {
			candidates = res.Array()
		}
		if graph := res.Get("@graph"); graph.IsArray() {
			candidates = append(candidates, graph.Array()...)
		}
		for _, c := range candidates {
			if c.Get("@type").String() == "Person" && c.Get("name").String() != "" {
				name = c.Get("name").String()
				return false
			}
		}
		return true
	})
	if name != "" {
		return clean(name)
	}

	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		return clean(stripSiteSuffix(og))
	}
	if h1 := clean(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return clean(stripSiteSuffix(doc.Find("title").First().Text()))
}

func stripSiteSuffix(title string) string {
	for _, sep := range []string{" | ", " - ", " – "} {
		if i := strings.Index(title, sep); i > 0 {
			return title[:i]
		}
	}
	return title
}

func extractHeight(text string) int {
	for _, re := range heightPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			ft, _ := strconv.Atoi(m[1])
			in, _ := strconv.Atoi(m[2])
			if in >= 12 {
				continue
			}
			return ft*12 + in
		}
	}
	return 0
}

func extractWeight(text string) int {
	for _, m := range weightPattern.FindAllStringSubmatch(text, -1) {
		w, _ := strconv.Atoi(m[1])
		if w >= 50 && w <= 400 {
			return w
		}
	}
	return 0
}

func extractGradYear(text string) int {
	for i, re := range gradYearPattern {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		y, _ := strconv.Atoi(m[1])
		if i == len(gradYearPattern)-1 {
			y += 2000
		}
		if y >= 2000 && y <= 2100 {
			return y
		}
	}
	return 0
}

func extractPosition(lines, text string) string {
	if m := positionLabel.FindStringSubmatch(lines); m != nil {
		return clean(m[1])
	}
	lower := strings.ToLower(text)
	for _, p := range knownPositions {
		if strings.Contains(lower, strings.ToLower(p)) {
			return p
		}
	}
	return ""
}

func extractSchool(doc *goquery.Document, lines string) string {
	if s := clean(doc.Find(`[itemprop="affiliation"], .school, .athlete-school`).First().Text()); s != "" {
		return s
	}
	if m := schoolLabel.FindStringSubmatch(lines); m != nil {
		return clean(m[1])
	}
	return ""
}

func extractSport(doc *goquery.Document, text string) string {
	if s, ok := doc.Find(`meta[name="sport"]`).Attr("content"); ok {
		return strings.ToLower(clean(s))
	}
	lower := strings.ToLower(text)
	for _, s := range knownSports {
		if strings.Contains(lower, s) {
			return s
		}
	}
	return ""
}

// extractTables maps header cells to the first data row of each table
func extractTables(doc *goquery.Document, out map[string]string) {
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		var headers []string
		table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
			if ths := row.Find("th"); ths.Length() > 0 && headers == nil {
				ths.Each(func(_ int, th *goquery.Selection) {
					headers = append(headers, clean(th.Text()))
				})
				return true
			}
			if headers == nil {
				return true
			}
			row.Find("td").Each(func(i int, td *goquery.Selection) {
				if i < len(headers) && headers[i] != "" {
					if _, exists := out[headers[i]]; !exists {
						out[headers[i]] = clean(td.Text())
					}
				}
			})
			return false
		})
	})
}

func extractDefinitionLists(doc *goquery.Document, out map[string]string) {
	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		dl.Find("dt").Each(func(_ int, dt *goquery.Selection) {
			key := strings.TrimSuffix(clean(dt.Text()), ":")
			val := clean(dt.NextFiltered("dd").Text())
			if key != "" && val != "" {
				if _, exists := out[key]; !exists {
					out[key] = val
				}
			}
		})
	})
}

func clean(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
