package scraper

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilePage = `<!doctype html>
<html>
<head>
  <title>Marcus Hill - Recruiting Profile | HoopsHub</title>
  <meta property="og:title" content="Marcus Hill | HoopsHub">
  <script type="application/ld+json">{"@context":"https://schema.org","@type":"Person","name":"Marcus J. Hill"}</script>
</head>
<body>
  <h1>Marcus Hill</h1>
  <div class="bio">
    Position: Point Guard
    School: Lincoln High School
    Class of 2026 &middot; 6'2" &middot; 185 lbs
    Basketball
  </div>
  <table>
    <tr><th>PPG</th><th>APG</th><th>RPG</th></tr>
    <tr><td>21.4</td><td>7.9</td><td> 4.2 </td></tr>
    <tr><td>18.0</td><td>6.1</td><td>3.3</td></tr>
  </table>
  <dl><dt>Wingspan:</dt><dd>6'6"</dd><dt>GPA</dt><dd>3.7</dd></dl>
</body>
</html>`

func TestParse_Profile(t *testing.T) {
	stats, err := Parse(strings.NewReader(profilePage))
	require.NoError(t, err)

	assert.Equal(t, "Marcus J. Hill", stats.Name, "json-ld wins over other name sources")
	assert.Equal(t, "Point Guard", stats.Position)
	assert.Equal(t, "Lincoln High School", stats.School)
	assert.Equal(t, 2026, stats.GraduationYear)
	assert.Equal(t, 74, stats.HeightInches)
	assert.Equal(t, 185, stats.WeightLbs)
	assert.Equal(t, "basketball", stats.Sport)

	assert.Equal(t, "21.4", stats.Stats["PPG"])
	assert.Equal(t, "7.9", stats.Stats["APG"])
	assert.Equal(t, "4.2", stats.Stats["RPG"])
	assert.Equal(t, "6'6\"", stats.Stats["Wingspan"])
	assert.Equal(t, "3.7", stats.Stats["GPA"])
}

func TestParse_NameFallbacks(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "og title",
			html: `<html><head><meta property="og:title" content="Ava Chen | VolleyRecruits"></head><body><h1>Other</h1></body></html>`,
			want: "Ava Chen",
		},
		{
			name: "h1",
			html: `<html><head><title>Site</title></head><body><h1>  Leo   Martinez </h1></body></html>`,
			want: "Leo Martinez",
		},
		{
			name: "title",
			html: `<html><head><title>Sam Ortiz - Profile</title></head><body></body></html>`,
			want: "Sam Ortiz",
		},
		{
			name: "json-ld graph",
			html: `<html><head><script type="application/ld+json">{"@graph":[{"@type":"WebPage","name":"x"},{"@type":"Person","name":"Nia Brooks"}]}</script></head><body><h1>Wrong</h1></body></html>`,
			want: "Nia Brooks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := Parse(strings.NewReader(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats.Name)
		})
	}
}

func TestExtractHeight(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{`Height 6'2"`, 74},
		{`5' 11''`, 71},
		{"6 ft 4 in", 76},
		{"Height: 6-1", 73},
		{"no height here", 0},
		{`6'15"`, 0},
		{"6-2 | 185 lbs | QB", 74},
		{"Jordan Lee  6-2  Class of 2026", 74},
		{"Guard 5-11 170", 71},
		{"Born 6-12-2008, 6-1", 73},
		{"Game on 2026-05-07", 0},
		{"Won 56-7", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, extractHeight(tt.text))
		})
	}
}

func TestExtractGradYear(t *testing.T) {
	assert.Equal(t, 2027, extractGradYear("Class of 2027"))
	assert.Equal(t, 2025, extractGradYear("Grad Year: 2025"))
	assert.Equal(t, 2026, extractGradYear("a '26 grad from Texas"))
	assert.Equal(t, 0, extractGradYear("born in 1999"))
}

func TestExtractWeight(t *testing.T) {
	assert.Equal(t, 210, extractWeight("Weight 210 lbs"))
	assert.Equal(t, 155, extractWeight("14 lb bag, 155 pounds"))
	assert.Equal(t, 0, extractWeight("no weight"))
}

func TestScraper_ScrapeAthlete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/athlete":
			assert.Contains(t, r.Header.Get("User-Agent"), "Go4ItSportsBot")
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(profilePage))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s := New(server.Client(), WithPrivateHosts())

	stats, err := s.ScrapeAthlete(context.Background(), server.URL+"/athlete")
	require.NoError(t, err)
	assert.Equal(t, "Marcus J. Hill", stats.Name)
	assert.Equal(t, server.URL+"/athlete", stats.SourceURL)

	_, err = s.ScrapeAthlete(context.Background(), server.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	_, err = s.ScrapeAthlete(context.Background(), "ftp://example.com/file")
	assert.Error(t, err)
}

func TestScraper_RejectsPrivateHosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request reached internal host: %s", r.URL.Path)
	}))
	defer server.Close()

	s := New(server.Client())

	tests := []struct {
		name string
		url  string
	}{
		{name: "loopback test server", url: server.URL + "/athlete"},
		{name: "localhost", url: "http://localhost:8080/admin"},
		{name: "cloud metadata", url: "http://169.254.169.254/latest/meta-data/"},
		{name: "private range", url: "http://10.1.2.3/"},
		{name: "ipv6 loopback", url: "http://[::1]:9000/"},
		{name: "unspecified", url: "http://0.0.0.0/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ScrapeAthlete(context.Background(), tt.url)
			assert.ErrorIs(t, err, ErrPrivateAddress)
		})
	}
}

func TestPublicTransport_RefusesLoopbackDial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request reached internal host: %s", r.URL.Path)
	}))
	defer server.Close()

	// WithPrivateHosts skips the URL check, so only the dialer stands in the way
	s := New(&http.Client{Transport: PublicTransport()}, WithPrivateHosts())

	_, err := s.ScrapeAthlete(context.Background(), server.URL+"/athlete")
	assert.ErrorIs(t, err, ErrPrivateAddress)
}

func TestIsPublicIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"8.8.8.8", true},
		{"2606:4700:4700::1111", true},
		{"127.0.0.1", false},
		{"10.0.0.5", false},
		{"172.16.4.1", false},
		{"192.168.1.10", false},
		{"169.254.169.254", false},
		{"100.64.0.1", false},
		{"0.0.0.0", false},
		{"::1", false},
		{"fe80::1", false},
		{"fd00::1", false},
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			assert.Equal(t, tt.want, isPublicIP(net.ParseIP(tt.ip)))
		})
	}
}
