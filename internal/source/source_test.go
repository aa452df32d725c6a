package source

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jobsift/jobsift/internal/retry"
)

// roundTripFunc lets tests redirect fixed base URLs to a local test server.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// newTestClient returns a client that rewrites every request to srv.
func newTestClient(srv *httptest.Server) *http.Client {
	return &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			req.URL.Scheme = "http"
			req.URL.Host = srv.Listener.Addr().String()
			return http.DefaultTransport.RoundTrip(req)
		}),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastPolicy() retry.Policy {
	return retry.Policy{MaxRetries: 2, BaseDelay: time.Millisecond}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"120", 120 * time.Second},
		{"soon", 0},
	}
	for _, tt := range tests {
		if got := parseRetryAfter(tt.in); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidURL(t *testing.T) {
	valid := []string{"https://example.com/jobs/1", "http://example.com"}
	invalid := []string{"", "notaurl", "ftp://example.com/x", "https://"}
	for _, u := range valid {
		if !validURL(u) {
			t.Errorf("expected %q to be valid", u)
		}
	}
	for _, u := range invalid {
		if validURL(u) {
			t.Errorf("expected %q to be invalid", u)
		}
	}
}

func TestSalaryFrom(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"first populated wins", []string{`"€60k-€80k"`, `"ignored"`}, "€60k-€80k"},
		{"empty string falls through", []string{`""`, `"fallback"`}, "fallback"},
		{"null falls through", []string{`null`, `"fallback"`}, "fallback"},
		{"zero number falls through", []string{`0`, `"fallback"`}, "fallback"},
		{"number coerced", []string{`95000`}, "95000"},
		{"float coerced", []string{`95000.5`}, "95000.5"},
		{"whitespace winner collapses to unknown", []string{`"   "`, `"fallback"`}, "unknown"},
		{"nothing populated", []string{`null`, `""`}, "unknown"},
		{"no candidates", nil, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := make([]json.RawMessage, len(tt.candidates))
			for i, c := range tt.candidates {
				args[i] = json.RawMessage(c)
			}
			if got := salaryFrom(args...); got != tt.want {
				t.Errorf("salaryFrom(%v) = %q, want %q", tt.candidates, got, tt.want)
			}
		})
	}
}

func TestPostedDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string // "" means nil
	}{
		{"absent", ``, ""},
		{"null", `null`, ""},
		{"iso datetime", `"2024-01-15T10:00:00+00:00"`, "2024-01-15"},
		{"iso date only", `"2024-01-15"`, "2024-01-15"},
		{"leading ten chars fallback", `"2024-01-15 around noon"`, "2024-01-15"},
		{"too short string", `"2024"`, ""},
		{"epoch seconds", `1700000000`, "2023-11-14"},
		{"epoch milliseconds", `1700000000000`, "2023-11-14"},
		{"zero timestamp", `0`, ""},
		{"unparseable type", `true`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := postedDate(json.RawMessage(tt.raw))
			if tt.want == "" {
				if got != nil {
					t.Errorf("expected nil, got %q", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("postedDate(%s) = %v, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
