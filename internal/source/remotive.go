// Package source contains one connector per external listing service. Each
// connector fetches raw postings, maps them onto the normalized Job record
// and runs the text heuristics on every accepted candidate.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jobsift/jobsift/internal/heuristics"
	"github.com/jobsift/jobsift/internal/htmltext"
	"github.com/jobsift/jobsift/internal/ident"
	"github.com/jobsift/jobsift/internal/model"
	"github.com/jobsift/jobsift/internal/retry"
)

const remotiveBaseURL = "https://remotive.com/api/remote-jobs"

// remotiveJob is a single posting in the Remotive API response.
type remotiveJob struct {
	Title                     string          `json:"title"`
	CompanyName               string          `json:"company_name"`
	URL                       string          `json:"url"`
	Description               string          `json:"description"`
	PublicationDate           string          `json:"publication_date"`
	CandidateRequiredLocation string          `json:"candidate_required_location"`
	Salary                    json.RawMessage `json:"salary"`
	Compensation              json.RawMessage `json:"compensation"`
}

// remotiveResponse is the top-level Remotive jobs API response. Items are
// kept undecoded so each record can retain its raw payload.
type remotiveResponse struct {
	Jobs []json.RawMessage `json:"jobs"`
}

// Remotive fetches jobs from the Remotive public remote-jobs API.
// The endpoint takes an optional free-text `search` parameter and returns
// everything in one page.
type Remotive struct {
	client *http.Client
	policy retry.Policy
	logger *slog.Logger
}

// NewRemotive creates a connector for the Remotive API.
func NewRemotive(client *http.Client, policy retry.Policy, logger *slog.Logger) *Remotive {
	return &Remotive{client: client, policy: policy, logger: logger}
}

func (s *Remotive) Name() string { return "remotive" }

// Fetch retrieves Remotive jobs and returns them normalized. The query, when
// set, is passed upstream as the `search` parameter; Limit caps how many raw
// items are considered.
func (s *Remotive) Fetch(ctx context.Context, opts model.FetchOptions) ([]model.Job, error) {
	endpoint := remotiveBaseURL
	if opts.Query != "" {
		endpoint += "?search=" + url.QueryEscape(opts.Query)
	}

	var payload remotiveResponse
	err := retry.Do(s.policy, s.logger, func() error {
		payload = remotiveResponse{}
		return getJSON(ctx, s.client, endpoint, &payload)
	})
	if err != nil {
		return nil, fmt.Errorf("remotive fetch: %w", err)
	}

	items := payload.Jobs
	lim := opts.Limit
	if lim < 0 {
		lim = 0
	}
	if len(items) > lim {
		items = items[:lim]
	}

	out := make([]model.Job, 0, len(items))
	for _, raw := range items {
		var rj remotiveJob
		if err := json.Unmarshal(raw, &rj); err != nil {
			s.logger.Debug("skipping malformed remotive item", "error", err)
			continue
		}

		title := strings.TrimSpace(rj.Title)
		company := strings.TrimSpace(rj.CompanyName)
		jobURL := strings.TrimSpace(rj.URL)
		if title == "" || company == "" || jobURL == "" || !validURL(jobURL) {
			continue
		}

		desc := htmltext.Plain(strings.TrimSpace(rj.Description))
		if opts.FilterRelevant && !heuristics.IsRelevantRole(title, desc) {
			continue
		}

		// publication_date looks like "2024-01-01T12:34:56".
		var datePosted *string
		if pub := strings.TrimSpace(rj.PublicationDate); len(pub) >= 10 {
			datePosted = datePtr(pub[:10])
		}

		location := rj.CandidateRequiredLocation
		if location == "" {
			location = "Remote"
		}

		out = append(out, model.Job{
			ID:               ident.StableID(s.Name(), jobURL),
			Source:           s.Name(),
			CompanyName:      company,
			JobTitle:         title,
			JobURL:           jobURL,
			Location:         location,
			Remote:           true,
			DatePosted:       datePosted,
			Seniority:        heuristics.InferSeniority(title),
			FunctionKeywords: heuristics.ExtractFunctionKeywords(title + "\n" + desc),
			Description:      desc,
			Requirements:     heuristics.ExtractRequirements(desc),
			Salary:           salaryFrom(rj.Salary, rj.Compensation),
			Raw:              raw,
		})
	}

	return out, nil
}
