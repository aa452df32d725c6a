package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jobsift/jobsift/internal/heuristics"
	"github.com/jobsift/jobsift/internal/htmltext"
	"github.com/jobsift/jobsift/internal/ident"
	"github.com/jobsift/jobsift/internal/model"
	"github.com/jobsift/jobsift/internal/retry"
)

const arbeitnowBaseURL = "https://www.arbeitnow.com/api/job-board-api"

// arbeitnowJob is a single posting in the Arbeitnow job-board API response.
type arbeitnowJob struct {
	Title        string          `json:"title"`
	CompanyName  string          `json:"company_name"`
	Company      string          `json:"company"`
	URL          string          `json:"url"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	Remote       bool            `json:"remote"`
	CreatedAt    json.RawMessage `json:"created_at"`
	SalaryRange  json.RawMessage `json:"salary_range"`
	Salary       json.RawMessage `json:"salary"`
	Compensation json.RawMessage `json:"compensation"`
}

// arbeitnowResponse is one page of the Arbeitnow API. Postings usually sit
// under "data"; "jobs" is kept as a fallback key.
type arbeitnowResponse struct {
	Data []json.RawMessage `json:"data"`
	Jobs []json.RawMessage `json:"jobs"`
}

// Arbeitnow fetches jobs from the Arbeitnow job-board API, paginating with a
// `page` parameter until a page comes back empty or the limit is reached.
type Arbeitnow struct {
	client *http.Client
	policy retry.Policy
	logger *slog.Logger
}

// NewArbeitnow creates a connector for the Arbeitnow API.
func NewArbeitnow(client *http.Client, policy retry.Policy, logger *slog.Logger) *Arbeitnow {
	return &Arbeitnow{client: client, policy: policy, logger: logger}
}

func (s *Arbeitnow) Name() string { return "arbeitnow" }

// Fetch pages through Arbeitnow jobs and returns them normalized. The query
// is applied client-side as a case-insensitive substring filter over
// title+description; Limit caps the number of accepted records.
func (s *Arbeitnow) Fetch(ctx context.Context, opts model.FetchOptions) ([]model.Job, error) {
	q := strings.ToLower(strings.TrimSpace(opts.Query))
	var out []model.Job

	for page := 1; len(out) < opts.Limit; page++ {
		endpoint := fmt.Sprintf("%s?page=%d", arbeitnowBaseURL, page)

		var payload arbeitnowResponse
		err := retry.Do(s.policy, s.logger, func() error {
			payload = arbeitnowResponse{}
			return getJSON(ctx, s.client, endpoint, &payload)
		})
		if err != nil {
			return nil, fmt.Errorf("arbeitnow fetch page %d: %w", page, err)
		}

		items := payload.Data
		if len(items) == 0 {
			items = payload.Jobs
		}
		if len(items) == 0 {
			break
		}
		s.logger.Debug("arbeitnow page", "page", page, "items", len(items))

		for _, raw := range items {
			var aj arbeitnowJob
			if err := json.Unmarshal(raw, &aj); err != nil {
				s.logger.Debug("skipping malformed arbeitnow item", "error", err)
				continue
			}

			title := strings.TrimSpace(aj.Title)
			company := strings.TrimSpace(aj.CompanyName)
			if company == "" {
				company = strings.TrimSpace(aj.Company)
			}
			jobURL := strings.TrimSpace(aj.URL)
			if title == "" || company == "" || jobURL == "" || !validURL(jobURL) {
				continue
			}

			desc := htmltext.Plain(strings.TrimSpace(aj.Description))

			if q != "" && !strings.Contains(strings.ToLower(title)+" "+strings.ToLower(desc), q) {
				continue
			}
			if opts.FilterRelevant && !heuristics.IsRelevantRole(title, desc) {
				continue
			}

			location := aj.Location
			if location == "" {
				location = "Unknown"
			}

			out = append(out, model.Job{
				ID:               ident.StableID(s.Name(), jobURL),
				Source:           s.Name(),
				CompanyName:      company,
				JobTitle:         title,
				JobURL:           jobURL,
				Location:         location,
				Remote:           aj.Remote,
				DatePosted:       postedDate(aj.CreatedAt),
				Seniority:        heuristics.InferSeniority(title),
				FunctionKeywords: heuristics.ExtractFunctionKeywords(title + "\n" + desc),
				Description:      desc,
				Requirements:     heuristics.ExtractRequirements(desc),
				Salary:           salaryFrom(aj.SalaryRange, aj.Salary, aj.Compensation),
				Raw:              raw,
			})

			if len(out) >= opts.Limit {
				break
			}
		}
	}

	return out, nil
}
