package model

import (
	"context"
	"encoding/json"
)

// Seniority is the closed set of seniority labels a job title can resolve to.
type Seniority string

const (
	SeniorityIntern    Seniority = "intern"
	SeniorityJunior    Seniority = "junior"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityStaff     Seniority = "staff"
	SeniorityPrincipal Seniority = "principal"
	SeniorityManager   Seniority = "manager"
	SeniorityDirector  Seniority = "director"
	SeniorityVP        Seniority = "vp"
	SeniorityCXO       Seniority = "cxo"
	SeniorityUnknown   Seniority = "unknown"
)

// Job is the normalized representation of a posting from any source.
// The json tags are the output schema; prefer adding new fields over
// changing existing ones.
type Job struct {
	ID     string `json:"id"`     // deterministic, sha256 of source + url
	Source string `json:"source"` // source identifier, e.g. "remotive"

	CompanyName string `json:"company_name"`
	JobTitle    string `json:"job_title"`
	JobURL      string `json:"job_url"`

	Location   string  `json:"location"`
	Remote     bool    `json:"remote"`
	DatePosted *string `json:"date_posted"` // YYYY-MM-DD, null when unknown

	Seniority        Seniority `json:"seniority"`
	FunctionKeywords []string  `json:"function_keywords"`

	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Salary       string   `json:"salary"` // as provided by source, or "unknown"

	Raw json.RawMessage `json:"raw"` // original payload, kept verbatim
}

// FetchOptions are the caller-supplied knobs for a single fetch call.
type FetchOptions struct {
	Query          string // optional free-text filter
	Limit          int    // soft cap per source
	FilterRelevant bool   // keep only hardware/electronics roles
}

// Source fetches and normalizes postings from one external listing service.
type Source interface {
	Name() string
	Fetch(ctx context.Context, opts FetchOptions) ([]Job, error)
}
