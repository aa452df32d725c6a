// Package heuristics holds the deterministic parsing logic of the pipeline:
// role-relevance filtering, seniority inference, function keyword extraction
// and requirement extraction. All functions are pure: same text in, same
// result out, no I/O and no errors.
package heuristics

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jobsift/jobsift/internal/model"
)

const maxRequirements = 12

// InferSeniority resolves a job title to a seniority label using the ordered
// rule table. No match yields SeniorityUnknown.
func InferSeniority(title string) model.Seniority {
	t := strings.ToLower(title)
	for _, rule := range SeniorityRules {
		if rule.Pattern.MatchString(t) {
			return rule.Label
		}
	}
	return model.SeniorityUnknown
}

// ExtractFunctionKeywords scans the lowercased text (typically title plus
// description) for include keywords and returns the hits, spelling-normalized
// and deduplicated in first-seen order.
func ExtractFunctionKeywords(text string) []string {
	t := strings.ToLower(text)
	var hits []string
	for _, kw := range IncludeKeywords {
		if strings.Contains(t, kw) {
			normalized := strings.ReplaceAll(kw, "mixed signal", "mixed-signal")
			normalized = strings.ReplaceAll(normalized, "board bring up", "board bring-up")
			hits = append(hits, normalized)
		}
	}
	return uniqPreserveOrder(hits)
}

// IsRelevantRole reports whether a posting looks like a hardware/electronics
// role. Exclusions are checked first (fast fail); otherwise at least one
// include keyword must appear in the combined title+description.
func IsRelevantRole(title, description string) bool {
	blob := strings.ToLower(title + "\n" + description)

	for _, kw := range ExcludeKeywords {
		if strings.Contains(blob, kw) {
			return false
		}
	}

	for _, kw := range IncludeKeywords {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

// bulletMarkerRE matches the start of a bullet-like line: a dash, asterisk,
// bullet character or numbered-list marker followed by whitespace.
var bulletMarkerRE = regexp.MustCompile(`(?m)^\s*(?:[-*•]|\d+\.)\s+`)

// ExtractRequirements pulls bullet-like lines out of a description as a naive
// requirements list. Each captured item runs up to the next bullet marker or
// end of text, with internal whitespace collapsed. Items shorter than 3 or
// longer than 220 characters are dropped; the result is deduplicated
// case-insensitively and capped at 12 entries.
func ExtractRequirements(description string) []string {
	if description == "" {
		return []string{}
	}

	cleaned := strings.TrimSpace(strings.ReplaceAll(description, "\r", ""))
	markers := bulletMarkerRE.FindAllStringIndex(cleaned, -1)

	var items []string
	for i, m := range markers {
		end := len(cleaned)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		item := strings.Join(strings.Fields(cleaned[m[1]:end]), " ")
		if n := utf8.RuneCountInString(item); n < 3 || n > 220 {
			continue
		}
		items = append(items, item)
	}

	items = uniqPreserveOrder(items)
	if len(items) > maxRequirements {
		items = items[:maxRequirements]
	}
	return items
}

// uniqPreserveOrder drops empty entries and case-insensitive duplicates while
// keeping first-seen order. The result is never nil: empty lists serialize as
// [] in the output artifact.
func uniqPreserveOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(it))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
