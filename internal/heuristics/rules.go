package heuristics

import (
	"regexp"

	"github.com/jobsift/jobsift/internal/model"
)

// IncludeKeywords are the hardware/electronics terms that mark a role as
// domain-relevant. Matching is a case-insensitive substring scan, so
// multi-word entries match across spacing exactly as written.
var IncludeKeywords = []string{
	"electronics",
	"electronic",
	"electrical",
	"hardware",
	"embedded",
	"firmware",
	"pcb",
	"schematic",
	"analog",
	"mixed-signal",
	"mixed signal",
	"power electronics",
	"power supply",
	"dc-dc",
	"buck",
	"boost",
	"rf",
	"antenna",
	"signal integrity",
	"emi",
	"emc",
	"verification",
	"validation",
	"test engineer",
	"lab engineer",
	"board bring-up",
	"board bring up",
	"fpga",
	"microcontroller",
	"stm32",
	"esp32",
	"FAE",
	"Field Application Engineer",
}

// ExcludeKeywords reject a role outright, regardless of include matches.
var ExcludeKeywords = []string{
	"marketing",
	"sales",
	"account executive",
	"recruiter",
	"talent acquisition",
	"hr",
	"human resources",
	"product marketing",
}

// SeniorityRule maps a title pattern to a seniority label.
type SeniorityRule struct {
	Pattern *regexp.Regexp
	Label   model.Seniority
}

// SeniorityRules is evaluated in order against the lowercased title; the
// first match wins. Keep the ordering stable: titles like "Senior Staff
// Engineer" resolve by position in this table, not by specificity.
var SeniorityRules = []SeniorityRule{
	{regexp.MustCompile(`\bintern\b`), model.SeniorityIntern},
	{regexp.MustCompile(`\b(entry\s*level|junior|jr\.?|associate)\b`), model.SeniorityJunior},
	{regexp.MustCompile(`\b(mid\s*level|intermediate)\b`), model.SeniorityMid},
	{regexp.MustCompile(`\b(senior|sr\.?|lead)\b`), model.SenioritySenior},
	{regexp.MustCompile(`\b(staff)\b`), model.SeniorityStaff},
	{regexp.MustCompile(`\b(principal|architect)\b`), model.SeniorityPrincipal},
	{regexp.MustCompile(`\b(manager|engineering manager)\b`), model.SeniorityManager},
	{regexp.MustCompile(`\b(director)\b`), model.SeniorityDirector},
	{regexp.MustCompile(`\b(vice president|vp)\b`), model.SeniorityVP},
	{regexp.MustCompile(`\b(chief|cxo|cto|ceo|cpo|cfo)\b`), model.SeniorityCXO},
}
