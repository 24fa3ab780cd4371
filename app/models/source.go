package models

import "strings"

// CandidateSource is the typed form of the "<source> - <detail>" string
// stored in ccandidate_source. For a multi-valued source the detail is
// the chosen sub-option; for Sourcing it is the sourced-by person; plain
// sources carry no detail.
type CandidateSource struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// MultiValuedSources maps each source that carries a sub-option to its
// choices. Sourcing is handled separately: its detail is a person, not a
// fixed option.
var MultiValuedSources = map[string][]string{
	"Job Portal":   {"Dice", "Monster", "CareerBuilder", "Indeed", "Zip Recruiter"},
	"Social Media": {"LinkedIn", "Facebook", "X"},
}

const SourcingSource = "Sourcing"

// SourceNeedsDetail reports whether a source kind requires a composed
// detail component.
func SourceNeedsDetail(kind string) bool {
	if kind == SourcingSource {
		return true
	}
	_, ok := MultiValuedSources[kind]
	return ok
}

// ParseCandidateSource splits a stored source string into kind and detail.
// A value with no separator is a plain single-valued source.
func ParseCandidateSource(s string) CandidateSource {
	s = strings.TrimSpace(s)
	kind, detail, found := strings.Cut(s, " - ")
	if !found {
		return CandidateSource{Kind: s}
	}
	return CandidateSource{Kind: strings.TrimSpace(kind), Detail: strings.TrimSpace(detail)}
}

// String composes the stored form.
func (cs CandidateSource) String() string {
	if cs.Detail == "" {
		return cs.Kind
	}
	return cs.Kind + " - " + cs.Detail
}
