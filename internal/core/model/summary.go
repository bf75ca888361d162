package model

// CauseCategory is one grouped family of disruption causes.
type CauseCategory struct {
	Category    string  `json:"category"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

// Recommendation is one prioritized action suggested by the summarizer.
type Recommendation struct {
	Priority string `json:"priority"`
	Action   string `json:"action"`
}

// CauseSummary is the structured reply of the cause-summarization
// collaborator. When the collaborator fails, Error is set and the collections
// are empty; the failure never propagates further.
type CauseSummary struct {
	Summary         string           `json:"summary"`
	TotalCauses     int              `json:"totalCauses"`
	MainCategories  []CauseCategory  `json:"mainCategories"`
	Recommendations []Recommendation `json:"recommendations"`
	Error           string           `json:"error,omitempty"`
}
