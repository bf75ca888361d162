package model

// Source names used as top-level keys in every output structure. They match
// the upstream extraction systems and the dashboards key on them verbatim.
const (
	SourceERP = "ERP" // workforce roster
	SourceMES = "MES" // shop-floor execution events
	SourcePLM = "PLM" // product/part catalog
)

// WorkforceRecord is one normalized roster row from the ERP extraction.
type WorkforceRecord struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Qualification string  `json:"qualification"`
	Experience    string  `json:"experience"` // free-text tier, e.g. "Débutant", "Expert"
	HourlyCost    float64 `json:"hourlyCost"`
	Age           int     `json:"age"`
	Poste         int     `json:"poste"` // nominal workstation assignment, 0 when unknown
}

// Name returns the display name used in findings and the employee view.
func (w WorkforceRecord) Name() string {
	switch {
	case w.FirstName == "":
		return w.LastName
	case w.LastName == "":
		return w.FirstName
	default:
		return w.FirstName + " " + w.LastName
	}
}

// ExecutionRecord is one normalized shop-floor event from the MES extraction.
// Duration fields keep their raw "H:M:S" form; the time codec coerces them to
// numbers on demand so a malformed cell degrades to zero instead of failing.
type ExecutionRecord struct {
	Task        string   `json:"task"`
	Poste       int      `json:"poste"`
	PlannedTime string   `json:"plannedTime"`
	ActualTime  string   `json:"actualTime"`
	Date        string   `json:"date"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	PieceRefs   []string `json:"pieceRefs"`
	Pieces      int      `json:"pieces"`
	Issue       string   `json:"issue,omitempty"` // disruption tag, empty when the run was clean
	Cause       string   `json:"cause,omitempty"` // free-text potential-cause note
}

// DateOnly returns the date portion of the record's date string. Some
// extractions embed a time-of-day after a space; lane grouping and the date
// filter only ever want the prefix.
func (e ExecutionRecord) DateOnly() string {
	for i := 0; i < len(e.Date); i++ {
		if e.Date[i] == ' ' {
			return e.Date[:i]
		}
	}
	return e.Date
}

// PartRecord is one normalized catalog row from the PLM extraction.
type PartRecord struct {
	Reference    string  `json:"reference"`
	Designation  string  `json:"designation"`
	PurchaseCost float64 `json:"purchaseCost"`
	Criticality  string  `json:"criticality"`
	Supplier     string  `json:"supplier"`
	LeadTime     string  `json:"leadTime"`   // free text, may embed day counts
	DesignTime   float64 `json:"designTime"` // CAO hours
	Mass         float64 `json:"mass"`       // kg
}

// CriticalTier is the criticality value that triggers stricter lead-time
// scrutiny.
const CriticalTier = "Critique"

// BeginnerTier is the experience value counted toward the mentorship check.
const BeginnerTier = "Débutant"

// Snapshot is one full in-memory load of all three sources. The Has flags
// distinguish an unavailable source from one that is present but empty; an
// absent source omits its section from every derived structure.
type Snapshot struct {
	Workforce []WorkforceRecord
	Execution []ExecutionRecord
	Parts     []PartRecord

	HasERP bool
	HasMES bool
	HasPLM bool
}
