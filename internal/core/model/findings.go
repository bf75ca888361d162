package model

// Bottleneck is a localized delay finding. MES bottlenecks carry the
// workstation/time fields, PLM (supply chain) bottlenecks the part fields;
// unused fields are omitted from the encoded form.
type Bottleneck struct {
	System       string  `json:"system"`
	Activity     string  `json:"activity"`
	Workstation  string  `json:"workstation,omitempty"`
	PlannedTime  string  `json:"plannedTime,omitempty"`
	ActualTime   string  `json:"actualTime,omitempty"`
	Delay        string  `json:"delay,omitempty"` // display form, e.g. "+15.0 min"
	DelayMinutes float64 `json:"delayMinutes,omitempty"`
	Issue        string  `json:"issue,omitempty"`
	Cause        string  `json:"cause,omitempty"`
	Part         string  `json:"part,omitempty"`
	Reference    string  `json:"reference,omitempty"`
	LeadTime     string  `json:"leadTime,omitempty"`
	Criticality  string  `json:"criticality,omitempty"`
	Supplier     string  `json:"supplier,omitempty"`
	Reason       string  `json:"reason,omitempty"`
}

// Inefficiency is a cost/resource finding (high labor cost, high part cost).
type Inefficiency struct {
	System string  `json:"system"`
	Type   string  `json:"type"`
	Detail string  `json:"detail"`
	Value  string  `json:"value"`
	Amount float64 `json:"amount,omitempty"`
	Reason string  `json:"reason"`
}

// Improvement is a systemic suggestion derived from aggregate patterns.
type Improvement struct {
	System     string `json:"system"`
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
	Count      int    `json:"count,omitempty"`
}

// ERPStatistics summarizes the workforce roster.
type ERPStatistics struct {
	TotalEmployees   int            `json:"totalEmployees"`
	AvgHourlyCost    float64        `json:"avgHourlyCost"`
	AvgAge           float64        `json:"avgAge"`
	ExperienceLevels map[string]int `json:"experienceLevels"`
}

// MESStatistics summarizes the execution events.
type MESStatistics struct {
	TotalOperations   int            `json:"totalOperations"`
	TotalDelayMinutes float64        `json:"totalDelayMinutes"`
	AvgDelayMinutes   float64        `json:"avgDelayMinutes"`
	IssuesByType      map[string]int `json:"issuesByType"`
}

// PLMStatistics summarizes the part catalog.
type PLMStatistics struct {
	TotalParts     int     `json:"totalParts"`
	TotalPartsCost float64 `json:"totalPartsCost"`
	AvgPartCost    float64 `json:"avgPartCost"`
	CriticalParts  int     `json:"criticalParts"`
	SupplierCount  int     `json:"supplierCount"`
}

// Statistics holds the per-source aggregates; a nil section means the source
// was not loaded.
type Statistics struct {
	ERP *ERPStatistics `json:"ERP,omitempty"`
	MES *MESStatistics `json:"MES,omitempty"`
	PLM *PLMStatistics `json:"PLM,omitempty"`
}

// AnalysisResult is the complete output of one statistical pass. It is a
// fresh value on every pass; no finding survives between passes.
type AnalysisResult struct {
	Bottlenecks    []Bottleneck   `json:"bottlenecks"`
	Inefficiencies []Inefficiency `json:"inefficiencies"`
	Improvements   []Improvement  `json:"improvements"`
	Statistics     Statistics     `json:"statistics"`
}

// NewAnalysisResult returns a result whose finding lists encode as empty
// arrays rather than null.
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Bottlenecks:    []Bottleneck{},
		Inefficiencies: []Inefficiency{},
		Improvements:   []Improvement{},
	}
}
