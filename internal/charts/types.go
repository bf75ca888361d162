// Package charts derives the dashboard's eight correlation datasets from a
// normalized snapshot. Every dataset is computed independently; a join that
// matches nothing yields an empty dataset and never disturbs the others.
package charts

// Bundle is the full charts payload. Keys and row shapes are the dashboard
// contract; each dataset wraps its rows in a data envelope.
type Bundle struct {
	BottleneckVariability   VariabilityDataset  `json:"bottleneck_variability"`
	PLMCorrelation          CorrelationDataset  `json:"plm_correlation"`
	RHPerformance           PerformanceDataset  `json:"rh_performance"`
	DelayByPoste            DelayDataset        `json:"delay_by_poste"`
	TimeVsEmployees         TimeDataset         `json:"time_vs_employees"`
	SupplierImpact          SupplierDataset     `json:"supplier_impact"`
	SupplierFinancialImpact SupplierCostDataset `json:"supplier_financial_impact"`
	RiskMatrix              RiskDataset         `json:"risk_matrix"`
}

// VariabilityRow carries the raw signed delay distribution of one
// workstation, in hours, for box-plot display.
type VariabilityRow struct {
	Poste  int       `json:"poste"`
	Values []float64 `json:"values"`
}

type VariabilityDataset struct {
	Data []VariabilityRow `json:"data"`
}

// CorrelationRow relates a part's design effort to the assembly time of an
// execution that consumed it.
type CorrelationRow struct {
	CAOTime      float64 `json:"caoTime"`
	AssemblyTime float64 `json:"assemblyTime"`
	Criticality  string  `json:"criticality"`
	Mass         float64 `json:"mass"`
	Reference    string  `json:"reference"`
}

type CorrelationDataset struct {
	Data []CorrelationRow `json:"data"`
}

type PerformanceRow struct {
	Level      string  `json:"level"`
	TotalDelay float64 `json:"totalDelay"`
}

type PerformanceDataset struct {
	Data []PerformanceRow `json:"data"`
}

type DelayRow struct {
	Poste      int     `json:"poste"`
	TotalDelay float64 `json:"totalDelay"`
}

type DelayDataset struct {
	Data []DelayRow `json:"data"`
}

type TimeRow struct {
	Nom            string  `json:"nom"`
	TotalTime      float64 `json:"totalTime"`
	TotalEmployees int     `json:"totalEmployees"`
}

type TimeDataset struct {
	Data []TimeRow `json:"data"`
}

type SupplierRow struct {
	Supplier string  `json:"supplier"`
	Delay    float64 `json:"delay"`
}

type SupplierDataset struct {
	Data []SupplierRow `json:"data"`
}

type SupplierCostRow struct {
	Supplier string  `json:"supplier"`
	Cost     float64 `json:"cost"`
}

type SupplierCostDataset struct {
	Data []SupplierCostRow `json:"data"`
}

// RiskRow is one bubble of the risk matrix: a delayed, part-joined execution
// with its labor cost impact and the part's criticality tier.
type RiskRow struct {
	Poste       int     `json:"poste"`
	Delay       float64 `json:"delay"`
	Cost        float64 `json:"cost"`
	Criticality string  `json:"criticality"`
	Name        string  `json:"name"`
	Supplier    string  `json:"supplier"`
}

type RiskDataset struct {
	Data []RiskRow `json:"data"`
}
