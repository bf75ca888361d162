// Package formatter renders an analysis result for the CLI in table, JSON or
// CSV form.
package formatter

import (
	"fmt"

	"factoryflow/internal/core/model"
)

// Formatter renders one analysis result.
type Formatter interface {
	Format(result *model.AnalysisResult) error
}

// row is the flattened form shared by the table and CSV renderers.
type row struct {
	Kind   string
	System string
	Detail string
	Value  string
	Reason string
}

func flatten(result *model.AnalysisResult) []row {
	var rows []row

	for _, b := range result.Bottlenecks {
		detail := b.Activity
		switch {
		case b.Workstation != "":
			detail = fmt.Sprintf("%s (%s)", b.Activity, b.Workstation)
		case b.Part != "":
			detail = fmt.Sprintf("%s (%s)", b.Part, b.Reference)
		}
		value := b.Delay
		if value == "" {
			value = b.LeadTime
		}
		reason := b.Cause
		if reason == "" {
			reason = b.Reason
		}
		rows = append(rows, row{Kind: "Bottleneck", System: b.System, Detail: detail, Value: value, Reason: reason})
	}

	for _, in := range result.Inefficiencies {
		rows = append(rows, row{Kind: "Inefficiency", System: in.System, Detail: in.Detail, Value: in.Value, Reason: in.Reason})
	}

	for _, im := range result.Improvements {
		rows = append(rows, row{
			Kind:   "Improvement",
			System: im.System,
			Detail: im.Suggestion,
			Value:  fmt.Sprintf("%d", im.Count),
			Reason: im.Reason,
		})
	}

	return rows
}
