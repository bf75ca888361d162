// Package analyzer derives findings (bottlenecks, inefficiencies,
// improvement suggestions) and per-source statistics from a normalized
// snapshot. Each source pass is independent: it consumes its own records and
// returns its own contributions, so the absence of one source simply omits
// its section from the combined result.
package analyzer

import (
	"fmt"
	"math"
	"strings"

	"factoryflow/internal/core/model"
	"factoryflow/internal/util"
)

const (
	// highLaborCostFactor flags an individual whose hourly cost strictly
	// exceeds this multiple of the roster mean.
	highLaborCostFactor = 1.3
	// bottleneckDelayMinutes is the strict threshold above which a single
	// execution delay becomes a bottleneck finding.
	bottleneckDelayMinutes = 10.0
	// beginnerShareLimit is the strict headcount share above which a
	// mentorship improvement is suggested.
	beginnerShareLimit = 0.30
	// recurringIssueCount is the occurrence count at which a disruption tag
	// counts as recurring (inclusive).
	recurringIssueCount = 3
	// highPartCost is the strict absolute purchase-cost threshold for the
	// high-part-cost inefficiency.
	highPartCost = 50000.0
	// supplierShareLimit is the strict share of the part count above which a
	// supplier-diversification improvement is suggested.
	supplierShareLimit = 0.25
)

// Analyze runs every applicable source pass over the snapshot and combines
// the contributions into one fresh result. Findings keep the natural
// iteration order of their source records; nothing carries over between
// calls.
func Analyze(snap *model.Snapshot) *model.AnalysisResult {
	result := model.NewAnalysisResult()
	if snap == nil {
		return result
	}

	if snap.HasERP {
		stats, ineff, impr := WorkforcePass(snap.Workforce)
		result.Statistics.ERP = stats
		result.Inefficiencies = append(result.Inefficiencies, ineff...)
		result.Improvements = append(result.Improvements, impr...)
	}

	if snap.HasMES {
		stats, bott, impr := ExecutionPass(snap.Execution)
		result.Statistics.MES = stats
		result.Bottlenecks = append(result.Bottlenecks, bott...)
		result.Improvements = append(result.Improvements, impr...)
	}

	if snap.HasPLM {
		stats, bott, ineff, impr := PartsPass(snap.Parts)
		result.Statistics.PLM = stats
		result.Bottlenecks = append(result.Bottlenecks, bott...)
		result.Inefficiencies = append(result.Inefficiencies, ineff...)
		result.Improvements = append(result.Improvements, impr...)
	}

	util.LogDebugf("Analysis pass: %d bottlenecks, %d inefficiencies, %d improvements",
		len(result.Bottlenecks), len(result.Inefficiencies), len(result.Improvements))
	return result
}

// Delay returns the signed delay of one execution record in minutes.
func Delay(rec model.ExecutionRecord) float64 {
	return util.ToMinutes(rec.ActualTime) - util.ToMinutes(rec.PlannedTime)
}

// IsLongLead is the long-lead-time predicate applied to critical parts. It
// deliberately reproduces the upstream heuristic of matching designated day
// counts as substrings of the free-text lead time; replace the body, not the
// call sites, when a real numeric parse lands.
func IsLongLead(leadTime string) bool {
	return strings.Contains(leadTime, "20") || strings.Contains(leadTime, "25")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatEuro renders a whole-euro amount with thousands separators, matching
// the display form the dashboards already show.
func formatEuro(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return "€" + sign + s
}
