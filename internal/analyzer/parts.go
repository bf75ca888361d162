package analyzer

import (
	"fmt"
	"math"

	"factoryflow/internal/core/model"
)

// PartsPass computes catalog statistics, supply-chain bottlenecks for
// critical long-lead parts, high-cost inefficiencies and the
// supplier-concentration improvement from the PLM records.
func PartsPass(records []model.PartRecord) (*model.PLMStatistics, []model.Bottleneck, []model.Inefficiency, []model.Improvement) {
	stats := &model.PLMStatistics{TotalParts: len(records)}
	var bottlenecks []model.Bottleneck
	var inefficiencies []model.Inefficiency
	var improvements []model.Improvement

	var totalCost float64
	suppliers := make(map[string]int)
	var supplierOrder []string

	for _, rec := range records {
		totalCost += rec.PurchaseCost
		if rec.Criticality == model.CriticalTier {
			stats.CriticalParts++
		}
		if suppliers[rec.Supplier] == 0 {
			supplierOrder = append(supplierOrder, rec.Supplier)
		}
		suppliers[rec.Supplier]++
	}

	stats.TotalPartsCost = math.Round(totalCost)
	stats.SupplierCount = len(suppliers)
	if len(records) > 0 {
		stats.AvgPartCost = round2(totalCost / float64(len(records)))
	}

	for _, rec := range records {
		if rec.Criticality == model.CriticalTier && IsLongLead(rec.LeadTime) {
			bottlenecks = append(bottlenecks, model.Bottleneck{
				System:      model.SourcePLM,
				Activity:    "Supply Chain",
				Part:        rec.Designation,
				Reference:   rec.Reference,
				LeadTime:    rec.LeadTime,
				Criticality: rec.Criticality,
				Supplier:    rec.Supplier,
				Reason:      "Critical part with long lead time",
			})
		}
	}

	for _, rec := range records {
		if rec.PurchaseCost > highPartCost {
			inefficiencies = append(inefficiencies, model.Inefficiency{
				System: model.SourcePLM,
				Type:   "High Part Cost",
				Detail: fmt.Sprintf("%s (%s)", rec.Designation, rec.Reference),
				Value:  formatEuro(rec.PurchaseCost),
				Amount: rec.PurchaseCost,
				Reason: "Consider alternative suppliers or design optimization",
			})
		}
	}

	for _, supplier := range supplierOrder {
		count := suppliers[supplier]
		if float64(count) > float64(len(records))*supplierShareLimit {
			share := int(math.Floor(float64(count) / float64(len(records)) * 100))
			improvements = append(improvements, model.Improvement{
				System:     model.SourcePLM,
				Suggestion: fmt.Sprintf("Diversify supplier base for %s", supplier),
				Reason:     fmt.Sprintf("%d parts (%d%%) from single supplier", count, share),
				Count:      count,
			})
		}
	}

	return stats, bottlenecks, inefficiencies, improvements
}
