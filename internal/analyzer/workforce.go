package analyzer

import (
	"fmt"
	"math"

	"factoryflow/internal/core/model"
)

// WorkforcePass computes roster statistics and the labor-cost and mentorship
// findings from the ERP records.
func WorkforcePass(records []model.WorkforceRecord) (*model.ERPStatistics, []model.Inefficiency, []model.Improvement) {
	stats := &model.ERPStatistics{
		TotalEmployees:   len(records),
		ExperienceLevels: make(map[string]int),
	}
	var inefficiencies []model.Inefficiency
	var improvements []model.Improvement

	var costSum, ageSum float64
	for _, rec := range records {
		costSum += rec.HourlyCost
		ageSum += float64(rec.Age)

		level := rec.Experience
		if level == "" {
			level = "Unknown"
		}
		stats.ExperienceLevels[level]++
	}

	var avgCost float64
	if len(records) > 0 {
		avgCost = costSum / float64(len(records))
		stats.AvgHourlyCost = round2(avgCost)
		stats.AvgAge = round1(ageSum / float64(len(records)))
	}

	for _, rec := range records {
		if rec.HourlyCost > avgCost*highLaborCostFactor {
			inefficiencies = append(inefficiencies, model.Inefficiency{
				System: model.SourceERP,
				Type:   "High Labor Cost",
				Detail: fmt.Sprintf("%s (%s)", rec.Name(), rec.Qualification),
				Value:  fmt.Sprintf("€%.2f/h vs avg €%.2f/h", rec.HourlyCost, avgCost),
				Amount: rec.HourlyCost,
				Reason: "Hourly cost exceeds average by 30%+",
			})
		}
	}

	beginners := stats.ExperienceLevels[model.BeginnerTier]
	if float64(beginners) > float64(len(records))*beginnerShareLimit {
		share := int(math.Floor(float64(beginners) / float64(len(records)) * 100))
		improvements = append(improvements, model.Improvement{
			System:     model.SourceERP,
			Suggestion: "Implement mentorship program",
			Reason:     fmt.Sprintf("%d%% of workforce are beginners", share),
			Count:      beginners,
		})
	}

	return stats, inefficiencies, improvements
}
