package analyzer

import (
	"fmt"

	"factoryflow/internal/core/model"
)

// ExecutionPass computes delay statistics, per-record bottleneck findings and
// recurring-issue improvements from the MES records.
//
// Total delay sums only positive delays (an early finish never offsets a
// late one); the mean keeps every delay's true sign.
func ExecutionPass(records []model.ExecutionRecord) (*model.MESStatistics, []model.Bottleneck, []model.Improvement) {
	stats := &model.MESStatistics{
		TotalOperations: len(records),
		IssuesByType:    make(map[string]int),
	}
	var bottlenecks []model.Bottleneck
	var improvements []model.Improvement

	var totalDelay, signedSum float64
	issueCounts := make(map[string]int)
	var issueOrder []string

	for _, rec := range records {
		delay := Delay(rec)
		signedSum += delay
		if delay > 0 {
			totalDelay += delay
		}

		issueKey := rec.Issue
		if issueKey == "" {
			issueKey = "None"
		}
		stats.IssuesByType[issueKey]++

		if rec.Issue != "" {
			if issueCounts[rec.Issue] == 0 {
				issueOrder = append(issueOrder, rec.Issue)
			}
			issueCounts[rec.Issue]++
		}

		if delay > bottleneckDelayMinutes {
			issue := rec.Issue
			if issue == "" {
				issue = "Unknown"
			}
			cause := rec.Cause
			if cause == "" {
				cause = "Not specified"
			}
			bottlenecks = append(bottlenecks, model.Bottleneck{
				System:       model.SourceMES,
				Activity:     rec.Task,
				Workstation:  fmt.Sprintf("Poste %d", rec.Poste),
				PlannedTime:  rec.PlannedTime,
				ActualTime:   rec.ActualTime,
				Delay:        fmt.Sprintf("%+.1f min", delay),
				DelayMinutes: delay,
				Issue:        issue,
				Cause:        cause,
			})
		}
	}

	if len(records) > 0 {
		stats.TotalDelayMinutes = round1(totalDelay)
		stats.AvgDelayMinutes = round1(signedSum / float64(len(records)))
	}

	// First-seen order keeps consecutive passes byte-identical.
	for _, issue := range issueOrder {
		if count := issueCounts[issue]; count >= recurringIssueCount {
			improvements = append(improvements, model.Improvement{
				System:     model.SourceMES,
				Suggestion: fmt.Sprintf("Address recurring issue: %s", issue),
				Reason:     fmt.Sprintf("Occurred %d times - consider preventive measures", count),
				Count:      count,
			})
		}
	}

	return stats, bottlenecks, improvements
}
