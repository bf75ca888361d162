package timeline

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"factoryflow/internal/core/model"
	"factoryflow/internal/util"
)

const (
	// xScale converts minutes of day to presentation units.
	xScale = 3.0
	// minNodeWidth keeps very short occurrences readable.
	minNodeWidth = 100.0
	// laneSpacing is the vertical distance between lanes.
	laneSpacing = 100.0
	// laneLabelX places the header and lane labels left of the 08:00 shift
	// start so occurrence nodes never overlap them.
	laneLabelX = 8*60*xScale - 250

	// timestampLayout tolerates single-digit fields in the source data.
	timestampLayout = "2006-1-2 15:4:5"
)

// Builder constructs timeline graphs. It carries no state; every Build call
// works on the records it is given.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

type occurrence struct {
	rec    model.ExecutionRecord
	nodeID string
	ts     time.Time
	parsed bool
}

// Build assembles the timeline graph. When dateFilter is non-empty only
// records whose date string starts with it are kept; available dates are
// always computed from the full set.
func (b *Builder) Build(records []model.ExecutionRecord, dateFilter string) *Graph {
	graph := &Graph{
		Nodes:          []Node{},
		Edges:          []Edge{},
		AvailableDates: collectDates(records),
	}

	filtered := records
	if dateFilter != "" {
		filtered = nil
		for _, rec := range records {
			if strings.HasPrefix(rec.Date, dateFilter) {
				filtered = append(filtered, rec)
			}
		}
	}
	if len(filtered) == 0 {
		return graph
	}

	occs := make([]occurrence, 0, len(filtered))
	for _, rec := range filtered {
		ts, ok := parseTimestamp(rec)
		occs = append(occs, occurrence{rec: rec, ts: ts, parsed: ok})
	}

	// Stable sort by parsed timestamp; records without one sort last.
	sort.SliceStable(occs, func(i, j int) bool {
		if occs[i].parsed != occs[j].parsed {
			return occs[i].parsed
		}
		if !occs[i].parsed {
			return false
		}
		return occs[i].ts.Before(occs[j].ts)
	})

	// Lanes follow first-seen task order within the sorted sequence.
	lanes := make(map[string][]int)
	var laneOrder []string
	for i, occ := range occs {
		name := occ.rec.Task
		if name == "" {
			name = "Unknown"
		}
		if _, seen := lanes[name]; !seen {
			laneOrder = append(laneOrder, name)
		}
		lanes[name] = append(lanes[name], i)
	}

	graph.Nodes = append(graph.Nodes, Node{
		ID:   "header",
		Type: "input",
		Data: NodeData{
			Label: "Timeline du Projet",
			Stats: fmt.Sprintf("%d opérations | %d types de tâches", len(occs), len(laneOrder)),
		},
		Position: Position{X: laneLabelX, Y: 0},
	})

	y := laneSpacing
	for _, name := range laneOrder {
		indexes := lanes[name]
		slug := strings.ReplaceAll(name, " ", "-")

		graph.Nodes = append(graph.Nodes, Node{
			ID: "lane-" + slug,
			Data: NodeData{
				Label: name,
				Count: fmt.Sprintf("%d fois", len(indexes)),
			},
			Position: Position{X: laneLabelX, Y: y},
		})

		for idx, i := range indexes {
			occs[i].nodeID = fmt.Sprintf("task-%s-%d", slug, idx)
			graph.Nodes = append(graph.Nodes, occurrenceNode(occs[i], idx, y))
		}
		y += laneSpacing
	}

	// Edges follow the global chronological order across lanes, which is the
	// sorted occurrence order itself.
	for i := 1; i < len(occs); i++ {
		prev, cur := occs[i-1], occs[i]
		graph.Edges = append(graph.Edges, Edge{
			ID:       fmt.Sprintf("edge-%s-%s", prev.nodeID, cur.nodeID),
			Source:   prev.nodeID,
			Target:   cur.nodeID,
			Animated: prev.rec.Issue != "" || cur.rec.Issue != "",
		})
	}

	util.LogDebugf("Timeline build: %d nodes, %d edges, %d dates",
		len(graph.Nodes), len(graph.Edges), len(graph.AvailableDates))
	return graph
}

func occurrenceNode(occ occurrence, idx int, y float64) Node {
	rec := occ.rec
	actual := util.ToMinutes(rec.ActualTime)
	width := math.Max(minNodeWidth, actual*xScale)

	data := NodeData{
		Label:      fmt.Sprintf("#%d", idx+1),
		Poste:      fmt.Sprintf("Poste %d", rec.Poste),
		Pieces:     fmt.Sprintf("%d", rec.Pieces),
		Duration:   rec.ActualTime,
		Time:       fmt.Sprintf("%s - %s", rec.StartTime, rec.EndTime),
		Date:       rec.DateOnly(),
		HasDelay:   rec.Issue != "",
		Width:      width,
		Efficiency: efficiency(util.ToMinutes(rec.PlannedTime), actual),
	}
	if rec.Issue != "" {
		data.Delay = rec.Issue
	}

	return Node{
		ID:       occ.nodeID,
		Type:     "custom",
		Data:     data,
		Position: Position{X: util.ToMinutes(rec.StartTime) * xScale, Y: y},
	}
}

// efficiency is the planned-vs-actual percentage, capped at 100. A zero
// actual duration reads as fully efficient rather than dividing by zero.
func efficiency(planned, actual float64) float64 {
	if actual == 0 {
		return 100
	}
	return math.Round(math.Min(100, planned/actual*100))
}

func parseTimestamp(rec model.ExecutionRecord) (time.Time, bool) {
	date := rec.DateOnly()
	if date == "" || rec.StartTime == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(timestampLayout, date+" "+rec.StartTime)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func collectDates(records []model.ExecutionRecord) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, rec := range records {
		d := rec.DateOnly()
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if dates == nil {
		dates = []string{}
	}
	return dates
}
