package workforce

import (
	"math"
	"sort"

	"factoryflow/internal/core/model"
	"factoryflow/internal/util"
)

// AllocationPolicy assigns each roster member to one active workstation.
// The returned map keys are roster record IDs; absent keys mean the member
// could not be assigned (no active workstation).
type AllocationPolicy interface {
	Assign(workforce []model.WorkforceRecord, activePostes []int) map[string]int
}

// RoundRobin cycles roster members through the active workstations in
// ascending workstation order, so the assignment is stable across calls.
type RoundRobin struct{}

func (RoundRobin) Assign(workforce []model.WorkforceRecord, activePostes []int) map[string]int {
	assigned := make(map[string]int, len(workforce))
	if len(activePostes) == 0 {
		return assigned
	}
	for i, emp := range workforce {
		assigned[emp.ID] = activePostes[i%len(activePostes)]
	}
	return assigned
}

// posteAgg accumulates one workstation's activity.
type posteAgg struct {
	taskCount    int
	totalMinutes float64
	delayCount   int
	pieces       []string
	pieceSeen    map[string]bool
	tasks        []TaskDetail
}

// Aggregator builds employee workload views using a swappable allocation
// policy.
type Aggregator struct {
	policy AllocationPolicy
}

func NewAggregator(policy AllocationPolicy) *Aggregator {
	if policy == nil {
		policy = RoundRobin{}
	}
	return &Aggregator{policy: policy}
}

// Build aggregates execution activity per workstation, assigns each roster
// member a workstation via the policy and divides that workstation's
// aggregate evenly among the members sharing it.
func (a *Aggregator) Build(snap *model.Snapshot) *View {
	view := &View{Employees: []Employee{}}
	if snap == nil {
		return view
	}

	view.TotalEmployees = len(snap.Workforce)
	view.TotalTasks = len(snap.Execution)
	if view.TotalEmployees > 0 {
		view.AvgTasksPerEmployee = round1(float64(view.TotalTasks) / float64(view.TotalEmployees))
	}

	aggs := aggregateByPoste(snap.Execution)
	activePostes := make([]int, 0, len(aggs))
	for poste := range aggs {
		activePostes = append(activePostes, poste)
	}
	sort.Ints(activePostes)

	assigned := a.policy.Assign(snap.Workforce, activePostes)

	sharers := make(map[int]int)
	for _, poste := range assigned {
		sharers[poste]++
	}

	for _, emp := range snap.Workforce {
		view.Employees = append(view.Employees, buildEmployee(emp, assigned, sharers, aggs))
	}

	util.LogDebugf("Employee view: %d employees over %d active postes", view.TotalEmployees, len(activePostes))
	return view
}

func buildEmployee(emp model.WorkforceRecord, assigned map[string]int, sharers map[int]int, aggs map[int]*posteAgg) Employee {
	out := Employee{
		ID:         emp.ID,
		Name:       emp.Name(),
		Experience: emp.Experience,
		Postes:     []int{},
		Pieces:     []string{},
		Tasks:      []TaskDetail{},
	}

	poste, ok := assigned[emp.ID]
	if !ok {
		return out
	}
	agg := aggs[poste]
	n := sharers[poste]
	if agg == nil || n == 0 {
		return out
	}

	out.Postes = []int{poste}
	out.Pieces = agg.pieces
	out.Tasks = agg.tasks
	out.TasksCount = int(math.Round(float64(agg.taskCount) / float64(n)))
	out.Delays = int(math.Round(float64(agg.delayCount) / float64(n)))
	out.TotalTime = round1(agg.totalMinutes / float64(n))
	if agg.taskCount > 0 {
		out.AvgTimePerTask = round1(agg.totalMinutes / float64(agg.taskCount))
		out.DelayRate = round1(float64(agg.delayCount) / float64(agg.taskCount) * 100)
	}
	return out
}

func aggregateByPoste(records []model.ExecutionRecord) map[int]*posteAgg {
	aggs := make(map[int]*posteAgg)
	for _, rec := range records {
		agg, ok := aggs[rec.Poste]
		if !ok {
			agg = &posteAgg{
				pieces:    []string{},
				pieceSeen: make(map[string]bool),
				tasks:     []TaskDetail{},
			}
			aggs[rec.Poste] = agg
		}

		agg.taskCount++
		agg.totalMinutes += util.ToMinutes(rec.ActualTime)
		if rec.Issue != "" {
			agg.delayCount++
		}
		for _, ref := range rec.PieceRefs {
			if ref != "" && !agg.pieceSeen[ref] {
				agg.pieceSeen[ref] = true
				agg.pieces = append(agg.pieces, ref)
			}
		}
		agg.tasks = append(agg.tasks, TaskDetail{
			Date:  rec.DateOnly(),
			Heure: rec.StartTime,
			Poste: rec.Poste,
			Piece: joinRefs(rec.PieceRefs),
			Temps: rec.ActualTime,
			Delay: rec.Issue,
		})
	}
	return aggs
}

func joinRefs(refs []string) string {
	out := ""
	for i, ref := range refs {
		if i > 0 {
			out += ", "
		}
		out += ref
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
