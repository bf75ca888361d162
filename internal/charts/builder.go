package charts

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"factoryflow/internal/core/model"
	"factoryflow/internal/util"
)

const (
	// sampleSeed fixes every random sample so identical source data yields
	// identical chart payloads.
	sampleSeed = 42

	correlationSampleMax = 150
	riskSampleMax        = 100
	variabilityTop       = 10
	delayByPosteTop      = 10
	timeVsEmployeesTop   = 12
	supplierTop          = 12

	// riskDelayFloorHours excludes near-zero delays from the risk matrix.
	riskDelayFloorHours = 0.1

	unclassified = "Non classé"
)

// Builder computes the chart bundle. Stateless; every Build call works on the
// snapshot it is given.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build derives all eight datasets. Chart delays are expressed in hours.
func (b *Builder) Build(snap *model.Snapshot) *Bundle {
	bundle := &Bundle{
		BottleneckVariability:   VariabilityDataset{Data: []VariabilityRow{}},
		PLMCorrelation:          CorrelationDataset{Data: []CorrelationRow{}},
		RHPerformance:           PerformanceDataset{Data: []PerformanceRow{}},
		DelayByPoste:            DelayDataset{Data: []DelayRow{}},
		TimeVsEmployees:         TimeDataset{Data: []TimeRow{}},
		SupplierImpact:          SupplierDataset{Data: []SupplierRow{}},
		SupplierFinancialImpact: SupplierCostDataset{Data: []SupplierCostRow{}},
		RiskMatrix:              RiskDataset{Data: []RiskRow{}},
	}
	if snap == nil {
		return bundle
	}

	parts := indexParts(snap.Parts)
	headcount, meanCost := indexWorkforce(snap.Workforce)
	joins := supplierJoins(snap.Execution, parts, meanCost)

	bundle.BottleneckVariability.Data = variability(snap.Execution)
	bundle.PLMCorrelation.Data = plmCorrelation(snap.Execution, parts)
	bundle.RHPerformance.Data = rhPerformance(snap.Execution, snap.Workforce)
	bundle.DelayByPoste.Data = delayByPoste(snap.Execution)
	bundle.TimeVsEmployees.Data = timeVsEmployees(snap.Execution, headcount)
	bundle.SupplierImpact.Data = supplierImpact(joins)
	bundle.SupplierFinancialImpact.Data = supplierFinancialImpact(joins)
	bundle.RiskMatrix.Data = riskMatrix(joins)

	util.LogDebugf("Chart bundle: %d variability postes, %d correlation rows, %d risk rows",
		len(bundle.BottleneckVariability.Data), len(bundle.PLMCorrelation.Data), len(bundle.RiskMatrix.Data))
	return bundle
}

// delayHours is the signed planned-vs-actual gap of one record, in hours.
func delayHours(rec model.ExecutionRecord) float64 {
	return util.ToHours(rec.ActualTime) - util.ToHours(rec.PlannedTime)
}

func variability(records []model.ExecutionRecord) []VariabilityRow {
	byPoste := make(map[int][]float64)
	for _, rec := range records {
		byPoste[rec.Poste] = append(byPoste[rec.Poste], round2(delayHours(rec)))
	}

	rows := make([]VariabilityRow, 0, len(byPoste))
	for poste, values := range byPoste {
		rows = append(rows, VariabilityRow{Poste: poste, Values: values})
	}
	sort.Slice(rows, func(i, j int) bool {
		mi, mj := mean(rows[i].Values), mean(rows[j].Values)
		if mi != mj {
			return mi > mj
		}
		return rows[i].Poste < rows[j].Poste
	})
	if len(rows) > variabilityTop {
		rows = rows[:variabilityTop]
	}
	return rows
}

func plmCorrelation(records []model.ExecutionRecord, parts map[string]model.PartRecord) []CorrelationRow {
	var rows []CorrelationRow
	for _, rec := range records {
		assembly := util.ToHours(rec.ActualTime)
		for _, ref := range rec.PieceRefs {
			part, ok := parts[ref]
			if !ok {
				continue
			}
			crit := part.Criticality
			if crit == "" {
				crit = unclassified
			}
			rows = append(rows, CorrelationRow{
				CAOTime:      part.DesignTime,
				AssemblyTime: round2(assembly),
				Criticality:  crit,
				Mass:         part.Mass,
				Reference:    part.Reference,
			})
		}
	}
	return sample(rows, correlationSampleMax)
}

func rhPerformance(records []model.ExecutionRecord, workforce []model.WorkforceRecord) []PerformanceRow {
	totals := make(map[string]float64)
	var levelOrder []string

	for _, rec := range records {
		delay := delayHours(rec)
		for _, emp := range workforce {
			if emp.Poste != rec.Poste {
				continue
			}
			level := emp.Experience
			if level == "" {
				level = "Unknown"
			}
			if _, seen := totals[level]; !seen {
				levelOrder = append(levelOrder, level)
			}
			totals[level] += delay
		}
	}

	rows := make([]PerformanceRow, 0, len(levelOrder))
	for _, level := range levelOrder {
		rows = append(rows, PerformanceRow{Level: level, TotalDelay: round2(totals[level])})
	}
	return rows
}

func delayByPoste(records []model.ExecutionRecord) []DelayRow {
	totals := make(map[int]float64)
	for _, rec := range records {
		totals[rec.Poste] += delayHours(rec)
	}

	rows := make([]DelayRow, 0, len(totals))
	for poste, total := range totals {
		rows = append(rows, DelayRow{Poste: poste, TotalDelay: round2(total)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalDelay != rows[j].TotalDelay {
			return rows[i].TotalDelay > rows[j].TotalDelay
		}
		return rows[i].Poste < rows[j].Poste
	})
	if len(rows) > delayByPosteTop {
		rows = rows[:delayByPosteTop]
	}
	return rows
}

func timeVsEmployees(records []model.ExecutionRecord, headcount map[int]int) []TimeRow {
	type taskAgg struct {
		total  float64
		postes map[int]bool
	}
	byTask := make(map[string]*taskAgg)
	var taskOrder []string

	for _, rec := range records {
		agg, ok := byTask[rec.Task]
		if !ok {
			agg = &taskAgg{postes: make(map[int]bool)}
			byTask[rec.Task] = agg
			taskOrder = append(taskOrder, rec.Task)
		}
		agg.total += util.ToHours(rec.ActualTime)
		agg.postes[rec.Poste] = true
	}

	rows := make([]TimeRow, 0, len(taskOrder))
	for _, task := range taskOrder {
		agg := byTask[task]
		employees := 0
		for poste := range agg.postes {
			employees += headcount[poste]
		}
		rows = append(rows, TimeRow{Nom: task, TotalTime: round2(agg.total), TotalEmployees: employees})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalTime > rows[j].TotalTime
	})
	if len(rows) > timeVsEmployeesTop {
		rows = rows[:timeVsEmployeesTop]
	}
	return rows
}

// supplierJoin is one positive-delay execution exploded per matched part
// reference, with the workstation's mean hourly cost attached.
type supplierJoin struct {
	poste       int
	task        string
	delay       float64
	supplier    string
	criticality string
	hourlyCost  float64
}

func supplierJoins(records []model.ExecutionRecord, parts map[string]model.PartRecord, meanCost map[int]float64) []supplierJoin {
	var joins []supplierJoin
	for _, rec := range records {
		delay := delayHours(rec)
		if delay <= 0 {
			continue
		}
		for _, ref := range rec.PieceRefs {
			part, ok := parts[ref]
			if !ok {
				continue
			}
			crit := part.Criticality
			if crit == "" {
				crit = unclassified
			}
			joins = append(joins, supplierJoin{
				poste:       rec.Poste,
				task:        rec.Task,
				delay:       delay,
				supplier:    part.Supplier,
				criticality: crit,
				hourlyCost:  meanCost[rec.Poste],
			})
		}
	}
	return joins
}

func supplierImpact(joins []supplierJoin) []SupplierRow {
	totals := make(map[string]float64)
	for _, j := range joins {
		totals[j.supplier] += j.delay
	}

	rows := make([]SupplierRow, 0, len(totals))
	for supplier, delay := range totals {
		rows = append(rows, SupplierRow{Supplier: supplier, Delay: round2(delay)})
	}
	// Ascending so the largest impacts render at the top of the bar chart;
	// keep only the trailing (largest) slice.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Delay != rows[j].Delay {
			return rows[i].Delay < rows[j].Delay
		}
		return rows[i].Supplier < rows[j].Supplier
	})
	if len(rows) > supplierTop {
		rows = rows[len(rows)-supplierTop:]
	}
	return rows
}

func supplierFinancialImpact(joins []supplierJoin) []SupplierCostRow {
	totals := make(map[string]float64)
	for _, j := range joins {
		totals[j.supplier] += j.delay * j.hourlyCost
	}

	rows := make([]SupplierCostRow, 0, len(totals))
	for supplier, cost := range totals {
		rows = append(rows, SupplierCostRow{Supplier: supplier, Cost: round2(cost)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Cost != rows[j].Cost {
			return rows[i].Cost < rows[j].Cost
		}
		return rows[i].Supplier < rows[j].Supplier
	})
	if len(rows) > supplierTop {
		rows = rows[len(rows)-supplierTop:]
	}
	return rows
}

func riskMatrix(joins []supplierJoin) []RiskRow {
	var rows []RiskRow
	for _, j := range joins {
		if j.delay <= riskDelayFloorHours {
			continue
		}
		rows = append(rows, RiskRow{
			Poste:       j.poste,
			Delay:       round2(j.delay),
			Cost:        round2(j.delay * j.hourlyCost),
			Criticality: j.criticality,
			Name:        j.task,
			Supplier:    j.supplier,
		})
	}
	return sample(rows, riskSampleMax)
}

func indexParts(parts []model.PartRecord) map[string]model.PartRecord {
	idx := make(map[string]model.PartRecord, len(parts))
	for _, part := range parts {
		ref := strings.TrimSpace(part.Reference)
		if ref != "" {
			idx[ref] = part
		}
	}
	return idx
}

// indexWorkforce returns per-poste headcount and mean hourly cost.
func indexWorkforce(workforce []model.WorkforceRecord) (map[int]int, map[int]float64) {
	headcount := make(map[int]int)
	costSum := make(map[int]float64)
	for _, emp := range workforce {
		headcount[emp.Poste]++
		costSum[emp.Poste] += emp.HourlyCost
	}
	meanCost := make(map[int]float64, len(costSum))
	for poste, sum := range costSum {
		meanCost[poste] = sum / float64(headcount[poste])
	}
	return headcount, meanCost
}

// sample returns up to max rows drawn with the fixed seed so repeated builds
// over unchanged data are byte-identical.
func sample[T any](rows []T, max int) []T {
	if rows == nil {
		return []T{}
	}
	if len(rows) <= max {
		return rows
	}
	rng := rand.New(rand.NewSource(sampleSeed))
	picked := make([]T, 0, max)
	for _, i := range rng.Perm(len(rows))[:max] {
		picked = append(picked, rows[i])
	}
	return picked
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
