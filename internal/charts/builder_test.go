package charts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factoryflow/internal/core/model"
)

func exec(task string, poste int, planned, actual string, refs ...string) model.ExecutionRecord {
	return model.ExecutionRecord{
		Task:        task,
		Poste:       poste,
		PlannedTime: planned,
		ActualTime:  actual,
		PieceRefs:   refs,
	}
}

func snapshot() *model.Snapshot {
	return &model.Snapshot{
		HasERP: true, HasMES: true, HasPLM: true,
		Workforce: []model.WorkforceRecord{
			{ID: "1", Experience: "Expert", HourlyCost: 40, Poste: 1},
			{ID: "2", Experience: "Débutant", HourlyCost: 20, Poste: 1},
			{ID: "3", Experience: "Expert", HourlyCost: 50, Poste: 2},
		},
		Execution: []model.ExecutionRecord{
			// poste 1: +1h delay, references a catalogued part
			exec("Rivetage", 1, "1:00:00", "2:00:00", "REF-A"),
			// poste 2: -30min, early finish
			exec("Peinture", 2, "1:00:00", "0:30:00", "REF-B"),
			// poste 2: +2h, references an unknown part
			exec("Câblage", 2, "1:00:00", "3:00:00", "REF-MISSING"),
		},
		Parts: []model.PartRecord{
			{Reference: "REF-A", Criticality: "Critique", Supplier: "AeroSup", DesignTime: 12, Mass: 4.5},
			{Reference: "REF-B", Criticality: "Basse", Supplier: "MecaParts", DesignTime: 3, Mass: 1.2},
		},
	}
}

func TestBuildVariability(t *testing.T) {
	bundle := NewBuilder().Build(snapshot())

	rows := bundle.BottleneckVariability.Data
	require.Len(t, rows, 2)
	// poste 2 mean (−0.5+2)/2 = 0.75 < poste 1 mean 1.0
	assert.Equal(t, 1, rows[0].Poste)
	assert.Equal(t, []float64{1}, rows[0].Values)
	assert.Equal(t, 2, rows[1].Poste)
	assert.Equal(t, []float64{-0.5, 2}, rows[1].Values)
}

func TestBuildCorrelationExcludesJoinMisses(t *testing.T) {
	bundle := NewBuilder().Build(snapshot())

	rows := bundle.PLMCorrelation.Data
	require.Len(t, rows, 2)
	refs := []string{rows[0].Reference, rows[1].Reference}
	assert.Contains(t, refs, "REF-A")
	assert.Contains(t, refs, "REF-B")
	assert.NotContains(t, refs, "REF-MISSING")

	assert.Equal(t, 12.0, rows[0].CAOTime)
	assert.Equal(t, 2.0, rows[0].AssemblyTime)
	assert.Equal(t, "Critique", rows[0].Criticality)
}

func TestBuildRHPerformance(t *testing.T) {
	bundle := NewBuilder().Build(snapshot())

	rows := bundle.RHPerformance.Data
	require.Len(t, rows, 2)
	// poste 1 (+1h) feeds both its employees; poste 2 (−0.5+2 = 1.5h) only the expert
	assert.Equal(t, PerformanceRow{Level: "Expert", TotalDelay: 2.5}, rows[0])
	assert.Equal(t, PerformanceRow{Level: "Débutant", TotalDelay: 1}, rows[1])
}

func TestBuildDelayByPoste(t *testing.T) {
	bundle := NewBuilder().Build(snapshot())

	rows := bundle.DelayByPoste.Data
	require.Len(t, rows, 2)
	assert.Equal(t, DelayRow{Poste: 2, TotalDelay: 1.5}, rows[0])
	assert.Equal(t, DelayRow{Poste: 1, TotalDelay: 1}, rows[1])
}

func TestBuildTimeVsEmployees(t *testing.T) {
	bundle := NewBuilder().Build(snapshot())

	rows := bundle.TimeVsEmployees.Data
	require.Len(t, rows, 3)
	assert.Equal(t, TimeRow{Nom: "Câblage", TotalTime: 3, TotalEmployees: 1}, rows[0])
	assert.Equal(t, TimeRow{Nom: "Rivetage", TotalTime: 2, TotalEmployees: 2}, rows[1])
	assert.Equal(t, TimeRow{Nom: "Peinture", TotalTime: 0.5, TotalEmployees: 1}, rows[2])
}

func TestBuildSupplierImpactPositiveDelaysOnly(t *testing.T) {
	bundle := NewBuilder().Build(snapshot())

	// REF-B's execution finished early, so MecaParts never appears;
	// REF-MISSING joins nothing
	rows := bundle.SupplierImpact.Data
	require.Len(t, rows, 1)
	assert.Equal(t, SupplierRow{Supplier: "AeroSup", Delay: 1}, rows[0])

	costs := bundle.SupplierFinancialImpact.Data
	require.Len(t, costs, 1)
	// 1h delay at poste 1's mean rate (40+20)/2
	assert.Equal(t, SupplierCostRow{Supplier: "AeroSup", Cost: 30}, costs[0])
}

func TestBuildRiskMatrix(t *testing.T) {
	bundle := NewBuilder().Build(snapshot())

	rows := bundle.RiskMatrix.Data
	require.Len(t, rows, 1)
	assert.Equal(t, RiskRow{
		Poste: 1, Delay: 1, Cost: 30,
		Criticality: "Critique", Name: "Rivetage", Supplier: "AeroSup",
	}, rows[0])
}

func TestBuildRiskMatrixDelayFloor(t *testing.T) {
	snap := &model.Snapshot{
		HasMES: true, HasPLM: true,
		Execution: []model.ExecutionRecord{
			// +5 min = 0.08h, at or under the 0.1h floor
			exec("A", 1, "1:00:00", "1:05:00", "REF-A"),
		},
		Parts: []model.PartRecord{{Reference: "REF-A", Supplier: "S"}},
	}

	bundle := NewBuilder().Build(snap)
	assert.Empty(t, bundle.RiskMatrix.Data)
	assert.Len(t, bundle.SupplierImpact.Data, 1) // floor applies to the matrix only
}

func TestBuildSamplingIsReproducible(t *testing.T) {
	snap := &model.Snapshot{HasMES: true, HasPLM: true}
	for i := 0; i < 300; i++ {
		ref := fmt.Sprintf("REF-%03d", i)
		snap.Execution = append(snap.Execution, exec("Montage", 1, "1:00:00", "2:00:00", ref))
		snap.Parts = append(snap.Parts, model.PartRecord{Reference: ref, Supplier: "S", DesignTime: float64(i)})
	}

	first := NewBuilder().Build(snap)
	second := NewBuilder().Build(snap)

	assert.Len(t, first.PLMCorrelation.Data, 150)
	assert.Len(t, first.RiskMatrix.Data, 100)
	assert.Equal(t, first.PLMCorrelation.Data, second.PLMCorrelation.Data)
	assert.Equal(t, first.RiskMatrix.Data, second.RiskMatrix.Data)
}

func TestBuildDefaultCriticality(t *testing.T) {
	snap := &model.Snapshot{
		HasMES: true, HasPLM: true,
		Execution: []model.ExecutionRecord{exec("A", 1, "1:00:00", "2:00:00", "REF-A")},
		Parts:     []model.PartRecord{{Reference: "REF-A", Supplier: "S"}},
	}

	bundle := NewBuilder().Build(snap)
	require.Len(t, bundle.PLMCorrelation.Data, 1)
	assert.Equal(t, "Non classé", bundle.PLMCorrelation.Data[0].Criticality)
	require.Len(t, bundle.RiskMatrix.Data, 1)
	assert.Equal(t, "Non classé", bundle.RiskMatrix.Data[0].Criticality)
}

func TestBuildNilSnapshot(t *testing.T) {
	bundle := NewBuilder().Build(nil)
	assert.NotNil(t, bundle.BottleneckVariability.Data)
	assert.Empty(t, bundle.BottleneckVariability.Data)
	assert.NotNil(t, bundle.RiskMatrix.Data)
	assert.Empty(t, bundle.RiskMatrix.Data)
}
