// Package normalizer converts raw key→value rows into the typed records the
// analytics core works with. Normalization is total and lossless with respect
// to row count: a malformed cell coerces to its zero value, it never drops a
// row or fails a pass. All defensive column lookups live here; downstream
// components only ever see strongly typed records.
package normalizer

import (
	"fmt"
	"strconv"
	"strings"

	"factoryflow/internal/core/model"
	"factoryflow/internal/data/loader"
)

// pieceDelimiter joins multiple part references inside a single MES cell.
const pieceDelimiter = ","

// Workforce converts raw ERP rows into workforce records. Rows without an id
// column get a synthetic positional id so the roster row count is preserved.
func Workforce(rows []loader.Row) []model.WorkforceRecord {
	out := make([]model.WorkforceRecord, 0, len(rows))
	for i, row := range rows {
		rec := model.WorkforceRecord{
			ID:            row.Get("ID", "Matricule"),
			FirstName:     row.Get("Prénom"),
			LastName:      row.Get("Nom"),
			Qualification: row.Get("Qualification"),
			Experience:    row.Get("Niveau d'expérience"),
			HourlyCost:    toFloat(row.Get("Coût horaire (€)", "Coût horaire")),
			Age:           toInt(row.Get("Âge", "Age")),
			Poste:         toInt(row.Get("Poste_Num", "Poste")),
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("EMP-%03d", i+1)
		}
		out = append(out, rec)
	}
	return out
}

// Execution converts raw MES rows into execution records.
func Execution(rows []loader.Row) []model.ExecutionRecord {
	out := make([]model.ExecutionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.ExecutionRecord{
			Task:        row.Get("Nom"),
			Poste:       toInt(row.Get("Poste")),
			PlannedTime: row.Get("Temps Prévu"),
			ActualTime:  row.Get("Temps Réel"),
			Date:        row.Get("Date"),
			StartTime:   row.Get("Heure Début"),
			EndTime:     row.Get("Heure Fin"),
			PieceRefs:   splitRefs(row.Get("Pièce(s)", "Pièce", "Référence Pièce")),
			Pieces:      toInt(row.Get("Nombre pièces")),
			Issue:       row.Get("Aléas Industriels"),
			Cause:       row.Get("Cause Potentielle"),
		})
	}
	return out
}

// Parts converts raw PLM rows into part records.
func Parts(rows []loader.Row) []model.PartRecord {
	out := make([]model.PartRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.PartRecord{
			Reference:    row.Get("Code / Référence", "Référence"),
			Designation:  row.Get("Désignation"),
			PurchaseCost: toFloat(row.Get("Coût achat pièce (€)", "Coût achat pièce")),
			Criticality:  row.Get("Criticité"),
			Supplier:     row.Get("Fournisseur"),
			LeadTime:     row.Get("Délai Approvisionnement"),
			DesignTime:   toFloat(row.Get("Temps CAO (h)", "Temps CAO")),
			Mass:         toFloat(row.Get("Masse (kg)", "Masse")),
		})
	}
	return out
}

// Snapshot normalizes one raw load into a typed snapshot. A nil raw section
// marks that source as unavailable; an empty one is present but empty.
func Snapshot(raw *loader.RawSnapshot) *model.Snapshot {
	snap := &model.Snapshot{
		Workforce: []model.WorkforceRecord{},
		Execution: []model.ExecutionRecord{},
		Parts:     []model.PartRecord{},
	}
	if raw == nil {
		return snap
	}
	if raw.Workforce != nil {
		snap.HasERP = true
		snap.Workforce = Workforce(raw.Workforce)
	}
	if raw.Execution != nil {
		snap.HasMES = true
		snap.Execution = Execution(raw.Execution)
	}
	if raw.Parts != nil {
		snap.HasPLM = true
		snap.Parts = Parts(raw.Parts)
	}
	return snap
}

// Load is the convenience path used by every request handler: one full raw
// load followed by normalization.
func Load(l loader.Loader) (*model.Snapshot, error) {
	raw, err := loader.LoadAll(l)
	if err != nil {
		return nil, err
	}
	return Snapshot(raw), nil
}

func splitRefs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, pieceDelimiter)
	refs := make([]string, 0, len(parts))
	for _, p := range parts {
		if ref := strings.TrimSpace(p); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// toFloat coerces a numeric cell, accepting the comma decimal separator the
// source extractions use. Failure yields 0.
func toFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return v
	}
	return 0
}

func toInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// Workstation cells sometimes read "Poste 3" or carry a float form.
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return int(v)
	}
	fields := strings.Fields(s)
	if len(fields) > 1 {
		if v, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
			return v
		}
	}
	return 0
}
