// Package loader is the ingestion adapter: it turns spreadsheet-like source
// files into sequences of raw key→value rows. The analytics core never reads
// files itself; it consumes rows through the Loader interface so the storage
// format can change without touching any analysis code.
package loader

import (
	"fmt"

	"factoryflow/internal/core/model"
)

// Row is one raw record as read from a tabular source, keyed by column header.
type Row map[string]string

// Get returns the first non-empty value among the given column names. Source
// extractions drift in header spelling; lookups stay confined to this layer.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Loader loads the raw rows of one named source (model.SourceERP,
// model.SourceMES, model.SourcePLM). An unknown source is an error. An
// unavailable source is not: it yields nil rows so the request degrades to a
// partial result instead of failing.
type Loader interface {
	Load(source string) ([]Row, error)
}

// RawSnapshot bundles one load of all three sources. Nil slices mark sources
// that could not be loaded.
type RawSnapshot struct {
	Workforce []Row
	Execution []Row
	Parts     []Row
}

// LoadAll loads every source through l. Per-source failures are swallowed
// into absent sections; only an unknown-source programming error surfaces.
func LoadAll(l Loader) (*RawSnapshot, error) {
	snap := &RawSnapshot{}

	var err error
	if snap.Workforce, err = l.Load(model.SourceERP); err != nil {
		return nil, fmt.Errorf("load %s: %w", model.SourceERP, err)
	}
	if snap.Execution, err = l.Load(model.SourceMES); err != nil {
		return nil, fmt.Errorf("load %s: %w", model.SourceMES, err)
	}
	if snap.Parts, err = l.Load(model.SourcePLM); err != nil {
		return nil, fmt.Errorf("load %s: %w", model.SourcePLM, err)
	}
	return snap, nil
}
