package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"factoryflow/internal/core/model"
	"factoryflow/internal/util"
)

// Source file names under the data directory, one per extraction system.
var sourceFiles = map[string]string{
	model.SourceERP: "erp.csv",
	model.SourceMES: "mes.csv",
	model.SourcePLM: "plm.csv",
}

// CSVLoader reads source snapshots from CSV files in a single directory.
// Every Load call re-reads the file; there is deliberately no caching, each
// analytical request recomputes from the current snapshot.
type CSVLoader struct {
	dir string
}

// NewCSVLoader creates a loader rooted at the given data directory.
func NewCSVLoader(dir string) *CSVLoader {
	return &CSVLoader{dir: dir}
}

// Load reads all rows of the named source. A missing or unreadable file
// yields nil rows and no error: the source is treated as unavailable and its
// sections are omitted downstream.
func (l *CSVLoader) Load(source string) ([]Row, error) {
	name, ok := sourceFiles[source]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", source)
	}

	path := filepath.Join(l.dir, name)
	file, err := os.Open(path)
	if err != nil {
		util.LogDebugf("Source %s unavailable: %v", source, err)
		return nil, nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows degrade per-cell, not per-file

	records, err := reader.ReadAll()
	if err != nil {
		util.LogWarnf("Source %s unreadable: %v", source, err)
		return nil, nil
	}
	if len(records) == 0 {
		return []Row{}, nil
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}

	util.LogDebugf("Loaded %d rows from %s", len(rows), path)
	return rows, nil
}
