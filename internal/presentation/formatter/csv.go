package formatter

import (
	"encoding/csv"
	"io"

	"factoryflow/internal/core/model"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(result *model.AnalysisResult) error {
	w := csv.NewWriter(f.w)
	defer w.Flush()

	if err := w.Write([]string{"Kind", "System", "Detail", "Value", "Reason"}); err != nil {
		return err
	}
	for _, r := range flatten(result) {
		if err := w.Write([]string{r.Kind, r.System, r.Detail, r.Value, r.Reason}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
