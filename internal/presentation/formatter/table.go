package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"factoryflow/internal/core/model"
)

type TableFormatter struct {
	w       io.Writer
	headers []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		w:       w,
		headers: []string{"Kind", "System", "Detail", "Value", "Reason"},
	}
}

func (f *TableFormatter) Format(result *model.AnalysisResult) error {
	rows := flatten(result)
	widths := f.calculateColumnWidths(rows)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")

	for _, r := range rows {
		f.printRow([]string{r.Kind, r.System, r.Detail, r.Value, r.Reason}, widths)
	}
	if len(rows) == 0 {
		f.printRow([]string{"-", "-", "no findings", "-", "-"}, widths)
	}

	f.printBorder(widths, "bottom")
	f.printStatistics(result.Statistics)
	return nil
}

// calculateColumnWidths sizes columns to their content. Widths are measured
// with runewidth since detail and reason strings carry accented text.
func (f *TableFormatter) calculateColumnWidths(rows []row) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}

	for _, r := range rows {
		values := []string{r.Kind, r.System, r.Detail, r.Value, r.Reason}
		for i, value := range values {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i := range widths {
		if widths[i] < 6 {
			widths[i] = 6
		}
	}
	return widths
}

func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Fprint(f.w, left)
	for i, width := range widths {
		fmt.Fprint(f.w, strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Fprint(f.w, middle)
		}
	}
	fmt.Fprintln(f.w, right)
}

func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Fprint(f.w, "│")
	for i, value := range values {
		pad := widths[i] - runewidth.StringWidth(value)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(f.w, " %s%s │", value, strings.Repeat(" ", pad))
	}
	fmt.Fprintln(f.w)
}

func (f *TableFormatter) printStatistics(stats model.Statistics) {
	if stats.ERP != nil {
		fmt.Fprintf(f.w, "ERP: %d employees, avg cost €%.2f/h, avg age %.1f\n",
			stats.ERP.TotalEmployees, stats.ERP.AvgHourlyCost, stats.ERP.AvgAge)
	}
	if stats.MES != nil {
		fmt.Fprintf(f.w, "MES: %d operations, total delay %.1f min, avg %.1f min\n",
			stats.MES.TotalOperations, stats.MES.TotalDelayMinutes, stats.MES.AvgDelayMinutes)
	}
	if stats.PLM != nil {
		fmt.Fprintf(f.w, "PLM: %d parts, %d critical, %d suppliers, total cost €%.0f\n",
			stats.PLM.TotalParts, stats.PLM.CriticalParts, stats.PLM.SupplierCount, stats.PLM.TotalPartsCost)
	}
}
