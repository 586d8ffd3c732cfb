// Package export renders the current session as a shareable agenda.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/okravets/dayline/internal/models"
	"github.com/okravets/dayline/internal/store"
)

// Exporter reads a store and writes agendas in one of the supported
// formats: pdf, json, csv.
type Exporter struct {
	st *store.Store
}

func NewExporter(st *store.Store) *Exporter { return &Exporter{st: st} }

// Export renders the agenda over the given timeline slots.
func (e *Exporter) Export(slots []string, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return e.exportJSON(slots)
	case "csv":
		return e.exportCSV()
	case "pdf":
		return e.exportPDF(slots)
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

type agenda struct {
	Summaries   []models.CategorySummary `json:"summaries"`
	Timeline    []models.TimeSlot        `json:"timeline"`
	Unscheduled []models.Task            `json:"unscheduled"`
}

func (e *Exporter) exportJSON(slots []string) ([]byte, error) {
	return json.MarshalIndent(agenda{
		Summaries:   e.st.Summaries(),
		Timeline:    e.st.Timeline(slots),
		Unscheduled: e.st.Unscheduled(),
	}, "", "  ")
}

func (e *Exporter) exportCSV() ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"id", "text", "category", "time", "completed"})
	for _, t := range e.st.Tasks() {
		_ = w.Write([]string{
			fmt.Sprint(t.ID), t.Text, t.Category.String(), t.Time, fmt.Sprint(t.Completed),
		})
	}
	w.Flush()
	return []byte(b.String()), nil
}

func (e *Exporter) exportPDF(slots []string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Day Agenda")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	for _, s := range e.st.Summaries() {
		pdf.MultiCell(0, 6, fmt.Sprintf("%s: %d", s.Label, s.Count), "0", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(40, 8, "Timeline")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	for _, slot := range e.st.Timeline(slots) {
		if len(slot.Tasks) == 0 {
			continue
		}
		for _, t := range slot.Tasks {
			pdf.MultiCell(0, 6, fmt.Sprintf("%s  %s (%s)%s", slot.Label, t.Text, t.Category.Label(), doneMark(t)), "0", "L", false)
		}
	}

	unscheduled := e.st.Unscheduled()
	if len(unscheduled) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(40, 8, "Unscheduled")
		pdf.Ln(10)
		pdf.SetFont("Arial", "", 10)
		for _, t := range unscheduled {
			pdf.MultiCell(0, 6, fmt.Sprintf("%s (%s)%s", t.Text, t.Category.Label(), doneMark(t)), "0", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func doneMark(t models.Task) string {
	if t.Completed {
		return " [done]"
	}
	return ""
}
