// Package output renders split plans for display.
package output

import (
	"encoding/json"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
)

// planView adds the per-sheet row count to the serialized plan.
type planView struct {
	models.Plan
	Sheets []sheetView `json:"sheets"`
}

type sheetView struct {
	models.SheetPlan
	Rows int `json:"rows"`
}

// PlanToJSON serializes a split plan.
func PlanToJSON(plan models.Plan, pretty bool) ([]byte, error) {
	view := planView{Plan: plan, Sheets: make([]sheetView, len(plan.Sheets))}
	for i, sheet := range plan.Sheets {
		view.Sheets[i] = sheetView{SheetPlan: sheet, Rows: sheet.Rows()}
	}

	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
