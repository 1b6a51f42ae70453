package models

import "testing"

func TestSheetPlanRows(t *testing.T) {
	tests := []struct {
		plan     SheetPlan
		expected int
	}{
		{SheetPlan{StartRow: 1, EndRow: 4}, 4},
		{SheetPlan{StartRow: 9, EndRow: 10}, 2},
		{SheetPlan{StartRow: 5, EndRow: 5}, 1},
		{SheetPlan{StartRow: 9, EndRow: 8}, 0},
	}

	for _, tt := range tests {
		if got := tt.plan.Rows(); got != tt.expected {
			t.Errorf("SheetPlan{%d..%d}.Rows() = %d, expected %d",
				tt.plan.StartRow, tt.plan.EndRow, got, tt.expected)
		}
	}
}

func TestRowFirst(t *testing.T) {
	v, ok := Row{R: 1, Cells: []interface{}{int64(7), "x"}}.First()
	if !ok || v != int64(7) {
		t.Errorf("First() = %v, %v, expected 7, true", v, ok)
	}

	if _, ok := (Row{R: 2}).First(); ok {
		t.Errorf("First() on an empty row should report no value")
	}
}

func TestRowClone(t *testing.T) {
	row := Row{R: 3, Cells: []interface{}{int64(1), "b"}, Style: 2, Formula: "1+1"}
	clone := row.Clone()
	clone.Cells[0] = "changed"

	if row.Cells[0] != int64(1) {
		t.Errorf("Clone shares cells with the original: %v", row.Cells[0])
	}
	if clone.Style != 2 || clone.Formula != "1+1" || clone.R != 3 {
		t.Errorf("Clone lost fields: %+v", clone)
	}
	if (Row{}).Clone().Cells != nil {
		t.Errorf("Clone of an empty row should keep nil cells")
	}
}
