// Package models defines data structures for worksheet splitting.
package models

// Row represents a single source row.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds the row's values ordered by column. Column 1 is Cells[0]
	// and is typed; later columns keep their raw string value.
	Cells []interface{} `json:"c"`
	// Style is the style ID of the first cell, 0 for the default style.
	Style int `json:"s,omitempty"`
	// Formula is the formula of the first cell without the leading "=".
	Formula string `json:"f,omitempty"`
}

// First returns the value of the first column and whether the row has one.
func (r Row) First() (interface{}, bool) {
	if len(r.Cells) == 0 {
		return nil, false
	}
	return r.Cells[0], true
}

// Clone returns a copy of r that shares no memory with it.
func (r Row) Clone() Row {
	if r.Cells != nil {
		r.Cells = append([]interface{}(nil), r.Cells...)
	}
	return r
}
