package models

// SourceSheet is a read-only snapshot of the worksheet being split.
type SourceSheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Dimension is the used range of the sheet (e.g. "A1:C10"), empty for a blank sheet.
	Dimension string `json:"dimension,omitempty"`
	// Rows contains every row up to the last populated one, blank rows included.
	Rows []Row `json:"-"`
}

// MaxRow returns the number of rows in the sheet.
func (s *SourceSheet) MaxRow() int {
	return len(s.Rows)
}
