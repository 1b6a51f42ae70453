package models

// SheetPlan describes one destination worksheet and the source rows it receives.
type SheetPlan struct {
	// Name is the destination worksheet name.
	Name string `json:"name"`
	// Index is the 1-based position of the sheet among the destinations.
	Index int `json:"index"`
	// StartRow is the first source row (1-based) copied into the sheet.
	StartRow int `json:"start_row"`
	// EndRow is the last source row copied, inclusive. EndRow < StartRow means
	// the sheet stays empty.
	EndRow int `json:"end_row"`
}

// Rows returns the number of source rows the sheet receives.
func (p SheetPlan) Rows() int {
	if p.EndRow < p.StartRow {
		return 0
	}
	return p.EndRow - p.StartRow + 1
}

// Plan is the full split layout for a workbook.
type Plan struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SourceSheet is the name of the sheet being split.
	SourceSheet string `json:"source_sheet"`
	// Dimension is the used range of the source sheet.
	Dimension string `json:"dimension,omitempty"`
	// MaxRow is the source row count.
	MaxRow int `json:"max_row"`
	// ChunkSize is the maximum number of rows per destination sheet.
	ChunkSize int `json:"chunk_size"`
	// OutputPath is where the split workbook is saved by default.
	OutputPath string `json:"output_path"`
	// Sheets lists the destination sheets in creation order.
	Sheets []SheetPlan `json:"sheets"`
}
