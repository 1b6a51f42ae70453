package exsplit

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/parser"
	"github.com/xuri/excelize/v2"
)

// Splitter redistributes the rows of a workbook's first sheet across new
// sheets of at most ChunkSize rows each. A Splitter owns its workbook and is
// not safe for concurrent use.
type Splitter struct {
	path       string
	outputPath string
	opts       Options
	log        zerolog.Logger

	file       *excelize.File
	sheets     []string // workbook sheets at open time
	source     *models.SourceSheet
	sheetNames []string
}

// ValidateSource checks that path refers to an existing regular file.
func ValidateSource(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return nil
}

// DefaultOutputPath derives the save path for a source workbook: the first
// ".xls" in the file name becomes "_new.xls", so "book.xlsx" is saved as
// "book_new.xlsx". Names without ".xls" get "_new" before their extension.
func DefaultOutputPath(src string) (string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", err
	}
	dir, base := filepath.Split(abs)

	var name string
	if strings.Contains(base, ".xls") {
		name = strings.Replace(base, ".xls", "_new.xls", 1)
	} else {
		ext := filepath.Ext(base)
		name = strings.TrimSuffix(base, ext) + "_new" + ext
	}
	return filepath.Join(dir, name), nil
}

// Open validates path and opts, loads the workbook and snapshots its first
// sheet. The caller must Close the returned Splitter.
func Open(path string, opts Options) (*Splitter, error) {
	if err := ValidateSource(path); err != nil {
		return nil, err
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	log := opts.logger()
	outputPath, err := DefaultOutputPath(path)
	if err != nil {
		return nil, err
	}
	abs, _ := filepath.Abs(path)
	log.Info().Str("path", path).Str("abs_path", abs).Msg("Input workbook")
	log.Info().Str("path", outputPath).Msg("Output workbook")

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}

	s := &Splitter{
		path:       path,
		outputPath: outputPath,
		opts:       opts,
		log:        log,
		file:       f,
	}
	if err := s.load(); err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

func (s *Splitter) load() error {
	s.sheets = s.file.GetSheetList()
	if len(s.sheets) == 0 {
		return fmt.Errorf("%w: %s has no worksheets", ErrInvalidFormat, s.path)
	}
	first := s.sheets[0]
	s.log.Info().Strs("sheets", s.sheets).Str("first_sheet", first).Msg("Workbook sheets")

	source, err := parser.ReadSheet(s.file, first)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", first, err)
	}
	s.source = source
	s.log.Info().
		Str("dimension", source.Dimension).
		Int("max_row", source.MaxRow()).
		Msg("Source sheet loaded")

	count := s.opts.SheetCount(source.MaxRow())
	names := make([]string, count)
	for i := range names {
		names[i] = s.opts.SheetName(i + 1)
	}
	if err := validateSheetNames(names); err != nil {
		return err
	}
	s.sheetNames = names
	s.log.Info().Strs("new_sheets", names).Msg("Destination sheets planned")
	return nil
}

// Source returns the snapshot of the sheet being split.
func (s *Splitter) Source() *models.SourceSheet {
	return s.source
}

// OutputPath returns the path Save uses when none is given.
func (s *Splitter) OutputPath() string {
	return s.outputPath
}

// SheetNames returns the destination sheet names in creation order.
func (s *Splitter) SheetNames() []string {
	return append([]string(nil), s.sheetNames...)
}

// Plan describes which source rows land in each destination sheet.
func (s *Splitter) Plan() models.Plan {
	maxRow := s.source.MaxRow()
	plan := models.Plan{
		BookName:    filepath.Base(s.path),
		SourceSheet: s.source.Name,
		Dimension:   s.source.Dimension,
		MaxRow:      maxRow,
		ChunkSize:   s.opts.ChunkSize,
		OutputPath:  s.outputPath,
		Sheets:      make([]models.SheetPlan, 0, len(s.sheetNames)),
	}
	for i, name := range s.sheetNames {
		start := s.startRow(i + 1)
		end := start + s.opts.ChunkSize - 1
		if end > maxRow {
			end = maxRow
		}
		if start > maxRow {
			end = start - 1
		}
		plan.Sheets = append(plan.Sheets, models.SheetPlan{
			Name:     name,
			Index:    i + 1,
			StartRow: start,
			EndRow:   end,
		})
	}
	return plan
}

func (s *Splitter) startRow(index int) int {
	return s.opts.ChunkSize*(index-1) + 1
}

// CreateAllSheets adds an empty worksheet for every destination name.
// Calling it again reuses the sheets created by the first call.
func (s *Splitter) CreateAllSheets() error {
	for _, name := range s.sheetNames {
		if _, err := s.file.NewSheet(name); err != nil {
			return NewSheetError(name, "create", err)
		}
	}
	s.log.Info().Strs("sheets", s.file.GetSheetList()).Msg("All sheets created")
	return nil
}

// WriteAllSheets copies each chunk of source rows into its destination
// sheet. Destinations past the end of the source are left empty.
func (s *Splitter) WriteAllSheets() error {
	for _, name := range s.sheetNames {
		index, err := strconv.Atoi(strings.TrimPrefix(name, s.opts.Prefix))
		if err != nil {
			return NewSheetError(name, "write", err)
		}
		start := s.startRow(index)

		rows, err := s.ReadRows(start, s.opts.ChunkSize)
		if err != nil {
			return NewSheetError(name, "write", err)
		}
		if len(rows) == 0 {
			s.log.Warn().Str("sheet", name).Int("start_row", start).Msg("No rows left for sheet")
			continue
		}
		if err := s.WriteRows(name, 1, rows); err != nil {
			return err
		}
	}
	return nil
}

// ReadRows returns up to count source rows starting at startRow (1-based).
// A startRow past the last source row yields an empty result whatever the
// count. The returned rows are deep copies of the source rows.
func (s *Splitter) ReadRows(startRow, count int) ([]models.Row, error) {
	if startRow <= 0 {
		s.log.Error().Int("start_row", startRow).Msg("start row must be greater than 0")
		return nil, &ArgumentError{Name: "start_row", Value: startRow}
	}

	maxRow := s.source.MaxRow()
	if startRow > maxRow {
		s.log.Warn().Int("start_row", startRow).Int("max_row", maxRow).Msg("Start row beyond source")
		return []models.Row{}, nil
	}
	if count <= 0 {
		s.log.Error().Int("count", count).Msg("count must be greater than 0")
		return nil, &ArgumentError{Name: "count", Value: count}
	}

	end := startRow + count - 1
	if end > maxRow {
		end = maxRow
	}
	rows := make([]models.Row, 0, end-startRow+1)
	for _, row := range s.source.Rows[startRow-1 : end] {
		rows = append(rows, row.Clone())
	}
	return rows, nil
}

// WriteRows copies the first cell of each row to column A of sheet,
// beginning at startRow. Formulas and cell styles are carried over. Rows
// without a first-column value or formula leave their destination cell
// untouched.
func (s *Splitter) WriteRows(sheet string, startRow int, rows []models.Row) error {
	if startRow <= 0 {
		return &ArgumentError{Name: "start_row", Value: startRow}
	}
	s.log.Info().Str("sheet", sheet).Int("rows", len(rows)).Msg("Writing sheet")

	for i, row := range rows {
		value, ok := row.First()
		hasValue := ok && value != nil
		if !hasValue && row.Formula == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return NewSheetError(sheet, "write", err)
		}
		s.log.Debug().
			Int("src_row", row.R).
			Interface("value", value).
			Str("formula", row.Formula).
			Str("cell", cell).
			Msg("Copy cell")

		if hasValue {
			if err := s.file.SetCellValue(sheet, cell, value); err != nil {
				return NewSheetError(sheet, "write", err)
			}
		}
		if row.Formula != "" {
			if err := s.file.SetCellFormula(sheet, cell, row.Formula); err != nil {
				return NewSheetError(sheet, "write", err)
			}
		}
		if row.Style != 0 {
			if err := s.file.SetCellStyle(sheet, cell, cell, row.Style); err != nil {
				return NewSheetError(sheet, "write", err)
			}
		}
	}
	return nil
}

// Save writes the workbook to path, or to OutputPath when path is empty,
// and returns the path written.
func (s *Splitter) Save(path string) (string, error) {
	if path == "" {
		path = s.outputPath
	}
	abs, _ := filepath.Abs(path)
	s.log.Info().Str("path", path).Str("abs_path", abs).Msg("Saving workbook")

	if err := s.file.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	ev := s.log.Info().Str("path", path)
	if info, err := os.Stat(path); err == nil {
		ev = ev.Str("size", humanize.Bytes(uint64(info.Size())))
	}
	ev.Msg("Save to disk success")
	return path, nil
}

// Run creates the destination sheets, fills them and saves the workbook.
func (s *Splitter) Run(path string) (string, error) {
	if err := s.CreateAllSheets(); err != nil {
		return "", err
	}
	if err := s.WriteAllSheets(); err != nil {
		return "", err
	}
	return s.Save(path)
}

// Close releases the workbook.
func (s *Splitter) Close() error {
	return s.file.Close()
}
