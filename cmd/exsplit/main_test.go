package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeBook(t *testing.T, rows int) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r := 1; r <= rows; r++ {
		cell, _ := excelize.CoordinatesToCellName(1, r)
		require.NoError(t, f.SetCellValue("Sheet1", cell, r))
	}
	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunSplits(t *testing.T) {
	input := writeBook(t, 10)
	target := filepath.Join(t.TempDir(), "out.xlsx")
	logDir := filepath.Join(t.TempDir(), "logs")

	_, err := execute(t, "-f", input, "-o", target, "-n", "4", "--log-dir", logDir)
	require.NoError(t, err)

	f, err := excelize.OpenFile(target)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, []string{"Sheet1", "data_1", "data_2", "data_3"}, f.GetSheetList())

	logs, err := filepath.Glob(filepath.Join(logDir, "*.log"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

func TestRunPlan(t *testing.T) {
	input := writeBook(t, 8)

	out, err := execute(t, input, "--plan", "-n", "8", "--no-log-file")
	require.NoError(t, err)

	var plan struct {
		MaxRow int `json:"max_row"`
		Sheets []struct {
			Name string `json:"name"`
			Rows int    `json:"rows"`
		} `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Equal(t, 8, plan.MaxRow)
	require.Len(t, plan.Sheets, 2)
	require.Equal(t, 0, plan.Sheets[1].Rows)
	require.NoFileExists(t, filepath.Join(filepath.Dir(input), "input_new.xlsx"))
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, "-f", filepath.Join(t.TempDir(), "nope.xlsx"), "--no-log-file")
	require.Error(t, err)
}

func TestRunBadLevel(t *testing.T) {
	_, err := execute(t, "--stdout-level", "loud", "--no-log-file")
	require.Error(t, err)
}
