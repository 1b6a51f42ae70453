// Package main provides the CLI entry point for exsplit-go.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exsplit-go/pkg/exsplit"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/logging"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/output"
)

var (
	inputPath   string
	outputPath  string
	chunkSize   int
	prefix      string
	exact       bool
	planOnly    bool
	pretty      bool
	logDir      string
	stdoutLevel string
	fileLevel   string
	noLogFile   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exsplit [input.xlsx]",
		Short: "Split a large worksheet into fixed-size sheets",
		Long: `exsplit-go reads the first worksheet of an Excel file and copies its rows
into new sheets (data_1, data_2, ...) of at most --chunk-size rows each,
saving the result as a new workbook.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&inputPath, "file", "f", "file_001.xlsx", "Input Excel file path")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>_new.xlsx)")
	rootCmd.Flags().IntVarP(&chunkSize, "chunk-size", "n", exsplit.DefaultChunkSize, "Maximum rows per new sheet")
	rootCmd.Flags().StringVar(&prefix, "prefix", exsplit.DefaultPrefix, "Name prefix for new sheets")
	rootCmd.Flags().BoolVar(&exact, "exact", false, "Allocate ceil(rows/chunk-size) sheets instead of floor(rows/chunk-size)+1")
	rootCmd.Flags().BoolVar(&planOnly, "plan", false, "Print the split plan as JSON without writing a workbook")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&logDir, "log-dir", logging.DefaultDir, "Directory for per-run log files")
	rootCmd.Flags().StringVar(&stdoutLevel, "stdout-level", "info", "Log level for stdout: critical, error, warning, info, debug, notset")
	rootCmd.Flags().StringVar(&fileLevel, "file-level", "debug", "Log level for the log file")
	rootCmd.Flags().BoolVar(&noLogFile, "no-log-file", false, "Do not write a log file")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		inputPath = args[0]
	}

	logCfg := logging.DefaultConfig()
	logCfg.Dir = logDir
	logCfg.DisableFile = noLogFile
	logCfg.Stdout = cmd.OutOrStdout()
	if planOnly {
		// Keep stdout clean for the JSON document.
		logCfg.Stdout = io.Discard
	}
	var err error
	if logCfg.StdoutLevel, err = logging.ParseLevel(stdoutLevel); err != nil {
		return err
	}
	if logCfg.FileLevel, err = logging.ParseLevel(fileLevel); err != nil {
		return err
	}

	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	opts := exsplit.Options{
		ChunkSize: chunkSize,
		Prefix:    prefix,
		Exact:     exact,
		Logger:    &logger.Logger,
	}

	s, err := exsplit.Open(inputPath, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Open failed")
		return err
	}
	defer s.Close()

	if planOnly {
		jsonData, err := output.PlanToJSON(s.Plan(), pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	}

	if _, err := s.Run(outputPath); err != nil {
		logger.Error().Err(err).Msg("Split failed")
		return err
	}
	return nil
}
