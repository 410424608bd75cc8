package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"flow-log-tagger/internal/logging"
	"flow-log-tagger/internal/lookup"
	"flow-log-tagger/internal/model"
	"flow-log-tagger/internal/processor"
	"flow-log-tagger/internal/report"

	"github.com/spf13/cobra"
)

var (
	lookupFile     string
	flowLogFile    string
	outFile        string
	lookupProvider string
	lookupDB       string
	logLevel       string
	logFile        string
)

// Exit statuses reported by main, one per failure kind.
const (
	exitOK       = 0
	exitFailure  = 1
	exitNotFound = 2
	exitFormat   = 3
	exitWrite    = 4
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flow-log-tagger",
		Short: "Tags flow log records from a lookup table and reports aggregate counts",
		Long: `flow-log-tagger reads a port/protocol lookup table, tags each record of a
	flow log against it and writes tag and port/protocol combination counts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&lookupFile, "lookup", "lookup_table.csv", "Lookup table CSV file (for 'csv' provider)")
	rootCmd.Flags().StringVar(&flowLogFile, "flow-log", "flow_log.log", "Flow log file to process")
	rootCmd.Flags().StringVar(&outFile, "out", "output.txt", "Output report file")
	rootCmd.Flags().StringVar(&lookupProvider, "provider", "csv", "Lookup provider type: 'csv' or 'mariadb'")
	rootCmd.Flags().StringVar(&lookupDB, "db", "", "Database connection string (for 'mariadb' provider)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "process_flow_logs.log", "Process log file path (empty: stderr)")

	return rootCmd
}

func main() {
	os.Exit(exitStatus(newRootCmd().Execute()))
}

// exitStatus maps a stage error onto the process exit code.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, model.ErrNotFound):
		return exitNotFound
	case errors.Is(err, model.ErrBadFormat):
		return exitFormat
	case errors.Is(err, model.ErrWrite):
		return exitWrite
	default:
		return exitFailure
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.Open(logFile, logLevel)
	defer logger.Close()

	logger.Info("Starting flow log tagger", "provider", lookupProvider)
	startTime := time.Now()

	table, count, err := loadLookup(lookupProvider, lookupFile, lookupDB)
	if err != nil {
		logger.Error("Failed to load lookup table", "error", err)
		return err
	}
	logger.Info("Loaded mappings from the lookup table", "count", count)

	tally, err := processor.ProcessFile(flowLogFile, table)
	if err != nil {
		logger.Error("Failed to process flow logs", "error", err)
		return err
	}
	logger.Info("Finished processing flow logs", "tags", len(tally.Tags), "port_protocol_pairs", len(tally.PortProtocols))

	if err := report.WriteFile(outFile, tally); err != nil {
		logger.Error("Failed to write output", "error", err)
		return err
	}
	logger.Info("Output successfully written", "path", outFile, "duration", time.Since(startTime))
	return nil
}

func loadLookup(provider, path, dsn string) (map[model.Key]string, int, error) {
	switch provider {
	case "csv":
		return lookup.LoadFile(path)
	case "mariadb":
		if dsn == "" {
			return nil, 0, fmt.Errorf("database connection string must be provided for mariadb provider")
		}
		p, err := lookup.NewDBProvider(dsn)
		if err != nil {
			return nil, 0, err
		}
		defer p.Close()
		return p.Load()
	default:
		return nil, 0, fmt.Errorf("unknown lookup provider: %s", provider)
	}
}
