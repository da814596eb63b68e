package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sarchlab/sramgen/compiler"
	"github.com/sarchlab/sramgen/datarecording"
	"github.com/sarchlab/sramgen/sram/power"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run area, timing, and power analysis for one configuration.",
	Long: "`analyze` runs all estimators, sweeps power over a set of " +
		"activity factors, and writes the results as JSON. With --record " +
		"the results are additionally stored in a SQLite database.",
	Run: func(cmd *cobra.Command, args []string) {
		configArg, _ := cmd.Flags().GetString("config")
		if configArg == "" {
			log.Fatal("Error: a configuration is required, " +
				"use --config <template-name|file.json>")
		}

		dir := outputDir(cmd)

		cfg, err := loadConfig(configArg)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		c := compiler.New(cfg)

		res, err := c.Analyze(power.DefaultActivityFactor)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		sweep, err := c.PowerSweep(nil)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		err = writeJSONFile(dir, "area_timing_analysis.json", res)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		err = writeJSONFile(dir, "power_analysis.json", sweep)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		if record, _ := cmd.Flags().GetBool("record"); record {
			logPath := filepath.Join(dir, "estimates")
			estLog := datarecording.NewEstimateLog(logPath)
			estLog.RecordResult(res)
			estLog.RecordSweep(cfg.Fingerprint(), sweep)

			if err := estLog.Close(); err != nil {
				log.Fatalf("Error: %v", err)
			}

			fmt.Printf("Recorded estimates to %s.sqlite3\n", logPath)
		}

		fmt.Printf("Analysis for %s written to %s\n",
			cfg.Fingerprint(), dir)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().String("config", "",
		"Configuration template name or JSON file")
	analyzeCmd.Flags().String("output", "", "Output directory")
	analyzeCmd.Flags().Bool("record", false,
		"Record the results into a SQLite database")
}
