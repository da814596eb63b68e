package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sarchlab/sramgen/compiler"
	"github.com/sarchlab/sramgen/sram/power"
	"github.com/sarchlab/sramgen/web"
)

var compareCmd = &cobra.Command{
	Use:   "compare <config> <config> ...",
	Short: "Compare estimates across multiple configurations.",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		dir := outputDir(cmd)

		var results []compiler.Result
		sweeps := make(map[string][]compiler.SweepPoint)

		for _, arg := range args {
			cfg, err := loadConfig(arg)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}

			c := compiler.New(cfg)

			res, err := c.Analyze(power.DefaultActivityFactor)
			if err != nil {
				log.Fatalf("Error analyzing %s: %v", arg, err)
			}

			sweep, err := c.PowerSweep(nil)
			if err != nil {
				log.Fatalf("Error sweeping %s: %v", arg, err)
			}

			results = append(results, res)
			sweeps[cfg.Fingerprint()] = sweep
		}

		err := writeJSONFile(dir, "comparison_report.json", results)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Printf("Comparison of %d configurations written to %s\n",
			len(results), dir)

		if serve, _ := cmd.Flags().GetBool("serve"); serve {
			server := web.NewServer()

			if port, _ := cmd.Flags().GetInt("port"); port != 0 {
				server = server.WithPortNumber(port)
			}

			if open, _ := cmd.Flags().GetBool("open"); open {
				server = server.WithBrowser()
			}

			for _, res := range results {
				server.AddResult(res)
			}
			for fp, sweep := range sweeps {
				server.AddSweep(fp, sweep)
			}

			if _, err := server.StartServer(); err != nil {
				log.Fatalf("Error: %v", err)
			}

			select {}
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().String("output", "", "Output directory")
	compareCmd.Flags().Bool("serve", false,
		"Serve the comparison report over HTTP")
	compareCmd.Flags().Bool("open", false,
		"Open the served report in the default browser")
	compareCmd.Flags().Int("port", 0, "Port for the report server")
}
