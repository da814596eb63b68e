package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sarchlab/sramgen/compiler"
	"github.com/sarchlab/sramgen/sram/power"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Run all estimators and generate Verilog for one configuration.",
	Run: func(cmd *cobra.Command, args []string) {
		configArg, _ := cmd.Flags().GetString("config")
		if configArg == "" {
			log.Fatal("Error: a configuration is required, " +
				"use --config <template-name|file.json>")
		}

		activity, _ := cmd.Flags().GetFloat64("activity")
		dir := outputDir(cmd)

		cfg, err := loadConfig(configArg)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		c := compiler.New(cfg)

		rtlDir := filepath.Join(dir, "rtl")
		res, err := c.Compile(rtlDir, activity)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		if err := writeJSONFile(dir, "compile_result.json", res); err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Printf("Compiled %s\n", cfg.Fingerprint())
		for _, a := range res.Artifacts {
			fmt.Printf("  %s\n", filepath.Join(rtlDir, a))
		}
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().String("config", "",
		"Configuration template name or JSON file")
	compileCmd.Flags().String("output", "", "Output directory")
	compileCmd.Flags().Float64("activity", power.DefaultActivityFactor,
		"Activity factor for the power estimate")
}
