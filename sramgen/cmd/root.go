// Package cmd provides the command-line interface of the SRAM compiler.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/sramgen/compiler"
	"github.com/sarchlab/sramgen/sram"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "sramgen",
	Short: "sramgen estimates area, timing, and power of parameterized " +
		"SRAM macros and generates their Verilog description.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env file may set SRAMGEN_OUTPUT; absence is not an error.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// outputDir resolves the output directory from the flag, falling back to
// the SRAMGEN_OUTPUT environment variable and then to "output".
func outputDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("output")
	if dir != "" {
		return dir
	}

	if env := os.Getenv("SRAMGEN_OUTPUT"); env != "" {
		return env
	}

	return "output"
}

// loadConfig resolves a configuration argument: a path to a JSON record
// when it ends in .json, a built-in template name otherwise.
func loadConfig(arg string) (sram.Config, error) {
	if strings.HasSuffix(arg, ".json") {
		data, err := os.ReadFile(arg)
		if err != nil {
			return sram.Config{}, fmt.Errorf(
				"reading configuration file: %w", err)
		}

		return sram.DecodeConfig(data)
	}

	return compiler.TemplateConfig(arg)
}

func writeJSONFile(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
