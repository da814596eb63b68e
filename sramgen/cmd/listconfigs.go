package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sarchlab/sramgen/compiler"
)

var listConfigsCmd = &cobra.Command{
	Use:   "list-configs",
	Short: "List the built-in configuration templates.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range compiler.TemplateNames() {
			cfg, err := compiler.TemplateConfig(name)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}

			fmt.Printf("  %s: %dx%d, %d banks, %dnm, %.2fV\n",
				name, cfg.Depth, cfg.Width, cfg.Banks,
				cfg.ProcessNode, cfg.Voltage)
		}
	},
}

func init() {
	rootCmd.AddCommand(listConfigsCmd)
}
