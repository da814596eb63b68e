package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sarchlab/sramgen/compiler"
	"github.com/sarchlab/sramgen/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve [report.json]",
	Short: "Serve a previously written comparison report over HTTP.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := filepath.Join(outputDir(cmd), "comparison_report.json")
		if len(args) == 1 {
			path = args[0]
		}

		results, err := loadReport(path)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

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

		url, err := server.StartServer()
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Printf("Serving %d results at %s\n", len(results), url)

		select {}
	},
}

// loadReport reads a comparison report back into results. Each embedded
// configuration is revalidated while decoding.
func loadReport(path string) ([]compiler.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	var results []compiler.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", path, err)
	}

	return results, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("output", "", "Output directory")
	serveCmd.Flags().Int("port", 0, "Port for the report server")
	serveCmd.Flags().Bool("open", false,
		"Open the report in the default browser")
}
