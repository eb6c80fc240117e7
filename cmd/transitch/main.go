// Command transitch ingests a transit network from NDJSON dumps, builds its
// shortest-path graph, and serves or analyzes it.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transitch",
		Short: "Shortest-path engine for transit networks",
	}

	rootCmd.AddCommand(newPreprocessCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
