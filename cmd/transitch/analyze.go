package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"transitch/pkg/betweenness"
	"transitch/pkg/network"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		networkPath string
		algoName    string
		top         int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute betweenness centrality over a preprocessed network",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			data, err := os.ReadFile(networkPath)
			if err != nil {
				return fmt.Errorf("read network: %w", err)
			}
			net, err := network.UnmarshalNetwork(data)
			if err != nil {
				return fmt.Errorf("unmarshal network: %w", err)
			}
			log.Printf("Loaded network: %d stops", net.Len())

			var algo betweenness.Algorithm
			switch algoName {
			case "tree":
				algo = betweenness.AlgoTree
			case "brute":
				algo = betweenness.AlgoBrute
			default:
				return fmt.Errorf("unknown algorithm %q: want tree|brute", algoName)
			}

			log.Printf("Computing betweenness (%s)...", algoName)
			result := betweenness.From(net, algo)
			log.Printf("Done in %s", time.Since(start).Round(time.Millisecond))

			ids, err := result.TopScores(top)
			if err != nil {
				return fmt.Errorf("top scores: %w", err)
			}
			for rank, id := range ids {
				fmt.Printf("%3d. stop %d  score %.2f\n", rank+1, id, result.Score(id))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&networkPath, "network", "network.json", "Path to persisted network JSON")
	cmd.Flags().StringVar(&algoName, "algo", "tree", "Betweenness algorithm: tree|brute")
	cmd.Flags().IntVar(&top, "top", 10, "Number of top-scoring stops to print")

	return cmd
}
