package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"transitch/pkg/api"
	"transitch/pkg/chio"
	"transitch/pkg/network"
	"transitch/pkg/routing"
)

func newServeCmd() *cobra.Command {
	var (
		networkPath string
		chPath      string
		algoName    string
		maxSpeed    float64
		addr        string
		corsOrigin  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve shortest-path queries over a preprocessed network",
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

			var router api.Router
			numEdges := 0
			if chPath != "" {
				log.Printf("Loading CH cache from %s...", chPath)
				result, err := chio.ReadBinary(chPath)
				if err != nil {
					return fmt.Errorf("read ch cache: %w", err)
				}
				router = api.CHRouter{Result: result}
				numEdges = len(result.Edges())
				log.Printf("Loaded CH cache: %d nodes", result.NumNodes)
			} else {
				algo, err := parseAlgorithm(algoName)
				if err != nil {
					return err
				}
				engine := routing.NewEngine(net, algo, maxSpeed)
				router = engine
				for _, id := range net.NodeIDs() {
					numEdges += len(net.AdjOut(id))
				}
			}

			cfg := api.DefaultConfig(addr)
			cfg.CORSOrigin = corsOrigin
			stats := api.StatsResponse{NumNodes: net.Len(), NumEdges: numEdges}
			handlers := api.NewHandlers(router, stats)
			srv := api.NewServer(cfg, handlers)

			log.Printf("Ready in %s", time.Since(start).Round(time.Millisecond))
			return api.ListenAndServe(srv)
		},
	}

	cmd.Flags().StringVar(&networkPath, "network", "network.json", "Path to persisted network JSON")
	cmd.Flags().StringVar(&chPath, "ch", "", "Path to a preprocessed CH binary cache (skips plain Dijkstra/A*)")
	cmd.Flags().StringVar(&algoName, "algo", "bidirectional", "Algorithm when --ch is unset: dijkstra|bidirectional|astar")
	cmd.Flags().Float64Var(&maxSpeed, "max-speed", 0, "Fastest edge speed (distance/time units), for astar's heuristic scaling")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	cmd.Flags().StringVar(&corsOrigin, "cors-origin", "", "CORS allowed origin (empty = same-origin)")

	return cmd
}

func parseAlgorithm(name string) (routing.Algorithm, error) {
	switch name {
	case "dijkstra":
		return routing.AlgoSingleDestination, nil
	case "bidirectional":
		return routing.AlgoBidirectional, nil
	case "astar":
		return routing.AlgoSpatialAStar, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q: want dijkstra|bidirectional|astar", name)
	}
}
