package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"transitch/pkg/builder"
	"transitch/pkg/ch"
	"transitch/pkg/chio"
	"transitch/pkg/ingest"
	"transitch/pkg/network"
)

func newPreprocessCmd() *cobra.Command {
	var (
		stopsPath      string
		variantsPath   string
		pathsPath      string
		membershipPath string
		configPath     string
		networkOut     string
		contract       bool
		chOut          string
	)

	cmd := &cobra.Command{
		Use:   "preprocess",
		Short: "Build a network from NDJSON dumps and optionally contract it",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			cfg := ingest.DefaultConfig()
			if configPath != "" {
				data, err := os.ReadFile(configPath)
				if err != nil {
					return fmt.Errorf("read config: %w", err)
				}
				cfg, err = ingest.LoadConfig(data)
				if err != nil {
					return err
				}
			}

			stopsFile, err := os.Open(stopsPath)
			if err != nil {
				return fmt.Errorf("open stops: %w", err)
			}
			defer stopsFile.Close()
			variantsFile, err := os.Open(variantsPath)
			if err != nil {
				return fmt.Errorf("open variants: %w", err)
			}
			defer variantsFile.Close()
			pathsFile, err := os.Open(pathsPath)
			if err != nil {
				return fmt.Errorf("open paths: %w", err)
			}
			defer pathsFile.Close()
			membershipFile, err := os.Open(membershipPath)
			if err != nil {
				return fmt.Errorf("open membership: %w", err)
			}
			defer membershipFile.Close()

			membership, err := ingest.NewNDJSONMembership(membershipFile)
			if err != nil {
				return fmt.Errorf("parse membership: %w", err)
			}

			log.Println("Building network from NDJSON sources...")
			net, err := ingest.BuildNetwork(
				builder.Config{Backend: cfg.SpatialBackend, BoxSize: cfg.BoxSize},
				ingest.NewNDJSONStopProvider(stopsFile),
				ingest.NewNDJSONVariantProvider(variantsFile),
				ingest.NewNDJSONPathProvider(pathsFile),
				membership,
			)
			if err != nil {
				return fmt.Errorf("build network: %w", err)
			}
			log.Printf("Network built: %d stops", net.Len())

			log.Println("Extracting largest connected component...")
			component := network.LargestComponent(net)
			log.Printf("Largest component: %d of %d stops", len(component), net.Len())
			net = network.FilterToComponent(net, component)

			if err := writeNetworkJSON(networkOut, net); err != nil {
				return err
			}
			log.Printf("Wrote network to %s", networkOut)

			if contract {
				log.Println("Running Contraction Hierarchies...")
				result := ch.Contract(net, ch.Config{
					Heuristic:     cfg.CHHeuristic,
					LocalSteps:    cfg.LocalSteps,
					PeriodicBatch: cfg.PeriodicBatch,
					RandomSeed:    1,
				})
				log.Printf("Contracted %d nodes", result.NumNodes)

				if err := chio.WriteBinary(chOut, result); err != nil {
					return fmt.Errorf("write ch cache: %w", err)
				}
				log.Printf("Wrote CH cache to %s", chOut)
			}

			log.Printf("Done in %s", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&stopsPath, "stops", "", "Path to stops NDJSON file")
	cmd.Flags().StringVar(&variantsPath, "variants", "", "Path to variants NDJSON file")
	cmd.Flags().StringVar(&pathsPath, "paths", "", "Path to paths NDJSON file")
	cmd.Flags().StringVar(&membershipPath, "membership", "", "Path to route membership NDJSON file")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
	cmd.Flags().StringVar(&networkOut, "output", "network.json", "Output network JSON file path")
	cmd.Flags().BoolVar(&contract, "ch", false, "Run Contraction Hierarchies preprocessing")
	cmd.Flags().StringVar(&chOut, "ch-output", "ch.bin", "Output CH binary cache path (with --ch)")
	for _, name := range []string{"stops", "variants", "paths", "membership"} {
		cmd.MarkFlagRequired(name)
	}

	return cmd
}

func writeNetworkJSON(path string, net *network.Network[network.Stop]) error {
	data, err := network.MarshalNetwork(net)
	if err != nil {
		return fmt.Errorf("marshal network: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write network: %w", err)
	}
	return nil
}
