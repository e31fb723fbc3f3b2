package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ridequeue/ridequeue-sim/sim/scenario"
)

// scenariosCmd lists the resolved scenario catalog
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the available scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := loadRegistry(scenariosPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := listScenarios(os.Stdout, registry); err != nil {
			logrus.Fatalf("Listing scenarios: %v", err)
		}
	},
}

// loadRegistry returns the built-in scenarios extended by the catalog at path, if any.
func loadRegistry(path string) (*scenario.Registry, error) {
	registry := scenario.NewRegistry()
	if path == "" {
		return registry, nil
	}
	configs, err := scenario.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := registry.Add(configs...); err != nil {
		return nil, fmt.Errorf("scenarios %s: %w", path, err)
	}
	logrus.Infof("Loaded %d scenarios from %s", len(configs), path)
	return registry, nil
}

func listScenarios(w io.Writer, registry *scenario.Registry) error {
	for _, label := range registry.Labels() {
		c, err := registry.Resolve(label)
		if err != nil {
			return err
		}
		dist := c.Distribution
		if dist == "" {
			dist = "gaussian"
		}
		if _, err := fmt.Fprintf(w, "%-20s %-11s mean=%6.1fs stddev=%5.1fs  %s\n",
			c.Label, dist, c.MeanInterArrival, c.InterArrivalStdDev, c.Description); err != nil {
			return err
		}
	}
	return nil
}
