package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-racer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default race configuration",
	Long: `Print the built-in race configuration as YAML.

Save it to ~/.racer/configs/race.yaml or ./configs/race.yaml and edit
the values you want to change; keys you leave out keep their defaults.

Examples:
  racer config > ~/.racer/configs/race.yaml
  racer config path`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which config file is in use",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if path := config.ResolvePath(""); path != "" {
			fmt.Println(path)
		} else {
			fmt.Println("(built-in default)")
		}
		fmt.Println()
		fmt.Println("Search order:")
		for _, p := range config.SearchPaths() {
			fmt.Printf("  %s\n", p)
		}
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
}
