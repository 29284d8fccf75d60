package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// Version information (set by build flags).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// fileConfig is the shape of the optional .jfes.yaml config file: default
// CLI behavior a user doesn't want to repeat on every invocation.
type fileConfig struct {
	Strict      bool `yaml:"strict"`
	IndentWidth int  `yaml:"indentWidth"`
	PoolSize    int  `yaml:"poolSize"`
}

var loadedConfig fileConfig

var (
	strictFlag bool
	indentFlag int
)

var rootCmd = &cobra.Command{
	Use:   "jfes",
	Short: "Tokenize, inspect, and edit JSON with the jfes library",
	Long: `jfes is a demonstration CLI around the github.com/cwbudde/go-jfes library:
an embedded-style JSON tokenizer and DOM, built for caller-supplied memory
allocation and O(1) scratch scanner state.

This CLI is not part of the library's core contract; it is a thin
showcase of tokenize/parse/get/set/format operations.`,
	Version:           Version,
	PersistentPreRunE: loadFileConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "use strict-mode scanner framing")
	rootCmd.PersistentFlags().IntVar(&indentFlag, "indent", 4, "pretty-print indentation width")
}

// loadFileConfig reads .jfes.yaml from the working directory, if present,
// and uses it to seed defaults for flags the user didn't explicitly set.
func loadFileConfig(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(".jfes.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading .jfes.yaml: %w", err)
	}

	if err := yaml.Unmarshal(data, &loadedConfig); err != nil {
		return fmt.Errorf("parsing .jfes.yaml: %w", err)
	}

	if !cmd.Flags().Changed("strict") && loadedConfig.Strict {
		strictFlag = true
	}
	if !cmd.Flags().Changed("indent") && loadedConfig.IndentWidth > 0 {
		indentFlag = loadedConfig.IndentWidth
	}
	if !cmd.Flags().Changed("pool-size") && loadedConfig.PoolSize > 0 {
		tokenizePoolSize = loadedConfig.PoolSize
	}
	return nil
}
