/*
Copyright © 2026 tempo authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tempo/config"
)

var (
	cfgFile  string
	dataFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tempo",
	Short: "Log free-text activities with durations and turn them into calendar reports.",
	Long: `tempo keeps a single-user, append-only log of timed activities in a JSON
data file, aggregates it into daily/weekly/monthly/yearly reports with simple
heuristic suggestions, exports the data in several formats, and offers a
brainstorm note mode with follow-up prompts.

The data file location is resolved from the --data flag, then the TEMPO_DATA
environment variable, then storage.path in the config, then
$HOME/.tempo/data.json.`,
	Example: `
  # Log an activity with a duration shorthand
  tempo log "write report for 45m note: status update"

  # Log via the configured speech recognizer
  tempo log --voice

  # Today's aggregation
  tempo summary

  # Reports for calendar periods
  tempo report weekly
  tempo report monthly --date 2026-02-14

  # Export the full data set
  tempo export json ./backup.json
  tempo export ./worklog.csv

  # Capture ideas and get five follow-up prompts
  tempo brainstorm "Focus" "fewer meetings" "deep work blocks"
`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Input errors exit 2, everything else exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.tempo.yaml, then ./.tempo.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Data file override (fallbacks: $TEMPO_DATA, storage.path, $HOME/.tempo/data.json)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tempo" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tempo")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Missing config file is fine; all keys have defaults.
	_ = viper.ReadInConfig()
}
