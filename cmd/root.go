// Package cmd is for command line interactions with the numtscan application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "numtscan",
	Short: `Classify NUMT catalog records by how they overlap a mitochondrial query region.
Writes a spreadsheet report and a track figure`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig reads in an optional .numtscan settings file. Flags bound
// through viper take precedence over the file.
func initConfig() {
	viper.SetConfigName(".numtscan")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // no file is fine, flags carry the defaults
}
