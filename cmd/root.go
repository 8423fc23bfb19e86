package cmd

import (
	"fmt"
	"os"

	"github.com/aerogrow/aerobuild/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:          "aerobuild",
	Short:        "Build pipeline for AeroEnv/AeroLiquid firmware",
	Long:         `Generates build metadata, validates project layout, and packages firmware for the AeroEnv and AeroLiquid device variants.`,
	RunE:         runPre,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version.Version, version.Commit, version.BuildTime)
	rootCmd.PersistentFlags().StringP("project", "p", "", "Firmware project directory")
	rootCmd.PersistentFlags().StringSliceP("define", "D", []string{}, "Preprocessor definitions (NAME or NAME=VALUE)")
	rootCmd.PersistentFlags().StringP("build-type", "t", "", "Build type label (e.g., debug, release)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.AddCommand(preCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)

	viper.SetDefault("build_type", "debug")
	viper.SetDefault("firmware_version", "1.0.0")
	viper.SetDefault("verbose", false)
}
