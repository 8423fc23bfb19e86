package buildctx

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Loader assembles a build Context from layered configuration sources
type Loader struct{}

// NewLoader creates a new context loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadForBuild layers defaults, global config, local project config, and
// command flags, then materializes the immutable Context
func (l *Loader) LoadForBuild(cmd *cobra.Command) (*Context, error) {
	l.setupViperDefaults()
	l.loadGlobalConfig()
	l.bindCommandFlags(cmd)
	l.loadLocalConfig()

	return Load()
}

// setupViperDefaults sets up default values for viper
func (l *Loader) setupViperDefaults() {
	viper.SetDefault("build_type", DefaultBuildType)
	viper.SetDefault("firmware_version", DefaultFirmwareVersion)
	viper.SetDefault("verbose", DefaultVerbose)
}

// loadGlobalConfig loads global configuration from the user config directory
func (l *Loader) loadGlobalConfig() {
	confDir, err := os.UserConfigDir()
	if err != nil {
		return
	}

	globalDir := filepath.Join(confDir, "aerobuild")

	for _, ext := range []string{"yml", "yaml", "json", "toml"} {
		globalPath := filepath.Join(globalDir, "config."+ext)

		if _, err := os.Stat(globalPath); err == nil {
			viper.SetConfigFile(globalPath)

			if err := viper.ReadInConfig(); err == nil {
				break
			}
		}
	}
}

// loadLocalConfig loads project configuration found by walking up from the
// project directory. Runs after flag binding so the --project flag is
// honored, but config values it sets still lose to explicit flags.
func (l *Loader) loadLocalConfig() {
	dir := viper.GetString("project_dir")
	if dir == "" {
		dir = "."
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return // silently ignore, Load() will handle validation
	}

	localPath := FindLocalConfig(absDir)
	if localPath != "" {
		viper.SetConfigFile(localPath)

		if err := viper.MergeInConfig(); err == nil {
			return
		}

		_ = viper.ReadInConfig()
	}
}

// bindCommandFlags binds command flags to viper
func (l *Loader) bindCommandFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("project_dir", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("build_type", cmd.Flags().Lookup("build-type"))
	_ = viper.BindPFlag("defines", cmd.Flags().Lookup("define"))
	_ = viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
}
