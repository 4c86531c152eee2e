package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/askidmobile/transcriptcore/internal/config"
	"github.com/askidmobile/transcriptcore/internal/logging"
)

var (
	cfgFile string
	pretty  bool
)

// RootCommand builds the projectctl command tree.
func RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "projectctl",
		Short: "Operate on transcript project packages from the command line",
	}
	root.SilenceUsage = true

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config search directory (default: cwd)")
	root.PersistentFlags().BoolVar(&pretty, "pretty", true, "use human-readable console logging instead of JSON")

	root.AddCommand(
		importCommand(),
		applyCommand(),
		edlCommand(),
		saveCommand(),
		loadCommand(),
		serveCommand(),
		historyCommand(),
	)
	return root
}

func loadSettings() (config.Settings, error) {
	v := viper.New()
	var paths []string
	if cfgFile != "" {
		paths = append(paths, cfgFile)
	}
	return config.Load(v, paths...)
}

func newLogger(settings config.Settings) zerolog.Logger {
	return logging.New(settings.LogLevel, pretty)
}
