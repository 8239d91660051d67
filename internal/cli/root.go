package cli

import (
	"github.com/dmitrijs2005/monju/internal/buildinfo"
	"github.com/dmitrijs2005/monju/internal/common"
	"github.com/spf13/cobra"
)

// globalFlags mirror the flags read by the config package before cobra
// runs. They are declared here so cobra accepts them and lists them in help.
type globalFlags struct {
	config    string
	data      string
	backend   string
	logLevel  string
	logFormat string
}

func (a *App) rootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:           common.AppName,
		Short:         "Monju - shared knowledge notes",
		Long:          `Monju stores short knowledge notes grouped by topic, lets you search them and vote the useful ones up.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&g.config, "config", "c", "", "path to a JSON or YAML config file")
	pf.StringVarP(&g.data, "data", "d", a.config.DataFile, "path of the backing file")
	pf.StringVarP(&g.backend, "backend", "b", a.config.Backend, "storage backend: json or sqlite")
	pf.StringVarP(&g.logLevel, "log-level", "l", a.config.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&g.logFormat, "log-format", a.config.LogFormat, "log format: auto, text, json")

	root.AddCommand(a.addCmd())
	root.AddCommand(a.listCmd())
	root.AddCommand(a.searchCmd())
	root.AddCommand(a.voteCmd())
	root.AddCommand(a.versionCmd())

	return root
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}
