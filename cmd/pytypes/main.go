package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pytypes",
		Short:         "Inspect class hierarchies built on the pytypes object model",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	// Global flags
	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (default $HOME/.pytypes.yaml)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.StringP("output", "o", "text", "Output format (text or json)")
	flags.Bool("debug", false, "Log type construction to stderr")
	flags.Bool("no-suggestions", false, "Disable \"did you mean\" hints")
	if err := viper.BindPFlags(flags); err != nil {
		fatal(err)
	}
	_ = root.RegisterFlagCompletionFunc("output",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp
		})

	root.AddCommand(
		newMroCmd(),
		newGetattrCmd(),
		newCheckCmd(),
		newBuiltinsCmd(),
	)
	root.SetErr(os.Stderr)
	return root
}
