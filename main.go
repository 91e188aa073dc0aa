package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/ms-henglu/logtree/cmd"
	"github.com/ms-henglu/logtree/internal/log"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "logtree",
		Short:         "Styled tree rendering for hierarchical logs " + version,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.SetOut(color.Output)

	rootCmd.AddCommand(cmd.NewRenderCmd())
	rootCmd.AddCommand(cmd.NewDemoCmd())
	rootCmd.AddCommand(cmd.NewVendorCmd())
	rootCmd.AddCommand(cmd.NewCleanCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
