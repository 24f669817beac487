package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/aretw0/smol"
	"github.com/spf13/cobra"
)

// rootCmd forwards every argument to the smol program; the demo application
// owns its own flag parsing and help.
var rootCmd = &cobra.Command{
	Use:                "smol-demo",
	Short:              "smol-demo is a sample smol application",
	Long:               `smol-demo runs one command when given arguments and opens an interactive shell otherwise.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := os.LookupEnv("SMOL_DEMO_CONFIG")
		a, err := newApplication(configPath)
		if err != nil {
			return err
		}
		return smol.New(a).Exec(cmd.Context(), args)
	},
}

// Execute runs the root command and exits with the program's status.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(smol.ExitStatus(os.Stderr, err))
}

func init() {
	// "help" and "completion" belong to the application, not to cobra.
	rootCmd.SetHelpCommand(&cobra.Command{Use: "cobra-help", Hidden: true})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
