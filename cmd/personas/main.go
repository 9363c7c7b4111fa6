package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"persona-registry/cmd/personas/app"
	"persona-registry/cmd/personas/server"
)

var configPath string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "personas",
	Short: "Keep a validated list of people",
	Long: `personas keeps an ordered list of people (name, surname, age).

Every entry is validated before it is stored and duplicates are rejected.
Run without arguments to start the terminal form.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the terminal form",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the registry as a JSON API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	defaultConfigPath := os.Getenv("CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "."
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Directory containing app.env (or set CONFIG_PATH)")
	rootCmd.PersistentFlags().String("form-mode", "", "Form layout: inline or modal (or set FORM_MODE)")
	rootCmd.PersistentFlags().String("edit-mode", "", "Edit commit: atomic or reinsert (or set EDIT_MODE)")
	serveCmd.Flags().String("port", "", "HTTP port (or set HTTP_PORT)")

	// Flags win over environment and app.env when set
	_ = viper.BindPFlag("FORM_MODE", rootCmd.PersistentFlags().Lookup("form-mode"))
	_ = viper.BindPFlag("EDIT_MODE", rootCmd.PersistentFlags().Lookup("edit-mode"))
	_ = viper.BindPFlag("HTTP_PORT", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	a, err := app.New(app.Options{ConfigPath: configPath, Interactive: true})
	if err != nil {
		return err
	}
	return a.RunTUI(cmd.Context())
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := server.WithSignal(cmd.Context())
	defer stop()

	a, err := app.New(app.Options{ConfigPath: configPath})
	if err != nil {
		return err
	}
	return a.RunServe(ctx)
}
