package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/michael-freling/business-actions/internal/config"
	"github.com/michael-freling/business-actions/internal/logging"
	"github.com/michael-freling/business-actions/internal/orders"
	"github.com/michael-freling/business-actions/pkg/action"
	"github.com/spf13/cobra"
)

const (
	exitError   = 1
	exitBlocked = 2

	outputText = "text"
	outputJSON = "json"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		if !errors.Is(err, action.ErrRulesNotSatisfied) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code.
// Unsatisfied business rules exit with 2.
func exitCode(err error) int {
	if errors.Is(err, action.ErrRulesNotSatisfied) {
		return exitBlocked
	}
	return exitError
}

// rootOptions holds the settings shared by all subcommands.
type rootOptions struct {
	ordersDir string
	logLevel  string
	output    string

	store orders.Store
}

func newRootCmd(store orders.Store) *cobra.Command {
	opts := &rootOptions{store: store}

	rootCmd := &cobra.Command{
		Use:           "actions",
		Short:         "Run business actions guarded by business rules",
		Long:          `A CLI that performs example business actions. Every action checks all of its business rules first and reports each unsatisfied rule. Exits with code 2 when an action is blocked by its rules.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.ordersDir, "orders-dir", "", "directory holding order files (env "+config.EnvOrdersDir+")")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")

	rootCmd.AddCommand(newReverseCmd(opts))
	rootCmd.AddCommand(newOrderCmd(opts))

	return rootCmd
}

// setup resolves configuration, attaches the logger to the command context and opens the store.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.output != outputText && o.output != outputJSON {
		return fmt.Errorf("unsupported output format %q", o.output)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.ordersDir == "" {
		o.ordersDir = cfg.OrdersDir
	}
	if o.logLevel == "" {
		o.logLevel = cfg.LogLevel
	}

	logger, err := logging.NewConsole(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return err
	}
	cmd.SetContext(logger.WithContext(cmd.Context()))

	if o.store == nil {
		o.store = orders.NewStore(o.ordersDir)
	}

	return nil
}

// writeValue prints v in the selected output format.
func (o *rootOptions) writeValue(w io.Writer, v any, text string) error {
	if o.output == outputJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

// reportBlocked prints every unsatisfied rule of err, if err carries any.
func (o *rootOptions) reportBlocked(w io.Writer, err error) {
	var notSatisfied *action.RulesNotSatisfiedError
	if !errors.As(err, &notSatisfied) {
		return
	}

	if o.output == outputJSON {
		_ = o.writeValue(w, struct {
			Error      string             `json:"error"`
			Violations []action.Violation `json:"violations"`
		}{
			Error:      notSatisfied.Error(),
			Violations: notSatisfied.Violations(),
		}, "")
		return
	}

	fmt.Fprintln(w, "Blocked by business rules:")
	for _, message := range notSatisfied.FailingRulesMessages() {
		fmt.Fprintf(w, "  - %s\n", message)
	}
}
