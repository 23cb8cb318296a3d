package main

import (
	"github.com/michael-freling/business-actions/internal/text"
	"github.com/michael-freling/business-actions/pkg/action"
	"github.com/spf13/cobra"
)

func newReverseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <text>",
		Short: "Reverse a string",
		Long:  `Performs the reverse-string action, which has no business rules, and prints the result.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reverse, err := text.NewReverseString(args[0])
			if err != nil {
				return err
			}

			reversed, err := action.Perform(cmd.Context(), reverse)
			if err != nil {
				return err
			}

			return opts.writeValue(cmd.OutOrStdout(), map[string]string{"result": reversed}, reversed)
		},
	}
}
