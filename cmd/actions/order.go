package main

import (
	"context"
	"fmt"

	"github.com/michael-freling/business-actions/internal/orders"
	"github.com/michael-freling/business-actions/pkg/action"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newOrderCmd(opts *rootOptions) *cobra.Command {
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Manage example orders",
		Long:  `Creates, inspects, cancels and dispatches orders stored as JSON files.`,
	}

	orderCmd.AddCommand(newOrderCreateCmd(opts))
	orderCmd.AddCommand(newOrderShowCmd(opts))
	orderCmd.AddCommand(newOrderListCmd(opts))
	orderCmd.AddCommand(newOrderActionCmd(opts, "cancel", "Cancel an order that has not been dispatched", cancelOrder))
	orderCmd.AddCommand(newOrderActionCmd(opts, "dispatch", "Dispatch a confirmed order with a settled payment", dispatchOrder))

	return orderCmd
}

func newOrderCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		status  string
		settled bool
		unpaid  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orderStatus, err := orders.ParseStatus(status)
			if err != nil {
				return err
			}

			var payment *orders.Payment
			if !unpaid {
				payment = &orders.Payment{Settled: settled}
			}

			order := orders.NewOrder(orderStatus, payment)
			if err := opts.store.Create(order); err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}

			zerolog.Ctx(cmd.Context()).Info().
				Str("order", order.ID).
				Str("status", string(order.Status)).
				Msg("order created")

			return opts.writeValue(cmd.OutOrStdout(), order, formatOrder(order))
		},
	}

	cmd.Flags().StringVar(&status, "status", string(orders.StatusPending), "initial order status")
	cmd.Flags().BoolVar(&settled, "settled", false, "mark the payment as settled")
	cmd.Flags().BoolVar(&unpaid, "unpaid", false, "create the order without a payment")
	cmd.MarkFlagsMutuallyExclusive("settled", "unpaid")

	return cmd
}

func newOrderShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := opts.store.Load(args[0])
			if err != nil {
				return err
			}
			return opts.writeValue(cmd.OutOrStdout(), order, formatOrder(order))
		},
	}
}

func newOrderListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.store.List()
			if err != nil {
				return err
			}

			if opts.output == outputJSON {
				if list == nil {
					list = []*orders.Order{}
				}
				return opts.writeValue(cmd.OutOrStdout(), list, "")
			}

			for _, order := range list {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), formatOrder(order)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// orderAction performs an action on a loaded order.
type orderAction func(ctx context.Context, order *orders.Order) (*orders.Order, error)

func cancelOrder(ctx context.Context, order *orders.Order) (*orders.Order, error) {
	cancel, err := orders.NewCancelOrder(order)
	if err != nil {
		return nil, err
	}
	return action.Perform(ctx, cancel)
}

func dispatchOrder(ctx context.Context, order *orders.Order) (*orders.Order, error) {
	dispatch, err := orders.NewDispatchOrder(order)
	if err != nil {
		return nil, err
	}
	return action.Perform(ctx, dispatch)
}

func newOrderActionCmd(opts *rootOptions, use, short string, perform orderAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Long:  short + `. All business rules are checked and every unsatisfied rule is reported; the order is left unchanged when any rule fails.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			order, err := opts.store.Update(args[0], func(order *orders.Order) error {
				_, err := perform(ctx, order)
				return err
			})
			if err != nil {
				opts.reportBlocked(cmd.ErrOrStderr(), err)
				return err
			}

			zerolog.Ctx(ctx).Info().
				Str("order", order.ID).
				Str("status", string(order.Status)).
				Msgf("order %s performed", use)

			return opts.writeValue(cmd.OutOrStdout(), order, formatOrder(order))
		},
	}
}

func formatOrder(order *orders.Order) string {
	payment := "none"
	if order.Payment != nil {
		payment = "unsettled"
		if order.Payment.Settled {
			payment = "settled"
		}
	}
	return fmt.Sprintf("%s\t%s\tpayment=%s", order.ID, order.Status, payment)
}
