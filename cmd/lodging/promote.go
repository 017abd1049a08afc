package main

import (
	"fmt"

	"lodging/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <username>",
		Short: "Grant the admin role to an existing customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var customers usecase.CustomerUsecase
			stop, err := startOnce(ctx,
				injectInfra(),
				injectRepo(),
				injectService(),
				injectUsecase(),
				fx.Populate(&customers),
			)
			if err != nil {
				return err
			}
			defer stop()

			customer, err := customers.Promote(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now %s\n", customer.Username, customer.ID, customer.Role)

			return nil
		},
	}
}
