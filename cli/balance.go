// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clearsol/clear-restake/amount"
)

var (
	balanceCMD = &cobra.Command{
		Use:   "balance",
		Short: "Print the wallet balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, closeFn, err := newServices(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			owner, ok := services.Wallet.PublicKey()
			if !ok {
				return fmt.Errorf("wallet not connected")
			}
			balance, ok := services.Refresher.Balance()
			if !ok {
				return fmt.Errorf("balance of %s unknown", owner)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wallet: %s\n", owner)
			fmt.Fprintf(out, "Balance: %s %s\n", amount.Format(balance, 4), services.Config.Token.Symbol)
			if m, ok := services.Refresher.Max(); ok {
				fmt.Fprintf(out, "Max: %s %s\n", m, services.Config.Token.Symbol)
			}
			return nil
		},
	}
)
