// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/clearsol/clear-restake/amount"
	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/clearsol/clear-restake/restake"
)

var (
	restakeCMD = &cobra.Command{
		Use:   "restake [amount]",
		Short: "Restake an amount of SOL",
		Long: "Requests a deposit transaction from the Clear API, signs it with the configured " +
			"keypair and waits until it is confirmed",
		Args: cobra.MaximumNArgs(1),
		RunE: restakeAmount,
	}
)

var (
	maxAmount bool
)

func init() {
	restakeCMD.Flags().BoolVar(&maxAmount, "max", false, "restake the balance minus the fee reserve")
}

func restakeAmount(cmd *cobra.Command, args []string) error {
	services, closeFn, err := newServices(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	input := amount.NewInput()
	if maxAmount {
		balance, ok := services.Refresher.Balance()
		if !ok {
			return fmt.Errorf("balance unknown")
		}
		input.SetMax(balance)
	} else if len(args) == 1 {
		input.Change(args[0])
	}

	_, stateChn, unsubscribe := services.Orchestrator.Subscribe()
	defer unsubscribe()

	done, err := services.Orchestrator.Submit(cmd.Context(), input.Value())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	quoted := false
	for {
		select {
		case state := <-stateChn:
			{
				if _, ok := state.Quote(); ok && !quoted {
					quoted = true
					label, _ := services.Labels.Label()
					printConfirmation(out, restake.NewConfirmation(state, label))
				}
			}
		case err := <-done:
			{
				state := services.Orchestrator.State()
				if err != nil {
					return fmt.Errorf("failed to restake: %s", state.ErrorMessage())
				}

				sig, _ := state.Signature()
				fmt.Fprintf(out, "Restake successful\nTransaction: %s\n", sig)
				if balance, ok := services.Refresher.Balance(); ok {
					fmt.Fprintf(out, "Balance: %s SOL\n", amount.Format(balance, 4))
				}
				return nil
			}
		}
	}
}

func printConfirmation(out io.Writer, c *restake.Confirmation) {
	fmt.Fprintf(out, "Amount: %s SOL\n", c.Amount)
	if c.Receive != "" {
		fmt.Fprintf(out, "You will receive: %s %s\n", c.Receive, c.Symbol)
	}
	if c.APY != "" {
		fmt.Fprintf(out, "APY: %s\n", c.APY)
	}
}

func printLabel(out io.Writer, label *clear.ClearLabel) {
	fmt.Fprintf(out, "Name: %s\n", label.Metadata.Name)
	fmt.Fprintf(out, "Symbol: %s\n", label.TokenSymbol)
	fmt.Fprintf(out, "Mint: %s\n", label.Mint)
	fmt.Fprintf(out, "Bin: %s\n", label.Bin())
	fmt.Fprintf(out, "Yield: %v%% APY\n", label.YieldPercentage)
	if label.Metadata.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", label.Metadata.Description)
	}
	if label.Metadata.Image != "" {
		fmt.Fprintf(out, "Image: %s\n", label.Metadata.Image)
	}
}
