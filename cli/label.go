// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	labelCMD = &cobra.Command{
		Use:   "label",
		Short: "Print the deposit target label",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, closeFn, err := newServices(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			label, ok := services.Labels.Label()
			if !ok {
				return fmt.Errorf("label %s not available", services.Config.LabelAddress)
			}

			printLabel(cmd.OutOrStdout(), label)
			return nil
		},
	}
)
