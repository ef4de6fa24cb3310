// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/clearsol/clear-restake/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run the restake session API",
		Long:  "Serves the session API that a front end uses to restake, follow the status and read the balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}
)
