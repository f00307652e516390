// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:3318"

var (
	serverURL string
	api       *serverClient
)

// Execute runs swctl with os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "swctl",
		Short:        "Drive a Star Wars Characters server from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if serverURL == "" {
				serverURL = os.Getenv("SWCHARS_SERVER")
			}
			if serverURL == "" {
				serverURL = defaultServer
			}
			api = &serverClient{base: serverURL, http: http.DefaultClient}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "server base URL (default "+defaultServer+")")

	root.AddCommand(fetchCmd(), stateCmd(), showCmd(), actionsCmd())
	return root
}
