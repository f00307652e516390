// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/star-wars-characters/models"
)

// fetch: trigger a character fetch on the server.
func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Ask the server to fetch the character list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var st models.StateResponse
			if err := api.do(cmd.Context(), http.MethodPost, "/fetch", &st); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "fetch started")
			return nil
		},
	}
}
