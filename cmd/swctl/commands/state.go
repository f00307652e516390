// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/star-wars-characters/models"
)

// state: print the characters, loading flag, and error.
func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the server's current state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var st models.StateResponse
			if err := api.do(cmd.Context(), http.MethodGet, "/state", &st); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "loading: %t\n", st.Loading)
			if st.Error != nil {
				fmt.Fprintf(out, "error: %s\n", *st.Error)
			}
			fmt.Fprintf(out, "characters: %d\n", len(st.Characters))
			for _, c := range st.Characters {
				fmt.Fprintf(out, "  %s\t%s\n", c.ID(), c.Name())
			}
			return nil
		},
	}
}
