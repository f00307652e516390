// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/star-wars-characters/models"
)

// actions: list the most recent journaled actions.
func actionsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List recently applied actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp models.ActionsResponse
			path := "/actions?limit=" + strconv.Itoa(limit)
			if err := api.do(cmd.Context(), http.MethodGet, path, &resp); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range resp.Entries {
				line := fmt.Sprintf("%s  #%d  %-17s  characters=%d",
					e.DispatchedAt.Local().Format(time.DateTime), e.Seq, e.Type, e.CharacterCount)
				if e.Error != nil {
					line += "  error=" + strconv.Quote(*e.Error)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show")
	return cmd
}
