// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/star-wars-characters/models"
)

// show: print one character's fields.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body models.CharacterBody
			if err := api.do(cmd.Context(), http.MethodGet, "/characters/"+url.PathEscape(args[0]), &body); err != nil {
				return err
			}

			keys := make([]string, 0, len(body.Character))
			for k := range body.Character {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			out := cmd.OutOrStdout()
			for _, k := range keys {
				fmt.Fprintf(out, "%s: %v\n", k, body.Character[k])
			}
			return nil
		},
	}
}
