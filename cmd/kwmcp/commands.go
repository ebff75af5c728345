package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/formatter"
	"github.com/cloudnationhq/cpu-keywords-mcp/internal/util"
	"github.com/cloudnationhq/cpu-keywords-mcp/pkg/catalog"
)

func newGenerateCommand() *cobra.Command {
	var commaSeparated bool

	cmd := &cobra.Command{
		Use:   "generate [cpu-name]",
		Short: "Print the keywords generated for a CPU name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			exp := a.keywords.Expand(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			if commaSeparated {
				_, err = fmt.Fprintln(out, strings.Join(exp.Keywords, ","))
				return err
			}
			_, err = fmt.Fprint(out, formatter.KeywordSummary(exp))
			return err
		},
	}
	cmd.Flags().BoolVar(&commaSeparated, "comma", false, "Print keywords on one comma separated line")
	return cmd
}

func newDuplicateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate [tags]",
		Short: "Add Arabic-Indic digit copies to a comma separated tag list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sanitized []string
			for _, t := range util.SplitTags(strings.Join(args, ",")) {
				if t = util.SanitizeTag(t); t != "" {
					sanitized = append(sanitized, t)
				}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(util.ArabicNumeralDuplicates(sanitized), ","))
			return err
		},
	}
}

func newSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the configured catalog by any keyword variant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			if err := a.seedIndex(ctx); err != nil {
				return err
			}

			if limit <= 0 {
				limit = a.cfg.SearchLimit
			}
			res, err := a.indexer.Search(ctx, catalog.SearchQuery{Query: strings.Join(args, " "), Limit: limit})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.SearchResults(res))
			return err
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (default: search_limit)")
	return cmd
}
