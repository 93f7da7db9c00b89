package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/csheth/sessionnote/internal/options"
)

func newOptionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List or add the phrases offered by the pickers",
	}
	cmd.AddCommand(newOptionsListCmd(app))
	cmd.AddCommand(newOptionsAddCmd(app))
	return cmd
}

func categoryArgs() []string {
	keys := make([]string, 0, len(options.Categories()))
	for _, c := range options.Categories() {
		keys = append(keys, c.Key)
	}
	return keys
}

func lookupCategory(key string) (options.Category, error) {
	c, ok := options.Lookup(key)
	if !ok {
		return options.Category{}, fmt.Errorf("unknown category %q (want one of: %s)", key, strings.Join(categoryArgs(), ", "))
	}
	return c, nil
}

func newOptionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "list <category>",
		Short:     "Print the built-in and custom options of a category",
		Args:      cobra.ExactArgs(1),
		ValidArgs: categoryArgs(),
		Example: `
sessionnote options list interventions
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookupCategory(args[0])
			if err != nil {
				return err
			}
			st, err := app.Store(cmd.Context())
			if err != nil {
				return err
			}
			custom := map[string]bool{}
			for _, opt := range st.Custom(c.Key) {
				custom[opt.ID] = true
			}

			out := cmd.OutOrStdout()
			heading := color.New(color.Bold, color.Underline)
			for i, group := range options.GroupBy(st.Merged(c)) {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, heading.Sprint(group.Name))
				tbl := uitable.New()
				tbl.Separator = "  "
				tbl.Wrap = true
				tbl.MaxColWidth = 80
				for _, opt := range group.Options {
					source := ""
					if custom[opt.ID] {
						source = "custom"
					}
					tbl.AddRow(opt.ID, opt.Label, source)
				}
				fmt.Fprintln(out, tbl)
			}
			return nil
		},
	}
}

func newOptionsAddCmd(app *App) *cobra.Command {
	group := ""
	cmd := &cobra.Command{
		Use:   "add <category> <label>",
		Short: "Add a custom option to a category",
		Args:  cobra.ExactArgs(2),
		Example: `
sessionnote options add interventions "Narrative reframing" --group General
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookupCategory(args[0])
			if err != nil {
				return err
			}
			st, err := app.Store(cmd.Context())
			if err != nil {
				return err
			}
			opt, ok := st.Create(c, args[1], group)
			if !ok {
				return fmt.Errorf("label must not be blank")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s\n", opt.ID, opt.Label)
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "group to file the option under")
	return cmd
}
