package cmd

import (
	"fmt"

	"github.com/nfrund/bcard/internal/auth"
	"github.com/spf13/cobra"
)

func newThemeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the saved theme",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), c.theme())
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			next := auth.ThemeDark
			if c.theme() == auth.ThemeDark {
				next = auth.ThemeLight
			}
			c.state.Theme = next
			if err := c.save(cmd); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	})
	return cmd
}

func (c *cli) theme() string {
	if c.state.Theme == auth.ThemeDark {
		return auth.ThemeDark
	}
	return auth.ThemeLight
}
