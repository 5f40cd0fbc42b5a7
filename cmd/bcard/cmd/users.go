package cmd

import (
	"fmt"

	"github.com/nfrund/bcard/cmd/bcard/internal/format"
	"github.com/spf13/cobra"
)

func newUsersCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administer user accounts (admin only)",
		Long: `The sandbox actions of the web application. Admin accounts are listed
but can be neither changed nor deleted.`,
	}
	cmd.AddCommand(newUsersListCmd(c), newUsersToggleBusinessCmd(c), newUsersDeleteCmd(c))
	return cmd
}

func newUsersListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.users().List(c.ctx(cmd), c.session())
			if err != nil {
				return explain(err)
			}
			if c.format == "json" {
				return format.JSON(cmd.OutOrStdout(), users)
			}
			format.UsersTable(cmd.OutOrStdout(), users)
			return nil
		},
	}
}

func newUsersToggleBusinessCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-business <id>",
		Short: "Switch a user between normal and business",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.users().ToggleBusiness(c.ctx(cmd), c.session(), args[0])
			if err != nil {
				return explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", user.Name.Full(), user.Status())
			return nil
		},
	}
}

func newUsersDeleteCmd(c *cli) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "Are you sure you want to delete this user?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			if err := c.users().Delete(c.ctx(cmd), c.session(), args[0]); err != nil {
				return explain(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "User deleted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
