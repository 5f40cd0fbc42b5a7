package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/nfrund/bcard/cmd/bcard/internal/format"
	"github.com/nfrund/bcard/internal/apiclient"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/validation"
	"github.com/spf13/cobra"
)

func newLoginCmd(c *cli) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the access token",
		Long: `Log in with an email and password. The password is read from stdin when
--password is omitted, so it stays out of the shell history:

  bcard login --email ada@example.com < password.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("password required: pass --password or pipe it on stdin")
				}
				password = strings.TrimSpace(line)
			}

			form := validation.LoginForm{Email: strings.TrimSpace(email), Password: password}
			if errs := validation.New().Check(form); errs != nil {
				return errs
			}

			token, err := c.api.Login(cmd.Context(), form.Credentials())
			if err != nil {
				return explainLogin(err)
			}
			sess := auth.NewSession(token)
			if !sess.IsAuthenticated {
				return errors.New("login failed: the API returned an unusable token")
			}

			c.state.Token = token
			if err := c.save(cmd); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", sess.UserID(), sess.Role())
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// explainLogin keeps the API's reason for refusing credentials.
func explainLogin(err error) error {
	return fmt.Errorf("login failed: %s", apiclient.Message(err, explain(err).Error()))
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.state.Token = ""
			if err := c.save(cmd); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who the saved token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := c.session()
			out := cmd.OutOrStdout()
			if c.format == "json" {
				return format.JSON(out, map[string]any{
					"authenticated": sess.IsAuthenticated,
					"userId":        sess.UserID(),
					"role":          sess.Role().String(),
				})
			}
			if !sess.IsAuthenticated {
				fmt.Fprintln(out, "Not logged in")
				return nil
			}
			fmt.Fprintf(out, "%s (%s)\n", sess.UserID(), sess.Role())
			return nil
		},
	}
}
