package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/nfrund/bcard/cmd/bcard/internal/format"
	"github.com/nfrund/bcard/internal/cardlist"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/spf13/cobra"
)

func newCardsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Browse and manage business cards",
		Long: `Browse the card directory and act on single cards.

Examples:
  bcard cards list                   # every card
  bcard cards list --search bakery   # cards whose title contains "bakery"
  bcard cards list --mine            # your own cards (business accounts)
  bcard cards show <id>
  bcard cards like <id>              # like, or unlike when already liked
  bcard cards delete <id>`,
	}
	cmd.AddCommand(
		newCardsListCmd(c),
		newCardsShowCmd(c),
		newCardsLikeCmd(c),
		newCardsDeleteCmd(c),
	)
	return cmd
}

func newCardsListCmd(c *cli) *cobra.Command {
	var mine bool
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.cards()
			var (
				list []domain.Card
				err  error
			)
			if mine {
				list, err = svc.Mine(c.ctx(cmd), c.session())
			} else {
				list, err = svc.All(c.ctx(cmd))
			}
			if err != nil {
				return explain(err)
			}
			return c.printCards(cmd, cardlist.FilterByTitle(list, search), "No cards found")
		},
	}
	cmd.Flags().BoolVar(&mine, "mine", false, "Only cards you created")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only cards whose title contains this text")
	return cmd
}

func newCardsShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := c.cards().Get(c.ctx(cmd), args[0])
			if err != nil {
				return explain(err)
			}
			if c.format == "json" {
				return format.JSON(cmd.OutOrStdout(), card)
			}
			format.Card(cmd.OutOrStdout(), *card)
			return nil
		},
	}
}

func newCardsLikeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Like a card, or unlike it when already liked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := c.session()
			card, err := c.cards().ToggleLike(c.ctx(cmd), sess, args[0])
			if err != nil {
				return explain(err)
			}
			verb := "Unliked"
			if card.IsLikedBy(sess.UserID()) {
				verb = "Liked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d likes)\n", verb, card.Title, len(card.Likes))
			return nil
		},
	}
}

func newCardsDeleteCmd(c *cli) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "Are you sure you want to delete this card?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			if err := c.cards().Delete(c.ctx(cmd), c.session(), args[0]); err != nil {
				return explain(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Card deleted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newFavoritesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List the cards you liked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.cards().Favorites(c.ctx(cmd), c.session())
			if err != nil {
				return explain(err)
			}
			return c.printCards(cmd, list, "You have not liked any cards yet")
		},
	}
}

// confirm asks a yes/no question on the command's input.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
