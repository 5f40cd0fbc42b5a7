package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/nfrund/bcard/cmd/bcard/internal/format"
	"github.com/nfrund/bcard/internal/apiclient"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/cache"
	"github.com/nfrund/bcard/internal/config"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/logging"
	"github.com/nfrund/bcard/internal/service"
	"github.com/nfrund/bcard/internal/storage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// cli is the state shared by every command of one invocation.
type cli struct {
	fs      afero.Fs
	apiURL  string
	timeout time.Duration
	format  string

	store *storage.AferoStore
	state storage.State
	api   *apiclient.Client
}

// NewRootCmd builds the command tree. Local state lives on fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	c := &cli{fs: fs}
	root := &cobra.Command{
		Use:   "bcard",
		Short: "Command-line client for the BCard business-card directory",
		Long: `bcard talks to the same card API as the BCard web application.

The access token and theme are remembered in $BCARD_HOME (default ~/.bcard),
so log in once and the other commands act as that user.

Examples:
  bcard login --email ada@example.com
  bcard cards list --search bakery
  bcard cards like 64f1c0e2a1
  bcard users list --format json`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.apiURL, "api", envOr("API_BASE_URL", config.DefaultAPIBaseURL), "Base URL of the card API")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "Timeout for each API request")
	root.PersistentFlags().StringVarP(&c.format, "format", "f", "table", "Output format (table, json)")

	root.AddCommand(
		newVersionCmd(),
		newLoginCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newCardsCmd(c),
		newFavoritesCmd(c),
		newUsersCmd(c),
		newThemeCmd(c),
	)
	return root
}

// Execute runs the CLI against the real filesystem.
func Execute() {
	_ = godotenv.Load()
	level := slog.LevelWarn
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level = logging.ParseLevel(v)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if c.format != "table" && c.format != "json" {
		return fmt.Errorf("unsupported output format %q: use table or json", c.format)
	}
	dir, err := storage.DefaultDir()
	if err != nil {
		return err
	}
	c.store = storage.NewAferoStore(c.fs, dir)
	if c.state, err = c.store.Load(cmd.Context()); err != nil {
		return err
	}
	c.api = apiclient.New(c.apiURL, c.timeout)
	return nil
}

// ctx carries the saved token to the API client.
func (c *cli) ctx(cmd *cobra.Command) context.Context {
	return apiclient.WithToken(cmd.Context(), c.state.Token)
}

func (c *cli) session() domain.Session {
	return auth.NewSession(c.state.Token)
}

func (c *cli) save(cmd *cobra.Command) error {
	return c.store.Save(cmd.Context(), c.state)
}

// cards is a card service for one invocation. Nothing outlives the process,
// so the cache only spares repeated reads within a command.
func (c *cli) cards() *service.Cards {
	return service.NewCards(c.api, cache.NewMemory(clockwork.NewRealClock(), time.Minute), nil)
}

func (c *cli) users() *service.Users {
	return service.NewUsers(c.api, nil)
}

func (c *cli) printCards(cmd *cobra.Command, cards []domain.Card, empty string) error {
	out := cmd.OutOrStdout()
	if c.format == "json" {
		if cards == nil {
			cards = []domain.Card{}
		}
		return format.JSON(out, cards)
	}
	if len(cards) == 0 {
		fmt.Fprintln(out, empty)
		return nil
	}
	format.CardsTable(out, cards)
	return nil
}

// explain turns a failed operation into the message shown to the user.
func explain(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return errors.New("not logged in: run 'bcard login' first")
	case errors.Is(err, domain.ErrForbidden):
		return fmt.Errorf("not allowed: %s", apiclient.Message(err, "your account cannot do that"))
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("not found: %s", apiclient.Message(err, "no such record"))
	case errors.Is(err, domain.ErrUnavailable):
		return errors.New("the card API is unreachable, please try again")
	}
	return errors.New(apiclient.Message(err, err.Error()))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
