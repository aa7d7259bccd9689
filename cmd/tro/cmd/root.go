package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tro/internal/adapters/sqlite"
	"tro/internal/adapters/trello"
	"tro/internal/adapters/tui"
	"tro/internal/adapters/tui/styles"
	"tro/internal/application/commands"
	"tro/internal/config"
	"tro/internal/logging"
	"tro/internal/ports"
)

var (
	configPath string
	verbosity  int
	ignoreCase bool
	noCache    bool

	cfg     *config.Config
	log     logging.Logger = logging.Nop()
	cache   *sqlite.Cache
	gateway ports.TrelloGateway
)

var rootCmd = &cobra.Command{
	Use:   "tro",
	Short: "Trello from the command line",
	Long: `tro is a command-line client for Trello.

Boards, lists and cards are addressed by name patterns given in order:

  tro show <board> <list> <card>

Patterns are regular expressions. An exact name wins over partial matches;
when several objects still match, tro lets you pick one on a terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		styles.Configure(os.Stdout)
		log = logging.New(os.Stderr, verbosity)

		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		log.Debug(cmd.Context(), "loaded config", "path", cfg.Path)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if cache != nil {
		if cerr := cache.Close(); cerr != nil {
			log.Warn(ctx, "failed to close board cache", "error", cerr)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorMsg.Render("Error:"), err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match name patterns case-insensitively")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "bypass the local board cache")
}

// GetGateway returns the Trello gateway, building it on first use. The
// board cache is skipped when it cannot be opened.
func GetGateway(ctx context.Context) (ports.TrelloGateway, error) {
	if gateway != nil {
		return gateway, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := trello.NewClient(cfg.Host, cfg.Key, cfg.Token,
		trello.WithTimeout(cfg.Timeout),
		trello.WithRateLimit(cfg.RateLimit),
		trello.WithLogger(log),
	)
	gateway = client

	if noCache || cfg.CacheTTL <= 0 {
		return gateway, nil
	}

	c := sqlite.NewCache()
	if err := c.Open(sqlite.DefaultPath()); err != nil {
		log.Warn(ctx, "board cache unavailable", "error", err)
		return gateway, nil
	}
	cache = c
	gateway = sqlite.NewCachedGateway(client, cache, cfg.CacheTTL, log)
	return gateway, nil
}

// stdinIsTerminal reports whether interactive prompts can be shown
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// resolveTarget resolves positional board, list and card patterns
func resolveTarget(ctx context.Context, gw ports.TrelloGateway, patterns []string) (*commands.Target, error) {
	var p [3]string
	copy(p[:], patterns)

	var picker ports.Picker
	if stdinIsTerminal() {
		picker = tui.NewTerminalPicker()
	}

	return commands.NewResolveCommand(gw, picker, p[0], p[1], p[2], ignoreCase).Execute(ctx)
}

// target builds the gateway and resolves patterns in one step
func target(cmd *cobra.Command, patterns []string) (ports.TrelloGateway, *commands.Target, error) {
	gw, err := GetGateway(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	t, err := resolveTarget(cmd.Context(), gw, patterns)
	if err != nil {
		return nil, nil, err
	}
	return gw, t, nil
}

// name renders an object name for status messages
func name(s string) string {
	return styles.Name.Render(s)
}
