package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tro/internal/adapters/editor"
	"tro/internal/adapters/prompt"
	"tro/internal/adapters/tui"
	"tro/internal/application/commands"
	"tro/internal/domain"
	"tro/internal/editsync"
	"tro/internal/ports"
)

var (
	showLabel string
	showPrint bool
)

var showCmd = &cobra.Command{
	Use:   "show [board] [list] [card]",
	Short: "Show a board or list, or edit a card",
	Long: `Show the open boards, a board, or a list. Naming a card opens it in your
editor; every save is pushed to Trello while the editor stays open.

The card is edited as a markdown document: the first line is the card name,
underlined with '=', followed by a blank line and the description.

Examples:
  tro show
  tro show work
  tro show work todo --label bug
  tro show work todo "fix login"
  tro show work todo "fix login" --print`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		gw, t, err := target(cmd, args)
		if err != nil {
			return err
		}

		showCmd := commands.NewShowCommand(gw, newCardEditor(gw), t, showLabel, showPrint)
		result, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}

		switch {
		case result.Markdown:
			out, err := tui.RenderMarkdown(os.Stdout, result.Text, terminalWidth())
			if err != nil {
				return err
			}
			fmt.Println(strings.TrimRight(out, "\n"))

		case result.Type == domain.ObjectTypeCard:
			if result.Edited {
				fmt.Fprintf(os.Stderr, "Updated card: '%s'\n", name(result.Card.Name))
			}

		default:
			fmt.Println(result.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showLabel, "label", "l", "", "only show cards with a label matching this pattern")
	showCmd.Flags().BoolVarP(&showPrint, "print", "p", false, "print the card instead of opening an editor")
}

// newCardEditor builds the edit session used for cards
func newCardEditor(updater ports.CardUpdater) *editsync.Syncer {
	return editsync.NewSyncer(updater,
		editor.NewOpener(cfg.Editor),
		prompt.NewLinePrompter(),
		editsync.WithLogger(log),
		editsync.WithWatch(cfg.Watch),
	)
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}
