package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tro/internal/adapters/prompt"
	"tro/internal/application/commands"
	"tro/internal/domain"
)

var createEdit bool

var createCmd = &cobra.Command{
	Use:   "create [board] [list]",
	Short: "Create a board, list or card",
	Long: `Create a new object. The type depends on the patterns given:
- no pattern creates a board
- a board pattern creates a list on that board
- a board and list pattern creates a card at the bottom of that list

The name is read from the terminal.

Examples:
  tro create
  tro create work
  tro create work todo --edit`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		gw, t, err := target(cmd, args)
		if err != nil {
			return err
		}

		createCmd := commands.NewCreateCommand(gw, t, "")
		label := map[domain.ObjectType]string{
			domain.ObjectTypeCard:  "Card name: ",
			domain.ObjectTypeList:  "List name: ",
			domain.ObjectTypeBoard: "Board name: ",
		}[createCmd.Creates()]

		input, err := prompt.NewLinePrompter().Prompt(label)
		if err != nil {
			return err
		}
		createCmd.Name = strings.TrimSpace(input)

		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if result.Card != nil && createEdit {
			if _, err := newCardEditor(gw).Edit(ctx, *result.Card); err != nil {
				return err
			}
			return nil
		}

		fmt.Fprintln(os.Stderr, result.Message())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().BoolVarP(&createEdit, "edit", "e", false, "open a new card in the editor")
}
