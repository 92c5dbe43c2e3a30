package cli

import (
	"github.com/spf13/cobra"
	"github.com/wjn/LanguageFlashCards/internal/models"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the word bank",
	Long: `Search the word bank. Foreign and native searches match the whole term,
ignoring case. Grammar searches match any part of the grammar note.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("field", "f", "foreign", "Field to search: foreign, native or grammar")
}

func runSearch(cmd *cobra.Command, args []string) error {
	fieldName, _ := cmd.Flags().GetString("field")
	field, err := models.ParseSearchField(fieldName)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	a.console.Results(args[0], field, a.services.Search(args[0], field))
	return nil
}
