package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wjn/LanguageFlashCards/internal/models"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry to the word bank",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().String("foreign", "", "Term in the foreign language")
	addCmd.Flags().String("native", "", "Term in the native language")
	addCmd.Flags().String("grammar", "", "Grammar note, e.g. Noun or Verb")
	addCmd.Flags().String("answer", "", "Details shown after the card is answered")
	_ = addCmd.MarkFlagRequired("foreign")
	_ = addCmd.MarkFlagRequired("native")
}

func runAdd(cmd *cobra.Command, args []string) error {
	rec := models.Record{}
	rec.ForeignTerm, _ = cmd.Flags().GetString("foreign")
	rec.NativeTerm, _ = cmd.Flags().GetString("native")
	rec.Grammar, _ = cmd.Flags().GetString("grammar")
	rec.Answer, _ = cmd.Flags().GetString("answer")

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.services.AddWords(rec); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Added %s : %s\n", rec.ForeignTerm, rec.NativeTerm)
	return nil
}
