package cmd

import (
	"fmt"

	"github.com/hyerin/vocadrill/internal/importer"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.csv>",
	Short: "Import words from a spreadsheet",
	Long: `Import vocabulary rows from an Excel or CSV file.

The first row may name the columns (Korean/Chinese/Example, 한국어/뜻/예문 or
韩语/中文/例句); otherwise columns are read positionally as headword,
meaning, example. A row carrying only an example extends the previous word.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := importer.File(args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		words, _, err := loadState(ctx, st)
		if err != nil {
			return err
		}

		for _, it := range res.Items {
			words.Add(it)
		}
		if err := st.SaveVocab(ctx, words.All()); err != nil {
			return fmt.Errorf("save vocabulary: %w", err)
		}

		fmt.Printf("Imported %d words", res.Imported())
		if res.Skipped > 0 {
			fmt.Printf(", skipped %d blank rows", res.Skipped)
		}
		fmt.Println(".")

		for _, e := range res.Errors {
			fmt.Println("warning:", e)
		}
		return nil
	},
}
