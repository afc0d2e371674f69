package cmd

import (
	"fmt"

	"github.com/hyerin/vocadrill/internal/vocab"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the word book",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every word in the book",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		words, _, err := loadState(cmd.Context(), st)
		if err != nil {
			return err
		}

		for _, it := range words.All() {
			line := fmt.Sprintf("%s\t%s\t%s\t%s", it.Headword, it.Meaning, it.Tier, it.Origin)
			if it.MissCount > 0 {
				line += fmt.Sprintf("\tmissed %d", it.MissCount)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <headword> <meaning>",
	Short: "Add one word to the book",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tierFlag, _ := cmd.Flags().GetString("tier")
		tier := vocab.ParseTier(tierFlag)
		pron, _ := cmd.Flags().GetString("pronunciation")
		example, _ := cmd.Flags().GetString("example")

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

		added := words.Add(vocab.Item{
			Headword:      args[0],
			Meaning:       args[1],
			Pronunciation: pron,
			Example:       example,
			Tier:          tier,
			Origin:        vocab.OriginManual,
		})
		if err := st.SaveVocab(ctx, words.All()); err != nil {
			return fmt.Errorf("save vocabulary: %w", err)
		}

		fmt.Printf("Added %s (%s).\n", added.Headword, added.Meaning)
		return nil
	},
}

func init() {
	wordsAddCmd.Flags().String("tier", "", "Difficulty tier: beginner, intermediate or advanced")
	wordsAddCmd.Flags().String("pronunciation", "", "Romanized pronunciation")
	wordsAddCmd.Flags().String("example", "", "Example sentence")

	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsAddCmd)
}
