package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "Manage the mistake book",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var mistakesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the mistake book",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		_, ledger, err := loadState(cmd.Context(), st)
		if err != nil {
			return err
		}

		if ledger.Len() == 0 {
			fmt.Println("No mistakes recorded.")
			return nil
		}
		for _, e := range ledger.All() {
			fmt.Printf("%s\t%s\tmissed %d\n", e.Headword, e.Meaning, e.WrongCount)
		}
		return nil
	},
}

var mistakesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the mistake book",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		_, ledger, err := loadState(ctx, st)
		if err != nil {
			return err
		}

		n := ledger.Len()
		ledger.Clear()
		if err := st.SaveMistakes(ctx, ledger.All()); err != nil {
			return err
		}
		fmt.Printf("Cleared %d entries.\n", n)
		return nil
	},
}

func init() {
	mistakesCmd.AddCommand(mistakesListCmd)
	mistakesCmd.AddCommand(mistakesClearCmd)
}
