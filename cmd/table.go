package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prooflang/tproof/formatter"
	"github.com/prooflang/tproof/internal/table"
	"github.com/prooflang/tproof/parser"
)

var tableTauto bool

var tableCmd = &cobra.Command{
	Use:   "table \"FORMULA\"",
	Short: "Print the truth table of a formula",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one formula")
			os.Exit(1)
		}

		f, err := parser.ParseFormula(args[0])
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}

		t := table.New(f)
		if tableTauto {
			if t.IsTautology() {
				fmt.Printf("%s is a tautology\n", f)
				return
			}
			fmt.Printf("%s is not a tautology\n", f)
			os.Exit(1)
		}
		fmt.Print(formatter.FormatTable(t))
	},
}

func init() {
	tableCmd.Flags().BoolVar(&tableTauto, "tauto", false, "Only report whether the formula is a tautology")
}
