package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prooflang/tproof/internal/rule"
	"github.com/prooflang/tproof/internal/systems"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in proof systems and their rules",
	Run: func(cmd *cobra.Command, args []string) {
		printSystem("natural", systems.Natural())
		fmt.Println()
		printSystem("hilbert", systems.Hilbert())
	},
}

func printSystem(name string, s *rule.Set) {
	fmt.Printf("%s:\n", name)
	for _, id := range s.IDs() {
		fmt.Printf("  %s\n", s.Lookup(id))
	}
}
