package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prooflang/tproof/check"
	"github.com/prooflang/tproof/formatter"
)

var (
	checkSound      bool
	checkTrace      bool
	checkJSONOutput bool
	outPath         string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Verify the proofs in script files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide script file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		opts := check.Options{Sound: checkSound}
		results, err := check.ProcessFiles(ctx, logger, args, opts)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}

		printResults(logger, results, checkJSONOutput, outPath)

		for _, fr := range results {
			if fr.Failed() {
				os.Exit(1)
			}
		}
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkSound, "sound", false, "Also report rules failing the truth-table soundness check")
	checkCmd.Flags().BoolVar(&checkTrace, "trace", false, "Show every established line of each proof")
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output results in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func printResults(logger *zap.Logger, results []check.FileResult, isJSON bool, jsonOutput string) {
	if !isJSON {
		fmt.Println(formatter.Format(results, checkTrace))
		return
	}

	d, err := json.Marshal(jsonResults(results))
	if err != nil {
		logger.Error("Error marshalling results to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}

// jsonReport is the flat JSON shape of one proof's outcome.
type jsonReport struct {
	Name    string `json:"name"`
	Verdict string `json:"verdict"`
	Step    *int   `json:"step,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type jsonFile struct {
	Unsound []string     `json:"unsound,omitempty"`
	Proofs  []jsonReport `json:"proofs"`
}

func jsonResults(results []check.FileResult) map[string]jsonFile {
	out := make(map[string]jsonFile, len(results))
	for _, fr := range results {
		jf := jsonFile{Unsound: fr.Unsound}
		for _, r := range fr.Reports {
			jr := jsonReport{Name: r.Name, Verdict: r.Result.Verdict.String()}
			if f := r.Result.Failure; f != nil {
				if f.Index >= 0 {
					idx := f.Index
					jr.Step = &idx
				}
				jr.Reason = f.Error()
			}
			jf.Proofs = append(jf.Proofs, jr)
		}
		out[fr.File] = jf
	}
	return out
}
