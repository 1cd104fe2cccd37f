// Package check orchestrates proof verification over script files: it loads
// scripts, replays every proof against the script's rule set and collects
// per-proof reports. Kernel packages stay pure; all I/O and logging happens
// here and in the cmd layer.
package check

import (
	"fmt"

	"github.com/prooflang/tproof/internal/proof"
	"github.com/prooflang/tproof/parser"
)

// Options controls what a check run reports beyond the verdicts.
type Options struct {
	// Sound also runs the truth-table soundness diagnostic over every rule
	// of each script. Unsound rules are reported, never rejected.
	Sound bool
}

// Report is the verification outcome of one named proof. The proof itself
// is carried along for trace rendering.
type Report struct {
	Name   string
	Proof  *proof.Proof
	Result proof.Result
}

// FileResult groups the reports of one script file.
type FileResult struct {
	File    string
	Unsound []string // rule ids failing the soundness diagnostic
	Reports []Report
}

// Failed reports whether any proof in the file did not verify. Partial
// proofs do not count as failures; they are work in progress by
// declaration.
func (fr FileResult) Failed() bool {
	for _, r := range fr.Reports {
		if r.Result.Verdict == proof.Failed {
			return true
		}
	}
	return false
}

// CheckScript verifies every proof of a resolved script.
func CheckScript(script *parser.Script, opts Options) FileResult {
	var fr FileResult
	if opts.Sound {
		fr.Unsound = script.Rules.Unsound()
	}
	for _, np := range script.Proofs {
		fr.Reports = append(fr.Reports, Report{
			Name:   np.Name,
			Proof:  np.Proof,
			Result: proof.Verify(script.Rules, np.Proof),
		})
	}
	return fr
}

// CheckFile loads one script file and verifies its proofs.
func CheckFile(path string, opts Options) (FileResult, error) {
	script, err := parser.LoadScript(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("checking %s: %w", path, err)
	}
	fr := CheckScript(script, opts)
	fr.File = path
	return fr, nil
}
