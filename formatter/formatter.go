// Package formatter renders check results and truth tables for the
// terminal. Colors degrade to plain text automatically when the output is
// not a tty.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/prooflang/tproof/check"
	"github.com/prooflang/tproof/internal/proof"
)

var (
	verifiedStyle = color.New(color.FgGreen, color.Bold)
	partialStyle  = color.New(color.FgHiYellow, color.Bold)
	failedStyle   = color.New(color.FgRed, color.Bold)
	fileStyle     = color.New(color.FgCyan, color.Bold)
	ruleStyle     = color.New(color.FgYellow)
	unsoundStyle  = color.New(color.FgHiYellow)
	lineStyle     = color.New(color.FgHiBlue)
)

// verdictStyle maps a verdict to its color.
func verdictStyle(v proof.Verdict) *color.Color {
	switch v {
	case proof.Verified:
		return verifiedStyle
	case proof.Partial:
		return partialStyle
	default:
		return failedStyle
	}
}

func verdictMark(v proof.Verdict) string {
	switch v {
	case proof.Verified:
		return "✓"
	case proof.Partial:
		return "~"
	default:
		return "✗"
	}
}

// Format renders the results of a check run, one block per file. With
// trace enabled, every verified line of each proof is listed with the rule
// that established it.
func Format(results []check.FileResult, trace bool) string {
	var builder strings.Builder
	for i, fr := range results {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(fileStyle.Sprint(fr.File))
		builder.WriteByte('\n')
		if len(fr.Unsound) > 0 {
			builder.WriteString("  ")
			builder.WriteString(unsoundStyle.Sprintf("unsound rules: %s", strings.Join(fr.Unsound, ", ")))
			builder.WriteByte('\n')
		}
		for _, r := range fr.Reports {
			writeReport(&builder, r, trace)
		}
	}
	return builder.String()
}

func writeReport(builder *strings.Builder, r check.Report, trace bool) {
	style := verdictStyle(r.Result.Verdict)
	fmt.Fprintf(builder, "  %s %s: %s",
		style.Sprint(verdictMark(r.Result.Verdict)),
		r.Name,
		style.Sprint(r.Result.Verdict))
	if f := r.Result.Failure; f != nil {
		fmt.Fprintf(builder, " (%s)", f)
	}
	builder.WriteByte('\n')
	if trace && r.Proof != nil {
		writeTrace(builder, r)
	}
}

// writeTrace lists the combined index space: hypotheses first, then every
// established step with its rule attribution. Lines after a failure are
// not shown; they were never checked.
func writeTrace(builder *strings.Builder, r check.Report) {
	k := len(r.Proof.Hypotheses)
	for i, h := range r.Proof.Hypotheses {
		fmt.Fprintf(builder, "    %s  %-30s hypothesis\n", lineStyle.Sprintf("%3d", i), h)
	}
	for i, f := range r.Result.Established {
		attribution := stepAttribution(r.Proof.Steps[i])
		rendered := "…"
		if f != nil {
			rendered = f.String()
		}
		fmt.Fprintf(builder, "    %s  %-30s %s\n",
			lineStyle.Sprintf("%3d", k+i), rendered, attribution)
	}
}

func stepAttribution(s proof.Step) string {
	switch s := s.(type) {
	case proof.AxiomSpecialization:
		return ruleStyle.Sprintf("axiom %s", s.RuleID)
	case proof.RuleApplication:
		refs := make([]string, len(s.Refs))
		for i, ref := range s.Refs {
			refs[i] = fmt.Sprintf("%d", ref)
		}
		return ruleStyle.Sprintf("%s(%s)", s.RuleID, strings.Join(refs, ","))
	default:
		return ruleStyle.Sprint("incomplete")
	}
}
