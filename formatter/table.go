package formatter

import (
	"strings"

	"github.com/prooflang/tproof/internal/table"
)

// FormatTable renders a truth table: one column per variable, a separator,
// and the formula's main column. Cells use 0 and 1.
func FormatTable(t *table.Table) string {
	var builder strings.Builder

	for _, name := range t.Vars {
		builder.WriteString(name)
		builder.WriteByte(' ')
	}
	builder.WriteString("| ")
	builder.WriteString(t.Formula.String())
	builder.WriteByte('\n')

	for _, row := range t.Rows {
		for _, name := range t.Vars {
			builder.WriteString(cell(row.Assignment[name]))
			builder.WriteByte(' ')
		}
		builder.WriteString("| ")
		if row.Value {
			builder.WriteString(verifiedStyle.Sprint("1"))
		} else {
			builder.WriteString(failedStyle.Sprint("0"))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func cell(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
