package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// printTable renders rows as an aligned table on stdout. Column headers
// are title-cased, so callers pass them in lower case ("user name" etc.).
func printTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = titleCaser.String(h)
	}
	fmt.Fprintln(w, strings.Join(cells, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// printKV renders a two-column label/value block, for detail views.
func printKV(pairs [][2]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range pairs {
		fmt.Fprintf(w, "%s:\t%s\n", titleCaser.String(p[0]), p[1])
	}
	w.Flush()
}

// orDash substitutes a dash for empty cell values.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
