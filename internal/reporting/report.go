// Package reporting renders simulation results and WEFE scores for the CLI.
package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/wefe-nexus/nexsim/internal/simulation"
)

// WriteResultJSON writes the full result as indented JSON.
func WriteResultJSON(w io.Writer, res *simulation.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteResultTable renders the result as two aligned tables: selected
// interventions and per-indicator coverage. Target keys are sorted for
// stable output.
func WriteResultTable(w io.Writer, res *simulation.Result) {
	fmt.Fprintf(w, "Run %s\n\n", res.RunID)

	if len(res.Selected) == 0 {
		fmt.Fprintln(w, "No interventions selected.")
	} else {
		rows := make([][]string, 0, len(res.Selected))
		for i, iv := range res.Selected {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				iv.Title,
				fmt.Sprintf("$%.0f", iv.Capex),
			})
		}
		writeTable(w, []string{"#", "Intervention", "Capex"}, rows)
		fmt.Fprintf(w, "\nTotal capex: $%.0f\n", res.TotalCapex)
	}

	if len(res.Targets) == 0 {
		return
	}

	keys := make([]string, 0, len(res.Targets))
	for k := range res.Targets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(w)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{
			k,
			fmt.Sprintf("%.2f", res.Targets[k]),
			fmt.Sprintf("%.2f", res.Coverage[k]),
			fmt.Sprintf("%.2f", res.Unmet[k]),
		})
	}
	writeTable(w, []string{"Indicator", "Target", "Covered", "Unmet"}, rows)

	if !res.Satisfied() {
		fmt.Fprintln(w, "\nSome targets remain unmet: no available intervention makes further progress.")
	}
}

// WriteScoreTable renders pillar scores plus the overall score.
func WriteScoreTable(w io.Writer, labName string, pillarScores map[string]float64, pillarOrder []string, overall float64, hasOverall bool) {
	fmt.Fprintf(w, "WEFE scores — %s\n\n", labName)

	rows := make([][]string, 0, len(pillarOrder))
	for _, key := range pillarOrder {
		score, ok := pillarScores[key]
		val := "-"
		if ok {
			val = fmt.Sprintf("%.1f", score)
		}
		rows = append(rows, []string{key, val})
	}
	writeTable(w, []string{"Pillar", "Score"}, rows)

	if hasOverall {
		fmt.Fprintf(w, "\nOverall: %.1f\n", overall)
	} else {
		fmt.Fprintln(w, "\nOverall: unavailable (no scorable indicators)")
	}
}

// writeTable prints an aligned plain-text table. Column widths use terminal
// display width so multi-byte titles line up.
func writeTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	writeRow(headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	writeRow(sep)
	for _, row := range rows {
		writeRow(row)
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
