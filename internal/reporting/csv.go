package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/wefe-nexus/nexsim/internal/simulation"
)

// WriteResultCSV writes one row per target indicator with its coverage,
// so results can be pulled into spreadsheets alongside the survey data.
func WriteResultCSV(w io.Writer, res *simulation.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run_id", "indicator", "target", "covered", "unmet"}); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	keys := make([]string, 0, len(res.Targets))
	for k := range res.Targets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		record := []string{
			res.RunID,
			k,
			formatFloat(res.Targets[k]),
			formatFloat(res.Coverage[k]),
			formatFloat(res.Unmet[k]),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
