// Package notify reports completed scaling runs: a CSV summary of every
// object acted on, optionally uploaded to a Slack channel per rule,
// best-effort.
package notify

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/practo/k8s-uptime-scaler/internal/engine"
)

// BuildCSV renders results as a CSV with a header row: rule, kind,
// namespace, name, action.
func BuildCSV(results []engine.Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"rule", "kind", "namespace", "name", "action"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range results {
		if err := w.Write([]string{r.RuleID, string(r.Kind), r.Namespace, r.Name, actionString(r.Action)}); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func actionString(a engine.Action) string {
	switch a {
	case engine.Downscale:
		return "downscale"
	case engine.Upscale:
		return "upscale"
	default:
		return "noop"
	}
}
