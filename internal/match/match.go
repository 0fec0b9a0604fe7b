// Package match evaluates a JMESPath path-expression against a
// JSON-serialisable cluster object, as used by rule-to-object matching.
package match

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"

	"github.com/practo/k8s-uptime-scaler/internal/errs"
)

// Matches serialises obj to JSON and evaluates expr against it. A null or
// non-boolean result is treated as false, per spec. A parse failure is a
// UserInput error.
func Matches(obj any, expr string) (bool, error) {
	compiled, err := jmespath.Compile(expr)
	if err != nil {
		return false, errs.New(errs.UserInput, fmt.Errorf("compile expression %q: %w", expr, err))
	}

	raw, err := json.Marshal(obj)
	if err != nil {
		return false, errs.New(errs.UserInput, fmt.Errorf("marshal object: %w", err))
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return false, errs.New(errs.UserInput, fmt.Errorf("unmarshal object: %w", err))
	}

	result, err := compiled.Search(data)
	if err != nil {
		return false, errs.New(errs.UserInput, fmt.Errorf("evaluate expression %q: %w", expr, err))
	}

	b, ok := result.(bool)
	if !ok {
		return false, nil
	}
	return b, nil
}
