package main

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// render writes a produced dialog result. obj is the JSON form of the
// result, plain its one-line plain-text form. A -query expression
// switches to JSON output of whatever the query yields.
func (a *App) render(obj map[string]any, plain string) {
	if a.query != "" {
		if err := a.renderQuery(obj); err != nil {
			fmt.Fprintf(a.errOut, "tinydlg: %v\n", err)
		}
		return
	}
	if a.outputMode == "json" {
		enc := json.NewEncoder(a.out)
		if err := enc.Encode(obj); err != nil {
			fmt.Fprintf(a.errOut, "tinydlg: %v\n", err)
		}
		return
	}
	fmt.Fprintln(a.out, plain)
}

// renderQuery runs the jq expression over the result object and emits
// every produced value as a JSON line.
func (a *App) renderQuery(obj map[string]any) error {
	query, err := gojq.Parse(a.query)
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	iter := query.Run(map[string]any(obj))
	enc := json.NewEncoder(a.out)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if qerr, isErr := v.(error); isErr {
			return fmt.Errorf("query failed: %w", qerr)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
