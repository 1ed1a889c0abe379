// Command tinydlg pops platform-native dialogs from the command line:
// message boxes, input and password prompts, file and folder pickers,
// a color chooser and a list chooser. Results are printed to stdout,
// optionally as JSON, and the exit status reports the outcome
// (0 = value produced or ok/yes, 1 = cancelled or cancel/no,
// 2 = usage error).
package main

import (
	"fmt"
	"os"

	"tinydialogs"
	"tinydialogs/native"
)

func main() {
	cfg, cfgErr := LoadConfig("")
	if cfgErr != nil {
		cfg = &Config{}
	}

	if err := InitLoggerWithConfig(cfg.GetLogConfig()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Failed to initialize logger: %v\n", err)
	}
	if cfgErr != nil && !os.IsNotExist(cfgErr) {
		LogWarn("Failed to load config: %v", cfgErr)
	}

	app := NewApp(native.Provider{}, cfg, os.Stdout, os.Stderr)
	os.Exit(app.Run(os.Args[1:]))
}

// newClient builds the dialog client the app uses, tracing calls into
// the CLI log.
func newClient(p tinydialogs.Provider) *tinydialogs.Client {
	if log != nil {
		return tinydialogs.New(p, tinydialogs.WithLogger(log))
	}
	return tinydialogs.New(p)
}
