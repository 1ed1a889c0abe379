package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"tinydialogs"
)

const usage = `Usage: tinydlg [global flags] <command> [command flags]

Commands:
  message          Show a message box
  input            Show an input box
  password         Show a masked input box
  save-file        Show a save-file picker
  open-file        Show an open-file picker (single selection)
  open-file-multi  Show an open-file picker (multiple selection)
  select-folder    Show a folder picker
  list             Show the list chooser (not available on Windows)
  color            Show the color chooser
  script           Run a Lua script against the dlg module
  demo             Walk through every dialog kind once
  version          Print the version

Global flags:
  -debug           Enable debug logging
  -output MODE     Output mode: plain or json (default plain)
  -query EXPR      jq expression applied to the JSON result
`

// App wires the dialog client to the command line surface. The
// provider is injected so tests can drive every command without the
// native library.
type App struct {
	dlg    *tinydialogs.Client
	cfg    *Config
	out    io.Writer
	errOut io.Writer
	paths  *pathCache

	outputMode string
	query      string
}

// NewApp builds an App around the given provider.
func NewApp(p tinydialogs.Provider, cfg *Config, out, errOut io.Writer) *App {
	if cfg == nil {
		cfg = &Config{}
	}
	return &App{
		dlg:    newClient(p),
		cfg:    cfg,
		out:    out,
		errOut: errOut,
		paths:  newPathCache(),
	}
}

// Run parses the arguments, dispatches the command and returns the
// process exit code.
func (a *App) Run(args []string) int {
	fs := flag.NewFlagSet("tinydlg", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.StringVar(&a.outputMode, "output", "plain", "output mode: plain or json")
	fs.StringVar(&a.query, "query", "", "jq expression applied to the JSON result")
	fs.Usage = func() { fmt.Fprint(a.errOut, usage) }

	if err := fs.Parse(args); err != nil {
		return 2
	}
	SetLogLevel(*debug)

	if a.outputMode != "plain" && a.outputMode != "json" {
		fmt.Fprintf(a.errOut, "tinydlg: unknown output mode %q\n", a.outputMode)
		return 2
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	cmd, cmdArgs := rest[0], rest[1:]
	LogDebug("Running command: %s", cmd)

	switch cmd {
	case "message":
		return a.cmdMessage(cmdArgs)
	case "input":
		return a.cmdInput(cmdArgs)
	case "password":
		return a.cmdPassword(cmdArgs)
	case "save-file":
		return a.cmdSaveFile(cmdArgs)
	case "open-file":
		return a.cmdOpenFile(cmdArgs)
	case "open-file-multi":
		return a.cmdOpenFileMulti(cmdArgs)
	case "select-folder":
		return a.cmdSelectFolder(cmdArgs)
	case "list":
		return a.cmdList(cmdArgs)
	case "color":
		return a.cmdColor(cmdArgs)
	case "script":
		return a.cmdScript(cmdArgs)
	case "demo":
		return a.cmdDemo()
	case "version":
		fmt.Fprintln(a.out, Version)
		return 0
	default:
		fmt.Fprintf(a.errOut, "tinydlg: unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}
}

func (a *App) cmdMessage(args []string) int {
	fs := flag.NewFlagSet("message", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	kind := fs.String("kind", "ok", "message box kind: ok, okcancel or yesno")
	title := fs.String("title", "", "dialog title")
	text := fs.String("text", "", "message text")
	icon := fs.String("icon", "info", "icon: info, warning, error or question")
	def := fs.String("default", "ok", "default button: ok or cancel")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	k, err := parseKind(*kind)
	if err != nil {
		fmt.Fprintf(a.errOut, "tinydlg: %v\n", err)
		return 2
	}
	ic, err := parseIcon(*icon)
	if err != nil {
		fmt.Fprintf(a.errOut, "tinydlg: %v\n", err)
		return 2
	}
	db, err := parseButton(*def)
	if err != nil {
		fmt.Fprintf(a.errOut, "tinydlg: %v\n", err)
		return 2
	}

	choice := a.dlg.MessageBox(k, *title, *text,
		tinydialogs.WithIcon(ic), tinydialogs.WithDefaultButton(db))
	LogDialogResult("message", true)
	a.render(map[string]any{"choice": choice.String()}, choice.String())
	if choice == tinydialogs.ButtonOkYes {
		return 0
	}
	return 1
}

func (a *App) cmdInput(args []string) int {
	fs := flag.NewFlagSet("input", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	title := fs.String("title", "", "dialog title")
	text := fs.String("text", "", "prompt text")
	def := fs.String("default", "", "default input text")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	value, ok := a.dlg.InputBox(*title, *text, *def)
	return a.renderValue("input", value, ok)
}

func (a *App) cmdPassword(args []string) int {
	fs := flag.NewFlagSet("password", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	title := fs.String("title", "", "dialog title")
	text := fs.String("text", "", "prompt text")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	value, ok := a.dlg.PasswordBox(*title, *text)
	return a.renderValue("password", value, ok)
}

func (a *App) cmdSaveFile(args []string) int {
	fs := flag.NewFlagSet("save-file", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	title := fs.String("title", "", "dialog title")
	path := fs.String("path", "", "initial path and file name")
	patterns := fs.String("patterns", "", "comma-separated glob patterns, e.g. *.png,*.jpg")
	desc := fs.String("filter-desc", "", "human-readable filter description")
	preset := fs.String("filter-preset", "", "named filter preset from the config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	filter, err := a.buildFilter(*patterns, *desc, *preset)
	if err != nil {
		fmt.Fprintf(a.errOut, "tinydlg: %v\n", err)
		return 2
	}

	value, ok := a.dlg.SaveFileDialog(*title, *path, filter)
	if ok {
		a.paths.Remember(kindSave, value)
	}
	return a.renderValue("save-file", value, ok)
}

func (a *App) cmdOpenFile(args []string) int {
	title, path, filter, code := a.parseOpenFlags("open-file", args)
	if code != 0 {
		return code
	}
	value, ok := a.dlg.OpenFileDialog(title, path, filter)
	if ok {
		a.paths.Remember(kindOpen, value)
	}
	return a.renderValue("open-file", value, ok)
}

func (a *App) cmdOpenFileMulti(args []string) int {
	title, path, filter, code := a.parseOpenFlags("open-file-multi", args)
	if code != 0 {
		return code
	}
	values, ok := a.dlg.OpenFileDialogMulti(title, path, filter)
	if !ok {
		LogDialogResult("open-file-multi", false)
		return 1
	}
	LogDialogResult("open-file-multi", true)
	a.paths.Remember(kindOpen, values[0])

	jsonValues := make([]any, len(values))
	for i, v := range values {
		jsonValues[i] = v
	}
	a.render(map[string]any{"values": jsonValues}, strings.Join(values, "\n"))
	return 0
}

func (a *App) parseOpenFlags(name string, args []string) (title, path string, filter *tinydialogs.Filter, code int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	titleF := fs.String("title", "", "dialog title")
	pathF := fs.String("path", "", "initial path")
	patterns := fs.String("patterns", "", "comma-separated glob patterns")
	desc := fs.String("filter-desc", "", "human-readable filter description")
	preset := fs.String("filter-preset", "", "named filter preset from the config file")
	if err := fs.Parse(args); err != nil {
		return "", "", nil, 2
	}

	f, err := a.buildFilter(*patterns, *desc, *preset)
	if err != nil {
		fmt.Fprintf(a.errOut, "tinydlg: %v\n", err)
		return "", "", nil, 2
	}
	return *titleF, *pathF, f, 0
}

func (a *App) cmdSelectFolder(args []string) int {
	fs := flag.NewFlagSet("select-folder", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	title := fs.String("title", "", "dialog title")
	path := fs.String("path", "", "initial path")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	value, ok := a.dlg.SelectFolderDialog(*title, *path)
	if ok {
		a.paths.RememberDir(kindFolder, value)
	}
	return a.renderValue("select-folder", value, ok)
}

func (a *App) cmdList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	title := fs.String("title", "", "dialog title")
	columns := fs.String("columns", "", "comma-separated column names")
	cells := fs.String("cells", "", "comma-separated cell values, row-major")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !a.dlg.SupportsListDialog() {
		fmt.Fprintln(a.errOut, "tinydlg: the list dialog is not supported on this platform")
		return 2
	}

	value, ok := a.dlg.ListDialog(*title, splitList(*columns), splitList(*cells))
	return a.renderValue("list", value, ok)
}

func (a *App) cmdColor(args []string) int {
	fs := flag.NewFlagSet("color", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	title := fs.String("title", "", "dialog title")
	def := fs.String("default", "#000000", `default color, "#RRGGBB" or "r,g,b"`)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	defColor, err := parseColorDefault(*def)
	if err != nil {
		fmt.Fprintf(a.errOut, "tinydlg: %v\n", err)
		return 2
	}

	hex, rgb, ok := a.dlg.ColorChooser(*title, defColor)
	if !ok {
		LogDialogResult("color", false)
		return 1
	}
	LogDialogResult("color", true)
	a.render(map[string]any{
		"hex": hex,
		"rgb": []any{int(rgb[0]), int(rgb[1]), int(rgb[2])},
	}, hex)
	return 0
}

func (a *App) cmdDemo() int {
	choice := a.dlg.MessageBox(tinydialogs.YesNo, "hello", "yes or no?",
		tinydialogs.WithIcon(tinydialogs.IconQuestion),
		tinydialogs.WithDefaultButton(tinydialogs.ButtonCancelNo))
	fmt.Fprintf(a.out, "Choice: %s\n", choice)

	if input, ok := a.dlg.InputBox("Enter user name", "Username:", ""); ok {
		fmt.Fprintf(a.out, "User input: %s\n", input)
	}
	if file, ok := a.dlg.SaveFileDialog("Save", "password.txt", nil); ok {
		fmt.Fprintf(a.out, "Save file: %s\n", file)
	}
	if file, ok := a.dlg.OpenFileDialog("Open", "password.txt", nil); ok {
		fmt.Fprintf(a.out, "Open file: %s\n", file)
	}
	if folder, ok := a.dlg.SelectFolderDialog("Select folder", ""); ok {
		fmt.Fprintf(a.out, "Folder: %s\n", folder)
	}
	if hex, rgb, ok := a.dlg.ColorChooser("Choose a Color", tinydialogs.HexColor("#FF0000")); ok {
		fmt.Fprintf(a.out, "Color: %s %v\n", hex, rgb)
	}
	if a.dlg.SupportsListDialog() {
		if sel, ok := a.dlg.ListDialog("Test Dialog",
			[]string{"Id", "Name"},
			[]string{"471", "Donald Duck", "1143", "Chris P. Bacon", "6509", "Moon Doge"}); ok {
			fmt.Fprintf(a.out, "List: %s\n", sel)
		}
	}
	return 0
}

func (a *App) cmdScript(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(a.errOut, "Usage: tinydlg script <file.lua>")
		return 2
	}
	engine := newLuaEngine(a)
	defer engine.Close()

	result, err := engine.RunFile(args[0])
	if err != nil {
		fmt.Fprintf(a.errOut, "tinydlg: %v\n", err)
		LogError("Script failed: %v", err)
		return 1
	}
	if result != "" {
		fmt.Fprintln(a.out, result)
	}
	return 0
}

// renderValue handles the common optional-string commands: print the
// value on success, stay silent and exit 1 on an absent result.
func (a *App) renderValue(name, value string, ok bool) int {
	LogDialogResult(name, ok)
	if !ok {
		return 1
	}
	a.render(map[string]any{"value": value}, value)
	return 0
}

// buildFilter resolves the filter flags into an optional Filter. A
// preset name takes priority over inline patterns.
func (a *App) buildFilter(patterns, desc, preset string) (*tinydialogs.Filter, error) {
	if preset != "" {
		p, ok := a.cfg.FilterPresets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown filter preset %q", preset)
		}
		return &tinydialogs.Filter{Patterns: p.Patterns, Description: p.Description}, nil
	}
	if patterns == "" {
		return nil, nil
	}
	return &tinydialogs.Filter{Patterns: splitList(patterns), Description: desc}, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseKind(s string) (tinydialogs.MessageBoxKind, error) {
	switch s {
	case "ok":
		return tinydialogs.Ok, nil
	case "okcancel":
		return tinydialogs.OkCancel, nil
	case "yesno":
		return tinydialogs.YesNo, nil
	default:
		return 0, fmt.Errorf("unknown message box kind %q", s)
	}
}

func parseIcon(s string) (tinydialogs.Icon, error) {
	switch s {
	case "info":
		return tinydialogs.IconInfo, nil
	case "warning":
		return tinydialogs.IconWarning, nil
	case "error":
		return tinydialogs.IconError, nil
	case "question":
		return tinydialogs.IconQuestion, nil
	default:
		return 0, fmt.Errorf("unknown icon %q", s)
	}
}

func parseButton(s string) (tinydialogs.Button, error) {
	switch s {
	case "ok", "yes":
		return tinydialogs.ButtonOkYes, nil
	case "cancel", "no":
		return tinydialogs.ButtonCancelNo, nil
	default:
		return 0, fmt.Errorf("unknown button %q", s)
	}
}

// parseColorDefault accepts "#RRGGBB" or "r,g,b".
func parseColorDefault(s string) (tinydialogs.DefaultColor, error) {
	if strings.HasPrefix(s, "#") {
		if _, err := tinydialogs.ParseHexColor(s); err != nil {
			return nil, err
		}
		return tinydialogs.HexColor(s), nil
	}
	parts := splitList(s)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid color %q: want #RRGGBB or r,g,b", s)
	}
	var rgb tinydialogs.RGBColor
	for i, p := range parts {
		var v int
		if _, err := fmt.Sscanf(p, "%d", &v); err != nil || v < 0 || v > 255 {
			return nil, fmt.Errorf("invalid color component %q", p)
		}
		rgb[i] = byte(v)
	}
	return rgb, nil
}
