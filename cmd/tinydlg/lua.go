package main

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"tinydialogs"
)

// LuaEngine runs user scripts against a `dlg` module exposing every
// dialog operation, so a sequence of dialogs can be chained with plain
// Lua control flow. File-dialog calls that pass an empty path start in
// the last directory a dialog of the same kind produced during this
// session.
type LuaEngine struct {
	app   *App
	state *lua.LState
}

func newLuaEngine(a *App) *LuaEngine {
	e := &LuaEngine{app: a, state: lua.NewState()}
	e.registerDlgModule(e.state)
	return e
}

// Close cleans up the Lua state
func (e *LuaEngine) Close() {
	if e.state != nil {
		e.state.Close()
	}
}

// RunFile executes a Lua script file. The script communicates its
// outcome by assigning to the global `result`.
func (e *LuaEngine) RunFile(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("script not found: %s", path)
	}

	L := e.state
	L.SetGlobal("result", lua.LNil)

	if err := L.DoFile(path); err != nil {
		return "", fmt.Errorf("script error: %w", err)
	}

	result := L.GetGlobal("result")
	if result != lua.LNil {
		return result.String(), nil
	}
	return "", nil
}

// registerDlgModule registers the dlg Lua module with exposed functions
func (e *LuaEngine) registerDlgModule(L *lua.LState) {
	dlg := L.NewTable()

	L.SetField(dlg, "message_box", L.NewFunction(e.luaMessageBox))
	L.SetField(dlg, "input", L.NewFunction(e.luaInput))
	L.SetField(dlg, "password", L.NewFunction(e.luaPassword))
	L.SetField(dlg, "save_file", L.NewFunction(e.luaSaveFile))
	L.SetField(dlg, "open_file", L.NewFunction(e.luaOpenFile))
	L.SetField(dlg, "open_file_multi", L.NewFunction(e.luaOpenFileMulti))
	L.SetField(dlg, "select_folder", L.NewFunction(e.luaSelectFolder))
	L.SetField(dlg, "list", L.NewFunction(e.luaList))
	L.SetField(dlg, "color", L.NewFunction(e.luaColor))
	L.SetField(dlg, "supports_list", L.NewFunction(e.luaSupportsList))
	L.SetField(dlg, "log", L.NewFunction(e.luaLog))

	L.SetGlobal("dlg", dlg)
}

// luaMessageBox shows a message box: dlg.message_box(kind, title, message [, icon [, default]]) -> ok
func (e *LuaEngine) luaMessageBox(L *lua.LState) int {
	kind, err := parseKind(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	title := L.CheckString(2)
	message := L.CheckString(3)

	opts := []tinydialogs.MessageBoxOption{}
	if iconName := L.OptString(4, ""); iconName != "" {
		icon, err := parseIcon(iconName)
		if err != nil {
			L.ArgError(4, err.Error())
			return 0
		}
		opts = append(opts, tinydialogs.WithIcon(icon))
	}
	if buttonName := L.OptString(5, ""); buttonName != "" {
		button, err := parseButton(buttonName)
		if err != nil {
			L.ArgError(5, err.Error())
			return 0
		}
		opts = append(opts, tinydialogs.WithDefaultButton(button))
	}

	choice := e.app.dlg.MessageBox(kind, title, message, opts...)
	L.Push(lua.LBool(choice == tinydialogs.ButtonOkYes))
	return 1
}

// luaInput shows an input box: dlg.input(title, message [, default]) -> string | nil
func (e *LuaEngine) luaInput(L *lua.LState) int {
	title := L.CheckString(1)
	message := L.CheckString(2)
	def := L.OptString(3, "")

	value, ok := e.app.dlg.InputBox(title, message, def)
	return pushOptString(L, value, ok)
}

// luaPassword shows a masked input box: dlg.password(title, message) -> string | nil
func (e *LuaEngine) luaPassword(L *lua.LState) int {
	title := L.CheckString(1)
	message := L.CheckString(2)

	value, ok := e.app.dlg.PasswordBox(title, message)
	return pushOptString(L, value, ok)
}

// luaSaveFile shows a save-file picker:
// dlg.save_file(title [, path [, patterns [, description]]]) -> string | nil
func (e *LuaEngine) luaSaveFile(L *lua.LState) int {
	title := L.CheckString(1)
	path := e.defaultPath(L.OptString(2, ""), kindSave)
	filter := optFilter(L, 3, 4)

	value, ok := e.app.dlg.SaveFileDialog(title, path, filter)
	if ok {
		e.app.paths.Remember(kindSave, value)
	}
	return pushOptString(L, value, ok)
}

// luaOpenFile shows a single-selection open-file picker:
// dlg.open_file(title [, path [, patterns [, description]]]) -> string | nil
func (e *LuaEngine) luaOpenFile(L *lua.LState) int {
	title := L.CheckString(1)
	path := e.defaultPath(L.OptString(2, ""), kindOpen)
	filter := optFilter(L, 3, 4)

	value, ok := e.app.dlg.OpenFileDialog(title, path, filter)
	if ok {
		e.app.paths.Remember(kindOpen, value)
	}
	return pushOptString(L, value, ok)
}

// luaOpenFileMulti shows a multi-selection open-file picker:
// dlg.open_file_multi(title [, path [, patterns [, description]]]) -> table | nil
func (e *LuaEngine) luaOpenFileMulti(L *lua.LState) int {
	title := L.CheckString(1)
	path := e.defaultPath(L.OptString(2, ""), kindOpen)
	filter := optFilter(L, 3, 4)

	values, ok := e.app.dlg.OpenFileDialogMulti(title, path, filter)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	e.app.paths.Remember(kindOpen, values[0])

	tbl := L.NewTable()
	for _, v := range values {
		tbl.Append(lua.LString(v))
	}
	L.Push(tbl)
	return 1
}

// luaSelectFolder shows a folder picker: dlg.select_folder(title [, path]) -> string | nil
func (e *LuaEngine) luaSelectFolder(L *lua.LState) int {
	title := L.CheckString(1)
	path := e.defaultPath(L.OptString(2, ""), kindFolder)

	value, ok := e.app.dlg.SelectFolderDialog(title, path)
	if ok {
		e.app.paths.RememberDir(kindFolder, value)
	}
	return pushOptString(L, value, ok)
}

// luaList shows the list chooser: dlg.list(title, columns [, cells]) -> string | nil
func (e *LuaEngine) luaList(L *lua.LState) int {
	title := L.CheckString(1)
	columns := tableToStrings(L.CheckTable(2))
	var cells []string
	if tbl := L.OptTable(3, nil); tbl != nil {
		cells = tableToStrings(tbl)
	}

	if !e.app.dlg.SupportsListDialog() {
		L.RaiseError("the list dialog is not supported on this platform")
		return 0
	}

	value, ok := e.app.dlg.ListDialog(title, columns, cells)
	return pushOptString(L, value, ok)
}

// luaColor shows the color chooser: dlg.color(title, default) -> hex, {r,g,b} | nil
// default is either a "#RRGGBB" string or a {r,g,b} table.
func (e *LuaEngine) luaColor(L *lua.LState) int {
	title := L.CheckString(1)

	var def tinydialogs.DefaultColor
	switch v := L.CheckAny(2).(type) {
	case lua.LString:
		def = tinydialogs.HexColor(string(v))
	case *lua.LTable:
		var rgb tinydialogs.RGBColor
		for i := 0; i < 3; i++ {
			n, ok := v.RawGetInt(i + 1).(lua.LNumber)
			if !ok {
				L.ArgError(2, "color table must hold three numbers")
				return 0
			}
			rgb[i] = byte(n)
		}
		def = rgb
	default:
		L.ArgError(2, "want a hex string or a {r,g,b} table")
		return 0
	}

	hex, rgb, ok := e.app.dlg.ColorChooser(title, def)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}

	tbl := L.NewTable()
	for _, c := range rgb {
		tbl.Append(lua.LNumber(c))
	}
	L.Push(lua.LString(hex))
	L.Push(tbl)
	return 2
}

// luaSupportsList reports list chooser availability: dlg.supports_list() -> bool
func (e *LuaEngine) luaSupportsList(L *lua.LState) int {
	L.Push(lua.LBool(e.app.dlg.SupportsListDialog()))
	return 1
}

// luaLog prints to the debug log: dlg.log(message)
func (e *LuaEngine) luaLog(L *lua.LState) int {
	LogDebug("[Lua] %s", L.CheckString(1))
	return 0
}

// defaultPath substitutes the remembered last directory when the
// script did not give a starting path.
func (e *LuaEngine) defaultPath(path, kind string) string {
	if path != "" {
		return path
	}
	if dir, ok := e.app.paths.LastDir(kind); ok {
		return dir + string(os.PathSeparator)
	}
	return ""
}

// optFilter reads the optional patterns table and description.
func optFilter(L *lua.LState, patternsArg, descArg int) *tinydialogs.Filter {
	tbl := L.OptTable(patternsArg, nil)
	if tbl == nil {
		return nil
	}
	return &tinydialogs.Filter{
		Patterns:    tableToStrings(tbl),
		Description: L.OptString(descArg, ""),
	}
}

func tableToStrings(tbl *lua.LTable) []string {
	var out []string
	tbl.ForEach(func(_, v lua.LValue) {
		out = append(out, v.String())
	})
	return out
}

func pushOptString(L *lua.LState, value string, ok bool) int {
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(value))
	return 1
}
