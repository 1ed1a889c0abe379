package main

import (
	"bytes"
	"strings"
	"testing"

	"tinydialogs"
)

// fakeProvider answers with scripted results so every command can run
// without the native library.
type fakeProvider struct {
	messageBoxResult int
	inputResult      *string
	fileResult       *string
	folderResult     *string
	listResult       *string
	colorHex         string
	colorRGB         [3]byte
	colorOK          bool
	listSupported    bool

	lastPath        string
	lastPatterns    []string
	lastDescription string
	lastDefaultText *string
	lastMulti       bool
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func strPtr(s string) *string { return &s }

func (f *fakeProvider) MessageBox(title, message, kind, icon string, defaultButton int) int {
	return f.messageBoxResult
}

func (f *fakeProvider) InputBox(title, message string, defaultText *string) (string, bool) {
	f.lastDefaultText = defaultText
	return deref(f.inputResult)
}

func (f *fakeProvider) SaveFileDialog(title, path string, patterns []string, description string) (string, bool) {
	f.lastPath, f.lastPatterns, f.lastDescription = path, patterns, description
	return deref(f.fileResult)
}

func (f *fakeProvider) OpenFileDialog(title, path string, patterns []string, description string, multi bool) (string, bool) {
	f.lastPath, f.lastPatterns, f.lastDescription, f.lastMulti = path, patterns, description, multi
	return deref(f.fileResult)
}

func (f *fakeProvider) SelectFolderDialog(title, path string) (string, bool) {
	f.lastPath = path
	return deref(f.folderResult)
}

func (f *fakeProvider) ListDialog(title string, columns []string, rows int, cells []string) (string, bool) {
	return deref(f.listResult)
}

func (f *fakeProvider) ColorChooser(title string, defaultHex *string, defaultRGB [3]byte) (string, [3]byte, bool) {
	return f.colorHex, f.colorRGB, f.colorOK
}

func (f *fakeProvider) SupportsListDialog() bool { return f.listSupported }

func newTestApp(f *fakeProvider, cfg *Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewApp(f, cfg, out, errOut), out, errOut
}

func TestVersionCommand(t *testing.T) {
	app, out, _ := newTestApp(&fakeProvider{}, nil)
	if code := app.Run([]string{"version"}); code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	if strings.TrimSpace(out.String()) != Version {
		t.Errorf("Expected version %q, got %q", Version, out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	app, _, errOut := newTestApp(&fakeProvider{}, nil)
	if code := app.Run([]string{"frobnicate"}); code != 2 {
		t.Fatalf("Expected exit 2, got %d", code)
	}
	if !strings.Contains(errOut.String(), "unknown command") {
		t.Errorf("Expected an unknown-command message, got %q", errOut.String())
	}
}

func TestMessageCommand(t *testing.T) {
	t.Run("Ok click exits 0", func(t *testing.T) {
		app, out, _ := newTestApp(&fakeProvider{messageBoxResult: 1}, nil)
		code := app.Run([]string{"message", "-kind", "yesno", "-title", "t", "-text", "m"})
		if code != 0 {
			t.Fatalf("Expected exit 0, got %d", code)
		}
		if strings.TrimSpace(out.String()) != "ok/yes" {
			t.Errorf("Expected ok/yes output, got %q", out.String())
		}
	})

	t.Run("Cancel click exits 1", func(t *testing.T) {
		app, _, _ := newTestApp(&fakeProvider{messageBoxResult: 0}, nil)
		if code := app.Run([]string{"message", "-kind", "okcancel"}); code != 1 {
			t.Fatalf("Expected exit 1, got %d", code)
		}
	})

	t.Run("Bad kind exits 2", func(t *testing.T) {
		app, _, _ := newTestApp(&fakeProvider{messageBoxResult: 1}, nil)
		if code := app.Run([]string{"message", "-kind", "maybe"}); code != 2 {
			t.Fatalf("Expected exit 2, got %d", code)
		}
	})
}

func TestInputCommand(t *testing.T) {
	t.Run("Produced value is printed", func(t *testing.T) {
		app, out, _ := newTestApp(&fakeProvider{inputResult: strPtr("hello")}, nil)
		if code := app.Run([]string{"input", "-title", "t", "-text", "m"}); code != 0 {
			t.Fatalf("Expected exit 0, got %d", code)
		}
		if strings.TrimSpace(out.String()) != "hello" {
			t.Errorf("Expected hello, got %q", out.String())
		}
	})

	t.Run("Cancel is silent and exits 1", func(t *testing.T) {
		app, out, _ := newTestApp(&fakeProvider{}, nil)
		if code := app.Run([]string{"input"}); code != 1 {
			t.Fatalf("Expected exit 1, got %d", code)
		}
		if out.Len() != 0 {
			t.Errorf("Expected no output, got %q", out.String())
		}
	})
}

func TestJSONOutput(t *testing.T) {
	app, out, _ := newTestApp(&fakeProvider{inputResult: strPtr("hello")}, nil)
	if code := app.Run([]string{"-output", "json", "input"}); code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	if strings.TrimSpace(out.String()) != `{"value":"hello"}` {
		t.Errorf("Unexpected JSON output %q", out.String())
	}
}

func TestQueryOutput(t *testing.T) {
	t.Run("Query extracts a field", func(t *testing.T) {
		app, out, _ := newTestApp(&fakeProvider{inputResult: strPtr("hello")}, nil)
		if code := app.Run([]string{"-query", ".value", "input"}); code != 0 {
			t.Fatalf("Expected exit 0, got %d", code)
		}
		if strings.TrimSpace(out.String()) != `"hello"` {
			t.Errorf("Unexpected query output %q", out.String())
		}
	})

	t.Run("Query over the multi result", func(t *testing.T) {
		app, out, _ := newTestApp(&fakeProvider{fileResult: strPtr("a|b|c")}, nil)
		if code := app.Run([]string{"-query", ".values | length", "open-file-multi"}); code != 0 {
			t.Fatalf("Expected exit 0, got %d", code)
		}
		if strings.TrimSpace(out.String()) != "3" {
			t.Errorf("Unexpected query output %q", out.String())
		}
	})

	t.Run("Invalid query reports an error", func(t *testing.T) {
		app, _, errOut := newTestApp(&fakeProvider{inputResult: strPtr("x")}, nil)
		app.Run([]string{"-query", ".[", "input"})
		if !strings.Contains(errOut.String(), "invalid query") {
			t.Errorf("Expected an invalid-query message, got %q", errOut.String())
		}
	})
}

func TestOpenFileMultiCommand(t *testing.T) {
	app, out, _ := newTestApp(&fakeProvider{fileResult: strPtr("a|b")}, nil)
	if code := app.Run([]string{"open-file-multi"}); code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	if out.String() != "a\nb\n" {
		t.Errorf("Expected one path per line, got %q", out.String())
	}
}

func TestFilterFlags(t *testing.T) {
	t.Run("Inline patterns", func(t *testing.T) {
		f := &fakeProvider{fileResult: strPtr("/tmp/a.png")}
		app, _, _ := newTestApp(f, nil)
		code := app.Run([]string{"open-file", "-patterns", "*.png, *.jpg", "-filter-desc", "Image files"})
		if code != 0 {
			t.Fatalf("Expected exit 0, got %d", code)
		}
		if len(f.lastPatterns) != 2 || f.lastPatterns[0] != "*.png" || f.lastPatterns[1] != "*.jpg" {
			t.Errorf("Unexpected patterns %v", f.lastPatterns)
		}
		if f.lastDescription != "Image files" {
			t.Errorf("Unexpected description %q", f.lastDescription)
		}
	})

	t.Run("Named preset from config", func(t *testing.T) {
		cfg := &Config{FilterPresets: map[string]FilterPreset{
			"images": {Patterns: []string{"*.png"}, Description: "Images"},
		}}
		f := &fakeProvider{fileResult: strPtr("/tmp/a.png")}
		app, _, _ := newTestApp(f, cfg)
		if code := app.Run([]string{"open-file", "-filter-preset", "images"}); code != 0 {
			t.Fatalf("Expected exit 0, got %d", code)
		}
		if len(f.lastPatterns) != 1 || f.lastPatterns[0] != "*.png" {
			t.Errorf("Unexpected patterns %v", f.lastPatterns)
		}
	})

	t.Run("Unknown preset exits 2", func(t *testing.T) {
		app, _, errOut := newTestApp(&fakeProvider{}, nil)
		if code := app.Run([]string{"open-file", "-filter-preset", "nope"}); code != 2 {
			t.Fatalf("Expected exit 2, got %d", code)
		}
		if !strings.Contains(errOut.String(), "unknown filter preset") {
			t.Errorf("Expected an unknown-preset message, got %q", errOut.String())
		}
	})
}

func TestListCommandUnsupportedPlatform(t *testing.T) {
	app, _, errOut := newTestApp(&fakeProvider{listSupported: false}, nil)
	if code := app.Run([]string{"list", "-columns", "Id,Name"}); code != 2 {
		t.Fatalf("Expected exit 2, got %d", code)
	}
	if !strings.Contains(errOut.String(), "not supported") {
		t.Errorf("Expected a not-supported message, got %q", errOut.String())
	}
}

func TestColorCommand(t *testing.T) {
	t.Run("JSON output carries hex and rgb", func(t *testing.T) {
		f := &fakeProvider{colorHex: "#010203", colorRGB: [3]byte{1, 2, 3}, colorOK: true}
		app, out, _ := newTestApp(f, nil)
		if code := app.Run([]string{"-output", "json", "color", "-default", "#FF0000"}); code != 0 {
			t.Fatalf("Expected exit 0, got %d", code)
		}
		if strings.TrimSpace(out.String()) != `{"hex":"#010203","rgb":[1,2,3]}` {
			t.Errorf("Unexpected JSON output %q", out.String())
		}
	})

	t.Run("Cancel exits 1", func(t *testing.T) {
		app, _, _ := newTestApp(&fakeProvider{}, nil)
		if code := app.Run([]string{"color"}); code != 1 {
			t.Fatalf("Expected exit 1, got %d", code)
		}
	})
}

func TestParseColorDefault(t *testing.T) {
	t.Run("Hex string", func(t *testing.T) {
		def, err := parseColorDefault("#FF0000")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if _, ok := def.(tinydialogs.HexColor); !ok {
			t.Errorf("Expected a HexColor, got %T", def)
		}
	})

	t.Run("RGB triple", func(t *testing.T) {
		def, err := parseColorDefault("1, 2, 3")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		rgb, ok := def.(tinydialogs.RGBColor)
		if !ok || rgb != (tinydialogs.RGBColor{1, 2, 3}) {
			t.Errorf("Expected RGBColor{1 2 3}, got %v", def)
		}
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		for _, bad := range []string{"red", "1,2", "1,2,300", "#zzz"} {
			if _, err := parseColorDefault(bad); err == nil {
				t.Errorf("Expected an error for %q", bad)
			}
		}
	})
}

func TestOutputModeValidation(t *testing.T) {
	app, _, errOut := newTestApp(&fakeProvider{}, nil)
	if code := app.Run([]string{"-output", "xml", "version"}); code != 2 {
		t.Fatalf("Expected exit 2, got %d", code)
	}
	if !strings.Contains(errOut.String(), "unknown output mode") {
		t.Errorf("Expected an unknown-mode message, got %q", errOut.String())
	}
}
