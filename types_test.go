package tinydialogs

import "testing"

func TestNativeKeywords(t *testing.T) {
	kinds := map[MessageBoxKind]string{
		Ok:       "ok",
		OkCancel: "okcancel",
		YesNo:    "yesno",
	}
	for kind, want := range kinds {
		if got := kind.nativeString(); got != want {
			t.Errorf("MessageBoxKind %d: expected %q, got %q", int(kind), want, got)
		}
	}

	icons := map[Icon]string{
		IconInfo:     "info",
		IconWarning:  "warning",
		IconError:    "error",
		IconQuestion: "question",
	}
	for icon, want := range icons {
		if got := icon.nativeString(); got != want {
			t.Errorf("Icon %d: expected %q, got %q", int(icon), want, got)
		}
	}
}

func TestUnknownEnumValuesPanic(t *testing.T) {
	expectPanic(t, "kind", func() { _ = MessageBoxKind(42).nativeString() })
	expectPanic(t, "icon", func() { _ = Icon(42).nativeString() })
}

func TestButtonSentinels(t *testing.T) {
	if int(ButtonCancelNo) != 0 || int(ButtonOkYes) != 1 {
		t.Errorf("Button sentinels diverged from the native codes: %d %d",
			int(ButtonCancelNo), int(ButtonOkYes))
	}
}
