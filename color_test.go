package tinydialogs

import "testing"

func TestParseHexColor(t *testing.T) {
	t.Run("Valid hex", func(t *testing.T) {
		rgb, err := ParseHexColor("#FF0000")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rgb != (RGBColor{255, 0, 0}) {
			t.Errorf("Expected {255 0 0}, got %v", rgb)
		}
	})

	t.Run("Invalid hex", func(t *testing.T) {
		if _, err := ParseHexColor("red"); err == nil {
			t.Error("Expected an error for a non-hex string")
		}
	})
}

func TestRGBColorHex(t *testing.T) {
	cases := []struct {
		rgb  RGBColor
		want string
	}{
		{RGBColor{255, 0, 0}, "#ff0000"},
		{RGBColor{0, 0, 0}, "#000000"},
		{RGBColor{1, 2, 3}, "#010203"},
	}
	for _, tc := range cases {
		if got := tc.rgb.Hex(); got != tc.want {
			t.Errorf("%v: expected %q, got %q", tc.rgb, tc.want, got)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	rgb, err := ParseHexColor(RGBColor{12, 34, 56}.Hex())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rgb != (RGBColor{12, 34, 56}) {
		t.Errorf("Round trip changed the color: %v", rgb)
	}
}
