package color

import (
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"with hash", "#eb6f92", Color{235, 111, 146}, false},
		{"without hash", "eb6f92", Color{235, 111, 146}, false},
		{"uppercase", "AABBCC", Color{170, 187, 204}, false},
		{"mixed case", "#AaBbCc", Color{170, 187, 204}, false},
		{"black", "000000", Color{0, 0, 0}, false},
		{"white", "FFFFFF", Color{255, 255, 255}, false},
		{"too short", "#fff", Color{}, true},
		{"too long", "#aabbccdd", Color{}, true},
		{"invalid chars", "GGGGGG", Color{}, true},
		{"trailing junk", "12345Z", Color{}, true},
		{"embedded sign", "+12345", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	c := Color{235, 111, 146}
	if got, want := c.Hex(), "#eb6f92"; got != want {
		t.Errorf("Color.Hex() = %q, want %q", got, want)
	}
}

func TestColorHexUpper(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Color{235, 111, 146}, "EB6F92"},
		{Color{0, 5, 10}, "00050A"},
		{Color{255, 255, 255}, "FFFFFF"},
	}
	for _, tt := range tests {
		if got := tt.color.HexUpper(); got != tt.want {
			t.Errorf("Color.HexUpper() = %q, want %q", got, tt.want)
		}
	}
}

func TestColorRGB(t *testing.T) {
	c := Color{235, 111, 146}
	if got, want := c.RGB(), "rgb(235, 111, 146)"; got != want {
		t.Errorf("Color.RGB() = %q, want %q", got, want)
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"EB6F92", "36393F", "00050A", "FFFFFF"} {
		c, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", hex, err)
		}
		if got := c.HexUpper(); got != hex {
			t.Errorf("round trip %q = %q", hex, got)
		}
	}
}
