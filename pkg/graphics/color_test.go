package graphics

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"", 0},
		{"#ff0000", ColorRed},
		{"#f00", ColorRed},
		{"#80ffffff", Color(0x80FFFFFF)},
		{"white", ColorWhite},
		{"Black", ColorBlack},
		{"clear", ColorTransparent},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"#12345", "#zzzzzz", "notacolor"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
		}
	}
}

func TestHSBRoundTrip(t *testing.T) {
	for _, c := range []Color{ColorRed, ColorGreen, ColorBlue, ColorWhite, ColorBlack, RGB(52, 152, 219)} {
		h, s, v := c.HSB()
		if got := HSBA(h, s, v, c.Alpha()); got != c {
			t.Errorf("HSB round trip of %v = %v", c, got)
		}
	}
}

func TestLighterDarker(t *testing.T) {
	base := RGB(100, 50, 50)
	_, _, v := base.HSB()

	_, _, lv := base.Lighter().HSB()
	if lv <= v {
		t.Errorf("expected lighter brightness > %v, got %v", v, lv)
	}
	_, _, dv := base.Darker().HSB()
	if dv >= v {
		t.Errorf("expected darker brightness < %v, got %v", v, dv)
	}

	if got := ColorWhite.Lighter(); got != ColorWhite {
		t.Errorf("white should stay white when lightened, got %v", got)
	}
	if got := ColorBlack.Darker(); got != ColorBlack {
		t.Errorf("black should stay black when darkened, got %v", got)
	}
	if got := ColorRed.WithAlpha8(0x80).Darker().Alpha(); got < 0.49 || got > 0.51 {
		t.Errorf("darker should keep alpha, got %v", got)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := ColorRed.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("unexpected RGBA for red: %x %x %x %x", r, g, b, a)
	}
	_, _, _, a = ColorTransparent.RGBA()
	if a != 0 {
		t.Errorf("expected transparent alpha 0, got %x", a)
	}
}
