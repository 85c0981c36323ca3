package types

import "testing"

func TestParsePosition(t *testing.T) {
	for _, pos := range Positions() {
		if got := ParsePosition(string(pos)); got != pos {
			t.Errorf("ParsePosition(%q) = %q, want %q", pos, got, pos)
		}
	}

	for _, name := range []string{"", "middle", "south-east"} {
		if got := ParsePosition(name); got != BottomRight {
			t.Errorf("ParsePosition(%q) = %q, want default bottom-right", name, got)
		}
	}
}

func TestWatermarkSpecIsImage(t *testing.T) {
	text := WatermarkSpec{Text: "hello"}
	if text.IsImage() {
		t.Error("text spec reported as image watermark")
	}

	img := WatermarkSpec{ImagePath: "logo.png"}
	if !img.IsImage() {
		t.Error("image spec not reported as image watermark")
	}
}

func TestValidSizeClass(t *testing.T) {
	for _, class := range []SizeClass{SizeSmall, SizeMedium, SizeLarge} {
		if !ValidSizeClass(class) {
			t.Errorf("ValidSizeClass(%q) = false, want true", class)
		}
	}
	if ValidSizeClass("huge") {
		t.Error(`ValidSizeClass("huge") = true, want false`)
	}
}
