package csscolor_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/csscolor"
	"github.com/emmetio/py-emmet/internal/csstoken"
)

func TestFormatShortHex(t *testing.T) {
	got := csscolor.Format(csstoken.ColorValue{R: 0xff, G: 0xcc, B: 0, A: 1}, true)
	if got != "#fc0" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatFullHexWhenShortDisabled(t *testing.T) {
	got := csscolor.Format(csstoken.ColorValue{R: 0xff, G: 0xcc, B: 0, A: 1}, false)
	if got != "#ffcc00" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatRGBAWhenAlphaNotOne(t *testing.T) {
	got := csscolor.Format(csstoken.ColorValue{R: 255, G: 255, B: 255, A: 0.5}, true)
	if got != "rgba(255, 255, 255, 0.5)" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatTransparentKeyword(t *testing.T) {
	got := csscolor.Format(csstoken.ColorValue{}, true)
	if got != "transparent" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatFullHexWhenNotEvenlyDivisible(t *testing.T) {
	got := csscolor.Format(csstoken.ColorValue{R: 1, G: 2, B: 3, A: 1}, true)
	if got != "#010203" {
		t.Fatalf("got %q", got)
	}
}
