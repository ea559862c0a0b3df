package keywords

import "testing"

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"flex", "none"} {
		if got := NewDisplay(s).String(); got != s {
			t.Fatalf("display %s : got %s", s, got)
		}
	}
	for _, s := range []string{"inherit", "ltr", "rtl"} {
		if got := NewDirection(s).String(); got != s {
			t.Fatalf("direction %s : got %s", s, got)
		}
	}
	for _, s := range []string{"relative", "absolute"} {
		if got := NewPositionType(s).String(); got != s {
			t.Fatalf("position %s : got %s", s, got)
		}
	}
	for _, s := range []string{"visible", "hidden"} {
		if got := NewOverflow(s).String(); got != s {
			t.Fatalf("overflow %s : got %s", s, got)
		}
	}
	for _, s := range []string{"row", "column", "row-reverse", "column-reverse"} {
		if got := NewFlexDirection(s).String(); got != s {
			t.Fatalf("flex-direction %s : got %s", s, got)
		}
	}
	for _, s := range []string{"nowrap", "wrap", "wrap-reverse"} {
		if got := NewFlexWrap(s).String(); got != s {
			t.Fatalf("flex-wrap %s : got %s", s, got)
		}
	}
	for _, s := range []string{"flex-start", "flex-end", "center", "baseline", "stretch"} {
		if got := NewAlignItems(s).String(); got != s {
			t.Fatalf("align-items %s : got %s", s, got)
		}
	}
	for _, s := range []string{"auto", "flex-start", "flex-end", "center", "baseline", "stretch"} {
		if got := NewAlignSelf(s).String(); got != s {
			t.Fatalf("align-self %s : got %s", s, got)
		}
	}
	for _, s := range []string{"flex-start", "flex-end", "center", "stretch", "space-between", "space-around"} {
		if got := NewAlignContent(s).String(); got != s {
			t.Fatalf("align-content %s : got %s", s, got)
		}
	}
	for _, s := range []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"} {
		if got := NewJustifyContent(s).String(); got != s {
			t.Fatalf("justify-content %s : got %s", s, got)
		}
	}
}

func TestUnknown(t *testing.T) {
	if NewDisplay("block") != 0 {
		t.Fatal("block is not a supported display")
	}
	if NewOverflow("scroll") != 0 {
		t.Fatal("scroll is not a supported overflow")
	}
	if NewAlignItems("auto") != 0 {
		t.Fatal("auto is not a valid align-items")
	}
	if NewJustifyContent("stretch") != 0 {
		t.Fatal("stretch is not a valid justify-content")
	}
}
