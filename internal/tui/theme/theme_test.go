package theme

import "testing"

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("nope").Name; got != FlexokiDark.Name {
		t.Errorf("ByName(nope) = %q, want %q", got, FlexokiDark.Name)
	}
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %q", got)
	}
}

func TestNextCycles(t *testing.T) {
	name := All[0].Name
	for range All {
		name = Next(name)
	}
	if name != All[0].Name {
		t.Errorf("cycling through all themes ended at %q, want %q", name, All[0].Name)
	}
}

func TestSeriesColorWraps(t *testing.T) {
	th := FlexokiDark
	if th.SeriesColor(len(th.Series)) != th.SeriesColor(0) {
		t.Error("SeriesColor should wrap around")
	}
	if (Theme{Accent: "1"}).SeriesColor(3) != "1" {
		t.Error("SeriesColor without series should use the accent")
	}
}
