package render

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsFresh(Te *testing.T) {
	a := DefaultConfig()
	a.Model = "stick"
	a.Resolution[0] = 10
	b := DefaultConfig()
	if b.Model != "default" || b.Resolution[0] != 1920 || b.Resolution[1] != 1080 {
		Te.Error("mutating one DefaultConfig leaked into another")
	}
}

func TestModelByName(Te *testing.T) {
	names := []string{"default", "ball_and_stick", "space_filling", "stick", "surface"}
	for _, n := range names {
		if _, err := ModelByName(n); err != nil {
			Te.Errorf("model %s: %v", n, err)
		}
	}
	if _, err := ModelByName("wireframe"); err == nil {
		Te.Error("expected an error for an unknown model")
	}
	//each call builds the model anew
	a, _ := ModelByName("space_filling")
	if a.UseSticks {
		Te.Error("space_filling must not use sticks")
	}
	a.UseSticks = true
	b, _ := ModelByName("space_filling")
	if b.UseSticks {
		Te.Error("mutating one model leaked into another")
	}
	s, _ := ModelByName("stick")
	if s.ScaleBallRadius != 0 {
		Te.Error("stick model must hide the balls")
	}
	m, _ := ModelByName("surface")
	if m.Ball != "2" || m.UseSticks {
		Te.Error("wrong surface model settings")
	}
}

func TestConfigRoundTrip(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "render.toml")
	cfg := DefaultConfig()
	cfg.Model = "ball_and_stick"
	cfg.CameraView = "zy"
	cfg.Brightness = 0.7
	cfg.BackgroundColor = []float64{1, 1, 1}
	if err := cfg.Write(name); err != nil {
		Te.Fatal(err)
	}
	back, err := ReadConfig(name)
	if err != nil {
		Te.Fatal(err)
	}
	if back.Model != "ball_and_stick" || back.CameraView != "zy" || back.Brightness != 0.7 {
		Te.Errorf("round trip changed the config: %+v", back)
	}
	//the resolution written by Write must come back readable and intact
	if len(back.Resolution) != 2 || back.Resolution[0] != 1920 || back.Resolution[1] != 1080 {
		Te.Errorf("resolution did not survive the round trip: %v", back.Resolution)
	}
	if len(back.BackgroundColor) != 3 || back.BackgroundColor[0] != 1 {
		Te.Errorf("background color did not survive: %v", back.BackgroundColor)
	}
	//a config naming a bogus model is rejected on read
	cfg.Model = "wireframe"
	if err := cfg.Write(name); err != nil {
		Te.Fatal(err)
	}
	if _, err := ReadConfig(name); err == nil {
		Te.Error("expected an error for a config with an unknown model")
	}
	//so is one with a malformed resolution
	cfg = DefaultConfig()
	cfg.Resolution = []int{1920}
	if err := cfg.Write(name); err != nil {
		Te.Fatal(err)
	}
	if _, err := ReadConfig(name); err == nil {
		Te.Error("expected an error for a one-element resolution")
	}
	cfg.Resolution = []int{1920, -1}
	if err := cfg.Write(name); err != nil {
		Te.Fatal(err)
	}
	if _, err := ReadConfig(name); err == nil {
		Te.Error("expected an error for a non-positive resolution")
	}
}
