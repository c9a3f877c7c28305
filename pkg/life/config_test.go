package life

import "testing"

func TestFromMap(t *testing.T) {
	c := FromMap(nil)
	if c != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, want defaults", c)
	}

	c = FromMap(map[string]string{"w": "80", "h": "40", "seed": "-3", "density": "0.25"})
	if c.Width != 80 || c.Height != 40 || c.Seed != -3 || c.Density != 0.25 {
		t.Fatalf("FromMap parsed %+v", c)
	}

	c = FromMap(map[string]string{"w": "0", "h": "tall", "density": "1.5"})
	def := DefaultConfig()
	if c.Width != def.Width || c.Height != def.Height || c.Density != def.Density {
		t.Fatalf("invalid values must keep defaults, got %+v", c)
	}
}

func TestConfigBuild(t *testing.T) {
	c := Config{Width: 8, Height: 6, Seed: 5, Density: 1}
	g, err := c.Build()
	if err != nil {
		t.Fatal(err)
	}
	if g.Population() != 48 {
		t.Fatalf("population = %d, want 48", g.Population())
	}

	if _, err := (Config{Width: 0, Height: 3}).Build(); err == nil {
		t.Fatal("Build must reject a zero width")
	}
}
