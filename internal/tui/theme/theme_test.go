package theme

import "testing"

func TestLoad(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) error: %v", name, err)
			}
			if th.Name != name {
				t.Errorf("Name = %q, want %q", th.Name, name)
			}
			if th.Bg == "" || th.Fg == "" || th.Block == "" {
				t.Errorf("theme %q has empty colors: %+v", name, th)
			}
		})
	}
}

func TestLoadDefaultsToDark(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if th.Name != "dark" {
		t.Errorf("Name = %q, want dark", th.Name)
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("solarized"); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestLoadIsCaseInsensitive(t *testing.T) {
	th, err := Load("Light")
	if err != nil {
		t.Fatalf("Load(Light) error: %v", err)
	}
	if th.Name != "light" {
		t.Errorf("Name = %q, want light", th.Name)
	}
}
