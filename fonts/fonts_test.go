package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Small, Bold, Title} {
		if !Loaded(name) {
			t.Errorf("font %s not loaded", name)
		}
		if name.Get() == nil {
			t.Errorf("font %s has no face", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("nope"), 10); err == nil {
		t.Errorf("expected a parse error")
	}
	if Loaded("broken") {
		t.Errorf("broken font was registered")
	}
}
