package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexcabrera/surface/hexcolor"
)

func TestDefaultThemeStylesCached(t *testing.T) {
	th := DefaultTheme()
	if th.S() != th.S() {
		t.Fatal("S() should return the cached styles")
	}
}

func TestFormThemeNotNil(t *testing.T) {
	if DefaultTheme().Form() == nil {
		t.Fatal("Form() returned nil")
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	th, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if th.Primary != DefaultTheme().Primary {
		t.Fatal("missing file should keep defaults")
	}
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	data := "primary: \"#FF0000\"\ntext_dim: 336699\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if th.Primary != hexcolor.MustParse("#FF0000") {
		t.Errorf("primary = %s, want #FFFF0000", th.Primary.Hex())
	}
	if th.TextDim != hexcolor.MustParse("#336699") {
		t.Errorf("text_dim = %s, want #FF336699", th.TextDim.Hex())
	}
	if th.Secondary != DefaultTheme().Secondary {
		t.Error("unset fields should keep defaults")
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("primary: notacolor\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("bad color should error")
	}
}
