package ui

import "testing"

func TestThemeFromName(t *testing.T) {
	t.Setenv("HERBWALA_THEME", "")
	t.Setenv("COLORFGBG", "")

	if !ThemeFromName("dark").IsDark {
		t.Fatalf("expected dark theme for name %q", "dark")
	}
	if ThemeFromName("light").IsDark {
		t.Fatalf("expected light theme for name %q", "light")
	}
	if ThemeFromName("").IsDark {
		t.Fatalf("expected auto-detect to fall back to light in a bare environment")
	}
}

func TestDetectThemeEnvOverride(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("HERBWALA_THEME", "dark")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme when HERBWALA_THEME=dark")
	}

	t.Setenv("HERBWALA_THEME", "light")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme when HERBWALA_THEME=light")
	}
}

func TestDetectThemeColorFGBG(t *testing.T) {
	t.Setenv("HERBWALA_THEME", "")

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for black terminal background")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme for white terminal background")
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if s.RenderDivider(0) == "" {
		t.Fatalf("divider must never be empty")
	}
}
