package domain

import (
	"strings"
	"testing"
)

func TestThemeTokens_AllThemesComplete(t *testing.T) {
	reference := ThemeTokens(ThemeDefault).Keys()
	if len(reference) < 40 {
		t.Fatalf("expected at least 40 tokens, got %d", len(reference))
	}

	for _, theme := range Themes {
		tokens := ThemeTokens(theme.ID)
		if len(tokens) != len(reference) {
			t.Fatalf("%s: expected %d tokens, got %d", theme.ID, len(reference), len(tokens))
		}
		for _, key := range reference {
			v, ok := tokens[key]
			if !ok {
				t.Fatalf("%s: missing token %s", theme.ID, key)
			}
			if strings.TrimSpace(v) == "" {
				t.Fatalf("%s: empty value for %s", theme.ID, key)
			}
		}
	}
}

func TestThemeTokens_UnknownFallsBackToDefault(t *testing.T) {
	got := ThemeTokens("sepia")
	want := ThemeTokens(ThemeDefault)

	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("token %s: expected %q, got %q", k, v, got[k])
		}
	}
	if ThemeID("sepia").Resolve() != ThemeDefault {
		t.Fatalf("expected unknown theme to resolve to default")
	}
	if LookupTheme("").ID != ThemeDefault {
		t.Fatalf("expected empty theme to resolve to default")
	}
}

func TestThemeTokens_ReturnsCopy(t *testing.T) {
	tokens := ThemeTokens(ThemeForest)
	tokens["--theme-page-bg"] = "red"

	if ThemeTokens(ThemeForest)["--theme-page-bg"] != "#E6E5E7" {
		t.Fatalf("table was mutated through returned map")
	}
}

func TestStyleSheet_Idempotent(t *testing.T) {
	for _, theme := range Themes {
		first := StyleSheet(theme.ID)
		second := StyleSheet(theme.ID)
		if first != second {
			t.Fatalf("%s: stylesheet differs between renders", theme.ID)
		}
		if !strings.HasPrefix(first, ":root {\n") || !strings.HasSuffix(first, "}\n") {
			t.Fatalf("%s: unexpected stylesheet shape: %q", theme.ID, first)
		}
	}

	css := StyleSheet(ThemeNavy)
	if !strings.Contains(css, "  --theme-page-bg: #FFFFFF;\n") {
		t.Fatalf("navy page background missing from stylesheet:\n%s", css)
	}
}

func TestStyleSheet_SwitchOverwritesEveryVariable(t *testing.T) {
	forest := ThemeTokens(ThemeForest)
	midnight := ThemeTokens(ThemeMidnight)

	applied := map[string]string{}
	for k, v := range forest {
		applied[k] = v
	}
	for k, v := range midnight {
		applied[k] = v
	}

	for k, v := range applied {
		if midnight[k] != v {
			t.Fatalf("residual value for %s after switching to midnight", k)
		}
	}
}
