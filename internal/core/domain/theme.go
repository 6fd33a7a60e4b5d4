package domain

import (
	"sort"
	"strings"
)

// ThemeID identifies one of the predefined visual themes.
type ThemeID string

const (
	ThemeDefault  ThemeID = "default"
	ThemeForest   ThemeID = "forest"
	ThemeMidnight ThemeID = "midnight"
	ThemeNavy     ThemeID = "navy"
)

// Theme describes a selectable theme for pickers.
type Theme struct {
	ID         ThemeID `json:"id"`
	Name       string  `json:"name"`
	Primary    string  `json:"primary"`
	Secondary  string  `json:"secondary"`
	Background string  `json:"background"`
}

// TokenMap binds CSS variable names (leading "--" included) to values.
type TokenMap map[string]string

// Themes is the closed set of themes in picker order.
var Themes = []Theme{
	{ID: ThemeDefault, Name: "Default", Primary: "#3b82f6", Secondary: "#10b981", Background: "#F5F5FA"},
	{ID: ThemeForest, Name: "Forest", Primary: "#5C6A5B", Secondary: "#374035", Background: "#E6E5E7"},
	{ID: ThemeMidnight, Name: "Midnight", Primary: "#1E1E1E", Secondary: "#545454", Background: "#C7C7C7"},
	{ID: ThemeNavy, Name: "Navy", Primary: "#292F3D", Secondary: "#575A63", Background: "#FFFFFF"},
}

// Valid reports whether id names a predefined theme.
func (id ThemeID) Valid() bool {
	_, ok := themeTokens[id]
	return ok
}

// Resolve returns id when it is known and ThemeDefault otherwise.
func (id ThemeID) Resolve() ThemeID {
	if id.Valid() {
		return id
	}
	return ThemeDefault
}

// LookupTheme returns the picker entry for id, falling back to the default.
func LookupTheme(id ThemeID) Theme {
	id = id.Resolve()
	for _, t := range Themes {
		if t.ID == id {
			return t
		}
	}
	return Themes[0]
}

// ThemeTokens returns a copy of the token map for id. Unknown ids get the
// default theme's tokens.
func ThemeTokens(id ThemeID) TokenMap {
	src := themeTokens[id.Resolve()]
	out := make(TokenMap, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Keys returns the variable names in sorted order.
func (m TokenMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Declarations renders the map as CSS declarations, one per line, sorted by
// variable name so the output is stable.
func (m TokenMap) Declarations(indent string) string {
	var b strings.Builder
	for _, k := range m.Keys() {
		b.WriteString(indent)
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(m[k])
		b.WriteString(";\n")
	}
	return b.String()
}

// StyleSheet renders the theme's tokens as a :root rule.
func StyleSheet(id ThemeID) string {
	return ":root {\n" + ThemeTokens(id).Declarations("  ") + "}\n"
}

// themeTokens is exhaustive per theme: every entry defines the same keys, so
// applying one theme fully replaces the variables of another.
var themeTokens = map[ThemeID]TokenMap{
	ThemeDefault: {
		"--primary":            "244.5 57% 51.2%",
		"--primary-foreground": "0 0% 100%",
		"--ring":               "244.5 57% 51.2%",
		"--border":             "220 13% 91%",
		"--input":              "220 13% 91%",

		"--theme-page-bg":              "#F5F5FA",
		"--theme-sidebar-bg":           "#ffffff",
		"--theme-sidebar-border":       "#e5e7eb",
		"--theme-navbar-bg":            "rgba(255, 255, 255, 0.85)",
		"--theme-nav-active-from":      "#4439CC",
		"--theme-nav-active-to":        "#5B52E6",
		"--theme-nav-active-shadow":    "rgba(68, 57, 204, 0.25)",
		"--theme-nav-hover-bg":         "#f3f4f6",
		"--theme-nav-hover-icon":       "#4439CC",
		"--theme-nav-text":             "#374151",
		"--theme-nav-active-text":      "#ffffff",
		"--theme-accent":               "#4439CC",
		"--theme-accent-light":         "#f3f4f6",
		"--theme-accent-light-hover":   "#DBEAFE",
		"--theme-logo-from":            "#4439CC",
		"--theme-logo-via":             "#5B52E6",
		"--theme-logo-to":              "#7C75F0",
		"--theme-avatar-from":          "#4439CC",
		"--theme-avatar-to":            "#7C75F0",
		"--theme-role-color":           "#4439CC",
		"--theme-user-card-bg":         "#f3f4f6",
		"--theme-user-card-border":     "#e5e7eb",
		"--theme-banner-from":          "#1e3a8a",
		"--theme-banner-via":           "#4439CC",
		"--theme-banner-to":            "#6d28d9",
		"--theme-card-bg":              "#ffffff",
		"--theme-card-border":          "#e5e7eb",
		"--theme-card-text":            "#111827",
		"--theme-card-subtext":         "#6b7280",
		"--theme-icon-1-from":          "#3b82f6",
		"--theme-icon-1-to":            "#6366f1",
		"--theme-icon-2-from":          "#10b981",
		"--theme-icon-2-to":            "#14b8a6",
		"--theme-icon-3-from":          "#8b5cf6",
		"--theme-icon-3-to":            "#a855f7",
		"--theme-icon-4-from":          "#f59e0b",
		"--theme-icon-4-to":            "#f97316",
		"--theme-qa-card-bg":           "#FAFAFA",
		"--theme-qa-card-border":       "#e5e7eb",
		"--theme-qa-card-hover-border": "#4439CC",
		"--theme-qa-icon-from":         "#4439CC",
		"--theme-qa-icon-to":           "#5B52E6",
	},
	ThemeForest: {
		"--primary":            "116 8% 39%",
		"--primary-foreground": "0 0% 100%",
		"--ring":               "116 8% 39%",
		"--border":             "60 3% 82%",
		"--input":              "60 3% 82%",

		"--theme-page-bg":              "#E6E5E7",
		"--theme-sidebar-bg":           "#f0f0ee",
		"--theme-sidebar-border":       "#d4d3d0",
		"--theme-navbar-bg":            "rgba(240, 240, 238, 0.9)",
		"--theme-nav-active-from":      "#374035",
		"--theme-nav-active-to":        "#5C6A5B",
		"--theme-nav-active-shadow":    "rgba(55, 64, 53, 0.3)",
		"--theme-nav-hover-bg":         "#e0dedd",
		"--theme-nav-hover-icon":       "#374035",
		"--theme-nav-text":             "#374035",
		"--theme-nav-active-text":      "#ffffff",
		"--theme-accent":               "#5C6A5B",
		"--theme-accent-light":         "#dde8dc",
		"--theme-accent-light-hover":   "#c8ddc7",
		"--theme-logo-from":            "#374035",
		"--theme-logo-via":             "#5C6A5B",
		"--theme-logo-to":              "#7a8f79",
		"--theme-avatar-from":          "#374035",
		"--theme-avatar-to":            "#5C6A5B",
		"--theme-role-color":           "#374035",
		"--theme-user-card-bg":         "#e0dedd",
		"--theme-user-card-border":     "#d4d3d0",
		"--theme-banner-from":          "#2a3029",
		"--theme-banner-via":           "#374035",
		"--theme-banner-to":            "#4a5948",
		"--theme-card-bg":              "#f5f4f2",
		"--theme-card-border":          "#d4d3d0",
		"--theme-card-text":            "#1a2019",
		"--theme-card-subtext":         "#5a6859",
		"--theme-icon-1-from":          "#374035",
		"--theme-icon-1-to":            "#5C6A5B",
		"--theme-icon-2-from":          "#5C6A5B",
		"--theme-icon-2-to":            "#7a8f79",
		"--theme-icon-3-from":          "#4a5948",
		"--theme-icon-3-to":            "#6b7d6a",
		"--theme-icon-4-from":          "#7a8f79",
		"--theme-icon-4-to":            "#9aaf99",
		"--theme-qa-card-bg":           "#eceae8",
		"--theme-qa-card-border":       "#d4d3d0",
		"--theme-qa-card-hover-border": "#374035",
		"--theme-qa-icon-from":         "#374035",
		"--theme-qa-icon-to":           "#5C6A5B",
	},
	ThemeMidnight: {
		"--primary":            "0 0% 12%",
		"--primary-foreground": "0 0% 100%",
		"--ring":               "0 0% 12%",
		"--border":             "0 0% 85%",
		"--input":              "0 0% 85%",

		"--theme-page-bg":              "#C7C7C7",
		"--theme-sidebar-bg":           "#f0f0f0",
		"--theme-sidebar-border":       "#d8d8d8",
		"--theme-navbar-bg":            "rgba(240, 240, 240, 0.9)",
		"--theme-nav-active-from":      "#1E1E1E",
		"--theme-nav-active-to":        "#545454",
		"--theme-nav-active-shadow":    "rgba(30, 30, 30, 0.3)",
		"--theme-nav-hover-bg":         "#e0e0e0",
		"--theme-nav-hover-icon":       "#1E1E1E",
		"--theme-nav-text":             "#1E1E1E",
		"--theme-nav-active-text":      "#ffffff",
		"--theme-accent":               "#1E1E1E",
		"--theme-accent-light":         "#e8e8e8",
		"--theme-accent-light-hover":   "#d8d8d8",
		"--theme-logo-from":            "#1E1E1E",
		"--theme-logo-via":             "#545454",
		"--theme-logo-to":              "#888888",
		"--theme-avatar-from":          "#1E1E1E",
		"--theme-avatar-to":            "#545454",
		"--theme-role-color":           "#545454",
		"--theme-user-card-bg":         "#e0e0e0",
		"--theme-user-card-border":     "#d8d8d8",
		"--theme-banner-from":          "#111111",
		"--theme-banner-via":           "#1E1E1E",
		"--theme-banner-to":            "#2d2d2d",
		"--theme-card-bg":              "#f0f0f0",
		"--theme-card-border":          "#d8d8d8",
		"--theme-card-text":            "#111111",
		"--theme-card-subtext":         "#545454",
		"--theme-icon-1-from":          "#1E1E1E",
		"--theme-icon-1-to":            "#545454",
		"--theme-icon-2-from":          "#545454",
		"--theme-icon-2-to":            "#888888",
		"--theme-icon-3-from":          "#2d2d2d",
		"--theme-icon-3-to":            "#666666",
		"--theme-icon-4-from":          "#888888",
		"--theme-icon-4-to":            "#aaaaaa",
		"--theme-qa-card-bg":           "#e8e8e8",
		"--theme-qa-card-border":       "#d8d8d8",
		"--theme-qa-card-hover-border": "#1E1E1E",
		"--theme-qa-icon-from":         "#1E1E1E",
		"--theme-qa-icon-to":           "#545454",
	},
	ThemeNavy: {
		"--primary":            "222 20% 20%",
		"--primary-foreground": "0 0% 100%",
		"--ring":               "222 20% 20%",
		"--border":             "223 16% 90%",
		"--input":              "223 16% 90%",

		"--theme-page-bg":              "#FFFFFF",
		"--theme-sidebar-bg":           "#ffffff",
		"--theme-sidebar-border":       "#e2e4e9",
		"--theme-navbar-bg":            "rgba(255, 255, 255, 0.9)",
		"--theme-nav-active-from":      "#292F3D",
		"--theme-nav-active-to":        "#575A63",
		"--theme-nav-active-shadow":    "rgba(41, 47, 61, 0.3)",
		"--theme-nav-hover-bg":         "#f0f1f4",
		"--theme-nav-hover-icon":       "#292F3D",
		"--theme-nav-text":             "#292F3D",
		"--theme-nav-active-text":      "#ffffff",
		"--theme-accent":               "#292F3D",
		"--theme-accent-light":         "#e8eaf0",
		"--theme-accent-light-hover":   "#d8dbe6",
		"--theme-logo-from":            "#292F3D",
		"--theme-logo-via":             "#575A63",
		"--theme-logo-to":              "#8a8f9e",
		"--theme-avatar-from":          "#292F3D",
		"--theme-avatar-to":            "#575A63",
		"--theme-role-color":           "#292F3D",
		"--theme-user-card-bg":         "#f0f1f4",
		"--theme-user-card-border":     "#e2e4e9",
		"--theme-banner-from":          "#1a2030",
		"--theme-banner-via":           "#292F3D",
		"--theme-banner-to":            "#383e4e",
		"--theme-card-bg":              "#ffffff",
		"--theme-card-border":          "#e2e4e9",
		"--theme-card-text":            "#111827",
		"--theme-card-subtext":         "#575A63",
		"--theme-icon-1-from":          "#292F3D",
		"--theme-icon-1-to":            "#575A63",
		"--theme-icon-2-from":          "#575A63",
		"--theme-icon-2-to":            "#8a8f9e",
		"--theme-icon-3-from":          "#383e4e",
		"--theme-icon-3-to":            "#6b7280",
		"--theme-icon-4-from":          "#8a8f9e",
		"--theme-icon-4-to":            "#b0b5c0",
		"--theme-qa-card-bg":           "#f5f6f8",
		"--theme-qa-card-border":       "#e2e4e9",
		"--theme-qa-card-hover-border": "#292F3D",
		"--theme-qa-icon-from":         "#292F3D",
		"--theme-qa-icon-to":           "#575A63",
	},
}
