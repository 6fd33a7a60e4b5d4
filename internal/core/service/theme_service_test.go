package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobzen/dashboard/internal/core/domain"
)

func TestThemeService_ActivePrecedence(t *testing.T) {
	prefs := newStubPrefs()
	prefs.prefs["u1"] = domain.ThemeMidnight
	svc := NewThemeService(prefs, zerolog.Nop())
	ctx := context.Background()

	cases := []struct {
		name   string
		userID string
		cookie string
		want   domain.ThemeID
	}{
		{"stored preference wins", "u1", "forest", domain.ThemeMidnight},
		{"cookie for user without preference", "u2", "forest", domain.ThemeForest},
		{"cookie for anonymous visitor", "", "navy", domain.ThemeNavy},
		{"unknown cookie falls back", "", "sepia", domain.ThemeDefault},
		{"nothing set", "", "", domain.ThemeDefault},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := svc.Active(ctx, tc.userID, tc.cookie); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestThemeService_ActiveIgnoresRepositoryFailure(t *testing.T) {
	prefs := newStubPrefs()
	prefs.getErr = errors.New("mongo down")
	svc := NewThemeService(prefs, zerolog.Nop())

	if got := svc.Active(context.Background(), "u1", "forest"); got != domain.ThemeForest {
		t.Fatalf("expected cookie theme, got %s", got)
	}
}

func TestThemeService_Select(t *testing.T) {
	prefs := newStubPrefs()
	svc := NewThemeService(prefs, zerolog.Nop())

	theme, err := svc.Select(context.Background(), "u1", domain.ThemeForest)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if theme.Name != "Forest" {
		t.Fatalf("unexpected theme: %+v", theme)
	}
	if prefs.prefs["u1"] != domain.ThemeForest {
		t.Fatal("expected preference to be stored")
	}

	if _, err := svc.Select(context.Background(), "u1", "sepia"); !errors.Is(err, domain.ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
	if prefs.prefs["u1"] != domain.ThemeForest {
		t.Fatal("invalid selection must not overwrite the stored preference")
	}
}

func TestThemeService_NilRepository(t *testing.T) {
	svc := NewThemeService(nil, zerolog.Nop())

	if _, err := svc.Select(context.Background(), "u1", domain.ThemeNavy); err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if got := svc.Active(context.Background(), "u1", "navy"); got != domain.ThemeNavy {
		t.Fatalf("expected navy, got %s", got)
	}
}
