package locale

import (
	"context"
	"testing"
)

func TestParseLang(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en", EN},
		{"EN", EN},
		{"english", EN},
		{"vi", VI},
		{" vietnamese ", VI},
		{"ja", JA},
		{"fr", DefaultLang},
		{"", DefaultLang},
	}

	for _, tt := range tests {
		if got := ParseLang(tt.input); got != tt.want {
			t.Errorf("ParseLang(%q): got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLocaleContextRoundtrip(t *testing.T) {
	ctx := SetLocaleToContext(context.Background(), VI)

	lang, ok := GetLocaleFromContext(ctx)
	if !ok {
		t.Fatal("locale not found in context after set")
	}
	if lang != VI {
		t.Errorf("locale: got %q, want %q", lang, VI)
	}
	if got := GetLang(ctx); got != VI {
		t.Errorf("GetLang: got %q, want %q", got, VI)
	}
}

func TestLocaleContextDefaults(t *testing.T) {
	if _, ok := GetLocaleFromContext(context.Background()); ok {
		t.Error("empty context should not carry a locale")
	}
	if got := GetLang(context.Background()); got != DefaultLang {
		t.Errorf("GetLang on empty context: got %q, want %q", got, DefaultLang)
	}

	ctx := SetLocaleToContext(context.Background(), "klingon")
	if got := GetLang(ctx); got != DefaultLang {
		t.Errorf("invalid lang should fall back to default, got %q", got)
	}
}
