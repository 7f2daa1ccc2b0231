package locale

import (
	"reflect"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Store == nil {
		t.Fatal("expected default store")
	}
	if cfg.Resolver == nil {
		t.Fatal("expected default resolver")
	}
	if cfg.DefaultLocale != "" {
		t.Fatalf("DefaultLocale = %q want empty", cfg.DefaultLocale)
	}
}

func TestNewConfigLocaleNormalization(t *testing.T) {
	cfg, err := NewConfig(WithLocales("es", "en_US", "es"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	want := []string{"en-US", "es"}
	if !reflect.DeepEqual(cfg.Locales, want) {
		t.Fatalf("Locales = %v want %v", cfg.Locales, want)
	}

	// first locale becomes the default when none was set
	if cfg.DefaultLocale != "en-US" {
		t.Fatalf("DefaultLocale = %q want en-US", cfg.DefaultLocale)
	}
}

func TestNewConfigStoreFromLoader(t *testing.T) {
	loader := LoaderFunc(func() (Catalogs, error) {
		return Catalogs{"en": {"k": "v"}}, nil
	})

	cfg, err := NewConfig(WithLoader(loader), WithDefaultLocale("en"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if got, ok := cfg.Store.Get("en", "k"); !ok || got != "v" {
		t.Fatalf("Store.Get(en,k) = %q,%v", got, ok)
	}
}

func TestConfigWithFallback(t *testing.T) {
	cfg, err := NewConfig(
		WithDefaultLocale("en"),
		WithFallback("es-MX", "es", "en"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	got := cfg.Resolver.Resolve("es-MX")
	want := []string{"es", "en"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve(es-MX) = %v want %v", got, want)
	}
}

func TestConfigParentFallbackSeeding(t *testing.T) {
	store := NewStaticStore(Catalogs{
		"pt-BR": {"k": "v"},
	})

	cfg, err := NewConfig(
		WithStore(store),
		WithLocales("es-MX"),
		WithParentFallbacks(),
		// explicit chains win over seeded parents
		WithFallback("pt-BR", "en"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if _, err := cfg.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := cfg.Resolver.Resolve("es-MX"); !reflect.DeepEqual(got, []string{"es"}) {
		t.Fatalf("Resolve(es-MX) = %v want [es]", got)
	}
	if got := cfg.Resolver.Resolve("pt-BR"); !reflect.DeepEqual(got, []string{"en"}) {
		t.Fatalf("Resolve(pt-BR) = %v want [en]", got)
	}
}

func TestConfigBuild(t *testing.T) {
	cfg, err := NewConfig(
		WithStore(NewStaticStore(Catalogs{
			"en": {"home.title": "Welcome"},
			"es": {"home.title": "Bienvenido"},
		})),
		WithLocales("en", "es"),
		WithDefaultLocale("en"),
		WithFamilyNameFirst("mn-MN"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	localizer, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got, ok, err := localizer.Value("fr", "home.title")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if !ok || got != "Welcome" {
		t.Fatalf("Value(fr) = %q,%v want Welcome,true", got, ok)
	}

	if got := localizer.FullName("A", "B", "mn-MN"); got != "B A" {
		t.Fatalf("FullName(mn-MN) = %q want B A", got)
	}
}
