package locale

import (
	"errors"
	"reflect"
	"testing"
)

func TestStaticStoreGet(t *testing.T) {
	store := NewStaticStore(Catalogs{
		"en": {"home.title": "Welcome"},
		"es": {"home.title": "Bienvenido"},
	})

	tests := []struct {
		locale string
		key    string
		want   string
		ok     bool
	}{
		{locale: "en", key: "home.title", want: "Welcome", ok: true},
		{locale: "es", key: "home.title", want: "Bienvenido", ok: true},
		{locale: "en", key: "missing", want: "", ok: false},
		{locale: "fr", key: "home.title", want: "", ok: false},
	}

	for _, tc := range tests {
		got, ok := store.Get(tc.locale, tc.key)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Get(%q,%q) = %q,%v want %q,%v", tc.locale, tc.key, got, ok, tc.want, tc.ok)
		}
	}

	locales := store.Locales()
	if len(locales) != 2 || locales[0] != "en" || locales[1] != "es" {
		t.Fatalf("Locales() = %v", locales)
	}
}

func TestStaticStoreValues(t *testing.T) {
	store := NewStaticStore(Catalogs{
		"en":    {"greeting": "Hello", "farewell": "Bye"},
		"es":    {"greeting": "Hola"},
		"fr":    {"farewell": "Au revoir"},
		"en_US": {"greeting": "Howdy"},
	})

	got := store.Values("greeting")
	want := map[string]string{"en": "Hello", "es": "Hola", "en-US": "Howdy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Values(greeting) = %v want %v", got, want)
	}

	if got := store.Values("missing"); got != nil {
		t.Fatalf("Values(missing) = %v want nil", got)
	}
}

func TestNewStaticStoreCopiesInput(t *testing.T) {
	src := Catalogs{
		"en": {"home.title": "Welcome"},
	}

	store := NewStaticStore(src)

	src["en"]["home.title"] = "Changed"
	src["en"]["new"] = "new"

	got, ok := store.Get("en", "home.title")
	if !ok || got != "Welcome" {
		t.Fatalf("expected snapshot to remain unchanged, got %q, ok=%v", got, ok)
	}

	if _, ok := store.Get("en", "new"); ok {
		t.Fatal("unexpected key copied from mutated input")
	}
}

func TestNewStaticStoreSkipsNilCatalogs(t *testing.T) {
	store := NewStaticStore(Catalogs{
		"en": {"k": "v"},
		"xx": nil,
		"":   {"k": "v"},
	})

	if got := store.Locales(); len(got) != 1 || got[0] != "en" {
		t.Fatalf("Locales() = %v want [en]", got)
	}
}

func TestNewStaticStoreFromLoader(t *testing.T) {
	loader := LoaderFunc(func() (Catalogs, error) {
		return Catalogs{"en": {"k": "v"}}, nil
	})

	store, err := NewStaticStoreFromLoader(loader)
	if err != nil {
		t.Fatalf("NewStaticStoreFromLoader: %v", err)
	}
	if got, ok := store.Get("en", "k"); !ok || got != "v" {
		t.Fatalf("Get(en,k) = %q,%v", got, ok)
	}

	failing := LoaderFunc(func() (Catalogs, error) {
		return nil, errors.New("boom")
	})
	if _, err := NewStaticStoreFromLoader(failing); err == nil {
		t.Fatal("expected loader error to propagate")
	}

	empty, err := NewStaticStoreFromLoader(nil)
	if err != nil {
		t.Fatalf("NewStaticStoreFromLoader(nil): %v", err)
	}
	if locales := empty.Locales(); locales != nil {
		t.Fatalf("Locales() = %v want nil", locales)
	}
}
