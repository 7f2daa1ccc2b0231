package locale

import (
	"sort"
)

// Catalog maps message keys to localized values for a single locale.
type Catalog map[string]string

// Catalogs maps locale identifiers to their catalogs.
type Catalogs map[string]Catalog

// Store exposes read only access to localized values
type Store interface {
	// Get returns the value for locale/key and ok=false if missing
	Get(locale, key string) (string, bool)
	// Values returns the locale to value mapping for a single key
	Values(key string) map[string]string
	// Locales returns the list of locales known to the store
	Locales() []string
}

// Loader retrieves the catalogs used to seed a Store
type Loader interface {
	Load() (Catalogs, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Catalogs, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Catalogs, error) {
	return fn()
}

// StaticStore is an in memory store, read only after construction
type StaticStore struct {
	catalogs Catalogs
	locales  []string
}

var _ Store = &StaticStore{}

// NewStaticStore builds an immutable snapshot from the given catalogs
func NewStaticStore(data Catalogs) *StaticStore {
	if len(data) == 0 {
		return &StaticStore{catalogs: make(Catalogs)}
	}

	catalogs := make(Catalogs, len(data))
	locales := make([]string, 0, len(data))

	for rawLocale, catalog := range data {
		code := normalizeLocale(rawLocale)
		if code == "" || catalog == nil {
			continue
		}

		clone := make(Catalog, len(catalog))
		for key, value := range catalog {
			clone[key] = value
		}

		catalogs[code] = clone
		locales = append(locales, code)
	}

	// make locales deterministic
	sort.Strings(locales)

	return &StaticStore{
		catalogs: catalogs,
		locales:  locales,
	}
}

// NewStaticStoreFromLoader hydrates a StaticStore using the provided loader
func NewStaticStoreFromLoader(loader Loader) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil), nil
	}

	catalogs, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewStaticStore(catalogs), nil
}

// Get returns the value stored for locale/key
func (s *StaticStore) Get(locale, key string) (string, bool) {
	if s == nil {
		return "", false
	}

	catalog, ok := s.catalogs[locale]
	if !ok || catalog == nil {
		return "", false
	}

	value, ok := catalog[key]
	return value, ok
}

// Values assembles the per-key locale view consumed by GetLocalizedValue.
func (s *StaticStore) Values(key string) map[string]string {
	if s == nil || len(s.catalogs) == 0 {
		return nil
	}

	out := make(map[string]string)
	for code, catalog := range s.catalogs {
		if value, ok := catalog[key]; ok {
			out[code] = value
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// Locales returns a slice with all locale codes
func (s *StaticStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}
