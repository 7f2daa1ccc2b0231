package locale

import "strings"

// Localizer combines a value store, a fallback resolver, and the name
// ordering table into a single lookup surface.
type Localizer struct {
	store           Store
	resolver        FallbackResolver
	defaultLocale   string
	familyNameFirst map[string]struct{}
}

// LocalizerOption mutates a Localizer during construction
type LocalizerOption func(*Localizer) error

// NewLocalizer builds a Localizer over the given store
func NewLocalizer(store Store, opts ...LocalizerOption) (*Localizer, error) {
	if store == nil {
		store = NewStaticStore(nil)
	}

	l := &Localizer{
		store:           store,
		familyNameFirst: familyNameFirstLocales,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// WithLocalizerDefaultLocale sets the locale of last resort for Value lookups.
func WithLocalizerDefaultLocale(locale string) LocalizerOption {
	return func(l *Localizer) error {
		l.defaultLocale = normalizeLocale(locale)
		return nil
	}
}

// WithLocalizerResolver installs the fallback resolver consulted per lookup.
func WithLocalizerResolver(resolver FallbackResolver) LocalizerOption {
	return func(l *Localizer) error {
		l.resolver = resolver
		return nil
	}
}

// WithLocalizerFamilyNameFirst extends the built-in family-name-first set
// with additional exact locale identifiers.
func WithLocalizerFamilyNameFirst(locales ...string) LocalizerOption {
	return func(l *Localizer) error {
		if len(locales) == 0 {
			return nil
		}

		// copy before the first extension so the package table stays fixed
		extended := make(map[string]struct{}, len(l.familyNameFirst)+len(locales))
		for code := range l.familyNameFirst {
			extended[code] = struct{}{}
		}
		for _, code := range locales {
			if code == "" {
				continue
			}
			extended[code] = struct{}{}
		}
		l.familyNameFirst = extended
		return nil
	}
}

// Value resolves key for locale, walking the locale's own candidate chain,
// the resolver-provided fallbacks, and finally the default locale. A miss is
// ok=false with a nil error; ErrInvalidLocale surfaces unrecovered.
func (l *Localizer) Value(locale, key string) (string, bool, error) {
	if l == nil || l.store == nil {
		return "", false, nil
	}

	values := l.store.Values(key)
	return GetLocalizedValue(values, locale, l.fallbacksFor(locale)...)
}

func (l *Localizer) fallbacksFor(locale string) []string {
	var chain []string
	if l.resolver != nil {
		chain = append(chain, l.resolver.Resolve(locale)...)
	}

	if l.defaultLocale == "" || strings.EqualFold(locale, l.defaultLocale) {
		return chain
	}
	for _, fallback := range chain {
		if strings.EqualFold(fallback, l.defaultLocale) {
			return chain
		}
	}
	return append(chain, l.defaultLocale)
}

// FullName orders the two name parts per the locale's convention. Locales
// registered via WithLocalizerFamilyNameFirst extend the built-in set; the
// match stays exact and case-sensitive.
func (l *Localizer) FullName(givenName, familyName, locale string) string {
	if l == nil {
		return FormatFullName(givenName, familyName, locale)
	}

	if _, ok := l.familyNameFirst[locale]; ok {
		return familyName + " " + givenName
	}
	return givenName + " " + familyName
}
