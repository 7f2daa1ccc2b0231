package locale

// FallbackResolver resolves the extra fallback locales consulted after a
// locale and its language tag fail to produce a value.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// FallbackResolverFunc adapters allow bare functions to implement FallbackResolver
type FallbackResolverFunc func(locale string) []string

// Resolve implements FallbackResolver for FallbackResolverFunc
func (fn FallbackResolverFunc) Resolve(locale string) []string {
	return fn(locale)
}

// StaticFallbackResolver serves fallback chains from a fixed table.
type StaticFallbackResolver struct {
	chains map[string][]string
}

var _ FallbackResolver = &StaticFallbackResolver{}

// NewStaticFallbackResolver returns an empty resolver ready for Set calls.
func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set registers the fallback chain for locale, dropping empty entries,
// duplicates, and the locale itself.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil {
		return
	}

	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}

	seen := map[string]struct{}{locale: {}}
	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		normalized := normalizeLocale(fallback)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		chain = append(chain, normalized)
	}

	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[locale] = chain
}

// Resolve returns a copy of the configured chain for locale, or nil.
func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || len(s.chains) == 0 {
		return nil
	}

	chain, ok := s.chains[normalizeLocale(locale)]
	if !ok || len(chain) == 0 {
		return nil
	}

	out := make([]string, len(chain))
	copy(out, chain)
	return out
}

// ParentFallbackResolver derives chains from the locale's parent tags, so
// "zh-Hant-TW" falls back through "zh-Hant" and "zh".
type ParentFallbackResolver struct{}

var _ FallbackResolver = ParentFallbackResolver{}

func (ParentFallbackResolver) Resolve(locale string) []string {
	return localeParentChain(locale)
}
