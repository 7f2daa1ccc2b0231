package locale

import (
	"sort"
	"strings"
)

// GetLocalizedValue looks up the value for locale in values, trying
// progressively broader candidates: the literal locale, its primary language
// tag when the locale carries a subtag, then any fallbackLocales in the
// order given.
//
// The first attempt is a case-sensitive map hit and skips parsing entirely.
// Every candidate after that is matched case-insensitively against the keys,
// in sorted key order so ties resolve the same way on every run. The locale
// itself is deliberately tried again in that second pass: it may match a key
// the exact attempt missed on casing alone. A miss across the whole chain is
// a normal outcome, the zero value with ok=false and a nil error. The only
// failure mode is ErrInvalidLocale from parsing, and only when the exact
// attempt did not already hit.
func GetLocalizedValue[T any](values map[string]T, locale string, fallbackLocales ...string) (T, bool, error) {
	var zero T

	if value, ok := values[locale]; ok {
		return value, true, nil
	}

	tag, err := ParseLocale(locale)
	if err != nil {
		return zero, false, err
	}

	chain := make([]string, 0, len(fallbackLocales)+2)
	chain = append(chain, locale)
	if tag.HasSubtag() {
		chain = append(chain, tag.Language)
	}
	chain = append(chain, fallbackLocales...)

	if len(values) == 0 {
		return zero, false, nil
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, candidate := range chain {
		for _, key := range keys {
			if strings.EqualFold(key, candidate) {
				return values[key], true, nil
			}
		}
	}

	return zero, false, nil
}
