package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Tag holds the two pieces of a locale identifier this library cares about:
// the primary language code and, when present, the first region or script
// qualifier.
type Tag struct {
	Language string
	Subtag   string
}

// HasSubtag reports whether a region or script qualifier was present.
func (t Tag) HasSubtag() bool {
	return t.Subtag != ""
}

// String reassembles the tag in language[-subtag] form.
func (t Tag) String() string {
	if t.Subtag == "" {
		return t.Language
	}
	return t.Language + "-" + t.Subtag
}

// ParseLocale splits a locale identifier into its primary language code and
// the first region/script subtag. Only the first position after the language
// is considered; later segments are ignored. A malformed subtag degrades to
// absent, but an input with no usable language segment fails with
// ErrInvalidLocale.
func ParseLocale(locale string) (Tag, error) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return Tag{}, fmt.Errorf("%w: empty input", ErrInvalidLocale)
	}

	segments := strings.Split(normalized, "-")

	lang, ok := canonicalLanguage(segments[0])
	if !ok {
		return Tag{}, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}

	tag := Tag{Language: lang}
	if len(segments) > 1 {
		tag.Subtag = canonicalSubtag(segments[1])
	}
	return tag, nil
}

// canonicalLanguage validates the primary segment, preferring x/text
// canonicalization and degrading to a plain well-formedness check for codes
// x/text does not know.
func canonicalLanguage(segment string) (string, bool) {
	if base, err := language.ParseBase(segment); err == nil {
		return base.String(), true
	}
	if len(segment) < 2 || len(segment) > 8 || !isAlpha(segment) {
		return "", false
	}
	return strings.ToLower(segment), true
}

// canonicalSubtag canonicalizes the first subtag after the language. Region
// codes come out upper case, script codes title case, numeric regions pass
// through. Anything else is treated as absent.
func canonicalSubtag(segment string) string {
	if segment == "" {
		return ""
	}
	if region, err := language.ParseRegion(segment); err == nil {
		return region.String()
	}
	if script, err := language.ParseScript(segment); err == nil {
		return script.String()
	}

	switch {
	case len(segment) == 2 && isAlpha(segment):
		return strings.ToUpper(segment)
	case len(segment) == 4 && isAlpha(segment):
		return strings.ToUpper(segment[:1]) + strings.ToLower(segment[1:])
	case len(segment) == 3 && isDigits(segment):
		return segment
	}

	return ""
}
