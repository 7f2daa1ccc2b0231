package locale

// familyNameFirstLocales lists the locales whose convention places the
// family name before the given name. Membership is exact: "ja-JP" is in the
// set, bare "ja" is not.
var familyNameFirstLocales = map[string]struct{}{
	"ja-JP": {},
	"ko-KR": {},
	"zh-CN": {},
	"zh-TW": {},
	"zh-HK": {},
	"hu-HU": {},
	"vi-VN": {},
}

// IsFamilyNameFirst reports whether the locale writes the family name first.
// The match is case-sensitive and exact, with no tag parsing or fallback.
func IsFamilyNameFirst(locale string) bool {
	_, ok := familyNameFirstLocales[locale]
	return ok
}

// FormatFullName joins a given and family name in the order the locale
// expects. Names are concatenated as-is with a single separating space; no
// trimming or validation is applied, so empty parts stay empty.
func FormatFullName(givenName, familyName, locale string) string {
	if IsFamilyNameFirst(locale) {
		return familyName + " " + givenName
	}
	return givenName + " " + familyName
}
