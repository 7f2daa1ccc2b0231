package locale

// HelperConfig configures template helper exports
type HelperConfig struct {
	// ValueHelperKey renames the value helper, "t" by default.
	ValueHelperKey string
	// NameHelperKey renames the full-name helper, "fullname" by default.
	NameHelperKey string
	// OnMissing renders a replacement when no value resolves. Defaults to
	// the empty string.
	OnMissing func(locale, key string, err error) string
}

// TemplateHelpers exposes localizer lookups as helper funcs for go-template
func TemplateHelpers(l *Localizer, cfg HelperConfig) map[string]any {
	valueKey := cfg.ValueHelperKey
	if valueKey == "" {
		valueKey = "t"
	}
	nameKey := cfg.NameHelperKey
	if nameKey == "" {
		nameKey = "fullname"
	}

	return map[string]any{
		valueKey: func(locale, key string) string {
			value, ok, err := l.Value(locale, key)
			if err != nil || !ok {
				if cfg.OnMissing != nil {
					return cfg.OnMissing(locale, key, err)
				}
				return ""
			}
			return value
		},
		nameKey: func(locale, givenName, familyName string) string {
			return l.FullName(givenName, familyName, locale)
		},
	}
}
