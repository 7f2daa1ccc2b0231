package locale

// Config captures localizer setup
type Config struct {
	DefaultLocale string
	Locales       []string
	Loader        Loader
	Store         Store
	Resolver      FallbackResolver

	familyNameFirst []string
	parentFallbacks bool
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Locales = normalizeLocales(cfg.Locales)

	if cfg.Store == nil {
		if cfg.Loader != nil {
			store, err := NewStaticStoreFromLoader(cfg.Loader)
			if err != nil {
				return nil, err
			}
			cfg.Store = store
		} else {
			cfg.Store = NewStaticStore(nil)
		}
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.DefaultLocale == "" && len(cfg.Locales) > 0 {
		cfg.DefaultLocale = cfg.Locales[0]
	}
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)

	return cfg, nil
}

// WithDefaultLocale sets the default locale in Config
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales registers supported locales
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

func WithStore(store Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback registers an explicit fallback chain for one locale. It only
// applies when the resolver is the default static one.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithParentFallbacks seeds the static resolver with parent-tag chains for
// every known locale that has no explicit chain yet.
func WithParentFallbacks() Option {
	return func(c *Config) error {
		c.parentFallbacks = true
		return nil
	}
}

// WithFamilyNameFirst extends the family-name-first set used by the built
// localizer with additional exact locale identifiers.
func WithFamilyNameFirst(locales ...string) Option {
	return func(c *Config) error {
		c.familyNameFirst = append(c.familyNameFirst, locales...)
		return nil
	}
}

// Build assembles the Localizer described by the config.
func (cfg *Config) Build() (*Localizer, error) {
	if cfg == nil {
		return NewLocalizer(nil)
	}

	cfg.seedParentFallbacks()

	opts := []LocalizerOption{
		WithLocalizerDefaultLocale(cfg.DefaultLocale),
		WithLocalizerResolver(cfg.Resolver),
	}
	if len(cfg.familyNameFirst) > 0 {
		opts = append(opts, WithLocalizerFamilyNameFirst(cfg.familyNameFirst...))
	}

	return NewLocalizer(cfg.Store, opts...)
}

func (cfg *Config) seedParentFallbacks() {
	if !cfg.parentFallbacks {
		return
	}

	resolver, ok := cfg.Resolver.(*StaticFallbackResolver)
	if !ok || resolver == nil {
		return
	}

	seen := make(map[string]struct{}, len(cfg.Locales))
	var candidates []string

	appendCandidate := func(locale string) {
		if locale == "" {
			return
		}
		if _, exists := seen[locale]; exists {
			return
		}
		seen[locale] = struct{}{}
		candidates = append(candidates, locale)
	}

	if cfg.Store != nil {
		for _, locale := range cfg.Store.Locales() {
			appendCandidate(locale)
		}
	}
	for _, locale := range cfg.Locales {
		appendCandidate(locale)
	}

	for _, locale := range candidates {
		if existing := resolver.Resolve(locale); existing != nil {
			continue
		}
		chain := localeParentChain(locale)
		if len(chain) == 0 {
			continue
		}
		resolver.Set(locale, chain...)
	}
}
