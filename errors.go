package locale

import "errors"

// ErrInvalidLocale indicates the input could not be interpreted as a locale identifier.
var ErrInvalidLocale = errors.New("locale: invalid locale")

// ErrNoLoaderPaths marks a file loader constructed without any paths
var ErrNoLoaderPaths = errors.New("locale: no loader paths configured")
