package catalog

import (
	"errors"
	"fmt"
)

// ErrDataIntegrity is matched by every DataIntegrityError.
var ErrDataIntegrity = errors.New("catalog data integrity violation")

// ErrUnknownLocale is returned for a locale with no bundled content.
var ErrUnknownLocale = errors.New("unknown locale")

// DataIntegrityError reports malformed static content: a dangling word or morpheme
// reference, or an empty catalog. It is fatal to the operation that hit it.
type DataIntegrityError struct {
	Locale string
	Reason string
}

func (e *DataIntegrityError) Error() string {
	if e.Locale == "" {
		return fmt.Sprintf("data integrity: %s", e.Reason)
	}
	return fmt.Sprintf("data integrity (%s): %s", e.Locale, e.Reason)
}

func (e *DataIntegrityError) Unwrap() error { return ErrDataIntegrity }

func integrityErr(locale, format string, args ...any) error {
	return &DataIntegrityError{Locale: locale, Reason: fmt.Sprintf(format, args...)}
}
