package types

import "errors"

// ErrEmptyURL reports an attempt to save a favorite without a URL.
var ErrEmptyURL = errors.New("favorite URL must not be empty")

// ValidateURL checks that a URL is usable as a favorite identity key.
// The URL string itself is the identity; matching is case-sensitive and
// exact, so no normalization is applied here.
func ValidateURL(url string) error {
	if url == "" {
		return ErrEmptyURL
	}
	return nil
}
