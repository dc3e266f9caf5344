package githubapp

import "errors"

var (
	// ErrInvalidKeyMaterial means the configured private key could not be
	// parsed or used for signing. Fatal at startup.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrTokenExchangeFailed means GitHub rejected or failed the
	// installation access token request.
	ErrTokenExchangeFailed = errors.New("installation token exchange failed")

	// ErrMissingInstallation means the triggering payload carried no
	// installation id to scope a token to.
	ErrMissingInstallation = errors.New("missing installation id")
)
