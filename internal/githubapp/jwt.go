package githubapp

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GitHub caps app JWT lifetime at 10 minutes.
const appTokenTTL = 10 * time.Minute

// ParseKey parses a PEM-encoded RSA private key as downloaded from the
// GitHub App settings page.
func ParseKey(pemData string) (*rsa.PrivateKey, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pemData))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}
	return key, nil
}

// Minter produces short-lived app JWTs proving the service's identity to
// GitHub. Every Mint call signs a fresh token; nothing is cached, even within
// a single request.
type Minter struct {
	appID int64
	key   *rsa.PrivateKey
}

func NewMinter(appID int64, key *rsa.PrivateKey) *Minter {
	return &Minter{appID: appID, key: key}
}

// Mint signs an RS256 JWT with iss = app id, iat = now and exp = now + 10m.
func (m *Minter) Mint(now time.Time) (string, error) {
	// MapClaims keeps full control over the claim set; GitHub requires
	// exactly iss, iat and exp.
	claims := jwt.MapClaims{
		"iss": m.appID,
		"iat": now.Unix(),
		"exp": now.Add(appTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}

	return signed, nil
}
