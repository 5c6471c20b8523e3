package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/config"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/security"
)

// TokenSeparator joins the public token identifier and the private secret on
// the wire. Neither part can contain it (both are hex).
const TokenSeparator = "."

const (
	tokenIDBytes     = 16
	tokenSecretBytes = 32
)

// SessionToken bundles the composed bearer token with the two parts the
// session store persists. The plaintext secret lives only inside Token.
type SessionToken struct {
	Token      string
	TokenID    string
	SecretHash string
}

// ParsedToken is the split form of an inbound bearer token.
type ParsedToken struct {
	TokenID string
	Secret  string
}

// CreateSessionToken mints a fresh token identifier and secret, hashes the
// secret, and returns the composed "<tokenId>.<secret>" bearer string.
func CreateSessionToken(cfg config.PasswordConfig) (*SessionToken, error) {
	tokenID, err := randomHex(tokenIDBytes)
	if err != nil {
		return nil, fmt.Errorf("generate token id: %w", err)
	}
	secret, err := randomHex(tokenSecretBytes)
	if err != nil {
		return nil, fmt.Errorf("generate token secret: %w", err)
	}

	secretHash, err := security.HashSecret(secret, cfg)
	if err != nil {
		return nil, fmt.Errorf("hash token secret: %w", err)
	}

	return &SessionToken{
		Token:      tokenID + TokenSeparator + secret,
		TokenID:    tokenID,
		SecretHash: secretHash,
	}, nil
}

// ParseSessionToken splits a raw bearer token on the first separator. Nil
// means malformed input, which callers must treat the same as invalid
// credentials at the wire level.
func ParseSessionToken(raw string) *ParsedToken {
	if raw == "" || !strings.Contains(raw, TokenSeparator) {
		return nil
	}
	tokenID, secret, _ := strings.Cut(raw, TokenSeparator)
	if tokenID == "" || secret == "" {
		return nil
	}
	return &ParsedToken{TokenID: tokenID, Secret: secret}
}

// VerifySessionSecret reports whether the presented secret matches the stored
// hash. Malformed hashes count as a mismatch rather than an error.
func VerifySessionSecret(secret, secretHash string) bool {
	ok, err := security.VerifySecret(secret, secretHash)
	if err != nil {
		return false
	}
	return ok
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
