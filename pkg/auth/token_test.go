package auth

import (
	"strings"
	"testing"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/config"
)

func tokenTestConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func TestCreateSessionTokenRoundTrip(t *testing.T) {
	st, err := CreateSessionToken(tokenTestConfig())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !strings.HasPrefix(st.Token, st.TokenID+TokenSeparator) {
		t.Fatalf("token %q does not start with its token id", st.Token)
	}
	if strings.Contains(st.TokenID, TokenSeparator) {
		t.Fatalf("token id %q contains the separator", st.TokenID)
	}

	parsed := ParseSessionToken(st.Token)
	if parsed == nil {
		t.Fatal("expected created token to parse")
	}
	if parsed.TokenID != st.TokenID {
		t.Fatalf("parsed token id %q, want %q", parsed.TokenID, st.TokenID)
	}
	if st.TokenID+TokenSeparator+parsed.Secret != st.Token {
		t.Fatal("parsed secret does not reassemble the original token")
	}

	if !VerifySessionSecret(parsed.Secret, st.SecretHash) {
		t.Fatal("expected the original secret to verify")
	}
	if VerifySessionSecret(parsed.Secret+"0", st.SecretHash) {
		t.Fatal("expected a tampered secret to fail verification")
	}
}

func TestCreateSessionTokenUnique(t *testing.T) {
	cfg := tokenTestConfig()
	first, err := CreateSessionToken(cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := CreateSessionToken(cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.TokenID == second.TokenID {
		t.Fatal("token ids should not repeat")
	}
	if first.Token == second.Token {
		t.Fatal("tokens should not repeat")
	}
}

func TestParseSessionTokenMalformed(t *testing.T) {
	for _, raw := range []string{"", "nodot", ".secret", "tokenid.", "."} {
		if got := ParseSessionToken(raw); got != nil {
			t.Errorf("ParseSessionToken(%q) = %+v, want nil", raw, got)
		}
	}
}

func TestParseSessionTokenSplitsOnFirstSeparator(t *testing.T) {
	parsed := ParseSessionToken("abc.def.ghi")
	if parsed == nil {
		t.Fatal("expected token to parse")
	}
	if parsed.TokenID != "abc" || parsed.Secret != "def.ghi" {
		t.Fatalf("unexpected split %+v", parsed)
	}
}

func TestVerifySessionSecretMalformedHash(t *testing.T) {
	if VerifySessionSecret("secret", "not-a-hash") {
		t.Fatal("malformed stored hash must never verify")
	}
}
