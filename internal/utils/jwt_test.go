package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "0195f0c2-7d1e-7abc-9def-0123456789ab"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.UserID != userID {
		t.Errorf("expected UserID %s, got %s", userID, token.UserID)
	}

	// Verify claims
	claims, ok := token.Token.Claims.(jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != userID {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u1", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u1", 0, "key"},
		{"empty key", "iss", "u1", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "u-456"
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, userID, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, parsedToken.UserID)
	}
	if got, _ := parsedToken.GetUserID(); got != userID {
		t.Errorf("expected GetUserID %s, got %s", userID, got)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "u1", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// Token that expired 1 second ago
	genToken, _ := GenerateJWTToken("test-issuer", "u1", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "u1", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected error for HS512 token, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseBearerToken(%q) = %q, %v; want %q", tt.header, got, err, tt.want)
			}
		})
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "u-789", time.Hour, "key")

	id, err := ParseUserIDFromJWT(genToken.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "u-789" {
		t.Errorf("expected u-789, got %s", id)
	}

	if _, err = ParseUserIDFromJWT("garbage"); err == nil {
		t.Error("expected error for garbage token")
	}
}
