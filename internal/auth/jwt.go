package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// IssueToken signs an HS256 access token for the given user.
func IssueToken(secret string, userID int64, email string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseBearer extracts and validates a Bearer JWT from an Authorization
// header value and returns the Principal it carries.
func ParseBearer(header, secret string) (*Principal, error) {
	if header == "" {
		return nil, errors.New("missing authorization")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("invalid authorization header")
	}
	return parseJWT(strings.TrimSpace(parts[1]), secret)
}

// parseJWT validates the token and extracts the principal claims.
func parseJWT(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	type claims struct {
		Email string `json:"email"`
		jwt.RegisteredClaims
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}
	c, _ := tok.Claims.(*claims)
	if c == nil || c.Subject == "" || c.Email == "" {
		return nil, errors.New("invalid claims")
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, errors.New("invalid subject claim")
	}
	return &Principal{ID: id, Email: c.Email}, nil
}
