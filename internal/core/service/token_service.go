package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// clockSkewLeeway absorbs clock drift between issuer and verifier: a token
// up to this far past its nominal expiry is still accepted.
const clockSkewLeeway = 60 * time.Second

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies HS256 JWTs. The signing key is fixed at
// construction and read-only afterwards, so a single instance is safe to
// share across requests.
type TokenService struct {
	key []byte
	ttl time.Duration
	log zerolog.Logger
}

// NewTokenService builds a TokenService from the configured secret. An empty
// secret is a configuration error: the caller is expected to treat it as
// fatal at startup, not as a per-request failure.
func NewTokenService(secret string, ttl time.Duration, log zerolog.Logger) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret is not configured")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{key: []byte(secret), ttl: ttl, log: log}, nil
}

// Issue signs a token for the given user. The subject and the "id" claim
// both carry the user id; the email claim mirrors the account email.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"id":    userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate reports whether the token is structurally valid, carries a good
// signature and has not expired beyond the skew leeway. Every failure mode
// collapses into false; the cause is only logged for diagnostics.
func (s *TokenService) Validate(token string) bool {
	_, err := s.parse(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return false
	}
	return true
}

// Subject returns the subject user id of a valid token. It re-parses under
// the same rules as Validate, so the two can never disagree.
func (s *TokenService) Subject(token string) (string, bool) {
	sub, err := s.parse(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return "", false
	}
	return sub, true
}

// parse verifies the token and returns its subject. A token without a
// subject is rejected outright: every token this service issues carries one,
// and accepting a subless token would let Validate and Subject disagree.
func (s *TokenService) parse(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(clockSkewLeeway),
	)
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", jwt.ErrTokenRequiredClaimMissing
	}
	return sub, nil
}

var _ ports.TokenService = (*TokenService)(nil)
