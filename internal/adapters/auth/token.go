package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/bnema/gymctl/internal/ports"
	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed access token")

type accessClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenClaims is what the client can learn from its own bearer token. The
// signature is not checked; only the backend holds the key.
type TokenClaims struct {
	UserID    domain.UserID
	Role      domain.Role
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (c TokenClaims) HasExpiry() bool {
	return !c.ExpiresAt.IsZero()
}

func (c TokenClaims) Expired(now time.Time) bool {
	return c.HasExpiry() && !now.Before(c.ExpiresAt)
}

// Remaining is the lifetime left at now, zero once expired.
func (c TokenClaims) Remaining(now time.Time) time.Duration {
	if !c.HasExpiry() || c.Expired(now) {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}

type Inspector struct {
	parser *jwt.Parser
	clock  ports.Clock
}

func NewInspector(clock ports.Clock) *Inspector {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Inspector{parser: jwt.NewParser(), clock: clock}
}

func (i *Inspector) Inspect(token string) (TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return TokenClaims{}, fmt.Errorf("%w: token is empty", ErrMalformedToken)
	}

	var claims accessClaims
	if _, _, err := i.parser.ParseUnverified(token, &claims); err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	result := TokenClaims{
		UserID:  domain.UserID(claims.UserID),
		Role:    domain.ParseRole(claims.Role),
		Subject: claims.Subject,
	}
	if result.UserID == 0 && claims.Subject != "" {
		if id, err := strconv.ParseInt(claims.Subject, 10, 64); err == nil {
			result.UserID = domain.UserID(id)
		}
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}

// Expired reports whether token is past its expiry at the inspector's clock.
// Tokens that cannot be decoded count as expired.
func (i *Inspector) Expired(token string) bool {
	claims, err := i.Inspect(token)
	if err != nil {
		return true
	}
	return claims.Expired(i.clock.Now())
}

func (i *Inspector) Now() time.Time {
	return i.clock.Now()
}
