// Package auth issues and verifies the signed bearer tokens behind the three
// site cookies: site admin, HR admin, and candidate. Verification is
// stateless; there is no server-side session store.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/curanova/curanova-site/internal/config"
)

// Kind is a principal kind. Each kind has its own signing secret, lifetime,
// and cookie, and tokens never validate across kinds.
type Kind string

// Principal kinds.
const (
	KindSiteAdmin Kind = "site_admin"
	KindHRAdmin   Kind = "hr_admin"
	KindCandidate Kind = "candidate"
)

// Principal is the identity carried by a verified token.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Claims is the JWT payload: the principal plus the kind it was minted for.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	jwt.RegisteredClaims
}

type kindSpec struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	sameSite   http.SameSite
}

// Service mints and verifies tokens for all three kinds.
type Service struct {
	kinds map[Kind]kindSpec
	now   func() time.Time
}

// NewService builds a token service from the auth configuration.
func NewService(cfg *config.AuthConfig) *Service {
	return &Service{
		kinds: map[Kind]kindSpec{
			KindSiteAdmin: {
				secret:     []byte(cfg.AdminSecret),
				ttl:        cfg.AdminTTL,
				cookieName: "admin_token",
				sameSite:   http.SameSiteStrictMode,
			},
			KindHRAdmin: {
				secret:     []byte(cfg.HRSecret),
				ttl:        cfg.HRTTL,
				cookieName: "hr_token",
				sameSite:   http.SameSiteLaxMode,
			},
			KindCandidate: {
				secret:     []byte(cfg.CandidateSecret),
				ttl:        cfg.CandidateTTL,
				cookieName: "candidate_token",
				sameSite:   http.SameSiteLaxMode,
			},
		},
		now: time.Now,
	}
}

// Issue signs a token for the principal under the given kind.
func (s *Service) Issue(p Principal, kind Kind) (string, error) {
	spec, ok := s.kinds[kind]
	if !ok {
		return "", fmt.Errorf("unknown principal kind: %s", kind)
	}

	now := s.now()
	claims := &Claims{
		ID:    p.ID,
		Email: p.Email,
		Name:  p.Name,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(spec.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(spec.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry, and that the token was minted for
// expectedKind. All failure modes collapse into a nil principal so callers
// cannot leak which check failed.
func (s *Service) Verify(tokenString string, expectedKind Kind) *Principal {
	spec, ok := s.kinds[expectedKind]
	if !ok || tokenString == "" {
		return nil
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return spec.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil
	}

	if claims.Kind != expectedKind {
		return nil
	}

	return &Principal{ID: claims.ID, Email: claims.Email, Name: claims.Name}
}

// CookieName returns the cookie a kind's token travels in.
func (s *Service) CookieName(kind Kind) string {
	return s.kinds[kind].cookieName
}

// Cookie builds the HTTP-only session cookie carrying a freshly issued token.
func (s *Service) Cookie(kind Kind, token string) *http.Cookie {
	spec := s.kinds[kind]
	return &http.Cookie{
		Name:     spec.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(spec.ttl.Seconds()),
		HttpOnly: true,
		SameSite: spec.sameSite,
	}
}

// ClearCookie builds an expired cookie that removes a kind's session.
func (s *Service) ClearCookie(kind Kind) *http.Cookie {
	spec := s.kinds[kind]
	return &http.Cookie{
		Name:     spec.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: spec.sameSite,
	}
}

// FromRequest reads a kind's cookie off the request and verifies it,
// returning nil when the cookie is absent or the token does not check out.
func (s *Service) FromRequest(r *http.Request, kind Kind) *Principal {
	cookie, err := r.Cookie(s.kinds[kind].cookieName)
	if err != nil {
		return nil
	}
	return s.Verify(cookie.Value, kind)
}
