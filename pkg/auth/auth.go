package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	UserCookieName  = "rental_token"
	AdminCookieName = "rental_admin_token"
)

type Config struct {
	Secret   string        `yaml:"secret" envconfig:"JWT_SECRET"`
	TokenTTL time.Duration `yaml:"tokenTTL" envconfig:"JWT_TTL" default:"24h"`
}

type Profile struct {
	UserID int    `json:"userId,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

// Manager issues and parses the signed cookie tokens carried by both
// the storefront and the admin panel.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(cfg Config) *Manager {
	return &Manager{secret: []byte(cfg.Secret), ttl: cfg.TokenTTL}
}

func (m *Manager) NewToken(p Profile) (string, error) {
	now := time.Now()
	claims := Claims{
		Profile: p,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) ParseToken(tokenStr string) (Profile, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Profile{}, errors.New("invalid token")
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return Profile{}, errors.New("token expired")
	}
	return claims.Profile, nil
}

// NewCookie wraps a token in an HTTP-only cookie. maxAge <= 0 expires it.
func NewCookie(name, token string, maxAge time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		c.MaxAge = int(maxAge.Seconds())
	} else {
		c.MaxAge = -1
	}
	return c
}

type authKey int

const profileKey authKey = iota + 1

func SetAuthContext(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, profileKey, p)
}

func GetProfile(ctx context.Context) (Profile, error) {
	p, ok := ctx.Value(profileKey).(Profile)
	if !ok {
		return Profile{}, errors.New("no auth profile in context")
	}
	return p, nil
}

func GetUserID(ctx context.Context) (int, error) {
	p, err := GetProfile(ctx)
	if err != nil {
		return 0, err
	}
	if p.UserID == 0 {
		return 0, errors.New("no user id in auth profile")
	}
	return p.UserID, nil
}
