package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todolist/config"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/service"
	"todolist/internal/errors"
)

var signingMethods = map[string]*jwt.SigningMethodHMAC{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Alg(): jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Alg(): jwt.SigningMethodHS512,
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The secret and algorithm are read once here and never change afterwards.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.IsProduction() && cfg.SecretKey.Access == config.DevelopmentSecret {
		return nil, errors.New("the development jwt secret cannot be used in production")
	}

	alg := "HS256"
	if cfg.Auth != nil && cfg.Auth.Algorithm != "" {
		alg = cfg.Auth.Algorithm
	}
	method, ok := signingMethods[alg]
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm: %s", alg)
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		method: method,
		now:    time.Now,
	}, nil
}

// Issue signs a token carrying sub, iat and exp.
func (s *jwtService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = service.DefaultTokenTTL
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses the token and returns its subject.
func (s *jwtService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", domainerrors.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", domainerrors.ErrInvalidToken.WithDetails("subject claim missing")
	}

	return claims.Subject, nil
}
