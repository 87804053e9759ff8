package auth

import (
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const stateIssuer = "gatekeeper/oauth-state"

// stateClaims carries the login challenge through the provider round trip.
type stateClaims struct {
	LoginChallenge string `json:"lc"`
	Provider       string `json:"prv"`
	jwt.RegisteredClaims
}

// jwtStateSigner is a concrete implementation of the StateSigner interface using HS256 JWTs.
type jwtStateSigner struct {
	secret []byte
	now    func() time.Time
}

// NewJWTStateSigner is the constructor for jwtStateSigner.
func NewJWTStateSigner(cfg *config.Config) (service.StateSigner, error) {
	if cfg.OAuth == nil || cfg.OAuth.StateSecret == "" {
		return nil, errors.New("oauth state secret must be provided")
	}

	return &jwtStateSigner{secret: []byte(cfg.OAuth.StateSecret), now: time.Now}, nil
}

// Sign issues a state token valid for ttl.
func (s *jwtStateSigner) Sign(state service.SocialState, ttl time.Duration) (string, error) {
	now := s.now()
	claims := stateClaims{
		LoginChallenge: state.LoginChallenge,
		Provider:       state.Provider.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    stateIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign oauth state")
	}

	return signed, nil
}

// Verify checks the signature, expiry and issuer of a state token.
func (s *jwtStateSigner) Verify(tokenString string) (*service.SocialState, error) {
	claims := &stateClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(stateIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrOAuthStateInvalid.WrapMessage(err.Error())
	}

	provider := entity.ProviderType(claims.Provider)
	if claims.LoginChallenge == "" || !provider.IsValid() {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	return &service.SocialState{LoginChallenge: claims.LoginChallenge, Provider: provider}, nil
}
