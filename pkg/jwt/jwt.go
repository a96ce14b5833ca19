package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrMissingSubject error = errors.New("token has no subject")

// TokenInfo describes a session for one wallet account.
type TokenInfo struct {
	Subject    string // account address
	WalletID   string
	Expiration time.Duration
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub":    data.Subject,
		"iat":    now.Unix(),
		"exp":    now.Add(data.Expiration).Unix(),
		"wallet": data.WalletID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Issue generates and signs a token in one step.
func (gen *JWTService) Issue(data TokenInfo) (string, error) {
	return gen.Sign(gen.Generate(data))
}

func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	jwtToken, err := parser.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	if expVal, ok := claims["exp"].(float64); ok {
		if int64(expVal) < TimeNow().Unix() {
			return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0), ErrTokenExpired)
		}
	}

	return claims, nil
}

// Subject validates token and returns its "sub" claim.
func (gen *JWTService) Subject(token string) (string, error) {
	claims, err := gen.Validate(token)
	if err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrMissingSubject
	}
	return sub, nil
}
