package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string
	Role   string
}

// JWT signs and validates the HS256 tokens issued at login.
type JWT struct {
	secret []byte
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

func (j *JWT) Generate(userID, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	return token.SignedString(j.secret)
}

func (j *JWT) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (interface{}, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, _ := mapClaims["sub"].(string)
	role, _ := mapClaims["role"].(string)

	return &Claims{UserID: sub, Role: role}, nil
}
