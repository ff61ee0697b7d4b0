package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jarin-io/api/pkg/util"
)

const AccessTokenExpirationTime = time.Hour * 12

type JWTClaim struct {
	Id                  string `json:"id"`
	Username            string `json:"username"`
	ForceChangePassword bool   `json:"force_change_password"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an auth token for a new admin session.
func GenerateJWT(id, username string, forceChangePassword bool) (string, int64, error) {
	expirationTime := time.Now().Local().Add(AccessTokenExpirationTime)
	jwtKey := util.LoadEnvFor("SECRET")

	claims := JWTClaim{
		Id:                  id,
		Username:            username,
		ForceChangePassword: forceChangePassword,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken parses a signed auth token and checks its expiration time.
func ValidateToken(signedToken string) (JWTClaim, error) {
	jwtKey := util.LoadEnvFor("SECRET")
	token, err := jwt.ParseWithClaims(
		signedToken,
		&JWTClaim{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtKey), nil
		},
	)
	if err != nil {
		return JWTClaim{}, err
	}

	claim, ok := token.Claims.(*JWTClaim)
	if !ok {
		return JWTClaim{}, errors.New("couldn't parse claims")
	}
	exp, _ := claim.GetExpirationTime()
	if exp == nil || exp.Local().Unix() < time.Now().Local().Unix() {
		return JWTClaim{}, errors.New("token expired")
	}

	return *claim, nil
}

// InitJwtClaim extracts and validates the auth token on a request.
func InitJwtClaim(c *gin.Context) (JWTClaim, error) {
	return ValidateToken(ExtractToken(c))
}

// GetUserObjectId returns the claim's user id as an ObjectID.
func (j JWTClaim) GetUserObjectId() (primitive.ObjectID, error) {
	userId, err := primitive.ObjectIDFromHex(j.Id)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return userId, nil
}

// ExtractToken reads the auth token from the request. Browsers send it on the
// authtoken header; a standard Bearer Authorization header is also accepted.
func ExtractToken(c *gin.Context) string {
	if token := c.GetHeader("authtoken"); token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}
