package util

import (
	"time"

	"elearn_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID    uint           `json:"user_id"`
	CompanyID uint           `json:"company_id"`
	Role      model.UserRole `json:"role"`
	Username  string         `json:"username"`
	jwt.RegisteredClaims
}

func GenerateJWT(user *model.User, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &Claims{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Role:      user.Role,
		Username:  user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, err
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// CallerFromContext クレームから呼び出し元を構築する。ロールの大文字正規化は
// この境界で一度だけ行い、サービス層では閉じた列挙としてのみ比較する。
func CallerFromContext(c *gin.Context) (model.Caller, bool) {
	claims := GetUserFromContext(c)
	if claims == nil {
		return model.Caller{}, false
	}
	return model.Caller{
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Role:      model.NormalizeRole(string(claims.Role)),
	}, true
}
