package helper

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByEmail(email string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Email: email}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// GenerateAccessToken issues a signed token carrying a jti so it can be
// revoked individually on logout.
func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = tokenClaim.AccountId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["jti"] = uuid.NewString()
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(time.Hour * 12).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoAccountFromToken resolves the authenticated account from Locals and
// reports the admin flag alongside the claim.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}

	accountId := uint(0)
	if id, ok := claims["accountId"].(float64); ok {
		accountId = uint(id)
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)

	if accountId == 0 {
		return model.TokenClaim{}, false
	}

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		log.Printf("account lookup failed: id=%d, error=%v", accountId, err)
		return model.TokenClaim{}, false
	}
	if !account.IsActive {
		return model.TokenClaim{}, false
	}

	claim := model.TokenClaim{
		AccountId: accountId,
		Email:     email,
		Role:      role,
		TokenId:   jti,
	}
	return claim, account.Role == constants.ROLE_ADMIN
}
