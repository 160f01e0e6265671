package handler

import (
	"log"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/helper"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func Login(c *fiber.Ctx) error {
	loginInput, ok := c.Locals("loginInput").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	account, err := helper.GetAccountByEmail(loginInput.Email)
	if err != nil {
		log.Printf("login lookup failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS)
	}
	if !helper.CheckPasswordHash(loginInput.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS)
	}
	if !account.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE)
	}

	tokenClaim := model.TokenClaim{
		AccountId: account.ID,
		Email:     account.Email,
		Role:      account.Role,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, "Login success", fiber.Map{
		"accessToken": token,
		"account": fiber.Map{
			"id":    account.ID,
			"email": account.Email,
			"name":  account.Name,
			"role":  account.Role,
		},
	})
}

// Logout revokes the presented token only.
func Logout(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	if claim.TokenId != "" {
		if err := helper.RevokeToken(c.Context(), claim.TokenId); err != nil {
			log.Printf("token revoke failed: %v", err)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
	}

	c.ClearCookie("access_token")
	return utils.SuccessResponse(c, fiber.StatusOK, "Logged out", nil)
}

// LogoutAll revokes every outstanding token of the account.
func LogoutAll(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	if err := helper.RevokeAllTokens(c.Context(), claim.AccountId); err != nil {
		log.Printf("token revoke-all failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	c.ClearCookie("access_token")
	return utils.SuccessResponse(c, fiber.StatusOK, "All sessions revoked", nil)
}

func Me(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	var account model.Account
	if err := database.DB.First(&account, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", account)
}
