package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/configs"
	"github.com/Harshrawat27/rently/internals/features/users/auth/dto"
	authModel "github.com/Harshrawat27/rently/internals/features/users/auth/model"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

const accessTTL = 24 * time.Hour

var validate = validator.New()

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.User{
		UserName: req.UserName,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return issueToken(c, fiber.StatusCreated, "Registered successfully", &user)
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user authModel.User
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to look up user")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return issueToken(c, fiber.StatusOK, "Login successful", &user)
}

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user authModel.User
	err = db.Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = authModel.User{
			UserName: name,
			Email:    strings.ToLower(email),
			Password: generateDummyPassword(),
			GoogleID: &googleID,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			if isUniqueViolation(err) {
				return helper.Error(c, fiber.StatusConflict, "Email already registered")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
	} else if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to look up user")
	}

	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is deactivated")
	}

	return issueToken(c, fiber.StatusOK, "Login successful", &user)
}

// Logout blacklists the current access token until its natural expiry.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, ok := c.Locals("token_string").(string)
	if !ok || tokenString == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Missing token")
	}

	expiredAt := time.Now().Add(accessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := db.Create(&entry).Error; err != nil && !isUniqueViolation(err) {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to log out")
	}

	return helper.Success(c, "Logged out", nil)
}

func issueToken(c *fiber.Ctx, code int, message string, user *authModel.User) error {
	secret := configs.JWTSecret
	if secret == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"email":     user.Email,
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.SuccessWithCode(c, code, message, dto.AuthResponse{
		AccessToken: signed,
		User: dto.UserResponse{
			ID:       user.ID.String(),
			UserName: user.UserName,
			Email:    user.Email,
		},
	})
}

func generateDummyPassword() string {
	b := make([]byte, 24)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}
