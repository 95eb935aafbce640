package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ankit-Samanta/college-admin-dashboard/middlewares"
	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

const tokenTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub uint, role, name, email string) (string, error) {
	claims := middlewares.Claims{
		Sub:   sub,
		Role:  role,
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// invalidCredentials is deliberately 200 with the same body for every
// failure cause, so the response never reveals whether the email, the
// password or the claimed role was wrong.
func invalidCredentials(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": false, "message": "Invalid credentials"})
}

// POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badPayload(c)
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	role := strings.TrimSpace(strings.ToLower(req.Role))
	if email == "" || req.Password == "" {
		return missingFields(c)
	}

	var (
		id   uint
		name string
		hash string
	)
	switch role {
	case middlewares.RoleAdmin:
		var u models.User
		if err := db(c).Where("email = ?", email).First(&u).Error; err != nil {
			return invalidCredentials(c)
		}
		// centralised credential table: the stored role must back the claim
		if !strings.EqualFold(u.Role, middlewares.RoleAdmin) {
			return invalidCredentials(c)
		}
		id, name, hash = u.ID, u.Name, u.PasswordHash
	case middlewares.RoleTeacher:
		var t models.Teacher
		if err := db(c).Where("email = ?", email).First(&t).Error; err != nil {
			return invalidCredentials(c)
		}
		id, name, hash = t.ID, t.Name, t.PasswordHash
	case middlewares.RoleStudent:
		var s models.Student
		if err := db(c).Where("email = ?", email).First(&s).Error; err != nil {
			return invalidCredentials(c)
		}
		id, name, hash = s.ID, s.Name, s.PasswordHash
	default:
		return jsonFail(c, http.StatusBadRequest, "Invalid role")
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return invalidCredentials(c)
	}

	token, err := h.signJWT(id, role, name, email)
	if err != nil {
		return storeError(c)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user":    map[string]any{"id": id, "name": name, "email": email, "role": role},
	})
}
