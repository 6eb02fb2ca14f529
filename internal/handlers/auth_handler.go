package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/goldinkstudio/tattoo-booking-api/internal/config"
	"github.com/goldinkstudio/tattoo-booking-api/internal/middleware"
	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
	"github.com/goldinkstudio/tattoo-booking-api/internal/tokens"
	"github.com/goldinkstudio/tattoo-booking-api/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	denylist tokens.Denylist
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, denylist tokens.Denylist) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, denylist: denylist}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FullName        string `json:"full_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// validação local acontece antes de qualquer chamada ao banco
	phone := validators.NormalizePhone(req.Phone)
	if !validators.IsPhoneValid(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_phone",
			"message": "Telefone deve ter 11 dígitos",
		})
		return
	}

	if !validators.IsPasswordValid(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "weak_password",
			"message":  "A senha deve conter no mínimo 6 caracteres, incluindo letra maiúscula, número e caractere especial",
			"strength": validators.PasswordStrengthLabel(req.Password),
		})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "password_mismatch",
			"message": "As senhas não coincidem",
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	// O perfil é gravado num segundo passo, sem rollback: se falhar,
	// o usuário continua criado e fica sem perfil até regularizar.
	profile := models.Profile{
		UserID:   user.ID,
		FullName: req.FullName,
		Phone:    phone,
	}
	if err := h.db.Create(&profile).Error; err != nil {
		log.Printf("profile write failed after user creation (user_id=%d): %v", user.ID, err)
	}

	token, err := tokens.Issue(user.ID, false, h.config.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"profile": gin.H{
			"full_name": profile.FullName,
			"phone":     profile.Phone,
			"is_admin":  profile.IsAdmin,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	// o perfil pode não existir (escrita de cadastro sem rollback)
	var profile models.Profile
	hasProfile := h.db.Where("user_id = ?", user.ID).First(&profile).Error == nil

	token, err := tokens.Issue(user.ID, hasProfile && profile.IsAdmin, h.config.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"token": token,
	}
	if hasProfile {
		resp["profile"] = gin.H{
			"full_name": profile.FullName,
			"phone":     profile.Phone,
			"is_admin":  profile.IsAdmin,
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.MustGet(middleware.ContextJTI).(string)
	expiresAt := c.MustGet(middleware.ContextExpiry).(time.Time)

	if jti != "" {
		ttl := time.Until(expiresAt)
		if err := h.denylist.Revoke(c.Request.Context(), jti, ttl); err != nil {
			log.Printf("token revoke failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_logout"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
