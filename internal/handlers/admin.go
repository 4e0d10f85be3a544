package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stevenguyen-wq/babyboss.tarot/internal/auth"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/config"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/eligibility"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/models"
)

// loginRequest defines JSON payload for login.
type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin user and returns a JWT.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login payload: " + err.Error()})
		return
	}

	var user models.AdminUser
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := auth.GenerateJWT(user.ID.String(), user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"user_id":  user.ID.String(),
		"username": user.Username,
	})
}

// RequireAuth is a middleware that checks for a valid "Bearer" JWT.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		claims, err := auth.ParseAndVerify(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token: " + err.Error()})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// ListPlays handles GET /api/v1/admin/plays: every recorded draw with a
// masked phone number.
func ListPlays(c *gin.Context) {
	var records []models.PlayRecord
	if err := config.DB.Order("created_at desc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plays: " + err.Error()})
		return
	}

	resp := make([]gin.H, 0, len(records))
	for _, r := range records {
		phone := strings.TrimPrefix(r.PhoneKey, eligibility.KeyPrefix)
		resp = append(resp, gin.H{
			"id":           r.ID,
			"masked_phone": maskPhone(phone),
			"card_id":      r.CardID,
			"played_at":    r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"plays": resp})
}

// SeedAdmin makes sure the configured admin account exists. Called once
// at startup; no-op when the env vars are unset or the user is present.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	var existing models.AdminUser
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
	}).Error
}

// maskPhone masks a phone number like "0912345678" → "091****5678".
func maskPhone(phone string) string {
	if len(phone) < 7 {
		return phone
	}
	return phone[:3] + "****" + phone[len(phone)-4:]
}
