package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/roshanpatil2000/web-analytics-backend/model"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type verifyBody struct {
	Token string `json:"token"`
}

// UserVerify completes email verification. The token and its expiry
// are cleared together in the same update that flips isVerified
func (a *API) UserVerify(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data verifyBody
	if err := c.ShouldBindJSON(&data); err != nil {
		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))

		respond.Internal(c, err)
		return
	}

	if data.Token == "" {
		respond.ErrorMessage(c, http.StatusBadRequest, "Verification token is required")
		return
	}

	var user model.User

	if err := a.DB.Where("verification_token = ?", data.Token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.ErrorMessage(c, http.StatusNotFound, "Invalid verification token")
			return
		}

		zap.L().Error("Failed to look up verification token", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	if user.VerificationExpiresAt == nil || user.VerificationExpiresAt.Before(time.Now()) {
		respond.ErrorMessage(c, http.StatusBadRequest, "Verification token expired")
		return
	}

	err := a.DB.Model(&user).Updates(map[string]any{
		"is_verified":             true,
		"verification_token":      nil,
		"verification_expires_at": nil,
	}).Error
	if err != nil {
		zap.L().Error("Failed to mark user as verified", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	respond.Success(c, http.StatusOK, "Email verified successfully", nil)
}
