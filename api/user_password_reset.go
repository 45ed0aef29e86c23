package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/roshanpatil2000/web-analytics-backend/model"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/security"
	"github.com/roshanpatil2000/web-analytics-backend/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// The ack is identical whether or not the email exists, so the
// endpoint can't be used to enumerate accounts
const forgotPasswordAck = "If that email is registered, a password reset token has been issued"

type forgotPasswordBody struct {
	Email string `json:"email"`
}

type resetPasswordBody struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (a *API) UserForgotPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBindJSON(&data); err != nil {
		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))

		respond.Internal(c, err)
		return
	}

	data.Email = validators.NormalizeEmail(data.Email)

	if err := validators.EmailValidator(data.Email); err != nil {
		respond.ErrorMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	var user model.User

	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Success(c, http.StatusOK, forgotPasswordAck, nil)
			return
		}

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	reset, err := security.NewOpaqueToken(security.ResetTokenTTL)
	if err != nil {
		zap.L().Error("Failed to generate reset token", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	err = a.DB.Model(&user).Updates(map[string]any{
		"reset_password_token":      reset.Token,
		"reset_password_expires_at": reset.ExpiresAt,
	}).Error
	if err != nil {
		zap.L().Error("Failed to store reset token", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	// TODO: deliver the token by mail once an outbound mailer exists.
	// Until then it only lands in the row and operators hand it out
	respond.Success(c, http.StatusOK, forgotPasswordAck, nil)
}

func (a *API) UserResetPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data resetPasswordBody
	if err := c.ShouldBindJSON(&data); err != nil {
		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))

		respond.Internal(c, err)
		return
	}

	if data.Token == "" || data.Password == "" {
		respond.ErrorMessage(c, http.StatusBadRequest, "All fields are required!")
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		respond.ErrorMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	var user model.User

	if err := a.DB.Where("reset_password_token = ?", data.Token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.ErrorMessage(c, http.StatusNotFound, "Invalid reset token")
			return
		}

		zap.L().Error("Failed to look up reset token", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	if user.ResetPasswordExpiresAt == nil || user.ResetPasswordExpiresAt.Before(time.Now()) {
		respond.ErrorMessage(c, http.StatusBadRequest, "Reset token expired")
		return
	}

	hash, err := a.Hash.Generate(data.Password)
	if err != nil {
		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	// Clearing auth_token logs out any session that still holds the
	// old credentials
	err = a.DB.Model(&user).Updates(map[string]any{
		"password":                  hash,
		"reset_password_token":      nil,
		"reset_password_expires_at": nil,
		"auth_token":                nil,
	}).Error
	if err != nil {
		zap.L().Error("Failed to reset password", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	respond.Success(c, http.StatusOK, "Password reset successfully", nil)
}
