package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/roshanpatil2000/web-analytics-backend/model"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"
	"github.com/roshanpatil2000/web-analytics-backend/util"
	"github.com/roshanpatil2000/web-analytics-backend/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBindJSON(&data); err != nil {
		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))

		respond.Internal(c, err)
		return
	}

	data.Email = validators.NormalizeEmail(data.Email)

	if data.Email == "" || data.Password == "" {
		respond.ErrorMessage(c, http.StatusBadRequest, "All fields are required!")
		return
	}

	var user model.User

	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.ErrorMessage(c, http.StatusNotFound, "User not found")
			return
		}

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	ok, err := a.Hash.Verify(data.Password, user.Password)
	if err != nil {
		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	if !ok {
		respond.ErrorMessage(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	authToken, err := util.MakeAuthToken(&user)
	if err != nil {
		zap.L().Error("Failed to generate auth token", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	now := time.Now()

	err = a.DB.Model(&user).Updates(map[string]any{
		"last_login": now,
		"auth_token": authToken,
	}).Error
	if err != nil {
		zap.L().Error("Failed to update login state", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	user.LastLogin = &now
	user.AuthToken = &authToken

	setAuthCookie(c, authToken)

	respond.Success(c, http.StatusOK, "Login successful", gin.H{
		"user": user,
	})
}
