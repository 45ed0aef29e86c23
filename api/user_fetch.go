package api

import (
	"errors"
	"net/http"

	"github.com/roshanpatil2000/web-analytics-backend/model"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"
	"github.com/roshanpatil2000/web-analytics-backend/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserFetch returns a single user by id. Malformed ids are rejected
// before any lookup happens
func (a *API) UserFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, err := validators.UserIDValidator(c.Param("id"))
	if err != nil {
		respond.ErrorMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	var user model.User

	if err := a.DB.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.ErrorMessage(c, http.StatusNotFound, "User not found")
			return
		}

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	respond.Success(c, http.StatusOK, "User fetched successfully", gin.H{
		"user": user,
	})
}
