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

func (a *API) UserDelete(c *gin.Context) {
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

		zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	res := a.DB.Delete(&user)
	if res.Error != nil {
		zap.L().Error("Failed to delete user", zap.Error(res.Error), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	// The row may vanish between the lookup and the delete, and a 200
	// built from the stale copy would claim a delete that never happened
	if res.RowsAffected == 0 {
		respond.ErrorMessage(c, http.StatusNotFound, "User not found")
		return
	}

	respond.Success(c, http.StatusOK, "User deleted successfully", gin.H{
		"user": user,
	})
}
