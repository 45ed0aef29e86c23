package api

import (
	"net/http"

	"github.com/roshanpatil2000/web-analytics-backend/model"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) UserList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var users []model.User

	if err := a.DB.Find(&users).Error; err != nil {
		zap.L().Error("Failed to fetch users", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	respond.Success(c, http.StatusOK, "Users fetched successfully", gin.H{
		"users": users,
	})
}
