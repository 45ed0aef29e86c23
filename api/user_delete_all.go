package api

import (
	"net/http"

	"github.com/roshanpatil2000/web-analytics-backend/model"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserDeleteAll wipes the whole user table. The router only reaches
// this handler for authenticated admins
func (a *API) UserDeleteAll(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	res := a.DB.Where("1 = 1").Delete(&model.User{})
	if res.Error != nil {
		zap.L().Error("Failed to delete users", zap.Error(res.Error), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	zap.L().Warn("All users deleted",
		zap.Int64("count", res.RowsAffected),
		zap.String("requestID", requestID),
		zap.String("adminID", c.GetString("userID")),
	)

	respond.Success(c, http.StatusOK, "All users deleted successfully", gin.H{
		"count": res.RowsAffected,
	})
}
