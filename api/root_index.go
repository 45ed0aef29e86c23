package api

import (
	"net/http"

	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"

	"github.com/gin-gonic/gin"
)

func (a *API) Root(c *gin.Context) {
	respond.Success(c, http.StatusOK, "Hello, World!", nil)
}
