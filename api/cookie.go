package api

import (
	"net/http"

	"github.com/roshanpatil2000/web-analytics-backend/config"
	"github.com/roshanpatil2000/web-analytics-backend/util"

	"github.com/gin-gonic/gin"
)

// setAuthCookie attaches the bearer token as an HTTP-only lax cookie.
// The Secure flag only makes sense behind TLS, so it's tied to the
// production flag, and the max age matches the token's own validity
func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, int(util.AuthTokenTTL.Seconds()), "/", "", config.IsProduction(), true)
}
