package api

import (
	"net/http"
	"testing"

	"github.com/roshanpatil2000/web-analytics-backend/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestZZDebugVerifyFlow(t *testing.T) {
	a := newTestAPI(t)
	a.DB = a.DB.Session(&gorm.Session{Logger: logger.Default.LogMode(logger.Info)})

	require.Equal(t, http.StatusCreated, signup(t, a, "A", "a@x.com", "p").Code)

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", "a@x.com").First(&user).Error)
	require.NotNil(t, user.VerificationToken)
	t.Logf("before verify: token=%v expiry=%v", *user.VerificationToken, user.VerificationExpiresAt)

	w := doJSON(t, a, http.MethodPost, "/api/v1/user/verify", gin.H{"token": *user.VerificationToken})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh model.User
	require.NoError(t, a.DB.Where("email = ?", "a@x.com").First(&fresh).Error)
	t.Logf("fresh struct: verified=%v token=%v expiry=%v", fresh.IsVerified, fresh.VerificationToken, fresh.VerificationExpiresAt)

	require.NoError(t, a.DB.Where("email = ?", "a@x.com").First(&user).Error)
	t.Logf("stale struct: verified=%v token=%v expiry=%v", user.IsVerified, user.VerificationToken, user.VerificationExpiresAt)
}
