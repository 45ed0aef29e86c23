package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/roshanpatil2000/web-analytics-backend/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserVerify(t *testing.T) {
	a := newTestAPI(t)

	require.Equal(t, http.StatusCreated, signup(t, a, "A", "a@x.com", "p").Code)

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", "a@x.com").First(&user).Error)
	require.NotNil(t, user.VerificationToken)

	w := doJSON(t, a, http.MethodPost, "/api/v1/user/verify", gin.H{"token": *user.VerificationToken})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Email verified successfully", decode(t, w)["message"])

	require.NoError(t, a.DB.Where("email = ?", "a@x.com").First(&user).Error)
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.VerificationToken, "token and expiry are cleared together")
	assert.Nil(t, user.VerificationExpiresAt)
}

func TestUserVerifyExpiredToken(t *testing.T) {
	a := newTestAPI(t)

	require.Equal(t, http.StatusCreated, signup(t, a, "A", "a@x.com", "p").Code)

	expired := time.Now().Add(-time.Hour)
	require.NoError(t, a.DB.Model(model.User{}).
		Where("email = ?", "a@x.com").
		Update("verification_expires_at", expired).Error)

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", "a@x.com").First(&user).Error)

	w := doJSON(t, a, http.MethodPost, "/api/v1/user/verify", gin.H{"token": *user.VerificationToken})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Verification token expired", decode(t, w)["error"].(map[string]any)["message"])
}

func TestUserVerifyUnknownToken(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/v1/user/verify", gin.H{"token": "nope"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/v1/user/verify", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
