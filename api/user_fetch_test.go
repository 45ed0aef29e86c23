package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFetchRoundTrip(t *testing.T) {
	a := newTestAPI(t)

	w := signup(t, a, "A", "a@x.com", "p")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["user"].(map[string]any)["id"].(string)

	w = doJSON(t, a, http.MethodGet, "/api/v1/user/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, id, user["id"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "A", user["name"])
	assert.Equal(t, "user", user["role"])

	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestUserFetchMalformedID(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodGet, "/api/v1/user/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "invalid user id", body["error"].(map[string]any)["message"])
}

func TestUserFetchUnknownID(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodGet, "/api/v1/user/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserList(t *testing.T) {
	a := newTestAPI(t)

	require.Equal(t, http.StatusCreated, signup(t, a, "A", "a@x.com", "p").Code)
	require.Equal(t, http.StatusCreated, signup(t, a, "B", "b@x.com", "p").Code)

	w := doJSON(t, a, http.MethodGet, "/api/v1/user", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	users := body["users"].([]any)
	require.Len(t, users, 2)

	for _, u := range users {
		_, leaked := u.(map[string]any)["password"]
		assert.False(t, leaked)
	}
}
