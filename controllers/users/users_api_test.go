package userController_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/AdamLouly/quizzapp/models"
	"github.com/AdamLouly/quizzapp/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersScopedToTenantAndExcludesAdmins(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	otherClient := testutils.CreateClient(t, db, "Shelbyville High")
	admin := testutils.CreateUser(t, db, "ADMIN", client.ID)
	testutils.CreateUser(t, db, "TEACHER", client.ID)
	testutils.CreateUser(t, db, "STUDENT", client.ID)
	testutils.CreateUser(t, db, "STUDENT", otherClient.ID)

	resp := testutils.DoRequest(t, app, "GET", "/users", testutils.Token(t, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := testutils.DecodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["totalCount"])

	for _, raw := range data["users"].([]interface{}) {
		user := raw.(map[string]interface{})
		assert.NotEqual(t, "ADMIN", user["role"])
		assert.Equal(t, float64(client.ID), user["client_id"])
	}
}

func TestCreateUserInheritsAdminTenant(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	admin := testutils.CreateUser(t, db, "ADMIN", client.ID)

	resp := testutils.DoRequest(t, app, "POST", "/users", testutils.Token(t, admin), map[string]interface{}{
		"firstname": "Grace",
		"lastname":  "Hopper",
		"username":  "ghopper",
		"email":     "grace@school.test",
		"password":  "secret123",
		"role":      "teacher",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("username = ?", "ghopper").First(&user).Error)
	assert.Equal(t, client.ID, user.ClientID)
	assert.Equal(t, "TEACHER", user.Role)
}

func TestUpdateUserKeepsPasswordWhenOmitted(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	admin := testutils.CreateUser(t, db, "ADMIN", client.ID)
	user := testutils.CreateUser(t, db, "STUDENT", client.ID)
	originalHash := user.Password

	resp := testutils.DoRequest(t, app, "PUT", fmt.Sprintf("/users/%d", user.ID), testutils.Token(t, admin), map[string]interface{}{
		"firstname": "Renamed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, "Renamed", updated.FirstName)
	assert.Equal(t, originalHash, updated.Password)
}

func TestDeleteUserIsSoft(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	admin := testutils.CreateUser(t, db, "ADMIN", client.ID)
	user := testutils.CreateUser(t, db, "STUDENT", client.ID)

	resp := testutils.DoRequest(t, app, "DELETE", fmt.Sprintf("/users/%d", user.ID), testutils.Token(t, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, stored.IsDeleted)

	// a soft-deleted user can no longer authenticate against protected routes
	resp = testutils.DoRequest(t, app, "GET", "/quiz-results", testutils.Token(t, user), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetUserForeignTenantIsNotFound(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	otherClient := testutils.CreateClient(t, db, "Shelbyville High")
	admin := testutils.CreateUser(t, db, "ADMIN", client.ID)
	outsider := testutils.CreateUser(t, db, "STUDENT", otherClient.ID)

	resp := testutils.DoRequest(t, app, "GET", fmt.Sprintf("/users/%d", outsider.ID), testutils.Token(t, admin), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListTeachersAndStudents(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	admin := testutils.CreateUser(t, db, "ADMIN", client.ID)
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)
	testutils.CreateUser(t, db, "STUDENT", client.ID)
	testutils.CreateUser(t, db, "STUDENT", client.ID)

	resp := testutils.DoRequest(t, app, "GET", "/teachers", testutils.Token(t, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := testutils.DecodeBody(t, resp)
	assert.Equal(t, float64(1), body["data"].(map[string]interface{})["totalCount"])

	// teachers may list students too
	resp = testutils.DoRequest(t, app, "GET", "/students", testutils.Token(t, teacher), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = testutils.DecodeBody(t, resp)
	assert.Equal(t, float64(2), body["data"].(map[string]interface{})["totalCount"])
}

func TestUserManagementDeniedForStudents(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	student := testutils.CreateUser(t, db, "STUDENT", client.ID)

	resp := testutils.DoRequest(t, app, "GET", "/users", testutils.Token(t, student), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPaginationRejectsBadParams(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	admin := testutils.CreateUser(t, db, "ADMIN", client.ID)

	resp := testutils.DoRequest(t, app, "GET", "/users?offset=-1", testutils.Token(t, admin), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = testutils.DoRequest(t, app, "GET", "/users?limit=500", testutils.Token(t, admin), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
