package clientController_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/AdamLouly/quizzapp/models"
	"github.com/AdamLouly/quizzapp/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOwnClient(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	student := testutils.CreateUser(t, db, "STUDENT", client.ID)

	resp := testutils.DoRequest(t, app, "GET", "/clients", testutils.Token(t, student), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := testutils.DecodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Springfield High", data["name"])
}

func TestGetClientForeignTenantLooksMissing(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	otherClient := testutils.CreateClient(t, db, "Shelbyville High")
	admin := testutils.CreateUser(t, db, "ADMIN", client.ID)

	resp := testutils.DoRequest(t, app, "GET", fmt.Sprintf("/clients/%d", otherClient.ID), testutils.Token(t, admin), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = testutils.DoRequest(t, app, "GET", fmt.Sprintf("/clients/%d", client.ID), testutils.Token(t, admin), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateClientGatedToOwnTenant(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	otherClient := testutils.CreateClient(t, db, "Shelbyville High")
	admin := testutils.CreateUser(t, db, "ADMIN", client.ID)

	resp := testutils.DoRequest(t, app, "PUT", fmt.Sprintf("/clients/%d", otherClient.ID), testutils.Token(t, admin), map[string]interface{}{
		"name": "Hijacked",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = testutils.DoRequest(t, app, "PUT", fmt.Sprintf("/clients/%d", client.ID), testutils.Token(t, admin), map[string]interface{}{
		"name": "Springfield Senior High",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Client
	require.NoError(t, db.First(&updated, client.ID).Error)
	assert.Equal(t, "Springfield Senior High", updated.Name)
}

func TestClientManagementDeniedForNonAdmins(t *testing.T) {
	app, db := testutils.SetupApp(t)

	client := testutils.CreateClient(t, db, "Springfield High")
	teacher := testutils.CreateUser(t, db, "TEACHER", client.ID)

	resp := testutils.DoRequest(t, app, "GET", fmt.Sprintf("/clients/%d", client.ID), testutils.Token(t, teacher), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
