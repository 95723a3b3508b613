package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEvent(t *testing.T, app *TestApp, token, name, date string) string {
	t.Helper()

	payload, err := json.Marshal(map[string]any{
		"name":    name,
		"details": "Bring a friend",
		"address": "123 Main St",
		"date":    date,
		"time":    "6:30 PM",
	})
	require.NoError(t, err)

	req, err := http.NewRequest("POST", app.Server.URL+"/events", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	id, ok := body["id"].(string)
	require.True(t, ok)
	return id
}

func TestEventRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	token := app.createUserAndToken(t)
	id := createEvent(t, app, token, "Harvest Festival", "2026-10-31")

	resp, err := app.Client.Get(app.Server.URL + "/events/" + id)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	event, ok := body["event"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Harvest Festival", event["name"])
	assert.Equal(t, "123 Main St", event["address"])
	assert.Equal(t, "6:30 PM", event["time"])

	payload, err := json.Marshal(map[string]any{
		"name":    "Harvest Festival (Rescheduled)",
		"details": "Bring a friend",
		"address": "456 Oak Ave",
		"date":    "2026-11-07",
		"time":    "5:00 PM",
	})
	require.NoError(t, err)

	req, err := http.NewRequest("PUT", app.Server.URL+"/events/"+id, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var name, address string
	require.NoError(t, app.DB.QueryRow("SELECT name, address FROM events WHERE id = $1", id).Scan(&name, &address))
	assert.Equal(t, "Harvest Festival (Rescheduled)", name)
	assert.Equal(t, "456 Oak Ave", address)
}

func TestCreateEventRequiresToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	payload := []byte(`{"name":"Unauthenticated","address":"nowhere","date":"2026-10-31","time":"noon"}`)
	resp, err := app.Client.Post(app.Server.URL+"/events", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListEventsSoonestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	token := app.createUserAndToken(t)
	createEvent(t, app, token, "Later", "2026-12-24")
	createEvent(t, app, token, "Sooner", "2026-10-31")

	resp, err := app.Client.Get(app.Server.URL + "/events")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	events, ok := body["events"].([]any)
	require.True(t, ok)
	require.Len(t, events, 2)
	assert.Equal(t, "Sooner", events[0].(map[string]any)["name"])
	assert.Equal(t, "Later", events[1].(map[string]any)["name"])
}

func TestListUpcomingEventsSkipsPast(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	token := app.createUserAndToken(t)
	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	past := time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	createEvent(t, app, token, "Future", future)
	createEvent(t, app, token, "Past", past)

	resp, err := app.Client.Get(app.Server.URL + "/events/limit/5")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	events, ok := body["events"].([]any)
	require.True(t, ok)
	require.Len(t, events, 1)
	assert.Equal(t, "Future", events[0].(map[string]any)["name"])
}

func TestDeleteEventIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	token := app.createUserAndToken(t)
	id := createEvent(t, app, token, "One Shot", "2026-10-31")

	deleteEvent := func(eventID string) *http.Response {
		req, err := http.NewRequest("DELETE", app.Server.URL+"/events/"+eventID, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Client.Do(req)
		require.NoError(t, err)
		return resp
	}

	resp := deleteEvent(id)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	result := body["result"].(map[string]any)
	assert.Equal(t, float64(1), result["deletedCount"])

	// Deleting again reports zero rows but still succeeds.
	resp = deleteEvent(id)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	result = body["result"].(map[string]any)
	assert.Equal(t, float64(0), result["deletedCount"])

	resp = deleteEvent("not-a-uuid")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteExpiredEvents(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	token := app.createUserAndToken(t)
	past := time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	createEvent(t, app, token, "Long Gone", past)
	createEvent(t, app, token, "Yesterday", yesterday)
	futureID := createEvent(t, app, token, "Still Coming", future)

	req, err := http.NewRequest("DELETE", app.Server.URL+"/events/delete/old", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	result := body["result"].(map[string]any)
	assert.Equal(t, float64(2), result["deletedCount"])

	var remaining uuid.UUID
	require.NoError(t, app.DB.QueryRow("SELECT id FROM events").Scan(&remaining))
	assert.Equal(t, futureID, remaining.String())
}
