package logger

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureWebhook(t *testing.T) (*httptest.Server, *[]webhookPayload) {
	t.Helper()
	var received []webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload webhookPayload
		require.NoError(t, json.Unmarshal(raw, &payload))
		received = append(received, payload)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestInfoDelivery(t *testing.T) {
	srv, received := captureWebhook(t)
	l := New(srv.URL, "production")

	l.Info("Course created", map[string]interface{}{
		"courseId": 42,
		"title":    "Go 101",
	})

	require.Len(t, *received, 1)
	embed := (*received)[0].Embeds[0]
	assert.Equal(t, "🎓 EdTech Platform - Course created", embed.Title)
	assert.Equal(t, "Information event occurred", embed.Description)
	assert.Equal(t, colorInfo, embed.Color)
	assert.Equal(t, "Environment: production", embed.Footer.Text)

	// fields are sorted by name
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "courseId", embed.Fields[0].Name)
	assert.Equal(t, "42", embed.Fields[0].Value)
	assert.Equal(t, "title", embed.Fields[1].Name)
	assert.Equal(t, "Go 101", embed.Fields[1].Value)
}

func TestLevelColorsAndThumbnails(t *testing.T) {
	srv, received := captureWebhook(t)
	l := New(srv.URL, "development")

	l.Success("s", nil)
	l.Warning("w", nil)
	l.Debug("d", nil)

	require.Len(t, *received, 3)
	assert.Equal(t, colorSuccess, (*received)[0].Embeds[0].Color)
	require.NotNil(t, (*received)[0].Embeds[0].Thumbnail)
	assert.Equal(t, colorWarning, (*received)[1].Embeds[0].Color)
	assert.Equal(t, colorDebug, (*received)[2].Embeds[0].Color)
	assert.Nil(t, (*received)[2].Embeds[0].Thumbnail)
}

func TestErrorCarriesMessageAndStack(t *testing.T) {
	srv, received := captureWebhook(t)
	l := New(srv.URL, "production")

	l.Error("Request failed", assert.AnError, map[string]interface{}{"path": "/courses"})

	require.Len(t, *received, 1)
	embed := (*received)[0].Embeds[0]
	assert.Equal(t, colorError, embed.Color)

	require.True(t, len(embed.Fields) >= 3)
	assert.Equal(t, "Error Message", embed.Fields[0].Name)
	assert.Equal(t, assert.AnError.Error(), embed.Fields[0].Value)
	assert.Equal(t, "Stack Trace", embed.Fields[1].Name)
	// truncated to 1000 chars plus the code fence
	assert.LessOrEqual(t, len(embed.Fields[1].Value), 1000+len("```\n\n```"))
}

func TestDebugSuppressedOutsideDevelopment(t *testing.T) {
	srv, received := captureWebhook(t)
	l := New(srv.URL, "production")

	l.Debug("never delivered", map[string]interface{}{"x": 1})
	assert.Empty(t, *received)
}

func TestUnconfiguredSinkFallsBackToConsole(t *testing.T) {
	l := New("", "development")
	assert.False(t, l.Enabled)

	// Must not panic or hang; everything degrades to console lines.
	l.Info("i", nil)
	l.Success("s", map[string]interface{}{"k": "v"})
	l.Warning("w", nil)
	l.Error("e", assert.AnError, nil)
	l.Debug("d", nil)
}

func TestStringifyPrettyPrintsStructured(t *testing.T) {
	out := stringify(map[string]interface{}{"a": 1})
	assert.Contains(t, out, "\"a\": 1")
	assert.Equal(t, "plain", stringify("plain"))
	assert.Equal(t, "3.5", stringify(3.5))
	assert.Equal(t, "<nil>", stringify(nil))
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	l := New(srv.URL, "production")
	l.Info("still fine", nil) // must not panic or return an error to the caller
}
