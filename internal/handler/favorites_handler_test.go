package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_RoundTrip(t *testing.T) {
	env := newTestEnv(t)

	w := env.post(t, "/save-favorite", map[string]any{
		"email":    "a@b.co",
		"question": "How do I price?",
		"answer":   "Value-based pricing.",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Favorite saved successfully.", decodeBody(t, w)["message"])

	w = env.post(t, "/favorites", map[string]any{"email": "a@b.co"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	favorites, ok := body["favorites"].([]any)
	require.True(t, ok, "body %v", body)
	require.Len(t, favorites, 1)
	first := favorites[0].(map[string]any)
	assert.Equal(t, "How do I price?", first["question"])
	assert.Equal(t, "Value-based pricing.", first["answer"])

	w = env.post(t, "/delete-favorite", map[string]any{"email": "a@b.co", "question": "How do I price?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Favorite deleted.", decodeBody(t, w)["message"])

	w = env.post(t, "/favorites", map[string]any{"email": "a@b.co"})
	require.Equal(t, http.StatusOK, w.Code)
	favorites, _ = decodeBody(t, w)["favorites"].([]any)
	assert.Empty(t, favorites)
}

func TestFavorites_ClearScopedToEmail(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusOK,
		env.post(t, "/save-favorite", map[string]any{"email": "a@b.co", "question": "q1", "answer": "a1"}).Code)
	require.Equal(t, http.StatusOK,
		env.post(t, "/save-favorite", map[string]any{"email": "other@b.co", "question": "q2", "answer": "a2"}).Code)

	w := env.post(t, "/clear-favorites", map[string]any{"email": "a@b.co"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All favorites cleared.", decodeBody(t, w)["message"])

	w = env.post(t, "/favorites", map[string]any{"email": "other@b.co"})
	favorites, _ := decodeBody(t, w)["favorites"].([]any)
	assert.Len(t, favorites, 1)
}

func TestFavorites_MissingEmailIs400(t *testing.T) {
	env := newTestEnv(t)

	w := env.post(t, "/save-favorite", map[string]any{"question": "q", "answer": "a"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.post(t, "/favorites", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
