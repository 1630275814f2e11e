package aiclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateHints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate-hints", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "a fox", req["prompt"])

		_ = json.NewEncoder(w).Encode(HintsResult{
			Adjectives: []string{"sly", "red"},
			Verbs:      []string{"leaping"},
			Styles:     []string{"watercolor"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	res, err := c.GenerateHints(context.Background(), "a fox")
	require.NoError(t, err)
	require.Equal(t, []string{"sly", "red"}, res.Adjectives)
	require.Equal(t, []string{"watercolor"}, res.Styles)
}

func TestGenerateImageSendsReferenceBase64(t *testing.T) {
	snapshot := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req struct {
			Prompt         string `json:"prompt"`
			ReferenceImage string `json:"referenceImage"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		require.Equal(t, "a fox", req.Prompt)

		decoded, err := base64.StdEncoding.DecodeString(req.ReferenceImage)
		require.NoError(t, err)
		require.Equal(t, snapshot, decoded)

		_ = json.NewEncoder(w).Encode(GenerateImageResult{ImageURL: "https://img.example/1.png"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	res, err := c.GenerateImage(context.Background(), "a fox", snapshot)
	require.NoError(t, err)
	require.Equal(t, "https://img.example/1.png", res.ImageURL)
}

func TestGenerateImageOmitsAbsentReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_, present := req["referenceImage"]
		require.False(t, present, "absent reference must not be sent")
		_ = json.NewEncoder(w).Encode(GenerateImageResult{ImageURL: "u"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	_, err := c.GenerateImage(context.Background(), "a fox", nil)
	require.NoError(t, err)
}

func TestErrorSurfacesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
	require.Contains(t, err.Error(), "model overloaded")
}

func TestComposePrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Layers []Layer `json:"layers"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Layers, 2)
		require.Equal(t, "draw", req.Layers[0].Type)

		_ = json.NewEncoder(w).Encode(ComposeResult{
			ComposedPrompt:   "a sly red fox, watercolor",
			ComposedPromptKr: "수채화풍의 교활한 붉은 여우",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	res, err := c.ComposePrompt(context.Background(), []Layer{
		{Name: "sketch", Type: "draw", Data: "…"},
		{Name: "style", Type: "text", Data: "watercolor"},
	})
	require.NoError(t, err)
	require.Equal(t, "a sly red fox, watercolor", res.ComposedPrompt)
	require.NotEmpty(t, res.ComposedPromptKr)
}

func TestListPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/list-posts", r.URL.Path)
		_, _ = w.Write([]byte(`{"posts":[{"id":"p1","prompt":"a fox","imageUrl":"u1"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	posts, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "p1", posts[0].ID)
}
