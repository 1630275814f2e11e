package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/B1NYL/Promp-E-sub000/internal/storage"
)

const keyCreations = "creations"

// Creation is one finished work: the composed prompt and the URL of the
// generated image. Images stay remote; only the URL is persisted.
type Creation struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Gallery owns the user's creation list.
type Gallery struct {
	kv *storage.KV
}

func NewGallery(kv *storage.KV) *Gallery {
	return &Gallery{kv: kv}
}

// Add appends a creation and persists the list. Returns the stored record.
func (g *Gallery) Add(ctx context.Context, prompt, imageURL string) Creation {
	c := Creation{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	}
	list := g.List(ctx)
	list = append(list, c)
	g.kv.Set(ctx, keyCreations, list)
	return c
}

// List returns all creations, oldest first. An empty gallery is not an error.
func (g *Gallery) List(ctx context.Context) []Creation {
	var list []Creation
	g.kv.Get(ctx, keyCreations, &list)
	return list
}

// Find returns the creation with the given id.
func (g *Gallery) Find(ctx context.Context, id string) (Creation, bool) {
	for _, c := range g.List(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return Creation{}, false
}
