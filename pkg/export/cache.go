package export

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"sharenotes-be/internal/entity"
)

type cachedRender struct {
	Metadata *Metadata
	Payload  []byte
}

// RenderCache memoizes rendered downloads. The key includes the note's
// update timestamp, so a stale entry can never be served after an edit;
// superseded entries simply age out.
type RenderCache struct {
	store *gocache.Cache
}

func NewRenderCache(ttl time.Duration) *RenderCache {
	return &RenderCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (c *RenderCache) key(note *entity.Note, f Format) string {
	version := note.CreatedAt.UnixNano()
	if note.UpdatedAt != nil {
		version = note.UpdatedAt.UnixNano()
	}
	return fmt.Sprintf("%s|%s|%d", note.Id, f, version)
}

func (c *RenderCache) Get(note *entity.Note, f Format) (*Metadata, []byte, bool) {
	v, ok := c.store.Get(c.key(note, f))
	if !ok {
		return nil, nil, false
	}
	cached := v.(cachedRender)
	return cached.Metadata, cached.Payload, true
}

func (c *RenderCache) Put(note *entity.Note, f Format, meta *Metadata, payload []byte) {
	c.store.Set(c.key(note, f), cachedRender{Metadata: meta, Payload: payload}, gocache.DefaultExpiration)
}
