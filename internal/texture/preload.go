package texture

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Preload takes one reference to every path in paths, decoding the uncached
// ones concurrently. Uploads happen sequentially on the calling goroutine,
// which must own the graphics context.
//
// The cache lock is held for the whole call, so a concurrent Load of the same
// path waits instead of decoding it a second time. Paths that fail to decode
// or upload are logged and left out of the result. If ctx is cancelled before
// the uploads start, the cache is left untouched and ctx.Err() is returned.
func (c *Cache) Preload(ctx context.Context, paths []string) (map[string]uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var pending []string
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if _, ok := c.entries[p]; !ok {
			pending = append(pending, p)
		}
	}

	images := make([]*Image, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.decodeWorkers)
	for i, p := range pending {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := c.decoder.Decode(p)
			if err != nil {
				c.logger.Warn("texture: preload decode failed", "path", p, "err", err)
				return nil
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, p := range pending {
		if images[i] == nil {
			continue
		}
		handle := c.upload(p, images[i])
		if handle == 0 {
			continue
		}
		// refCount starts at zero; the loop below takes the references.
		c.entries[p] = &entry{handle: handle}
		c.logger.Debug("texture: preloaded", "path", p, "handle", handle)
	}

	out := make(map[string]uint32, len(paths))
	for _, p := range paths {
		e, ok := c.entries[p]
		if !ok {
			continue
		}
		e.refCount++
		out[p] = e.handle
	}
	return out, nil
}
