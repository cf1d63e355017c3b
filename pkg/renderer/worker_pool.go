package renderer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// renderParallel distributes rows over rt.workers goroutines. Each row writes
// only its own slice of frame.Pixels and its own rows entry, so the output
// is ordered by pixel index regardless of completion order. The first error,
// or cancellation of ctx, stops the remaining rows.
func (rt *Raytracer) renderParallel(ctx context.Context, frame *Frame, rows []rowStats) error {
	g, ctx := errgroup.WithContext(ctx)
	taskQueue := make(chan int, rt.workers)

	// Producer: queue every row index
	g.Go(func() error {
		defer close(taskQueue)
		for y := 0; y < rt.height; y++ {
			select {
			case taskQueue <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < rt.workers; i++ {
		g.Go(func() error {
			for y := range taskQueue {
				if err := ctx.Err(); err != nil {
					return err
				}
				stats, err := rt.renderRow(y, frame.Pixels[y*rt.width:(y+1)*rt.width])
				if err != nil {
					return err
				}
				rows[y] = stats
			}
			return nil
		})
	}

	return g.Wait()
}
