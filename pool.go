package cv2docx

import (
	"context"
	"runtime"
	"sync"
	"time"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps automatic sizing; explicit sizes are not capped.
	MaxPoolSize = 8
)

// BatchResult is the outcome of one generation of a batch.
type BatchResult struct {
	Index    int
	Result   *GenerateResult
	Err      error
	Duration time.Duration
}

// ResolvePoolSize determines the number of batch workers.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers
	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}

// Batch generates every input concurrently and returns the results in input
// order. workers is resolved with ResolvePoolSize and never exceeds the
// number of inputs. Inputs not started when ctx is done fail with its error.
func (c *Converter) Batch(ctx context.Context, inputs []GenerateInput, workers int) []BatchResult {
	if len(inputs) == 0 {
		return nil
	}

	concurrency := min(ResolvePoolSize(workers), len(inputs))

	results := make([]BatchResult, len(inputs))
	var wg sync.WaitGroup
	jobs := make(chan int, len(inputs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = BatchResult{Index: idx, Err: err}
					continue
				}
				start := time.Now()
				res, err := c.Generate(ctx, inputs[idx])
				results[idx] = BatchResult{
					Index:    idx,
					Result:   res,
					Err:      err,
					Duration: time.Since(start),
				}
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}
