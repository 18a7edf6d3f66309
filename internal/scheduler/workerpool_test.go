package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:           "All tasks succeed",
			numTasks:       10,
			numWorkers:     3,
			expectedErrors: 0,
		},
		{
			name:           "Some tasks fail",
			numTasks:       10,
			numWorkers:     3,
			expectedErrors: 4,
		},
		{
			name:           "Single worker",
			numTasks:       5,
			numWorkers:     1,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var wg sync.WaitGroup
			var mu sync.Mutex
			executed := 0
			failed := 0

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				shouldFail := i < tt.expectedErrors
				task := func() error {
					defer wg.Done()
					mu.Lock()
					defer mu.Unlock()
					executed++
					if shouldFail {
						failed++
						return errors.New("task failed")
					}
					return nil
				}
				assert.NoError(t, wp.AddTask(context.Background(), task))
			}

			wg.Wait()

			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, tt.numTasks, executed)
			assert.Equal(t, tt.expectedErrors, failed)
		})
	}
}

func TestWorkerPoolCancelledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Saturate the queue so the add blocks and the cancelled context wins.
	block := make(chan struct{})
	defer close(block)
	_ = wp.AddTask(context.Background(), func() error {
		<-block
		return nil
	})
	_ = wp.AddTask(context.Background(), func() error { return nil })

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
