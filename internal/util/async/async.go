// Package async runs independent operations concurrently.
package async

import (
	"context"
	"fmt"
	"sync"
)

// Task is a named operation. The name describes what the task fetches or
// does and prefixes its error.
type Task struct {
	Name string
	Func func(context.Context) error
}

// Run executes tasks concurrently and waits for all of them. The first
// failure cancels the context passed to the others and is returned as
// "failed to <name>: <err>".
func Run(ctx context.Context, tasks ...Task) error {
	switch len(tasks) {
	case 0:
		return nil
	case 1:
		return wrap(tasks[0], tasks[0].Func(ctx))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for _, task := range tasks {
		task := task
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := task.Func(ctx); err != nil {
				once.Do(func() {
					firstErr = wrap(task, err)
					cancel()
				})
			}
		}()
	}
	wg.Wait()

	return firstErr
}

func wrap(task Task, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", task.Name, err)
}
