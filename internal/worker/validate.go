package worker

import (
	"os"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// ValidateSavedGame decodes and replays one saved game.
func ValidateSavedGame(item WorkItem) ProcessResult {
	result := ProcessResult{Item: item}

	data := item.Data
	if data == nil {
		var err error
		if data, err = os.ReadFile(item.Path); err != nil {
			result.Error = err
			return result
		}
	}

	pos, tags, err := output.UnmarshalSavedGame(data)
	if err != nil {
		var replayErr *errors.ReplayError
		if errors.As(err, &replayErr) && replayErr.Source == "" {
			replayErr.Source = item.Name()
		}
		result.Error = err
		return result
	}

	result.Position = pos
	result.Tags = tags
	result.Status = engine.GameStatus(pos)
	return result
}

// ValidateAll checks every item on a pool of workers and returns the results
// in submission order. With stopOnError the pool stops at the first rejected
// game; items not yet processed are then missing from the results.
func ValidateAll(items []WorkItem, workers int, stopOnError bool) []ProcessResult {
	pool := NewPool(ValidateSavedGame, WithWorkers(workers), WithBufferSize(len(items)))
	pool.Start()

	go func() {
		for i, item := range items {
			if pool.IsStopped() {
				break
			}
			item.Index = i
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for result := range pool.Results() {
		if !result.OK() && stopOnError {
			pool.Stop()
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Item.Index < results[j].Item.Index
	})
	return results
}

// FileItems builds work items for saved-game files.
func FileItems(paths []string) []WorkItem {
	items := make([]WorkItem, len(paths))
	for i, path := range paths {
		items[i] = WorkItem{Path: path, Index: i}
	}
	return items
}
