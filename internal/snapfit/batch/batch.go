package batch

import (
	"fmt"

	snapfit "SnapForge/internal/snapfit"
)

type Input struct {
	Items []snapfit.Input `json:"items"`
}

type Result struct {
	Results []snapfit.Result `json:"results"`
}

// Calculate evaluates every item in order. One bad item fails the whole
// batch, same contract as a sweep.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]snapfit.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := snapfit.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
