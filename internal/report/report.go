// Package report aggregates category scores into a single run report.
package report

import (
	"github.com/spboyer/pipecheck/internal/rules"
	"github.com/spboyer/pipecheck/internal/workflow"
)

// BarSegments is the width of the rendered progress bar.
const BarSegments = 20

// RunReport is the scored outcome of one checker invocation. It has no
// identity beyond the invocation; nothing is persisted between runs.
type RunReport struct {
	Categories []rules.CategoryResult `json:"categories"`
	Total      int                    `json:"total"`
	Max        int                    `json:"max"`
}

// Run loads each category's workflow file from dir, evaluates it, and sums
// the results. Missing files score zero for their category; other I/O
// failures abort the run.
func Run(dir string) (*RunReport, error) {
	rep := &RunReport{}
	for _, cat := range rules.Categories() {
		txt, err := workflow.Load(dir, cat.File)
		if err != nil {
			return nil, err
		}
		cr := cat.Evaluate(txt)
		rep.Categories = append(rep.Categories, cr)
		rep.Total += cr.Score
		rep.Max += cr.Max
	}
	return rep, nil
}

// Percentage is floor(100 * Total / Max), or 0 when Max is zero.
func (r *RunReport) Percentage() int {
	if r.Max == 0 {
		return 0
	}
	return 100 * r.Total / r.Max
}

// Complete reports whether every category earned its full maximum.
func (r *RunReport) Complete() bool {
	return r.Percentage() == 100
}

// FilledSegments is the number of filled progress bar segments, out of
// BarSegments.
func (r *RunReport) FilledSegments() int {
	return r.Percentage() / 5
}
