// Package rules defines the static rule tables the checker scores workflow
// files against, and the evaluator that applies them. Rules are naive
// substring checks over raw text. A token inside a comment or quoted string
// still counts as present; that leniency is part of the scoring contract.
package rules

import (
	"fmt"
	"strings"

	"github.com/spboyer/pipecheck/internal/workflow"
)

// Predicate tests raw workflow content for a rule condition.
type Predicate func(content string) bool

// contains matches a case-sensitive substring.
func contains(token string) Predicate {
	return func(content string) bool {
		return strings.Contains(content, token)
	}
}

// containsFold matches a case-insensitive substring.
func containsFold(token string) Predicate {
	lower := strings.ToLower(token)
	return func(content string) bool {
		return strings.Contains(strings.ToLower(content), lower)
	}
}

// allOf passes when every predicate passes.
func allOf(preds ...Predicate) Predicate {
	return func(content string) bool {
		for _, p := range preds {
			if !p(content) {
				return false
			}
		}
		return true
	}
}

// anyOf passes when at least one predicate passes.
func anyOf(preds ...Predicate) Predicate {
	return func(content string) bool {
		for _, p := range preds {
			if p(content) {
				return true
			}
		}
		return false
	}
}

// Partial is a lower-value fallback awarded when a rule's full condition
// fails but a weaker one holds (e.g. only one of two required triggers).
type Partial struct {
	Points int
	Match  Predicate
	Detail string
}

// Rule is a single named presence check worth a fixed number of points.
type Rule struct {
	// Name is the stable identifier shown in the report.
	Name string
	// Points awarded when Match passes.
	Points int
	// Match is the rule's full condition.
	Match Predicate
	// PassDetail and FailDetail describe what was found or what is missing.
	PassDetail string
	FailDetail string
	// Fallback, when non-nil, is consulted after Match fails.
	Fallback *Partial
}

// evaluate applies the rule to content. Rules never short-circuit each
// other; each produces its own result.
func (r Rule) evaluate(content string) RuleResult {
	if r.Match(content) {
		return RuleResult{Name: r.Name, Passed: true, Points: r.Points, Detail: r.PassDetail}
	}
	if r.Fallback != nil && r.Fallback.Match(content) {
		return RuleResult{Name: r.Name, Points: r.Fallback.Points, Detail: r.Fallback.Detail}
	}
	return RuleResult{Name: r.Name, Detail: r.FailDetail}
}

// RuleResult is the outcome of one rule.
type RuleResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Points int    `json:"points"`
	Detail string `json:"detail,omitempty"`
}

// Category is one workflow type being scored: its display name, the file it
// reads, and an ordered rule table.
type Category struct {
	Name  string
	File  string
	Rules []Rule
}

// MaxPoints is the sum of the category's rule point values.
func (c Category) MaxPoints() int {
	total := 0
	for _, r := range c.Rules {
		total += r.Points
	}
	return total
}

// Evaluate scores txt against the category's rules. A missing file overrides
// rule evaluation entirely: the category collapses to a single failing
// "file exists" line with score zero. This is a deliberate branch ahead of
// the rule loop, not an error path.
func (c Category) Evaluate(txt *workflow.Text) CategoryResult {
	result := CategoryResult{Name: c.Name, File: c.File, Max: c.MaxPoints()}

	if !txt.Found {
		result.Rules = []RuleResult{{
			Name:   fmt.Sprintf("%s exists", c.File),
			Detail: "File not found",
		}}
		return result
	}

	for _, r := range c.Rules {
		rr := r.evaluate(txt.Content)
		result.Score += rr.Points
		result.Rules = append(result.Rules, rr)
	}
	return result
}

// CategoryResult is the scored outcome of one category.
type CategoryResult struct {
	Name  string       `json:"name"`
	File  string       `json:"file"`
	Score int          `json:"score"`
	Max   int          `json:"max"`
	Rules []RuleResult `json:"rules"`
}

// Complete reports whether the category earned its full maximum.
func (cr CategoryResult) Complete() bool {
	return cr.Score == cr.Max
}
