package model

import (
	"fmt"
	"sort"
	"strings"
)

// ProblemKind classifies why the build diagnostics implicated a package.
type ProblemKind int

const (
	// KindConflict means cargo could not select a single version for the
	// package (competing requirements somewhere in the dependency graph).
	KindConflict ProblemKind = iota
	// KindMissing means the package could not be found at all, either as a
	// crate or in the registry index.
	KindMissing
)

func (k ProblemKind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindMissing:
		return "missing"
	}
	return "unknown"
}

// Problem is one package implicated by a failed build.
type Problem struct {
	Name string      // crate name as captured from the diagnostics
	Kind ProblemKind // why it was implicated
}

// Combination assigns exactly one candidate version to every problem package.
// One combination is one full trial build.
type Combination map[string]string

// String renders the assignments in sorted name order so status output and
// test expectations are stable.
func (c Combination) String() string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s = %q", name, c[name]))
	}
	return strings.Join(parts, ", ")
}

// Outcome is how a resolution run ended. Only OutcomeNone accompanies an
// error; every other value is a clean terminal state.
type Outcome int

const (
	// OutcomeNone means the run was aborted by a hard failure before
	// reaching a terminal state.
	OutcomeNone Outcome = iota
	// OutcomeBuildClean means the initial probe build succeeded and nothing
	// needed fixing.
	OutcomeBuildClean
	// OutcomeFixed means a trial combination built successfully and was
	// committed to the manifest.
	OutcomeFixed
	// OutcomeNoParseableIssue means the build failed but the diagnostics
	// matched no known dependency-error pattern.
	OutcomeNoParseableIssue
	// OutcomeExhausted means every combination was tried and none built.
	OutcomeExhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBuildClean:
		return "build clean"
	case OutcomeFixed:
		return "fixed"
	case OutcomeNoParseableIssue:
		return "no parseable issue"
	case OutcomeExhausted:
		return "exhausted"
	}
	return "none"
}
