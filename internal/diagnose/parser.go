package diagnose

import (
	"regexp"

	"hoist/internal/model"
)

// Parser extracts problem packages from cargo's diagnostic output.
//
// Matching is pattern-based against the phrasings cargo actually emits. The
// patterns are deliberately narrow: a build can fail for a thousand reasons,
// and only dependency-shaped failures are worth a recovery attempt. Anything
// else parses to an empty result and the caller bails out.
type Parser struct {
	conflict []*regexp.Regexp
	missing  []*regexp.Regexp
}

// NewParser compiles the known diagnostic patterns.
func NewParser() *Parser {
	return &Parser{
		conflict: []*regexp.Regexp{
			// resolver found competing version requirements
			regexp.MustCompile("failed to select a version for `([^`]*)`"),
		},
		missing: []*regexp.Regexp{
			// rustc couldn't link the crate at all
			regexp.MustCompile("can't find crate for `([^`]*)`"),
			// the registry index has no such package
			regexp.MustCompile("could not find `([^`]*)` in registry"),
		},
	}
}

// Parse scans the full diagnostic text and returns one Problem per distinct
// package name, conflicts first. A name matched by both a conflict and a
// missing pattern is reported once, as a conflict.
func (p *Parser) Parse(diagnostics string) []model.Problem {
	seen := make(map[string]bool)
	var problems []model.Problem

	collect := func(patterns []*regexp.Regexp, kind model.ProblemKind) {
		for _, re := range patterns {
			for _, m := range re.FindAllStringSubmatch(diagnostics, -1) {
				name := m[1]
				if name == "" || seen[name] {
					continue
				}
				seen[name] = true
				problems = append(problems, model.Problem{Name: name, Kind: kind})
			}
		}
	}

	// Conflict patterns run first, so on overlap the conflict classification
	// wins and the missing match is dropped as a duplicate.
	collect(p.conflict, model.KindConflict)
	collect(p.missing, model.KindMissing)

	return problems
}
