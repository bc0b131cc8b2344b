package resolve

import (
	"fmt"
	"io"
	"os"
	"strings"

	"hoist/internal/build"
	"hoist/internal/diagnose"
	"hoist/internal/manifest"
	"hoist/internal/model"
	"hoist/internal/registry"
)

// BuildRunner is the slice of the build tool the resolver needs.
type BuildRunner interface {
	Probe() (build.ProbeResult, error)
	Trial(manifestPath string) (bool, error)
}

// VersionSource supplies candidate versions for one package.
type VersionSource interface {
	CandidateVersions(name string) ([]string, error)
}

// ManifestStore applies version assignments to the project's manifests.
type ManifestStore interface {
	WriteTrial(assignments map[string]string) (path string, err error)
	Commit(assignments map[string]string) error
}

// Resolver drives one full recovery run:
//
//	probe build → diagnose → fetch candidates → trial combinations → commit
//
// Earlier stages short-circuit: a clean probe means nothing to do,
// unparseable diagnostics mean nothing to try. Everything runs sequentially
// on one goroutine; the only waits are the registry fetches and the build
// subprocesses themselves.
type Resolver struct {
	Build    BuildRunner
	Parser   *diagnose.Parser
	Registry VersionSource
	Manifest ManifestStore
	Out      io.Writer
}

// New wires a Resolver with the real collaborators for the project at dir.
func New(dir string) *Resolver {
	return &Resolver{
		Build:    build.NewRunner(dir),
		Parser:   diagnose.NewParser(),
		Registry: registry.NewClient(),
		Manifest: manifest.NewStore(dir),
		Out:      os.Stdout,
	}
}

func (r *Resolver) printf(format string, args ...any) {
	fmt.Fprintf(r.Out, format+"\n", args...)
}

// Run executes the resolution state machine. The returned Outcome is the
// terminal state; err is non-nil only for hard failures (I/O, network,
// malformed data), in which case the authoritative manifest is guaranteed
// untouched.
func (r *Resolver) Run() (model.Outcome, error) {
	probe, err := r.Build.Probe()
	if err != nil {
		return model.OutcomeNone, err
	}
	if probe.Succeeded {
		r.printf("%s", successStyle.Render("✅ Build succeeded. No dependency issues detected."))
		return model.OutcomeBuildClean, nil
	}

	r.printf("%s", warnStyle.Render("⚠️  Build failed. Scanning diagnostics for dependency issues..."))

	problems := r.Parser.Parse(probe.Diagnostics)
	if len(problems) == 0 {
		r.printf("%s", failStyle.Render("❌ No parseable dependency issues found. Nothing to try."))
		return model.OutcomeNoParseableIssue, nil
	}

	names := make([]string, len(problems))
	for i, p := range problems {
		names[i] = fmt.Sprintf("%s (%s)", p.Name, p.Kind)
	}
	r.printf("🧩 Problematic crates: %s", strings.Join(names, ", "))

	candidates, err := r.fetchCandidates(problems)
	if err != nil {
		return model.OutcomeNone, err
	}

	enum, err := NewEnumerator(candidates)
	if err != nil {
		return model.OutcomeNone, err
	}
	r.printf("🔄 Trying %d version combination(s)...", enum.Total())

	for combo, ok := enum.Next(); ok; combo, ok = enum.Next() {
		r.printf("🧪 Trying: %s", headlineStyle.Render(combo.String()))

		trialPath, err := r.Manifest.WriteTrial(combo)
		if err != nil {
			return model.OutcomeNone, err
		}

		built, err := r.Build.Trial(trialPath)
		if err != nil {
			return model.OutcomeNone, err
		}
		if !built {
			r.printf("%s", dimStyle.Render("❌ Build failed. Trying next combination..."))
			continue
		}

		// First success wins. Commit the identical assignment to the
		// authoritative manifest; this is the run's only permanent write.
		if err := r.Manifest.Commit(combo); err != nil {
			return model.OutcomeNone, err
		}
		r.printf("%s", successStyle.Render(fmt.Sprintf("🎉 Build succeeded with: %s", combo)))
		r.printf("📦 Cargo.toml updated with working versions.")
		return model.OutcomeFixed, nil
	}

	r.printf("%s", failStyle.Render("💀 All combinations failed. Manual intervention required."))
	return model.OutcomeExhausted, nil
}

// fetchCandidates queries the registry once per problem package. Missing
// packages get their lists reordered newest-first, since an unconstrained
// dependency is most likely satisfied by the latest release; conflict
// packages keep the registry's ordering.
func (r *Resolver) fetchCandidates(problems []model.Problem) (map[string][]string, error) {
	candidates := make(map[string][]string, len(problems))
	for _, p := range problems {
		versions, err := r.Registry.CandidateVersions(p.Name)
		if err != nil {
			return nil, err
		}
		if len(versions) == 0 {
			return nil, fmt.Errorf("registry has no usable versions for %s", p.Name)
		}
		if p.Kind == model.KindMissing {
			if err := registry.SortNewestFirst(versions); err != nil {
				return nil, err
			}
		}
		candidates[p.Name] = versions
	}
	return candidates, nil
}
