package manifest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// FileName is the authoritative manifest cargo reads by default.
	FileName = "Cargo.toml"
	// TrialFileName is the disposable manifest trial builds are pointed at.
	// It is overwritten before every trial and never cleaned up.
	TrialFileName = "Cargo.hoist.toml"
)

// ErrNoDependencies means the manifest has no [dependencies] table to edit.
var ErrNoDependencies = errors.New("manifest has no [dependencies] table")

// Document is one loaded manifest. The text is kept as raw lines so that
// edits touch only the targeted entry; comments, ordering and whitespace of
// everything else survive byte-for-byte.
type Document struct {
	lines []string
}

// Load reads the manifest at path and verifies it is valid TOML containing a
// [dependencies] table.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	text := string(raw)
	if err := validate(text); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &Document{lines: strings.Split(text, "\n")}, nil
}

// validate decodes the text as TOML and confirms the dependencies table
// exists. Used on load and again on every edited document before it is
// written: a broken edit must never reach disk.
func validate(text string) error {
	var doc struct {
		Dependencies map[string]toml.Primitive `toml:"dependencies"`
	}
	if _, err := toml.Decode(text, &doc); err != nil {
		return fmt.Errorf("parsing manifest: %w", err)
	}
	if doc.Dependencies == nil {
		return ErrNoDependencies
	}
	return nil
}

func (d *Document) text() string {
	return strings.Join(d.lines, "\n")
}

// Apply performs one name→version assignment per entry. Assignment semantics
// match what a structured TOML editor would do for
// dependencies[name] = version: replace the existing entry whatever its
// shape, or add a new one if the package is not listed yet. Names are applied
// in sorted order so inserted entries land in a reproducible sequence.
func (d *Document) Apply(assignments map[string]string) error {
	names := make([]string, 0, len(assignments))
	for name := range assignments {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := d.setDependency(name, assignments[name]); err != nil {
			return err
		}
	}
	return nil
}

// setDependency rewrites the entry for name inside [dependencies] to a plain
// version string, inserting the entry if absent. A [dependencies.name]
// subtable counts as the existing entry and is collapsed into the plain form.
func (d *Document) setDependency(name, version string) error {
	start, end, err := d.dependenciesSection()
	if err != nil {
		return err
	}

	assignment := fmt.Sprintf("%s = %q", name, version)

	// Replace an inline entry: `name = ...` or `"name" = ...`.
	entry := regexp.MustCompile(`^\s*(?:` + regexp.QuoteMeta(name) + `|"` + regexp.QuoteMeta(name) + `")\s*=`)
	for i := start + 1; i < end; i++ {
		if entry.MatchString(d.lines[i]) {
			d.lines[i] = assignment
			return nil
		}
	}

	// Collapse a [dependencies.name] subtable, if one exists, into a plain
	// assignment inside the main table.
	if s, e, ok := d.tableSection("dependencies." + name); ok {
		d.lines = append(d.lines[:s], d.lines[e:]...)
		// Section bounds moved if the subtable sat before [dependencies].
		start, end, err = d.dependenciesSection()
		if err != nil {
			return err
		}
	}

	// Insert after the last non-blank line of the section, keeping any blank
	// separation before the next table intact.
	insertAt := start + 1
	for i := start + 1; i < end && i < len(d.lines); i++ {
		if strings.TrimSpace(d.lines[i]) != "" {
			insertAt = i + 1
		}
	}
	d.lines = append(d.lines[:insertAt], append([]string{assignment}, d.lines[insertAt:]...)...)
	return nil
}

// dependenciesSection locates the [dependencies] table. Returns the header
// line index and the index one past the section's last line.
func (d *Document) dependenciesSection() (start, end int, err error) {
	start, end, ok := d.tableSection("dependencies")
	if !ok {
		// Load validated the table exists; hitting this means the document
		// was mutated into an unexpected shape.
		return 0, 0, ErrNoDependencies
	}
	return start, end, nil
}

// tableSection finds the header line `[name]` and the extent of its section,
// which runs until the next table header or end of document.
func (d *Document) tableSection(name string) (start, end int, ok bool) {
	header := "[" + name + "]"
	for i, line := range d.lines {
		if strings.TrimSpace(line) != header {
			continue
		}
		end = len(d.lines)
		for j := i + 1; j < len(d.lines); j++ {
			trimmed := strings.TrimSpace(d.lines[j])
			if strings.HasPrefix(trimmed, "[") {
				end = j
				break
			}
		}
		return i, end, true
	}
	return 0, 0, false
}

// WriteTo re-validates the document and writes it to path.
func (d *Document) WriteTo(path string) error {
	text := d.text()
	if err := validate(text); err != nil {
		return fmt.Errorf("edited manifest is invalid: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
