package manifest

import (
	"path/filepath"
)

// Store manages the two manifests of one project: the authoritative
// Cargo.toml and the disposable trial copy next to it.
type Store struct {
	Dir string // project directory
}

// NewStore returns a Store for the project at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Path is the authoritative manifest location.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, FileName)
}

// TrialPath is the disposable trial manifest location.
func (s *Store) TrialPath() string {
	return filepath.Join(s.Dir, TrialFileName)
}

// WriteTrial re-reads the authoritative manifest, applies the assignments,
// and writes the result to the trial manifest, overwriting whatever a prior
// trial left there. Re-reading each time keeps trials independent: every
// combination is applied to the same clean base.
func (s *Store) WriteTrial(assignments map[string]string) (string, error) {
	doc, err := Load(s.Path())
	if err != nil {
		return "", err
	}
	if err := doc.Apply(assignments); err != nil {
		return "", err
	}
	path := s.TrialPath()
	if err := doc.WriteTo(path); err != nil {
		return "", err
	}
	return path, nil
}

// Commit applies the assignments to the authoritative manifest itself. Called
// exactly once per run, only after a trial build with the identical
// assignments has succeeded.
func (s *Store) Commit(assignments map[string]string) error {
	doc, err := Load(s.Path())
	if err != nil {
		return err
	}
	if err := doc.Apply(assignments); err != nil {
		return err
	}
	return doc.WriteTo(s.Path())
}
