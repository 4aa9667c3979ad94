package resolver

import "sync"

// session owns the per-run resolution caches. A session lives for one
// bundling run; concurrent independent runs never share one.
//
// The caches are consulted at call time only. Two in-flight resolutions
// of the same uncached lookup name both run the resolution chain; the
// visited check-and-set still guarantees the file is read and walked at
// most once.
type session struct {
	mu sync.Mutex

	// shims maps built-in module names to injected implementations.
	// Nil means shimming is disabled.
	shims map[string]string

	// packageMap maps secondary-package-manager package names to their
	// best-guess entry files.
	packageMap map[string]string

	// lookups maps lookup names to resolved filenames. Once populated
	// for a key, the resolution chain is never invoked for it again.
	lookups map[string]string

	// visited holds filenames that were read and walked, or deliberately
	// skipped as typed-source. Membership means the file is never read
	// or walked again in this run.
	visited map[string]struct{}
}

func newSession() *session {
	return &session{
		packageMap: make(map[string]string),
		lookups:    make(map[string]string),
		visited:    make(map[string]struct{}),
	}
}

func (s *session) setShims(shims map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shims = shims
}

func (s *session) shimTable() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shims
}

func (s *session) setPackages(entries map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packageMap = entries
}

// packageEntry returns the precomputed entry file for a package name.
func (s *session) packageEntry(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.packageMap[name]
	return entry, ok
}

// cachedFilename returns the filename previously resolved for the lookup name.
func (s *session) cachedFilename(lookupName string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filename, ok := s.lookups[lookupName]
	return filename, ok
}

// cacheLookup records the lookup-name to filename mapping for the rest
// of the run, including for items that turn out to be cycle repeats.
func (s *session) cacheLookup(lookupName, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups[lookupName] = filename
}

// visit marks the filename visited and reports whether it was new.
// The check-and-set is atomic, so a cycle is broken the second time a
// filename reappears.
func (s *session) visit(filename string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visited[filename]; ok {
		return false
	}
	s.visited[filename] = struct{}{}
	return true
}
