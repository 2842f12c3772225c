// cmd/firrtl/commands/moddep.go
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"firrtl/ast"
	"firrtl/format"
	"firrtl/internal/modcache"
	"firrtl/internal/reporting"
	"firrtl/parser"
)

// ModdepCommand parses multiple .fir files concurrently (one goroutine
// per file via errgroup, the library itself staying single-threaded)
// and lists each module's instantiated sub-modules, using a
// blake2b-keyed modcache to skip re-summarizing unchanged files.
func ModdepCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: firrtl moddep <file.fir>...")
	}
	cachePath := filepath.Join(os.TempDir(), "firrtl-modcache.sqlite")
	cache, err := modcache.Open(cachePath)
	if err != nil {
		return fmt.Errorf("opening module cache: %w", err)
	}
	defer cache.Close()

	var mu sync.Mutex
	results := make(map[string][]modcache.Summary, len(args))

	var g errgroup.Group
	for _, path := range args {
		path := path
		g.Go(func() error {
			summaries, err := moddepOne(cache, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			mu.Lock()
			results[path] = summaries
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		reporting.Report(os.Stderr, err, colorEnabled(os.Stderr))
		return err
	}

	for _, path := range args {
		fmt.Printf("%s:\n", path)
		for _, s := range results[path] {
			fmt.Printf("  %s\n", s.Name)
			for _, dep := range s.Referenced {
				fmt.Printf("    -> %s\n", dep)
			}
		}
	}
	return nil
}

func moddepOne(cache *modcache.Cache, path string) ([]modcache.Summary, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if cached, ok, err := cache.Lookup(string(text)); err == nil && ok {
		return cached, nil
	}

	var summaries []modcache.Summary
	for m, err := range parser.Modules(string(text)) {
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summarize(m))
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	if err := cache.Store(string(text), summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func summarize(m *ast.Module) modcache.Summary {
	ports := m.Ports()
	sigs := make([]modcache.PortSignature, len(ports))
	for i, p := range ports {
		dir := "input"
		if p.Direction == ast.Output {
			dir = "output"
		}
		sigs[i] = modcache.PortSignature{Name: p.NameValue, Direction: dir, Type: format.Type(p.TypeValue)}
	}

	refs := m.ReferencedModules()
	deps := make([]string, len(refs))
	for i, r := range refs {
		deps[i] = r.Name()
	}

	return modcache.Summary{Name: m.Name(), Ports: sigs, Referenced: deps}
}
