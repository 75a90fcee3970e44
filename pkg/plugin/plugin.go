// Package plugin holds the process-wide registry of statically linked
// plugins. Plugins register their catalogs once at process setup and
// the registry is torn down exactly once at shutdown.
package plugin

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
)

// Model describes one module a plugin provides.
type Model struct {
	Slug string
	Name string
	Tags []string
}

// Plugin is a statically linked plugin catalog.
type Plugin struct {
	Slug    string
	Name    string
	Version string
	Models  []Model
}

// registry is process-global, mirroring the one-shot setup/teardown of
// the host: Init may run once, Destroy may run once after it.
var (
	mu          sync.Mutex
	plugins     map[string]*Plugin
	initialized bool
	destroyed   bool
)

// InitStatic initializes the static registry with the built-in plugin
// catalogs. Calling it a second time in the same process is an error.
func InitStatic() error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return fmt.Errorf("static plugins already initialized")
	}
	plugins = make(map[string]*Plugin)
	for _, p := range builtins() {
		plugins[p.Slug] = p
	}
	buildBrowser()
	initialized = true
	destroyed = false
	logger.Debug("Static plugins initialized", "plugins", len(plugins))
	return nil
}

// DestroyStatic tears the registry down. It must follow InitStatic and
// may run at most once.
func DestroyStatic() error {
	mu.Lock()
	defer mu.Unlock()

	if !initialized {
		return fmt.Errorf("static plugins not initialized")
	}
	if destroyed {
		return fmt.Errorf("static plugins already destroyed")
	}
	plugins = nil
	browser = nil
	initialized = false
	destroyed = true
	logger.Debug("Static plugins destroyed")
	return nil
}

// Get returns a registered plugin by slug.
func Get(slug string) (*Plugin, bool) {
	mu.Lock()
	defer mu.Unlock()
	p, ok := plugins[slug]
	return p, ok
}

// List returns every registered plugin ordered by slug.
func List() []*Plugin {
	mu.Lock()
	defer mu.Unlock()

	out := make([]*Plugin, 0, len(plugins))
	for _, p := range plugins {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// FindModel resolves a "Plugin.Model" reference into its catalog
// entries.
func FindModel(ref string) (*Plugin, *Model, error) {
	parts := strings.SplitN(ref, ".", 2)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("invalid module reference %q: want Plugin.Model", ref)
	}

	p, ok := Get(parts[0])
	if !ok {
		return nil, nil, fmt.Errorf("plugin %q not registered", parts[0])
	}
	for i := range p.Models {
		if p.Models[i].Slug == parts[1] {
			return p, &p.Models[i], nil
		}
	}
	return nil, nil, fmt.Errorf("model %q not found in plugin %q", parts[1], parts[0])
}

// ModelCount returns the total number of models across all registered
// plugins.
func ModelCount() int {
	n := 0
	for _, p := range List() {
		n += len(p.Models)
	}
	return n
}

// resetForTest restores the never-initialized state.
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()
	plugins = nil
	browser = nil
	initialized = false
	destroyed = false
}
