package plugin

import (
	"sort"
	"strings"
)

// Entry is one browsable model, flattened with its plugin.
type Entry struct {
	PluginSlug string
	PluginName string
	ModelSlug  string
	ModelName  string
	Tags       []string
}

// Ref returns the "Plugin.Model" reference for the entry.
func (e Entry) Ref() string {
	return e.PluginSlug + "." + e.ModelSlug
}

// browser is the flattened model index, rebuilt by InitStatic.
var browser []Entry

// buildBrowser flattens the registry into the browser index. Called
// with mu held.
func buildBrowser() {
	browser = browser[:0]
	for _, p := range plugins {
		for _, m := range p.Models {
			browser = append(browser, Entry{
				PluginSlug: p.Slug,
				PluginName: p.Name,
				ModelSlug:  m.Slug,
				ModelName:  m.Name,
				Tags:       m.Tags,
			})
		}
	}
	sort.Slice(browser, func(i, j int) bool {
		return browser[i].Ref() < browser[j].Ref()
	})
}

// Browse returns the full browser index ordered by reference.
func Browse() []Entry {
	mu.Lock()
	defer mu.Unlock()

	out := make([]Entry, len(browser))
	copy(out, browser)
	return out
}

// Search filters the browser index by a case-insensitive substring
// match on plugin slug, model slug, model name or tag. An empty query
// returns everything.
func Search(query string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Browse()
	}

	var out []Entry
	for _, e := range Browse() {
		if matchEntry(e, query) {
			out = append(out, e)
		}
	}
	return out
}

func matchEntry(e Entry, query string) bool {
	if strings.Contains(strings.ToLower(e.PluginSlug), query) ||
		strings.Contains(strings.ToLower(e.ModelSlug), query) ||
		strings.Contains(strings.ToLower(e.ModelName), query) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
