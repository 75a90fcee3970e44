package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for host operations. Run-lifecycle keys use
// the "run." prefix, patch and asset keys their own.
const (
	AttrRunID      = "run.id"
	AttrSampleRate = "run.sample_rate"
	AttrBufferSize = "run.buffer_size"

	AttrSystemDir = "assets.system_dir"
	AttrUserDir   = "assets.user_dir"
	AttrScratch   = "scratch.path"

	AttrPatchPath   = "patch.path"
	AttrPatchSource = "patch.source" // template, file, autosave
	AttrModuleCount = "patch.modules"
	AttrCableCount  = "patch.cables"

	AttrPluginSlug = "plugin.slug"
	AttrModelSlug  = "plugin.model"
)

// Span names for host phases.
// Format: <component>.<operation>
const (
	SpanSetup    = "host.setup"
	SpanRun      = "host.run"
	SpanTeardown = "host.teardown"

	SpanAssetsResolve   = "assets.resolve"
	SpanScratchAllocate = "scratch.allocate"
	SpanScratchRemove   = "scratch.remove"

	SpanPatchLoad     = "patch.load"
	SpanPatchSave     = "patch.save"
	SpanPatchAutosave = "patch.autosave"
	SpanPatchClear    = "patch.clear"

	SpanPluginsInit    = "plugins.init"
	SpanPluginsDestroy = "plugins.destroy"
)

// RunID returns an attribute for the run identifier.
func RunID(id string) attribute.KeyValue {
	return attribute.String(AttrRunID, id)
}

// SampleRate returns an attribute for the engine sample rate.
func SampleRate(rate float64) attribute.KeyValue {
	return attribute.Float64(AttrSampleRate, rate)
}

// BufferSize returns an attribute for the engine buffer size.
func BufferSize(size int) attribute.KeyValue {
	return attribute.Int(AttrBufferSize, size)
}

// SystemDir returns an attribute for the resolved system asset dir.
func SystemDir(dir string) attribute.KeyValue {
	return attribute.String(AttrSystemDir, dir)
}

// Scratch returns an attribute for the scratch directory path.
func Scratch(path string) attribute.KeyValue {
	return attribute.String(AttrScratch, path)
}

// PatchPath returns an attribute for a patch file path.
func PatchPath(path string) attribute.KeyValue {
	return attribute.String(AttrPatchPath, path)
}

// PatchSource returns an attribute for where a patch came from.
func PatchSource(source string) attribute.KeyValue {
	return attribute.String(AttrPatchSource, source)
}

// ModuleCount returns an attribute for the module count of a patch.
func ModuleCount(n int) attribute.KeyValue {
	return attribute.Int(AttrModuleCount, n)
}

// PluginSlug returns an attribute for a plugin slug.
func PluginSlug(slug string) attribute.KeyValue {
	return attribute.String(AttrPluginSlug, slug)
}

// StartPhaseSpan starts a span for a host lifecycle phase.
func StartPhaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, name, trace.WithAttributes(attrs...))
}
