package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// ciProviders maps the environment variable each CI provider sets to the
// name reported in log metadata.
var ciProviders = []struct {
	env  string
	name string
}{
	{"GITHUB_ACTIONS", "github_actions"},
	{"GITLAB_CI", "gitlab_ci"},
	{"CIRCLECI", "circleci"},
	{"JENKINS_URL", "jenkins"},
	{"CI", "generic"},
}

// ciMetadataEnv lists run identifiers copied into every CI log record.
// The first variable set for a key wins.
var ciMetadataEnv = []struct {
	env string
	key string
}{
	{"GITHUB_RUN_ID", "ci_run_id"},
	{"GITHUB_SHA", "ci_commit"},
	{"GITHUB_REF", "ci_ref"},
	{"GITHUB_WORKFLOW", "ci_workflow"},
	{"CI_PIPELINE_ID", "ci_run_id"},
	{"CI_COMMIT_SHA", "ci_commit"},
}

// IsCI reports whether the process runs under a CI provider.
func IsCI() bool {
	return ciProvider() != ""
}

func ciProvider() string {
	for _, p := range ciProviders {
		if os.Getenv(p.env) != "" {
			return p.name
		}
	}
	return ""
}

// getCIMetadata collects the CI attributes present in the environment.
func getCIMetadata() map[string]string {
	metadata := make(map[string]string)
	if provider := ciProvider(); provider != "" {
		metadata["ci_provider"] = provider
	}
	for _, m := range ciMetadataEnv {
		if _, ok := metadata[m.key]; ok {
			continue
		}
		if v := os.Getenv(m.env); v != "" {
			metadata[m.key] = v
		}
	}
	return metadata
}

// CIHandler is a slog.Handler for CI runs. It writes JSON records enriched
// with CI run metadata, flattened source location and a nanosecond
// timestamp so that interleaved test output can be ordered.
type CIHandler struct {
	handler   slog.Handler
	metadata  map[string]string
	addSource bool
}

// NewCIHandler creates a CIHandler writing JSON to out.
// Metadata is read from the environment once, at construction.
func NewCIHandler(out io.Writer, opts *slog.HandlerOptions) *CIHandler {
	var handlerOpts slog.HandlerOptions
	if opts != nil {
		handlerOpts = *opts
	}

	// Source is emitted as flat fields by Handle, not as the nested JSON object
	addSource := handlerOpts.AddSource
	handlerOpts.AddSource = false

	return &CIHandler{
		handler:   slog.NewJSONHandler(out, &handlerOpts),
		metadata:  getCIMetadata(),
		addSource: addSource,
	}
}

// Enabled implements slog.Handler.
func (h *CIHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *CIHandler) Handle(ctx context.Context, r slog.Record) error {
	record := r.Clone()

	if h.addSource && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		record.AddAttrs(
			slog.String("source_file", frame.File),
			slog.Int("source_line", frame.Line),
			slog.String("source_func", frame.Function),
		)
	}

	for key, value := range h.metadata {
		record.AddAttrs(slog.String(key, value))
	}

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	record.AddAttrs(slog.Int64("timestamp_nano", ts.UnixNano()))

	return h.handler.Handle(ctx, record)
}

// WithAttrs implements slog.Handler.
func (h *CIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CIHandler{
		handler:   h.handler.WithAttrs(attrs),
		metadata:  h.metadata,
		addSource: h.addSource,
	}
}

// WithGroup implements slog.Handler.
func (h *CIHandler) WithGroup(name string) slog.Handler {
	return &CIHandler{
		handler:   h.handler.WithGroup(name),
		metadata:  h.metadata,
		addSource: h.addSource,
	}
}
