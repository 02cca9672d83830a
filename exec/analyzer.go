// Package exec invokes external analyzer programs over a fixed
// stdin/stdout contract: one text document in, one JSON object out.
package exec

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"time"

	"github.com/awalczyk/biascope"
)

// DefaultTimeout bounds one analyzer run. The program is killed when the
// deadline passes.
const DefaultTimeout = 60 * time.Second

// Program describes one external analyzer program.
type Program struct {
	// Command is the executable name or path.
	Command string `yaml:"command"`

	// Args are fixed arguments passed on every invocation.
	Args []string `yaml:"args"`

	// ModelFlag, if non-empty, is the flag used to pass a model name
	// (e.g. "--model"). Kinds without it ignore the requested model.
	ModelFlag string `yaml:"model_flag"`
}

// Registry maps analyzer kinds to programs. The mapping is configuration
// data loaded at startup, not a hard-coded constant.
type Registry map[biascope.AnalyzerKind]Program

// Ensure Analyzer implements biascope.Analyzer at compile time.
var _ biascope.Analyzer = (*Analyzer)(nil)

// Analyzer scores text by launching an external program per call. The
// program receives the text on stdin and must print a single JSON object
// on stdout. There is no pooling and no retry.
type Analyzer struct {
	registry Registry
	timeout  time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTimeout sets the per-run deadline.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) {
		a.timeout = d
	}
}

// NewAnalyzer creates an Analyzer over the given program registry.
func NewAnalyzer(registry Registry, opts ...Option) *Analyzer {
	a := &Analyzer{
		registry: registry,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the program registered for the kind and returns its
// normalized output.
//
// Failure modes map to domain codes: an unregistered kind is EINVALID
// (checked before any launch), a missing executable is ENOTFOUND, a
// non-zero exit is EINTERNAL carrying the program's stderr, and
// non-JSON stdout is EINVALID.
func (a *Analyzer) Analyze(ctx context.Context, kind biascope.AnalyzerKind, text string, model string) (*biascope.AnalysisResult, error) {
	prog, ok := a.registry[kind]
	if !ok {
		return nil, biascope.Errorf(biascope.EINVALID, "unknown analyzer kind %q", kind)
	}

	if _, err := exec.LookPath(prog.Command); err != nil {
		return nil, biascope.Errorf(biascope.ENOTFOUND, "analyzer program %q not found", prog.Command)
	}

	args := prog.Args
	if model != "" && prog.ModelFlag != "" {
		args = append(append([]string{}, args...), prog.ModelFlag, model)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, prog.Command, args...)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, biascope.Errorf(biascope.EUNAVAILABLE, "analyzer %q timed out after %s", kind, a.timeout)
		}
		return nil, biascope.Errorf(biascope.EINTERNAL, "analyzer %q failed: %s", kind, diagnostics(&stderr, err))
	}

	var raw biascope.RawResult
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		return nil, biascope.Errorf(biascope.EINVALID, "analyzer %q produced malformed output: %v", kind, err)
	}

	return raw.Normalize(), nil
}

// diagnostics prefers the program's stderr over the exec error.
func diagnostics(stderr *bytes.Buffer, err error) string {
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return msg
	}
	return err.Error()
}
