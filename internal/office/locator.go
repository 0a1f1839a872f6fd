// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office locates the external office-conversion tool across
// platforms and caches the result.
package office

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

const (
	binSoffice = "soffice"

	// searchTimeout bounds the which/where subprocess fallback.
	searchTimeout = 5 * time.Second
)

// ResolveMethod records how the tool path was obtained.
type ResolveMethod string

const (
	// MethodConfigured means an explicit path from configuration.
	MethodConfigured ResolveMethod = "configured"
	// MethodWellKnown means a fixed installation path existed on disk.
	MethodWellKnown ResolveMethod = "well-known"
	// MethodPathDefault means the bare command name is trusted to resolve
	// through PATH without verification.
	MethodPathDefault ResolveMethod = "path-default"
	// MethodSearchLookup means a which/where subprocess reported the path.
	MethodSearchLookup ResolveMethod = "search-lookup"
)

// ToolPath is the resolved location of the office-conversion tool.
type ToolPath struct {
	Path   string
	Method ResolveMethod
}

// ToolNotFoundError reports that no resolution strategy located the tool.
type ToolNotFoundError struct {
	GOOS string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("office conversion tool not found on %s: install LibreOffice or set tool.path", e.GOOS)
}

// executor abstracts filesystem and process probing for testing.
type executor interface {
	Stat(path string) (os.FileInfo, error)
	Getenv(key string) string
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os and os/exec.
type osExecutor struct{}

func (osExecutor) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

func (osExecutor) Getenv(key string) string { return os.Getenv(key) }

func (osExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

var defaultExec = osExecutor{}

// Locator resolves the office tool once and serves the cached value for the
// process lifetime. Only successful resolutions are cached; failures are
// re-probed on the next call.
type Locator struct {
	goos     string
	override string
	exec     executor

	mu     sync.Mutex
	cached *ToolPath
}

// NewLocator builds a locator for the current platform. cfg.Path, when set,
// short-circuits discovery.
func NewLocator(cfg types.ToolConfig) *Locator {
	return newLocator(runtime.GOOS, cfg.Path, defaultExec)
}

func newLocator(goos, override string, exec executor) *Locator {
	return &Locator{goos: goos, override: override, exec: exec}
}

// Locate returns the tool path, resolving it on first use. Repeated calls
// return the cached value without re-probing.
func (l *Locator) Locate() (ToolPath, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cached != nil {
		return *l.cached, nil
	}

	tp, err := l.resolve()
	if err != nil {
		return ToolPath{}, err
	}
	l.cached = &tp
	return tp, nil
}

// resolve tries each strategy in order: configured override, well-known
// installation paths, PATH trust on Linux, and finally a which/where
// subprocess on platforms that have one. Installer locations come first
// because checking them is faster and more reliable than spawning a process.
func (l *Locator) resolve() (ToolPath, error) {
	if l.override != "" {
		return ToolPath{Path: l.override, Method: MethodConfigured}, nil
	}

	for _, p := range l.wellKnownPaths() {
		if info, err := l.exec.Stat(p); err == nil && !info.IsDir() {
			return ToolPath{Path: p, Method: MethodWellKnown}, nil
		}
	}

	// Package-manager installs register the tool on PATH, so the bare
	// command name is returned without filesystem verification.
	if l.goos == "linux" {
		return ToolPath{Path: binSoffice, Method: MethodPathDefault}, nil
	}

	if name, ok := l.searchCommand(); ok {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		out, err := l.exec.Output(ctx, name, binSoffice)
		if err == nil {
			if path := firstLine(string(out)); path != "" {
				return ToolPath{Path: path, Method: MethodSearchLookup}, nil
			}
		}
	}

	return ToolPath{}, &ToolNotFoundError{GOOS: l.goos}
}

// wellKnownPaths returns the fixed installation paths to probe for the
// current platform family.
func (l *Locator) wellKnownPaths() []string {
	switch l.goos {
	case "darwin":
		return []string{
			"/Applications/LibreOffice.app/Contents/MacOS/soffice",
			"/opt/homebrew/bin/soffice",
			"/usr/local/bin/soffice",
		}
	case "windows":
		paths := []string{
			`C:\Program Files\LibreOffice\program\soffice.exe`,
			`C:\Program Files (x86)\LibreOffice\program\soffice.exe`,
		}
		if pf := l.exec.Getenv("ProgramFiles"); pf != "" {
			paths = append(paths, filepath.Join(pf, "LibreOffice", "program", "soffice.exe"))
		}
		return paths
	default:
		return []string{
			"/usr/bin/soffice",
			"/usr/bin/libreoffice",
			"/usr/local/bin/soffice",
			"/snap/bin/libreoffice",
		}
	}
}

// searchCommand returns the platform's search-path lookup utility, if any.
func (l *Locator) searchCommand() (string, bool) {
	switch l.goos {
	case "windows":
		return "where", true
	case "darwin":
		return "which", true
	default:
		return "", false
	}
}

// firstLine returns the first non-empty trimmed line of s. The where utility
// may print multiple matches; the first wins.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
