package pip

import (
	"bufio"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/matzehuels/pipremove/pkg/errors"
)

// defaultPython is the interpreter used to locate site-packages and to run
// pip when no explicit interpreter is configured.
const defaultPython = "python3"

const distInfoSuffix = ".dist-info"

var depNameRE = regexp.MustCompile(`^([a-zA-Z0-9][-a-zA-Z0-9._]*)`)

// EnvProvider reads installed distributions from the *.dist-info directories
// of one or more site-packages locations. It implements [Provider].
//
// A zero EnvProvider is not usable; create one with [NewEnvProvider] or
// [DiscoverEnv].
type EnvProvider struct {
	dirs []string
	logf func(format string, args ...any)
}

// NewEnvProvider creates a provider over the given site-packages directories.
// logf receives warnings about skipped corrupt records; it may be nil.
func NewEnvProvider(dirs []string, logf func(format string, args ...any)) *EnvProvider {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &EnvProvider{dirs: dirs, logf: logf}
}

// DiscoverEnv locates the active interpreter's site-packages directories by
// asking the interpreter itself, then returns a provider over them.
// python may be empty, in which case "python3" is used.
func DiscoverEnv(ctx context.Context, python string, logf func(format string, args ...any)) (*EnvProvider, error) {
	if python == "" {
		python = defaultPython
	}
	out, err := exec.CommandContext(ctx, python, "-c",
		"import sysconfig; print(sysconfig.get_paths()['purelib']); print(sysconfig.get_paths()['platlib'])").Output()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMetadataRead, err, "locating site-packages via %s", python)
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		dir := strings.TrimSpace(line)
		if dir != "" && !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil, errors.New(errors.ErrCodeMetadataRead, "interpreter %s reported no site-packages", python)
	}
	return NewEnvProvider(dirs, logf), nil
}

// ListInstalled scans every configured directory for *.dist-info metadata.
// Corrupt records are skipped with a warning; only a whole-directory read
// failure aborts the scan.
func (p *EnvProvider) ListInstalled(ctx context.Context) ([]Distribution, error) {
	byName := make(map[string]Distribution)

	for _, dir := range p.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrap(errors.ErrCodeMetadataRead, err, "reading %s", dir)
		}

		for _, e := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if !e.IsDir() || !strings.HasSuffix(e.Name(), distInfoSuffix) {
				continue
			}
			dist, err := parseMetadata(filepath.Join(dir, e.Name(), "METADATA"))
			if err != nil {
				p.logf("skipping corrupt record %s: %v", e.Name(), err)
				continue
			}
			byName[Normalize(dist.Name)] = dist
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	dists := make([]Distribution, 0, len(names))
	for _, name := range names {
		dists = append(dists, byName[name])
	}
	return dists, nil
}

// parseMetadata reads the RFC 822 header block of a METADATA file.
// Requirement lines guarded by an `extra ==` marker are skipped: they only
// apply when the matching extra was requested, which installed metadata does
// not record.
func parseMetadata(path string) (Distribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return Distribution{}, err
	}
	defer f.Close()

	var dist Distribution
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break // end of headers, description body follows
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "Name":
			dist.Name = value
		case "Version":
			dist.Version = value
		case "Requires-Dist":
			if name, ok := parseRequirement(value); ok {
				dist.Requires = append(dist.Requires, name)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Distribution{}, err
	}
	if dist.Name == "" {
		return Distribution{}, errors.New(errors.ErrCodeMetadataRead, "missing Name header in %s", path)
	}
	return dist, nil
}

// parseRequirement extracts the bare package name from a Requires-Dist value
// such as "requests (>=2.0) ; python_version >= '3.8'". It returns false for
// requirements that only apply to an extra.
func parseRequirement(spec string) (string, bool) {
	req, marker, _ := strings.Cut(spec, ";")
	if strings.Contains(marker, "extra ==") {
		return "", false
	}
	req = strings.TrimSpace(req)
	// Drop an extras bracket before matching: "foo[bar] (>=1.0)" names foo.
	if i := strings.IndexByte(req, '['); i >= 0 {
		req = req[:i]
	}
	m := depNameRE.FindStringSubmatch(req)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}
