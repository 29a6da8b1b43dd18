package pip

import (
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/pipremove/pkg/errors"
)

// PipRemover uninstalls packages by invoking `python -m pip uninstall --yes`
// one package at a time. It implements [Remover].
//
// Removal is fail-forward: a failed uninstall is recorded in its Result and
// the remaining plan entries are still attempted.
type PipRemover struct {
	// Python is the interpreter to invoke; "python3" if empty.
	Python string
	// Quiet passes pip's --quiet flag through.
	Quiet bool
	// Logf receives debug output; may be nil.
	Logf func(format string, args ...any)
}

// Remove uninstalls the named packages in order.
// The returned slice has one entry per name, in the same order.
func (r *PipRemover) Remove(ctx context.Context, names []string) []Result {
	python := r.Python
	if python == "" {
		python = defaultPython
	}
	logf := r.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Name: name, Err: err})
			continue
		}

		args := []string{"-m", "pip", "uninstall", "--yes"}
		if r.Quiet {
			args = append(args, "--quiet")
		}
		args = append(args, name)

		logf("running %s %s", python, strings.Join(args, " "))
		out, err := exec.CommandContext(ctx, python, args...).CombinedOutput()
		if err != nil {
			err = errors.Wrap(errors.ErrCodeRemoveFailed, err, "pip uninstall %s: %s", name, firstLine(out))
		}
		results = append(results, Result{Name: name, Err: err})
	}
	return results
}

func firstLine(out []byte) string {
	s := strings.TrimSpace(string(out))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
