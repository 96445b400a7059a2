package runner

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pantryworks/recipe-converter/internal/constants"
	"github.com/pantryworks/recipe-converter/internal/hooks"
)

// defaultMaxBatch caps the filename bytes per hook invocation when the
// config does not say otherwise.
const defaultMaxBatch = 128 * 1024

// Status classifies one hook execution.
type Status string

const (
	StatusPassed  Status = "Passed"
	StatusFailed  Status = "Failed"
	StatusSkipped Status = "Skipped"
)

// Result is the outcome of one hook.
type Result struct {
	Hook     hooks.Hook
	Status   Status
	Duration time.Duration
	Output   string
	Err      error
}

// execHook runs one hook against its matched files. Commands run in workDir;
// script entries resolve against srcDir. A hook with no files is skipped
// unless it is marked always_run.
func execHook(ctx context.Context, srcDir, workDir string, hook hooks.Hook, files []string, maxBatch int64) Result {
	start := time.Now()
	res := Result{Hook: hook}

	if len(files) == 0 && !hook.AlwaysRun {
		res.Status = StatusSkipped
		return res
	}

	lang := hook.EffectiveLanguage()
	if !constants.IsRunnableLanguage(lang) {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("language %q needs a managed environment this runner does not provide; use one of %v", lang, constants.RunnableLanguages)
		res.Duration = time.Since(start)
		return res
	}

	// fail hooks print their entry as the message and fail without running
	// anything.
	if lang == constants.LanguageFail {
		var b strings.Builder
		b.WriteString(hook.Entry)
		b.WriteString("\n\n")
		for _, f := range files {
			b.WriteString(f)
			b.WriteString("\n")
		}
		res.Status = StatusFailed
		res.Output = b.String()
		res.Duration = time.Since(start)
		return res
	}

	argv, err := splitEntry(hook.Entry)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	if len(argv) == 0 {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("hook %s has an empty entry", hook.ID)
		res.Duration = time.Since(start)
		return res
	}

	if lang == constants.LanguageScript {
		argv[0] = filepath.Join(srcDir, argv[0])
	}
	argv = append(argv, hook.Args...)

	if maxBatch <= 0 {
		maxBatch = defaultMaxBatch
	}

	batches := [][]string{nil}
	if hook.PassesFilenames() {
		batches = batchFiles(files, maxBatch)
	}

	var out strings.Builder
	for _, batch := range batches {
		args := append(append([]string{}, argv[1:]...), batch...)
		cmd := exec.CommandContext(ctx, argv[0], args...)
		cmd.Dir = workDir

		output, err := cmd.CombinedOutput()
		out.Write(output)
		if err != nil {
			res.Err = err
		}
	}

	res.Output = out.String()
	res.Duration = time.Since(start)
	if res.Err != nil {
		res.Status = StatusFailed
	} else {
		res.Status = StatusPassed
	}
	return res
}

// batchFiles splits files into batches whose joined length stays under
// maxBytes so command lines stay within platform limits. Always returns at
// least one batch.
func batchFiles(files []string, maxBytes int64) [][]string {
	if len(files) == 0 {
		return [][]string{nil}
	}

	var batches [][]string
	var current []string
	var size int64

	for _, f := range files {
		cost := int64(len(f)) + 1
		if len(current) > 0 && size+cost > maxBytes {
			batches = append(batches, current)
			current = nil
			size = 0
		}
		current = append(current, f)
		size += cost
	}
	return append(batches, current)
}

// splitEntry splits a hook entry into argv, honoring single and double
// quotes so entries like `sh -c 'echo done'` keep their grouping.
func splitEntry(entry string) ([]string, error) {
	var argv []string
	var cur strings.Builder
	var quote rune
	inToken := false

	for _, r := range entry {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				argv = append(argv, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unbalanced %c quote in entry %q", quote, entry)
	}
	if inToken {
		argv = append(argv, cur.String())
	}
	return argv, nil
}
