// Package checker evaluates staged files and the latest commit message
// against project conventions. Every check is an independent line-oriented
// heuristic; none of them parse source code, and their false negatives are
// deliberate.
package checker

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/turnstile/internal/config"
)

// ChangeSet is the ordered list of relative file paths under consideration
// for one check run. It is captured once at run start and never mutated.
type ChangeSet []string

// CommitMessage is the header line plus remaining body lines of the most
// recent commit.
type CommitMessage struct {
	Header string
	Body   []string
}

// ParseCommitMessage splits raw commit text into header and body.
func ParseCommitMessage(text string) CommitMessage {
	text = strings.TrimSpace(text)
	if text == "" {
		return CommitMessage{}
	}
	lines := strings.Split(text, "\n")
	return CommitMessage{Header: lines[0], Body: lines[1:]}
}

// Empty reports whether there is no commit message to check.
func (m CommitMessage) Empty() bool {
	return m.Header == "" && len(m.Body) == 0
}

// Rule is a single independent check. Rules only read the target; the
// engine owns the verdict.
type Rule interface {
	Name() string
	Check(ctx context.Context, t *Target) []Finding
}

// Target is the captured input for one evaluation: the filesystem rooted
// at the project, the effective config, and the two external inputs.
type Target struct {
	FS     afero.Fs
	Config *config.Config
	Root   string
	Files  ChangeSet
	Commit CommitMessage
}

func (t *Target) abs(path string) string {
	return filepath.Join(t.Root, path)
}

// sourceFiles returns the changed files carrying the recognized source
// extension.
func (t *Target) sourceFiles() []string {
	var out []string
	for _, f := range t.Files {
		if strings.HasSuffix(f, t.Config.Project.SourceExt) {
			out = append(out, f)
		}
	}
	return out
}

// inSourceDir matches by substring, which is what the conventions have
// always meant by "under src/".
func (t *Target) inSourceDir(path string) bool {
	return strings.Contains(path, t.Config.Project.SourceDir+"/")
}

// readFile reads a changed file relative to the project root. A file that
// no longer exists (staged deletion) returns ok=false with no error; any
// other failure is returned for the caller to downgrade to a warning.
func (t *Target) readFile(path string) (content string, ok bool, err error) {
	full := t.abs(path)
	if exists, statErr := afero.Exists(t.FS, full); statErr != nil || !exists {
		return "", false, statErr
	}
	data, err := afero.ReadFile(t.FS, full)
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Engine applies a fixed, ordered list of rules to a target.
type Engine struct {
	fs    afero.Fs
	cfg   *config.Config
	root  string
	rules []Rule
}

// New creates an engine with the default rule set, evaluating files under
// root through fs.
func New(fs afero.Fs, root string, cfg *config.Config) *Engine {
	return &Engine{fs: fs, cfg: cfg, root: root, rules: defaultRules()}
}

// defaultRules lists every check in report order. Rules are independent,
// so the order only affects how findings are grouped in the report.
func defaultRules() []Rule {
	return []Rule{
		commitMessageRule{},
		sourceFileRule{},
		importHygieneRule{},
		docstringRule{},
		testCoverageRule{},
		fileStructureRule{},
		secretScanRule{},
	}
}

// Evaluate runs every rule and folds the findings into a single verdict.
// It never fails: per-file problems surface as warning findings.
func (e *Engine) Evaluate(ctx context.Context, files ChangeSet, commit CommitMessage) Verdict {
	log := zerolog.Ctx(ctx)
	target := &Target{FS: e.fs, Config: e.cfg, Root: e.root, Files: files, Commit: commit}

	var verdict Verdict
	for _, rule := range e.rules {
		findings := rule.Check(ctx, target)
		for _, f := range findings {
			verdict.add(f)
		}
		log.Debug().
			Str("rule", rule.Name()).
			Int("findings", len(findings)).
			Msg("rule evaluated")
	}

	log.Info().
		Int("files", len(files)).
		Int("errors", len(verdict.Errors)).
		Int("warnings", len(verdict.Warnings)).
		Msg("evaluation complete")

	return verdict
}
