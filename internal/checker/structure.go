package checker

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
)

// fileStructureRule verifies the fixed set of required project files and
// the package marker inside the source directory. Unlike the other rules
// it ignores the change set: the files must exist regardless of what is
// being committed.
type fileStructureRule struct{}

func (fileStructureRule) Name() string { return "file-structure" }

func (fileStructureRule) Check(_ context.Context, t *Target) []Finding {
	var findings []Finding

	for _, name := range t.Config.Checks.RequiredFiles {
		if exists, err := afero.Exists(t.FS, t.abs(name)); err != nil || !exists {
			findings = append(findings, errorf("missing required file: %s", name))
		}
	}

	srcDir := t.abs(t.Config.Project.SourceDir)
	if exists, err := afero.DirExists(t.FS, srcDir); err == nil && exists {
		marker := filepath.Join(srcDir, "__init__.py")
		if exists, err := afero.Exists(t.FS, marker); err != nil || !exists {
			findings = append(findings, warnf("%s/__init__.py missing", t.Config.Project.SourceDir))
		}
	}

	return findings
}
