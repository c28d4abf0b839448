package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/extpoly/internal/config"
	"github.com/specialistvlad/extpoly/internal/ctxlog"
	"github.com/specialistvlad/extpoly/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL scene loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file found under paths. Paths are processed in the
// given order, directories are walked in lexical order, and a file reached
// twice is read only once. Shapes are addressed as "kind.name", which must
// be unique across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()
	origin := make(map[string]string)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, s := range root.Shapes {
			item, err := l.translateShape(ctx, s, file)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			if prev, dup := origin[item.ID()]; dup {
				return nil, fmt.Errorf("in %s: shape '%s' already declared in %s", file, item.ID(), prev)
			}
			origin[item.ID()] = file
			model.Items = append(model.Items, item)
		}
		logger.Debug("Loaded scene file.", "file", file, "shapes", len(root.Shapes))
	}

	logger.Debug("HCL loading complete.", "items", len(model.Items))
	return model, nil
}

// findAllHCLFiles expands paths into a flat, de-duplicated list of files.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			all = append(all, f)
		}
	}
	return all, nil
}
