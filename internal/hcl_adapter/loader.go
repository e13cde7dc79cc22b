package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/edgecpwg/internal/config"
	"github.com/vk/edgecpwg/internal/ctxlog"
	"github.com/vk/edgecpwg/internal/fsutil"
)

// Native and JSON syntax file suffixes.
const (
	nativeExt = ".hcl"
	jsonExt   = ".hcl.json"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl and .hcl.json file under the given paths and
// returns their line blocks in file order. Files are visited in lexical
// order; a path that does not exist is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parseFile(parser, file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		evalCtx, err := l.evalContext(ctx, root.Locals)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate locals in %s: %w", file, err)
		}

		for _, lb := range root.Lines {
			line, err := l.translateLine(lb, evalCtx)
			if err != nil {
				return nil, err
			}
			if err := model.Add(line); err != nil {
				return nil, err
			}
			logger.Debug("Line definition loaded.", "name", line.Name, "source", line.Source)
		}
	}

	logger.Debug("HCL loading complete.", "files", len(hclFiles), "lines", len(model.Lines))
	return model, nil
}

// translateLine decodes the attributes of a line block into the agnostic model.
func (l *Loader) translateLine(lb *lineBlock, evalCtx *hcl.EvalContext) (*config.Line, error) {
	var attrs lineAttributes
	if diags := gohcl.DecodeBody(lb.Body, evalCtx, &attrs); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode line %q: %w", lb.Name, diags)
	}

	return &config.Line{
		Name:   lb.Name,
		Params: attrs.params(),
		Source: bodyRange(lb.Body).String(),
	}, nil
}

// findAllHCLFiles walks all given paths and returns a flat, de-duplicated
// list of the configuration files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFiles(path, nativeExt, jsonExt)
			if err != nil {
				return nil, err
			}
		} else if fsutil.HasExtension(path, nativeExt, jsonExt) {
			found = []string{path}
		} else {
			return nil, fmt.Errorf("%s is not an .hcl or .hcl.json file", path)
		}

		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}

// parseFile picks the JSON or native syntax parser by file suffix.
func parseFile(parser *hclparse.Parser, file string) (*hcl.File, hcl.Diagnostics) {
	if strings.HasSuffix(file, jsonExt) {
		return parser.ParseJSONFile(file)
	}
	return parser.ParseHCLFile(file)
}
