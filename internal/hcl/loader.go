package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/blockart/internal/config"
	"github.com/specialistvlad/blockart/internal/ctxlog"
	"github.com/specialistvlad/blockart/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the top-level schema of a settings file.
type fileRoot struct {
	Settings []*settingsBlock `hcl:"settings,block"`
}

type settingsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Load parses every settings file reachable from paths and merges their
// `settings` blocks over config.Defaults, later blocks winning per attribute.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	settings := config.Defaults()

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	evalCtx := evalContext()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Settings {
			if err := applySettings(ctx, block.Body, evalCtx, settings); err != nil {
				return nil, fmt.Errorf("failed to apply settings from %s: %w", file, err)
			}
		}
		logger.Debug("Applied settings file.", "file", file, "blocks", len(root.Settings))
	}

	logger.Debug("HCL loading complete.", "default_filename", settings.DefaultFilename, "default_color", settings.DefaultColor, "prompt_save", settings.PromptSave)
	return settings, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found. A path naming a file is used whatever its extension.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			add(f)
		}
	}
	return allFiles, nil
}
