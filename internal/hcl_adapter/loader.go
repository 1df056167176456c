package hcl_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/dsalwasser/kmpexp/internal/config"
	"github.com/dsalwasser/kmpexp/internal/ctxlog"
	"github.com/dsalwasser/kmpexp/internal/schema"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL experiment loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the experiment description at path and translates it into the
// canonical model, applying defaults and validating the result.
func (l *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, config.Errorf("", "no experiment description found at %s", path)
		}
		return nil, fmt.Errorf("accessing %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, config.Errorf("", "parsing %s: %s", path, diags.Error())
	}

	var doc schema.Document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, config.Errorf("", "%s", diags.Error())
	}

	cfg, err := translateDocument(&doc)
	if err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.", "suites", len(cfg.Suites))
	return cfg, nil
}
