package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/lumiwidgets/pkg/editor"
	"github.com/dshills/lumiwidgets/pkg/feedback"
	"github.com/dshills/lumiwidgets/pkg/graph"
	"github.com/dshills/lumiwidgets/pkg/lumi"
	"github.com/dshills/lumiwidgets/pkg/nodedef"
)

// LoadExtraDefinitions reads every *.yaml file in the node definitions directory.
func LoadExtraDefinitions(dir string) ([]nodedef.Definition, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read node definitions directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ext := strings.ToLower(filepath.Ext(entry.Name())); ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var defs []nodedef.Definition
	for _, name := range names {
		fileDefs, err := nodedef.ParseFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		defs = append(defs, fileDefs...)
	}
	return defs, nil
}

// collectDefinitions merges the built-in definitions with extra files.
// Extra definitions replace built-ins of the same name.
func collectDefinitions(wildcards, loras []string) ([]nodedef.Definition, error) {
	extra, err := LoadExtraDefinitions(GetNodeDefsDir())
	if err != nil {
		return nil, err
	}

	defs := nodedef.Builtins(wildcards, loras)
	for _, def := range extra {
		replaced := false
		for i := range defs {
			if defs[i].Name == def.Name {
				defs[i] = def
				replaced = true
				break
			}
		}
		if !replaced {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// newSessionEditor builds an editor on a private bus with the Lumi
// orchestrator installed and every known node type registered.
func newSessionEditor(wildcards, loras []string) (*editor.Editor, error) {
	cfg, err := LoadFileConfig()
	if err != nil {
		return nil, err
	}
	rule, err := cfg.gateRule()
	if err != nil {
		return nil, err
	}

	defs, err := collectDefinitions(wildcards, loras)
	if err != nil {
		return nil, err
	}

	ed := editor.New(graph.New(), feedback.NewBus())
	if _, err := lumi.New(lumi.WithGateRule(rule)).Install(ed); err != nil {
		return nil, err
	}
	for _, def := range defs {
		if _, err := ed.RegisterNodeType(def); err != nil {
			return nil, err
		}
	}
	return ed, nil
}
