package rtl

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/xid"

	"github.com/sarchlab/sramgen/sram"
)

// Generate derives the design for cfg, renders it, and writes one .v file
// per artifact under dest, creating parent directories if needed. It
// returns the sorted artifact file names.
//
// The generator owns dest as a whole: the artifact set is staged next to
// it and swapped in with a single directory rename, so readers never
// observe a mix of stale and fresh artifacts and a failed call leaves the
// previous set untouched. Files from an earlier generation that are not
// part of the new set do not survive the swap.
func Generate(cfg sram.Config, dest string) ([]string, error) {
	design := DesignFrom(cfg)

	parent := filepath.Dir(dest)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, fmt.Errorf("creating destination %s: %w", parent, err)
	}

	stage := filepath.Join(parent, ".stage-"+xid.New().String())
	if err := os.Mkdir(stage, 0755); err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	names := design.ArtifactNames()

	for _, a := range design.Artifacts {
		content, err := RenderArtifact(design, a)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(stage, a.Name+".v")
		if err := os.WriteFile(path, content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
	}

	var old string
	if _, err := os.Stat(dest); err == nil {
		old = filepath.Join(parent, ".old-"+xid.New().String())
		if err := os.Rename(dest, old); err != nil {
			return nil, fmt.Errorf("retiring previous artifacts: %w", err)
		}
	}

	if err := os.Rename(stage, dest); err != nil {
		if old != "" {
			_ = os.Rename(old, dest)
		}

		return nil, fmt.Errorf("publishing artifacts: %w", err)
	}

	if old != "" {
		_ = os.RemoveAll(old)
	}

	sort.Strings(names)

	return names, nil
}
