// Package batch runs the converter across whole definition trees,
// writing one simplified file per definition into a mirrored output
// layout.
package batch

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"nxconvert/internal/convert"
)

// Config describes one batch run.
type Config struct {
	// In is the root holding the category directories.
	In string

	// Out is the output root; the layout under In is mirrored here.
	Out string

	// Dirs lists the category directories under In to scan.
	Dirs []string

	// Options parameterize every conversion of the run.
	Options convert.Options

	// Debug receives a dump of each converted tree before it is
	// written. Nil disables the dumps.
	Debug io.Writer
}

// Run converts every definition file under each configured category
// directory. Engine failures are fatal to the run: the first broken
// definition aborts with its error.
func Run(cfg Config, log *slog.Logger) error {
	for _, dir := range cfg.Dirs {
		root := filepath.Join(cfg.In, dir)
		log.Debug("scanning category", "dir", root)

		files, err := findDefinitions(root)
		if err != nil {
			return fmt.Errorf("cannot scan %s: %w", root, err)
		}

		for _, path := range files {
			rel, err := filepath.Rel(cfg.In, path)
			if err != nil {
				return err
			}

			dst := filepath.Join(cfg.Out, rel)

			err = ConvertFile(path, dst, cfg.Options, cfg.Debug)
			if err != nil {
				return err
			}

			log.Info("converted definition", "in", path, "out", dst)
		}
	}

	return nil
}

// ConvertFile converts a single definition file and writes the
// simplified result to dst, creating parent directories as needed.
// When debug is non-nil the converted tree is dumped to it before
// marshalling.
func ConvertFile(src, dst string, opts convert.Options, debug io.Writer) error {
	result, err := convert.File(src, opts)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", src, err)
	}

	if debug != nil {
		spew.Fdump(debug, result)
	}

	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal converted %s: %w", src, err)
	}

	err = os.MkdirAll(filepath.Dir(dst), 0o755)
	if err != nil {
		return fmt.Errorf("cannot create output directory for %s: %w", dst, err)
	}

	err = os.WriteFile(dst, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return nil
}

// findDefinitions lists the .yml files under root, skipping dot-prefixed
// files and directories.
func findDefinitions(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.IsDir() && strings.HasSuffix(d.Name(), ".yml") {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
