package tape

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Ext is the tape file extension
const Ext = ".tape"

// File is a saved tape in the tape directory
type File struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// Dir returns the XDG data directory for tape files, creating it if needed
func Dir() (string, error) {
	keep, err := xdg.DataFile(filepath.Join("carousel", "tapes", ".keep"))
	if err != nil {
		return "", fmt.Errorf("failed to get tape directory: %w", err)
	}
	return filepath.Dir(keep), nil
}

// List returns the saved tapes, newest first
func List() ([]File, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return listIn(dir)
}

func listIn(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read tape directory: %w", err)
	}

	var files []File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, Ext) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, File{
			Name:     strings.TrimSuffix(name, Ext),
			Path:     filepath.Join(dir, name),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	slices.SortFunc(files, func(a, b File) int {
		if c := b.Modified.Compare(a.Modified); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return files, nil
}

// Resolve maps a tape argument to a file: an existing path is used as is,
// anything else is looked up by name in the tape directory.
func Resolve(nameOrPath string) (string, error) {
	if _, err := os.Stat(nameOrPath); err == nil {
		return nameOrPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return resolveIn(dir, nameOrPath)
}

func resolveIn(dir, name string) (string, error) {
	if !strings.HasSuffix(name, Ext) {
		name += Ext
	}
	path := filepath.Join(dir, filepath.Base(name))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("tape %q not found in %s", strings.TrimSuffix(filepath.Base(name), Ext), dir)
	}
	return path, nil
}

// Delete removes a saved tape by name
func Delete(name string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	path, err := resolveIn(dir, name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Format writes cmds back as a script, one command per line
func Format(cmds []Command) string {
	var sb strings.Builder
	for _, c := range cmds {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
