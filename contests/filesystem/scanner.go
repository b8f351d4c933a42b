package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanContests lists contest directories of root sorted by name.
// Only directories are taken (symlinks are followed), other entries are skipped
func ScanContests(root string) ([]*Contest, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list contests root %s: %w", root, err)
	}

	var contests []*Contest
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		mode, err := entryMode(path, entry)
		if err != nil {
			return nil, err
		}
		if !mode.IsDir() {
			continue
		}

		files, err := scanContestDir(path)
		if err != nil {
			return nil, err
		}
		contests = append(contests, NewContest(entry.Name(), path, files))
	}

	sort.Slice(contests, func(i, j int) bool {
		return contests[i].Name < contests[j].Name
	})
	return contests, nil
}

// scanContestDir lists regular files with ProblemExt sorted by name
func scanContestDir(path string) ([]ProblemFile, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list contest directory %s: %w", path, err)
	}

	var files []ProblemFile
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ProblemExt) {
			continue
		}
		filePath := filepath.Join(path, entry.Name())
		mode, err := entryMode(filePath, entry)
		if err != nil {
			return nil, err
		}
		if !mode.IsRegular() {
			continue
		}
		files = append(files, ProblemFile{
			Name: entry.Name(),
			Path: filePath,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// entryMode resolves symlinks, broken links are reported as irregular files
func entryMode(path string, entry fs.DirEntry) (fs.FileMode, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs.ModeIrregular, nil
		}
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Mode(), nil
}
