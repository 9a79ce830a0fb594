package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Read walks the archive root and returns a fresh in-memory tree. A
// missing root is a first-run condition, not a failure: it yields an
// empty tree. The library is never cached between runs.
func Read(root string) (*Node, error) {
	tree := &Node{Name: filepath.Base(root), Path: "", Kind: CategoryFolder}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return tree, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat archive root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("archive root %s is not a directory", root)
	}

	children, err := readDir(root, "")
	if err != nil {
		return nil, err
	}
	tree.Children = children
	return tree, nil
}

func readDir(absDir, relDir string) ([]*Node, error) {
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("read archive directory %s: %w", absDir, err)
	}

	var nodes []*Node
	for _, entry := range entries {
		// The archive is directory-only; stray files are ignored
		if !entry.IsDir() {
			continue
		}

		absPath := filepath.Join(absDir, entry.Name())
		relPath := filepath.Join(relDir, entry.Name())

		if meta := readMetadata(absPath); meta != nil {
			nodes = append(nodes, &Node{
				Name: entry.Name(),
				Path: relPath,
				Kind: TranscriptEntry,
				Meta: meta,
			})
			continue
		}

		children, err := readDir(absPath, relPath)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &Node{
			Name:     entry.Name(),
			Path:     relPath,
			Kind:     CategoryFolder,
			Children: children,
		})
	}

	return nodes, nil
}

// readMetadata returns the parsed metadata record for a directory, or nil
// when the record is absent or malformed. Malformed metadata must not
// abort the whole read: the directory is then classified as a category
// folder, exactly as if the record were missing.
func readMetadata(dir string) *Metadata {
	data, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		return nil
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil
	}
	return &meta
}
