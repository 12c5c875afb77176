package docsite

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Notebook is one .ipynb discovered in the site root or the notebooks
// directory, viewable through nbviewer and downloadable from the raw host.
type Notebook struct {
	RelPath string // slash path relative to the site root
	Label   string // file stem with dashes turned into spaces
}

// ListNotebooks globs *.ipynb in the site root and in notebooksDir,
// deduplicated by relative path and sorted by path within each location.
// Root notebooks come first, matching the original docs layout.
func ListNotebooks(siteRoot, notebooksDir string) []Notebook {
	var out []Notebook
	seen := make(map[string]struct{})
	add := func(rel string) {
		if _, ok := seen[rel]; ok {
			return
		}
		seen[rel] = struct{}{}
		out = append(out, Notebook{RelPath: rel, Label: notebookLabel(rel)})
	}
	for _, m := range globSorted(filepath.Join(siteRoot, "*.ipynb")) {
		add(filepath.Base(m))
	}
	for _, m := range globSorted(filepath.Join(siteRoot, notebooksDir, "*.ipynb")) {
		add(path.Join(filepath.ToSlash(notebooksDir), filepath.Base(m)))
	}
	return out
}

func globSorted(pattern string) []string {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

func notebookLabel(rel string) string {
	stem := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	return strings.ReplaceAll(stem, "-", " ")
}

// NbviewerURL builds the external rendered-notebook link for a repo path.
func (c *SiteConfig) NbviewerURL(rel string) string {
	return fmt.Sprintf("https://nbviewer.org/github/%s/blob/%s/%s", c.Repo, c.Branch, EncodePath(rel))
}

// RawURL builds the direct-download link for a repo path.
func (c *SiteConfig) RawURL(rel string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s", c.Repo, c.Branch, EncodePath(rel))
}
