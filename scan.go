package docsite

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Asset is one file discovered inside a run directory.
type Asset struct {
	Name    string // filename as it exists on disk
	Path    string // source path, rooted at the scanned data directory
	ModTime time.Time
}

// Run groups the artifacts of one experiment: one immediate subdirectory of
// the data root. Images feed the thumbnail grid, Files become the downloads
// list.
type Run struct {
	Name    string
	ModTime time.Time
	Images  []Asset
	Files   []Asset
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var auxExts = map[string]bool{
	".csv": true,
	".txt": true,
	".log": true,
}

// ScanRuns lists the immediate subdirectories of dataDir as Runs. Files are
// partitioned by extension into images and auxiliary downloads; anything
// else is ignored. A missing or unreadable dataDir yields zero runs rather
// than an error, so the renderer can show its empty state.
func ScanRuns(dataDir string) []Run {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil
	}
	var runs []Run
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		run := Run{Name: e.Name()}
		if info, err := e.Info(); err == nil {
			run.ModTime = info.ModTime()
		}
		dir := filepath.Join(dataDir, e.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			// Unreadable run directory: keep the section, render it empty.
			runs = append(runs, run)
			continue
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(f.Name()))
			if !imageExts[ext] && !auxExts[ext] {
				continue
			}
			a := Asset{Name: f.Name(), Path: filepath.Join(dir, f.Name())}
			if info, err := f.Info(); err == nil {
				a.ModTime = info.ModTime()
			}
			if imageExts[ext] {
				run.Images = append(run.Images, a)
			} else {
				run.Files = append(run.Files, a)
			}
		}
		sortAssetsByName(run.Images)
		sortAssetsByName(run.Files)
		runs = append(runs, run)
	}
	sortRuns(runs)
	return runs
}

func sortAssetsByName(assets []Asset) {
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].Name < assets[j].Name
	})
}

// sortRuns orders runs newest first. Equal timestamps fall back to name
// descending so output never depends on directory iteration order.
func sortRuns(runs []Run) {
	sort.SliceStable(runs, func(i, j int) bool {
		if !runs[i].ModTime.Equal(runs[j].ModTime) {
			return runs[i].ModTime.After(runs[j].ModTime)
		}
		return runs[i].Name > runs[j].Name
	})
}
