package docsite

import (
	"path/filepath"
	"testing"
)

func TestListNotebooksRootAndSubdir(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "stage-overview.ipynb"), "{}")
	writeTestFile(t, filepath.Join(root, "notebooks", "pid-tuning.ipynb"), "{}")
	writeTestFile(t, filepath.Join(root, "notebooks", "anneal-sweeps.ipynb"), "{}")

	nbs := ListNotebooks(root, "notebooks")
	if len(nbs) != 3 {
		t.Fatalf("expected 3 notebooks, got %d", len(nbs))
	}
	if nbs[0].RelPath != "stage-overview.ipynb" {
		t.Fatalf("root notebooks should come first, got %q", nbs[0].RelPath)
	}
	if nbs[1].RelPath != "notebooks/anneal-sweeps.ipynb" || nbs[2].RelPath != "notebooks/pid-tuning.ipynb" {
		t.Fatalf("subdir notebooks not sorted: %v", nbs)
	}
	if nbs[0].Label != "stage overview" {
		t.Fatalf("label = %q, want %q", nbs[0].Label, "stage overview")
	}
}

func TestListNotebooksDeduplicates(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.ipynb"), "{}")

	// Pointing the notebooks dir at the root itself makes both globs see
	// the same file under the same relative path.
	nbs := ListNotebooks(root, ".")
	if len(nbs) != 1 {
		t.Fatalf("expected 1 notebook after dedupe, got %d", len(nbs))
	}
}

func TestListNotebooksNoneFound(t *testing.T) {
	if nbs := ListNotebooks(t.TempDir(), "notebooks"); len(nbs) != 0 {
		t.Fatalf("expected no notebooks, got %v", nbs)
	}
}

func TestExternalNotebookURLs(t *testing.T) {
	cfg := SiteConfig{}
	cfg.setDefaults()

	view := cfg.NbviewerURL("notebooks/pid tuning.ipynb")
	want := "https://nbviewer.org/github/kl543/mbe3-controller/blob/main/notebooks/pid%20tuning.ipynb"
	if view != want {
		t.Fatalf("NbviewerURL = %q, want %q", view, want)
	}
	raw := cfg.RawURL("a.ipynb")
	if raw != "https://raw.githubusercontent.com/kl543/mbe3-controller/main/a.ipynb" {
		t.Fatalf("RawURL = %q", raw)
	}
}
