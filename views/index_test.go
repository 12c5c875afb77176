package views

import (
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, data PageData) string {
	t.Helper()
	var sb strings.Builder
	if err := Index(data).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func TestIndexEmptyStates(t *testing.T) {
	out := render(t, PageData{Header: "<body>", GeneratedAt: "2025-08-01 12:00 UTC"})
	for _, marker := range []string{"No notebooks yet.", "No figures yet.", "No runs yet."} {
		if !strings.Contains(out, marker) {
			t.Errorf("missing empty-state marker %q", marker)
		}
	}
}

func TestIndexEscapesNames(t *testing.T) {
	data := PageData{
		Runs: []RunSection{{
			Name: `<b>"run"</b>`,
			ID:   "run-b-run-b",
			Images: []Tile{
				{Href: "plots/r/x.png", Thumb: "thumbs/r/x.jpg", Name: `x<y>&"z".png`},
			},
		}},
	}
	out := render(t, data)
	if !strings.Contains(out, "&lt;b&gt;&#34;run&#34;&lt;/b&gt;") {
		t.Fatal("run name not escaped in heading")
	}
	if strings.Contains(out, "<h3><b>") {
		t.Fatal("raw markup leaked into heading")
	}
	if !strings.Contains(out, "x&lt;y&gt;&amp;&#34;z&#34;.png") {
		t.Fatal("image caption not escaped")
	}
}

func TestIndexDownloadsMarkerForImagesOnlyRun(t *testing.T) {
	data := PageData{
		Runs: []RunSection{{
			Name:   "run1",
			ID:     "run-run1",
			Images: []Tile{{Href: "plots/run1/a.png", Thumb: "thumbs/run1/a.jpg", Name: "a.png"}},
		}},
	}
	out := render(t, data)
	if !strings.Contains(out, "No downloads for this run.") {
		t.Fatal("images-only run should show the downloads marker")
	}
	if strings.Contains(out, "<ul") {
		t.Fatal("no list should render without downloads")
	}
}

func TestIndexEscapesHrefAttributes(t *testing.T) {
	data := PageData{
		Runs: []RunSection{{
			Name: "run1",
			ID:   "run-run1",
			Images: []Tile{
				{Href: "plots/run1/a&b.png", Thumb: "thumbs/run1/a&b.jpg", Name: "a&b.png"},
			},
			Downloads: []Link{
				{Href: "data/run1/x&copy.csv", Name: "x&copy.csv"},
			},
		}},
	}
	out := render(t, data)
	if !strings.Contains(out, `href="data/run1/x&amp;copy.csv"`) {
		t.Fatal("download href not entity-escaped")
	}
	if !strings.Contains(out, `src="thumbs/run1/a&amp;b.jpg"`) {
		t.Fatal("image src not entity-escaped")
	}
	if strings.Contains(out, `href="data/run1/x&copy.csv"`) {
		t.Fatal("raw ampersand leaked into an attribute")
	}
}

func TestIndexNewBadge(t *testing.T) {
	data := PageData{Runs: []RunSection{{Name: "run1", ID: "run-run1", New: true}}}
	out := render(t, data)
	if !strings.Contains(out, `<span class="badge">new</span>`) {
		t.Fatal("fresh run should carry the badge")
	}
}

func TestIndexFooterStamp(t *testing.T) {
	data := PageData{
		Site:        Site{Owner: "kl543", RepoName: "mbe3-controller", Branch: "main"},
		GeneratedAt: "2025-08-01 12:00 UTC",
	}
	out := render(t, data)
	if !strings.Contains(out, "Last updated: 2025-08-01 12:00 UTC — kl543/mbe3-controller@main") {
		t.Fatal("footer stamp missing or malformed")
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	got := WebsiteJsonLD(Site{Title: "MBE3", SiteURL: "https://kl543.github.io/mbe3-controller", Owner: "kl543"})
	for _, want := range []string{`"@type":"WebSite"`, `"name":"MBE3"`, `"Person"`} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON-LD missing %q: %s", want, got)
		}
	}
}
