package docsite

import (
	"net/url"
	"strings"
	"testing"
)

func TestEncodePathRoundTrip(t *testing.T) {
	cases := []string{
		"plots/run 3/trace #2.png",
		"data/run1/heater log.csv",
		"plots/100%/done.png",
	}
	for _, raw := range cases {
		encoded := EncodePath(raw)
		if strings.ContainsAny(encoded, " #") {
			t.Errorf("EncodePath(%q) = %q still contains reserved characters", raw, encoded)
		}
		segs := strings.Split(encoded, "/")
		var decoded []string
		for _, s := range segs {
			d, err := url.PathUnescape(s)
			if err != nil {
				t.Fatalf("PathUnescape(%q): %v", s, err)
			}
			decoded = append(decoded, d)
		}
		if got := strings.Join(decoded, "/"); got != raw {
			t.Errorf("round trip of %q = %q", raw, got)
		}
	}
}

func TestEncodePathKeepsSlashes(t *testing.T) {
	if got := EncodePath("plots/run1/a.png"); got != "plots/run1/a.png" {
		t.Fatalf("plain path mangled: %q", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Run 2025-06-01":   "run-2025-06-01",
		"  anneal @ 450C ": "anneal-450c",
		"<script>":         "script",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	got := BuildURL("https://kl543.github.io", "mbe3-controller", "index.html")
	want := "https://kl543.github.io/mbe3-controller/index.html"
	if got != want {
		t.Fatalf("BuildURL = %q, want %q", got, want)
	}
}
