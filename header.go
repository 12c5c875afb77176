package docsite

import (
	"embed"
	"html"
	"os"
	"path/filepath"
	"strings"
)

// headerFileName is the shared navigation fragment used across the kl543
// project sites. When present it is prepended to the page verbatim.
const headerFileName = "_site-header.html"

// embeddedAssets contains the built-in default header used when no shared
// fragment is found.
//
//go:embed embedded/*
var embeddedAssets embed.FS

// LoadSiteHeader returns the site header fragment, looked up in the site
// root and then in its parent directory. If neither exists, the embedded
// default header is returned with the configured title, tagline and links
// substituted in. A missing fragment is never an error.
func LoadSiteHeader(cfg SiteConfig) string {
	candidates := []string{
		filepath.Join(cfg.SiteRoot, headerFileName),
		filepath.Join(cfg.SiteRoot, "..", headerFileName),
	}
	for _, p := range candidates {
		if b, err := os.ReadFile(p); err == nil {
			return string(b)
		}
	}
	return defaultHeader(cfg)
}

func defaultHeader(cfg SiteConfig) string {
	raw, err := embeddedAssets.ReadFile("embedded/header.html")
	if err != nil {
		// The asset ships inside the binary; treat absence as a build bug
		// but still emit a minimal document head.
		return "<!doctype html>\n<html lang=\"en\"><head><meta charset=\"utf-8\" /><title>" +
			html.EscapeString(cfg.Title) + "</title></head>\n<body>\n"
	}
	r := strings.NewReplacer(
		"{{TITLE}}", html.EscapeString(cfg.Title),
		"{{TAGLINE}}", html.EscapeString(cfg.Tagline),
		"{{MAIN_SITE}}", cfg.MainSite,
		"{{PROJECTS_URL}}", cfg.ProjectsURL(),
	)
	return r.Replace(string(raw))
}
