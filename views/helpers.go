package views

import (
	"encoding/json"
	"html"
)

// attr escapes a value for a double-quoted HTML attribute. Hrefs arrive
// percent-encoded, but percent-encoding leaves & and the other sub-delims
// alone; without entity escaping, browsers read sequences like &copy in an
// attribute as entities and the link target no longer matches the on-disk
// filename.
func attr(s string) string {
	return html.EscapeString(s)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for the docs
// site, fed from Site values.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Title,
		"url":      site.SiteURL,
	}
	if site.Tagline != "" {
		data["description"] = site.Tagline
	}
	if site.Owner != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Owner,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
