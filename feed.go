package docsite

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// writeFeed writes an RSS 2.0 feed of runs to path in the same order the
// page renders them: newest first. Each item links to the run's anchor on
// the index page.
func writeFeed(cfg SiteConfig, path string, runs []PublishedRun) error {
	items := make([]rssItem, 0, len(runs))
	for _, r := range runs {
		link := BuildURL(cfg.SiteURL(), "index.html") + "#run-" + Slugify(r.Name)
		items = append(items, rssItem{
			Title:       r.Name,
			Link:        link,
			Description: fmt.Sprintf("%d plots, %d downloads", len(r.Plots), len(r.Downloads)),
			PubDate:     r.ModTime.UTC().Format(time.RFC1123Z),
			GUID:        link,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Title,
			Link:        cfg.SiteURL(),
			Description: cfg.Tagline,
			Items:       items,
		},
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write([]byte(xml.Header)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := xml.NewEncoder(f).Encode(feed); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
