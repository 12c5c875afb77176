// Package docsite builds the static documentation site for the MBE3
// heating-stage controller repository: a gallery of experiment runs with
// image previews and download links, notebook links, and a selected-figures
// wall, rendered to a single index.html.
//
// The build is one synchronous pass: scan the data root, publish assets
// into the output tree, render the page, then emit the feed and sitemap.
package docsite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kl543/mbe3-docsite/views"
)

// App wires the scanner, publisher, run index and views into one build.
type App struct {
	Config SiteConfig

	log *logrus.Logger
	now func() time.Time
}

// New creates an App with the given configuration. Zero-value fields fall
// back to documented defaults.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	a := &App{
		Config: cfg,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IndexPath is where Build writes the generated page.
func (a *App) IndexPath() string {
	return filepath.Join(a.Config.OutputDir, "index.html")
}

// Build runs one scan-publish-render pass, writing index.html, feed.xml and
// sitemap.xml under the configured output directory. Per-file publish
// failures are logged and skipped; a failure to write any of the output
// documents is fatal.
func (a *App) Build(ctx context.Context) error {
	cfg := a.Config
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", cfg.OutputDir, err)
	}

	runs := ScanRuns(filepath.Join(cfg.SiteRoot, cfg.DataDir))

	pub := NewPublisher(cfg.OutputDir, cfg.ThumbWidth, a.log)
	published := make([]PublishedRun, 0, len(runs))
	for _, r := range runs {
		published = append(published, pub.PublishRun(r))
	}

	fresh := a.markRuns(published)
	notebooks := ListNotebooks(cfg.SiteRoot, cfg.NotebooksDir)
	figures := SelectFigures(published, cfg.MaxFigures)

	data := a.pageData(published, fresh, notebooks, figures)
	if err := RenderToFile(ctx, a.IndexPath(), views.Index(data)); err != nil {
		return err
	}
	if err := writeFeed(cfg, filepath.Join(cfg.OutputDir, "feed.xml"), published); err != nil {
		return err
	}
	var lastMod time.Time
	if len(published) > 0 {
		lastMod = published[0].ModTime
	}
	if err := writeSitemap(cfg, filepath.Join(cfg.OutputDir, "sitemap.xml"), lastMod); err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"runs":      len(published),
		"notebooks": len(notebooks),
		"figures":   len(figures),
	}).Info("site built")
	return nil
}

// markRuns records this pass in the run index and returns the names of runs
// seen for the first time. Index trouble only costs the badge, never the
// build.
func (a *App) markRuns(runs []PublishedRun) map[string]bool {
	if a.Config.IndexDBPath == "" {
		return nil
	}
	ix, err := OpenRunIndex(a.Config.IndexDBPath)
	if err != nil {
		a.log.WithError(err).Warn("run index unavailable, skipping new-run badges")
		return nil
	}
	defer ix.Close()

	now := a.now()
	fresh := make(map[string]bool)
	for _, r := range runs {
		isNew, err := ix.MarkSeen(r.Name, len(r.Plots), len(r.Downloads), now)
		if err != nil {
			a.log.WithError(err).WithField("run", r.Name).Warn("run index update failed")
			continue
		}
		if isNew {
			fresh[r.Name] = true
		}
	}
	return fresh
}

func (a *App) pageData(runs []PublishedRun, fresh map[string]bool, notebooks []Notebook, figures []PublishedAsset) views.PageData {
	cfg := a.Config

	data := views.PageData{
		Header: LoadSiteHeader(cfg),
		Site: views.Site{
			Title:       cfg.Title,
			Tagline:     cfg.Tagline,
			MainSite:    cfg.MainSite,
			ProjectsURL: cfg.ProjectsURL(),
			SiteURL:     cfg.SiteURL(),
			Owner:       cfg.Owner(),
			RepoName:    cfg.RepoName(),
			Branch:      cfg.Branch,
		},
		GeneratedAt: a.now().UTC().Format("2006-01-02 15:04 UTC"),
	}

	for _, nb := range notebooks {
		data.Notebooks = append(data.Notebooks, views.Notebook{
			Label:       nb.Label,
			ViewURL:     cfg.NbviewerURL(nb.RelPath),
			DownloadURL: cfg.RawURL(nb.RelPath),
		})
	}
	for _, fig := range figures {
		data.Figures = append(data.Figures, tile(fig))
	}
	for _, r := range runs {
		section := views.RunSection{
			Name: r.Name,
			ID:   "run-" + Slugify(r.Name),
			New:  fresh[r.Name],
		}
		for _, p := range r.Plots {
			section.Images = append(section.Images, tile(p))
		}
		for _, d := range r.Downloads {
			section.Downloads = append(section.Downloads, views.Link{
				Href: EncodePath(d.Href),
				Name: d.Name,
			})
		}
		data.Runs = append(data.Runs, section)
	}
	return data
}

// tile prepares one image cell: hrefs get percent-encoded for URL context,
// the raw name rides along for the renderer to HTML-escape.
func tile(a PublishedAsset) views.Tile {
	return views.Tile{
		Href:  EncodePath(a.Href),
		Thumb: EncodePath(a.Thumb),
		Name:  a.Name,
	}
}

// CompletionMessage is the one-line summary printed after a successful build.
func (a *App) CompletionMessage() string {
	return fmt.Sprintf("[mbe3-docsite] Wrote %s", a.IndexPath())
}
