package docsite

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// SiteConfig holds all configuration for a docsite build.
type SiteConfig struct {
	Repo   string // GitHub "owner/name", used only for external links (default "kl543/mbe3-controller")
	Branch string // Branch for nbviewer/raw links (default "main")

	Title    string // Page title (default "MBE3 Heating Stage Controller")
	Tagline  string // Subtitle shown under the title in the default header
	MainSite string // Parent site URL the header links back to (default "https://kl543.github.io")

	SiteRoot     string // Directory scanned for notebooks and _site-header.html (default ".")
	DataDir      string // Run directory root, relative to SiteRoot (default "data")
	NotebooksDir string // Extra notebook directory, relative to SiteRoot (default "notebooks")
	OutputDir    string // Where index.html and the asset buckets land (default ".")

	IndexDBPath string // Run-index SQLite path; empty disables new-run badges (default ".docsite/index.db")

	MaxFigures int // Max images on the selected-figures wall (default 24)
	ThumbWidth int // Max thumbnail width in pixels (default 480)
}

func (c *SiteConfig) setDefaults() {
	if c.Repo == "" {
		c.Repo = "kl543/mbe3-controller"
	}
	if c.Branch == "" {
		c.Branch = "main"
	}
	if c.Title == "" {
		c.Title = "MBE3 Heating Stage Controller"
	}
	if c.Tagline == "" {
		c.Tagline = "Notebook-first docs + run gallery"
	}
	if c.MainSite == "" {
		c.MainSite = "https://kl543.github.io"
	}
	if c.SiteRoot == "" {
		c.SiteRoot = "."
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.NotebooksDir == "" {
		c.NotebooksDir = "notebooks"
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.MaxFigures == 0 {
		c.MaxFigures = 24
	}
	if c.ThumbWidth == 0 {
		c.ThumbWidth = 480
	}
}

// Owner returns the account half of Repo.
func (c *SiteConfig) Owner() string {
	owner, _, _ := strings.Cut(c.Repo, "/")
	return owner
}

// RepoName returns the repository half of Repo.
func (c *SiteConfig) RepoName() string {
	_, name, _ := strings.Cut(c.Repo, "/")
	return name
}

// ProjectsURL is the parent site's project listing, the header's "back" target.
func (c *SiteConfig) ProjectsURL() string {
	return BuildURL(c.MainSite, "projects.html")
}

// SiteURL is the canonical URL the published pages live under.
func (c *SiteConfig) SiteURL() string {
	return BuildURL(c.MainSite, c.RepoName())
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the default logrus logger.
func WithLogger(log *logrus.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// WithClock overrides the time source used for the footer stamp, the feed
// and the run index. Builds against an unchanged data root become
// byte-identical when the clock is fixed.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithRunIndex enables the run-index database at path, which powers the
// "new" badge on runs appearing for the first time.
func WithRunIndex(path string) Option {
	return func(a *App) {
		a.Config.IndexDBPath = path
	}
}
