package views

// Site carries site-wide settings into every component so nothing is
// hardcoded in the markup.
type Site struct {
	Title       string
	Tagline     string
	MainSite    string
	ProjectsURL string
	SiteURL     string
	Owner       string
	RepoName    string
	Branch      string
}

// Tile is one image cell in a grid. Href and Thumb are already
// percent-encoded for URL context; Name is the raw filename and is
// HTML-escaped at render time.
type Tile struct {
	Href  string
	Thumb string
	Name  string
}

// Link is one entry in a run's downloads list. Href is percent-encoded,
// Name is raw.
type Link struct {
	Href string
	Name string
}

// Notebook is one notebook entry with its external view/download URLs.
type Notebook struct {
	Label       string
	ViewURL     string
	DownloadURL string
}

// RunSection is one run card on the index page.
type RunSection struct {
	Name      string // raw directory name, escaped at render time
	ID        string // anchor id, already slug-safe
	New       bool   // first sighting in the run index
	Images    []Tile
	Downloads []Link
}

// PageData is everything Index needs to render the document.
type PageData struct {
	Header      string // header fragment, written verbatim
	Site        Site
	Notebooks   []Notebook
	Figures     []Tile
	Runs        []RunSection
	GeneratedAt string // preformatted UTC stamp for the footer
}
