// Package views renders the docsite index page as templ components. Text
// from the filesystem (run names, filenames) is HTML-escaped here; URL
// percent-encoding happened upstream when the hrefs were built.
package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Index returns the full index document as a templ component.
func Index(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(data.Header)
		buf.WriteString("\n<script type=\"application/ld+json\">")
		buf.WriteString(WebsiteJsonLD(data.Site))
		buf.WriteString("</script>\n")
		buf.WriteString("<main class=\"container\">\n")
		writeNotebooks(&buf, data.Notebooks)
		writeFigures(&buf, data.Figures)
		writeRuns(&buf, data.Runs)
		writeFooter(&buf, data)
		buf.WriteString("</main></body></html>\n")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeNotebooks(buf *bytes.Buffer, nbs []Notebook) {
	buf.WriteString("<section class=\"card\">\n<h2>Notebooks</h2>\n")
	if len(nbs) == 0 {
		buf.WriteString("<div class=\"muted\">No notebooks yet.</div>\n")
	}
	for _, nb := range nbs {
		buf.WriteString("<div style=\"margin:10px 0;\"><b>" + html.EscapeString(nb.Label) + "</b><br/>\n")
		buf.WriteString("<a class=\"btn\" href=\"" + attr(nb.ViewURL) + "\" target=\"_blank\" rel=\"noreferrer\">View (nbviewer)</a>\n")
		buf.WriteString("<a class=\"btn\" href=\"" + attr(nb.DownloadURL) + "\" target=\"_blank\" rel=\"noreferrer\">Download (.ipynb)</a></div>\n")
	}
	buf.WriteString("</section>\n")
}

func writeFigures(buf *bytes.Buffer, figures []Tile) {
	buf.WriteString("<section class=\"card\">\n<h2>Selected Figures</h2>\n")
	if len(figures) == 0 {
		buf.WriteString("<div class=\"muted\">No figures yet.</div>\n")
	} else {
		buf.WriteString("<div class=\"grid\">\n")
		for _, t := range figures {
			buf.WriteString("<a class=\"thumb\" href=\"" + attr(t.Href) + "\" target=\"_blank\" rel=\"noreferrer\">")
			buf.WriteString("<img src=\"" + attr(t.Thumb) + "\" alt=\"" + html.EscapeString(t.Name) + "\" loading=\"lazy\" /></a>\n")
		}
		buf.WriteString("</div>\n")
	}
	buf.WriteString("</section>\n")
}

func writeRuns(buf *bytes.Buffer, runs []RunSection) {
	buf.WriteString("<section class=\"card\">\n<h2>Recent Runs</h2>\n")
	if len(runs) == 0 {
		buf.WriteString("<div class=\"muted\">No runs yet.</div>\n")
	}
	for _, r := range runs {
		writeRun(buf, r)
	}
	buf.WriteString("</section>\n")
}

func writeRun(buf *bytes.Buffer, r RunSection) {
	buf.WriteString("<section class=\"card\" id=\"" + r.ID + "\">\n")
	buf.WriteString("<h3>" + html.EscapeString(r.Name))
	if r.New {
		buf.WriteString(" <span class=\"badge\">new</span>")
	}
	buf.WriteString("</h3>\n")

	if len(r.Images) > 0 {
		buf.WriteString("<div class=\"run-grid\">\n")
		for _, t := range r.Images {
			buf.WriteString("<a class=\"tile\" href=\"" + attr(t.Href) + "\" target=\"_blank\" rel=\"noreferrer\">\n")
			buf.WriteString("<img loading=\"lazy\" src=\"" + attr(t.Thumb) + "\" alt=\"" + html.EscapeString(t.Name) + "\">\n")
			buf.WriteString("<div class=\"cap\">" + html.EscapeString(t.Name) + "</div></a>\n")
		}
		buf.WriteString("</div>\n")
	}

	switch {
	case len(r.Downloads) > 0:
		buf.WriteString("<div class=\"muted\" style=\"margin-top:6px\">Downloads</div>\n")
		buf.WriteString("<ul style=\"margin:6px 0 0 18px\">\n")
		for _, d := range r.Downloads {
			buf.WriteString("<li><a href=\"" + attr(d.Href) + "\">" + html.EscapeString(d.Name) + "</a></li>\n")
		}
		buf.WriteString("</ul>\n")
	case len(r.Images) > 0:
		// Images but nothing to download still gets an explicit marker so
		// the section is never silently half-empty.
		buf.WriteString("<div class=\"muted\">No downloads for this run.</div>\n")
	default:
		buf.WriteString("<div class=\"muted\">No plots or logs in this run.</div>\n")
	}
	buf.WriteString("</section>\n")
}

func writeFooter(buf *bytes.Buffer, data PageData) {
	buf.WriteString("<div class=\"center muted\" style=\"margin:24px 0;\">Last updated: " +
		data.GeneratedAt + " — " + html.EscapeString(data.Site.Owner) + "/" +
		html.EscapeString(data.Site.RepoName) + "@" + html.EscapeString(data.Site.Branch) + "</div>\n")
}
