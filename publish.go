package docsite

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

const (
	plotsSubdir  = "plots"
	dataSubdir   = "data"
	thumbsSubdir = "thumbs"
	jpegQuality  = 80
)

// PublishedAsset is one file that made it into the output tree. Href and
// Thumb are slash-separated paths relative to the output directory, still
// unencoded; URL encoding happens when the page is assembled.
type PublishedAsset struct {
	Name    string
	Href    string // full-size copy
	Thumb   string // grid preview; equals Href when thumbnailing failed
	ModTime time.Time
}

// PublishedRun mirrors a Run with the output locations of the copies that
// actually landed on disk. Files whose copy failed are absent.
type PublishedRun struct {
	Run
	Plots     []PublishedAsset
	Downloads []PublishedAsset
}

// Publisher copies run artifacts into the output tree, bucketed by
// extension (images under plots/, auxiliary files under data/), and builds
// JPEG thumbnails for the image grid.
type Publisher struct {
	outDir     string
	thumbWidth int
	log        *logrus.Logger
}

// NewPublisher creates a Publisher writing under outDir.
func NewPublisher(outDir string, thumbWidth int, log *logrus.Logger) *Publisher {
	return &Publisher{outDir: outDir, thumbWidth: thumbWidth, log: log}
}

// PublishRun copies one run's files into the output tree. A copy failure is
// logged and the file dropped from the result; the rest of the run and the
// batch continue. Re-running against unchanged sources rewrites the same
// bytes, so the output tree is idempotent.
func (p *Publisher) PublishRun(run Run) PublishedRun {
	out := PublishedRun{Run: run}
	for _, img := range run.Images {
		rel := path.Join(plotsSubdir, run.Name, img.Name)
		if err := p.copyFile(img.Path, rel); err != nil {
			p.log.WithError(err).WithField("file", img.Path).Warn("skipping image")
			continue
		}
		a := PublishedAsset{Name: img.Name, Href: rel, Thumb: rel, ModTime: img.ModTime}
		thumbRel := path.Join(thumbsSubdir, run.Name, thumbName(img.Name))
		if err := p.writeThumb(img.Path, thumbRel); err != nil {
			p.log.WithError(err).WithField("file", img.Path).Warn("thumbnail failed, using full-size image")
		} else {
			a.Thumb = thumbRel
		}
		out.Plots = append(out.Plots, a)
	}
	for _, f := range run.Files {
		rel := path.Join(dataSubdir, run.Name, f.Name)
		if err := p.copyFile(f.Path, rel); err != nil {
			p.log.WithError(err).WithField("file", f.Path).Warn("skipping download")
			continue
		}
		out.Downloads = append(out.Downloads, PublishedAsset{Name: f.Name, Href: rel, Thumb: rel, ModTime: f.ModTime})
	}
	return out
}

func (p *Publisher) copyFile(src, rel string) error {
	dst := filepath.Join(p.outDir, filepath.FromSlash(rel))
	// Building in place (output dir == site root) makes the destination the
	// source itself; creating it would truncate the file before the copy
	// reads it. The file is already where the page links it, so leave it.
	if si, err := os.Stat(src); err == nil {
		if di, err := os.Stat(dst); err == nil && os.SameFile(si, di) {
			return nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}

// writeThumb decodes src, scales it down to at most thumbWidth pixels wide,
// and writes it as a JPEG under the output directory.
func (p *Publisher) writeThumb(src, rel string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	if w := bounds.Dx(); w > p.thumbWidth {
		newH := bounds.Dy() * p.thumbWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, p.thumbWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	dst := filepath.Join(p.outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	return os.WriteFile(dst, buf.Bytes(), 0o644)
}

// thumbName swaps the original extension for .jpg.
func thumbName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
}

// SelectFigures returns the newest max published images across all runs,
// for the selected-figures wall. Ordering matches the run sort: mod time
// descending, name descending on ties.
func SelectFigures(runs []PublishedRun, max int) []PublishedAsset {
	var all []PublishedAsset
	for _, r := range runs {
		all = append(all, r.Plots...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].ModTime.Equal(all[j].ModTime) {
			return all[i].ModTime.After(all[j].ModTime)
		}
		return all[i].Name > all[j].Name
	})
	if len(all) > max {
		all = all[:max]
	}
	return all
}
