package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

const containerPath = "META-INF/container.xml"

type container struct {
	Rootfiles []struct {
		FullPath  string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"rootfiles>rootfile"`
}

type opfPackage struct {
	Manifest []struct {
		ID        string `xml:"id,attr"`
		Href      string `xml:"href,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"manifest>item"`
	Spine []struct {
		IDRef  string `xml:"idref,attr"`
		Linear string `xml:"linear,attr"`
	} `xml:"spine>itemref"`
}

// EPUB returns the text of every content document in reading (spine) order.
func EPUB(filename string) (string, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return "", fmt.Errorf("opening epub: %w", err)
	}
	defer zr.Close()

	return readEPUB(&zr.Reader)
}

func readEPUB(zr *zip.Reader) (string, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	var c container
	if err := decodeXML(files, containerPath, &c); err != nil {
		return "", err
	}
	opfPath := ""
	for _, rf := range c.Rootfiles {
		if rf.MediaType == "" || rf.MediaType == "application/oebps-package+xml" {
			opfPath = rf.FullPath
			break
		}
	}
	if opfPath == "" {
		return "", fmt.Errorf("%w: no package document in %s", ErrInvalidEPUB, containerPath)
	}

	var pkg opfPackage
	if err := decodeXML(files, opfPath, &pkg); err != nil {
		return "", err
	}

	hrefs := make(map[string]string, len(pkg.Manifest))
	for _, item := range pkg.Manifest {
		if isHTML(item.MediaType) {
			hrefs[item.ID] = item.Href
		}
	}

	base := path.Dir(opfPath)
	var tw textWriter
	for _, ref := range pkg.Spine {
		href, ok := hrefs[ref.IDRef]
		if !ok || ref.Linear == "no" {
			continue
		}
		name, err := resolve(base, href)
		if err != nil {
			return "", fmt.Errorf("%w: bad href %q", ErrInvalidEPUB, href)
		}
		f, ok := files[name]
		if !ok {
			return "", fmt.Errorf("%w: missing %s", ErrInvalidEPUB, name)
		}
		if err := tw.document(f); err != nil {
			return "", fmt.Errorf("reading %s: %w", name, err)
		}
		tw.paragraph()
	}

	return norm.NFC.String(tw.String()), nil
}

func decodeXML(files map[string]*zip.File, name string, v any) error {
	f, ok := files[name]
	if !ok {
		return fmt.Errorf("%w: missing %s", ErrInvalidEPUB, name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	if err := xml.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrInvalidEPUB, name, err)
	}
	return nil
}

func resolve(base, href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return path.Clean(path.Join(base, u.Path)), nil
}

func isHTML(mediaType string) bool {
	return mediaType == "application/xhtml+xml" || mediaType == "text/html"
}

// textWriter accumulates text nodes separated by single spaces, with block
// elements ending a paragraph.
type textWriter struct {
	b     strings.Builder
	space bool
	brk   bool
}

func (w *textWriter) document(f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	return w.html(rc)
}

func (w *textWriter) html(r io.Reader) error {
	doc, err := html.Parse(r)
	if err != nil {
		return err
	}
	root := findBody(doc)
	if root == nil {
		root = doc
	}
	w.walk(root)
	return nil
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head, atom.Noscript:
			return
		case atom.Br:
			w.space = true
			return
		}
	}

	block := n.Type == html.ElementNode && isBlock(n.DataAtom)
	if block {
		w.paragraph()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
	if block {
		w.paragraph()
	}
}

func (w *textWriter) text(s string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			w.space = true
		}
		return
	}
	if w.b.Len() > 0 {
		switch {
		case w.brk:
			w.b.WriteString("\n\n")
		case w.space, startsWithSpace(s):
			w.b.WriteByte(' ')
		default:
			// Inline markup inside a word, such as <i>w</i>ord, stays joined.
		}
	}
	w.b.WriteString(strings.Join(fields, " "))
	w.brk = false
	w.space = endsWithSpace(s)
}

func (w *textWriter) paragraph() {
	w.brk = true
}

func (w *textWriter) String() string {
	return w.b.String()
}

func startsWithSpace(s string) bool {
	return s != "" && strings.TrimLeft(s, " \t\r\n\f") != s
}

func endsWithSpace(s string) bool {
	return s != "" && strings.TrimRight(s, " \t\r\n\f") != s
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Blockquote,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Li, atom.Ul, atom.Ol, atom.Table, atom.Tr, atom.Td, atom.Th,
		atom.Pre, atom.Hr, atom.Header, atom.Footer, atom.Aside, atom.Figure:
		return true
	}
	return false
}
