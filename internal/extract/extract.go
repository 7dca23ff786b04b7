// Package extract converts fetched documents into plain text suitable for
// tokenization. HTML is reduced to its main article content (or to a CSS
// selection), PDF and DOCX are unpacked, and plain-text formats pass
// through with whitespace normalization.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
)

// Format identifies how a document's bytes should be interpreted.
type Format int

const (
	Auto Format = iota
	HTML
	PDF
	DOCX
	PlainText
)

// String returns the format name for logging.
func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case PDF:
		return "pdf"
	case DOCX:
		return "docx"
	case PlainText:
		return "text"
	default:
		return "auto"
	}
}

// DetectFormat resolves a document format from the source name and, when
// the extension is inconclusive, the leading bytes of the content.
func DetectFormat(source string, data []byte) Format {
	name := source
	if u, err := url.Parse(source); err == nil && u.Path != "" {
		name = u.Path
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".pdf":
		return PDF
	case ".docx":
		return DOCX
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".txt", ".md", ".markdown", ".text":
		return PlainText
	}
	return sniffFormat(data)
}

// sniffFormat inspects magic bytes and markup hints. Unrecognized content
// is treated as plain text, which is the safe default for stylometry.
func sniffFormat(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return PDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return DOCX
	}

	head := strings.ToLower(string(data[:min(len(data), 1024)]))
	if strings.Contains(head, "<!doctype html") || strings.Contains(head, "<html") {
		return HTML
	}
	return PlainText
}

// ToText extracts plain text from a document.
//
// Parameters:
//   - data: the raw document bytes
//   - format: the document format; Auto sniffs from the content
//   - selector: optional CSS selector, honored for HTML only
//   - baseURL: optional source URL for readability context (may be nil)
//
// Returns whitespace-normalized text, or an error when the document
// yields no extractable text.
func ToText(data []byte, format Format, selector string, baseURL *url.URL) (string, error) {
	if format == Auto {
		format = sniffFormat(data)
	}

	var (
		text string
		err  error
	)
	switch format {
	case HTML:
		text, err = htmlToText(data, selector, baseURL)
	case PDF:
		text, err = pdfToText(data)
	case DOCX:
		text, err = docxToText(data)
	default:
		text = string(data)
	}
	if err != nil {
		return "", err
	}

	text = normalizeWhitespace(text)
	if text == "" {
		return "", fmt.Errorf("no text content extracted")
	}
	return text, nil
}

// htmlToText reduces an HTML document to text. A selector takes the text
// of the matching elements; otherwise readability strips boilerplate and
// keeps the main article body.
func htmlToText(data []byte, selector string, baseURL *url.URL) (string, error) {
	if selector != "" {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("parsing HTML: %w", err)
		}

		selection := doc.Find(selector)
		if selection.Length() == 0 {
			return "", fmt.Errorf("no elements match selector %q", selector)
		}

		var parts []string
		selection.Each(func(_ int, s *goquery.Selection) {
			parts = append(parts, s.Text())
		})
		return strings.Join(parts, "\n\n"), nil
	}

	if baseURL == nil {
		baseURL = &url.URL{}
	}
	article, err := readability.FromReader(bytes.NewReader(data), baseURL)
	if err != nil {
		return "", fmt.Errorf("extracting main content: %w", err)
	}
	return article.TextContent, nil
}

func pdfToText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// skip unreadable pages rather than failing the document
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text in PDF")
	}
	return b.String(), nil
}

// docxToText pulls the run text out of word/document.xml, inserting
// newlines at paragraph boundaries.
func docxToText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening DOCX archive: %w", err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("opening document.xml: %w", err)
			}
			xmlData, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("reading document.xml: %w", err)
			}
			break
		}
	}
	if len(xmlData) == 0 {
		return "", fmt.Errorf("word/document.xml not found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "p":
				if b.Len() > 0 {
					b.WriteString("\n")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

// normalizeWhitespace trims each line and collapses runs of blank lines.
func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
