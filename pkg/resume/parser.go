package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")

// ImportSourceText extracts plain text from an existing resume file so it can
// seed the background narrative of a new profile. Supports .pdf and .docx.
func ImportSourceText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return importPDFText(data)
	case ".docx":
		return importDocxText(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func importPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return collapseWhitespace(buf.String()), nil
}

var xmlTags = regexp.MustCompile(`<[^>]+>`)

// importDocxText pulls word/document.xml out of the docx zip and strips the
// markup. Naive, but good enough to seed a narrative.
func importDocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		doc := string(raw)
		doc = strings.ReplaceAll(doc, "</w:p>", "\n")
		doc = strings.ReplaceAll(doc, "<w:tab/>", "\t")
		return collapseWhitespace(xmlTags.ReplaceAllString(doc, " ")), nil
	}
	return "", errors.New("no document.xml found in docx")
}

var (
	horizontalSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns     = regexp.MustCompile(`\n+`)
)

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = horizontalSpace.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
