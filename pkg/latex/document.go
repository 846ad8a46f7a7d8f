package latex

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/ikreport/pkg/errors"
)

// Ext is the file extension of LaTeX sources.
const Ext = ".tex"

var (
	//go:embed templates/preamble.tex
	defaultPreamble string

	//go:embed templates/close.tex
	defaultClose string
)

// sectionSeparator precedes every section in the output.
const sectionSeparator = "\n\n\n"

// Document is a LaTeX source file under construction.
// The zero value is not usable; use NewDocument.
type Document struct {
	// Filename is where Save writes the document. It always ends in .tex.
	Filename string

	preamble []string
	sections [][]string
	close    []string
}

// NewDocument creates a document with the default preamble and closing
// lines. The .tex extension is appended to name unless already present.
func NewDocument(name string) *Document {
	return &Document{
		Filename: TexName(name),
		preamble: SplitLines(defaultPreamble),
		close:    SplitLines(defaultClose),
	}
}

// TexName appends the .tex extension to name unless already present.
func TexName(name string) string {
	if strings.HasSuffix(name, Ext) {
		return name
	}
	return name + Ext
}

// LoadTemplates replaces the preamble and closing lines with the contents of
// the given files. Empty paths keep the current lines.
func (d *Document) LoadTemplates(preamblePath, closePath string) error {
	if preamblePath != "" {
		lines, err := readLines(preamblePath)
		if err != nil {
			return err
		}
		d.preamble = lines
	}
	if closePath != "" {
		lines, err := readLines(closePath)
		if err != nil {
			return err
		}
		d.close = lines
	}
	return nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeTemplateNotFound, err, "template %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SetPreamble replaces the preamble.
func (d *Document) SetPreamble(text string) { d.preamble = SplitLines(text) }

// SetClose replaces the closing lines.
func (d *Document) SetClose(text string) { d.close = SplitLines(text) }

// SetTitle appends a centered, unnumbered title to the preamble.
func (d *Document) SetTitle(title string) {
	d.preamble = append(d.preamble, "", `\begin{center} \section*{`+title+`} \end{center}`)
}

// AddSection appends a section given as text.
func (d *Document) AddSection(text string) {
	d.sections = append(d.sections, SplitLines(text))
}

// SectionCount returns the number of sections added so far.
func (d *Document) SectionCount() int { return len(d.sections) }

// WriteTo writes the document to w: the preamble, each section preceded by
// blank lines, then the closing lines.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	writeLines(cw, d.preamble)
	for _, s := range d.sections {
		io.WriteString(cw, sectionSeparator)
		writeLines(cw, s)
	}
	writeLines(cw, d.close)
	return cw.n, cw.err
}

// Bytes returns the rendered document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.WriteTo(&buf) // bytes.Buffer writes never fail
	return buf.Bytes()
}

// Save writes the document to its Filename, creating the parent directory.
func (d *Document) Save() error {
	return WriteFile(d.Filename, d.Bytes())
}

// WriteFile writes data to path, creating the parent directory if needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(errors.ErrCodeWrite, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "write %s", path)
	}
	return nil
}

// CopyFile copies src to dst, replacing dst.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", src)
	}
	return WriteFile(dst, data)
}

// SplitLines splits text into lines without their terminators.
// A trailing newline does not produce an empty last line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func writeLines(w io.Writer, lines []string) {
	for _, l := range lines {
		io.WriteString(w, l)
		io.WriteString(w, "\n")
	}
}

// countingWriter counts bytes and keeps the first error; later writes are
// dropped.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
