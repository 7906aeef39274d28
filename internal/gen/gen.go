// Package gen renders Go bindings for a parsed TDLib schema.
package gen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/alexbilevskiy/tdapi/internal/tl"
)

const header = "// Code generated by tlgen. DO NOT EDIT."

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Options control code generation.
type Options struct {
	// Package is the name of the generated package. Defaults to "tdapi".
	Package string
}

// File is one generated Go source file.
type File struct {
	Name    string
	Content []byte
}

// Generate renders the bindings for s. Files are gofmt-formatted and returned
// in a stable order.
func Generate(s *tl.Schema, opts Options) ([]File, error) {
	if opts.Package == "" {
		opts.Package = "tdapi"
	}
	m, err := newModel(s, opts)
	if err != nil {
		return nil, err
	}

	var files []File
	for _, name := range []string{"constructors.go", "classes.go", "unmarshaler.go"} {
		f, err := render(name, name+".tmpl", m)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	for _, r := range m.Records {
		data := struct {
			Header  string
			Package string
			Record  *record
		}{m.Header, m.Package, r}
		f, err := render(r.File, "record.go.tmpl", data)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func render(name, tmpl string, data any) (File, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return File{}, fmt.Errorf("render %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return File{}, fmt.Errorf("format %s: %w", name, err)
	}
	return File{Name: name, Content: src}, nil
}

// Write stores files in dir. Previously generated files that are no longer
// produced are removed; hand-written files are left alone.
func Write(dir string, files []File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f.Name] = true
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || keep[e.Name()] || !strings.HasSuffix(e.Name(), ".go") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		generated, err := isGenerated(path)
		if err != nil {
			return err
		}
		if generated {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("remove stale %s: %w", path, err)
			}
		}
	}

	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

func isGenerated(path string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	return bytes.HasPrefix(src, []byte(header)), nil
}
