// Package report renders query results into files using named templates.
//
// A template is a text/template file living in the configured template
// directory. It receives the rows of one or two queries and produces
// markdown; when the requested output name ends in ".html" the markdown is
// converted with goldmark before being written.
package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/yuin/goldmark"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/server/store"
)

// TemplateExt is the required extension for template files.
const TemplateExt = ".md.tmpl"

// Request names the template, the output file and the queries feeding it.
type Request struct {
	Template    string `json:"template"`
	Output      string `json:"output"`
	Query       string `json:"query"`
	DetailQuery string `json:"detail_query,omitempty"`
}

// Data is what a template executes against.
type Data struct {
	GeneratedAt time.Time
	Rows        []map[string]interface{}
	Details     []map[string]interface{}
}

// Generator runs report queries and renders their results.
type Generator struct {
	exec        store.ExecutionStore
	templateDir string
	outputDir   string
}

// NewGenerator creates a Generator reading templates from templateDir and
// writing rendered reports under outputDir.
func NewGenerator(exec store.ExecutionStore, templateDir, outputDir string) *Generator {
	return &Generator{exec: exec, templateDir: templateDir, outputDir: outputDir}
}

// Generate runs the request's queries, renders the named template and writes
// the output file. It returns the path of the written file.
func (g *Generator) Generate(ctx context.Context, req Request) (string, error) {
	if err := validateName(req.Template); err != nil {
		return "", err
	}
	if err := validateName(req.Output); err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Query) == "" {
		return "", apperr.New(apperr.KindWrongEndpoint, "query is required")
	}

	tmplPath := filepath.Join(g.templateDir, req.Template+TemplateExt)
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperr.New(apperr.KindTableNotFound, "Template not found")
		}
		return "", apperr.Wrap(apperr.KindExecutionFailed, "Something went wrong", err)
	}

	data := Data{GeneratedAt: time.Now().UTC()}

	data.Rows, err = g.exec.Query(ctx, req.Query)
	if err != nil {
		return "", err
	}
	if req.DetailQuery != "" {
		data.Details, err = g.exec.Query(ctx, req.DetailQuery)
		if err != nil {
			return "", err
		}
	}

	var markdown bytes.Buffer
	if err := tmpl.Execute(&markdown, data); err != nil {
		return "", apperr.Wrap(apperr.KindExecutionFailed, "Something went wrong", err)
	}

	rendered := markdown.Bytes()
	if strings.HasSuffix(req.Output, ".html") {
		var html bytes.Buffer
		if err := goldmark.Convert(markdown.Bytes(), &html); err != nil {
			return "", apperr.Wrap(apperr.KindExecutionFailed, "Something went wrong", err)
		}
		rendered = html.Bytes()
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", apperr.Wrap(apperr.KindExecutionFailed, "Something went wrong", err)
	}
	outPath := filepath.Join(g.outputDir, req.Output)
	if err := os.WriteFile(outPath, rendered, 0o644); err != nil {
		return "", apperr.Wrap(apperr.KindExecutionFailed, "Something went wrong", err)
	}

	return outPath, nil
}

// validateName rejects names that would escape the configured directories.
func validateName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return apperr.New(apperr.KindWrongEndpoint, fmt.Sprintf("invalid name %q", name))
	}
	return nil
}
