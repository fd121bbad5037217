package ui

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/campfire/webgate/internal/log"
)

var (
	//go:embed all:templates
	templatesFS embed.FS
)

// tplRenderer renders the embedded page templates.
type tplRenderer struct {
	logger log.Logger
	tpls   *template.Template

	// Available on all templates as `Common.{KEY}`.
	CommonData map[string]any
}

var allowedTemplateExtensions = map[string]struct{}{
	".html": {},
	".tpl":  {},
	".tmpl": {},
}

func newTplRenderer(logger log.Logger) (*tplRenderer, error) {
	templatePaths := []string{}
	err := fs.WalkDir(templatesFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		extension := strings.ToLower(filepath.Ext(path))
		if _, ok := allowedTemplateExtensions[extension]; ok {
			templatePaths = append(templatePaths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not discover template paths: %w", err)
	}

	templates, err := template.New("base").ParseFS(templatesFS, templatePaths...)
	if err != nil {
		return nil, fmt.Errorf("could not parse templates: %w", err)
	}

	return &tplRenderer{
		logger: logger,
		tpls:   templates,
		CommonData: map[string]any{
			"Title":   "Home",
			"HomeURL": URLPathHome,
		},
	}, nil
}

func (t *tplRenderer) Render(ctx context.Context, tplName string, data any) ([]byte, error) {
	d := struct {
		Common map[string]any
		Data   any
	}{
		Common: t.CommonData,
		Data:   data,
	}

	var b bytes.Buffer
	err := t.tpls.ExecuteTemplate(&b, tplName, d)
	if err != nil {
		t.logger.WithCtxValues(ctx).Errorf("Could not render %q template: %s", tplName, err)
		return nil, fmt.Errorf("could not render template: %w", err)
	}

	return b.Bytes(), nil
}
