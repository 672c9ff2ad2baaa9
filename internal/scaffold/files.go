package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/modu-ai/modularizer/internal/defs"
	"github.com/modu-ai/modularizer/internal/template"
)

// WrittenFile records one generated file.
type WrittenFile struct {
	Path        string
	Overwritten bool
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeFile writes content to path, replacing any existing file.
func writeFile(path string, content []byte) (WrittenFile, error) {
	res := WrittenFile{Path: path}
	if _, err := os.Stat(path); err == nil {
		res.Overwritten = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return res, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, defs.FilePerm); err != nil {
		return res, fmt.Errorf("write %s: %w", path, err)
	}
	return res, nil
}

// WriteService renders the CRUD service and writes it to the module's
// services directory.
func WriteService(r template.Renderer, m Module, tmplCtx *template.TemplateContext) (WrittenFile, error) {
	content, err := template.RenderService(r, tmplCtx)
	if err != nil {
		return WrittenFile{}, fmt.Errorf("render service: %w", err)
	}
	return writeFile(m.ServiceFile(), content)
}

// WriteModels renders the model file and the models index barrel and
// writes both. Results for files written before a failure are returned.
func WriteModels(r template.Renderer, m Module, tmplCtx *template.TemplateContext) ([]WrittenFile, error) {
	model, err := template.RenderModel(r, tmplCtx)
	if err != nil {
		return nil, fmt.Errorf("render model: %w", err)
	}
	index, err := template.RenderIndex(r, tmplCtx)
	if err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}

	var results []WrittenFile
	res, err := writeFile(m.ModelFile(), model)
	if err != nil {
		return results, err
	}
	results = append(results, res)

	res, err = writeFile(m.IndexFile(), index)
	if err != nil {
		return results, err
	}
	return append(results, res), nil
}
