package document

import (
	"context"
	"fmt"
	"os"

	"github.com/roach88/doxec/internal/engine"
	"github.com/roach88/doxec/internal/markdown"
	"github.com/roach88/doxec/internal/ops"
)

// Document is one parsed documentation file and its ordered
// operations.
type Document struct {
	Path    string
	Entries []engine.Entry
}

// Parse extracts all operations from src. The path is carried along
// for reporting only. Lines whose command keyword is not in the
// registry are dropped without error.
func Parse(path, src string, reg *ops.Registry) *Document {
	doc := &Document{Path: path}
	scanner := markdown.NewScanner(markdown.SplitLines(src))
	for {
		m, ok := scanner.Next()
		if !ok {
			break
		}
		op, known := reg.Build(m.Command, m.Argument, m.Content)
		if !known {
			continue
		}
		doc.Entries = append(doc.Entries, engine.Entry{Line: m.Line, Op: op})
	}
	return doc
}

// Load reads the file at path and parses it.
func Load(path string, reg *ops.Registry) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return Parse(path, string(data), reg), nil
}

// Run executes the document's operations in order through the engine.
func (d *Document) Run(ctx context.Context, eng *engine.Engine) (engine.Result, error) {
	return eng.Run(ctx, d.Entries)
}
