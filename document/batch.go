package document

import (
	"context"
	"errors"
)

// Batch is the outcome of redacting a document set.
type Batch struct {
	// Results holds one entry per successfully redacted document.
	Results []Result

	// Index maps original document names to their redacted names.
	Index map[string]string

	// Skipped lists documents that had nothing to redact.
	Skipped []string
}

// ProcessAll redacts a set of documents in order. A document with nothing to
// redact is skipped and reported, not fatal; any other failure aborts the
// batch. Sequence numbers in redacted names follow document order, so the
// same corpus always produces the same names.
func (p *Processor) ProcessAll(ctx context.Context, docs []Document) (Batch, error) {
	batch := Batch{Index: make(map[string]string, len(docs))}
	for i, doc := range docs {
		result, err := p.process(ctx, doc, i+1)
		if err != nil {
			if errors.Is(err, ErrNoAnnotations) {
				p.cfg.logger.Warn("nothing to redact", "document", doc.Name)
				batch.Skipped = append(batch.Skipped, doc.Name)
				continue
			}
			return Batch{}, err
		}
		batch.Results = append(batch.Results, result)
		batch.Index[doc.Name] = result.RedactedName
	}
	return batch, nil
}
