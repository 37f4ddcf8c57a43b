package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/processing"
)

// JSONResult represents one analysed record in JSON format.
type JSONResult struct {
	File  string `json:"file,omitempty"`
	Line  int    `json:"line,omitempty"`
	Index int    `json:"index"`
	Key   string `json:"key,omitempty"`
	*processing.Analysis
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts an analysis to its JSON form.
func ResultToJSON(rec processing.Record, a *processing.Analysis, cfg *config.OutputConfig) *JSONResult {
	jr := &JSONResult{
		File:     rec.File,
		Line:     rec.Line,
		Index:    rec.Index,
		Analysis: a,
	}
	if cfg.ShowKey {
		jr.Key = fmt.Sprintf("%016x", a.Key)
	}
	return jr
}

// JSONWriter writes results in JSON format. With an indent it buffers
// results and writes them as one document on Close or Flush; without one
// it writes a document per line as results arrive.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	results []*JSONResult
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

func (jw *JSONWriter) streaming() bool {
	return jw.cfg.Indent == ""
}

// WriteResult buffers a result (or writes it immediately when streaming).
func (jw *JSONWriter) WriteResult(rec processing.Record, a *processing.Analysis) error {
	jr := ResultToJSON(rec, a, jw.cfg)
	if jw.streaming() {
		return json.NewEncoder(jw.w).Encode(jr)
	}
	jw.results = append(jw.results, jr)
	return nil
}

// Flush writes all buffered results as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.streaming() || len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", jw.cfg.Indent)
	err := enc.Encode(&JSONOutput{Results: jw.results})

	jw.results = jw.results[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
