package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/classify"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/manual"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/render"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/source"
)

// Worker turns one queued job into a rendered PDF: read the source
// into manual-convention lines, classify them into a block stream,
// render. Each job is independent; workers share nothing but the
// stats sink.
type Worker struct {
	renderer *render.Renderer
	opts     render.Options
	stats    *RenderStats
	log      *slog.Logger
}

func NewWorker(renderer *render.Renderer, opts render.Options, stats *RenderStats, log *slog.Logger) *Worker {
	return &Worker{
		renderer: renderer,
		opts:     opts,
		stats:    stats,
		log:      log,
	}
}

// Process runs a job to completion, recording progress and failure on
// the job itself.
func (w *Worker) Process(job *Job) {
	job.SetStatus(StatusReading, "reading")

	lines, err := readLines(job.Filename, job.FileData())
	if err != nil {
		w.fail(job, "reading", err)
		return
	}

	job.SetStatus(StatusClassifying, "classifying")
	job.SetProgress(len(lines), 0, 0)

	steps := classify.Scan(lines)
	doc := manual.Document{Title: job.Title, Model: job.Model}
	for _, st := range steps {
		if st.Block != nil {
			doc.Blocks = append(doc.Blocks, *st.Block)
		}
	}
	job.SetProgress(0, len(doc.Blocks), 0)

	job.SetStatus(StatusRendering, "rendering")
	start := time.Now()

	var buf bytes.Buffer
	res, err := w.renderer.Render(doc, w.opts, &buf)
	if err != nil {
		w.fail(job, "rendering", err)
		return
	}
	w.stats.Record(time.Since(start).Milliseconds())

	job.SetPDF(buf.Bytes())
	job.SetProgress(0, 0, res.Pages)
	job.SetStatus(StatusCompleted, "done")

	w.log.Info("manual rendered",
		"job_id", job.ID,
		"model", job.Model,
		"blocks", len(doc.Blocks),
		"pages", res.Pages,
	)
}

func (w *Worker) fail(job *Job, phase string, err error) {
	job.Fail(phase, err.Error())
	w.log.Error("job failed", "job_id", job.ID, "phase", phase, "error", err)
}

func readLines(filename string, data []byte) ([]string, error) {
	reader, err := source.ForFile(filename)
	if err != nil {
		return nil, err
	}
	lines, err := reader.Lines(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return lines, nil
}
