// Package sm2lbpp adds a preview thumbnail to G-code written by LightBurn
// for the Snapmaker 2.0.
package sm2lbpp

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/kpango/glg"

	"github.com/gucio321/sm2lbpp/pkg/diag"
	"github.com/gucio321/sm2lbpp/pkg/gcb"
	"github.com/gucio321/sm2lbpp/pkg/geometry"
	"github.com/gucio321/sm2lbpp/pkg/motion"
	"github.com/gucio321/sm2lbpp/pkg/patch"
	"github.com/gucio321/sm2lbpp/pkg/profile"
	"github.com/gucio321/sm2lbpp/pkg/render"
)

// Processor post-processes G-code files.
type Processor struct {
	profile  *profile.Profile
	renderer *render.Renderer
	sink     diag.Sink
	dumpSVG  string
	trace    bool
}

// NewProcessor creates a Processor for the given profile.
func NewProcessor(p *profile.Profile) (*Processor, error) {
	renderer, err := render.New(p)
	if err != nil {
		return nil, err
	}

	return &Processor{
		profile:  p,
		renderer: renderer,
		sink:     diag.LogSink{},
	}, nil
}

// Sink sets where diagnostics go (glg by default).
func (p *Processor) Sink(sink diag.Sink) *Processor {
	p.sink = sink
	return p
}

// Rasterizer overrides the rasterizer of the profile.
func (p *Processor) Rasterizer(r render.Rasterizer) *Processor {
	p.renderer.SetRasterizer(r)
	return p
}

// DumpSVG writes the laid out shape of every processed file to dir.
func (p *Processor) DumpSVG(dir string) *Processor {
	p.dumpSVG = dir
	return p
}

// Trace logs the scanner's progress at debug level.
func (p *Processor) Trace(trace bool) *Processor {
	p.trace = trace
	return p
}

// ProcessFile adds a preview to the file at path.
// Fatal errors are reported to the sink once and returned;
// a warning the sink aborts on returns diag.ErrAborted.
func (p *Processor) ProcessFile(path string) (status Status, err error) {
	line := 0

	defer func() {
		if err == nil || errors.Is(err, diag.ErrAborted) {
			return
		}

		if msg, ok := diag.MessageFor(err); ok {
			p.sink.Report(msg, path, line)
		} else {
			glg.Errorf("%s: %v", path, err)
		}
	}()

	// 1.0: read
	data, err := readFile(path)
	if err != nil {
		return status, err
	}

	if len(data) == 0 {
		glg.Infof("%s is empty", path)
		return StatusEmpty, nil
	}

	// 1.1: interpret
	style, err := p.profile.Style()
	if err != nil {
		return status, err
	}

	interp := motion.New(p.profile.MaxPoints, style)

	res, err := gcb.Scan(data, interp, gcb.WithTrace(p.trace))
	if err != nil {
		var lineErr *gcb.LineError
		if errors.As(err, &lineErr) {
			line = lineErr.Line
		}

		return status, err
	}

	if res.AlreadyProcessed() {
		glg.Infof("%s: already processed (%s found)", path, res.Stop)
		return StatusAlreadyProcessed, nil
	}

	if err := p.checkTotalLines(path, res); err != nil {
		return status, err
	}

	shape, drawn, err := interp.Finish()
	if err != nil {
		return status, err
	}

	// 1.2: draw
	img, frame, err := p.render(shape, drawn)
	if err != nil {
		return status, err
	}

	if p.dumpSVG != "" {
		p.writeSVG(path, shape, frame)
	}

	png, err := render.EncodePNG(img)
	if err != nil {
		return status, err
	}

	// 1.3: write
	plan := patch.Plan{
		Header:     Header(),
		Line:       res.TotalLinesLine,
		TotalLines: res.Lines + 2,
	}

	if err := patch.Rewrite(path, data, plan, png); err != nil {
		return status, err
	}

	glg.Infof("%s: %d paths, %d lines, preview of %d bytes added", path, len(shape.Paths), res.Lines, len(png))

	return StatusRewritten, nil
}

// Preview renders data without touching any file.
// Files that already carry a preview are drawn as well.
func (p *Processor) Preview(data []byte) (*image.NRGBA, error) {
	style, err := p.profile.Style()
	if err != nil {
		return nil, err
	}

	interp := motion.New(p.profile.MaxPoints, style)
	if _, err := gcb.Scan(data, interp, gcb.WithTrace(p.trace), gcb.WithKeepGoing(true)); err != nil {
		return nil, err
	}

	shape, drawn, err := interp.Finish()
	if err != nil {
		return nil, err
	}

	img, _, err := p.render(shape, drawn)

	return img, err
}

func (p *Processor) render(shape *geometry.Shape, drawn geometry.Bounds) (*image.NRGBA, geometry.Frame, error) {
	frame, _ := geometry.Normalize(shape, drawn, p.profile.Border(), p.profile.Canvas())

	img, err := p.renderer.Render(shape, frame)
	if err != nil {
		// the rasterizer has no failure mode besides running out of resources
		return nil, frame, fmt.Errorf("%w: %v", diag.ErrNoMemory, err)
	}

	return img, frame, nil
}

// checkTotalLines reports missing or broken file_total_lines metadata.
func (p *Processor) checkTotalLines(path string, res *gcb.Result) error {
	warn := func(msg diag.Message, line int) error {
		if p.sink.Report(msg, path, line) == diag.Abort {
			return fmt.Errorf("%w: %s", diag.ErrAborted, msg.Text())
		}

		return nil
	}

	if !res.TotalLinesLine.Valid() {
		return warn(diag.MsgNoTotalLines, 0)
	}

	if !res.TotalLines.Valid() || res.TotalLines.Length == 0 {
		if err := warn(diag.MsgNoTotalLines, res.TotalLinesKeyLine); err != nil {
			return err
		}
	}

	if res.TotalLinesLine.Length == 0 {
		return warn(diag.MsgNoTotalLinesLine, res.TotalLinesKeyLine)
	}

	return nil
}

func (p *Processor) writeSVG(path string, shape *geometry.Shape, frame geometry.Frame) {
	out := filepath.Join(p.dumpSVG, filepath.Base(path)+".svg")

	var buf bytes.Buffer
	if err := render.WriteSVG(&buf, shape, frame); err != nil {
		glg.Warnf("cannot build svg for %s: %v", path, err)
		return
	}

	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		glg.Warnf("cannot write %s: %v", out, err)
		return
	}

	glg.Debugf("shape written to %s", out)
}

func readFile(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", diag.ErrFileNotFound, err)
		}

		return nil, fmt.Errorf("%w: %v", diag.ErrFileOpen, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", diag.ErrFileOpen, err)
	}

	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", diag.ErrFileRead, err)
	}

	return data, nil
}
