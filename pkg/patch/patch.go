package patch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kpango/glg"

	"github.com/gucio321/sm2lbpp/pkg/diag"
	"github.com/gucio321/sm2lbpp/pkg/gcb"
)

// ThumbnailPrefix starts the value of the thumbnail line.
const ThumbnailPrefix = "data:image/png;base64,"

// Plan tells Rewrite where the new lines go.
type Plan struct {
	// Header is the first line of the new file (without terminator).
	Header string
	// Line spans the original file_total_lines line, terminator included.
	// An invalid token means there is none; a zero length means it runs to the end of input.
	Line gcb.Token
	// TotalLines is written as the new file_total_lines value.
	TotalLines int
}

// Write writes the patched version of src to w:
// header, src up to the key line, the new key line, the thumbnail line
// and the rest of src.
func Write(w io.Writer, src []byte, plan Plan, png []byte) error {
	bw := bufio.NewWriter(w)

	head, tail := src[:0], src
	if plan.Line.Valid() {
		end := plan.Line.End()
		if plan.Line.Length == 0 {
			end = len(src)
		}

		head, tail = src[:plan.Line.Offset], src[end:]
	}

	// 1.0: header and everything before the key line
	fmt.Fprintf(bw, ";%s\n", plan.Header)
	bw.Write(head)

	// 1.1: corrected line count
	if plan.Line.Valid() {
		fmt.Fprintf(bw, "%s\n", gcb.Meta(gcb.KeyTotalLines, plan.TotalLines))
	}

	// 1.2: thumbnail
	fmt.Fprintf(bw, "%s", gcb.Meta(gcb.KeyThumbnail, ThumbnailPrefix))
	if err := WriteBase64(bw, png); err != nil {
		return err
	}

	bw.WriteByte('\n')

	// 1.3: the rest, untouched
	bw.Write(tail)

	return bw.Flush()
}

// Rewrite replaces the file at path with the patched src.
// The new content goes to a temporary file in the same directory first,
// so the original stays intact if anything fails.
func Rewrite(path string, src []byte, plan Plan, png []byte) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", diag.ErrFileCreate, err)
	}

	defer func() {
		if err == nil {
			return
		}

		tmp.Close()

		if rmErr := os.Remove(tmp.Name()); rmErr != nil {
			glg.Warnf("cannot remove %s: %v", tmp.Name(), rmErr)
		}
	}()

	if err := Write(tmp, src, plan, png); err != nil {
		return fmt.Errorf("%w: %v", diag.ErrFileWrite, err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %v", diag.ErrFileWrite, err)
	}

	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: %v", diag.ErrFileWrite, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", diag.ErrFileWrite, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", diag.ErrFileWrite, err)
	}

	glg.Debugf("%s rewritten", path)

	return nil
}
