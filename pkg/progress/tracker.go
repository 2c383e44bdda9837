package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// Tracker reports per-file progress for one pack or unpack run.
// A nil *Tracker is valid and reports nothing.
type Tracker struct {
	out        io.Writer
	header     string
	indent     string
	totalFiles int
	totalBytes uint64
	files      int
	bytes      uint64
	startTime  time.Time
	running    bool
}

// New creates a tracker writing progress lines to out
func New(out io.Writer) *Tracker {
	return NewWithHeader(out, "Processing %d files.")
}

// NewWithHeader creates a tracker whose Init line is header formatted
// with the number of files
func NewWithHeader(out io.Writer, header string) *Tracker {
	return &Tracker{out: out, header: header, indent: "   "}
}

// Init starts a run over totalFiles files holding totalBytes bytes
func (t *Tracker) Init(totalFiles int, totalBytes uint64) {
	if t == nil {
		return
	}
	t.totalFiles = totalFiles
	t.totalBytes = totalBytes
	t.files = 0
	t.bytes = 0
	t.startTime = time.Now()
	t.running = true
	fmt.Fprintf(t.out, t.header+"\n", totalFiles)
}

// File records one processed file and prints it as "path (Type)".
// Its bytes are counted separately through AddBytes or a Writer.
func (t *Tracker) File(path string, kind fmt.Stringer) {
	if t == nil {
		return
	}
	t.files++
	fmt.Fprintf(t.out, "%s%s (%s)\n", t.indent, path, kind)
}

// AddBytes adds processed bytes to the counter
func (t *Tracker) AddBytes(n uint64) {
	if t == nil || n == 0 {
		return
	}
	t.bytes += n
}

// Stop ends the run and prints a summary line
func (t *Tracker) Stop() {
	if t == nil || !t.running {
		return
	}
	t.running = false

	totalTime := time.Since(t.startTime).Seconds()
	if totalTime < 0.001 {
		totalTime = 0.001 // Avoid division by zero
	}
	fmt.Fprintf(t.out, "Completed %d of %d files, %s (%.0f%%) in %.1f seconds (avg rate: %s)\n",
		t.files, t.totalFiles, formatSize(t.bytes), t.Percent(), totalTime,
		formatRate(uint64(float64(t.bytes)/totalTime)))
}

// Files returns the number of files recorded so far
func (t *Tracker) Files() int {
	if t == nil {
		return 0
	}
	return t.files
}

// Bytes returns the number of bytes recorded so far
func (t *Tracker) Bytes() uint64 {
	if t == nil {
		return 0
	}
	return t.bytes
}

// Percent returns how much of the announced total has been processed
func (t *Tracker) Percent() float64 {
	if t == nil || t.totalBytes == 0 {
		return 100
	}
	return float64(t.bytes) / float64(t.totalBytes) * 100
}

// formatSize returns a human-readable size string
func formatSize(bytes uint64) string {
	return humanize.IBytes(bytes)
}

// formatRate returns a human-readable rate string
func formatRate(bytesPerSec uint64) string {
	return humanize.IBytes(bytesPerSec) + "/s"
}

// Writer is a writer that tracks bytes written for progress reporting
type Writer struct {
	W       io.Writer
	Tracker *Tracker
}

// Write implements io.Writer and tracks bytes written
func (pw *Writer) Write(p []byte) (n int, err error) {
	n, err = pw.W.Write(p)
	if err == nil && n > 0 {
		pw.Tracker.AddBytes(uint64(n))
	}
	return
}
