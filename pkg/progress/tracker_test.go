package progress

import (
	"bytes"
	"strings"
	"testing"
)

type kind string

func (k kind) String() string { return string(k) }

func TestTracker(t *testing.T) {
	var out bytes.Buffer
	tr := New(&out)
	tr.Init(2, 3*1024)
	tr.File("a.png", kind("Texture"))
	tr.AddBytes(1024)
	tr.File("b.box", kind("Box"))
	tr.AddBytes(2048)
	tr.Stop()
	tr.Stop() // second Stop is a no-op

	if tr.Files() != 2 || tr.Bytes() != 3072 {
		t.Fatalf("Tracker counted %d files, %d bytes", tr.Files(), tr.Bytes())
	}
	if p := tr.Percent(); p != 100 {
		t.Fatalf("Percent = %v, want 100", p)
	}

	got := out.String()
	for _, want := range []string{
		"Processing 2 files.\n",
		"   a.png (Texture)\n",
		"   b.box (Box)\n",
		"Completed 2 of 2 files, 3.0 KiB (100%)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Output missing %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "Completed"); n != 1 {
		t.Errorf("Summary printed %d times", n)
	}
}

func TestNilTracker(t *testing.T) {
	var tr *Tracker
	tr.Init(1, 1)
	tr.File("x", kind("Box"))
	tr.AddBytes(10)
	tr.Stop()
	if tr.Files() != 0 || tr.Bytes() != 0 {
		t.Fatalf("Nil tracker reported progress")
	}

	var buf bytes.Buffer
	w := &Writer{W: &buf}
	if _, err := w.Write([]byte("abc")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.String() != "abc" {
		t.Fatalf("Writer passed through %q", buf.String())
	}
}

func TestWriterCountsBytes(t *testing.T) {
	var out, sink bytes.Buffer
	tr := New(&out)
	tr.Init(1, 4)
	w := &Writer{W: &sink, Tracker: tr}
	w.Write([]byte("ab"))
	w.Write([]byte("cd"))
	if tr.Bytes() != 4 {
		t.Fatalf("Writer counted %d bytes, want 4", tr.Bytes())
	}
}

func TestFormatSize(t *testing.T) {
	tests := map[uint64]string{
		0:           "0 B",
		1023:        "1023 B",
		1536:        "1.5 KiB",
		5 * 1 << 20: "5.0 MiB",
	}
	for in, want := range tests {
		if got := formatSize(in); got != want {
			t.Errorf("formatSize(%d) = %q, want %q", in, got, want)
		}
	}
	if got := formatRate(2048); got != "2.0 KiB/s" {
		t.Errorf("formatRate(2048) = %q", got)
	}
}

func TestTrackerHeaderAndPercent(t *testing.T) {
	var out bytes.Buffer
	tr := NewWithHeader(&out, "Unzipping %d files.")
	tr.Init(4, 1000)
	tr.File("a.box", kind("Box"))
	tr.AddBytes(250)
	if p := tr.Percent(); p != 25 {
		t.Fatalf("Percent = %v, want 25", p)
	}
	tr.Stop()

	got := out.String()
	if !strings.HasPrefix(got, "Unzipping 4 files.\n") {
		t.Fatalf("Unexpected header:\n%s", got)
	}
	if !strings.Contains(got, "Completed 1 of 4 files, 250 B (25%)") {
		t.Fatalf("Summary does not report the percentage:\n%s", got)
	}
}
