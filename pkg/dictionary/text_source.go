package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// DefaultMmapThreshold is the file size above which TextSource memory-maps
// the dictionary file instead of buffering it.
const DefaultMmapThreshold = 8 << 20 // 8 MiB

// TextSource reads dictionary or bigram rows from a flat file. Files larger
// than mmapThreshold are memory-mapped so the whole corpus never has to sit
// buffered in the Go heap at once; smaller files are simply buffered.
type TextSource struct {
	r      io.Reader
	region mmap.MMap
	file   *os.File
}

// NewTextSource opens path and prepares it for streaming. A non-positive
// mmapThreshold disables memory-mapping entirely.
func NewTextSource(path string, mmapThreshold int64) (*TextSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("dictionary: stat %s: %w", path, err)
	}

	if mmapThreshold > 0 && info.Size() > mmapThreshold {
		region, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("dictionary: mmap %s: %w", path, err)
		}
		return &TextSource{r: bytes.NewReader(region), region: region, file: f}, nil
	}

	return &TextSource{r: bufio.NewReader(f), file: f}, nil
}

func (t *TextSource) Read(p []byte) (int, error) {
	return t.r.Read(p)
}

// Close releases the underlying file and, if the file was memory-mapped,
// unmaps it first.
func (t *TextSource) Close() error {
	if t.region != nil {
		if err := t.region.Unmap(); err != nil {
			t.file.Close()
			return fmt.Errorf("dictionary: unmap: %w", err)
		}
	}
	return t.file.Close()
}
