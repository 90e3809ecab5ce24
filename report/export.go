package report

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/pkmeans"
	"github.com/hupe1980/pkmeans/codec"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm applied to an export.
type CompressionType uint8

const (
	// CompressionNone writes the document as is.
	CompressionNone CompressionType = 0
	// CompressionLZ4 writes an LZ4 frame (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD writes a Zstandard frame (better ratio).
	CompressionZSTD CompressionType = 2
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// ParseCompression maps "none", "lz4" and "zstd" to a CompressionType.
func ParseCompression(s string) (CompressionType, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd", "zst":
		return CompressionZSTD, nil
	default:
		return CompressionNone, fmt.Errorf("unknown compression %q", s)
	}
}

// CompressionForPath picks the compression from a file extension
// (".lz4", ".zst"/".zstd"), defaulting to none.
func CompressionForPath(path string) CompressionType {
	switch {
	case strings.HasSuffix(path, ".lz4"):
		return CompressionLZ4
	case strings.HasSuffix(path, ".zst"), strings.HasSuffix(path, ".zstd"):
		return CompressionZSTD
	default:
		return CompressionNone
	}
}

var (
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ErrUnknownCodec is returned by Load when the export names a codec that is
// not built in.
var ErrUnknownCodec = errors.New("unknown codec")

// Document is the exported form of a clustering result.
type Document struct {
	Iterations int          `json:"iterations"`
	Converged  bool         `json:"converged"`
	State      string       `json:"state"`
	InitMicros int64        `json:"init_us"`
	LoopMicros int64        `json:"loop_us"`
	Clusters   []ClusterDoc `json:"clusters"`
}

// ClusterDoc is one cluster of a Document.
type ClusterDoc struct {
	ID       int         `json:"id"`
	Centroid []float64   `json:"centroid"`
	Members  []MemberDoc `json:"members"`
}

// MemberDoc is one member point of a ClusterDoc.
type MemberDoc struct {
	ID     int       `json:"id"`
	Label  string    `json:"label,omitempty"`
	Coords []float64 `json:"coords"`
}

// NewDocument builds the exported form of res.
func NewDocument(res *pkmeans.Result, points []*pkmeans.Point) *Document {
	byID := indexPoints(points)
	doc := &Document{
		Iterations: res.Iterations,
		Converged:  res.Converged(),
		State:      res.State.String(),
		InitMicros: res.InitDuration.Microseconds(),
		LoopMicros: res.LoopDuration.Microseconds(),
		Clusters:   make([]ClusterDoc, len(res.Clusters)),
	}
	for i, c := range res.Clusters {
		cd := ClusterDoc{
			ID:       c.ID,
			Centroid: c.Centroid,
			Members:  make([]MemberDoc, 0, len(c.Members)),
		}
		for _, id := range c.Members {
			m := MemberDoc{ID: id}
			if p, ok := byID[id]; ok {
				m.Label = p.Label()
				m.Coords = p.Coords()
			}
			cd.Members = append(cd.Members, m)
		}
		doc.Clusters[i] = cd
	}
	return doc
}

type exportOptions struct {
	codec       codec.Codec
	compression CompressionType
}

// ExportOption configures Export.
type ExportOption func(*exportOptions)

// WithCodec configures the codec used for the document.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) ExportOption {
	return func(o *exportOptions) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the compression Export applies.
// Load detects the compression on its own.
func WithCompression(c CompressionType) ExportOption {
	return func(o *exportOptions) {
		o.compression = c
	}
}

// Export writes res as a Document. The codec name is written on the first
// line, followed by the encoded document; the whole stream is then
// compressed as configured.
func Export(w io.Writer, res *pkmeans.Result, points []*pkmeans.Point, optFns ...ExportOption) error {
	opts := exportOptions{codec: codec.Default}
	for _, fn := range optFns {
		fn(&opts)
	}

	data, err := opts.codec.Marshal(NewDocument(res, points))
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(opts.codec.Name()) + 1 + len(data))
	buf.WriteString(opts.codec.Name())
	buf.WriteByte('\n')
	buf.Write(data)

	switch opts.compression {
	case CompressionNone:
		_, err = w.Write(buf.Bytes())
		return err
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if _, err := zw.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("lz4 compress: %w", err)
		}
		return zw.Close()
	case CompressionZSTD:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("zstd compress: %w", err)
		}
		if _, err := zw.Write(buf.Bytes()); err != nil {
			zw.Close()
			return fmt.Errorf("zstd compress: %w", err)
		}
		return zw.Close()
	default:
		return fmt.Errorf("unsupported compression: %v", opts.compression)
	}
}

// Load reads a Document written by Export, detecting the compression from
// the frame magic and the codec from the first line.
func Load(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	var src io.Reader = br
	switch {
	case bytes.Equal(magic, lz4Magic):
		src = lz4.NewReader(br)
	case bytes.Equal(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		defer dec.Close()
		src = dec
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	name, payload, ok := bytes.Cut(data, []byte{'\n'})
	if !ok {
		return nil, fmt.Errorf("%w: missing codec header", ErrUnknownCodec)
	}
	c, ok := codec.ByName(string(name))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	var doc Document
	if err := c.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	return &doc, nil
}
