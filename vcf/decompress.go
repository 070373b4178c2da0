package vcf

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// Byte signatures from https://stackoverflow.com/a/19127748/199475
var (
	sigGzip  = []byte{0x1f, 0x8b}
	sigZip   = []byte{0x50, 0x4b, 0x03, 0x04}
	sigXZ    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	sigBZip2 = []byte{0x42, 0x5a, 0x68}
)

// decompressingReader sniffs the leading bytes of f and wraps it in the
// matching decompressor. bgzf-compressed VCFs match the gzip signature
// and are handled by the stdlib gzip reader. Content with no known
// signature is assumed to be an uncompressed VCF.
func decompressingReader(f *os.File) (io.ReadCloser, error) {
	sig := make([]byte, 6)
	n, err := io.ReadFull(f, sig)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	sig = sig[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(sig, sigGzip):
		return gzip.NewReader(f)
	case bytes.HasPrefix(sig, sigZip):
		zr := zipstream.NewReader(f)
		// Position on the archive's first entry; a zipped VCF holds
		// one file.
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		return &readCloserFaker{zr}, nil
	case bytes.HasPrefix(sig, sigXZ):
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		return &readCloserFaker{reader}, nil
	case bytes.HasPrefix(sig, sigBZip2):
		return &readCloserFaker{bzip2.NewReader(f)}, nil
	case isZlib(sig):
		return zlib.NewReader(f)
	}

	return &readCloserFaker{f}, nil
}

// isZlib reports whether sig opens a zlib stream: the deflate method in
// the CMF byte and a valid FCHECK checksum across CMF and FLG. zlib has
// no fixed magic bytes, so this runs after the fixed-signature formats.
func isZlib(sig []byte) bool {
	if len(sig) < 2 {
		return false
	}
	if sig[0]&0x0f != 8 {
		return false
	}

	return (uint32(sig[0])<<8|uint32(sig[1]))%31 == 0
}

// readCloserFaker "upgrades" readers that don't need to be closed
type readCloserFaker struct {
	io.Reader
}

func (c *readCloserFaker) Close() error {
	return nil
}
