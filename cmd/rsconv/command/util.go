package command

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/compress"
	"github.com/arloliu/rsconv/format"
	"github.com/arloliu/rsconv/internal/log"
)

const decompressAuto = "auto"

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open input file '%s'", path)
	}

	return data, nil
}

// readBinary reads a binary image, decompressing it as requested. mode is
// "auto" or a compression name.
func readBinary(path string, mode string) ([]byte, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	if mode == decompressAuto {
		out, ct, err := compress.DecompressAuto(data)
		if err != nil {
			return nil, errors.Wrapf(err, "input file '%s'", path)
		}
		if ct != format.CompressionNone {
			log.Debug("decompressed input", log.Fields{"file": path, "compression": ct.String(), "bytes": len(out)})
		}

		return out, nil
	}

	codec, ct, err := compress.CodecByName(mode)
	if err != nil {
		return nil, err
	}
	out, err := codec.Decompress(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s decompression of '%s'", ct, path)
	}

	return out, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := io.Copy(stdout, bytes.NewReader(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "cannot open output file '%s'", path)
	}

	return nil
}
