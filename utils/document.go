package utils

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"
)

// ReadInput reads r to EOF.
func ReadInput(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadFile loads the whole file at path into memory. Files ending in .gz
// are decompressed. If progress is non-nil a byte progress bar is drawn on it.
func ReadFile(path string, progress io.Writer) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if progress != nil {
		fi, err := f.Stat()
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		bar := pb.New64(fi.Size()).SetTemplate(pb.Full).Set(pb.Bytes, true).SetWriter(progress).Start()
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("gunzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	text, err := ReadInput(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return text, nil
}
