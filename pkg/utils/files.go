package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/ulikunitz/xz"
)

// LoadFile loads the given file and performs decompression if necessary.
// The compression is asserted from the file extension: .gz, .xz, .zip and
// .7z are decompressed, with archives yielding their first regular file.
// Anything else is returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(strings.ToLower(filepath.Ext(filename)), data)
}

// Decompress decompresses data according to the given file extension.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch ext {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		decoder = r
	case ".xz":
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		decoder = r
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		var files []opener
		for _, f := range zipReader.File {
			files = append(files, archived{f.FileInfo(), f.Open})
		}
		rc, err := openFirst(ext, files)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		var files []opener
		for _, f := range r.File {
			files = append(files, archived{f.FileInfo(), f.Open})
		}
		rc, err := openFirst(ext, files)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	default:
		// return the data as is
		return data, nil
	}

	// read the decompressed data into a byte slice
	return io.ReadAll(decoder)
}

type opener interface {
	FileInfo() os.FileInfo
	Open() (io.ReadCloser, error)
}

type archived struct {
	info os.FileInfo
	open func() (io.ReadCloser, error)
}

func (a archived) FileInfo() os.FileInfo        { return a.info }
func (a archived) Open() (io.ReadCloser, error) { return a.open() }

// openFirst opens the first regular file of an archive.
func openFirst(ext string, files []opener) (io.ReadCloser, error) {
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		return f.Open()
	}
	return nil, fmt.Errorf("utils: %s archive holds no files", ext)
}
