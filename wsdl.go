// Package wsdl reads and writes WSDL 1.1 service descriptions, embedded XML
// Schemas included, as a typed object graph. Unknown content is kept so that
// a document read and written back carries the same information.
package wsdl

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jacoelho/wsdl/xsd"
)

// Read decodes a service description with default options.
func Read(r io.Reader) (*ServiceDescription, error) {
	return ReadWithOptions(r, NewReadOptions())
}

// ReadWithOptions decodes a service description with explicit configuration.
func ReadWithOptions(r io.Reader, opts ReadOptions) (*ServiceDescription, error) {
	if r == nil {
		return nil, fmt.Errorf("read service description: nil reader")
	}
	dec, err := NewReader(r, opts)
	if err != nil {
		return nil, err
	}
	return dec.ReadServiceDescription()
}

// ReadFS decodes the service description at location in fsys.
func ReadFS(fsys fs.FS, location string, opts ReadOptions) (sd *ServiceDescription, err error) {
	if fsys == nil {
		return nil, fmt.Errorf("read service description: nil fs")
	}
	f, err := fsys.Open(location)
	if err != nil {
		return nil, fmt.Errorf("open wsdl file %s: %w", location, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close wsdl file %s: %w", location, closeErr)
		}
	}()

	return ReadWithOptions(f, opts)
}

// ReadFile decodes a service description from a file path.
func ReadFile(path string) (*ServiceDescription, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	return ReadFS(os.DirFS(dir), base, NewReadOptions())
}

// Write encodes sd with default options.
func Write(w io.Writer, sd *ServiceDescription) error {
	return WriteWithOptions(w, sd, NewWriteOptions())
}

// WriteWithOptions encodes sd with explicit configuration.
func WriteWithOptions(w io.Writer, sd *ServiceDescription, opts WriteOptions) error {
	if w == nil {
		return fmt.Errorf("write service description: nil writer")
	}
	enc, err := NewWriter(w, opts)
	if err != nil {
		return err
	}
	return enc.WriteServiceDescription(sd)
}

// WriteFile encodes sd to path, replacing any existing file.
func WriteFile(path string, sd *ServiceDescription, opts WriteOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wsdl file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close wsdl file %s: %w", path, closeErr)
		}
	}()

	return WriteWithOptions(f, sd, opts)
}

// ReadSchema decodes a standalone xs:schema document.
func ReadSchema(r io.Reader, opts ReadOptions) (*xsd.Schema, error) {
	if r == nil {
		return nil, fmt.Errorf("read schema: nil reader")
	}
	dec, err := NewReader(r, opts)
	if err != nil {
		return nil, err
	}
	return dec.ReadSchema()
}

// WriteSchema encodes a standalone xs:schema document.
func WriteSchema(w io.Writer, s *xsd.Schema, opts WriteOptions) error {
	if w == nil {
		return fmt.Errorf("write schema: nil writer")
	}
	enc, err := NewWriter(w, opts)
	if err != nil {
		return err
	}
	return enc.WriteSchema(s)
}
