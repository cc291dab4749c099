package pak

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Archive is a fully materialized pak file: an ordered directory of
// entries, each holding its own copy of the file data. Order matters
// for reproducible encoding but carries no other meaning.
//
// An Archive is not safe for concurrent mutation; callers that share
// one across goroutines must synchronize externally.
type Archive struct {
	Entries []*Entry
}

// Entry is one named file record. Offset and Size reflect the position
// in the buffer the entry was decoded from; they are advisory only and
// are recomputed from scratch on every encode, so callers never need to
// keep them consistent after mutating the archive.
type Entry struct {
	// Name may contain forward slashes to express virtual directory
	// structure ("maps/e1m1.bsp"). At most MaxNameLen bytes, no
	// embedded NUL.
	Name   string
	Offset uint32
	Size   uint32
	Data   []byte
}

// New returns an empty archive.
func New() *Archive {
	return &Archive{}
}

// Decode parses a complete pak file held in buf. Validation is strict
// and all-or-nothing: the first structural violation aborts the decode
// and no partial archive is ever returned, since a corrupt directory
// cannot be trusted to bound later reads.
func Decode(buf []byte) (*Archive, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf(
			"%w: %d bytes is shorter than the %d-byte header",
			ErrMalformedHeader, len(buf), headerSize,
		)
	}
	if !bytes.Equal(buf[0:4], magic[:]) {
		return nil, fmt.Errorf(
			"%w: bad magic %q", ErrMalformedHeader, buf[0:4],
		)
	}
	dirOffset := binary.LittleEndian.Uint32(buf[4:8])
	dirSize := binary.LittleEndian.Uint32(buf[8:12])

	if dirSize%recordSize != 0 {
		return nil, fmt.Errorf(
			"%w: directory size %d is not a multiple of %d",
			ErrMalformedDirectory, dirSize, recordSize,
		)
	}
	if uint64(dirOffset)+uint64(dirSize) > uint64(len(buf)) {
		return nil, fmt.Errorf(
			"%w: directory [%d, %d) runs past end of buffer (%d bytes)",
			ErrMalformedDirectory,
			dirOffset, uint64(dirOffset)+uint64(dirSize), len(buf),
		)
	}

	count := int(dirSize / recordSize)
	a := &Archive{Entries: make([]*Entry, 0, count)}
	for i := 0; i < count; i++ {
		rec := buf[int(dirOffset)+i*recordSize:][:recordSize]

		nul := bytes.IndexByte(rec[:nameSize], 0)
		if nul < 0 {
			return nil, fmt.Errorf(
				"%w: record %d name field has no terminator",
				ErrMalformedDirectory, i,
			)
		}
		name := string(rec[:nul])

		offset := binary.LittleEndian.Uint32(rec[nameSize : nameSize+4])
		size := binary.LittleEndian.Uint32(rec[nameSize+4 : recordSize])

		if uint64(offset)+uint64(size) > uint64(len(buf)) {
			return nil, fmt.Errorf(
				"%w: %q claims [%d, %d) in a %d-byte buffer",
				ErrOutOfBounds,
				name, offset, uint64(offset)+uint64(size), len(buf),
			)
		}
		if size > 0 {
			if offset < headerSize {
				return nil, fmt.Errorf(
					"%w: %q data at %d overlaps the header",
					ErrOutOfBounds, name, offset,
				)
			}
			if dirSize > 0 &&
				uint64(offset) < uint64(dirOffset)+uint64(dirSize) &&
				uint64(offset)+uint64(size) > uint64(dirOffset) {
				return nil, fmt.Errorf(
					"%w: %q data [%d, %d) overlaps the directory",
					ErrOutOfBounds, name, offset, offset+size,
				)
			}
		}

		data := make([]byte, size)
		copy(data, buf[offset:offset+size])
		a.Entries = append(a.Entries, &Entry{
			Name:   name,
			Offset: offset,
			Size:   size,
			Data:   data,
		})
	}
	return a, nil
}

// Encode serializes the archive into a new buffer: 12-byte header,
// then the directory, then each entry's data packed consecutively in
// directory order. Offsets are recomputed from scratch on every call
// and never taken from the entries themselves, so mutations can never
// desynchronize a declared offset from the data's actual position.
func Encode(a *Archive) ([]byte, error) {
	count := len(a.Entries)
	dataStart := headerSize + count*recordSize

	total := uint64(dataStart)
	for _, e := range a.Entries {
		if err := ValidateName(e.Name); err != nil {
			return nil, err
		}
		total += uint64(len(e.Data))
	}
	if total > math.MaxUint32 {
		return nil, fmt.Errorf(
			"archive too large: %d bytes exceeds the format's 32-bit limit",
			total,
		)
	}

	buf := make([]byte, total)
	copy(buf[0:4], magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], headerSize)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(count*recordSize))

	offset := uint32(dataStart)
	for i, e := range a.Entries {
		rec := buf[headerSize+i*recordSize:][:recordSize]
		copy(rec[:nameSize], e.Name)
		binary.LittleEndian.PutUint32(rec[nameSize:nameSize+4], offset)
		binary.LittleEndian.PutUint32(rec[nameSize+4:recordSize], uint32(len(e.Data)))

		copy(buf[offset:], e.Data)
		offset += uint32(len(e.Data))
	}
	return buf, nil
}

// ValidateName reports whether name can be stored in a directory
// record: at most MaxNameLen encoded bytes and no embedded NUL.
func ValidateName(name string) error {
	if len(name) > MaxNameLen {
		return fmt.Errorf(
			"%w: %q is %d bytes, limit is %d",
			ErrNameTooLong, name, len(name), MaxNameLen,
		)
	}
	if strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("name %q contains a null byte", name)
	}
	return nil
}

// Add appends an entry. Names are not checked for uniqueness — the
// format permits duplicates — but lookups and removals only ever see
// the first occurrence, so adding a duplicate effectively shadows it
// for those operations.
func (a *Archive) Add(name string, data []byte) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	a.Entries = append(a.Entries, &Entry{
		Name: name,
		Size: uint32(len(data)),
		Data: data,
	})
	return nil
}

// Lookup returns the first entry with the given name, in directory
// order, or ErrNotFound.
func (a *Archive) Lookup(name string) (*Entry, error) {
	for _, e := range a.Entries {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Remove deletes the first entry with the given name, in directory
// order. It fails with ErrNotFound rather than silently succeeding, to
// surface caller mistakes; the archive is left unchanged on failure.
func (a *Archive) Remove(name string) error {
	for i, e := range a.Entries {
		if e.Name == name {
			a.Entries = append(a.Entries[:i], a.Entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

// AppendFile reads srcPath from disk and adds it under name. An empty
// name stores the file under its own base name.
func (a *Archive) AppendFile(srcPath, name string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}
	if name == "" {
		name = filepath.Base(srcPath)
	}
	return a.Add(name, data)
}

// Load reads and decodes the pak file at path.
func Load(path string) (*Archive, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	a, err := Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return a, nil
}

// Save encodes the archive and writes it to path atomically: the
// buffer goes to a temp file in the destination directory first and is
// renamed over the target only once fully written.
func (a *Archive) Save(path string) error {
	buf, err := Encode(a)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "pak_*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close archive: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("save archive: %w", err)
	}
	return nil
}
