package pak

import "errors"

// Structural failure classes. Callers match them with errors.Is; the
// wrapped message carries the specifics (which entry, which bound).
var (
	// ErrMalformedHeader reports a buffer that does not start with a
	// valid 12-byte PACK header.
	ErrMalformedHeader = errors.New("malformed pak header")

	// ErrMalformedDirectory reports a directory whose size is not a
	// multiple of the record size, that runs past the end of the
	// buffer, or that contains an unterminated name field.
	ErrMalformedDirectory = errors.New("malformed pak directory")

	// ErrOutOfBounds reports an entry whose data range runs past the
	// end of the buffer or overlaps the header or directory.
	ErrOutOfBounds = errors.New("entry data out of bounds")

	// ErrNameTooLong reports an entry name longer than MaxNameLen
	// bytes. Names are never silently truncated.
	ErrNameTooLong = errors.New("entry name too long")

	// ErrNotFound reports a lookup or removal by a name the archive
	// does not contain.
	ErrNotFound = errors.New("entry not found")
)
