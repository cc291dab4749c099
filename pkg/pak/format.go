package pak

// On-disk layout, little-endian throughout:
//
//	[0,4)   magic "PACK"
//	[4,8)   u32 directory offset
//	[8,12)  u32 directory size in bytes
//
// The directory is an array of 64-byte records:
//
//	[0,56)  entry name, NUL-terminated, zero-padded
//	[56,60) u32 data offset from start of file
//	[60,64) u32 data size
//
// Entry data is addressed by (offset, size) pairs and can live anywhere
// past the header; encoders written by this package place it directly
// after the directory.

const (
	headerSize = 12
	recordSize = 64
	nameSize   = 56

	// MaxNameLen is the longest entry name the format can store: the
	// 56-byte name field always reserves one byte for the terminator.
	MaxNameLen = nameSize - 1
)

var magic = [4]byte{'P', 'A', 'C', 'K'}
