// Package persistence implements the binary snapshot format for point tables.
//
// # File Layout
//
//	+----------------------+
//	| magic "KDP1" (u32)   |
//	| version (u32)        |
//	| compression (u8)     |
//	| codec name (u8 + n)  |
//	| entry count (u64)    |
//	| payload size (u64)   |  uncompressed
//	| stored size (u64)    |  as written
//	+----------------------+
//	| payload              |  optionally LZ4/ZSTD compressed
//	+----------------------+
//	| crc32 (u32)          |  over everything above
//	+----------------------+
//
// All integers are little endian. The payload is a sequence of entries:
// x and y as IEEE-754 bits (u64 each), value length (u32) and the value
// encoded with the codec named in the header.
//
// Entries are written in the order produced by the table's All iterator. For
// a 2d-tree this is pre-order, so inserting the entries back in file order
// rebuilds a tree with exactly the same shape.
package persistence
