package badger

import (
	"encoding/binary"

	"github.com/poiesic/igbodict/core"
)

// Key prefixes for different data types
const (
	entryPrefix  = "entrec:"
	entryIDSeq   = "entrecseq"
	exampleIDSeq = "exmrecseq"
	revisionKey  = "corpus:rev"
)

// makeEntryKey generates a key for an entry by ID.
// Format: prefix + 8 byte ID. BigEndian so that key order is ID order,
// and ID order is insertion order because IDs come from a sequence.
func makeEntryKey(id core.ID) []byte {
	buf := make([]byte, len(entryPrefix)+8)
	offset := copy(buf, entryPrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// entryIDFromKey extracts the ID from a key made by makeEntryKey.
func entryIDFromKey(key []byte) (core.ID, bool) {
	if len(key) != len(entryPrefix)+8 {
		return 0, false
	}
	return core.ID(binary.BigEndian.Uint64(key[len(entryPrefix):])), true
}

func encodeRevision(rev uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, rev)
	return buf
}

func decodeRevision(val []byte) uint64 {
	if len(val) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(val)
}
