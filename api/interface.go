// Package api define types and interfaces common to all sorted index
// algorithms implemented by this package.
package api

// Node interface methods to access entry attributes. Node references
// are valid only until the next mutation on the index that handed
// them out.
type Node interface {
	// Key return entry key as byte slice.
	Key() (key []byte)

	// Value return entry value as byte slice.
	Value() (value []byte)

	// Setvalue overwrite entry value in place. Return the same node.
	Setvalue(value []byte) Node
}

// Index interface for managing sorted {key,value} entries.
type Index interface {
	// ID return index id. Typically, it is human readable and unique.
	ID() string

	// Count return the number of entries indexed.
	Count() int64

	// Isempty return true if index has no entries.
	Isempty() bool

	// Stats return a set of index statistics.
	Stats() map[string]interface{}

	// Log vital statistics of the index.
	Log()

	// Validate check whether index is in sane state, panic if not.
	Validate()

	// Destroy to delete an index and clean up its resources. Calling
	// any other method after Destroy is a programmer error.
	Destroy() error

	IndexReader
	IndexWriter
}

// IndexReader interface for fetching entries from an index.
type IndexReader interface {
	// Get value for key. Value is copied into the value buffer, which
	// can be nil. Returned bool is false when key is missing.
	Get(key, value []byte) ([]byte, bool)

	// Getnode return the live node for key, for reading or for
	// in-place update of its value via Setvalue.
	Getnode(key []byte) (Node, bool)

	// Getnth return the entry at 0-based ascending rank `index`. Key
	// and value are copied into the supplied buffers, which can be
	// nil. Returned bool is false when index is out of range.
	Getnth(index int64, key, value []byte) ([]byte, []byte, bool)
}

// IndexWriter interface for mutating entries in an index.
type IndexWriter interface {
	// Set a key, value pair in the index, if key is already present
	// update its value. Previous value, if any, is copied into the
	// oldvalue buffer, returned bool is true for an update.
	Set(key, value, oldvalue []byte) ([]byte, bool)

	// Delete key from the index. Removed value is copied into the
	// oldvalue buffer, returned bool is false when key is missing, in
	// which case the index is left untouched.
	Delete(key, oldvalue []byte) ([]byte, bool)
}
