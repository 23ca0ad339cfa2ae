// Package dict implement a sorted index of key,value pairs based on
// golang map and sorted keys. Primarily meant as reference for
// validating more useful index algorithms, like avl.
package dict

import "fmt"
import "sort"

import "github.com/bnclabs/goavl/api"
import "github.com/bnclabs/goavl/lib"

// Dict is a reference data structure, for validation purpose.
type Dict struct {
	id       string
	dict     map[string]*dictnode
	sortkeys []string
	sorted   bool
	dead     bool

	n_lookups int64
	n_ranks   int64
	n_inserts int64
	n_updates int64
	n_deletes int64
}

// NewDict create a new golang map for indexing key,value entries.
func NewDict(id string) *Dict {
	return &Dict{
		id:       id,
		dict:     make(map[string]*dictnode),
		sortkeys: make([]string, 0, 1024),
	}
}

//---- api.Index{} interface.

// ID implement api.Index{} interface.
func (d *Dict) ID() string {
	return d.id
}

// Count implement api.Index{} interface.
func (d *Dict) Count() int64 {
	return int64(len(d.dict))
}

// Isempty implement api.Index{} interface.
func (d *Dict) Isempty() bool {
	return len(d.dict) == 0
}

// Stats implement api.Index{} interface.
func (d *Dict) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_count":   d.Count(),
		"n_lookups": d.n_lookups,
		"n_ranks":   d.n_ranks,
		"n_inserts": d.n_inserts,
		"n_updates": d.n_updates,
		"n_deletes": d.n_deletes,
	}
}

// Log implement api.Index{} interface. Dict is a reference structure,
// nothing worth logging.
func (d *Dict) Log() {
	return
}

// Validate implement api.Index{} interface. The sorted key cache
// should always agree with the map.
func (d *Dict) Validate() {
	keys := d.getsortkeys()
	if int64(len(keys)) != d.Count() {
		fmsg := "validate(): %v sorted keys for %v entries"
		panic(fmt.Errorf(fmsg, len(keys), d.Count()))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			fmsg := "validate(): sort order, %s >= %s"
			panic(fmt.Errorf(fmsg, keys[i-1], keys[i]))
		}
	}
}

// Destroy implement api.Index{} interface.
func (d *Dict) Destroy() error {
	if d.dead {
		return fmt.Errorf("dict.destroyed")
	}
	d.dead, d.dict, d.sortkeys = true, nil, nil
	return nil
}

//---- api.IndexWriter{} interface.

// Set implement api.IndexWriter{} interface.
func (d *Dict) Set(key, value, oldvalue []byte) ([]byte, bool) {
	k := string(key)
	if nd, ok := d.dict[k]; ok {
		oldvalue = lib.Fixbuffer(oldvalue, int64(len(nd.value)))
		copy(oldvalue, nd.value)
		nd.Setvalue(value)
		d.n_updates++
		return oldvalue, true
	}
	d.dict[k] = newdictnode(key, value)
	d.sorted = false
	d.n_inserts++
	return lib.Fixbuffer(oldvalue, 0), false
}

// Delete implement api.IndexWriter{} interface.
func (d *Dict) Delete(key, oldvalue []byte) ([]byte, bool) {
	k := string(key)
	nd, ok := d.dict[k]
	if !ok {
		return lib.Fixbuffer(oldvalue, 0), false
	}
	oldvalue = lib.Fixbuffer(oldvalue, int64(len(nd.value)))
	copy(oldvalue, nd.value)
	delete(d.dict, k)
	d.sorted = false
	d.n_deletes++
	return oldvalue, true
}

//---- api.IndexReader{} interface.

// Get implement api.IndexReader{} interface.
func (d *Dict) Get(key, value []byte) ([]byte, bool) {
	d.n_lookups++
	nd, ok := d.dict[string(key)]
	if !ok {
		return lib.Fixbuffer(value, 0), false
	}
	value = lib.Fixbuffer(value, int64(len(nd.value)))
	copy(value, nd.value)
	return value, true
}

// Getnode implement api.IndexReader{} interface.
func (d *Dict) Getnode(key []byte) (api.Node, bool) {
	d.n_lookups++
	if nd, ok := d.dict[string(key)]; ok {
		return nd, true
	}
	return nil, false
}

// Getnth implement api.IndexReader{} interface. Rank is resolved
// against a lazily sorted cache of keys.
func (d *Dict) Getnth(index int64, key, value []byte) ([]byte, []byte, bool) {
	d.n_ranks++
	keys := d.getsortkeys()
	if index < 0 || index >= int64(len(keys)) {
		return lib.Fixbuffer(key, 0), lib.Fixbuffer(value, 0), false
	}
	nd := d.dict[keys[index]]
	key = lib.Fixbuffer(key, int64(len(nd.key)))
	copy(key, nd.key)
	value = lib.Fixbuffer(value, int64(len(nd.value)))
	copy(value, nd.value)
	return key, value, true
}

func (d *Dict) getsortkeys() []string {
	if !d.sorted {
		d.sortkeys = d.sortkeys[:0]
		for k := range d.dict {
			d.sortkeys = append(d.sortkeys, k)
		}
		sort.Strings(d.sortkeys)
		d.sorted = true
	}
	return d.sortkeys
}
