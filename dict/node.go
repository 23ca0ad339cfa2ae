package dict

import "github.com/bnclabs/goavl/api"

type dictnode struct {
	key   []byte
	value []byte
}

func newdictnode(key, value []byte) *dictnode {
	nd := &dictnode{}
	nd.key = make([]byte, len(key))
	copy(nd.key, key)
	nd.Setvalue(value)
	return nd
}

// Key implement api.Node{} interface.
func (nd *dictnode) Key() []byte {
	return nd.key
}

// Value implement api.Node{} interface.
func (nd *dictnode) Value() []byte {
	return nd.value
}

// Setvalue implement api.Node{} interface.
func (nd *dictnode) Setvalue(value []byte) api.Node {
	if cap(nd.value) < len(value) {
		nd.value = make([]byte, len(value))
	}
	nd.value = nd.value[:len(value)]
	copy(nd.value, value)
	return nd
}
