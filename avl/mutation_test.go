package avl

import "fmt"
import "testing"

func TestRotateLeftLeft(t *testing.T) {
	tree := makeavl(t, "rotate-ll")
	defer tree.Destroy()

	// descending load leans left until the tree rotates on the
	// left branch.
	for i := 100; i > 0; i-- {
		key := []byte(fmt.Sprintf("key%04v", i))
		tree.Set(key, key, nil)
		tree.Validate()
	}
	stats := tree.Stats()
	if x := stats["n_llrotations"].(int64); x == 0 {
		t.Errorf("expected left-left rotations")
	}
	if x := stats["n_rrrotations"].(int64); x != 0 {
		t.Errorf("unexpected right-right rotations %v", x)
	}
}

func TestRotateRightRight(t *testing.T) {
	tree := makeavl(t, "rotate-rr")
	defer tree.Destroy()

	for i := 1; i <= 100; i++ {
		key := []byte(fmt.Sprintf("key%04v", i))
		tree.Set(key, key, nil)
		tree.Validate()
	}
	stats := tree.Stats()
	if x := stats["n_rrrotations"].(int64); x == 0 {
		t.Errorf("expected right-right rotations")
	}
	if x := stats["n_llrotations"].(int64); x != 0 {
		t.Errorf("unexpected left-left rotations %v", x)
	}
}

func TestRotateLeftRight(t *testing.T) {
	tree := makeavl(t, "rotate-lr")
	defer tree.Destroy()

	// root grows left-heavy with a right-heavy left child.
	for _, k := range []byte{100, 50, 200, 25, 75, 80} {
		tree.Set([]byte{k}, []byte{k}, nil)
	}
	stats := tree.Stats()
	if x := stats["n_lrrotations"].(int64); x != 1 {
		t.Errorf("expected 1 left-right rotation, got %v", x)
	}
	tree.Validate()

	ref := []byte{25, 50, 75, 80, 100, 200}
	for i, k := range ref {
		if key, _, ok := tree.Getnth(int64(i), nil, nil); !ok {
			t.Fatalf("expected rank %v", i)
		} else if key[0] != k {
			t.Errorf("rank %v expected %v, got %v", i, k, key[0])
		}
	}
}

func TestRotateRightLeft(t *testing.T) {
	tree := makeavl(t, "rotate-rl")
	defer tree.Destroy()

	// root grows right-heavy with a left-heavy right child.
	for _, k := range []byte{100, 150, 50, 175, 125, 120} {
		tree.Set([]byte{k}, []byte{k}, nil)
	}
	stats := tree.Stats()
	if x := stats["n_rlrotations"].(int64); x != 1 {
		t.Errorf("expected 1 right-left rotation, got %v", x)
	}
	tree.Validate()

	ref := []byte{50, 100, 120, 125, 150, 175}
	for i, k := range ref {
		if key, _, ok := tree.Getnth(int64(i), nil, nil); !ok {
			t.Fatalf("expected rank %v", i)
		} else if key[0] != k {
			t.Errorf("rank %v expected %v, got %v", i, k, key[0])
		}
	}
}

func TestDeleteRebalance(t *testing.T) {
	tree := makeavl(t, "delete-rebalance")
	defer tree.Destroy()

	n := 512
	for i := 1; i <= n; i++ {
		key := []byte(fmt.Sprintf("key%04v", i))
		tree.Set(key, key, nil)
	}
	// carve out one flank, the tree has to keep rotating to stay
	// balanced.
	for i := 1; i <= n/2; i++ {
		key := []byte(fmt.Sprintf("key%04v", i))
		if _, removed := tree.Delete(key, nil); !removed {
			t.Fatalf("expected to remove %s", key)
		}
		tree.Validate()
	}
	if x := tree.Count(); x != int64(n/2) {
		t.Errorf("expected %v, got %v", n/2, x)
	}
}

func TestDeleteInternal(t *testing.T) {
	tree := makeavl(t, "delete-internal")
	defer tree.Destroy()

	for _, k := range []byte{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tree.Set([]byte{k}, []byte{k * 10}, nil)
	}

	// deleting an internal node splices in its predecessor, the
	// in-order sequence stays intact.
	if olv, removed := tree.Delete([]byte{3}, nil); !removed {
		t.Fatalf("expected to remove key 3")
	} else if olv[0] != 30 {
		t.Errorf("expected 30, got %v", olv[0])
	}
	tree.Validate()

	ref := []byte{1, 2, 4, 5, 6, 7, 8, 9}
	for i, k := range ref {
		if key, _, ok := tree.Getnth(int64(i), nil, nil); !ok {
			t.Fatalf("expected rank %v", i)
		} else if key[0] != k {
			t.Errorf("rank %v expected %v, got %v", i, k, key[0])
		}
	}
}

func TestDeleteSplice(t *testing.T) {
	tree := makeavl(t, "delete-splice")
	defer tree.Destroy()

	// removing the root splices in its predecessor and leaves the
	// root's slot light on the left. The spliced node itself is not
	// rebalanced, the skew is tolerated under the approximate height.
	for _, k := range []byte{50, 30, 70, 20, 60, 80, 90} {
		tree.Set([]byte{k}, []byte{k}, nil)
	}
	if olv, removed := tree.Delete([]byte{50}, nil); !removed {
		t.Fatalf("expected to remove key 50")
	} else if olv[0] != 50 {
		t.Errorf("expected 50, got %v", olv[0])
	}
	tree.Validate()

	if x, y := tree.root.key[0], byte(30); x != y {
		t.Errorf("expected root %v, got %v", y, x)
	}
	if x, y := tree.root.balance(), int64(-2); x != y {
		t.Errorf("expected root balance %v, got %v", y, x)
	}

	ref := []byte{20, 30, 60, 70, 80, 90}
	for i, k := range ref {
		if key, _, ok := tree.Getnth(int64(i), nil, nil); !ok {
			t.Fatalf("expected rank %v", i)
		} else if key[0] != k {
			t.Errorf("rank %v expected %v, got %v", i, k, key[0])
		}
	}
}

func TestUpdateweights(t *testing.T) {
	// weight arithmetic over a hand-built two level subtree.
	a, b, c := newavlnode([]byte("a"), nil), newavlnode([]byte("b"), nil),
		newavlnode([]byte("c"), nil)
	b.left, b.right = a, c
	b.weight = 100 // bogus, to be repaired.
	if x := b.updateweights(2); x != 3 {
		t.Errorf("expected 3, got %v", x)
	}
	if a.weight != 1 || c.weight != 1 || b.weight != 3 {
		t.Errorf("unexpected weights %v %v %v", a.weight, b.weight, c.weight)
	}
}

func TestFloorlog2(t *testing.T) {
	testcases := [][2]int64{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {7, 2}, {8, 3},
		{1023, 9}, {1024, 10},
	}
	for _, tc := range testcases {
		if x := floorlog2(tc[0]); x != tc[1] {
			t.Errorf("floorlog2(%v) expected %v, got %v", tc[0], tc[1], x)
		}
	}
}

func TestPredecessorSuccessor(t *testing.T) {
	tree := makeavl(t, "predsucc")
	defer tree.Destroy()

	for _, k := range []byte{50, 25, 75, 10, 30, 60, 90} {
		tree.Set([]byte{k}, []byte{k + 1}, nil)
	}
	root := tree.root
	if key, value := root.left.predecessor(); key[0] != 30 {
		t.Errorf("expected 30, got %v", key[0])
	} else if value[0] != 31 {
		t.Errorf("expected 31, got %v", value[0])
	}
	if key, _ := root.right.successor(); key[0] != 60 {
		t.Errorf("expected 60, got %v", key[0])
	}

	// contract violation on empty subtrees.
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for predecessor on empty subtree")
		}
	}()
	var empty *avlnode
	empty.predecessor()
}
