package avl

import "fmt"
import "testing"

func TestValidate(t *testing.T) {
	tree := makeavl(t, "validate")
	defer tree.Destroy()

	for i := 0; i < 1000; i++ {
		key := []byte(fmt.Sprintf("key%04v", i))
		tree.Set(key, key, nil)
	}
	tree.Validate()
}

func TestValidateBadWeight(t *testing.T) {
	tree := makeavl(t, "badweight")
	defer tree.Destroy()

	for i := 0; i < 100; i++ {
		key := []byte(fmt.Sprintf("key%04v", i))
		tree.Set(key, key, nil)
	}
	tree.root.weight++ // corrupt the weight invariant.

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on corrupted weight")
		}
	}()
	tree.Validate()
}

func TestValidateBadOrder(t *testing.T) {
	tree := makeavl(t, "badorder")
	defer tree.Destroy()

	for i := 0; i < 100; i++ {
		key := []byte(fmt.Sprintf("key%04v", i))
		tree.Set(key, key, nil)
	}
	// swap two keys under the root, breaking sort order.
	nd := tree.root
	nd.left.key, nd.key = nd.key, nd.left.key

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on broken sort order")
		}
	}()
	tree.Validate()
}

func TestMaxdepth(t *testing.T) {
	if x := maxdepth(4); x <= 0 {
		t.Errorf("unexpected %v", x)
	}
	if x, y := maxdepth(1024), 30.0; x != y {
		t.Errorf("expected %v, got %v", y, x)
	}
}

func TestValidateApproxbalance(t *testing.T) {
	tree := makeavl(t, "approxbalance")
	defer tree.Destroy()

	// this load finishes with a right-left rotation at the root whose
	// new subtree root lands at balance factor 2 under the
	// floor(log2(weight)) height, and stays there. Validate() accepts
	// the shape, order and weights are intact.
	keys := []string{"k02", "k00", "k12", "k07", "k06", "k03"}
	for _, key := range keys {
		tree.Set([]byte(key), []byte(key), nil)
	}
	tree.Validate()

	if x, y := tree.n_rlrotations, int64(1); x != y {
		t.Errorf("expected %v rl-rotations, got %v", y, x)
	}
	if x, y := string(tree.root.key), "k07"; x != y {
		t.Errorf("expected root %v, got %v", y, x)
	}
	if x, y := tree.root.balance(), int64(2); x != y {
		t.Errorf("expected root balance %v, got %v", y, x)
	}

	ref := []string{"k00", "k02", "k03", "k06", "k07", "k12"}
	for i, refkey := range ref {
		key, _, ok := tree.Getnth(int64(i), nil, nil)
		if !ok {
			t.Fatalf("expected rank %v", i)
		} else if x := string(key); x != refkey {
			t.Errorf("rank %v expected %v, got %v", i, refkey, x)
		}
	}
}
