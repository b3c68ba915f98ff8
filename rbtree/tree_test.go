package rbtree

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type item struct {
	key  int
	node Node[item]
}

// insert places it by key, equal keys going right.
func insert(tree *Tree[item], it *item) {
	it.node.SetOwner(it)
	var parent *Node[item]
	d := Left
	for n := tree.Root(); n != nil; {
		parent = n
		if it.key < n.Owner().key {
			d = Left
		} else {
			d = Right
		}
		n = n.Child(d)
	}
	tree.Link(&it.node, parent, d)
}

func keys(tree *Tree[item]) []int {
	var ks []int
	for n := tree.First(); n != nil; n = n.Next() {
		ks = append(ks, n.Owner().key)
	}
	return ks
}

func reverseKeys(tree *Tree[item]) []int {
	var ks []int
	for n := tree.Last(); n != nil; n = n.Prev() {
		ks = append(ks, n.Owner().key)
	}
	return ks
}

func heightBound(n int) int {
	return int(2 * math.Log2(float64(n+1)))
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	var tree Tree[item]
	if !tree.IsEmpty() || tree.Root() != nil {
		t.Fatalf("expected zero tree to be empty")
	}
	if tree.First() != nil || tree.Last() != nil {
		t.Errorf("expected empty tree to have no first/last")
	}
	if tree.Height() != 0 {
		t.Errorf("expected height 0, have %d", tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected empty tree to be valid, got %v", err)
	}
}

func TestLinkAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	var tree Tree[item]
	items := make([]item, 100)
	for i := range items {
		items[i].key = i
		insert(&tree, &items[i])
		if err := tree.Check(); err != nil {
			t.Fatalf("after inserting %d: %v", i, err)
		}
	}
	ks := keys(&tree)
	if len(ks) != 100 {
		t.Fatalf("expected 100 keys, have %d", len(ks))
	}
	for i, k := range ks {
		if k != i {
			t.Fatalf("expected key %d at position %d, have %d", i, i, k)
		}
	}
	if h := tree.Height(); h > heightBound(100) {
		t.Errorf("height %d exceeds red-black bound %d", h, heightBound(100))
	}
	rk := reverseKeys(&tree)
	if rk[0] != 99 || rk[99] != 0 {
		t.Errorf("backward walk out of order: %v", rk)
	}
}

func TestRootIsBlack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	var tree Tree[item]
	it := &item{key: 1}
	insert(&tree, it)
	if tree.Root() != &it.node || it.node.Color() != Black {
		t.Errorf("expected single node to be a black root")
	}
	if !tree.Contains(&it.node) {
		t.Errorf("expected tree to contain its root")
	}
	tree.Erase(&it.node)
	if !tree.IsEmpty() || it.node.IsLinked() {
		t.Errorf("expected erase of root to leave an empty tree")
	}
	if tree.Contains(&it.node) {
		t.Errorf("expected erased node not to be contained")
	}
}

func TestLinkOccupiedSlotPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	var tree Tree[item]
	a, b, c := &item{key: 2}, &item{key: 1}, &item{key: 0}
	insert(&tree, a)
	tree.Link(&b.node, &a.node, Left)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Link into occupied slot to panic")
		}
	}()
	tree.Link(&c.node, &a.node, Left)
}

func TestLinkTwicePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	var tree Tree[item]
	a := &item{key: 2}
	insert(&tree, a)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected second Link of same node to panic")
		}
	}()
	var other Tree[item]
	other.Link(&a.node, nil, Left)
}

func TestEraseTwoChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	var tree Tree[item]
	items := make([]item, 15)
	for i, k := range []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15} {
		items[i].key = k
		insert(&tree, &items[i])
	}
	root := tree.Root()
	rootKey := root.Owner().key
	tree.Erase(root)
	if err := tree.Check(); err != nil {
		t.Fatalf("after erasing root: %v", err)
	}
	for _, k := range keys(&tree) {
		if k == rootKey {
			t.Fatalf("erased key %d still reachable", k)
		}
	}
	if len(keys(&tree)) != 14 {
		t.Errorf("expected 14 keys after erase, have %d", len(keys(&tree)))
	}
}

func TestRandomLinkErase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	var tree Tree[item]
	items := make([]item, 500)
	linked := make([]*item, 0, len(items))
	for i := range items {
		items[i].key = rnd.Intn(200) // duplicates on purpose
	}
	for round := 0; round < 4000; round++ {
		if len(linked) == 0 || (len(linked) < len(items) && rnd.Intn(3) > 0) {
			var free *item
			for i := range items {
				if !items[i].node.IsLinked() {
					free = &items[i]
					break
				}
			}
			if free == nil {
				continue
			}
			insert(&tree, free)
			linked = append(linked, free)
		} else {
			k := rnd.Intn(len(linked))
			tree.Erase(&linked[k].node)
			linked[k] = linked[len(linked)-1]
			linked = linked[:len(linked)-1]
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if h := tree.Height(); h > heightBound(len(linked)) {
			t.Fatalf("round %d: height %d exceeds bound %d for %d nodes",
				round, h, heightBound(len(linked)), len(linked))
		}
		ks := keys(&tree)
		if len(ks) != len(linked) {
			t.Fatalf("round %d: %d keys reachable, %d linked", round, len(ks), len(linked))
		}
		for i := 1; i < len(ks); i++ {
			if ks[i-1] > ks[i] {
				t.Fatalf("round %d: keys out of order at %d", round, i)
			}
		}
	}
}

func TestCheckDetectsRedRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	var tree Tree[item]
	it := &item{key: 1}
	insert(&tree, it)
	it.node.color = Red
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected ErrInvariant for red root, got %v", err)
	}
}
