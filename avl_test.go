package grove

import (
	"cmp"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireAVL walks every node and checks the cached height against the real
// subtree heights and the balance factor against the AVL bound.
func requireAVL[K cmp.Ordered, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()
	requireAVLNode(t, tr.root)
}

func requireAVLNode[K cmp.Ordered, V any](t *testing.T, n *treeNode[K, V]) int {
	t.Helper()
	if n == nil {
		return 0
	}

	hl := requireAVLNode(t, n.left)
	hr := requireAVLNode(t, n.right)
	require.Equalf(t, 1+max(hl, hr), n.height, "cached height wrong at key %v", n.key)
	require.Truef(t, hl-hr >= -1 && hl-hr <= 1, "unbalanced at key %v: left %d right %d", n.key, hl, hr)

	return n.height
}

func treeKeys[K cmp.Ordered, V any](tr *Tree[K, V]) []K {
	keys := make([]K, 0, tr.Len())
	for k := range tr.Ascend() {
		keys = append(keys, k)
	}
	return keys
}

func Test_Tree_InsertScenario(t *testing.T) {
	tr := NewTree[int, int]()

	for _, k := range []int{50, 30, 10, 40, 20, 100, 70, 90, 60, 80} {
		require.NoError(t, tr.Insert(k, k*10))
		requireAVL(t, tr)
	}

	assert.Equal(t, 10, tr.Len())
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, treeKeys(tr))

	v, err := tr.Search(70)
	require.NoError(t, err)
	assert.Equal(t, 700, v)

	_, err = tr.Search(25)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, tr.Remove(50))
	requireAVL(t, tr)
	require.NoError(t, tr.Remove(100))
	requireAVL(t, tr)

	assert.Equal(t, []int{10, 20, 30, 40, 60, 70, 80, 90}, treeKeys(tr))
	assert.Equal(t, 8, tr.Len())
}

func Test_Tree_SearchMissing(t *testing.T) {
	tr := NewTree[float64, string]()
	for _, k := range []float64{50, 30, 10, 40, 20, 100, 70, 90, 60, 80} {
		require.NoError(t, tr.Insert(k, "v"))
	}

	_, err := tr.Search(25)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, err = tr.Search(96.3)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func Test_Tree_DuplicateInsert(t *testing.T) {
	tr := NewTree[string, int]()
	require.NoError(t, tr.Insert("b", 1))
	require.NoError(t, tr.Insert("a", 2))
	require.NoError(t, tr.Insert("c", 3))

	err := tr.Insert("b", 99)
	assert.ErrorIs(t, err, ErrKeyExists)

	// original value retained, shape untouched
	v, err := tr.Search("b")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []string{"a", "b", "c"}, treeKeys(tr))
	requireAVL(t, tr)
}

func Test_Tree_RemoveMissing(t *testing.T) {
	tr := NewTree[int, int]()
	require.NoError(t, tr.Insert(1, 1))

	err := tr.Remove(2)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 1, tr.Len())

	// removing from an empty tree is not fatal either
	empty := NewTree[int, int]()
	assert.ErrorIs(t, empty.Remove(1), ErrKeyNotFound)
}

func Test_Tree_InsertRemoveRoundTrip(t *testing.T) {
	tr := NewTree[int, string]()

	rng := rand.New(rand.NewSource(42))
	keys := rng.Perm(256)

	for _, k := range keys {
		require.NoError(t, tr.Insert(k, strconv.Itoa(k)))
	}
	requireAVL(t, tr)
	require.Equal(t, len(keys), tr.Len())

	for _, k := range keys {
		v, err := tr.Search(k)
		require.NoError(t, err)
		require.Equal(t, strconv.Itoa(k), v)
	}

	for i, k := range keys {
		require.NoError(t, tr.Remove(k))
		requireAVL(t, tr)

		_, err := tr.Search(k)
		require.ErrorIs(t, err, ErrKeyNotFound)
		require.Equal(t, len(keys)-i-1, tr.Len())
	}

	assert.Nil(t, tr.root)
}

func Test_Tree_RemoveFunc(t *testing.T) {
	tr := NewTree[string, Record]()

	records := []Record{
		{"Isabella", "Anderson", "100"},
		{"Lucas", "Li", "200"},
		{"Isabella", "Anderson", "300"},
		{"Liam", "Nelson", "400"},
		{"Isabella", "Anderson", "500"},
	}
	for _, r := range records {
		require.NoError(t, tr.Insert(r.Number, r))
	}

	// one pass removes every match, not just the first
	removed := tr.RemoveFunc(func(_ string, r Record) bool {
		return r.FirstName == "Isabella" && r.LastName == "Anderson"
	})
	assert.Equal(t, 3, removed)
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, []string{"200", "400"}, treeKeys(tr))
	requireAVL(t, tr)

	// no match, nothing removed
	removed = tr.RemoveFunc(func(_ string, r Record) bool {
		return r.FirstName == "Isabella"
	})
	assert.Equal(t, 0, removed)
	assert.Equal(t, 2, tr.Len())
}

func Test_Tree_RemoveFunc_wholeTree(t *testing.T) {
	tr := NewTree[int, int]()
	for i := 0; i < 64; i++ {
		require.NoError(t, tr.Insert(i, i))
	}

	removed := tr.RemoveFunc(func(k, _ int) bool { return true })
	assert.Equal(t, 64, removed)
	assert.Equal(t, 0, tr.Len())
	assert.Nil(t, tr.root)
}

func Test_Tree_AscendFunc(t *testing.T) {
	tr := NewTree[int, int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		require.NoError(t, tr.Insert(k, k))
	}

	var odd []int
	for k := range tr.AscendFunc(func(_ int, v int) bool { return v%2 == 1 }) {
		odd = append(odd, k)
	}
	assert.Equal(t, []int{1, 3, 5, 7, 9}, odd)

	// breaking out of the range stops the traversal early
	var first []int
	for k := range tr.Ascend() {
		first = append(first, k)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 3}, first)

	// traversals are restartable, a fresh range sees everything again
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, treeKeys(tr))
}

func Benchmark_Tree_Insert(b *testing.B) {
	tr := NewTree[int, int]()
	for i := 0; i < b.N; i++ {
		_ = tr.Insert(i, i)
	}
}

func Benchmark_Tree_Search(b *testing.B) {
	tr := NewTree[int, int]()
	for i := 0; i < 1<<16; i++ {
		_ = tr.Insert(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Search(i % (1 << 16))
	}
}
