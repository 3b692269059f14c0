package vec

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
)

func TestEmptyVector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	if v.Len() != 0 || v.Cap() != 0 {
		t.Errorf("expected empty vector to have len 0 and cap 0, has %d and %d", v.Len(), v.Cap())
	}
	if !v.Begin().Done() {
		t.Error("expected Begin() of empty vector to be Done")
	}
	if v.Last().IsJust() {
		t.Error("expected Last() of empty vector to be Nothing")
	}
}

func TestPushAndIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	for _, n := range []int{1, 2, 3} {
		ref, err := v.Push(n)
		if err != nil {
			t.Fatalf("unexpected error pushing %d: %v", n, err)
		}
		if *ref != n {
			t.Errorf("expected Push to return reference to %d, references %d", n, *ref)
		}
		if v.At(v.Len()-1) != n {
			t.Errorf("expected last element to be %d, is %d", n, v.At(v.Len()-1))
		}
	}
	if last := v.Last().Or(-1); last != 3 {
		t.Errorf("expected Last to be 3, is %d", last)
	}
	if first := v.First().Or(-1); first != 1 {
		t.Errorf("expected First to be 1, is %d", first)
	}
}

func TestGrowthDoubling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	want := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i := 0; i < len(want); i++ {
		if _, err := v.Push(i + 1); err != nil {
			t.Fatalf("unexpected error pushing: %v", err)
		}
		if v.Cap() != want[i] {
			t.Errorf("expected capacity %d after %d pushes, is %d", want[i], i+1, v.Cap())
		}
	}
	t.Logf(printVec(&v))
}

func TestReserve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	for n := 1; n <= 3; n++ {
		v.Push(n)
	}
	if err := v.Reserve(10); err != nil {
		t.Fatalf("unexpected error reserving: %v", err)
	}
	if v.Cap() != 10 {
		t.Errorf("expected capacity 10 after Reserve(10), is %d", v.Cap())
	}
	if v.Len() != 3 {
		t.Errorf("expected Reserve to keep length 3, is %d", v.Len())
	}
	for i, want := range []int{1, 2, 3} {
		if v.At(i) != want {
			t.Errorf("expected element %d to stay %d after Reserve, is %d", i, want, v.At(i))
		}
	}
	// reserving less is a no-op
	if err := v.Reserve(5); err != nil {
		t.Fatalf("unexpected error reserving: %v", err)
	}
	if v.Cap() != 10 {
		t.Errorf("expected Reserve(5) to be a no-op at capacity 10, capacity is %d", v.Cap())
	}
}

func TestResize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	v.Push(1)
	v.Push(2)
	if err := v.Resize(5); err != nil {
		t.Fatalf("unexpected error resizing: %v", err)
	}
	if v.Len() != 5 {
		t.Errorf("expected length 5 after Resize(5), is %d", v.Len())
	}
	for i, want := range []int{1, 2, 0, 0, 0} {
		if v.At(i) != want {
			t.Errorf("expected element %d to be %d after growing Resize, is %d", i, want, v.At(i))
		}
	}
	if err := v.Resize(1); err != nil {
		t.Fatalf("unexpected error resizing: %v", err)
	}
	if v.Len() != 1 || v.At(0) != 1 {
		t.Errorf("expected [1] after Resize(1), len is %d", v.Len())
	}
}

func TestMakeWithInit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v, err := Make[int](3, InitWith(func() (int, error) { return 7, nil }))
	if err != nil {
		t.Fatalf("unexpected error from Make: %v", err)
	}
	if v.Len() != 3 {
		t.Fatalf("expected Make(3) to have length 3, has %d", v.Len())
	}
	for i := 0; i < 3; i++ {
		if v.At(i) != 7 {
			t.Errorf("expected element %d to be value-constructed as 7, is %d", i, v.At(i))
		}
	}
}

func TestInsertEraseScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	require.NoError(t, v.Reserve(4))
	for _, n := range []int{1, 2, 3} {
		_, err := v.Push(n)
		require.NoError(t, err)
	}
	// interior insert with spare capacity: no reallocation
	it, err := v.Insert(v.Begin().Fwd(1), 99)
	require.NoError(t, err)
	require.Equal(t, 99, it.Item())
	require.Equal(t, []int{1, 99, 2, 3}, contents(&v))
	require.Equal(t, 4, v.Cap())
	// insert at end of a full vector: capacity doubles
	_, err = v.Insert(v.Begin().Fwd(4), 7)
	require.NoError(t, err)
	require.Equal(t, []int{1, 99, 2, 3, 7}, contents(&v))
	require.Equal(t, 8, v.Cap())
	// erase the front
	it = v.Erase(v.Begin())
	require.Equal(t, []int{99, 2, 3, 7}, contents(&v))
	require.Equal(t, 99, it.Item())
}

func TestEmplaceEraseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	for _, n := range []int{10, 20, 30, 40} {
		v.Push(n)
	}
	before := contents(&v)
	it, err := v.Emplace(v.Begin().Fwd(2), func() (int, error) { return 99, nil })
	if err != nil {
		t.Fatalf("unexpected error emplacing: %v", err)
	}
	if v.At(2) != 99 {
		t.Errorf("expected element 2 to be 99 after Emplace, is %d", v.At(2))
	}
	it = v.Erase(it)
	if it.Item() != 30 {
		t.Errorf("expected iterator after Erase to reference 30, references %d", it.Item())
	}
	after := contents(&v)
	if len(after) != len(before) {
		t.Fatalf("expected Emplace+Erase to restore length %d, is %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("expected element %d to be restored to %d, is %d", i, before[i], after[i])
		}
	}
}

func TestCloneRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	for _, n := range []int{1, 2, 3} {
		v.Push(n)
	}
	w, err := v.Clone()
	if err != nil {
		t.Fatalf("unexpected error cloning: %v", err)
	}
	if w.Len() != v.Len() {
		t.Fatalf("expected clone to have length %d, has %d", v.Len(), w.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if w.At(i) != v.At(i) {
			t.Errorf("expected clone element %d to be %d, is %d", i, v.At(i), w.At(i))
		}
	}
	// storage is independent
	*w.Ref(0) = 42
	if v.At(0) != 1 {
		t.Error("expected original to be unaffected by writes to the clone")
	}
}

func TestMoveEmptiesSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	for _, n := range []int{1, 2, 3} {
		v.Push(n)
	}
	w := v.Move()
	if v.Len() != 0 || v.Cap() != 0 {
		t.Errorf("expected moved-from vector to be empty, len=%d cap=%d", v.Len(), v.Cap())
	}
	if w.Len() != 3 || w.At(0) != 1 || w.At(2) != 3 {
		t.Error("expected contents to transfer on Move")
	}
	// moved-from vector is reusable
	if _, err := v.Push(9); err != nil {
		t.Fatalf("unexpected error pushing into moved-from vector: %v", err)
	}
	if v.Len() != 1 || v.At(0) != 9 {
		t.Error("expected moved-from vector to accept new elements")
	}
}

func TestSwap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	v.Push(1)
	w := New[int]()
	w.Push(7)
	w.Push(8)
	v.Swap(&w)
	if v.Len() != 2 || w.Len() != 1 {
		t.Errorf("expected lengths 2 and 1 after Swap, are %d and %d", v.Len(), w.Len())
	}
	if v.At(0) != 7 || w.At(0) != 1 {
		t.Error("expected contents to travel on Swap")
	}
}

func TestPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	v.Push(1)
	v.Push(2)
	v.Pop()
	if v.Len() != 1 || v.At(0) != 1 {
		t.Errorf("expected [1] after Pop, len is %d", v.Len())
	}
}

func TestPopEmptyPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Pop on empty vector to panic, didn't")
		}
	}()
	v := New[int]()
	v.Pop()
}

func TestIndexOutOfBoundsPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected out-of-bounds At to panic, didn't")
		}
	}()
	v := New[int]()
	v.Push(1)
	_ = v.At(1)
}

func TestIterTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mut.vec")
	defer teardown()
	//
	v := New[int]()
	for _, n := range []int{1, 2, 3, 4} {
		v.Push(n)
	}
	sum := 0
	count := 0
	for it := v.Begin(); !it.Done(); it = it.Next() {
		sum += it.Item()
		count++
	}
	if count != 4 || sum != 10 {
		t.Errorf("expected to traverse 4 elements summing to 10, got %d summing to %d", count, sum)
	}
}

// --- Helpers ---------------------------------------------------------------

func contents(v *Vec[int]) []int {
	c := make([]int, 0, v.Len())
	for it := v.Begin(); !it.Done(); it = it.Next() {
		c = append(c, it.Item())
	}
	return c
}

// printVec dumps the storage layout of a vector, marking raw slots with '·'.
func printVec(v *Vec[int]) string {
	header := fmt.Sprintf("\nVec(len=%d, cap=%d)\n", v.Len(), v.Cap())
	printer := tp.New()
	branch := printer.AddBranch("storage")
	for i, s := range v.data.Addr(0) {
		if i < v.size {
			branch.AddNode(fmt.Sprintf("[%d] %v", i, s))
		} else {
			branch.AddNode(fmt.Sprintf("[%d] ·", i))
		}
	}
	return header + printer.String()
}
