package seq

import "testing"

func TestFromCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	s := From(src)
	src[0] = 99
	if s.At(0) != 1 {
		t.Fatalf("view should not alias source, got %d", s.At(0))
	}
}

func TestSubSliceSharesBacking(t *testing.T) {
	s := Of(10, 20, 30, 40, 50)
	sub := s.Slice(1, 4)
	if sub.Len() != 3 || sub.At(0) != 20 || sub.At(2) != 40 {
		t.Fatalf("unexpected sub-view contents: len=%d", sub.Len())
	}
	subsub := sub.Slice(1, 3)
	if subsub.Len() != 2 || subsub.At(0) != 30 || subsub.At(1) != 40 {
		t.Fatalf("re-slicing broke: len=%d", subsub.Len())
	}
}

func TestReverseIsAView(t *testing.T) {
	s := Of(1, 2, 3, 4)
	r := s.Reverse()
	for i := 0; i < s.Len(); i++ {
		if r.At(i) != s.At(s.Len()-1-i) {
			t.Errorf("reverse index %d: got %d", i, r.At(i))
		}
	}
	if rr := r.Reverse(); rr.At(0) != 1 {
		t.Errorf("double reverse should restore order, got %d", rr.At(0))
	}
}

func TestReverseThenSlice(t *testing.T) {
	s := Of(1, 2, 3, 4, 5).Reverse() // 5 4 3 2 1
	sub := s.Slice(1, 4)             // 4 3 2
	if sub.Len() != 3 || sub.At(0) != 4 || sub.At(1) != 3 || sub.At(2) != 2 {
		t.Fatalf("slicing a reversed view broke: %d %d %d", sub.At(0), sub.At(1), sub.At(2))
	}
}

func TestAllStopsEarly(t *testing.T) {
	s := Of("a", "b", "c")
	var seen []string
	for _, v := range s.All() {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("unexpected iteration: %v", seen)
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range access")
		}
	}()
	_ = Of(1).At(1)
}
