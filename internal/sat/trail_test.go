package sat

import "testing"

func TestTrail_PushPop(t *testing.T) {
	tr := newTrail(4)
	tr.Push(Entry{Lit: PositiveLiteral(0), Kind: Decision})
	tr.Push(Entry{Lit: PositiveLiteral(1), Kind: Deduced})

	if got := tr.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got := tr.Top(); got.Lit != PositiveLiteral(1) {
		t.Errorf("Top() = %+v, want literal 1", got)
	}

	e := tr.Pop()
	if e.Lit != PositiveLiteral(1) {
		t.Errorf("Pop() = %+v, want literal 1", e)
	}
	if got := tr.Len(); got != 1 {
		t.Errorf("Len() after Pop = %d, want 1", got)
	}
}

func TestTrail_PopDoesNotDestroyStorage(t *testing.T) {
	tr := newTrail(4)
	tr.Push(Entry{Lit: PositiveLiteral(0), Kind: Decision})
	tr.Push(Entry{Lit: PositiveLiteral(1), Kind: Deduced})

	snap := tr.Snapshot()
	tr.Pop()
	tr.Pop()

	if got := tr.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}

	tr.Restore(snap)
	if got := tr.Len(); got != 2 {
		t.Fatalf("Len() after Restore = %d, want 2", got)
	}
	if got := tr.Top(); got.Lit != PositiveLiteral(1) {
		t.Errorf("Top() after Restore = %+v, want literal 1 (entries survive pop)", got)
	}
}

func TestTrail_SetTop(t *testing.T) {
	tr := newTrail(4)
	tr.Push(Entry{Lit: PositiveLiteral(0), Kind: Decision})

	tr.SetTop(Entry{Lit: PositiveLiteral(5), Kind: Decision})

	if got := tr.Len(); got != 1 {
		t.Fatalf("Len() after SetTop = %d, want 1", got)
	}
	if got := tr.Top(); got.Lit != PositiveLiteral(5) {
		t.Errorf("Top() after SetTop = %+v, want literal 5", got)
	}
}

func TestTrail_At(t *testing.T) {
	tr := newTrail(4)
	tr.Push(Entry{Lit: PositiveLiteral(0), Kind: Decision})
	tr.Push(Entry{Lit: PositiveLiteral(1), Kind: Deduced})

	if got := tr.At(0); got.Lit != PositiveLiteral(0) {
		t.Errorf("At(0) = %+v, want literal 0", got)
	}
	if got := tr.At(1); got.Lit != PositiveLiteral(1) {
		t.Errorf("At(1) = %+v, want literal 1", got)
	}
}
