package notify

import "testing"

func TestAdd_AssignsMonotonicIDs(t *testing.T) {
	var q Queue

	a := q.Add("первое", KindInfo)
	b := q.Add("второе", KindSuccess)
	c := q.Add("третье", KindError)

	if !(a < b && b < c) {
		t.Fatalf("ids = %d, %d, %d, want strictly increasing", a, b, c)
	}
}

func TestAdd_UnknownKindDefaultsToInfo(t *testing.T) {
	var q Queue

	q.Add("сообщение", Kind("warning"))
	q.Add("сообщение", "")

	for _, n := range q.Pending() {
		if n.Kind != KindInfo {
			t.Fatalf("Kind = %q, want %q", n.Kind, KindInfo)
		}
	}
}

func TestPending_InsertionOrder(t *testing.T) {
	var q Queue

	first := q.Add("первое", KindInfo)
	second := q.Add("второе", KindInfo)
	third := q.Add("третье", KindInfo)
	q.Remove(second)

	pending := q.Pending()
	if len(pending) != 2 {
		t.Fatalf("len(Pending()) = %d, want 2", len(pending))
	}
	if pending[0].ID != first || pending[1].ID != third {
		t.Fatalf("Pending order = [%d %d], want [%d %d]", pending[0].ID, pending[1].ID, first, third)
	}
}

func TestRemove_AbsentIDIsNoop(t *testing.T) {
	var q Queue

	id := q.Add("сообщение", KindInfo)
	q.Remove(id + 100)

	if got := q.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
}

func TestRemove_TwiceIsNoop(t *testing.T) {
	var q Queue

	id := q.Add("сообщение", KindInfo)
	q.Remove(id)
	q.Remove(id)

	if got := q.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}

func TestPending_EmptyQueue(t *testing.T) {
	var q Queue

	if got := q.Pending(); got != nil {
		t.Fatalf("Pending() = %v, want nil", got)
	}
	if got := q.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}

func TestAdd_RecordsCreationTime(t *testing.T) {
	var q Queue

	q.Add("сообщение", KindInfo)
	if q.Pending()[0].CreatedAt.IsZero() {
		t.Fatal("CreatedAt is zero, want a timestamp")
	}
}
