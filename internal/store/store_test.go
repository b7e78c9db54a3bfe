package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mesh-intelligence/keepsake/pkg/types"
)

// memAdapter is an in-memory Adapter for store tests. It records every Save
// and can be told to fail the next write.
type memAdapter struct {
	saved    [][]string
	current  []string
	failNext error
}

func (a *memAdapter) Load() ([]string, error) { return a.current, nil }

func (a *memAdapter) Save(urls []string) error {
	if a.failNext != nil {
		err := a.failNext
		a.failNext = nil
		return err
	}
	cp := make([]string, len(urls))
	copy(cp, urls)
	a.current = cp
	a.saved = append(a.saved, cp)
	return nil
}

func (a *memAdapter) Clear() error { a.current = nil; return nil }
func (a *memAdapter) Close() error { return nil }

func newTestStore(t *testing.T) (*Store, *memAdapter) {
	t.Helper()
	a := &memAdapter{}
	s, err := New(a)
	if err != nil {
		t.Fatal(err)
	}
	return s, a
}

func TestAddNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)

	for _, u := range []string{"http://a.test/1.png", "http://a.test/2.png", "http://a.test/3.png"} {
		added, err := s.Add(u)
		if err != nil {
			t.Fatal(err)
		}
		if !added {
			t.Fatalf("expected %q to be added", u)
		}
	}

	want := []string{"http://a.test/3.png", "http://a.test/2.png", "http://a.test/1.png"}
	if got := s.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	s, a := newTestStore(t)

	if _, err := s.Add("http://a.test/x.png"); err != nil {
		t.Fatal(err)
	}
	before := s.List()
	saves := len(a.saved)

	added, err := s.Add("http://a.test/x.png")
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Fatal("duplicate add should report false")
	}
	if !reflect.DeepEqual(s.List(), before) {
		t.Fatal("duplicate add changed the list")
	}
	if len(a.saved) != saves {
		t.Fatal("duplicate add should not persist")
	}
}

func TestAddEmptyURL(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Add(""); !errors.Is(err, types.ErrEmptyURL) {
		t.Fatalf("expected ErrEmptyURL, got %v", err)
	}
}

func TestReAddKeepsOriginalPosition(t *testing.T) {
	// add(a), add(b), add(a) leaves a at its original slot: the second
	// add(a) is a pure no-op, not a move-to-front.
	s, _ := newTestStore(t)
	s.Add("http://a.test/x.png")
	s.Add("http://b.test/y.png")
	s.Add("http://a.test/x.png")

	want := []string{"http://b.test/y.png", "http://a.test/x.png"}
	if got := s.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRemove(t *testing.T) {
	t.Run("removes present URL", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.Add("http://a.test/x.png")
		s.Add("http://b.test/y.png")

		removed, err := s.Remove("http://b.test/y.png")
		if err != nil {
			t.Fatal(err)
		}
		if !removed {
			t.Fatal("expected removal to be reported")
		}

		want := []string{"http://a.test/x.png"}
		if got := s.List(); !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("absent URL is a no-op", func(t *testing.T) {
		s, a := newTestStore(t)
		s.Add("http://a.test/x.png")
		saves := len(a.saved)

		removed, err := s.Remove("http://c.test/z.png")
		if err != nil {
			t.Fatal(err)
		}
		if removed {
			t.Fatal("expected no removal")
		}
		if len(a.saved) != saves {
			t.Fatal("no-op remove should not persist")
		}
	})
}

func TestClear(t *testing.T) {
	s, a := newTestStore(t)
	s.Add("http://a.test/x.png")
	s.Add("http://b.test/y.png")

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if got := s.List(); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}

	loaded, err := a.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected adapter to hold empty list, got %v", loaded)
	}
}

func TestMutationsPersistImmediately(t *testing.T) {
	s, a := newTestStore(t)

	s.Add("http://a.test/x.png")
	if len(a.saved) != 1 {
		t.Fatalf("expected 1 save after add, got %d", len(a.saved))
	}
	s.Remove("http://a.test/x.png")
	if len(a.saved) != 2 {
		t.Fatalf("expected 2 saves after remove, got %d", len(a.saved))
	}
	s.Clear()
	if len(a.saved) != 3 {
		t.Fatalf("expected 3 saves after clear, got %d", len(a.saved))
	}
}

func TestSaveFailureRollsBack(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		s, a := newTestStore(t)
		s.Add("http://a.test/x.png")

		a.failNext = errors.New("disk full")
		_, err := s.Add("http://b.test/y.png")
		if err == nil {
			t.Fatal("expected save error")
		}

		want := []string{"http://a.test/x.png"}
		if got := s.List(); !reflect.DeepEqual(got, want) {
			t.Fatalf("expected rollback to %v, got %v", want, got)
		}
	})

	t.Run("remove", func(t *testing.T) {
		s, a := newTestStore(t)
		s.Add("http://a.test/x.png")

		a.failNext = errors.New("disk full")
		_, err := s.Remove("http://a.test/x.png")
		if err == nil {
			t.Fatal("expected save error")
		}
		if s.Len() != 1 {
			t.Fatal("expected list restored after failed remove")
		}
	})

	t.Run("clear", func(t *testing.T) {
		s, a := newTestStore(t)
		s.Add("http://a.test/x.png")

		a.failNext = errors.New("disk full")
		if err := s.Clear(); err == nil {
			t.Fatal("expected save error")
		}
		if s.Len() != 1 {
			t.Fatal("expected list restored after failed clear")
		}
	})
}

func TestNewDedupesLoadedList(t *testing.T) {
	a := &memAdapter{current: []string{
		"http://a.test/x.png",
		"http://b.test/y.png",
		"http://a.test/x.png",
		"",
	}}
	s, err := New(a)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"http://a.test/x.png", "http://b.test/y.png"}
	if got := s.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
