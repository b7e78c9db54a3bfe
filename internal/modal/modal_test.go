package modal

import "testing"

func TestControllerStartsClosed(t *testing.T) {
	c := New()
	if c.State() != StateClosed {
		t.Fatal("expected new controller to be closed")
	}
	if url, open := c.Current(); open || url != "" {
		t.Fatalf("expected no payload, got %q open=%v", url, open)
	}
}

func TestOpenAndClose(t *testing.T) {
	c := New()

	c.Open("http://a.test/x.png")
	if c.State() != StateOpen {
		t.Fatal("expected open state")
	}
	url, open := c.Current()
	if !open || url != "http://a.test/x.png" {
		t.Fatalf("expected payload, got %q open=%v", url, open)
	}

	c.Close()
	if c.State() != StateClosed {
		t.Fatal("expected closed state")
	}
	if url, open := c.Current(); open || url != "" {
		t.Fatalf("expected cleared payload, got %q open=%v", url, open)
	}
}

func TestOpenReplacesPayload(t *testing.T) {
	c := New()
	c.Open("http://a.test/x.png")
	c.Open("http://b.test/y.png")

	url, open := c.Current()
	if !open || url != "http://b.test/y.png" {
		t.Fatalf("expected replaced payload, got %q open=%v", url, open)
	}
}

func TestOpenEmptyURLIgnored(t *testing.T) {
	c := New()
	c.Open("")
	if c.State() != StateClosed {
		t.Fatal("expected empty URL to leave controller closed")
	}

	c.Open("http://a.test/x.png")
	c.Open("")
	if url, _ := c.Current(); url != "http://a.test/x.png" {
		t.Fatalf("expected payload unchanged, got %q", url)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := New()
	c.Close()
	c.Close()
	if c.State() != StateClosed {
		t.Fatal("expected closed state")
	}
}
