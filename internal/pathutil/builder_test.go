package pathutil

import "testing"

func TestPathBuilder_Basic(t *testing.T) {
	p := &PathBuilder{}
	p.Push("properties")
	p.Push("name")

	got := p.String()
	want := "#/properties/name"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathBuilder_WithIndex(t *testing.T) {
	p := &PathBuilder{}
	p.Push("allOf")
	p.PushIndex(0)
	p.Push("properties")

	got := p.String()
	want := "#/allOf/0/properties"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathBuilder_EscapesSlashAndTilde(t *testing.T) {
	p := &PathBuilder{}
	p.Push("paths")
	p.Push("/a/b")
	p.Push("get")
	p.Push("responses")
	p.Push("200")

	got := p.String()
	want := "#/paths/~1a~1b/get/responses/200"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	p.Reset()
	p.Push("x~y")
	if got := p.String(); got != "#/x~0y" {
		t.Errorf("String() = %q, want %q", got, "#/x~0y")
	}
}

func TestPathBuilder_PushPop(t *testing.T) {
	p := &PathBuilder{}
	p.Push("a")
	p.Push("b")
	if !p.Pop() {
		t.Fatal("Pop() = false, want true")
	}
	p.Push("c")

	got := p.String()
	want := "#/a/c"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if p.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", p.Depth())
	}
}

func TestPathBuilder_Empty(t *testing.T) {
	p := &PathBuilder{}
	if got := p.String(); got != "#/" {
		t.Errorf("String() on empty = %q, want %q", got, "#/")
	}
}

func TestPathBuilder_PopEmpty(t *testing.T) {
	p := &PathBuilder{}
	if p.Pop() {
		t.Error("Pop() on empty = true, want false")
	}
	if got := p.String(); got != "#/" {
		t.Errorf("String() after Pop on empty = %q, want %q", got, "#/")
	}
}

func TestPathBuilder_Child(t *testing.T) {
	p := &PathBuilder{}
	if got := p.Child("info"); got != "#/info" {
		t.Errorf("Child() on empty = %q, want %q", got, "#/info")
	}
	p.Push("paths")
	if got := p.Child("/pets"); got != "#/paths/~1pets" {
		t.Errorf("Child() = %q, want %q", got, "#/paths/~1pets")
	}
	if p.Depth() != 1 {
		t.Errorf("Child() mutated builder, Depth() = %d", p.Depth())
	}
}

func TestPathBuilder_Segments(t *testing.T) {
	p := &PathBuilder{}
	p.Push("channels")
	p.Push("user/signedup")

	segs := p.Segments()
	if len(segs) != 2 || segs[1] != "user~1signedup" {
		t.Errorf("Segments() = %v", segs)
	}
	segs[0] = "mutated"
	if p.String() != "#/channels/user~1signedup" {
		t.Errorf("Segments() returned aliased storage")
	}
}

func TestJoin(t *testing.T) {
	if got := Join("components", "schemas", "a/b"); got != "#/components/schemas/a~1b" {
		t.Errorf("Join() = %q", got)
	}
}

func TestPool(t *testing.T) {
	p := Acquire()
	p.Push("x")
	Release(p)

	q := Acquire()
	if q.Depth() != 0 {
		t.Errorf("Acquire() returned a non-reset builder with depth %d", q.Depth())
	}
	Release(q)
	Release(nil) // Should not panic
}
