package sexptree

import "testing"

const footprint = `(footprint R_0603
	(layer F.Cu)
	(at 100 50 90)
	(pad 1 smd rect)
	(pad 2 smd rect)
	locked)`

func parseFootprint(t *testing.T) (*Document, NodeID) {
	t.Helper()
	doc, err := Parse([]byte(footprint))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	top := doc.Tree.Children(Root)
	if len(top) != 1 {
		t.Fatalf("Expected 1 top-level form, got %d", len(top))
	}
	return doc, top[0]
}

func TestDocumentHead(t *testing.T) {
	doc, fp := parseFootprint(t)

	head, ok := doc.Head(fp)
	if !ok || head != "footprint" {
		t.Errorf("Expected head 'footprint', got '%s' (%v)", head, ok)
	}

	empty, err := Parse([]byte("() (() a)"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	for _, id := range empty.Tree.Children(Root) {
		if _, ok := empty.Head(id); ok {
			t.Errorf("Expected no head for %q", empty.Text(id))
		}
	}
}

func TestDocumentFind(t *testing.T) {
	doc, fp := parseFootprint(t)

	at, ok := doc.Find(fp, "at")
	if !ok {
		t.Fatal("Expected to find (at ...)")
	}
	if string(doc.Text(at)) != "(at 100 50 90)" {
		t.Errorf("Expected '(at 100 50 90)', got '%s'", doc.Text(at))
	}

	locked, ok := doc.Find(fp, "locked")
	if !ok || doc.Kind(locked) != KindWord {
		t.Errorf("Expected to find the word 'locked', got %v", ok)
	}

	if _, ok := doc.Find(fp, "model"); ok {
		t.Error("Expected no match for 'model'")
	}
}

func TestDocumentFindAll(t *testing.T) {
	doc, fp := parseFootprint(t)

	pads := doc.FindAll(fp, "pad")
	if len(pads) != 2 {
		t.Fatalf("Expected 2 pads, got %d", len(pads))
	}

	for i, pad := range pads {
		num, err := doc.WordAt(pad, 1)
		if err != nil {
			t.Fatalf("WordAt failed: %v", err)
		}
		if want := string(rune('1' + i)); num != want {
			t.Errorf("Expected pad number '%s', got '%s'", want, num)
		}
	}
}

func TestDocumentItems(t *testing.T) {
	doc, fp := parseFootprint(t)

	at, _ := doc.Find(fp, "at")
	items := doc.Items(at)
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
	if string(doc.Text(items[2])) != "90" {
		t.Errorf("Expected '90', got '%s'", doc.Text(items[2]))
	}

	locked, _ := doc.Find(fp, "locked")
	if got := doc.Items(locked); len(got) != 0 {
		t.Errorf("Expected no items for a word, got %d", len(got))
	}
}

func TestDocumentWordAtErrors(t *testing.T) {
	doc, fp := parseFootprint(t)

	if _, err := doc.WordAt(fp, 2); err == nil {
		t.Error("Expected error for a group at index 2")
	}
	if _, err := doc.WordAt(fp, 99); err == nil {
		t.Error("Expected error for index out of bounds")
	}
	locked, _ := doc.Find(fp, "locked")
	if _, err := doc.WordAt(locked, 0); err == nil {
		t.Error("Expected error when indexing into a word")
	}
}
