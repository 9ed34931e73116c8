package audit

import "testing"

func TestPageMemorySearchSavesAndRestores(t *testing.T) {
	mem := NewPageMemory()
	mem.SetPage(3)

	mem.QueryChanged("cat")
	if mem.Page() != 1 {
		t.Errorf("Expected page 1 at search start, got %d", mem.Page())
	}

	mem.QueryChanged("")
	if mem.Page() != 3 {
		t.Errorf("Expected page restored to 3, got %d", mem.Page())
	}
}

func TestPageMemoryRestoreFromPageOne(t *testing.T) {
	mem := NewPageMemory()

	mem.QueryChanged("cat")
	mem.SetPage(2)
	mem.QueryChanged("")

	if mem.Page() != 1 {
		t.Errorf("Expected clear from page 1 search to land on page 1, got %d", mem.Page())
	}
}

func TestPageMemoryQueryEditsDoNotTouchPage(t *testing.T) {
	mem := NewPageMemory()
	mem.SetPage(4)

	mem.QueryChanged("ca")
	mem.SetPage(2)
	mem.QueryChanged("cat")

	if mem.Page() != 2 {
		t.Errorf("Expected non-empty to non-empty edit to leave page alone, got %d", mem.Page())
	}
}

func TestPageMemoryFiltersDiscardSavedPage(t *testing.T) {
	mem := NewPageMemory()
	mem.SetPage(3)

	mem.QueryChanged("cat")
	if mem.Page() != 1 {
		t.Fatalf("Expected page 1 during search, got %d", mem.Page())
	}

	// Toggling a language mid-search wins over the pending restore.
	mem.FiltersChanged()
	if mem.Page() != 1 {
		t.Errorf("Expected page 1 after filter change, got %d", mem.Page())
	}

	mem.QueryChanged("")
	if mem.Page() != 1 {
		t.Errorf("Expected saved page discarded, got %d", mem.Page())
	}
}

func TestPageMemoryClamp(t *testing.T) {
	mem := NewPageMemory()
	mem.SetPage(5)

	mem.Clamp(3)
	if mem.Page() != 3 {
		t.Errorf("Expected clamp to 3, got %d", mem.Page())
	}

	mem.Clamp(0)
	if mem.Page() != 1 {
		t.Errorf("Expected empty result to clamp to 1, got %d", mem.Page())
	}
}

func TestPageMemorySetPageFloor(t *testing.T) {
	mem := NewPageMemory()
	mem.SetPage(0)
	if mem.Page() != 1 {
		t.Errorf("Expected page floor of 1, got %d", mem.Page())
	}
}
