// FILE: lixenwraith/colog/registry_test.go
package colog

import "testing"

func TestRegistryGetCreatesAndCaches(t *testing.T) {
	r := NewRegistry()

	l1, err := r.Get("svc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	l2, err := r.Get("svc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if l1 != l2 {
		t.Fatal("Get should return the same Logger instance for a repeated name")
	}
}

func TestRegistryGetDefaultIsStable(t *testing.T) {
	r := NewRegistry()
	d1, err := r.GetDefault()
	if err != nil {
		t.Fatalf("GetDefault: %v", err)
	}
	d2, err := r.GetDefault()
	if err != nil {
		t.Fatalf("GetDefault: %v", err)
	}
	if d1 != d2 {
		t.Fatal("GetDefault should be stable across calls")
	}
}

func TestRegistrySetDefaultOverrides(t *testing.T) {
	r := NewRegistry()
	custom, err := NewLogger("custom", DefaultConfig())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	r.SetDefault(custom)

	got, err := r.GetDefault()
	if err != nil {
		t.Fatalf("GetDefault: %v", err)
	}
	if got != custom {
		t.Fatal("GetDefault should return the logger set via SetDefault")
	}
}

func TestRegistryDropRemovesLogger(t *testing.T) {
	r := NewRegistry()
	first, err := r.Get("svc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	r.Drop("svc")
	second, err := r.Get("svc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first == second {
		t.Fatal("Get after Drop should construct a fresh Logger")
	}
}

func TestRegistryFlushAll(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := r.Get("b"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := r.FlushAll(); err != nil {
		t.Fatalf("FlushAll: %v", err)
	}
}
