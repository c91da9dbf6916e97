package dat

import "testing"

func TestPagedMap(t *testing.T) {
	var m PagedMapBMP
	if _, ok := m.Lookup('か'); ok {
		t.Fatalf("empty map should not contain anything")
	}
	m.Set(uint16('か'), 1)
	m.Set(uint16('カ'), 2)
	m.Set(uint16('a'), 3)
	if m.NumPages() != 2 {
		t.Errorf("expected 2 pages, have %d", m.NumPages())
	}
	if m.Len() != 3 {
		t.Errorf("expected 3 entries, have %d", m.Len())
	}
	if id, ok := m.Lookup('カ'); !ok || id != 2 {
		t.Errorf("Lookup(カ) = %d, %v", id, ok)
	}
	if _, ok := m.Lookup(0x1F600); ok {
		t.Errorf("runes outside the BMP are never mapped")
	}
	m.Set(uint16('a'), 0)
	m.Set(uint16('b'), 0)
	if m.Len() != 2 {
		t.Errorf("expected 2 entries after clearing, have %d", m.Len())
	}
}

// two keys "ab" and "ac" over the alphabet {a:1, b:2, c:3}
func smallDAT() *DAT {
	d := &DAT{
		Root:  1,
		Sigma: 3,
		Base:  []int32{0, 1, 2, 0, 0, 0},
		Check: []int32{-1, 0, 1, -1, 2, 2},
	}
	d.MapPaged.Set('a', 1)
	d.MapPaged.Set('b', 2)
	d.MapPaged.Set('c', 3)
	return d
}

func TestTransitionAndWalk(t *testing.T) {
	d := smallDAT()
	s, ok := d.Transition(d.Root, 1)
	if !ok || s != 2 {
		t.Fatalf("Transition(root, a) = %d, %v", s, ok)
	}
	if _, ok := d.Transition(d.Root, 2); ok {
		t.Errorf("there is no key starting with b")
	}
	var states []uint32
	d.Walk([]rune("acx"), func(state uint32, n int) bool {
		states = append(states, state)
		return true
	})
	if len(states) != 2 || states[0] != 2 || states[1] != 5 {
		t.Errorf("walk over acx visited %v", states)
	}
	states = states[:0]
	d.Walk([]rune("ab"), func(state uint32, n int) bool {
		states = append(states, state)
		return false
	})
	if len(states) != 1 {
		t.Errorf("walk should stop when visit returns false, visited %v", states)
	}
}
