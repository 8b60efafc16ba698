package scene

// Scene is the ordered list of committed elements. Order is paint order:
// later elements draw over earlier ones.
type Scene []Element

// Clone deep-copies every element so history snapshots stay isolated
// from later in-place mutation (drag moves edit elements directly).
func (s Scene) Clone() Scene {
	if s == nil {
		return nil
	}
	c := make(Scene, len(s))
	for i, e := range s {
		c[i] = e.Clone()
	}
	return c
}

// IndexOf returns the position of the element with the given ID, or -1.
func (s Scene) IndexOf(id string) int {
	for i, e := range s {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Delete removes the element with the given ID. It reports whether an
// element was actually removed.
func (s *Scene) Delete(id string) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	*s = append((*s)[:i], (*s)[i+1:]...)
	return true
}
