package termtypes

// Fragment is a piece of pre-rendered, internally generated markup.
// Each element is one top-level line that may contain ANSI styling.
//
// Fragments are only ever built from hard-coded templates and portfolio
// records; raw user input must never be wrapped in a Fragment.
type Fragment struct {
	elements []string
}

// NewFragment builds a fragment from pre-rendered elements.
func NewFragment(elements ...string) *Fragment {
	f := &Fragment{}
	for _, el := range elements {
		f.elements = append(f.elements, el)
	}
	return f
}

// Elements returns a copy of the fragment's top-level elements.
func (f *Fragment) Elements() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.elements))
	copy(out, f.elements)
	return out
}

// Len returns the number of elements.
func (f *Fragment) Len() int {
	if f == nil {
		return 0
	}
	return len(f.elements)
}
