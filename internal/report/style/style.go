package style

import "fmt"

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// Style is a fully-resolved, immutable text style. The font family itself is
// owned by the canvas; a style only selects size, weight, leading and
// horizontal alignment.
type Style struct {
	Bold    bool
	Size    float64 // pt
	Leading float64 // pt, line height
	Align   Align
}

// Sheet is a registry of named styles. Roles are registered up front, either
// directly or derived from a parent role, and looked up by the table
// builders. Requesting an unregistered role is a programming error and
// panics.
type Sheet struct {
	styles map[string]Style
}

func NewSheet() *Sheet {
	return &Sheet{styles: map[string]Style{}}
}

// Add registers a style under a role name. A zero leading resolves to
// 1.2 × size. Re-registering a role panics.
func (s *Sheet) Add(name string, st Style) {
	if _, ok := s.styles[name]; ok {
		panic(fmt.Sprintf("style: role %q already registered", name))
	}
	if st.Leading == 0 {
		st.Leading = st.Size * 1.2
	}
	s.styles[name] = st
}

// Derive registers a child role that inherits every attribute of its parent
// and overrides only what mutate changes.
func (s *Sheet) Derive(name, parent string, mutate func(*Style)) {
	st := s.Get(parent)
	if mutate != nil {
		mutate(&st)
	}
	s.Add(name, st)
}

func (s *Sheet) Get(name string) Style {
	st, ok := s.styles[name]
	if !ok {
		panic(fmt.Sprintf("style: role %q not registered", name))
	}
	return st
}
