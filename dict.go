package fift

// Entry is a dictionary entry: a canonical name, an active/ordinary
// flag, and a payload Continuation (spec §4.2).
type Entry struct {
	Name   string
	Active bool
	Code   *Continuation

	// LineReader marks an `::_`-defined word: when Active, the tokenizer
	// hands it the rest of the current line instead of the next token
	// (spec §4.8's ::_ row).
	LineReader bool
}

// scope is one overlay frame of the dictionary. `library NAME` pushes a
// fresh scope; the matching `}Libs` pops it, per spec §3.3.
type scope struct {
	byName map[string]*Entry
	order  []*Entry // most-recently-defined last, for redefinition history
}

func newScope() *scope {
	return &scope{byName: make(map[string]*Entry)}
}

// Dictionary is the name -> word-entry table, with nestable nested scope
// overlays (spec §4.2).
type Dictionary struct {
	frames []*scope
}

// NewDictionary returns a Dictionary with its single base scope open.
func NewDictionary() *Dictionary {
	return &Dictionary{frames: []*scope{newScope()}}
}

// PushScope opens a new overlay scope, used by `library NAME ... }Libs`.
func (d *Dictionary) PushScope() { d.frames = append(d.frames, newScope()) }

// PopScope closes the most recently opened overlay scope. Entries
// defined in it become unreachable by Lookup, but WordRefs already
// holding them remain valid (spec §3.3).
func (d *Dictionary) PopScope() {
	if len(d.frames) > 1 {
		d.frames = d.frames[:len(d.frames)-1]
	}
}

// ScopeDepth reports how many scope frames are currently open, including
// the base scope. It is 1 at top level and >1 while inside `library NAME
// ... }Libs` (spec §3.3), which `abort`/`abort"` use to tell a library
// precondition failure apart from a user-typed abort (spec §7).
func (d *Dictionary) ScopeDepth() int { return len(d.frames) }

// Lookup walks the frame stack top-down for an exact name match (spec §4.2).
func (d *Dictionary) Lookup(name string) *Entry {
	for i := len(d.frames) - 1; i >= 0; i-- {
		if e, ok := d.frames[i].byName[name]; ok {
			return e
		}
	}
	return nil
}

// Define installs name in the current (innermost) scope. If overwrite is
// false and name already exists in that scope, it returns
// RedefineForbidden (spec §4.2 policy; this is Fift's `-?` diagnostic on
// a bare `:` redefinition).
func (d *Dictionary) Define(name string, entry *Entry, overwrite bool) error {
	top := d.frames[len(d.frames)-1]
	if _, exists := top.byName[name]; exists && !overwrite {
		return RedefineForbidden{Name: name}
	}
	entry.Name = name
	top.byName[name] = entry
	top.order = append(top.order, entry)
	return nil
}

// Forget removes the most recent binding of name from the current scope
// only (see DESIGN.md's Open Question decision on `forget` scoping); an
// earlier binding of the same name in that scope becomes visible again.
func (d *Dictionary) Forget(name string) bool {
	top := d.frames[len(d.frames)-1]
	if _, ok := top.byName[name]; !ok {
		return false
	}
	delete(top.byName, name)
	for i := len(top.order) - 1; i >= 0; i-- {
		if top.order[i].Name == name {
			top.order = append(top.order[:i], top.order[i+1:]...)
			break
		}
	}
	for i := len(top.order) - 1; i >= 0; i-- {
		if top.order[i].Name == name {
			top.byName[name] = top.order[i]
			break
		}
	}
	return true
}

// Snapshot captures the current scope's definition order, for tests that
// verify "define N, forget N in reverse restores the dictionary exactly"
// (spec §8).
func (d *Dictionary) Snapshot() []string {
	top := d.frames[len(d.frames)-1]
	names := make([]string, len(top.order))
	for i, e := range top.order {
		names[i] = e.Name
	}
	return names
}
