package values

// An Environment maps names to the values it owns, in the order the names were
// first bound. Ext is the enclosing environment; it is not owned, and Delete
// never follows it.
type Environment struct {
	Ext   *Environment
	names []string
	vals  []*Value
	index map[string]int
}

func NewEnvironment() *Environment {
	return &Environment{index: make(map[string]int)}
}

// Copy shares the enclosing environment and deep-copies the bindings.
func (e *Environment) Copy() *Environment {
	n := &Environment{
		Ext:   e.Ext,
		names: make([]string, len(e.names)),
		vals:  make([]*Value, len(e.vals)),
		index: make(map[string]int, len(e.index)),
	}
	copy(n.names, e.names)
	for i, v := range e.vals {
		n.vals[i] = v.Copy()
	}
	for k, i := range e.index {
		n.index[k] = i
	}
	return n
}

// Get returns a copy of the value bound to name in e or the nearest enclosing
// environment that binds it. The caller owns the copy.
func (e *Environment) Get(name string) (*Value, bool) {
	for ; e != nil; e = e.Ext {
		if i, ok := e.index[name]; ok {
			return e.vals[i].Copy(), true
		}
	}
	return nil, false
}

// Put binds a copy of v to name in e itself, replacing any existing binding there.
func (e *Environment) Put(name string, v *Value) {
	if i, ok := e.index[name]; ok {
		e.vals[i].Delete()
		e.vals[i] = v.Copy()
		return
	}
	e.index[name] = len(e.names)
	e.names = append(e.names, name)
	e.vals = append(e.vals, v.Copy())
}

// Def binds a copy of v to name in the outermost environment.
func (e *Environment) Def(name string, v *Value) {
	e.Root().Put(name, v)
}

func (e *Environment) Root() *Environment {
	for e.Ext != nil {
		e = e.Ext
	}
	return e
}

// Names are the names bound in e itself, oldest first.
func (e *Environment) Names() []string {
	result := make([]string, len(e.names))
	copy(result, e.names)
	return result
}

func (e *Environment) Len() int {
	return len(e.names)
}

func (e *Environment) Delete() {
	for _, v := range e.vals {
		v.Delete()
	}
	e.names, e.vals = nil, nil
	e.index = make(map[string]int)
}
