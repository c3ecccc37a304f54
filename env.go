// env.go: the single flat variable store
//
// There is deliberately no parent link and no scope stack: the language
// parses nested blocks but executes everything against one mapping, so an
// assignment inside a block is visible everywhere after it runs. Lookup of
// an unbound name yields Nil rather than failing, and assignment doubles as
// declaration.
package interpreter

// Env maps variable names to runtime values for the lifetime of a run.
type Env struct {
	table map[string]Value
}

// NewEnv creates an environment pre-seeded with the VERSION binding. Hosts
// may Assign further bindings (e.g. script arguments) before the first run.
func NewEnv() *Env {
	return &Env{table: map[string]Value{
		"VERSION": Str(Version),
	}}
}

// Resolve returns the value bound to name, or Nil when the name is unbound.
// It never fails.
func (e *Env) Resolve(name string) Value {
	if v, ok := e.table[name]; ok {
		return v
	}
	return Nil
}

// Assign binds name to v, inserting or overwriting. There is no
// prior-declaration requirement and no removal operation.
func (e *Env) Assign(name string, v Value) {
	e.table[name] = v
}
