package ops

// Constructor builds an operation from the tag's argument and the
// fenced block's content lines.
type Constructor func(argument string, content []string) Operation

// Registry maps command keywords to operation constructors.
//
// A registry is an explicit value: callers build one at process start
// and pass it into the parsing pipeline. There is no global
// registration. Once populated the registry is read-only and safe to
// share across independently processed documents.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register binds a command keyword to a constructor. The first
// registration for a keyword wins; later collisions are ignored.
func (r *Registry) Register(command string, fn Constructor) {
	if _, exists := r.constructors[command]; exists {
		return
	}
	r.constructors[command] = fn
}

// Build constructs the operation for a parsed (command, argument,
// content) triple. An unknown keyword returns (nil, false); this is a
// normal outcome, not an error, and callers silently skip the entry.
func (r *Registry) Build(command, argument string, content []string) (Operation, bool) {
	fn, ok := r.constructors[command]
	if !ok {
		return nil, false
	}
	return fn(argument, content), true
}

// Builtins returns a registry populated with the four built-in
// operations, in their fixed order: write, append, console,
// console_output. Callers may register additional commands on top.
func Builtins(opts Options) *Registry {
	r := NewRegistry()
	r.Register("write", NewWrite)
	r.Register("append", NewAppend)
	r.Register("console", NewConsole(opts))
	r.Register("console_output", NewConsoleOutput(opts))
	return r
}
