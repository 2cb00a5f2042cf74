package compiler

// SymbolTable is a stack of scope maps, each mapping a variable name to a
// positive byte offset from the frame base (rbp). Offsets are assigned
// monotonically in units of 8 bytes. The stack always holds at least one
// scope — the outermost (global) one, seeded on construction.
type SymbolTable struct {
	scopes      []map[string]int
	stackOffset int
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []map[string]int{{}}}
}

// EnterScope pushes a new, empty scope and returns the stack offset at
// entry, so the caller can compute how much stack the scope consumed on
// exit.
func (s *SymbolTable) EnterScope() int {
	s.scopes = append(s.scopes, map[string]int{})
	return s.stackOffset
}

// ExitScope pops the innermost scope and restores stackOffset to
// entryOffset (the value EnterScope returned for this scope).
func (s *SymbolTable) ExitScope(entryOffset int) {
	s.scopes = s.scopes[:len(s.scopes)-1]
	s.stackOffset = entryOffset
}

// Bind records name in the innermost scope. If name already exists there,
// its offset is reused (a Let re-initializing the same name overwrites,
// it does not allocate new stack space); otherwise a fresh offset is
// allocated. Bind reports the offset and whether it was newly allocated.
func (s *SymbolTable) Bind(name string) (offset int, isNew bool) {
	innermost := s.scopes[len(s.scopes)-1]
	if off, ok := innermost[name]; ok {
		return off, false
	}
	s.stackOffset += 8
	innermost[name] = s.stackOffset
	return s.stackOffset, true
}

// Lookup searches scopes innermost-first and reports the offset of name,
// or (0, false) if it is not bound in any enclosing scope.
func (s *SymbolTable) Lookup(name string) (offset int, ok bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if off, found := s.scopes[i][name]; found {
			return off, true
		}
	}
	return 0, false
}

// StackOffset is the current (positive) total bytes of locals allocated
// since the outermost scope was entered.
func (s *SymbolTable) StackOffset() int {
	return s.stackOffset
}
