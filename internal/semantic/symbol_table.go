package semantic

import "github.com/osad-sakana/kururi-compiler/internal/types"

// Symbol is a variable binding: its declared type plus the constness
// flag used to reject assignments to 'const' bindings.
type Symbol struct {
	Name    string
	Type    types.Type
	IsConst bool
}

// ScopeStack manages variable scopes during analysis as an explicit list
// of maps, innermost scope last. Loop-local and function-local scopes
// are pushed and popped uniformly.
type ScopeStack struct {
	scopes []map[string]*Symbol
}

// NewScopeStack creates a scope stack holding a single empty global scope.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{scopes: []map[string]*Symbol{{}}}
}

// Push opens a new innermost scope.
func (s *ScopeStack) Push() {
	s.scopes = append(s.scopes, map[string]*Symbol{})
}

// Pop closes the innermost scope. The global scope is never popped.
func (s *ScopeStack) Pop() {
	if len(s.scopes) > 1 {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}
}

// Define inserts a binding into the innermost scope.
func (s *ScopeStack) Define(name string, typ types.Type, isConst bool) {
	s.scopes[len(s.scopes)-1][name] = &Symbol{Name: name, Type: typ, IsConst: isConst}
}

// Resolve looks a name up from the innermost scope outward.
func (s *ScopeStack) Resolve(name string) (*Symbol, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if sym, ok := s.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// DeclaredInCurrent reports whether a name is already bound in the
// innermost scope. Redeclaration within one scope is a diagnostic.
func (s *ScopeStack) DeclaredInCurrent(name string) bool {
	_, ok := s.scopes[len(s.scopes)-1][name]
	return ok
}
