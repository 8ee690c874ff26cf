package symbols

import "sync"

// ParamSet is a get-or-create pool of type-parameter symbols. Within
// one enhancement scope every mention of a parameter name must map to
// the same symbol.
type ParamSet struct {
	mu     sync.Mutex
	params map[string]*TypeParam
}

// NewParamSet builds an empty pool.
func NewParamSet() *ParamSet {
	return &ParamSet{params: make(map[string]*TypeParam, 4)}
}

// TypeParam implements TypeParamProvider.
func (s *ParamSet) TypeParam(name string) *TypeParam {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.params[name]; ok {
		return p
	}
	p := &TypeParam{Name: name}
	s.params[name] = p
	return p
}
