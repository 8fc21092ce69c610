package function

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

var (
	ErrUnknownFunction = errors.New("function: unknown function")
	ErrNoOverload      = errors.New("function: no overload accepts argument type")
	ErrIntegerRange    = errors.New("function: integer argument out of 32-bit range")
)

// Scalar is one registered overload of a named unary function.
//
// Several Scalars may share a Name as long as their Arg types differ; each
// is a thin adapter over a single varbin implementation.
type Scalar struct {
	Name        string
	Description string
	Arg         Type
	Return      Type
	Category    Category

	// Eval computes the result. The argument is guaranteed to have type Arg.
	Eval func(Value) (Value, error)
}

// Signature renders the overload as name(arg) -> return.
func (s Scalar) Signature() string {
	return fmt.Sprintf("%s(%s) -> %s", s.Name, s.Arg, s.Return)
}

// Catalog is a set of named scalar overloads.
//
// Registration is expected at init time; lookups and invocations only take
// the read lock and may run from any number of goroutines.
type Catalog struct {
	mu  sync.RWMutex
	fns map[string]map[Type]Scalar
}

func NewCatalog() *Catalog {
	return &Catalog{fns: map[string]map[Type]Scalar{}}
}

// Register adds an overload.
func (c *Catalog) Register(s Scalar) error {
	if s.Name == "" {
		return fmt.Errorf("function: name is required")
	}
	if s.Eval == nil {
		return fmt.Errorf("function: %q missing Eval", s.Name)
	}
	if _, err := ParseType(string(s.Arg)); err != nil {
		return fmt.Errorf("function: %q: %w", s.Name, err)
	}
	if _, err := ParseType(string(s.Return)); err != nil {
		return fmt.Errorf("function: %q: %w", s.Name, err)
	}
	if s.Category == 0 {
		return fmt.Errorf("function: %q missing Category", s.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	overloads, ok := c.fns[s.Name]
	if !ok {
		overloads = map[Type]Scalar{}
		c.fns[s.Name] = overloads
	}
	if _, exists := overloads[s.Arg]; exists {
		return fmt.Errorf("function: %s already registered", s.Signature())
	}
	overloads[s.Arg] = s
	return nil
}

// MustRegister is like Register but panics on error.
func (c *Catalog) MustRegister(s Scalar) {
	if err := c.Register(s); err != nil {
		panic(err)
	}
}

// Lookup returns the overload of name accepting arg.
func (c *Catalog) Lookup(name string, arg Type) (Scalar, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	overloads, ok := c.fns[name]
	if !ok {
		return Scalar{}, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	s, ok := overloads[arg]
	if !ok {
		return Scalar{}, fmt.Errorf("%w: %s(%s)", ErrNoOverload, name, arg)
	}
	return s, nil
}

// Overloads returns every overload registered under name, sorted by
// argument type.
func (c *Catalog) Overloads(name string) []Scalar {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Scalar, 0, len(c.fns[name]))
	for _, s := range c.fns[name] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Arg < out[j].Arg })
	return out
}

// List returns overloads in the given categories, sorted by name then
// argument type.
func (c *Catalog) List(cat Category) []Scalar {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Scalar
	for _, overloads := range c.fns {
		for _, s := range overloads {
			if s.Category.allows(cat) {
				out = append(out, s)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Arg < out[j].Arg
	})
	return out
}

// Names returns the distinct function names in the given categories, sorted.
func (c *Catalog) Names(cat Category) []string {
	var names []string
	for _, s := range c.List(cat) {
		if len(names) == 0 || names[len(names)-1] != s.Name {
			names = append(names, s.Name)
		}
	}
	return names
}

// Filter returns a new catalog holding the overloads for which keep returns
// true.
func (c *Catalog) Filter(keep func(Scalar) bool) *Catalog {
	out := NewCatalog()
	for _, s := range c.List(CategoryAll) {
		if keep(s) {
			out.MustRegister(s)
		}
	}
	return out
}

// Invoke resolves the overload of name for arg's type and evaluates it.
func (c *Catalog) Invoke(name string, arg Value) (Value, error) {
	s, err := c.Lookup(name, arg.Type)
	if err != nil {
		return Value{}, err
	}
	if arg.Type == TypeInteger && (arg.Int < math.MinInt32 || arg.Int > math.MaxInt32) {
		return Value{}, fmt.Errorf("%w: %s(%d)", ErrIntegerRange, name, arg.Int)
	}
	out, err := s.Eval(arg)
	if err != nil {
		return Value{}, err
	}
	if out.Type != s.Return {
		return Value{}, fmt.Errorf("function: %s returned %s", s.Signature(), out.Type)
	}
	return out, nil
}

var std = NewCatalog()

// Default returns the process-wide catalog holding the builtin functions.
func Default() *Catalog { return std }

// MustRegister registers s in the default catalog.
func MustRegister(s Scalar) { std.MustRegister(s) }

// Invoke evaluates name against the default catalog.
func Invoke(name string, arg Value) (Value, error) { return std.Invoke(name, arg) }
