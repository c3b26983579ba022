package fixp

import (
	"strings"

	"github.com/calebcase/oops"

	"github.com/calebcase/fixp/decimal"
)

// CaseSensitivity selects how a registered name is matched at lookup.
type CaseSensitivity uint8

// Name matching modes.
const (
	CaseSensitive CaseSensitivity = iota
	CaseInsensitive
)

// Constructor builds a type descriptor from argument literals. A nil slice
// means the name was written without an argument list; an empty non-nil
// slice means an argument list was present but empty.
type Constructor func(args []Literal) (*decimal.Descriptor, error)

type entry struct {
	name string
	ctor Constructor
	cs   CaseSensitivity
}

// Registry maps type names and aliases to constructors.
//
// Population must finish before the first lookup; afterward the registry is
// read only and safe for unsynchronized concurrent reads.
type Registry struct {
	names   map[string]*entry // exact spelling
	folded  map[string]*entry // lower cased, case insensitive entries only
	aliases map[string]string // lower cased alias -> registered name
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names:   map[string]*entry{},
		folded:  map[string]*entry{},
		aliases: map[string]string{},
	}
}

// Register binds a name to a constructor.
func (r *Registry) Register(name string, ctor Constructor, cs CaseSensitivity) (err error) {
	defer Error.WrapP(&err)

	if name == "" {
		return NameResolutionError.New("empty type name")
	}
	if ctor == nil {
		return NameResolutionError.New("nil constructor for %q", name)
	}

	if r.taken(name) {
		return NameResolutionError.New(
			"the data type family %q has already been registered",
			name,
		)
	}

	e := &entry{
		name: name,
		ctor: ctor,
		cs:   cs,
	}

	r.names[name] = e
	if cs == CaseInsensitive {
		r.folded[strings.ToLower(name)] = e
	}

	return nil
}

// RegisterAlias binds an alias to an already registered name.
func (r *Registry) RegisterAlias(alias, target string, cs CaseSensitivity) (err error) {
	defer Error.WrapP(&err)

	if _, err := r.lookup(target); err != nil {
		return oops.Trace(err)
	}

	if r.taken(alias) {
		return NameResolutionError.New(
			"the data type family %q has already been registered",
			alias,
		)
	}

	// Aliases resolve through their target, so matching is as loose as
	// the loosest path: a case insensitive alias folds its key.
	key := alias
	if cs == CaseInsensitive {
		key = strings.ToLower(alias)
	}

	r.aliases[key] = target

	return nil
}

func (r *Registry) taken(name string) bool {
	if _, ok := r.names[name]; ok {
		return true
	}

	folded := strings.ToLower(name)
	if _, ok := r.folded[folded]; ok {
		return true
	}
	if _, ok := r.aliases[name]; ok {
		return true
	}
	if _, ok := r.aliases[folded]; ok {
		return true
	}

	return false
}

func (r *Registry) lookup(name string) (*entry, error) {
	if e, ok := r.names[name]; ok {
		return e, nil
	}

	folded := strings.ToLower(name)
	if e, ok := r.folded[folded]; ok {
		return e, nil
	}

	if target, ok := r.aliases[name]; ok {
		return r.lookup(target)
	}
	if target, ok := r.aliases[folded]; ok {
		return r.lookup(target)
	}

	return nil, NameResolutionError.New("unknown data type family: %s", name)
}

// Resolve looks up a type name and invokes its constructor with the given
// argument literals.
func (r *Registry) Resolve(name string, args []Literal) (_ *decimal.Descriptor, err error) {
	defer Error.WrapP(&err)

	e, err := r.lookup(name)
	if err != nil {
		return nil, oops.Trace(err)
	}

	return e.ctor(args)
}

// Has reports whether a name or alias resolves.
func (r *Registry) Has(name string) bool {
	_, err := r.lookup(name)

	return err == nil
}
