package schema

// Properties
func NewProperties() *Properties {
	return &Properties{nodes: make(map[string]*Schema)}
}

// Set adds or replaces a property, new names are appended to the
// declaration order.
func (props *Properties) Set(name string, s *Schema) *Properties {
	if props.nodes == nil {
		props.nodes = make(map[string]*Schema)
	}
	if _, found := props.nodes[name]; !found {
		props.keys = append(props.keys, name)
	}
	props.nodes[name] = s
	return props
}

func (props *Properties) Get(name string) (*Schema, bool) {
	if props == nil {
		return nil, false
	}
	s, ok := props.nodes[name]
	return s, ok
}

func (props *Properties) Has(name string) bool {
	_, ok := props.Get(name)
	return ok
}

// Keys returns the declared names in declaration order, the
// wildcard included.
func (props *Properties) Keys() []string {
	if props == nil {
		return nil
	}
	return props.keys
}

func (props *Properties) Len() int {
	if props == nil {
		return 0
	}
	return len(props.keys)
}

// Wildcard returns the schema declared under "*"
func (props *Properties) Wildcard() (*Schema, bool) {
	return props.Get("*")
}

// Items
func ItemsOf(s *Schema) *Items {
	return &Items{Single: s}
}

func TupleOf(schemas ...*Schema) *Items {
	return &Items{Tuple: schemas}
}

func (items Items) IsTuple() bool {
	return items.Tuple != nil
}

// Enums
func EqualTo(v any) *Enum {
	return &Enum{Values: []any{v}}
}

func OneOf(values ...any) *Enum {
	return &Enum{Values: values, List: true}
}

// pointer helpers for literal schemas
func Bool(b bool) *bool {
	return &b
}

func Int(n int) *int {
	return &n
}

func Float(f float64) *float64 {
	return &f
}

// Patterns builds a pattern list, each source either a format name
// or a raw expression.
func Patterns(sources ...string) []Pattern {
	patterns := make([]Pattern, 0, len(sources))
	for _, src := range sources {
		patterns = append(patterns, NewPattern(src))
	}
	return patterns
}

// IsOptional returns the optional flag, or def if the schema does not
// state it.
func (s Schema) IsOptional(def bool) bool {
	if s.Optional == nil {
		return def
	}
	return *s.Optional
}

// SingleType returns the declared type when exactly one is declared
func (s Schema) SingleType() (string, bool) {
	if len(s.Type) == 1 {
		return s.Type[0], true
	}
	return "", false
}

func (s Schema) HasExtra(key string) bool {
	_, ok := s.Extra[key]
	return ok
}

// Map renders the schema back into a structural value, functions
// are left out.
func (s Schema) Map() map[string]any {
	tp := make(map[string]any)
	if len(s.Type) == 1 && !s.TypeList {
		tp["type"] = s.Type[0]
	} else if len(s.Type) > 0 {
		tp["type"] = s.Type
	}
	if s.Optional != nil {
		tp["optional"] = *s.Optional
	}
	if s.Properties != nil {
		props := make(map[string]any)
		for _, name := range s.Properties.Keys() {
			child, _ := s.Properties.Get(name)
			props[name] = child.Map()
		}
		tp["properties"] = props
	}
	if s.Items != nil {
		if s.Items.IsTuple() {
			arr := make([]any, 0, len(s.Items.Tuple))
			for _, child := range s.Items.Tuple {
				arr = append(arr, child.Map())
			}
			tp["items"] = arr
		} else if s.Items.Single != nil {
			tp["items"] = s.Items.Single.Map()
		}
	}
	if len(s.Pattern) > 0 {
		arr := make([]string, 0, len(s.Pattern))
		for _, p := range s.Pattern {
			arr = append(arr, p.Source)
		}
		tp["pattern"] = arr
	}
	setInt := func(name string, n *int) {
		if n != nil {
			tp[name] = *n
		}
	}
	setInt("minLength", s.MinLength)
	setInt("maxLength", s.MaxLength)
	setInt("exactLength", s.ExactLength)
	setFloat := func(name string, f *float64) {
		if f != nil {
			tp[name] = *f
		}
	}
	setFloat("lt", s.Lt)
	setFloat("lte", s.Lte)
	setFloat("gt", s.Gt)
	setFloat("gte", s.Gte)
	setEnum := func(name string, e *Enum) {
		if e == nil {
			return
		}
		if e.List {
			tp[name] = e.Values
		} else if len(e.Values) > 0 {
			tp[name] = e.Values[0]
		}
	}
	setEnum("eq", s.Eq)
	setEnum("ne", s.Ne)
	if s.Min != nil {
		tp["min"] = s.Min
	}
	if s.Max != nil {
		tp["max"] = s.Max
	}
	if s.Uniqueness {
		tp["uniqueness"] = true
	}
	if s.Strict {
		tp["strict"] = true
	}
	if s.SomeKeys != nil {
		tp["someKeys"] = s.SomeKeys
	}
	if (s.Def != nil || s.HasDef) && !IsNow(s.Def) {
		tp["def"] = s.Def
	}
	if s.Rules != nil {
		tp["rules"] = s.Rules
	}
	if s.Alias != "" {
		tp["alias"] = s.Alias
	}
	if s.Error != "" {
		tp["error"] = s.Error
	}
	for k, v := range s.Extra {
		tp[k] = v
	}
	return tp
}
