package inspection

// Report is one entry of a validation or sanitization report
type Report struct {
	Message  string `json:"message"`
	Property string `json:"property"`
}

// Node scoped overrides, restored when the walk leaves the node
type Overrides struct {
	Alias string
	Error string
}

// Scope swaps in the overrides of a node and returns a func putting
// the previous ones back.
func (o *Overrides) Scope(alias, errMessage string) func() {
	saved := *o
	o.Alias = alias
	o.Error = errMessage
	return func() {
		*o = saved
	}
}
