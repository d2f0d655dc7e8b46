// Package profile holds the user profile an assistant is allowed to read and,
// for the editable partition, append to during conversation.
package profile

import (
	"encoding/json"
	"sync"
)

// Field is a fixed identity fact, never modified after construction.
type Field struct {
	Name  string
	Value string
}

// Profile has two partitions: fixed identity facts, and editable fields whose
// values are append-only sets of free-form strings. Duplicate appends are
// silently dropped. Field order is preserved for prompt rendering.
type Profile struct {
	mu     sync.RWMutex
	fixed  []Field
	order  []string
	values map[string][]string
}

func New(fixed []Field, editable []Field) *Profile {
	p := &Profile{
		fixed:  fixed,
		values: make(map[string][]string, len(editable)),
	}
	for _, f := range editable {
		if _, ok := p.values[f.Name]; !ok {
			p.order = append(p.order, f.Name)
		}
		p.values[f.Name] = appendUnique(p.values[f.Name], f.Value)
	}
	return p
}

// Append adds value to an editable field. It reports whether the value was
// added; unknown fields and duplicates are ignored.
func (p *Profile) Append(field, value string) bool {
	if value == "" {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	existing, ok := p.values[field]
	if !ok {
		return false
	}
	updated := appendUnique(existing, value)
	if len(updated) == len(existing) {
		return false
	}
	p.values[field] = updated
	return true
}

// Fixed returns the non-editable identity facts.
func (p *Profile) Fixed() []Field {
	out := make([]Field, len(p.fixed))
	copy(out, p.fixed)
	return out
}

// FixedValue returns the value of a fixed field, or "" if absent.
func (p *Profile) FixedValue(name string) string {
	for _, f := range p.fixed {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Values returns a copy of an editable field's entries.
func (p *Profile) Values(field string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]string, len(p.values[field]))
	copy(out, p.values[field])
	return out
}

// Fields returns the editable field names in declaration order.
func (p *Profile) Fields() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Editable returns a copy of the whole editable partition.
func (p *Profile) Editable() map[string][]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string][]string, len(p.values))
	for k, v := range p.values {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

// EditableJSON renders the editable partition as a JSON object, as shown to
// the model in the extraction prompt.
func (p *Profile) EditableJSON() string {
	b, err := json.Marshal(p.Editable())
	if err != nil {
		return "{}"
	}
	return string(b)
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
