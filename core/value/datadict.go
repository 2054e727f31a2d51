package value

import "fmt"

// NoneKey is bound to None in every DataDict so field lookups always succeed.
const NoneKey = "none"

// Descriptor names one field of a record.
type Descriptor struct {
	Name string
}

// NewDescriptor creates a descriptor for the named field.
func NewDescriptor(name string) Descriptor {
	return Descriptor{Name: name}
}

// DataDict is an insertion ordered mapping of field names to values.
type DataDict struct {
	keys   []string
	values map[string]Value
}

// NewDataDict creates a dictionary holding only the implicit none binding.
func NewDataDict() DataDict {
	return DataDict{
		keys:   []string{NoneKey},
		values: map[string]Value{NoneKey: None()},
	}
}

// Insert binds name to val. Re-inserting an existing name replaces the value
// and keeps the field's original position. The none binding can't be
// rebound, inserting NoneKey is ignored.
func (d *DataDict) Insert(name string, val Value) {
	if name == NoneKey {
		return
	}
	if d.values == nil {
		d.values = make(map[string]Value)
	}
	if val == nil {
		val = None()
	}
	if _, ok := d.values[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.values[name] = val
}

// DataDescriptors lists the fields that hold something other than None, in
// insertion order.
func (d *DataDict) DataDescriptors() []Descriptor {
	var out []Descriptor
	for _, k := range d.keys {
		if isNone(d.values[k]) {
			continue
		}
		out = append(out, NewDescriptor(k))
	}
	return out
}

// GetData returns the value bound to desc. Descriptors must come from
// DataDescriptors on the same dictionary; anything else panics.
func (d *DataDict) GetData(desc Descriptor) Value {
	val, ok := d.values[desc.Name]
	if !ok {
		panic(fmt.Sprintf("value: no field %q for descriptor", desc.Name))
	}
	return val
}

// GetDataFromKey returns the value bound to name, or the implicit None binding
// if the field doesn't exist.
func (d *DataDict) GetDataFromKey(name string) Value {
	if val, ok := d.values[name]; ok {
		return val
	}
	if val, ok := d.values[NoneKey]; ok {
		return val
	}
	return None()
}

// Len is the number of bindings, including the implicit none key.
func (d *DataDict) Len() int {
	return len(d.keys)
}

func (d *DataDict) equal(o *DataDict) bool {
	if len(d.keys) != len(o.keys) {
		return false
	}
	for i, k := range d.keys {
		if o.keys[i] != k || !Equal(d.values[k], o.values[k]) {
			return false
		}
	}
	return true
}

func isNone(v Value) bool {
	p, ok := v.(Primitive)
	return ok && p.IsNone()
}

// Object is a record: a DataDict viewed as a single value.
type Object struct {
	dict DataDict
}

// NewObject creates an empty record.
func NewObject() *Object {
	return &Object{dict: NewDataDict()}
}

// TypeName implements Value.TypeName.
func (*Object) TypeName() string {
	return "object"
}

// Insert sets a field, see DataDict.Insert.
func (o *Object) Insert(name string, val Value) *Object {
	o.dict.Insert(name, val)
	return o
}

// DataDescriptors lists the record's non-None fields in order.
func (o *Object) DataDescriptors() []Descriptor {
	return o.dict.DataDescriptors()
}

// GetData returns the field for a descriptor obtained from DataDescriptors.
func (o *Object) GetData(desc Descriptor) Value {
	return o.dict.GetData(desc)
}

// GetDataFromKey returns the named field or None.
func (o *Object) GetDataFromKey(name string) Value {
	return o.dict.GetDataFromKey(name)
}
