package proptable

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// DataSource enumerates the rows and members of a collection so the grid
// builders can bind cells without knowing the object model behind it.
type DataSource interface {
	// Name is the collection's path prefix, e.g. "items".
	Name() string
	// Len returns the number of rows.
	Len() int
	// Members lists the immediate members of one row, in column order.
	Members() []string
	// Property binds row index's member. ok is false if the row has no
	// such member or the row is nil.
	Property(index int, member string) (Accessor, bool)
}

// SliceSource adapts a pointer to a slice of structs (or struct pointers).
// Members are the struct's exported fields, one level deep: nested struct
// fields are not expanded and embedded structs are not flattened. A field
// tagged `table:"-"` is hidden.
type SliceSource struct {
	name    string
	slice   reflect.Value
	members []string
	index   map[string]int
}

// NewSliceSource wraps ptr, which must be a *[]T or *[]*T with T a struct.
// The slice is read live: rows appended by the host show up next frame.
func NewSliceSource(name string, ptr any) (*SliceSource, error) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: got %T", ErrNotSliceOfStructs, ptr)
	}
	elem := v.Elem().Type().Elem()
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: element type %s", ErrNotSliceOfStructs, elem)
	}

	s := &SliceSource{
		name:  name,
		slice: v.Elem(),
		index: make(map[string]int),
	}
	for i := range elem.NumField() {
		f := elem.Field(i)
		if !f.IsExported() || f.Anonymous || f.Tag.Get("table") == "-" {
			continue
		}
		s.members = append(s.members, f.Name)
		s.index[f.Name] = i
	}
	return s, nil
}

// Name implements DataSource.
func (s *SliceSource) Name() string { return s.name }

// Len implements DataSource.
func (s *SliceSource) Len() int { return s.slice.Len() }

// Members implements DataSource.
func (s *SliceSource) Members() []string { return s.members }

// Property implements DataSource.
func (s *SliceSource) Property(index int, member string) (Accessor, bool) {
	field, ok := s.index[member]
	if !ok || index < 0 || index >= s.slice.Len() {
		return nil, false
	}
	row := s.slice.Index(index)
	if row.Kind() == reflect.Pointer {
		if row.IsNil() {
			return nil, false
		}
		row = row.Elem()
	}
	return fieldAccessor{
		path:  fmt.Sprintf("%s[%d].%s", s.name, index, member),
		value: row.Field(field),
	}, true
}

// fieldAccessor binds an addressable struct field.
type fieldAccessor struct {
	path  string
	value reflect.Value
}

func (a fieldAccessor) Path() string { return a.path }

func (a fieldAccessor) Get() any { return a.value.Interface() }

func (a fieldAccessor) Set(v any) error {
	if err := assign(a.value, v); err != nil {
		return fmt.Errorf("set %s: %w", a.path, err)
	}
	return nil
}

// RecordSource adapts loosely typed records, e.g. rows decoded from YAML
// or JSON. It enumerates members without reflection.
type RecordSource struct {
	name    string
	records []map[string]any
	members []string
}

// NewRecordSource wraps records. members fixes the column order; when
// empty, the first record's keys are used in sorted order.
func NewRecordSource(name string, records []map[string]any, members ...string) *RecordSource {
	if len(members) == 0 && len(records) > 0 {
		members = slices.Sorted(maps.Keys(records[0]))
	}
	return &RecordSource{name: name, records: records, members: members}
}

// Name implements DataSource.
func (s *RecordSource) Name() string { return s.name }

// Len implements DataSource.
func (s *RecordSource) Len() int { return len(s.records) }

// Members implements DataSource.
func (s *RecordSource) Members() []string { return s.members }

// Property implements DataSource.
func (s *RecordSource) Property(index int, member string) (Accessor, bool) {
	if index < 0 || index >= len(s.records) || s.records[index] == nil {
		return nil, false
	}
	if _, ok := s.records[index][member]; !ok {
		return nil, false
	}
	return recordAccessor{
		path:   fmt.Sprintf("%s[%d].%s", s.name, index, member),
		record: s.records[index],
		key:    member,
	}, true
}

// recordAccessor binds one key of a record. Writes keep the type of the
// value already stored under the key.
type recordAccessor struct {
	path   string
	record map[string]any
	key    string
}

func (a recordAccessor) Path() string { return a.path }

func (a recordAccessor) Get() any { return a.record[a.key] }

func (a recordAccessor) Set(v any) error {
	cur := a.record[a.key]
	if cur == nil {
		a.record[a.key] = v
		return nil
	}
	dst := reflect.New(reflect.TypeOf(cur)).Elem()
	if err := assign(dst, v); err != nil {
		return fmt.Errorf("set %s: %w", a.path, err)
	}
	a.record[a.key] = dst.Interface()
	return nil
}
