package tables

import (
	"strconv"

	"github.com/walteh/gowix/pkg/source"
	"gitlab.com/tozd/go/errors"
)

type Field struct {
	Column ColumnDefinition
	Data   any
}

// Row is one typed record instance, bound to the markup location that
// produced it. Fields are pre-sized from the schema; field 0 is the key.
type Row struct {
	Definition *TableDefinition
	Location   source.Location
	Fields     []Field
}

func NewRow(def *TableDefinition, loc source.Location) *Row {
	if def == nil {
		panic(errors.New("tables: row requires a table definition"))
	}
	fields := make([]Field, len(def.Columns))
	for i, col := range def.Columns {
		fields[i] = Field{Column: col}
	}
	return &Row{Definition: def, Location: loc, Fields: fields}
}

func (r *Row) SetField(index int, data any) {
	if index < 0 || index >= len(r.Fields) {
		panic(errors.Errorf("tables: field index %d out of range for table %s", index, r.Definition.Name))
	}
	r.Fields[index].Data = data
}

func (r *Row) Field(index int) any {
	if index < 0 || index >= len(r.Fields) {
		panic(errors.Errorf("tables: field index %d out of range for table %s", index, r.Definition.Name))
	}
	return r.Fields[index].Data
}

// SetKey stores id in field 0, casting to a number when the schema
// declares a numeric key. A non-numeric id against a numeric key column is
// a caller bug: user text never reaches numeric-keyed tables directly.
func (r *Row) SetKey(id string) {
	if r.Definition.Columns[0].Type == ColumnNumber {
		n, err := strconv.Atoi(id)
		if err != nil {
			panic(errors.Errorf("tables: identifier %q is not numeric but table %s has a numeric key", id, r.Definition.Name))
		}
		r.SetField(0, n)
		return
	}
	r.SetField(0, id)
}
