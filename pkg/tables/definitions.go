// Package tables models the intermediate representation handed to the
// linker: table schemas, typed rows bound to source locations, and the
// reference edges between them.
package tables

import "gitlab.com/tozd/go/errors"

type ColumnType int

const (
	ColumnString ColumnType = iota
	ColumnNumber
	ColumnObject
)

type ColumnDefinition struct {
	Name     string
	Type     ColumnType
	Length   int
	Nullable bool
}

type TableDefinition struct {
	Name    string
	Columns []ColumnDefinition
}

// Catalog is the schema set this semantic core knows how to emit rows
// into. The binder carries the full installer schema; these are the tables
// the front end itself allocates.
type Catalog struct {
	tables map[string]*TableDefinition
}

func NewCatalog(defs ...*TableDefinition) (*Catalog, error) {
	c := &Catalog{tables: make(map[string]*TableDefinition, len(defs))}
	for _, def := range defs {
		if _, ok := c.tables[def.Name]; ok {
			return nil, errors.Errorf("table %q defined twice", def.Name)
		}
		c.tables[def.Name] = def
	}
	return c, nil
}

func (c *Catalog) Table(name string) (*TableDefinition, bool) {
	def, ok := c.tables[name]
	return def, ok
}

// Built-in schemas. Field 0 is always the row's key.
var (
	DirectoryTable = &TableDefinition{
		Name: "Directory",
		Columns: []ColumnDefinition{
			{Name: "Directory", Type: ColumnString, Length: 72},
			{Name: "Directory_Parent", Type: ColumnString, Length: 72, Nullable: true},
			{Name: "DefaultDir", Type: ColumnString, Length: 255},
		},
	}

	ComponentTable = &TableDefinition{
		Name: "Component",
		Columns: []ColumnDefinition{
			{Name: "Component", Type: ColumnString, Length: 72},
			{Name: "ComponentId", Type: ColumnString, Length: 38, Nullable: true},
			{Name: "Directory_", Type: ColumnString, Length: 72},
			{Name: "Attributes", Type: ColumnNumber, Length: 2},
			{Name: "Condition", Type: ColumnString, Length: 255, Nullable: true},
			{Name: "KeyPath", Type: ColumnString, Length: 72, Nullable: true},
		},
	}

	FileTable = &TableDefinition{
		Name: "File",
		Columns: []ColumnDefinition{
			{Name: "File", Type: ColumnString, Length: 72},
			{Name: "Component_", Type: ColumnString, Length: 72},
			{Name: "FileName", Type: ColumnString, Length: 255},
			{Name: "FileSize", Type: ColumnNumber, Length: 4},
			{Name: "Version", Type: ColumnString, Length: 72, Nullable: true},
			{Name: "Language", Type: ColumnString, Length: 20, Nullable: true},
			{Name: "Attributes", Type: ColumnNumber, Length: 2, Nullable: true},
			{Name: "Sequence", Type: ColumnNumber, Length: 4},
		},
	}

	PropertyTable = &TableDefinition{
		Name: "Property",
		Columns: []ColumnDefinition{
			{Name: "Property", Type: ColumnString, Length: 72},
			{Name: "Value", Type: ColumnString, Length: 0},
		},
	}

	RegistryTable = &TableDefinition{
		Name: "Registry",
		Columns: []ColumnDefinition{
			{Name: "Registry", Type: ColumnString, Length: 72},
			{Name: "Root", Type: ColumnNumber, Length: 2},
			{Name: "Key", Type: ColumnString, Length: 255},
			{Name: "Name", Type: ColumnString, Length: 255, Nullable: true},
			{Name: "Value", Type: ColumnString, Length: 0, Nullable: true},
			{Name: "Component_", Type: ColumnString, Length: 72},
		},
	}

	MediaTable = &TableDefinition{
		Name: "Media",
		Columns: []ColumnDefinition{
			{Name: "DiskId", Type: ColumnNumber, Length: 2},
			{Name: "LastSequence", Type: ColumnNumber, Length: 4},
			{Name: "DiskPrompt", Type: ColumnString, Length: 64, Nullable: true},
			{Name: "Cabinet", Type: ColumnString, Length: 255, Nullable: true},
			{Name: "VolumeLabel", Type: ColumnString, Length: 32, Nullable: true},
			{Name: "Source", Type: ColumnString, Length: 72, Nullable: true},
		},
	}

	ComplexReferenceTable = &TableDefinition{
		Name: "ComplexReference",
		Columns: []ColumnDefinition{
			{Name: "Parent", Type: ColumnString, Length: 72},
			{Name: "ParentAttributes", Type: ColumnNumber, Length: 2},
			{Name: "ParentLanguage", Type: ColumnString, Length: 20, Nullable: true},
			{Name: "Child", Type: ColumnString, Length: 72},
			{Name: "ChildAttributes", Type: ColumnNumber, Length: 2},
			{Name: "Attributes", Type: ColumnNumber, Length: 2},
		},
	}
)

// DefaultCatalog returns a catalog holding every built-in schema.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		DirectoryTable,
		ComponentTable,
		FileTable,
		PropertyTable,
		RegistryTable,
		MediaTable,
		ComplexReferenceTable,
	)
	if err != nil {
		panic(err)
	}
	return c
}
