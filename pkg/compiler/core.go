// Package compiler holds the shared services the element walkers build
// rows with: typed row allocation, reference-edge emission, and dispatch
// of unrecognized markup to registered extensions.
package compiler

import (
	"github.com/walteh/gowix/pkg/identifier"
	"github.com/walteh/gowix/pkg/messages"
	"github.com/walteh/gowix/pkg/source"
	"github.com/walteh/gowix/pkg/tables"
	"github.com/walteh/gowix/pkg/validate"
	"gitlab.com/tozd/go/errors"
)

// SourceDirName is the well-known root the installer engine resolves at
// run time; it never gets a generated short name.
const SourceDirName = "SourceDir"

// Core allocates rows into one section and records the edges the linker
// must later satisfy. Single-owner: one compilation pipeline per Core.
type Core struct {
	section *tables.Section
	catalog *tables.Catalog
	handler messages.Handler
}

func NewCore(section *tables.Section, catalog *tables.Catalog, handler messages.Handler) *Core {
	if section == nil || catalog == nil || handler == nil {
		panic(errors.New("compiler: section, catalog and handler are all required"))
	}
	return &Core{section: section, catalog: catalog, handler: handler}
}

func (c *Core) Section() *tables.Section {
	return c.section
}

// CreateRow allocates a row in the named table and appends it to the
// section. An unknown table name is a caller bug, not user input.
func (c *Core) CreateRow(loc source.Location, tableName string, id *identifier.Identifier) *tables.Row {
	def, ok := c.catalog.Table(tableName)
	if !ok {
		panic(errors.Errorf("compiler: unknown table %q", tableName))
	}

	row := tables.NewRow(def, loc)
	if id != nil {
		if len(id.ID) > validate.IdentifierDiagnosticLength {
			c.handler.OnMessage(messages.IdentifierTooLong(loc, tableName, def.Columns[0].Name, id.ID))
		}
		row.SetKey(id.ID)
	}
	c.section.AddRow(row)
	return row
}

// CreateSimpleReference records that a row keyed by keys must exist in the
// named table somewhere in the link set.
func (c *Core) CreateSimpleReference(loc source.Location, tableName string, keys ...string) {
	if tableName == "" || len(keys) == 0 {
		panic(errors.New("compiler: simple reference requires a table and at least one key"))
	}
	c.section.AddSimpleReference(tables.SimpleReference{Table: tableName, Keys: keys})
}

// CreateComplexReference emits a typed containment edge and, when the
// parent is concrete, the paired group edge the linker uses for flat
// membership queries.
func (c *Core) CreateComplexReference(
	loc source.Location,
	parentType tables.ComplexReferenceParentType,
	parentID, parentLanguage string,
	childType tables.ComplexReferenceChildType,
	childID string,
	isPrimary bool,
) {
	row := c.CreateRow(loc, tables.ComplexReferenceTable.Name, nil)
	row.SetField(0, parentID)
	row.SetField(1, int(parentType))
	if parentLanguage != "" {
		row.SetField(2, parentLanguage)
	}
	row.SetField(3, childID)
	row.SetField(4, int(childType))
	attributes := 0
	if isPrimary {
		attributes = 1
	}
	row.SetField(5, attributes)

	if parentType != tables.ParentUnknown && parentID != "" {
		c.section.AddGroupEdge(tables.GroupEdge{
			ParentType: parentType,
			ParentID:   parentID,
			ChildType:  childType,
			ChildID:    childID,
		})
	}
}

// CreateDirectoryRow derives the compact DefaultDir encoding for a
// directory and appends its row. When the markup supplied no identifier,
// one is derived from the naming inputs; a derivation the section has
// already emitted returns the identifier without appending another row.
func (c *Core) CreateDirectoryRow(
	loc source.Location,
	id *identifier.Identifier,
	parentID, name, shortName, sourceName, shortSourceName string,
) identifier.Identifier {
	if name == "" {
		panic(errors.New("compiler: directory row requires a name"))
	}

	target := encodeDirectoryName(name, shortName, parentID)
	value := target
	if sourceName != "" || shortSourceName != "" {
		src := shortSourceName
		if sourceName != "" {
			src = encodeDirectoryName(sourceName, shortSourceName, parentID)
		}
		value = target + ":" + src
	}

	if id == nil {
		derived := identifier.Anonymous("dir", parentID, name, shortName, sourceName, shortSourceName)
		if c.section.MarkAnonymousID(derived.ID) {
			// Same derivation inputs, same directory. The schema would
			// accept the duplicate row; the linker should not have to.
			return derived
		}
		id = &derived
	}

	row := c.CreateRow(loc, tables.DirectoryTable.Name, id)
	if parentID != "" {
		row.SetField(1, parentID)
	}
	row.SetField(2, value)

	return *id
}

// encodeDirectoryName produces the short|long pair, collapsing to just
// the long form when no distinct short form is needed.
func encodeDirectoryName(name, shortName, parentID string) string {
	if shortName == "" {
		if name == SourceDirName || validate.IsValidShortFilename(name, false) {
			return name
		}
		shortName = identifier.ShortName(name, false, false, "Directory", parentID)
	}
	if shortName == name {
		return name
	}
	return shortName + "|" + name
}
