package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gowix/pkg/source"
	"github.com/walteh/gowix/pkg/tables"
)

func TestSimpleReferenceSymbolicName(t *testing.T) {
	tests := []struct {
		name string
		ref  tables.SimpleReference
		want string
	}{
		{
			name: "single key",
			ref:  tables.SimpleReference{Table: "Directory", Keys: []string{"TARGETDIR"}},
			want: "Directory:TARGETDIR",
		},
		{
			name: "composite key",
			ref:  tables.SimpleReference{Table: "Registry", Keys: []string{"HKLM", "Software\\Orca"}},
			want: "Registry:HKLM/Software\\Orca",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.SymbolicName())
		})
	}
}

func TestNewRowPresizesFields(t *testing.T) {
	row := tables.NewRow(tables.DirectoryTable, source.Unknown)

	require.Len(t, row.Fields, len(tables.DirectoryTable.Columns))
	assert.Equal(t, "Directory", row.Fields[0].Column.Name)
	assert.Nil(t, row.Field(0))
}

func TestRowSetKey(t *testing.T) {
	t.Run("string key", func(t *testing.T) {
		row := tables.NewRow(tables.DirectoryTable, source.Unknown)
		row.SetKey("TARGETDIR")
		assert.Equal(t, "TARGETDIR", row.Field(0))
	})

	t.Run("numeric key cast", func(t *testing.T) {
		row := tables.NewRow(tables.MediaTable, source.Unknown)
		row.SetKey("1")
		assert.Equal(t, 1, row.Field(0))
	})

	t.Run("non-numeric id on numeric key is a contract violation", func(t *testing.T) {
		row := tables.NewRow(tables.MediaTable, source.Unknown)
		assert.Panics(t, func() { row.SetKey("Disk1") })
	})
}

func TestRowFieldBounds(t *testing.T) {
	row := tables.NewRow(tables.PropertyTable, source.Unknown)

	assert.Panics(t, func() { row.SetField(2, "x") })
	assert.Panics(t, func() { row.Field(-1) })
}

func TestSectionOrderingAndEdges(t *testing.T) {
	s := tables.NewSection("product", tables.SectionProduct, 1252)

	first := tables.NewRow(tables.PropertyTable, source.Unknown)
	second := tables.NewRow(tables.DirectoryTable, source.Unknown)
	s.AddRow(first)
	s.AddRow(second)

	require.Len(t, s.Rows(), 2)
	assert.Same(t, first, s.Rows()[0])
	assert.Same(t, second, s.Rows()[1])

	s.AddSimpleReference(tables.SimpleReference{Table: "Property", Keys: []string{"ProductCode"}})
	require.Len(t, s.SimpleReferences(), 1)

	s.AddGroupEdge(tables.GroupEdge{ParentType: tables.ParentFeature, ParentID: "Main", ChildType: tables.ChildComponent, ChildID: "C1"})
	require.Len(t, s.GroupEdges(), 1)
}

func TestSectionMarkAnonymousID(t *testing.T) {
	s := tables.NewSection("frag", tables.SectionFragment, 0)

	assert.False(t, s.MarkAnonymousID("dirABC"))
	assert.True(t, s.MarkAnonymousID("dirABC"))
	assert.False(t, s.MarkAnonymousID("dirDEF"))
}

func TestCatalog(t *testing.T) {
	c := tables.DefaultCatalog()

	def, ok := c.Table("Directory")
	require.True(t, ok)
	assert.Equal(t, tables.DirectoryTable, def)

	_, ok = c.Table("NoSuchTable")
	assert.False(t, ok)

	_, err := tables.NewCatalog(tables.DirectoryTable, tables.DirectoryTable)
	assert.Error(t, err)
}
