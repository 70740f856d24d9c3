package tables

import "strings"

type SectionType int

const (
	SectionUnknown SectionType = iota
	SectionProduct
	SectionModule
	SectionFragment
)

// SimpleReference asserts that a row with the given composite key must
// exist somewhere in the link set.
type SimpleReference struct {
	Table string
	Keys  []string
}

// SymbolicName is the form the linker indexes: table:key1/key2.
func (r SimpleReference) SymbolicName() string {
	return r.Table + ":" + strings.Join(r.Keys, "/")
}

type ComplexReferenceParentType int

const (
	ParentUnknown ComplexReferenceParentType = iota
	ParentFeature
	ParentModule
	ParentProduct
)

type ComplexReferenceChildType int

const (
	ChildUnknown ComplexReferenceChildType = iota
	ChildComponent
	ChildFeature
	ChildModule
)

// GroupEdge is the untyped companion of a complex reference; it lets the
// linker answer flat "what belongs to this group" queries without walking
// the typed tree.
type GroupEdge struct {
	ParentType ComplexReferenceParentType
	ParentID   string
	ChildType  ComplexReferenceChildType
	ChildID    string
}

// Section owns the ordered rows of one compilation unit fragment and the
// edges the linker must satisfy. It is single-owner state: one pipeline,
// no locking.
type Section struct {
	ID       string
	Type     SectionType
	Codepage int

	rows         []*Row
	simpleRefs   []SimpleReference
	groupEdges   []GroupEdge
	anonymousIDs map[string]bool
}

func NewSection(id string, typ SectionType, codepage int) *Section {
	return &Section{
		ID:           id,
		Type:         typ,
		Codepage:     codepage,
		anonymousIDs: make(map[string]bool),
	}
}

func (s *Section) AddRow(row *Row) {
	s.rows = append(s.rows, row)
}

func (s *Section) AddSimpleReference(ref SimpleReference) {
	s.simpleRefs = append(s.simpleRefs, ref)
}

func (s *Section) AddGroupEdge(edge GroupEdge) {
	s.groupEdges = append(s.groupEdges, edge)
}

func (s *Section) Rows() []*Row {
	return s.rows
}

func (s *Section) SimpleReferences() []SimpleReference {
	return s.simpleRefs
}

func (s *Section) GroupEdges() []GroupEdge {
	return s.groupEdges
}

// MarkAnonymousID records a generated identifier and reports whether it
// had been emitted in this section before. Used to collapse duplicate
// derived directory rows.
func (s *Section) MarkAnonymousID(id string) bool {
	seen := s.anonymousIDs[id]
	s.anonymousIDs[id] = true
	return seen
}
