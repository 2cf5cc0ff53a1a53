// Package search defines the search filter model: a typed predicate
// intermediate representation, the builder that composes it from a flat
// filter set, and the two consumers of that representation: the store
// query translation lives in the persistence layer, while the in-memory
// compiler in this package serves client-held unit lists. Keeping one IR
// for both sides is what keeps the admin mirror and the public search
// behaviorally consistent.
package search

// Field identifies a filterable attribute. Unit-scoped fields resolve
// against a unit (or its related layout); project-scoped fields resolve
// against the owning project and its relations.
type Field string

const (
	FieldUnitProjectID  Field = "unit.project_id"
	FieldUnitBuildingID Field = "unit.building_id"
	FieldUnitLayoutID   Field = "unit.layout_id"
	FieldUnitStatus     Field = "unit.status"
	FieldUnitFloor      Field = "unit.floor"
	FieldUnitPrice      Field = "unit.price"
	FieldUnitBedrooms   Field = "unit.bedrooms"
	FieldUnitBathrooms  Field = "unit.bathrooms"
	FieldUnitArea       Field = "unit.area"
	FieldUnitView       Field = "unit.view"
	FieldUnitName       Field = "unit.name"
	FieldUnitNumber     Field = "unit.number"

	// FieldLayoutType lives on the unit's related layout, not the unit itself.
	FieldLayoutType Field = "layout.type"

	FieldProjectID           Field = "project.id"
	FieldProjectDeveloperID  Field = "project.developer_id"
	FieldProjectConstruction Field = "project.construction_status"
	FieldProjectName         Field = "project.name" // Matched across name translations.
	FieldLocationID          Field = "location.id"
	FieldLocationAddress     Field = "location.address"
	FieldLocationDistrict    Field = "location.district"
	FieldLocationCity        Field = "location.city"
)

// Condition is one node of the predicate tree. The set of variants is closed:
// every consumer switches over all of them.
type Condition interface {
	condition()
}

// Eq requires the field to equal the value.
type Eq struct {
	Field Field
	Value any
}

// Gt requires the field to be strictly greater than the value.
type Gt struct {
	Field Field
	Value float64
}

// Range requires the field to fall within the given bounds, both inclusive.
// A nil bound means unbounded on that side; a Range with two nil bounds is
// never produced by the builder.
type Range struct {
	Field Field
	Min   *float64
	Max   *float64
}

// In requires the field to equal one of the values.
type In struct {
	Field  Field
	Values []any
}

// Contains requires the field to contain the value as a case-insensitive
// substring.
type Contains struct {
	Field Field
	Value string
}

// And requires all child conditions to hold.
type And struct {
	Conds []Condition
}

// Or requires at least one child condition to hold.
type Or struct {
	Conds []Condition
}

// HasFeature requires the unit's features collection to contain at least one
// of the given stored names.
type HasFeature struct {
	Names []string
}

// HasAmenity requires the project to reference at least one amenity with one
// of the given names.
type HasAmenity struct {
	Names []string
}

// LayoutFlag requires the named boolean flag on the unit's related layout to
// be set. Names use the historical "has" spelling, e.g. "hasPets".
type LayoutFlag struct {
	Name string
}

func (Eq) condition()         {}
func (Gt) condition()         {}
func (Range) condition()      {}
func (In) condition()         {}
func (Contains) condition()   {}
func (And) condition()        {}
func (Or) condition()         {}
func (HasFeature) condition() {}
func (HasAmenity) condition() {}
func (LayoutFlag) condition() {}

// Conditions is the builder's output: unit-scope conditions AND project-scope
// conditions. For a unit search the caller applies both to the unit query
// (project scope through the owning project); for a project search the unit
// scope nests inside a "has at least one matching unit" relation condition.
type Conditions struct {
	Unit    []Condition
	Project []Condition
}

// Empty reports whether no condition was produced at all.
func (c Conditions) Empty() bool {
	return len(c.Unit) == 0 && len(c.Project) == 0
}

func ptr(v float64) *float64 {
	return &v
}
