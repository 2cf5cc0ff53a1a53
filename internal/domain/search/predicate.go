package search

import (
	"strings"

	"homio/internal/domain/entity"
)

// Matches evaluates unit-scope conditions against an in-memory unit. This is
// the client-mirror side of the filter model: the admin mass-edit surface
// holds a whole project's unit list and filters it locally, and compiling the
// same condition list keeps it consistent with the store query for every
// dimension both sides support.
//
// Project-scope conditions cannot be resolved against a lone unit and report
// no match; callers pass only the unit-scope list.
func Matches(u *entity.Unit, conds []Condition) bool {
	for _, cond := range conds {
		if !eval(u, cond) {
			return false
		}
	}

	return true
}

// Filter returns the units matching all the given unit-scope conditions,
// preserving input order.
func Filter(units []*entity.Unit, conds []Condition) []*entity.Unit {
	matched := make([]*entity.Unit, 0, len(units))
	for _, u := range units {
		if Matches(u, conds) {
			matched = append(matched, u)
		}
	}

	return matched
}

func eval(u *entity.Unit, cond Condition) bool {
	switch c := cond.(type) {
	case Eq:
		return evalEq(u, c)
	case Gt:
		v, ok := numericField(u, c.Field)

		return ok && v > c.Value
	case Range:
		v, ok := numericField(u, c.Field)
		if !ok {
			return false
		}
		if c.Min != nil && v < *c.Min {
			return false
		}
		if c.Max != nil && v > *c.Max {
			return false
		}

		return true
	case In:
		for _, candidate := range c.Values {
			if evalEq(u, Eq{Field: c.Field, Value: candidate}) {
				return true
			}
		}

		return false
	case Contains:
		v, ok := stringField(u, c.Field)

		return ok && strings.Contains(strings.ToLower(v), strings.ToLower(c.Value))
	case And:
		for _, child := range c.Conds {
			if !eval(u, child) {
				return false
			}
		}

		return true
	case Or:
		for _, child := range c.Conds {
			if eval(u, child) {
				return true
			}
		}

		return false
	case HasFeature:
		return u.HasFeature(c.Names...)
	case LayoutFlag:
		return u.Layout != nil && u.Layout.Flag(c.Name)
	default:
		// Project-scope relation conditions are not resolvable here.
		return false
	}
}

func evalEq(u *entity.Unit, c Eq) bool {
	switch want := c.Value.(type) {
	case int:
		v, ok := numericField(u, c.Field)

		return ok && v == float64(want)
	case float64:
		v, ok := numericField(u, c.Field)

		return ok && v == want
	case string:
		v, ok := stringField(u, c.Field)

		return ok && v == want
	default:
		return false
	}
}

func numericField(u *entity.Unit, f Field) (float64, bool) {
	switch f {
	case FieldUnitPrice:
		return u.Price, true
	case FieldUnitFloor:
		return float64(u.Floor), true
	case FieldUnitBedrooms:
		return float64(u.Bedrooms), true
	case FieldUnitBathrooms:
		return float64(u.Bathrooms), true
	case FieldUnitArea:
		if u.Area == nil {
			return 0, false
		}

		return *u.Area, true
	default:
		return 0, false
	}
}

func stringField(u *entity.Unit, f Field) (string, bool) {
	switch f {
	case FieldUnitStatus:
		return string(u.Status), true
	case FieldUnitView:
		return u.View, true
	case FieldUnitName:
		return u.Name, true
	case FieldUnitNumber:
		return u.Number, true
	case FieldUnitProjectID:
		return u.ProjectID.String(), true
	case FieldUnitBuildingID:
		if u.BuildingID == nil {
			return "", false
		}

		return u.BuildingID.String(), true
	case FieldUnitLayoutID:
		if u.LayoutID == nil {
			return "", false
		}

		return u.LayoutID.String(), true
	case FieldLayoutType:
		if u.Layout == nil {
			return "", false
		}

		return u.Layout.Type, true
	default:
		return "", false
	}
}
