package postgres

import (
	"context"
	"fmt"
	"strings"

	"homio/internal/domain/entity"
	domainerrors "homio/internal/domain/errors"
	"homio/internal/domain/repository"
	"homio/internal/domain/search"
	"homio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// searchRepository implements the repository.SearchRepository interface by
// translating the condition tree into SQL. The count and the page fetch are
// built from the same SearchQuery and run concurrently so they can never
// observe different predicates.
type searchRepository struct {
	db *gorm.DB
}

// NewSearchRepository is the constructor for searchRepository.
func NewSearchRepository(db *gorm.DB) repository.SearchRepository {
	return &searchRepository{
		db: db,
	}
}

// SearchProjects paginates projects. Unit-scope conditions nest inside a
// "has at least one matching unit" relation condition.
func (repo *searchRepository) SearchProjects(ctx context.Context, query repository.SearchQuery) ([]*entity.Project, int64, error) {
	where, args, err := projectScopeSQL(query.Conds)
	if err != nil {
		return nil, 0, err
	}

	var (
		projectModels []*model.ProjectModel
		total         int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		countQuery := repo.db.WithContext(groupCtx).Model(&model.ProjectModel{})
		if where != "" {
			countQuery = countQuery.Where(where, args...)
		}
		if err := countQuery.Count(&total).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to count projects")
		}

		return nil
	})
	group.Go(func() error {
		pageQuery := repo.db.WithContext(groupCtx).Model(&model.ProjectModel{})
		for _, preload := range projectPreloads {
			pageQuery = pageQuery.Preload(preload)
		}
		if where != "" {
			pageQuery = pageQuery.Where(where, args...)
		}
		if err := pageQuery.
			Order(projectOrderSQL(query.Sort)).
			Offset(query.Page.Offset).
			Limit(query.Page.Limit).
			Find(&projectModels).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to search projects")
		}

		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, total, nil
}

// SearchUnits paginates units. Project-scope conditions apply through the
// owning project.
func (repo *searchRepository) SearchUnits(ctx context.Context, query repository.SearchQuery) ([]*entity.Unit, int64, error) {
	where, args, err := unitScopeSQL(query.Conds)
	if err != nil {
		return nil, 0, err
	}

	var (
		unitModels []*model.UnitModel
		total      int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		countQuery := repo.db.WithContext(groupCtx).Model(&model.UnitModel{})
		if where != "" {
			countQuery = countQuery.Where(where, args...)
		}
		if err := countQuery.Count(&total).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to count units")
		}

		return nil
	})
	group.Go(func() error {
		pageQuery := repo.db.WithContext(groupCtx).
			Model(&model.UnitModel{}).
			Preload("Layout").
			Preload("Features")
		if where != "" {
			pageQuery = pageQuery.Where(where, args...)
		}
		if err := pageQuery.
			Order(unitOrderSQL(query.Sort)).
			Offset(query.Page.Offset).
			Limit(query.Page.Limit).
			Find(&unitModels).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to search units")
		}

		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	units := make([]*entity.Unit, 0, len(unitModels))
	for _, unitM := range unitModels {
		units = append(units, toUnitDomain(unitM))
	}

	return units, total, nil
}

// --- Condition tree to SQL translation ---

// unitScopeSQL renders the full predicate against the units table.
// Project-scope conditions nest inside an EXISTS on the owning project.
func unitScopeSQL(conds search.Conditions) (string, []any, error) {
	parts := make([]string, 0, len(conds.Unit)+1)
	var args []any

	for _, cond := range conds.Unit {
		sql, condArgs, err := unitCondSQL(cond)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		args = append(args, condArgs...)
	}

	if len(conds.Project) > 0 {
		inner := make([]string, 0, len(conds.Project))
		for _, cond := range conds.Project {
			sql, condArgs, err := projectCondSQL(cond)
			if err != nil {
				return "", nil, err
			}
			inner = append(inner, sql)
			args = append(args, condArgs...)
		}
		parts = append(parts,
			"EXISTS (SELECT 1 FROM projects WHERE projects.id = units.project_id AND "+
				strings.Join(inner, " AND ")+")")
	}

	return strings.Join(parts, " AND "), args, nil
}

// projectScopeSQL renders the full predicate against the projects table.
// Unit-scope conditions nest inside an EXISTS on the project's units.
func projectScopeSQL(conds search.Conditions) (string, []any, error) {
	parts := make([]string, 0, len(conds.Project)+1)
	var args []any

	for _, cond := range conds.Project {
		sql, condArgs, err := projectCondSQL(cond)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		args = append(args, condArgs...)
	}

	if len(conds.Unit) > 0 {
		inner := make([]string, 0, len(conds.Unit))
		for _, cond := range conds.Unit {
			sql, condArgs, err := unitCondSQL(cond)
			if err != nil {
				return "", nil, err
			}
			inner = append(inner, sql)
			args = append(args, condArgs...)
		}
		parts = append(parts,
			"EXISTS (SELECT 1 FROM units WHERE units.project_id = projects.id AND "+
				strings.Join(inner, " AND ")+")")
	}

	return strings.Join(parts, " AND "), args, nil
}

func unitCondSQL(cond search.Condition) (string, []any, error) {
	switch c := cond.(type) {
	case search.Eq:
		return unitCompareSQL(c.Field, "= ?", c.Value)
	case search.Gt:
		return unitCompareSQL(c.Field, "> ?", c.Value)
	case search.Range:
		return unitRangeSQL(c)
	case search.In:
		return unitCompareSQL(c.Field, "IN ?", c.Values)
	case search.Contains:
		col, ok := unitColumn(c.Field)
		if !ok {
			return "", nil, errors.Errorf("field %q is not unit-scoped", c.Field)
		}

		return "LOWER(" + col + ") LIKE ?", []any{likePattern(c.Value)}, nil
	case search.And:
		return combineSQL(c.Conds, " AND ", unitCondSQL)
	case search.Or:
		return combineSQL(c.Conds, " OR ", unitCondSQL)
	case search.HasFeature:
		return "EXISTS (SELECT 1 FROM unit_features WHERE unit_features.unit_id = units.id AND unit_features.name IN ?)",
			[]any{c.Names}, nil
	case search.LayoutFlag:
		col, ok := layoutFlagColumn(c.Name)
		if !ok {
			return "", nil, errors.Errorf("unknown layout flag %q", c.Name)
		}

		return "EXISTS (SELECT 1 FROM layouts WHERE layouts.id = units.layout_id AND layouts." + col + " = ?)",
			[]any{true}, nil
	default:
		return "", nil, errors.Errorf("condition %T is not unit-scoped", cond)
	}
}

func unitCompareSQL(field search.Field, op string, value any) (string, []any, error) {
	// The layout type lives on the related layout, not the unit row.
	if field == search.FieldLayoutType {
		return "EXISTS (SELECT 1 FROM layouts WHERE layouts.id = units.layout_id AND layouts.type " + op + ")",
			[]any{value}, nil
	}

	col, ok := unitColumn(field)
	if !ok {
		return "", nil, errors.Errorf("field %q is not unit-scoped", field)
	}

	return col + " " + op, []any{value}, nil
}

func unitRangeSQL(c search.Range) (string, []any, error) {
	col, ok := unitColumn(c.Field)
	if !ok {
		return "", nil, errors.Errorf("field %q is not unit-scoped", c.Field)
	}

	var (
		parts []string
		args  []any
	)
	if c.Min != nil {
		parts = append(parts, col+" >= ?")
		args = append(args, *c.Min)
	}
	if c.Max != nil {
		parts = append(parts, col+" <= ?")
		args = append(args, *c.Max)
	}
	if len(parts) == 0 {
		return "", nil, errors.Errorf("range condition on %q has no bounds", c.Field)
	}

	return "(" + strings.Join(parts, " AND ") + ")", args, nil
}

func projectCondSQL(cond search.Condition) (string, []any, error) {
	switch c := cond.(type) {
	case search.Eq:
		return projectCompareSQL(c.Field, "= ?", c.Value)
	case search.Contains:
		return projectContainsSQL(c)
	case search.In:
		return projectCompareSQL(c.Field, "IN ?", c.Values)
	case search.And:
		return combineSQL(c.Conds, " AND ", projectCondSQL)
	case search.Or:
		return combineSQL(c.Conds, " OR ", projectCondSQL)
	case search.HasAmenity:
		return "EXISTS (SELECT 1 FROM project_amenities " +
				"JOIN amenities ON amenities.id = project_amenities.amenity_id " +
				"WHERE project_amenities.project_id = projects.id AND amenities.name IN ?)",
			[]any{c.Names}, nil
	default:
		return "", nil, errors.Errorf("condition %T is not project-scoped", cond)
	}
}

func projectCompareSQL(field search.Field, op string, value any) (string, []any, error) {
	switch field {
	case search.FieldProjectID:
		return "projects.id " + op, []any{value}, nil
	case search.FieldProjectDeveloperID:
		return "projects.developer_id " + op, []any{value}, nil
	case search.FieldProjectConstruction:
		return "projects.construction_status " + op, []any{value}, nil
	case search.FieldProjectName:
		return "EXISTS (SELECT 1 FROM project_translations WHERE project_translations.project_id = projects.id AND project_translations.name " + op + ")",
			[]any{value}, nil
	case search.FieldLocationID:
		return "EXISTS (SELECT 1 FROM locations WHERE locations.project_id = projects.id AND locations.id " + op + ")",
			[]any{value}, nil
	default:
		return "", nil, errors.Errorf("field %q is not project-scoped", field)
	}
}

func projectContainsSQL(c search.Contains) (string, []any, error) {
	pattern := likePattern(c.Value)

	switch c.Field {
	case search.FieldProjectName:
		return "EXISTS (SELECT 1 FROM project_translations WHERE project_translations.project_id = projects.id AND LOWER(project_translations.name) LIKE ?)",
			[]any{pattern}, nil
	case search.FieldLocationAddress, search.FieldLocationDistrict, search.FieldLocationCity:
		col := map[search.Field]string{
			search.FieldLocationAddress:  "address",
			search.FieldLocationDistrict: "district",
			search.FieldLocationCity:     "city",
		}[c.Field]

		return "EXISTS (SELECT 1 FROM locations WHERE locations.project_id = projects.id AND LOWER(locations." + col + ") LIKE ?)",
			[]any{pattern}, nil
	default:
		return "", nil, errors.Errorf("field %q does not support substring match", c.Field)
	}
}

func combineSQL(conds []search.Condition, sep string, render func(search.Condition) (string, []any, error)) (string, []any, error) {
	if len(conds) == 0 {
		return "", nil, errors.New("empty condition group")
	}

	parts := make([]string, 0, len(conds))
	var args []any
	for _, cond := range conds {
		sql, condArgs, err := render(cond)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		args = append(args, condArgs...)
	}

	return "(" + strings.Join(parts, sep) + ")", args, nil
}

func unitColumn(field search.Field) (string, bool) {
	switch field {
	case search.FieldUnitProjectID:
		return "units.project_id", true
	case search.FieldUnitBuildingID:
		return "units.building_id", true
	case search.FieldUnitLayoutID:
		return "units.layout_id", true
	case search.FieldUnitStatus:
		return "units.status", true
	case search.FieldUnitFloor:
		return "units.floor", true
	case search.FieldUnitPrice:
		return "units.price", true
	case search.FieldUnitBedrooms:
		return "units.bedrooms", true
	case search.FieldUnitBathrooms:
		return "units.bathrooms", true
	case search.FieldUnitArea:
		return "units.area", true
	case search.FieldUnitView:
		// Quoted since VIEW is a keyword.
		return `units."view"`, true
	case search.FieldUnitName:
		return "units.name", true
	case search.FieldUnitNumber:
		return "units.number", true
	default:
		return "", false
	}
}

func layoutFlagColumn(name string) (string, bool) {
	switch name {
	case "hasPets":
		return "has_pets", true
	case "hasSmartHome":
		return "has_smart_home", true
	case "hasParking":
		return "has_parking", true
	case "hasBalcony":
		return "has_balcony", true
	default:
		return "", false
	}
}

func likePattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

// --- Sort resolution ---

func unitOrderSQL(sort search.Sort) string {
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}

	switch sort.Key {
	case search.SortKeyUnitPrice:
		return fmt.Sprintf("units.price %s", dir)
	case search.SortKeyConstruction:
		// The construction state lives on the owning project.
		return fmt.Sprintf("(SELECT projects.construction_status FROM projects WHERE projects.id = units.project_id) %s", dir)
	default:
		return "units.created_at DESC"
	}
}

func projectOrderSQL(sort search.Sort) string {
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}

	if sort.Key == search.SortKeyConstruction {
		return fmt.Sprintf("projects.construction_status %s", dir)
	}

	return "projects.created_at DESC"
}
