package postgres

import (
	"strings"

	"medrep/internal/domain/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownerFilter narrows a statement to records owned by an identity.
type ownerFilter func(db *gorm.DB, owner uuid.UUID) *gorm.DB

// ownerColumn restricts on a plain owner column.
func ownerColumn(column string) ownerFilter {
	return func(db *gorm.DB, owner uuid.UUID) *gorm.DB {
		return db.Where(column+" = ?", owner)
	}
}

// assignedTo restricts doctors to those assigned to the MR.
func assignedTo(db *gorm.DB, owner uuid.UUID) *gorm.DB {
	return db.Where(
		"EXISTS (SELECT 1 FROM doctor_assignments da WHERE da.doctor_id = doctors.id AND da.mr_id = ?)",
		owner,
	)
}

// filterScope applies owner, conditions and search. Columns come from query.Spec whitelists only.
func filterScope(c *query.Criteria, owner ownerFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if c == nil {
			return db
		}

		if c.OwnerID != nil && owner != nil {
			db = owner(db, *c.OwnerID)
		}

		for _, cond := range c.Conditions {
			switch cond.Op {
			case query.OpEq:
				db = db.Where(cond.Field+" = ?", cond.Value)
			case query.OpIn:
				db = db.Where(cond.Field+" IN ?", cond.Value)
			case query.OpGte:
				db = db.Where(cond.Field+" >= ?", cond.Value)
			case query.OpLt:
				db = db.Where(cond.Field+" < ?", cond.Value)
			}
		}

		if c.Search != nil && len(c.Search.Fields) > 0 {
			pattern := "%" + escapeLike(strings.ToLower(c.Search.Term)) + "%"
			clauses := make([]string, 0, len(c.Search.Fields))
			args := make([]any, 0, len(c.Search.Fields))
			for _, field := range c.Search.Fields {
				clauses = append(clauses, "LOWER("+field+") LIKE ? ESCAPE '\\'")
				args = append(args, pattern)
			}
			db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}

		return db
	}
}

// pageScope applies ordering and pagination.
func pageScope(c *query.Criteria) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if c == nil {
			return db
		}
		if c.OrderBy != "" {
			db = db.Order(c.OrderBy)
		}
		if c.Limit > 0 {
			db = db.Limit(c.Limit).Offset(c.Offset())
		}

		return db
	}
}

// findPage counts every matching row and loads the requested page.
func findPage[M any](db *gorm.DB, c *query.Criteria, owner ownerFilter, extra ...func(*gorm.DB) *gorm.DB) ([]M, int64, error) {
	var total int64
	if err := db.Model(new(M)).Scopes(filterScope(c, owner)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []M
	if total == 0 {
		return rows, 0, nil
	}

	scopes := append([]func(*gorm.DB) *gorm.DB{filterScope(c, owner), pageScope(c)}, extra...)
	if err := db.Scopes(scopes...).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
