package postgre

import (
	"time"

	"github.com/aarondl/null/v8"

	"content-srv/internal/model"
)

const categoryColumns = "id, name, custom_order, parent_id, mpath, created_at, updated_at, deleted_at"

type categoryRow struct {
	ID          string      `boil:"id"`
	Name        string      `boil:"name"`
	CustomOrder int         `boil:"custom_order"`
	ParentID    null.String `boil:"parent_id"`
	MPath       string      `boil:"mpath"`
	CreatedAt   time.Time   `boil:"created_at"`
	UpdatedAt   time.Time   `boil:"updated_at"`
	DeletedAt   null.Time   `boil:"deleted_at"`
}

func (row categoryRow) toModel() model.Category {
	c := model.Category{
		ID:          row.ID,
		Name:        row.Name,
		CustomOrder: row.CustomOrder,
		ParentID:    row.ParentID.Ptr(),
		MPath:       row.MPath,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.DeletedAt.Valid {
		t := row.DeletedAt.Time
		c.DeletedAt = &t
	}
	return c
}

func toModels(rows []categoryRow) []model.Category {
	out := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out
}

// buildUpdateCols - Build the SET map for an update. Only set fields are written.
func buildUpdateCols(name *string, customOrder *int, parentSet bool, parentID *string) map[string]interface{} {
	cols := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if name != nil {
		cols["name"] = *name
	}
	if customOrder != nil {
		cols["custom_order"] = *customOrder
	}
	if parentSet {
		cols["parent_id"] = null.StringFromPtr(parentID)
	}
	return cols
}
