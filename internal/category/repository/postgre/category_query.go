package postgre

import (
	"strings"

	"github.com/volatiletech/sqlboiler/v4/queries/qm"

	"content-srv/internal/category/repository"
	"content-srv/internal/model"
	"content-srv/pkg/util"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike - Escape LIKE wildcards so s matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func trashMods(mode model.TrashMode) []qm.QueryMod {
	switch mode {
	case model.TrashAll:
		return nil
	case model.TrashOnly:
		return []qm.QueryMod{qm.Where("deleted_at IS NOT NULL")}
	default:
		return []qm.QueryMod{qm.Where("deleted_at IS NULL")}
	}
}

// buildListQuery - Build query for List.
func (r *implRepository) buildListQuery(opts repository.ListOptions) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select(categoryColumns),
		qm.From(table),
	}
	mods = append(mods, trashMods(opts.Trashed)...)

	if len(opts.IDs) > 0 {
		mods = append(mods, qm.WhereIn("id IN ?", util.ToInterfaceSlice(opts.IDs)...))
	}

	// Siblings keep their display order when the tree is rebuilt.
	mods = append(mods, qm.OrderBy("custom_order ASC, created_at ASC"))

	return mods
}

// buildDetailQuery - Build query for Detail.
func (r *implRepository) buildDetailQuery(opts repository.DetailOptions) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select(categoryColumns),
		qm.From(table),
		qm.Where("id = ?", opts.ID),
	}
	if !opts.WithTrashed {
		mods = append(mods, qm.Where("deleted_at IS NULL"))
	}
	return append(mods, qm.Limit(1))
}

func byIDs(ids []string) []qm.QueryMod {
	return []qm.QueryMod{
		qm.From(table),
		qm.WhereIn("id IN ?", util.ToInterfaceSlice(ids)...),
	}
}
