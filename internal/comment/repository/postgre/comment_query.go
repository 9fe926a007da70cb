package postgre

import (
	"strings"

	"github.com/volatiletech/sqlboiler/v4/queries/qm"

	"content-srv/internal/comment/repository"
	"content-srv/pkg/util"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildListQuery - Build query for List.
func (r *implRepository) buildListQuery(opts repository.ListOptions) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select(commentColumns),
		qm.From(table),
	}
	if opts.PostID != "" {
		mods = append(mods, qm.Where("post_id = ?", opts.PostID))
	}
	return append(mods, qm.OrderBy("created_at ASC, id ASC"))
}

// buildDetailQuery - Build query for Detail.
func (r *implRepository) buildDetailQuery(id string) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(commentColumns),
		qm.From(table),
		qm.Where("id = ?", id),
		qm.Limit(1),
	}
}

// buildFindByIDsQuery - Build query for FindByIDs.
func (r *implRepository) buildFindByIDsQuery(ids []string) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(commentColumns),
		qm.From(table),
		qm.WhereIn("id IN ?", util.ToInterfaceSlice(ids)...),
		qm.OrderBy("created_at ASC, id ASC"),
	}
}
