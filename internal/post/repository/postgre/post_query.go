package postgre

import (
	"strings"
	"unicode"

	"github.com/volatiletech/sqlboiler/v4/queries/qm"

	"content-srv/internal/model"
	"content-srv/internal/post/repository"
	"content-srv/pkg/util"
)

const (
	postsTable = "content_posts p"

	postColumns = `p.id, p.title, p.body, p.summary, p.keywords, p.type, p.published_at, p.custom_order,
		(SELECT COUNT(*) FROM content_comments cm WHERE cm.post_id = p.id) AS comment_count,
		p.created_at, p.updated_at, p.deleted_at`

	likeSearchClause = `(p.title ILIKE ? OR p.body ILIKE ? OR p.summary ILIKE ? OR EXISTS (
		SELECT 1 FROM content_posts_categories spc
		JOIN content_categories sc ON sc.id = spc.category_id
		WHERE spc.post_id = p.id AND sc.name ILIKE ?))`

	categoryClause = `EXISTS (
		SELECT 1 FROM content_posts_categories fpc
		JOIN content_categories fc ON fc.id = fpc.category_id
		WHERE fpc.post_id = p.id AND fc.mpath LIKE ?)`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// prefixTSQuery - Turn free text into a prefix tsquery: every word must match as a prefix.
func prefixTSQuery(text string) string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	terms := make([]string, 0, len(words))
	for _, w := range words {
		terms = append(terms, strings.ToLower(w)+":*")
	}
	return strings.Join(terms, " & ")
}

// buildFilterMods - Build the WHERE mods shared by list and count.
func (r *implRepository) buildFilterMods(opts repository.FilterOptions) []qm.QueryMod {
	mods := []qm.QueryMod{}

	switch opts.Trashed {
	case model.TrashAll:
	case model.TrashOnly:
		mods = append(mods, qm.Where("p.deleted_at IS NOT NULL"))
	default:
		mods = append(mods, qm.Where("p.deleted_at IS NULL"))
	}

	if opts.IsPublished != nil {
		if *opts.IsPublished {
			mods = append(mods, qm.Where("p.published_at IS NOT NULL"))
		} else {
			mods = append(mods, qm.Where("p.published_at IS NULL"))
		}
	}

	if opts.CategoryMPath != "" {
		mods = append(mods, qm.Where(categoryClause, escapeLike(opts.CategoryMPath)+"%"))
	}

	if search := strings.TrimSpace(opts.Search); search != "" {
		switch opts.SearchMode {
		case repository.SearchLike:
			pattern := "%" + escapeLike(search) + "%"
			mods = append(mods, qm.Where(likeSearchClause, pattern, pattern, pattern, pattern))
		case repository.SearchFulltext:
			if q := prefixTSQuery(search); q != "" {
				mods = append(mods, qm.Where("p.tsv @@ to_tsquery('simple', ?)", q))
			}
		}
	}

	return mods
}

func orderMods(order model.PostOrder) []qm.QueryMod {
	var clause string
	switch order {
	case model.PostOrderCreated:
		clause = "p.created_at DESC"
	case model.PostOrderUpdated:
		clause = "p.updated_at DESC"
	case model.PostOrderPublished:
		clause = "p.published_at DESC NULLS LAST"
	case model.PostOrderCommentCount:
		clause = "comment_count DESC"
	case model.PostOrderCustom:
		clause = "p.custom_order DESC"
	default:
		clause = "p.created_at DESC, p.updated_at DESC, p.published_at DESC NULLS LAST, comment_count DESC"
	}
	// id keeps pages stable when the sort keys tie.
	return []qm.QueryMod{qm.OrderBy(clause + ", p.id ASC")}
}

// buildListQuery - Build query for List.
func (r *implRepository) buildListQuery(opts repository.ListOptions) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select(postColumns),
		qm.From(postsTable),
	}
	mods = append(mods, r.buildFilterMods(opts.Filter)...)
	mods = append(mods, orderMods(opts.OrderBy)...)

	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(int(opts.Limit)))
	}
	if opts.Offset > 0 {
		mods = append(mods, qm.Offset(int(opts.Offset)))
	}

	return mods
}

// buildCountQuery - Build query for Count.
func (r *implRepository) buildCountQuery(opts repository.FilterOptions) []qm.QueryMod {
	mods := []qm.QueryMod{qm.From(postsTable)}
	return append(mods, r.buildFilterMods(opts)...)
}

// buildFindByIDsQuery - Build query for FindByIDs and Detail.
func (r *implRepository) buildFindByIDsQuery(ids []string, withTrashed bool) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select(postColumns),
		qm.From(postsTable),
		qm.WhereIn("p.id IN ?", util.ToInterfaceSlice(ids)...),
	}
	if !withTrashed {
		mods = append(mods, qm.Where("p.deleted_at IS NULL"))
	}
	return mods
}

// buildCategoriesQuery - Build query loading the live categories of posts.
func (r *implRepository) buildCategoriesQuery(postIDs []string) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select("pc.post_id, c.id, c.name, c.custom_order, c.parent_id, c.mpath, c.created_at, c.updated_at"),
		qm.From("content_posts_categories pc"),
		qm.InnerJoin("content_categories c ON c.id = pc.category_id"),
		qm.WhereIn("pc.post_id IN ?", util.ToInterfaceSlice(postIDs)...),
		qm.Where("c.deleted_at IS NULL"),
		qm.OrderBy("c.custom_order ASC, c.created_at ASC"),
	}
}
