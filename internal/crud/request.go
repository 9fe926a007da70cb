package crud

import (
	"errors"
	"fmt"
	"strings"

	"content-srv/internal/model"
	pkgErrors "content-srv/pkg/errors"
	"content-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DeleteReq is the body of the delete route. Trash soft-deletes rows that are not trashed yet.
type DeleteReq struct {
	IDs   []string `json:"ids" binding:"required,min=1,dive,uuid"`
	Trash bool     `json:"trash"`
}

// RestoreReq is the body of the restore route.
type RestoreReq struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

type pageReq struct {
	Page  *int   `form:"page"`
	Limit *int64 `form:"limit"`
}

// BindPage reads page and limit from the query string. Missing values take the defaults.
// Non-positive values are passed through for the paginator to reject.
func BindPage(c *gin.Context) (paginator.PaginateQuery, error) {
	var req pageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return paginator.PaginateQuery{}, BindError(err)
	}

	q := paginator.PaginateQuery{Page: paginator.DefaultPage, Limit: paginator.DefaultLimit}
	if req.Page != nil {
		q.Page = *req.Page
	}
	if req.Limit != nil {
		q.Limit = *req.Limit
	}
	if q.Limit > paginator.MaxLimit {
		return q, pkgErrors.NewValidationError(pkgErrors.FieldError{
			Field:   "limit",
			Message: fmt.Sprintf("must be at most %d", paginator.MaxLimit),
		})
	}
	return q, nil
}

// BindTrashed reads the trashed query parameter.
func BindTrashed(c *gin.Context) (model.TrashMode, error) {
	mode, ok := model.ParseTrashMode(c.Query("trashed"))
	if !ok {
		return "", pkgErrors.NewValidationError(pkgErrors.FieldError{
			Field:   "trashed",
			Message: "must be one of none, all, only",
		})
	}
	return mode, nil
}

// BindError converts a gin binding error into a validation error.
func BindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := pkgErrors.NewValidationError()
		for _, fe := range verrs {
			out.Add(jsonField(fe), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
		}
		return out
	}
	return pkgErrors.NewValidationError(pkgErrors.FieldError{Field: "body", Message: err.Error()})
}

func jsonField(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}
