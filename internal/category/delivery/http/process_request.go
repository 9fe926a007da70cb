package http

import (
	"content-srv/internal/crud"
	pkgErrors "content-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	var req listReq

	page, err := crud.BindPage(c)
	if err != nil {
		return req, err
	}
	trashed, err := crud.BindTrashed(c)
	if err != nil {
		return req, err
	}

	req.Paginate = page
	req.Trashed = trashed
	return req, nil
}

func (h *handler) processDetailRequest(c *gin.Context) (detailReq, error) {
	trashed, err := crud.BindTrashed(c)
	if err != nil {
		return detailReq{}, err
	}
	return detailReq{ID: c.Param("id"), Trashed: trashed}, nil
}

func (h *handler) processStoreRequest(c *gin.Context) (storeReq, error) {
	var req storeReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "category.delivery.http.processStoreRequest: ShouldBindJSON failed: %v", err)
		return req, crud.BindError(err)
	}

	return req, nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (updateReq, error) {
	var req updateReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "category.delivery.http.processUpdateRequest: ShouldBindJSON failed: %v", err)
		return req, crud.BindError(err)
	}
	if req.ParentID.Value != nil {
		if _, err := uuid.Parse(*req.ParentID.Value); err != nil {
			return req, pkgErrors.NewValidationError(pkgErrors.FieldError{
				Field:   "parent_id",
				Message: "failed on the 'uuid' rule",
			})
		}
	}

	req.ID = c.Param("id")
	return req, nil
}

func (h *handler) processDeleteRequest(c *gin.Context) (crud.DeleteReq, error) {
	var req crud.DeleteReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "category.delivery.http.processDeleteRequest: ShouldBindJSON failed: %v", err)
		return req, crud.BindError(err)
	}

	return req, nil
}

func (h *handler) processRestoreRequest(c *gin.Context) (crud.RestoreReq, error) {
	var req crud.RestoreReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "category.delivery.http.processRestoreRequest: ShouldBindJSON failed: %v", err)
		return req, crud.BindError(err)
	}

	return req, nil
}
