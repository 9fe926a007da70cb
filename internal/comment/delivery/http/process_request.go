package http

import (
	"content-srv/internal/crud"
	"content-srv/internal/model"
	"content-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processPostQuery(c *gin.Context) (string, error) {
	var q postQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.l.Errorf(c.Request.Context(), "comment.delivery.http.processPostQuery: ShouldBindQuery failed: %v", err)
		return "", crud.BindError(err)
	}
	return q.PostID, nil
}

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	var req listReq

	postID, err := h.processPostQuery(c)
	if err != nil {
		return req, err
	}
	page, err := crud.BindPage(c)
	if err != nil {
		return req, err
	}

	req.Paginate = page
	req.PostID = postID
	return req, nil
}

func (h *handler) processStoreRequest(c *gin.Context) (storeReq, model.Scope, error) {
	var req storeReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.processStoreRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, crud.BindError(err)
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processDeleteRequest(c *gin.Context) (deleteReq, error) {
	var req deleteReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.processDeleteRequest: ShouldBindJSON failed: %v", err)
		return req, crud.BindError(err)
	}

	return req, nil
}
