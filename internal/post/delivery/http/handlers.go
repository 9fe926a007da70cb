package http

import (
	"content-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List posts
// @Description Page through posts. search is matched with the configured search type.
// @Tags Post
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param trashed query string false "none, all or only"
// @Param category query string false "Category ID, descendants included"
// @Param orderBy query string false "created, updated, published, commentCount or custom"
// @Param isPublished query bool false "Published filter"
// @Param search query string false "Search text"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Post detail
// @Tags Post
// @Produce json
// @Param id path string true "Post ID"
// @Param trashed query string false "Anything but none includes trashed posts"
// @Success 200 {object} postResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Detail: processDetailRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Detail(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newPostResp(o))
}

// @Summary Create post
// @Tags Post
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body storeReq true "Post"
// @Success 200 {object} postResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts [post]
func (h *handler) Store(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStoreRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Store: processStoreRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Store: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newPostResp(o))
}

// @Summary Update post
// @Description Only the given fields change. categories replaces the relations, a null published_at unpublishes.
// @Tags Post
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Post ID"
// @Param body body updateReq true "Fields to change"
// @Success 200 {object} postResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts/{id} [patch]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newPostResp(o))
}

// @Summary Delete posts
// @Description trash soft-deletes live posts, trashed ones are removed for good.
// @Tags Post
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body crud.DeleteReq true "IDs"
// @Success 200 {array} postResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Delete: processDeleteRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Delete(ctx, toDeleteInput(req))
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPostsResp(o))
}

// @Summary Restore posts
// @Tags Post
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body crud.RestoreReq true "IDs"
// @Success 200 {array} postResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts/restore [post]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRestoreRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Restore: processRestoreRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Restore(ctx, req.IDs)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Restore: usecase Restore failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPostsResp(o))
}
