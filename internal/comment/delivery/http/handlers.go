package http

import (
	"content-srv/internal/comment"
	"content-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Comment tree
// @Description Return the reply forest of a post, oldest first
// @Tags Comment
// @Produce json
// @Param post query string false "Post ID"
// @Success 200 {array} treeNodeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/comments/tree [get]
func (h *handler) Tree(c *gin.Context) {
	ctx := c.Request.Context()

	postID, err := h.processPostQuery(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.FindTrees(ctx, comment.TreeInput{PostID: postID})
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.Tree: usecase FindTrees failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTreeResp(o))
}

// @Summary List comments
// @Description Page through the flattened reply forest
// @Tags Comment
// @Produce json
// @Param post query string false "Post ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/comments [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Comment detail
// @Tags Comment
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} commentResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/comments/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newCommentResp(o))
}

// @Summary Create comment
// @Description The caller becomes the author
// @Tags Comment
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body storeReq true "Comment"
// @Success 200 {object} commentResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/comments [post]
func (h *handler) Store(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processStoreRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.Store: processStoreRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.Store: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newCommentResp(o))
}

// @Summary Delete comments
// @Description Replies are deleted with their parent
// @Tags Comment
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body deleteReq true "IDs"
// @Success 200 {array} commentResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/comments [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.Delete: processDeleteRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Delete(ctx, req.IDs)
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCommentsResp(o))
}
