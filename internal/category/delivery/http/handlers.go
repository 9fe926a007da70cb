package http

import (
	"content-srv/internal/category"
	"content-srv/internal/crud"
	"content-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Category tree
// @Description Return the category forest
// @Tags Category
// @Produce json
// @Param trashed query string false "none, all or only"
// @Success 200 {array} treeNodeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/categories/tree [get]
func (h *handler) Tree(c *gin.Context) {
	ctx := c.Request.Context()

	trashed, err := crud.BindTrashed(c)
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Tree: BindTrashed failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.FindTrees(ctx, category.TreeInput{Trashed: trashed})
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Tree: usecase FindTrees failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTreeResp(o))
}

// @Summary List categories
// @Description Page through the flattened category tree
// @Tags Category
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param trashed query string false "none, all or only"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/categories [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Category detail
// @Tags Category
// @Produce json
// @Param id path string true "Category ID"
// @Param trashed query string false "Anything but none includes trashed categories"
// @Success 200 {object} detailResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/categories/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Detail: processDetailRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Detail(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDetailResp(o))
}

// @Summary Create category
// @Tags Category
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body storeReq true "Category"
// @Success 200 {object} detailResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/categories [post]
func (h *handler) Store(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStoreRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Store: processStoreRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Store: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDetailResp(o))
}

// @Summary Update category
// @Description Update name, order or parent. A null parent_id makes the category a root.
// @Tags Category
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Category ID"
// @Param body body updateReq true "Fields to change"
// @Success 200 {object} detailResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/categories/{id} [patch]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDetailResp(o))
}

// @Summary Delete categories
// @Description Children move to the parent of a deleted category. trash soft-deletes live rows.
// @Tags Category
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body crud.DeleteReq true "IDs"
// @Success 200 {array} categoryResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/categories [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Delete: processDeleteRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Delete(ctx, toDeleteInput(req))
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCategoriesResp(o))
}

// @Summary Restore categories
// @Tags Category
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body crud.RestoreReq true "IDs"
// @Success 200 {array} categoryResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/categories/restore [post]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRestoreRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Restore: processRestoreRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Restore(ctx, req.IDs)
	if err != nil {
		h.l.Errorf(ctx, "category.delivery.http.Restore: usecase Restore failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCategoriesResp(o))
}
