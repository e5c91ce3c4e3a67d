package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/pkg/response"
)

// List godoc
// @Summary     List menu items
// @Description Returns the menu narrowed by the page filters. All filters AND together.
// @Tags        Menu
// @Produce     json
// @Param       category       query string  false "Category tab (all/appetizer/main/dessert/beverage)"
// @Param       q              query string  false "Substring match over name, description and ingredients"
// @Param       vegetarian     query bool    false "Only vegetarian items"
// @Param       vegan          query bool    false "Only vegan items"
// @Param       gluten_free    query bool    false "Only gluten-free items"
// @Param       max_price      query number  false "Inclusive price ceiling"
// @Param       available_only query bool    false "Hide unavailable items"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/menu [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Categories godoc
// @Summary     List menu categories
// @Description Returns the category strip with item counts. The "all" tab counts the full menu.
// @Tags        Menu
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/menu/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Categories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Categories: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCategoriesResp(output))
}

// Detail godoc
// @Summary     Get menu item detail
// @Description Returns a single menu item with ingredients and dietary flags.
// @Tags        Menu
// @Produce     json
// @Param       id path string true "Menu item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/menu/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Search godoc
// @Summary     Search the menu
// @Description Standalone search over item names and descriptions. Ingredients are not searched here.
// @Tags        Menu
// @Produce     json
// @Param       q query string false "Search query"
// @Success     200 {object} searchResp
// @Router      /api/v1/menu/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Search(ctx, req.Query)
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSearchResp(output))
}
