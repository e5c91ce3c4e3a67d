package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/pkg/response"
)

// Create godoc
// @Summary     Create a session
// @Description Mints a fresh kiosk session. The returned ID goes into the X-Session-ID header of every later request.
// @Tags        Session
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/sessions [POST]
func (h *handler) Create(c *gin.Context) {
	s := h.registry.Create(c.Request.Context())
	response.OK(c, h.newSessionResp(s))
}

// Info godoc
// @Summary     Get the current session
// @Description Returns the session behind the X-Session-ID header. Resolving it also renews the idle TTL.
// @Tags        Session
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/current [GET]
func (h *handler) Info(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	response.OK(c, h.newSessionResp(s))
}

// CloseSession godoc
// @Summary     Close the current session
// @Description Tears the session down; the cart, search box and forms are discarded with it.
// @Tags        Session
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/current [DELETE]
func (h *handler) CloseSession(c *gin.Context) {
	ctx := c.Request.Context()

	s, ok := h.session(c)
	if !ok {
		return
	}

	if err := h.registry.Close(ctx, s.ID); err != nil {
		h.l.Errorf(ctx, "registry.Close: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// SearchState godoc
// @Summary     Get the search box state
// @Description Returns the live value, the last committed query, whether a commit is pending and the box configuration.
// @Tags        Search
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} searchStateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/search [GET]
func (h *handler) SearchState(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	response.OK(c, newSearchStateResp(s.Search()))
}

// SearchInput godoc
// @Summary     Type into the search box
// @Description Records a keystroke. The live value changes at once; the query commits only after the input stays quiet for the full delay window.
// @Tags        Search
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       body body searchValueReq true "Live value after the keystroke"
// @Success     200 {object} searchStateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/search/input [POST]
func (h *handler) SearchInput(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := h.processSearchValueReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s.Search().Input(req.Value)
	response.OK(c, newSearchStateResp(s.Search()))
}

// SearchSet godoc
// @Summary     Set the search box value
// @Description Replaces the live value from outside the keystroke path. Cancels any pending commit and emits nothing.
// @Tags        Search
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       body body searchValueReq true "New live value"
// @Success     200 {object} searchStateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/search [PUT]
func (h *handler) SearchSet(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := h.processSearchValueReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s.Search().Set(req.Value)
	response.OK(c, newSearchStateResp(s.Search()))
}

// SearchClear godoc
// @Summary     Clear the search box
// @Description Empties the live value at once. The empty query is committed through the normal debounce window.
// @Tags        Search
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} searchStateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/search/clear [POST]
func (h *handler) SearchClear(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Search().Clear()
	response.OK(c, newSearchStateResp(s.Search()))
}

// SearchResults godoc
// @Summary     Get the committed search results
// @Description Returns the items matched by the last committed query. Empty until the first commit lands; a pending commit does not change it.
// @Tags        Search
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} searchResultsResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/search/results [GET]
func (h *handler) SearchResults(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	response.OK(c, newSearchResultsResp(s.SearchResults()))
}
