package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	cmds commands.PropertyCommands
	q    queries.PropertyQueries
}

func NewPropertyHandler(cmds commands.PropertyCommands, q queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{cmds: cmds, q: q}
}

// @Summary List properties
// @Description Active properties with optional filters, free-text search and page based pagination
// @Tags properties
// @Produce json
// @Param location query string false "Case-insensitive location substring"
// @Param bedrooms query int false "Exact bedroom count"
// @Param bathrooms query int false "Exact bathroom count"
// @Param min_guests query int false "Minimum guest capacity"
// @Param search query string false "Search name, description, location and amenities"
// @Param sort query string false "newest, price_asc or price_desc"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.PropertyListResponse
// @Failure 400 {object} httperr.Response
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	var q reqdto.PropertyListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	filters := queries.PropertyFilters{
		Location:  q.Location,
		Bedrooms:  q.Bedrooms,
		Bathrooms: q.Bathrooms,
		MinGuests: q.MinGuests,
		Search:    q.Search,
		Sort:      queries.PropertySort(q.Sort),
	}
	page, err := h.q.ListActive(c.Request.Context(), filters, q.Page, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyPage(page))
}

// @Summary Create property
// @Description List a new property. Requires the host or admin role.
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Property"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	hostID, ok := currentUser(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	p, err := h.cmds.Create(c.Request.Context(), hostID, role, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, p.ID(), hostID)
}

// @Summary My properties
// @Description All properties of the current host, including deactivated ones
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PropertyResponse
// @Failure 401 {object} httperr.Response
// @Router /properties/mine [get]
func (h *PropertyHandler) Mine(c *gin.Context) {
	hostID, ok := currentUser(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), hostID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyViews(views))
}

// @Summary Get property
// @Description Property detail with host name and rating. Deactivated properties are only visible to their host.
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var viewer *uuid.UUID
	if userID, ok := middleware.GetUserID(c); ok {
		viewer = &userID
	}

	view, err := h.q.Get(c.Request.Context(), id, viewer)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary Update property
// @Description Partial update by the owning host
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [patch]
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	if _, err := h.cmds.Update(c.Request.Context(), id, actorID, cmd); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, id, actorID)
}

// @Summary Deactivate property
// @Description Soft delete by the owning host
// @Tags properties
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), id, actorID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PropertyHandler) respond(c *gin.Context, status int, id, viewerID uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), id, &viewerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromPropertyView(view))
}
