package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/api/metrics"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/ports"
)

// UserHandler handles the authenticated user-management endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /users: admin-only paginated listing.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10, max 100)"
// @Param        role    query     string  false  "Filter by role (ADMIN or USER)"
// @Param        active  query     bool    false  "Filter by active flag"
// @Param        search  query     string  false  "Case-insensitive substring match on name or email"
// @Success      200     {object}  listUsersResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	result, err := h.userService.List(c.Request().Context(), filter, who)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /users/:id, allowed for admins or the record owner.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id (UUID)"
// @Success      200  {object}  userEnvelope
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), id, who)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{User: toUserResponse(user)})
}

// Update handles PUT /users/:id, allowed for admins or the record owner.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id (UUID)"
// @Param        body  body      updateUserRequest  true  "Fields to update (at least one)"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathUserID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), id, toUpdateInput(req), who)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{User: toUserResponse(user)})
}

// Delete handles DELETE /users/:id, allowed for admins or the record owner.
// The delete is logical; repeating it yields 410.
//
// @Summary      Deactivate a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id (UUID)"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      410  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathUserID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), id, who); err != nil {
		return err
	}

	metrics.DeactivationsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted successfully"})
}

// pathUserID validates the :id path parameter as a UUID.
func pathUserID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid user id format")
	}
	return id, nil
}

// parseListFilter validates pagination and filter query parameters.
// Out-of-range pagination is a 400, never silently clamped.
func parseListFilter(c echo.Context) (ports.ListFilter, error) {
	filter := ports.ListFilter{Page: 1, Limit: 10}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return ports.ListFilter{}, echo.NewHTTPError(http.StatusBadRequest, "invalid pagination input")
		}
		filter.Page = page
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			return ports.ListFilter{}, echo.NewHTTPError(http.StatusBadRequest, "invalid pagination input")
		}
		filter.Limit = limit
	}
	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return ports.ListFilter{}, echo.NewHTTPError(http.StatusBadRequest, "invalid value for active")
		}
		filter.Active = &active
	}
	filter.Role = c.QueryParam("role")
	filter.Search = c.QueryParam("search")

	return filter, nil
}
