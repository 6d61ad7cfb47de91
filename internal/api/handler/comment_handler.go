package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type commentRequest struct {
	Body string `json:"body" validate:"required"`
}

type commentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

type commentsResponse struct {
	Comments []*domain.Comment `json:"comments"`
}

// Create handles POST /tasks/:id/comments.
//
// @Summary      Add a comment to a task
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Task id"
// @Param        body  body      commentRequest  true  "Comment body"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Create(c.Request().Context(), actor, c.Param("id"), req.Body)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, commentResponse{Comment: comment})
}

// List handles GET /comments.
//
// @Summary      List all comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  commentsResponse
// @Router       /comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.commentService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commentsResponse{Comments: comments})
}

// Edit handles PATCH /comments/:id. Only the comment author may edit it;
// admins get no override here.
//
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Comment id"
// @Param        body  body      commentRequest  true  "New comment body"
// @Success      200   {object}  commentResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /comments/{id} [patch]
func (h *CommentHandler) Edit(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Edit(c.Request().Context(), actor, c.Param("id"), req.Body)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, commentResponse{Comment: comment})
}

// Delete handles DELETE /comments/:id. The author or an admin may delete.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Comment id"
// @Success      204  "No Content"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
