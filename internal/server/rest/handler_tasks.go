package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkarpenko/tasktrack/internal/common"
	"github.com/mkarpenko/tasktrack/internal/server/tasks"
)

func (s *Server) createTask(c *gin.Context) {

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Title is required"})
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), principalID(c), tasks.CreateParams{
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  req.Priority,
		Deadline:  req.Deadline,
		Category:  req.Category,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			c.JSON(http.StatusBadRequest, messageResponse{Message: "Title is required"})
			return
		}
		s.internalError(c, "task creation failed", err)
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

func (s *Server) listTasks(c *gin.Context) {

	result, err := s.tasks.List(c.Request.Context(), principalID(c))
	if err != nil {
		s.internalError(c, "task listing failed", err)
		return
	}

	out := make([]taskResponse, 0, len(result))
	for _, task := range result {
		out = append(out, toTaskResponse(task))
	}

	c.JSON(http.StatusOK, out)
}

func (s *Server) updateTask(c *gin.Context) {

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	task, err := s.tasks.Update(c.Request.Context(), c.Param("id"), principalID(c), tasks.Patch{
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  req.Priority,
		Deadline:  req.Deadline,
		Category:  req.Category,
	})
	if err != nil {
		// A task owned by someone else answers exactly like a missing one.
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, messageResponse{Message: "Task not found"})
			return
		}
		s.internalError(c, "task update failed", err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (s *Server) deleteTask(c *gin.Context) {

	// Zero affected rows (absent or foreign id) and a real deletion answer
	// the same way, so existence never leaks across accounts.
	if err := s.tasks.Delete(c.Request.Context(), c.Param("id"), principalID(c)); err != nil {
		s.internalError(c, "task deletion failed", err)
		return
	}

	c.Status(http.StatusNoContent)
}
