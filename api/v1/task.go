package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/services"
)

var taskService = services.NewTaskService()

// ListTasks godoc
// @Summary List tasks
// @Description Get tasks filtered by project or assignee
// @Tags tasks
// @Accept json
// @Produce json
// @Param projectId query string false "Filter by project"
// @Param assigneeId query string false "Filter by assignee"
// @Success 200 {array} dto.TaskResponse
// @Router /tasks [get]
func ListTasks(c *gin.Context) {
	filter := dto.TaskFilter{
		ProjectID:  c.Query("projectId"),
		AssigneeID: c.Query("assigneeId"),
	}

	tasks, err := taskService.ListTasks(actorFrom(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tasks,
	})
}

// GetTask godoc
// @Summary Get a task by ID
// @Description Get details of a task by ID
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Router /tasks/{id} [get]
func GetTask(c *gin.Context) {
	task, err := taskService.GetTask(actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// CreateTask godoc
// @Summary Create a new task
// @Description Create a task in a project
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task Data"
// @Success 201 {object} dto.TaskResponse
// @Router /tasks [post]
func CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	task, err := taskService.CreateTask(actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   task,
	})
}

// UpdateTask godoc
// @Summary Update a task
// @Description Apply partial changes to a task, completing it stamps completed_at
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Task Data"
// @Success 200 {object} dto.TaskResponse
// @Router /tasks/{id} [put]
func UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	task, err := taskService.UpdateTask(actorFrom(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// DeleteTask godoc
// @Summary Delete a task
// @Description Delete a task, creator or project owner only
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 204
// @Router /tasks/{id} [delete]
func DeleteTask(c *gin.Context) {
	if err := taskService.DeleteTask(actorFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
