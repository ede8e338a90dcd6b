package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/services"
	"github.com/smartwork/dashboard/internal/store"
)

type TasksController struct {
	service *services.TaskService
}

func NewTasksController(service *services.TaskService) *TasksController {
	return &TasksController{service: service}
}

type moveTaskRequest struct {
	Status string `json:"status" binding:"required"`
}

// MoveTask changes the board column of a task
// PATCH /api/tasks/:id/status
func (tc *TasksController) MoveTask(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req moveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}
	task, err := tc.service.Move(ws, id, req.Status)
	if err != nil {
		respondError(c, err, "task")
		return
	}
	c.JSON(http.StatusOK, task)
}

type InventoryController struct {
	service *services.InventoryService
}

func NewInventoryController(service *services.InventoryService) *InventoryController {
	return &InventoryController{service: service}
}

// search backs GET /api/products?q=&category=
func (ic *InventoryController) search(c *gin.Context, ws *store.Workspace) []entities.Product {
	return ic.service.Search(ws, c.Query("q"), c.Query("category"))
}

// Stats returns stock value and alert counts
// GET /api/products/stats
func (ic *InventoryController) Stats(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ic.service.Stats(ws))
}

// ListMovements returns the stock movements, newest first
// GET /api/stock-movements
func (ic *InventoryController) ListMovements(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	respondList(c, ic.service.Movements(ws))
}

// RecordMovement applies a stock entry, exit or adjustment
// POST /api/stock-movements
func (ic *InventoryController) RecordMovement(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var mv entities.StockMovement
	if err := c.ShouldBindJSON(&mv); err != nil {
		respondInvalid(c, err)
		return
	}
	stored, product, err := ic.service.RecordMovement(ws, mv)
	if err != nil {
		respondError(c, err, "product")
		return
	}
	respondCreated(c, gin.H{"movement": stored, "product": product})
}

type AttendanceController struct {
	service *services.AttendanceService
}

func NewAttendanceController(service *services.AttendanceService) *AttendanceController {
	return &AttendanceController{service: service}
}

// List returns attendance records, optionally for one ?date=
// GET /api/attendance
func (ac *AttendanceController) List(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	records := ac.service.List(ws, c.Query("q"))
	if date := c.Query("date"); date != "" {
		filtered := records[:0:0]
		for _, r := range records {
			if r.Date == date {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	respondList(c, records)
}

type clockRequest struct {
	EmployeeID int `json:"employee_id" binding:"required,gt=0"`
	// Time is HH:MM; blank means now.
	Time string `json:"time" binding:"omitempty,datetime=15:04"`
}

// CheckIn records an employee's arrival for today
// POST /api/attendance/check-in
func (ac *AttendanceController) CheckIn(c *gin.Context) {
	ac.clock(c, ac.service.CheckIn, http.StatusCreated)
}

// CheckOut records an employee's departure for today
// POST /api/attendance/check-out
func (ac *AttendanceController) CheckOut(c *gin.Context) {
	ac.clock(c, ac.service.CheckOut, http.StatusOK)
}

func (ac *AttendanceController) clock(c *gin.Context, action func(*store.Workspace, int, string) (entities.AttendanceRecord, error), status int) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var req clockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}
	rec, err := action(ws, req.EmployeeID, req.Time)
	if err != nil {
		respondError(c, err, "employee")
		return
	}
	c.JSON(status, rec)
}
