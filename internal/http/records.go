package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartwork/dashboard/internal/store"
)

// recordService is the CRUD surface shared by the workspace services.
type recordService[T any] interface {
	List(ws *store.Workspace, query string) []T
	Get(ws *store.Workspace, id int) (T, error)
	Create(ws *store.Workspace, rec T) T
	Update(ws *store.Workspace, id int, rec T) (T, error)
	Delete(ws *store.Workspace, id int) error
}

// RecordsController serves list/get/create/update/delete for one collection.
// Updates bind the request body onto the stored record, so omitted fields
// keep their value.
type RecordsController[T any] struct {
	service  recordService[T]
	resource string
	// search overrides List when set; it receives the gin context for extra
	// query filters.
	search func(c *gin.Context, ws *store.Workspace) []T
	// blank returns the record a POST body is bound onto.
	blank func() T
}

func NewRecordsController[T any](service recordService[T], resource string) *RecordsController[T] {
	return &RecordsController[T]{service: service, resource: resource}
}

// WithSearch replaces the default ?q= listing.
func (rc *RecordsController[T]) WithSearch(search func(c *gin.Context, ws *store.Workspace) []T) *RecordsController[T] {
	rc.search = search
	return rc
}

// WithDefaults pre-fills created records; fields the body omits keep the
// values of blank().
func (rc *RecordsController[T]) WithDefaults(blank func() T) *RecordsController[T] {
	rc.blank = blank
	return rc
}

// Register mounts the five routes under group.
func (rc *RecordsController[T]) Register(group *gin.RouterGroup) {
	group.GET("", rc.List)
	group.POST("", rc.Create)
	group.GET("/:id", rc.Get)
	group.PUT("/:id", rc.Update)
	group.DELETE("/:id", rc.Delete)
}

// List returns the collection
// GET /api/<resource>?q=
func (rc *RecordsController[T]) List(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	if rc.search != nil {
		respondList(c, rc.search(c, ws))
		return
	}
	respondList(c, rc.service.List(ws, c.Query("q")))
}

// GET /api/<resource>/:id
func (rc *RecordsController[T]) Get(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rec, err := rc.service.Get(ws, id)
	if err != nil {
		respondError(c, err, rc.resource)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/<resource>
func (rc *RecordsController[T]) Create(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var rec T
	if rc.blank != nil {
		rec = rc.blank()
	}
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondInvalid(c, err)
		return
	}
	respondCreated(c, rc.service.Create(ws, rec))
}

// PUT /api/<resource>/:id
func (rc *RecordsController[T]) Update(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rec, err := rc.service.Get(ws, id)
	if err != nil {
		respondError(c, err, rc.resource)
		return
	}
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondInvalid(c, err)
		return
	}
	updated, err := rc.service.Update(ws, id, rec)
	if err != nil {
		respondError(c, err, rc.resource)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/<resource>/:id
func (rc *RecordsController[T]) Delete(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := rc.service.Delete(ws, id); err != nil {
		respondError(c, err, rc.resource)
		return
	}
	c.Status(http.StatusNoContent)
}
