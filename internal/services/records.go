package services

import (
	"strings"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/store"
)

// Records implements list, search and the full-object CRUD shared by every
// workspace collection. Each change is journaled.
type Records[T any, P store.Record[T]] struct {
	entity     string
	collection func(*store.Workspace) *store.Collection[T, P]
	// matches reports whether rec contains the lower-cased query.
	matches func(rec T, query string) bool
	// prepare derives computed fields before a record is stored.
	prepare  func(ws *store.Workspace, rec *T)
	describe func(T) string
	deps     Deps
}

func (r *Records[T, P]) Entity() string {
	return r.entity
}

// List returns the records matching query, or every record when query is blank.
func (r *Records[T, P]) List(ws *store.Workspace, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || r.matches == nil {
		return r.collection(ws).List()
	}
	out := r.collection(ws).Filter(func(rec T) bool { return r.matches(rec, q) })
	if out == nil {
		out = []T{}
	}
	return out
}

func (r *Records[T, P]) Get(ws *store.Workspace, id int) (T, error) {
	return r.collection(ws).Get(id)
}

func (r *Records[T, P]) Create(ws *store.Workspace, rec T) T {
	if r.prepare != nil {
		r.prepare(ws, &rec)
	}
	created := r.collection(ws).Insert(rec)
	r.deps.Journal.LogChange(ws.ID, entities.AuditEventCreate, r.entity, P(&created).GetID(), "Created "+r.describe(created))
	return created
}

// Update replaces the stored record with rec. Callers merge partial input
// onto the current record first.
func (r *Records[T, P]) Update(ws *store.Workspace, id int, rec T) (T, error) {
	updated, err := r.collection(ws).Update(id, func(cur *T) error {
		*cur = rec
		if r.prepare != nil {
			r.prepare(ws, cur)
		}
		return nil
	})
	if err != nil {
		return updated, err
	}
	r.deps.Journal.LogChange(ws.ID, entities.AuditEventUpdate, r.entity, id, "Updated "+r.describe(updated))
	return updated, nil
}

func (r *Records[T, P]) Delete(ws *store.Workspace, id int) error {
	removed, err := r.collection(ws).Delete(id)
	if err != nil {
		return err
	}
	r.deps.Journal.LogChange(ws.ID, entities.AuditEventDelete, r.entity, id, "Deleted "+r.describe(removed))
	return nil
}

// contains reports whether any field holds the lower-cased query q.
func contains(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
