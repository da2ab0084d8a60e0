package courses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campuskit/campuskit/pkg/dbop"
	"github.com/campuskit/campuskit/pkg/schema"
	"github.com/campuskit/campuskit/pkg/tenant"
)

// Course is the stored course document.
type Course struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Code      string        `bson:"code" json:"code"`
	Title     string        `bson:"title" json:"title"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

// service handles course CRUD against the request's tenant scope. Every
// database call goes through the operation guard; the handlers themselves
// contain no timeout or error-shape logic.
type service struct {
	opTimeout time.Duration
}

func (s *service) list(w http.ResponseWriter, r *http.Request) {
	scope := tenant.MustFromContext(r.Context())
	coll := scope.Models.MustModel(schema.ModelCourse)

	courses, err := dbop.Run(r.Context(), s.opTimeout, func(ctx context.Context) ([]Course, error) {
		cursor, err := coll.Find(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		var out []Course
		if err := cursor.All(ctx, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		dbop.WriteError(w, err)
		return
	}
	if courses == nil {
		courses = []Course{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "courses": courses})
}

func (s *service) create(w http.ResponseWriter, r *http.Request) {
	scope := tenant.MustFromContext(r.Context())
	coll := scope.Models.MustModel(schema.ModelCourse)

	var payload struct {
		Code  string `json:"code"`
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	course := Course{
		Code:      payload.Code,
		Title:     payload.Title,
		CreatedAt: time.Now().UTC(),
	}
	id, err := dbop.Run(r.Context(), s.opTimeout, func(ctx context.Context) (bson.ObjectID, error) {
		res, err := coll.InsertOne(ctx, course)
		if err != nil {
			return bson.NilObjectID, err
		}
		oid, _ := res.InsertedID.(bson.ObjectID)
		return oid, nil
	})
	if err != nil {
		dbop.WriteError(w, err)
		return
	}
	course.ID = id
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "course": course})
}

func (s *service) get(w http.ResponseWriter, r *http.Request) {
	scope := tenant.MustFromContext(r.Context())
	coll := scope.Models.MustModel(schema.ModelCourse)

	id, err := dbop.ParseID(chi.URLParam(r, "courseID"))
	if err != nil {
		dbop.WriteError(w, err)
		return
	}

	course, err := dbop.Run(r.Context(), s.opTimeout, func(ctx context.Context) (*Course, error) {
		var c Course
		if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
			return nil, err
		}
		return &c, nil
	})
	if err != nil {
		if dbop.KindOf(err) == dbop.KindUnknown && isNoDocuments(err) {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "course not found"})
			return
		}
		dbop.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "course": course})
}

func (s *service) remove(w http.ResponseWriter, r *http.Request) {
	scope := tenant.MustFromContext(r.Context())
	coll := scope.Models.MustModel(schema.ModelCourse)

	id, err := dbop.ParseID(chi.URLParam(r, "courseID"))
	if err != nil {
		dbop.WriteError(w, err)
		return
	}

	deleted, err := dbop.Run(r.Context(), s.opTimeout, func(ctx context.Context) (int64, error) {
		res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return 0, err
		}
		return res.DeletedCount, nil
	})
	if err != nil {
		dbop.WriteError(w, err)
		return
	}
	if deleted == 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "course not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
