package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/stument-forum-api/api"
	"github.com/linesmerrill/stument-forum-api/config"
	"github.com/linesmerrill/stument-forum-api/databases"
	"github.com/linesmerrill/stument-forum-api/models"
	"github.com/linesmerrill/stument-forum-api/schemas"
)

// Student exported for testing purposes
type Student struct {
	DB databases.ForumDatabase
}

// CreateStudentHandler adds a new student
func (s Student) CreateStudentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.StudentUpdate
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, "name", req.Name, "email", req.Email) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := s.DB.AddStudent(ctx, req.Name, req.Email)
	if err != nil {
		config.ErrorStatus("failed to create student", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.CreatedResponse{ID: id.Hex()})
}

// StudentByEmailHandler returns the student with the email given in the query string
func (s Student) StudentByEmailHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !requireFields(w, "email", email) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	student, err := s.DB.FindStudentByEmail(ctx, email)
	if err != nil {
		config.ErrorStatus("failed to get student by email", http.StatusInternalServerError, w, err)
		return
	}
	if student == nil {
		config.ErrorStatus("student not found", http.StatusNotFound, w, nil)
		return
	}
	writeJSON(w, http.StatusOK, schemas.DumpStudent(*student))
}

// UpdateStudentHandler replaces the name and email of a student
func (s Student) UpdateStudentHandler(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["student_id"]

	zap.S().Debugf("student_id: %v", studentID)

	var req models.StudentUpdate
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, "name", req.Name, "email", req.Email) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	n, err := s.DB.UpdateStudentByID(ctx, studentID, req)
	if err != nil {
		storeErrorStatus("failed to update student", w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ModifiedResponse{ModifiedCount: n})
}

// DeleteStudentHandler removes a student
func (s Student) DeleteStudentHandler(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["student_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	n, err := s.DB.DeleteStudent(ctx, studentID)
	if err != nil {
		storeErrorStatus("failed to delete student", w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.DeletedResponse{DeletedCount: n})
}
