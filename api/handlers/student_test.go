package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/stument-forum-api/api/handlers"
	"github.com/linesmerrill/stument-forum-api/databases"
	"github.com/linesmerrill/stument-forum-api/databases/mocks"
	"github.com/linesmerrill/stument-forum-api/models"
)

var errMocked = errors.New("mocked-error")

func invalidIDError(id string) error {
	return fmt.Errorf("%w %q: %v", databases.ErrInvalidID, id, primitive.ErrInvalidHex)
}

func assertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rr.Code)

	var resp models.ErrorMessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, message, resp.Response.Message)
}

func TestStudent_CreateStudentHandler(t *testing.T) {
	db := mocks.NewForumDatabase(t)
	id := primitive.NewObjectID()
	db.On("AddStudent", mock.Anything, "Ada", "ada@example.com").Return(id, nil)

	req := httptest.NewRequest("POST", "/api/v1/students", strings.NewReader(`{"name":"Ada","email":"ada@example.com"}`))
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.CreateStudentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp models.CreatedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, id.Hex(), resp.ID)
}

func TestStudent_CreateStudentHandlerBadBody(t *testing.T) {
	db := mocks.NewForumDatabase(t)

	req := httptest.NewRequest("POST", "/api/v1/students", strings.NewReader(`{"name":`))
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.CreateStudentHandler).ServeHTTP(rr, req)

	assertErrorResponse(t, rr, http.StatusBadRequest, "failed to decode request body")
}

func TestStudent_CreateStudentHandlerMissingEmail(t *testing.T) {
	db := mocks.NewForumDatabase(t)

	req := httptest.NewRequest("POST", "/api/v1/students", strings.NewReader(`{"name":"Ada"}`))
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.CreateStudentHandler).ServeHTTP(rr, req)

	assertErrorResponse(t, rr, http.StatusBadRequest, "email is required")
}

func TestStudent_CreateStudentHandlerStoreError(t *testing.T) {
	db := mocks.NewForumDatabase(t)
	db.On("AddStudent", mock.Anything, "Ada", "ada@example.com").Return(primitive.NilObjectID, errMocked)

	req := httptest.NewRequest("POST", "/api/v1/students", strings.NewReader(`{"name":"Ada","email":"ada@example.com"}`))
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.CreateStudentHandler).ServeHTTP(rr, req)

	assertErrorResponse(t, rr, http.StatusInternalServerError, "failed to create student")
}

func TestStudent_StudentByEmailHandler(t *testing.T) {
	db := mocks.NewForumDatabase(t)
	student := &models.Student{
		ID:        primitive.NewObjectID(),
		Type:      models.StudentType,
		Name:      "Ada",
		Email:     "ada@example.com",
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	db.On("FindStudentByEmail", mock.Anything, "ada@example.com").Return(student, nil)

	req := httptest.NewRequest("GET", "/api/v1/students?email=ada@example.com", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.StudentByEmailHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, student.ID.Hex(), resp["_id"])
	assert.Equal(t, "student", resp["type"])
	assert.Equal(t, "2024-03-01T12:00:00.000Z", resp["created_at"])
}

func TestStudent_StudentByEmailHandlerMissingEmail(t *testing.T) {
	db := mocks.NewForumDatabase(t)

	req := httptest.NewRequest("GET", "/api/v1/students", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.StudentByEmailHandler).ServeHTTP(rr, req)

	assertErrorResponse(t, rr, http.StatusBadRequest, "email is required")
}

func TestStudent_StudentByEmailHandlerNotFound(t *testing.T) {
	db := mocks.NewForumDatabase(t)
	db.On("FindStudentByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/students?email=ghost@example.com", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.StudentByEmailHandler).ServeHTTP(rr, req)

	assertErrorResponse(t, rr, http.StatusNotFound, "student not found")
}

func TestStudent_UpdateStudentHandler(t *testing.T) {
	db := mocks.NewForumDatabase(t)
	id := primitive.NewObjectID().Hex()
	update := models.StudentUpdate{Name: "Ada L", Email: "ada.l@example.com"}
	db.On("UpdateStudentByID", mock.Anything, id, update).Return(int64(1), nil)

	req := httptest.NewRequest("PUT", "/api/v1/students/"+id, strings.NewReader(`{"name":"Ada L","email":"ada.l@example.com"}`))
	req = mux.SetURLVars(req, map[string]string{"student_id": id})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.UpdateStudentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"modified_count":1}`, rr.Body.String())
}

func TestStudent_UpdateStudentHandlerInvalidID(t *testing.T) {
	db := mocks.NewForumDatabase(t)
	update := models.StudentUpdate{Name: "Ada", Email: "ada@example.com"}
	db.On("UpdateStudentByID", mock.Anything, "1234", update).Return(int64(0), invalidIDError("1234"))

	req := httptest.NewRequest("PUT", "/api/v1/students/1234", strings.NewReader(`{"name":"Ada","email":"ada@example.com"}`))
	req = mux.SetURLVars(req, map[string]string{"student_id": "1234"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.UpdateStudentHandler).ServeHTTP(rr, req)

	assertErrorResponse(t, rr, http.StatusBadRequest, "failed to get objectID from Hex")
}

func TestStudent_DeleteStudentHandler(t *testing.T) {
	db := mocks.NewForumDatabase(t)
	id := primitive.NewObjectID().Hex()
	db.On("DeleteStudent", mock.Anything, id).Return(int64(0), nil)

	req := httptest.NewRequest("DELETE", "/api/v1/students/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"student_id": id})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.DeleteStudentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deleted_count":0}`, rr.Body.String())
}

func TestStudent_DeleteStudentHandlerStoreError(t *testing.T) {
	db := mocks.NewForumDatabase(t)
	id := primitive.NewObjectID().Hex()
	db.On("DeleteStudent", mock.Anything, id).Return(int64(0), errMocked)

	req := httptest.NewRequest("DELETE", "/api/v1/students/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"student_id": id})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Student{DB: db}.DeleteStudentHandler).ServeHTTP(rr, req)

	assertErrorResponse(t, rr, http.StatusInternalServerError, "failed to delete student")
}
