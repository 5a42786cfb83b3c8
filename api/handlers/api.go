package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/stument-forum-api/api"
	"github.com/linesmerrill/stument-forum-api/api/scheduler"
	"github.com/linesmerrill/stument-forum-api/config"
	"github.com/linesmerrill/stument-forum-api/databases"
	"github.com/linesmerrill/stument-forum-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Metrics   *api.MetricsCollector
	Limiter   *api.LimiterStore
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
	client    databases.ClientHelper
	newClient func(*config.Config) (databases.ClientHelper, error)
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.Metrics == nil {
		a.Metrics = api.NewMetricsCollector()
	}
	if a.Limiter == nil {
		a.Limiter = api.NewLimiterStore(a.Config.RateLimitPerMinute, a.Config.RateLimitBurst, time.Minute)
	}
	forumDB := a.ForumDatabase()

	r := mux.NewRouter()

	s := Student{DB: forumDB}
	m := Mentor{DB: forumDB}
	c := Connection{DB: forumDB}
	room := ChatRoom{DB: forumDB}
	msg := Message{DB: forumDB}
	st := Stats{DB: forumDB}
	if a.Scheduler != nil {
		st.Last = a.Scheduler.LastStats
	}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(a.Metrics.MetricsMiddleware, api.RateLimitMiddleware(a.Limiter))

	apiCreate.Handle("/students", api.Middleware(http.HandlerFunc(s.CreateStudentHandler))).Methods("POST")
	apiCreate.Handle("/students", api.Middleware(http.HandlerFunc(s.StudentByEmailHandler))).Methods("GET")
	apiCreate.Handle("/students/{student_id}", api.Middleware(http.HandlerFunc(s.UpdateStudentHandler))).Methods("PUT")
	apiCreate.Handle("/students/{student_id}", api.Middleware(http.HandlerFunc(s.DeleteStudentHandler))).Methods("DELETE")

	apiCreate.Handle("/mentors", api.Middleware(http.HandlerFunc(m.CreateMentorHandler))).Methods("POST")
	apiCreate.Handle("/mentors", api.Middleware(http.HandlerFunc(m.MentorByEmailHandler))).Methods("GET")
	apiCreate.Handle("/mentors/search", api.Middleware(http.HandlerFunc(m.SearchMentorsHandler))).Methods("GET")
	apiCreate.Handle("/mentors/{mentor_id}", api.Middleware(http.HandlerFunc(m.UpdateMentorHandler))).Methods("PUT")
	apiCreate.Handle("/mentors/{mentor_id}", api.Middleware(http.HandlerFunc(m.DeleteMentorHandler))).Methods("DELETE")

	apiCreate.Handle("/connections", api.Middleware(http.HandlerFunc(c.CreateConnectionHandler))).Methods("POST")
	apiCreate.Handle("/connections/student/{email}", api.Middleware(http.HandlerFunc(c.ConnectionsByStudentEmailHandler))).Methods("GET")
	apiCreate.Handle("/connections/mentor/{email}", api.Middleware(http.HandlerFunc(c.ConnectionsByMentorEmailHandler))).Methods("GET")
	apiCreate.Handle("/connections/{connection_id}", api.Middleware(http.HandlerFunc(c.ConnectionByIDHandler))).Methods("GET")
	apiCreate.Handle("/connections/{connection_id}", api.Middleware(http.HandlerFunc(c.DeleteConnectionHandler))).Methods("DELETE")

	apiCreate.Handle("/rooms", api.Middleware(http.HandlerFunc(room.CreateRoomHandler))).Methods("POST")
	apiCreate.Handle("/rooms", api.Middleware(http.HandlerFunc(room.RoomsHandler))).Methods("GET")
	apiCreate.Handle("/rooms/find", api.Middleware(http.HandlerFunc(room.RoomByParticipantsHandler))).Methods("POST")
	apiCreate.Handle("/rooms/{room_id}", api.Middleware(http.HandlerFunc(room.RoomByIDHandler))).Methods("GET")
	apiCreate.Handle("/rooms/{room_id}", api.Middleware(http.HandlerFunc(room.DeleteRoomHandler))).Methods("DELETE")
	apiCreate.Handle("/rooms/{room_id}/join", api.Middleware(http.HandlerFunc(room.JoinRoomHandler))).Methods("PUT")
	apiCreate.Handle("/rooms/{room_id}/leave", api.Middleware(http.HandlerFunc(room.LeaveRoomHandler))).Methods("PUT")

	apiCreate.Handle("/rooms/{room_id}/messages", api.Middleware(http.HandlerFunc(msg.PostMessageHandler))).Methods("POST")
	apiCreate.Handle("/rooms/{room_id}/messages", api.Middleware(http.HandlerFunc(msg.MessagesByRoomHandler))).Methods("GET")

	apiCreate.Handle("/stats", api.Middleware(http.HandlerFunc(st.StatsHandler))).Methods("GET")
	apiCreate.Handle("/metrics", api.Middleware(http.HandlerFunc(a.Metrics.MetricsHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	newClient := a.newClient
	if newClient == nil {
		newClient = databases.NewClient
	}
	client, err := newClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().Errorw("failed to create new client", "error", err)
		return err
	}

	a.client = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().Errorw("failed to connect to database", "error", err)
		return err
	}
	// Connect is lazy, ping to make sure the server is reachable
	if err = client.Ping(ctx); err != nil {
		zap.S().Errorw("failed to ping database", "error", err)
		return err
	}
	zap.S().Info("stument-forum-api has connected to the database")

	a.Scheduler = scheduler.NewScheduler(a.ForumDatabase(), a.Config.StatsSchedule)

	// initialize api router
	a.initializeRoutes()
	return nil

}

// ForumDatabase returns the data access layer backed by the app's connection
func (a *App) ForumDatabase() databases.ForumDatabase {
	collections := a.Config.Collections
	if collections == (config.Collections{}) {
		collections = config.DefaultCollections
	}
	return databases.NewForumDatabase(a.dbHelper, collections)
}

// Close releases the rate limiter and the database connection
func (a *App) Close(ctx context.Context) error {
	if a.Limiter != nil {
		a.Limiter.Stop()
	}
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

// writeJSON marshals v and writes it with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(status)
	w.Write(b)
}

// decodeBody decodes the request body into v, writing a 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return false
	}
	return true
}

var errMissingField = errors.New("missing required field")

// requireFields writes a 400 naming the first empty field. fields alternates
// name and value.
func requireFields(w http.ResponseWriter, fields ...string) bool {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] == "" {
			config.ErrorStatus(fields[i]+" is required", http.StatusBadRequest, w, errMissingField)
			return false
		}
	}
	return true
}

// storeErrorStatus maps a data access error to a response
func storeErrorStatus(message string, w http.ResponseWriter, err error) {
	if errors.Is(err, databases.ErrInvalidID) {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}
	config.ErrorStatus(message, http.StatusInternalServerError, w, err)
}
