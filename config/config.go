package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/stument-forum-api/logging"
	"github.com/linesmerrill/stument-forum-api/models"
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	Env          string

	Collections Collections

	RateLimitPerMinute int
	RateLimitBurst     int
	RequestTimeout     time.Duration
	StatsSchedule      string
}

// Collections names the mongo collection backing each forum entity
type Collections struct {
	Students    string
	Mentors     string
	Connections string
	Messages    string
	ChatRooms   string
}

// DefaultCollections is used for any collection name missing from the environment
var DefaultCollections = Collections{
	Students:    "students",
	Mentors:     "mentors",
	Connections: "connections",
	Messages:    "messages",
	ChatRooms:   "chat_rooms",
}

// New sets up all config related services
func New() *Config {
	env := getEnv("ENV", "local")

	//setup zap logger and replace default logger
	logger, err := logging.New(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:          os.Getenv("MONGODB_URI"),
		DatabaseName: os.Getenv("MONGODB_DB_NAME"),
		BaseURL:      os.Getenv("BASE_URL"),
		Port:         getEnv("PORT", "8080"),
		Env:          env,
		Collections: Collections{
			Students:    getEnv("MONGODB_STUDENTS_COLLECTION_NAME", DefaultCollections.Students),
			Mentors:     getEnv("MONGODB_MENTORS_COLLECTION_NAME", DefaultCollections.Mentors),
			Connections: getEnv("MONGODB_CONNECTION_COLLECTION_NAME", DefaultCollections.Connections),
			Messages:    getEnv("MONGODB_MESSAGES_COLLECTION_NAME", DefaultCollections.Messages),
			ChatRooms:   getEnv("MONGODB_CHAT_ROOM_COLLECTION_NAME", DefaultCollections.ChatRooms),
		},
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
		StatsSchedule:      getEnv("STATS_SCHEDULE", "@hourly"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		zap.S().Warnw("invalid integer in environment, using default",
			"key", key,
			"value", v,
			"default", fallback)
		return fallback
	}
	return i
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		zap.S().Warnw("invalid duration in environment, using default",
			"key", key,
			"value", v,
			"default", fallback)
		return fallback
	}
	return d
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err. Server errors are logged at error level, a
// missing document at info and other client errors at warn.
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	fields := []interface{}{"status", httpStatusCode}
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
		fields = append(fields, "error", err)
	}
	switch {
	case httpStatusCode >= http.StatusInternalServerError:
		zap.S().Errorw(message, fields...)
	case httpStatusCode == http.StatusNotFound:
		zap.S().Infow(message, fields...)
	default:
		zap.S().Warnw(message, fields...)
	}

	b, _ := json.Marshal(models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: errMsg},
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
