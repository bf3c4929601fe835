package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeLine(t *testing.T, line string) map[string]any {
	t.Helper()

	var record map[string]any
	assert.NoError(t, json.Unmarshal([]byte(line), &record))
	return record
}

func TestLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo)

	log.Info("user registered", UserID("u-1"), Username("alice"))

	record := decodeLine(t, buf.String())
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "user registered", record["message"])

	fields := record["fields"].(map[string]any)
	assert.Equal(t, "u-1", fields["user_id"])
	assert.Equal(t, "alice", fields["username"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.Error("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo).With(Component("directory"))

	log.Info("operation", Operation("RegisterUser"))

	fields := decodeLine(t, buf.String())["fields"].(map[string]any)
	assert.Equal(t, "directory", fields["component"])
	assert.Equal(t, "RegisterUser", fields["operation"])
}

func TestLogger_ErrField(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo)

	log.Error("failed", Err(errors.New("boom")))

	fields := decodeLine(t, buf.String())["fields"].(map[string]any)
	assert.Equal(t, "boom", fields["error"])
}

func TestDomainFieldHelpers(t *testing.T) {
	assert.Equal(t, Field{Key: "user_id", Value: "u-1"}, UserID("u-1"))
	assert.Equal(t, Field{Key: "course_id", Value: "c-1"}, CourseID("c-1"))
	assert.Equal(t, Field{Key: "course_name", Value: "Algebra"}, CourseName("Algebra"))
	assert.Equal(t, Field{Key: "grade", Value: 90.0}, Grade(90))
	assert.Equal(t, Field{Key: "policy", Value: "unweighted_mean"}, PolicyName("unweighted_mean"))
	assert.Equal(t, Field{Key: "operation", Value: "Enroll"}, Operation("Enroll"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("unknown"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
}

func TestContextPropagation(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelDebug)

	ctx := WithContext(context.Background(), log)

	FromContext(ctx).Debug("from context")
	assert.Contains(t, buf.String(), "from context")

	// Missing logger in context falls back to a default, never panics.
	assert.NotNil(t, FromContext(context.Background()))
}
