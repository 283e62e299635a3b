package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"approvaldash/internal/dashboard"
	jwttoken "approvaldash/internal/jwt_token"
	id "approvaldash/pkg/domain"
)

const anchor = "2024-01-20T12:00:00Z"

func noEnv(string) (string, bool) { return "", false }

func execute(t *testing.T, lookup func(string) (string, bool), args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(lookup)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTrendCommand(t *testing.T) {
	out, err := execute(t, noEnv, "trend", "--days", "7", "--at", anchor)
	require.NoError(t, err)

	var points []dashboard.TrendPoint
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	require.Len(t, points, 7)
	assert.Equal(t, "2024-01-14", points[0].Date)
	assert.Equal(t, "2024-01-20", points[6].Date)
}

func TestStatisticsCommand(t *testing.T) {
	out, err := execute(t, noEnv, "statistics", "--user", "2", "--at", anchor)
	require.NoError(t, err)

	var stats dashboard.Statistics
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.GreaterOrEqual(t, stats.Total, stats.Approved+stats.Rejected)
}

func TestTodosCommandHonoursLimit(t *testing.T) {
	out, err := execute(t, noEnv, "todos", "--limit", "2", "--at", anchor)
	require.NoError(t, err)

	var todos []dashboard.TodoItem
	require.NoError(t, json.Unmarshal([]byte(out), &todos))
	assert.LessOrEqual(t, len(todos), 2)
}

func TestOverviewCommandUsesTimezone(t *testing.T) {
	env := map[string]string{"DASHBOARD_TZ": "UTC"}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	out, err := execute(t, lookup, "overview", "--at", anchor)
	require.NoError(t, err)

	var overview dashboard.Overview
	require.NoError(t, json.Unmarshal([]byte(out), &overview))
	assert.Len(t, overview.Trend, dashboard.DefaultTrendDays)
}

func TestTokenCommand(t *testing.T) {
	env := map[string]string{"JWT_SIGNING_KEY": "cli-test-key", "JWT_ISSUER": "cli"}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	out, err := execute(t, lookup, "token", "--user", "3", "--ttl", "1h")
	require.NoError(t, err)

	got, err := jwttoken.NewJWTService("cli-test-key", "cli").ExtractUserIDFromToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, id.UserID(3), got)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "non positive user", args: []string{"statistics", "--user", "0"}},
		{name: "malformed instant", args: []string{"trend", "--at", "yesterday"}},
		{name: "unexpected argument", args: []string{"heatmap", "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, noEnv, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestBadEnvironmentOverride(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "DASHBOARD_TIMEOUT" {
			return "soon", true
		}
		return "", false
	}
	_, err := execute(t, lookup, "efficiency", "--at", time.Now().UTC().Format(time.RFC3339))
	assert.ErrorContains(t, err, "DASHBOARD_TIMEOUT")
}
