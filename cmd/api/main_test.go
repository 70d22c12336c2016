package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigReadsEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("SCENARIO_DIR", "/srv/scenarios")

	v := newConfig()
	assert.Equal(t, "9090", v.GetString("port"))
	assert.Equal(t, "/srv/scenarios", v.GetString("scenario_dir"))
	assert.Equal(t, []string{"*"}, splitList(v.GetString("cors_origins")))
}

func TestRunReturnsListenError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v := newConfig()
	v.Set("port", "-1")
	v.Set("scenario_dir", t.TempDir())
	v.Set("static_dir", "")

	err := run(v)
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitList(" http://a, ,http://b "))
	assert.Empty(t, splitList(""))
}
