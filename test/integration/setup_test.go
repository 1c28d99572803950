//go:build integration
// +build integration

package integration

import (
	"log"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formkit/internal/testutils"
	"gorm.io/gorm"
)

// TestContext holds all test dependencies
type TestContext struct {
	Router *gin.Engine
	DB     *gorm.DB
}

var testCtx *TestContext

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgresForIntegration()

	testCtx = &TestContext{
		Router: testutils.SetupRouter(gormDB),
		DB:     gormDB,
	}
	log.Println("Routes registered")

	code := m.Run()

	cleanup()
	os.Exit(code)
}

// GetTestContext returns the global test context
func GetTestContext() *TestContext {
	return testCtx
}
