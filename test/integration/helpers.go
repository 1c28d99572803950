//go:build integration
// +build integration

package integration

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestDataGenerator generates test data for integration tests
type TestDataGenerator struct {
	rand *rand.Rand
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// FormName returns a name unlikely to collide with earlier runs.
func (g *TestDataGenerator) FormName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, g.rand.Intn(1000000))
}

// FormPayload builds a POST /forms body with the given questions.
func FormPayload(name string, questions ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"name":      name,
		"questions": questions,
	}
}

func TextQuestion(label string, required bool) map[string]interface{} {
	return map[string]interface{}{
		"type":     "text",
		"question": label,
		"required": required,
	}
}

// Responses builds a POST /source-records body from question/answer pairs.
func Responses(pairs ...string) map[string]interface{} {
	responses := make([]map[string]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		responses = append(responses, map[string]string{"question": pairs[i], "answer": pairs[i+1]})
	}
	return map[string]interface{}{"responses": responses}
}

// resetDatabase empties every table, children first.
func resetDatabase(t *testing.T) {
	t.Helper()
	err := GetTestContext().DB.Exec("TRUNCATE source_data, source_records, forms CASCADE").Error
	require.NoError(t, err)
}

// countRows counts rows in table.
func countRows(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, GetTestContext().DB.Table(table).Count(&n).Error)
	return n
}
