//go:build integration
// +build integration

package integration

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/linskybing/formkit/internal/domain/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormHandler_Integration(t *testing.T) {
	ctx := GetTestContext()
	client := NewHTTPClient(ctx.Router)
	gen := NewTestDataGenerator()

	var created form.Form
	name := gen.FormName("Intake")

	t.Run("CreateForm - Success", func(t *testing.T) {
		payload := FormPayload(name,
			TextQuestion("First Name?", true),
			map[string]interface{}{
				"type":     "dropdown",
				"question": "Color?",
				"answerChoices": []map[string]string{
					{"option": "Red", "value": "red"},
					{"option": "Blue", "value": "blue"},
				},
			},
		)
		resp, err := client.POST("/forms", payload)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
		require.NoError(t, resp.DecodeData(&created))

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, name, created.Name)
		require.Len(t, created.Questions, 2)
		assert.True(t, created.Questions[0].Required)
		assert.False(t, created.Questions[1].Required, "required defaults to false")
		assert.Len(t, created.Questions[1].AnswerChoices, 2)
	})

	t.Run("GetForm - Round trip", func(t *testing.T) {
		resp, err := client.GET("/forms/" + created.ID)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var fetched form.Form
		require.NoError(t, resp.DecodeData(&fetched))
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.Name, fetched.Name)
		assert.Equal(t, []form.Question(created.Questions), []form.Question(fetched.Questions))
	})

	t.Run("CreateForm - Duplicate name", func(t *testing.T) {
		resp, err := client.POST("/forms", FormPayload(name, TextQuestion("Other?", false)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "A form with the name "+name+" already exists", resp.GetErrorMessage())

		var n int64
		require.NoError(t, ctx.DB.Model(&form.Form{}).Where("name = ?", name).Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})

	t.Run("CreateForm - Input Validation", func(t *testing.T) {
		tests := []struct {
			name  string
			input interface{}
		}{
			{name: "Short name", input: FormPayload("Ab", TextQuestion("Name?", true))},
			{name: "Long name", input: FormPayload(strings.Repeat("x", 101), TextQuestion("Name?", true))},
			{name: "No questions", input: FormPayload(gen.FormName("Empty"))},
			{name: "Unknown type", input: FormPayload(gen.FormName("Bad"), map[string]interface{}{"type": "number", "question": "Age?"})},
			{name: "Short label", input: FormPayload(gen.FormName("Bad"), TextQuestion("A", false))},
			{name: "Malformed JSON", input: `{"name":`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp, err := client.POST("/forms", tt.input)
				require.NoError(t, err)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.Equal(t, "Validation failed. Please check your input.", resp.GetErrorMessage())
			})
		}
	})

	t.Run("GetForm - Errors", func(t *testing.T) {
		resp, err := client.GET("/forms/not-a-uuid")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp, err = client.GET("/forms/00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("ListForms - Summaries only", func(t *testing.T) {
		resp, err := client.GET("/forms")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var summaries []map[string]interface{}
		require.NoError(t, resp.DecodeData(&summaries))
		found := false
		for _, s := range summaries {
			assert.NotContains(t, s, "questions")
			if s["id"] == created.ID {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestFormHandler_ConcurrentDuplicateNames(t *testing.T) {
	client := NewHTTPClient(GetTestContext().Router)
	name := NewTestDataGenerator().FormName("Race")

	const attempts = 5
	statuses := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.POST("/forms", FormPayload(name, TextQuestion("Name?", true)))
			if err == nil {
				statuses[i] = resp.StatusCode
			}
		}(i)
	}
	wg.Wait()

	created := 0
	for _, s := range statuses {
		if s == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusConflict, s)
		}
	}
	assert.Equal(t, 1, created)
}
