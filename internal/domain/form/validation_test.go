package form

import (
	"reflect"
	"testing"
)

func intakeQuestions() []Question {
	return []Question{
		{Type: QuestionTypeText, Question: "First Name?", Required: true},
		{Type: QuestionTypeTextarea, Question: "Notes?"},
		{Type: QuestionTypeDatetime, Question: "Date of Birth?", Required: true},
	}
}

func TestFirstUnanswered(t *testing.T) {
	f := &Form{Questions: intakeQuestions()}
	questions := f.RequiredQuestions()

	t.Run("no answers", func(t *testing.T) {
		q, missing := FirstUnanswered(questions, nil)
		if !missing || q.Question != "First Name?" {
			t.Fatalf("expected First Name? to be missing, got %v %q", missing, q.Question)
		}
	})

	t.Run("empty answer does not count", func(t *testing.T) {
		answers := []Answer{{Question: "First Name?", Answer: ""}, {Question: "Date of Birth?", Answer: "2021-01-01"}}
		q, missing := FirstUnanswered(questions, answers)
		if !missing || q.Question != "First Name?" {
			t.Fatalf("expected First Name? to be missing, got %q", q.Question)
		}
	})

	t.Run("label must match exactly", func(t *testing.T) {
		answers := []Answer{{Question: "first name?", Answer: "Jane"}, {Question: "Date of Birth?", Answer: "2021-01-01"}}
		if _, missing := FirstUnanswered(questions, answers); !missing {
			t.Fatalf("expected case-different label to be rejected")
		}
	})

	t.Run("whitespace answer is accepted", func(t *testing.T) {
		answers := []Answer{{Question: "First Name?", Answer: " "}, {Question: "Date of Birth?", Answer: "2021-01-01"}}
		if q, missing := FirstUnanswered(questions, answers); missing {
			t.Fatalf("unexpected missing question %q", q.Question)
		}
	})

	t.Run("second required missing", func(t *testing.T) {
		answers := []Answer{{Question: "First Name?", Answer: "Jane"}}
		q, missing := FirstUnanswered(questions, answers)
		if !missing || q.Question != "Date of Birth?" {
			t.Fatalf("expected Date of Birth? to be missing, got %q", q.Question)
		}
	})
}

func TestMissingByPosition(t *testing.T) {
	questions := intakeQuestions()

	got := MissingByPosition(questions, []string{"  ", "", ""})
	if !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("expected [0 2], got %v", got)
	}

	got = MissingByPosition(questions, []string{"Jane"})
	if !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("expected [2] for short answer list, got %v", got)
	}

	if got := MissingByPosition(questions, []string{"Jane", "", "2021-01-01T10:00"}); got != nil {
		t.Fatalf("expected no missing answers, got %v", got)
	}
}

func TestRequiredQuestions(t *testing.T) {
	f := Form{Questions: intakeQuestions()}
	required := f.RequiredQuestions()
	if len(required) != 2 || required[1].Question != "Date of Birth?" {
		t.Fatalf("unexpected required questions %+v", required)
	}
}

func TestToQuestionsKeepsOrderAndDefaults(t *testing.T) {
	yes := true
	dto := CreateFormDTO{
		Name: "Intake",
		Questions: []QuestionDTO{
			{Type: "dropdown", Question: "Color?", Required: &yes, AnswerChoices: []AnswerChoiceDTO{{Option: "Red", Value: "red"}}},
			{Type: "text", Question: "Why?"},
		},
	}
	qs := dto.ToQuestions()
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].Type != QuestionTypeDropdown || !qs[0].Required || qs[0].AnswerChoices[0].Value != "red" {
		t.Fatalf("unexpected first question %+v", qs[0])
	}
	if qs[1].Required {
		t.Fatalf("expected required to default to false")
	}
}
