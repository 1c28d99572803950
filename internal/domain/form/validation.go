package form

import "strings"

// Answer is one submitted question/answer pair.
type Answer struct {
	Question string
	Answer   string
}

func (f *Form) RequiredQuestions() []Question {
	var required []Question
	for _, q := range f.Questions {
		if q.Required {
			required = append(required, q)
		}
	}
	return required
}

// FirstUnanswered reports the first of the required questions that has no
// answer with the same label text and a non-empty value. Answers are not
// trimmed, so a whitespace-only answer satisfies the check.
func FirstUnanswered(required []Question, answers []Answer) (Question, bool) {
	for _, q := range required {
		if !answered(q.Question, answers) {
			return q, true
		}
	}
	return Question{}, false
}

func answered(label string, answers []Answer) bool {
	for _, a := range answers {
		if a.Question == label && a.Answer != "" {
			return true
		}
	}
	return false
}

// MissingByPosition checks answers slot by slot against the questions at the
// same index and returns the indexes of required questions whose trimmed
// answer is empty.
func MissingByPosition(questions []Question, answers []string) []int {
	var missing []int
	for i, q := range questions {
		if !q.Required {
			continue
		}
		if i >= len(answers) || strings.TrimSpace(answers[i]) == "" {
			missing = append(missing, i)
		}
	}
	return missing
}
