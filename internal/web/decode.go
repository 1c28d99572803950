package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ajg/form"
)

// maxIndex bounds list indices in posted keys such as "questions.7.type" so a
// crafted key cannot force a huge slice allocation.
const maxIndex = 200

// FillInput carries one answer per question, in question order.
type FillInput struct {
	Answers []string `form:"answers"`
}

func decodeValues(dst interface{}, values url.Values) error {
	for key := range values {
		for _, part := range strings.Split(key, ".") {
			if n, err := strconv.Atoi(part); err == nil && (n < 0 || n >= maxIndex) {
				return fmt.Errorf("index out of range in %q", key)
			}
		}
	}
	dec := form.NewDecoder(nil)
	dec.IgnoreUnknownKeys(true)
	return dec.DecodeValues(dst, values)
}

// DecodeDraft reads a builder post into a Draft.
func DecodeDraft(values url.Values) (*Draft, error) {
	d := &Draft{}
	if err := decodeValues(d, values); err != nil {
		return nil, err
	}
	return d, nil
}

// DecodeAnswers reads a fill post and pads or truncates the answers to n.
func DecodeAnswers(values url.Values, n int) ([]string, error) {
	var in FillInput
	if err := decodeValues(&in, values); err != nil {
		return nil, err
	}
	answers := make([]string, n)
	copy(answers, in.Answers)
	return answers, nil
}
