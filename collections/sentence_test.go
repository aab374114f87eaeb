package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSentence(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		opts  []SentenceOption
		want  string
	}{
		{"empty", nil, nil, ""},
		{"one", []string{"Ruby"}, nil, "Ruby"},
		{"two", []string{"Ruby", "Rails"}, nil, "Ruby and Rails"},
		{"three", []string{"Go", "Ruby", "Rails"}, nil, "Go, Ruby, and Rails"},
		{"custom last", []string{"a", "b", "c"}, []SentenceOption{WithLastWordConnector(" or ")}, "a, b or c"},
		{"custom words", []string{"a", "b", "c"}, []SentenceOption{WithWordsConnector("; ")}, "a; b, and c"},
		{"custom two", []string{"a", "b"}, []SentenceOption{WithTwoWordsConnector(" & ")}, "a & b"},
		{"spanish", []string{"uno", "dos", "tres"}, []SentenceOption{WithLocale("es-MX")}, "uno, dos y tres"},
		{"locale then override", []string{"un", "deux"}, []SentenceOption{WithLocale("fr"), WithTwoWordsConnector(" ou ")}, "un ou deux"},
		{"unknown locale", []string{"a", "b"}, []SentenceOption{WithLocale("ja")}, "a and b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSentence(tt.items, tt.opts...))
		})
	}
}
