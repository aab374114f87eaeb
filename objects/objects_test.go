package objects

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	Name  string
	Tags  []string
	Owner *account
}

type customBlank struct{ empty bool }

func (c customBlank) IsBlank() bool { return c.empty }

type slug string

func (s slug) ToParam() string { return "slug-" + string(s) }

func TestBlankAndPresent(t *testing.T) {
	var nilPtr *account
	var nilMap map[string]int

	tests := []struct {
		name  string
		value any
		blank bool
	}{
		{"nil", nil, true},
		{"space", " ", true},
		{"newline", "\n", true},
		{"unicode space", "　", true},
		{"word", "hello ruby", false},
		{"false", false, true},
		{"true", true, false},
		{"zero", 0, false},
		{"float", 0.0, false},
		{"empty slice", []int{}, true},
		{"slice", []int{1}, false},
		{"nil map", nilMap, true},
		{"empty map", map[string]int{}, true},
		{"nil pointer", nilPtr, true},
		{"pointer", &account{}, false},
		{"struct", account{}, false},
		{"time", time.Time{}, false},
		{"custom blank", customBlank{empty: true}, true},
		{"custom present", customBlank{}, false},
		{"named string", slug("  "), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.blank, Blank(tt.value))
			assert.Equal(t, !tt.blank, Present(tt.value))
		})
	}
}

func TestPresence(t *testing.T) {
	v, ok := Presence(" ")
	assert.False(t, ok)
	assert.Equal(t, "", v)

	v, ok = Presence("hello ruby")
	assert.True(t, ok)
	assert.Equal(t, "hello ruby", v)

	n, ok := Presence([]int{})
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestDeepDup(t *testing.T) {
	words := []string{"hello", "ruby"}
	shallow := words
	shallow[1] = "rails"
	assert.Equal(t, []string{"hello", "rails"}, words)

	words = []string{"hello", "ruby"}
	deep := DeepDup(words)
	deep[1] = "rails"
	assert.Equal(t, []string{"hello", "rails"}, deep)
	assert.Equal(t, []string{"hello", "ruby"}, words)

	doc := map[string]any{"list": []any{1, map[string]any{"k": "v"}}}
	cp := DeepDup(doc)
	cp["list"].([]any)[1].(map[string]any)["k"] = "changed"
	assert.Equal(t, "v", doc["list"].([]any)[1].(map[string]any)["k"])

	owner := &account{Name: "root"}
	a := &account{Name: "a", Tags: []string{"x"}, Owner: owner}
	a.Owner.Owner = a
	b := DeepDup(a)
	require.NotSame(t, a, b)
	assert.NotSame(t, a.Owner, b.Owner)
	assert.Same(t, b, b.Owner.Owner, "cycles are preserved in the copy")
	b.Tags[0] = "y"
	assert.Equal(t, "x", a.Tags[0])

	var nothing map[string]int
	assert.Nil(t, DeepDup(nothing))
	assert.Equal(t, [2]int{1, 2}, DeepDup([2]int{1, 2}))
}

func TestTryAndIn(t *testing.T) {
	var missing *string
	_, ok := Try(missing, strings.ToUpper)
	assert.False(t, ok)

	greeting := "Hello Ruby"
	got, ok := Try(&greeting, func(s string) string { return strings.ReplaceAll(s, "Ruby", "Rails") })
	assert.True(t, ok)
	assert.Equal(t, "Hello Rails", got)

	assert.True(t, In(1, 1, 2, 3))
	assert.False(t, In("go", "ruby", "rails"))
	assert.False(t, In(1))
}

func TestToParam(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 123, "123"},
		{"string", "hello", "hello"},
		{"nil", nil, ""},
		{"true", true, "true"},
		{"false", false, "false"},
		{"slice", []any{0, true, reflect.TypeOf("")}, "0/true/string"},
		{"custom", slug("post"), "slug-post"},
		{"float", 2.5, "2.5"},
		{"pointer", &[]int{1, 2}, "1/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToParam(tt.value))
		})
	}
}

func TestToQuery(t *testing.T) {
	assert.Equal(t, "name=krutik", KeyQuery("name", "krutik"))
	assert.Equal(t, "a=1&b=2&c=3", ToQuery(map[string]any{"c": 3, "b": 2, "a": 1}))
	assert.Equal(t, "q=hello+world&x=", ToQuery(map[string]any{"q": "hello world", "x": nil}))
	assert.Equal(t, "user%5Bname%5D=Rob&user%5Btags%5D%5B%5D=a&user%5Btags%5D%5B%5D=b",
		ToQuery(map[string]any{"user": map[string]any{"tags": []string{"a", "b"}, "name": "Rob"}}))
	assert.Equal(t, "ids%5B%5D=", KeyQuery("ids", []int{}))
	assert.Equal(t, "", ToQuery(nil))
}
