package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelize(t *testing.T) {
	tests := []struct {
		name       string
		term       string
		upperFirst bool
		want       string
	}{
		{name: "single word", term: "tables", upperFirst: true, want: "Tables"},
		{name: "namespace", term: "backoffice/session", upperFirst: true, want: "Backoffice::Session"},
		{name: "snake case", term: "active_model", upperFirst: true, want: "ActiveModel"},
		{name: "lower first", term: "active_model", upperFirst: false, want: "activeModel"},
		{name: "nested", term: "active_model/errors", upperFirst: true, want: "ActiveModel::Errors"},
		{name: "already camel", term: "SomeThing", upperFirst: true, want: "SomeThing"},
		{name: "trailing underscore", term: "user_", upperFirst: true, want: "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Camelize(tt.term, tt.upperFirst))
		})
	}
}

func TestAcronyms(t *testing.T) {
	set := DefaultRuleSet()
	set.Acronyms = []string{"HTML", "API"}
	in := MustNew(set)

	assert.Equal(t, "HTMLParser", in.Camelize("html_parser", true))
	assert.Equal(t, "htmlParser", in.Camelize("html_parser", false))
	assert.Equal(t, "apiClient", in.Camelize("APIClient", false))
	assert.Equal(t, "HTML parser", in.Humanize("html_parser"))
	assert.Equal(t, "HTML Parser", in.Titleize("html_parser"))
	assert.Equal(t, "API key", in.Humanize("api_key_id"))
}

func TestUnderscore(t *testing.T) {
	cases := map[string]string{
		"AdminUser":           "admin_user",
		"Admin::Session":      "admin/session",
		"HTMLParser":          "html_parser",
		"contact-data":        "contact_data",
		"product":             "product",
		"Product123Name":      "product123_name",
		"adminUser":           "admin_user",
		"ActiveModel::Errors": "active_model/errors",
	}
	for word, want := range cases {
		t.Run(word, func(t *testing.T) {
			assert.Equal(t, want, Underscore(word))
		})
	}
}

func TestTitleize(t *testing.T) {
	cases := map[string]string{
		"alice in wonderland":     "Alice In Wonderland",
		"raiders_of_the_lost_ark": "Raiders Of The Lost Ark",
		"ActiveRecord":            "Active Record",
		"x-men: the last stand":   "X Men: The Last Stand",
		"author_id":               "Author",
	}
	for phrase, want := range cases {
		t.Run(phrase, func(t *testing.T) {
			assert.Equal(t, want, Titleize(phrase))
		})
	}
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Author", Humanize("author_id"))
	assert.Equal(t, "Employee salary", Humanize("employee_salary"))
	assert.Equal(t, "Name", Humanize("name"))
	assert.Equal(t, "Id", Humanize("_id"))
	assert.Equal(t, "author", Humanize("author_id", WithoutCapitalize()))
	assert.Equal(t, "Author id", Humanize("author_id", KeepIDSuffix()))

	set := DefaultRuleSet()
	set.Humans = []Rule{{Pattern: `^col_rpted_bugs$`, Replacement: "Reported bugs"}}
	in := MustNew(set)
	assert.Equal(t, "Reported bugs", in.Humanize("col_rpted_bugs"))
}

func TestDasherize(t *testing.T) {
	assert.Equal(t, "contact-data", Dasherize("contact_data"))
}

func TestParameterize(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		opts   []ParameterizeOption
		want   string
	}{
		{name: "spaces", phrase: "John Smith", want: "john-smith"},
		{name: "punctuation", phrase: "Donald E. Knuth", want: "donald-e-knuth"},
		{name: "accents and edges", phrase: "^très|Jolie-- ", want: "tres-jolie"},
		{name: "custom separator", phrase: "Donald E. Knuth", opts: []ParameterizeOption{WithSeparator("_")}, want: "donald_e_knuth"},
		{name: "empty separator", phrase: "Donald E. Knuth", opts: []ParameterizeOption{WithSeparator("")}, want: "donaldeknuth"},
		{name: "preserve case", phrase: "Donald E. Knuth", opts: []ParameterizeOption{PreserveCase()}, want: "Donald-E-Knuth"},
		{name: "approximation", phrase: "Ærøskøbing", want: "aeroskobing"},
		{name: "no ascii", phrase: "日本", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parameterize(tt.phrase, tt.opts...))
		})
	}
}

func TestTransliterate(t *testing.T) {
	assert.Equal(t, "AEroskobing", Transliterate("Ærøskøbing"))
	assert.Equal(t, "Cafe creme", Transliterate("Café crème"))
	assert.Equal(t, "??", Transliterate("日本"))
}

func TestTableizeClassify(t *testing.T) {
	tableize := map[string]string{
		"Person":          "people",
		"RawScaledScorer": "raw_scaled_scorers",
		"fancyCategory":   "fancy_categories",
		"InvoiceLine":     "invoice_lines",
	}
	for class, want := range tableize {
		assert.Equal(t, want, Tableize(class), class)
	}

	classify := map[string]string{
		"people":       "Person",
		"invoices":     "Invoice",
		"schema.posts": "Post",
		"ham_and_eggs": "HamAndEgg",
	}
	for table, want := range classify {
		assert.Equal(t, want, Classify(table), table)
	}
}

func TestForeignKey(t *testing.T) {
	assert.Equal(t, "session_id", ForeignKey("Admin::Session", true))
	assert.Equal(t, "messageid", ForeignKey("Message", false))
	assert.Equal(t, "invoice_line_id", ForeignKey("InvoiceLine", true))
}

func TestNamespaces(t *testing.T) {
	const path = "ActiveSupport::Inflector::Inflections"

	assert.Equal(t, "Inflections", Demodulize(path))
	assert.Equal(t, "Inflections", Demodulize("Inflections"))
	assert.Equal(t, "ActiveSupport::Inflector", Deconstantize(path))
	assert.Equal(t, "", Deconstantize("Net"))
	assert.Equal(t, []string{"ActiveSupport::Inflector", "ActiveSupport"}, Parents(path))
	assert.Nil(t, Parents("Net"))
}
