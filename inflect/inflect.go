package inflect

// The functions below use the built-in English inflector.

func Pluralize(word string) string { return defaultInflector.Pluralize(word) }
func Singularize(word string) string { return defaultInflector.Singularize(word) }
func TryPluralize(word string) (string, error) { return defaultInflector.TryPluralize(word) }
func TrySingularize(word string) (string, error) { return defaultInflector.TrySingularize(word) }
func Camelize(term string, upperFirst bool) string { return defaultInflector.Camelize(term, upperFirst) }
func Underscore(word string) string { return defaultInflector.Underscore(word) }
func Titleize(phrase string) string { return defaultInflector.Titleize(phrase) }
func Dasherize(word string) string { return defaultInflector.Dasherize(word) }
func Tableize(class string) string { return defaultInflector.Tableize(class) }
func Classify(table string) string { return defaultInflector.Classify(table) }
func ForeignKey(class string, separate bool) string { return defaultInflector.ForeignKey(class, separate) }
func Ordinal(n int) string { return defaultInflector.Ordinal(n) }
func Ordinalize(n int) string { return defaultInflector.Ordinalize(n) }

func Humanize(word string, opts ...HumanizeOption) string {
	return defaultInflector.Humanize(word, opts...)
}

func Parameterize(phrase string, opts ...ParameterizeOption) string {
	return defaultInflector.Parameterize(phrase, opts...)
}
