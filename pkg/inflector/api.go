package inflector

// Default is the English Inflector behind Pluralize and Singularize.
var Default = NewEnglish()

func Pluralize(s string) string {
	return Default.Pluralize(s)
}

func Singularize(s string) string {
	return Default.Singularize(s)
}
