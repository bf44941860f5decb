package lexicon

var staticTables = map[Category][]string{
	Noun:      {"cat", "house", "table", "book", "city", "friend", "car", "sun"},
	Adjective: {"red", "big", "small", "bright", "old", "new", "blue", "green"},
	Verb:      {"walks", "reads", "laughs", "thinks", "works", "plays", "dances", "sings"},
	FirstName: {"Alexey", "Maria", "Dmitry", "Anna", "Sergey", "Ekaterina", "Ivan", "Olga"},
	LastName:  {"Ivanov", "Petrov", "Sidorov", "Kuznetsov", "Smirnov", "Popov", "Zaitsev", "Lebedev"},
}

// BuildStatic returns the small built-in lexicon. Random words drawn from it are
// synthetic letter strings.
func BuildStatic() *Lexicon {
	b := NewBuilder(Synthetic)
	for _, c := range Categories {
		for _, w := range staticTables[c] {
			b.Add(c, w)
		}
	}
	lex, _ := b.Build()
	return lex
}
