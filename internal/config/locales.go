package config

// Built-in abbreviation lists per locale. A word exactly equal to one
// of these (leading space included) never terminates a sentence, even
// though it ends with a period.
var defaultAbbreviations = map[string][]string{
	"de": {
		" z.B.", " u.a.", " d.h.", " bzw.", " etc.", " usw.",
		" z. B.", " u. a.", " d. h.",
	},
	"en": {
		" e.g.", " i.e.", " etc.", " vs.", " cf.",
		" e. g.", " i. e.",
	},
}

// Built-in coordinating-conjunction lists per locale; a group is
// preferentially cut right before one of these words.
var defaultConjunctions = map[string][]string{
	"de": {
		" oder", " und", " sowie", " als auch", " sondern",
		" aber", " denn", " doch", " bzw.",
	},
	"en": {
		" or", " and", " but", " nor", " yet", " so",
	},
}

// AbbreviationList returns the abbreviation list for the configured
// locale: a TOML override if present, else the built-in list.
func (s *Settings) AbbreviationList() []string {
	if list, ok := s.Abbreviations[s.Locale]; ok {
		return list
	}
	return defaultAbbreviations[s.Locale]
}

// ConjunctionList returns the conjunction list for the configured
// locale: a TOML override if present, else the built-in list.
func (s *Settings) ConjunctionList() []string {
	if list, ok := s.Conjunctions[s.Locale]; ok {
		return list
	}
	return defaultConjunctions[s.Locale]
}
