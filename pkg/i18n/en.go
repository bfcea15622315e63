package i18n

// englishMapping covers English card-search vocabulary. English speakers
// often mix natural terms with raw Scryfall syntax, so the keyword table
// leans on tokens Scryfall accepts as-is.
var englishMapping = &Mapping{
	LanguageCode: "en",

	Colors: map[string]string{
		"white":     "w",
		"blue":      "u",
		"black":     "b",
		"red":       "r",
		"green":     "g",
		"colorless": "c",
	},

	Types: map[string]string{
		"artifact":      "artifact",
		"artifacts":     "artifact",
		"creature":      "creature",
		"creatures":     "creature",
		"enchantment":   "enchantment",
		"enchantments":  "enchantment",
		"instant":       "instant",
		"instants":      "instant",
		"land":          "land",
		"lands":         "land",
		"planeswalker":  "planeswalker",
		"planeswalkers": "planeswalker",
		"sorcery":       "sorcery",
		"sorceries":     "sorcery",
		"basic":         "basic",
		"legendary":     "legendary",
		"snow":          "snow",
		"equipment":     "equipment",
		"aura":          "aura",
		"auras":         "aura",
		"vehicle":       "vehicle",
		"vehicles":      "vehicle",
		"token":         "token",
		"tokens":        "token",
	},

	Operators: map[string]string{
		"=":  "=",
		"!=": "!=",
		"<":  "<",
		"<=": "<=",
		">":  ">",
		">=": ">=",
		":":  ":",

		// Phrase forms matched by the parser's English comparison pass.
		"greater than or equal to": ">=",
		"less than or equal to":    "<=",
		"at least":                 ">=",
		"at most":                  "<=",
		"greater than":             ">",
		"more than":                ">",
		"less than":                "<",
		"equal to":                 "=",
		"equals":                   "=",
		"exactly":                  "=",
	},

	Fields: map[string]string{
		"color":     "c",
		"colors":    "c",
		"c":         "c",
		"identity":  "id",
		"id":        "id",
		"mana":      "m",
		"m":         "m",
		"cmc":       "cmc",
		"manavalue": "mv",
		"mv":        "mv",
		"type":      "t",
		"t":         "t",
		"oracle":    "o",
		"o":         "o",
		"power":     "p",
		"p":         "p",
		"toughness": "tou",
		"tou":       "tou",
		"loyalty":   "loy",
		"loy":       "loy",
		"rarity":    "r",
		"r":         "r",
		"set":       "s",
		"s":         "s",
		"edition":   "e",
		"e":         "e",
		"format":    "f",
		"f":         "f",
		"artist":    "a",
		"a":         "a",
		"flavor":    "fl",
		"year":      "year",
		"price":     "usd",
		"usd":       "usd",
		"language":  "lang",
		"lang":      "lang",
	},

	Keywords: map[string]string{
		"multicolor":   "multicolor",
		"multicolored": "multicolor",
		"monocolor":    "monocolor",
		"monocolored":  "monocolor",
		"reprint":      "reprint",
		"foil":         "foil",
		"nonfoil":      "nonfoil",
		"digital":      "digital",
		"paper":        "paper",
		"promo":        "promo",
		"funny":        "funny",
		"legal":        "legal",
		"banned":       "banned",
		"restricted":   "restricted",
		"flying":       "keyword:flying",
		"haste":        "keyword:haste",
		"deathtouch":   "keyword:deathtouch",
		"trample":      "keyword:trample",
		"vigilance":    "keyword:vigilance",
		"lifelink":     "keyword:lifelink",
		"hexproof":     "keyword:hexproof",
		"reach":        "keyword:reach",
		"menace":       "keyword:menace",
		"flash":        "keyword:flash",
		"changeling":   "keyword:changeling",
		"defender":     "keyword:defender",
		"ward":         "keyword:ward",
	},
}
