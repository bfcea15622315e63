package i18n

// japaneseMapping covers Japanese card-search vocabulary. Japanese card
// names are not translated here; Scryfall resolves printed names natively
// via lang:, so only search vocabulary needs mapping.
var japaneseMapping = &Mapping{
	LanguageCode: "ja",

	Colors: map[string]string{
		"白":   "w",
		"青":   "u",
		"黒":   "b",
		"赤":   "r",
		"緑":   "g",
		"無色":  "c",
		"白い":  "w",
		"青い":  "u",
		"黒い":  "b",
		"赤い":  "r",
		"緑の":  "g",
		"白の":  "w",
		"青の":  "u",
		"黒の":  "b",
		"赤の":  "r",
		"無色の": "c",
	},

	Types: map[string]string{
		"アーティファクト":   "artifact",
		"クリーチャー":     "creature",
		"エンチャント":     "enchantment",
		"インスタント":     "instant",
		"土地":         "land",
		"ランド":        "land",
		"プレインズウォーカー": "planeswalker",
		"ソーサリー":      "sorcery",
		"部族":         "tribal",
		"基本":         "basic",
		"伝説の":        "legendary",
		"雪":          "snow",
		"装身具":        "equipment",
		"オーラ":        "aura",
		"機体":         "vehicle",
		"トークン":       "token",
	},

	Operators: map[string]string{
		"以上":    ">=",
		"以下":    "<=",
		"より大きい": ">",
		"未満":    "<",
		"等しい":   "=",
		"と等しい":  "=",
		"ではない":  "!=",
		"含む":    ":",
	},

	Fields: map[string]string{
		"色":          "c",
		"カラー":        "c",
		"色識別":        "id",
		"マナ":         "m",
		"マナコスト":      "m",
		"点数で見たマナコスト": "cmc",
		"マナ総量":       "mv",
		"タイプ":        "t",
		"種族":         "t",
		"テキスト":       "o",
		"オラクルテキスト":   "o",
		"パワー":        "p",
		"タフネス":       "tou",
		"忠誠度":        "loy",
		"レアリティ":      "r",
		"希少度":        "r",
		"セット":        "s",
		"エキスパンション":   "s",
		"フォーマット":     "f",
		"アーティスト":     "a",
		"イラストレーター":   "a",
		"年":          "year",
		"価格":         "usd",
		"言語":         "lang",
	},

	Keywords: map[string]string{
		// Special card properties
		"多色":     "multicolor",
		"多色の":    "multicolor",
		"単色":     "monocolor",
		"単色の":    "monocolor",
		"再録":     "reprint",
		"フォイル":   "foil",
		"ノンフォイル": "nonfoil",
		"デジタル":   "digital",
		"紙":      "paper",
		"プロモ":    "promo",
		"使用可能":   "legal",
		"禁止":     "banned",
		"制限":     "restricted",

		// Evergreen keyword abilities
		"飛行":   "keyword:flying",
		"速攻":   "keyword:haste",
		"接死":   "keyword:deathtouch",
		"トランプル": "keyword:trample",
		"警戒":   "keyword:vigilance",
		"先制攻撃": `keyword:"first strike"`,
		"二段攻撃": `keyword:"double strike"`,
		"絆魂":   "keyword:lifelink",
		"呪禁":   "keyword:hexproof",
		"到達":   "keyword:reach",

		// Common deciduous keywords
		"威迫": "keyword:menace",
		"瞬速": "keyword:flash",
		"多相": "keyword:changeling",
		"防衛": "keyword:defender",
		"護法": "keyword:ward",

		// Formats
		"スタンダード": "f:standard",
		"パイオニア":  "f:pioneer",
		"モダン":    "f:modern",
		"レガシー":   "f:legacy",
		"ヴィンテージ": "f:vintage",
		"統率者":    "f:commander",
		"コマンダー":  "f:commander",
		"パウパー":   "f:pauper",
		"ヒストリック": "f:historic",
		"アルケミー":  "f:alchemy",
		"ブロール":   "f:brawl",

		// Rarities
		"コモン":   "r:common",
		"アンコモン": "r:uncommon",
		"レア":    "r:rare",
		"神話レア":  "r:mythic",
	},
}
