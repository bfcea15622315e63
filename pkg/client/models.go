package client

// Scryfall API response models. Only the fields the pipeline and tool
// layer consume are mapped; payloads are cached as raw JSON, so unknown
// fields survive the cache round-trip untouched.

// Card is a single Magic card object.
type Card struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	PrintedName string            `json:"printed_name,omitempty"`
	Lang        string            `json:"lang,omitempty"`
	ManaCost    string            `json:"mana_cost,omitempty"`
	CMC         float64           `json:"cmc,omitempty"`
	TypeLine    string            `json:"type_line,omitempty"`
	OracleText  string            `json:"oracle_text,omitempty"`
	Power       string            `json:"power,omitempty"`
	Toughness   string            `json:"toughness,omitempty"`
	Colors      []string          `json:"colors,omitempty"`
	Keywords    []string          `json:"keywords,omitempty"`
	Set         string            `json:"set"`
	SetName     string            `json:"set_name,omitempty"`
	Rarity      string            `json:"rarity,omitempty"`
	ScryfallURI string            `json:"scryfall_uri,omitempty"`
	ImageURIs   map[string]string `json:"image_uris,omitempty"`
	Prices      Prices            `json:"prices,omitempty"`
}

// Prices holds the market prices of a printing.
type Prices struct {
	USD     string `json:"usd,omitempty"`
	USDFoil string `json:"usd_foil,omitempty"`
	EUR     string `json:"eur,omitempty"`
	Tix     string `json:"tix,omitempty"`
}

// SearchResult is the paged response of /cards/search.
type SearchResult struct {
	Object     string `json:"object"`
	TotalCards int    `json:"total_cards"`
	HasMore    bool   `json:"has_more"`
	NextPage   string `json:"next_page,omitempty"`
	Data       []Card `json:"data"`
}

// Catalog is the response shape of /cards/autocomplete and /catalog/*.
type Catalog struct {
	Object      string   `json:"object"`
	TotalValues int      `json:"total_values"`
	Data        []string `json:"data"`
}

// scryfallError is the upstream error object carried in non-200 bodies.
type scryfallError struct {
	Object   string   `json:"object"`
	Code     string   `json:"code"`
	Status   int      `json:"status"`
	Details  string   `json:"details"`
	Warnings []string `json:"warnings,omitempty"`
}
