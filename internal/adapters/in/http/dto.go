package http

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// QuoteRequest is the body of POST /api/v1/orders/quote. Sugar and Iced stay
// untyped so the command can tell a wrong type from a missing value.
type QuoteRequest struct {
	Base   string   `json:"base"`
	Size   string   `json:"size"`
	Milk   string   `json:"milk"`
	Syrups []string `json:"syrups"`
	Sugar  any      `json:"sugar"`
	Iced   any      `json:"iced"`
}

type QuoteResponse struct {
	ID          string   `json:"id"`
	Base        string   `json:"base"`
	Size        string   `json:"size"`
	Milk        string   `json:"milk"`
	Syrups      []string `json:"syrups"`
	Sugar       int      `json:"sugar"`
	Iced        bool     `json:"iced"`
	Price       float64  `json:"price"`
	Total       string   `json:"total"`
	Description string   `json:"description"`
}

type MenuItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type SizeItem struct {
	Name       string `json:"name"`
	Multiplier string `json:"multiplier"`
}

type MenuResponse struct {
	Bases         []MenuItem `json:"bases"`
	Sizes         []SizeItem `json:"sizes"`
	Milks         []MenuItem `json:"milks"`
	SyrupPrice    string     `json:"syrupPrice"`
	IcedSurcharge string     `json:"icedSurcharge"`
	MaxSyrups     int        `json:"maxSyrups"`
	MinSugar      int        `json:"minSugar"`
	MaxSugar      int        `json:"maxSugar"`
}
