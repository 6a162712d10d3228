package models

// Static catalogue data served by the read-only endpoints. Loaded once
// at startup from embedded JSON.

type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Features []string `json:"features"`
}

type TaskTemplate struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}
