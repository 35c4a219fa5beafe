package kb

import "time"

type ReloadResponse struct {
	Message    string    `json:"message"`
	Source     string    `json:"source"`
	TotalFaqs  int       `json:"totalFaqs"`
	Products   int       `json:"products"`
	ReloadedAt time.Time `json:"reloadedAt"`
}

type StatsResponse struct {
	Source     string    `json:"source"`
	Categories int       `json:"categories"`
	TotalFaqs  int       `json:"totalFaqs"`
	Products   int       `json:"products"`
	Aliases    int       `json:"aliases"`
	LoadedAt   time.Time `json:"loadedAt"`
}
