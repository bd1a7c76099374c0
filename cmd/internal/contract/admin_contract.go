package contract

type SeedRequest struct {
	Force bool `query:"force"`
}

type SeedResponse struct {
	// Seeded is false when the store was already populated and the run
	// was skipped.
	Seeded bool  `json:"seeded"`
	Total  int64 `json:"total"`
}
