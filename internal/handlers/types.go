package handlers

import "time"

// ShortenRequest is the request body for creating a short URL.
type ShortenRequest struct {
	Body struct {
		URL string `doc:"The URL to shorten" example:"https://www.example.com/abc" json:"url"`
	}
}

// ShortenResponse is the response for a successfully created short URL.
type ShortenResponse struct {
	Location string `doc:"The short URL location" header:"Location"`
	Body     struct {
		ShortCode string `doc:"The short code"     example:"aZ3k9Q"                       json:"short_code"`
		ShortURL  string `doc:"The full short URL" example:"http://localhost:8888/aZ3k9Q" json:"short_url"`
	}
}

// RedirectRequest is the request for following a short URL.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"aZ3k9Q" path:"code"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status   int
	Location string `doc:"The original URL" header:"Location"`
}

// StatsRequest is the request for the statistics of a short URL.
type StatsRequest struct {
	Code string `doc:"The short code" example:"aZ3k9Q" path:"code"`
}

// StatsResponse holds the statistics of a short URL.
type StatsResponse struct {
	Body struct {
		URL       string    `doc:"The original URL"                  example:"https://www.example.com/abc" json:"url"`
		Clicks    int64     `doc:"Number of redirects served"        example:"3"                           json:"clicks"`
		CreatedAt time.Time `doc:"When the short URL was created"                                          json:"created_at"`
	}
}
