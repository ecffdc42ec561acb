package analytics

import "time"

const (
	// TopicURLShortened carries URLShortenedEvent messages.
	TopicURLShortened = "url.shortened"
	// TopicURLClicked carries URLClickedEvent messages.
	TopicURLClicked = "url.clicked"
)

// URLShortenedEvent represents an event emitted when a URL is shortened.
type URLShortenedEvent struct {
	Code           string    `json:"code"`
	URL            string    `json:"url"`
	AllocationMode string    `json:"allocationMode"`
	CreatedAt      time.Time `json:"createdAt"`
	ClientIP       string    `json:"clientIp"`
	UserAgent      string    `json:"userAgent"`
	RequestID      string    `json:"requestId,omitempty"`
}

// CorrelationID returns the ID of the request that shortened the URL.
func (e *URLShortenedEvent) CorrelationID() string {
	return e.RequestID
}

// URLClickedEvent represents an event emitted when a short code is followed.
type URLClickedEvent struct {
	Code      string    `json:"code"`
	ClickedAt time.Time `json:"clickedAt"`
	ClientIP  string    `json:"clientIp"`
	UserAgent string    `json:"userAgent"`
	Referrer  string    `json:"referrer,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
}

// CorrelationID returns the ID of the redirect request.
func (e *URLClickedEvent) CorrelationID() string {
	return e.RequestID
}
