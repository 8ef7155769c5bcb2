package storage

import "time"

// URLMapping is the stored association between an original URL and its
// short code. LastAccessed stays nil until the first redirect.
type URLMapping struct {
	ID           string     `json:"id"`
	OriginalURL  string     `json:"originalUrl"`
	ShortURL     string     `json:"shortUrl"`
	Code         string     `json:"urlCode"`
	ClickCount   int64      `json:"clickCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastAccessed *time.Time `json:"lastAccessed"`
}
