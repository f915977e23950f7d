package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Unavailable is returned whenever the resolver cannot produce an address.
// Geocoding failures never block the caller.
const Unavailable = "Location unavailable"

// Client resolves (lat, lon) into a display address using a Nominatim-style
// reverse endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Resolve returns a display address, or Unavailable on any failure.
func (c *Client) Resolve(ctx context.Context, latitude, longitude float64) string {
	url := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", c.baseURL, latitude, longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Println("geocode: building request:", err)
		return Unavailable
	}
	req.Header.Set("User-Agent", "staffportal/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Println("geocode: reverse lookup:", err)
		return Unavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("geocode: reverse lookup status:", resp.StatusCode)
		return Unavailable
	}

	var body reverseResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Println("geocode: decoding response:", err)
		return Unavailable
	}
	if body.DisplayName == "" {
		return Unavailable
	}

	return body.DisplayName
}
