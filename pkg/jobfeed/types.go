package jobfeed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Config defines job feed client settings
type Config struct {
	// URL is an http(s) URL, a file:// URL or a plain filesystem path
	URL        string
	HTTPClient *http.Client
}

// Client reads a static job feed
type Client struct {
	url        string
	httpClient *http.Client
}

type feedResponse struct {
	Jobs *[]jobPosting `json:"jobs"`
}

type jobPosting struct {
	ID           *int     `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Technologies techList `json:"technologies"`
	Contract     string   `json:"contract"`
	Experience   string   `json:"experience"`
}

// techList accepts either a JSON array or a comma-separated string
type techList []string

func (t *techList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = nil
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = trimAll(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("technologies must be an array or a comma-separated string")
	}
	*t = trimAll(strings.Split(joined, ","))
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Job represents one posting as published by the feed
type Job struct {
	ID           int
	Title        string
	Company      string
	Location     string
	Description  string
	Technologies []string
	Contract     string
	Experience   string
}
