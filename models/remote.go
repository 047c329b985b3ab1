package models

// Subscription is one entry of the remote subscription list, decoded from
// the aggregation service's JSON.
type Subscription struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	HTMLURL string `json:"htmlUrl"`
}

// SubscriptionList is the envelope of the subscription list endpoint.
type SubscriptionList struct {
	Subscriptions []Subscription `json:"subscriptions"`
}

// StreamItem is one article as returned by the stream contents endpoint.
// Categories carries the remote tag set; read/starred state is derived from
// the presence of the well-known state tags.
type StreamItem struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Published  int64    `json:"published"`
	Categories []string `json:"categories"`
	Canonical  []struct {
		Href string `json:"href"`
	} `json:"canonical"`
	Origin struct {
		StreamID string `json:"streamId"`
	} `json:"origin"`
}

// Read reports whether the remote service marks the item as read.
func (i StreamItem) Read() bool { return i.hasCategory(TagRead) }

// Starred reports whether the remote service marks the item as starred.
func (i StreamItem) Starred() bool { return i.hasCategory(TagStarred) }

// URL returns the first canonical link, or an empty string.
func (i StreamItem) URL() string {
	if len(i.Canonical) > 0 {
		return i.Canonical[0].Href
	}
	return ""
}

func (i StreamItem) hasCategory(tag string) bool {
	for _, c := range i.Categories {
		if c == tag {
			return true
		}
	}
	return false
}

// StreamContentsPage is one page of the stream contents endpoint.
// A non-empty Continuation means more pages are available.
type StreamContentsPage struct {
	Items        []StreamItem `json:"items"`
	Continuation string       `json:"continuation"`
}
