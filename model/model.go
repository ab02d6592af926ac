package model

// SubType classifies how the backend obtains a subscription payload.
type SubType string

const (
	// SubTypeRemote is a source backed by a URL the backend polls and caches.
	SubTypeRemote SubType = "remote"
	// SubTypeLocal is a source backed by configuration content supplied by
	// the client and stored by the backend.
	SubTypeLocal SubType = "local"
)

// Valid reports whether t is one of the known subscription types.
func (t SubType) Valid() bool {
	return t == SubTypeRemote || t == SubTypeLocal
}

// SubscriptionSource is a named source the backend serves a subscription
// payload for. IDs are assigned by the backend and never fabricated on the
// client. URL is meaningful only for remote sources. Content is write-only
// from the client's perspective: it is sent on add/update but never comes
// back in the list payload.
type SubscriptionSource struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Type      SubType `json:"type"`
	URL       string  `json:"url,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}
