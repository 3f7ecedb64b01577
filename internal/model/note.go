package model

// Note represents a single text note owned by a user.
//
// The JSON field names (`userId`, `createAt`) are the wire contract the
// mobile client already speaks — keep them as-is.
//
// CreateAt is epoch milliseconds, not time.Time. It is set server-side when
// the note is created, but the update endpoint accepts a client-supplied
// value, so treat it as an editable field rather than an immutable creation
// timestamp.
//
// The owner link (UserID) is set once at creation from the request body and
// never revalidated afterwards.
type Note struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	CreateAt    int64  `json:"createAt"`
}
