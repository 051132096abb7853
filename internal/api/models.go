package api

import "time"

// Album groups songs and carries an optional cover image reference.
// CoverURL stays null until a cover is uploaded.
type Album struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Year     int       `json:"year"`
	CoverURL *string   `json:"coverUrl"`
	Songs    []SongRef `json:"songs,omitempty"`
}

type Song struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

// SongRef is the short form used by song listings and playlist contents.
type SongRef struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// Playlist is always presented with its owner's username, not the owner id.
type Playlist struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Songs    []SongRef `json:"songs,omitempty"`
}

// Activity is one immutable entry of a playlist's change log, joined to the
// acting user's username and the song title at read time.
type Activity struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}

const (
	activityAdd    = "add"
	activityDelete = "delete"
)
