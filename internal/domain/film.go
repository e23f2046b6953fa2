package domain

// Genre is a fixed reference category attached to films. The genres
// table is seeded once and never mutated by the application.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Mpa is a fixed content-rating category referenced by films.
type Mpa struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Film is the catalog entity. Genres keep their insertion order.
// LikedBy is derived from the like relation and is never accepted as
// input; ranking results leave it empty and expose only the count.
type Film struct {
	ID          int64
	Name        string
	Description string
	ReleaseDate Date
	Duration    int
	Mpa         Mpa
	Genres      []Genre
	LikedBy     []int64
	LikeCount   int64
}
