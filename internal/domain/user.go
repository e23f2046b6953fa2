package domain

// User is a registered account. Name falls back to Login when blank;
// validation guarantees it is never empty after a create or update.
// Friends holds the ids of the symmetric friendship relation.
type User struct {
	ID       int64
	Email    string
	Login    string
	Name     string
	Birthday Date
	Friends  []int64
}
