package domain

import "time"

// User models a registered account. The password hash never leaves the
// backend: it is stripped by Sanitize before a user is written to a response.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Address      string    `json:"address,omitempty"`
	Birthday     string    `json:"birthday,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	FollowingIDs []string  `json:"following_ids"`
	FollowerIDs  []string  `json:"follower_ids"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitize returns a copy safe to expose to the account owner: the password
// hash is dropped, everything else is kept.
func (u *User) Sanitize() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// PublicView returns a copy safe to expose to anyone: on top of Sanitize it
// drops email, address and birthday, mirroring what the public user listing
// is allowed to show.
func (u *User) PublicView() *User {
	clone := u.Sanitize()
	if clone == nil {
		return nil
	}
	clone.Email = ""
	clone.Address = ""
	clone.Birthday = ""
	return clone
}

// IsFollowing reports whether targetID is in the user's following set.
func (u *User) IsFollowing(targetID string) bool {
	for _, id := range u.FollowingIDs {
		if id == targetID {
			return true
		}
	}
	return false
}
