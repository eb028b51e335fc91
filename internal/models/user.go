package models

// Account is a registered credential record. Password holds either the
// plaintext or an encoded hash, depending on the configured scheme.
type Account struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// User is the authenticated identity: an Account without its password.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// User strips the password.
func (a Account) User() User {
	return User{ID: a.ID, Email: a.Email, Name: a.Name}
}
