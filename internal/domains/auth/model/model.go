package model

const (
	EntityName = "user"
)

// User is a simulated session account. Accounts live in memory only; the
// rental backend has no user endpoints, and sessions exist purely so the
// dashboard can show who is "logged in".
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}
