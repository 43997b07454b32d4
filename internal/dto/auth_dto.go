package dto

type RegisterRequest struct {
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	ArtisticName string   `json:"artistic_name"`
	Instruments  string   `json:"instruments"`
	Bio          string   `json:"bio"`
	Location     string   `json:"location"`
	Available    *bool    `json:"available"`
	RoleID       uint64   `json:"role_id"`
	Genres       []string `json:"genres"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
