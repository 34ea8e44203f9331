package update_credentials

// UpdateCredentialsRequest HTTP request model
// Отсутствующее поле не меняется
type UpdateCredentialsRequest struct {
	Login    *string `json:"login,omitempty"`
	Password *string `json:"password,omitempty"`
}
