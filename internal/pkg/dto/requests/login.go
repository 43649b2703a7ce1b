package requests

// Login carries the credential pair posted to the SAMS login endpoint. The
// service calls the first field "email" although any SAMS username is
// accepted there.
type Login struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
