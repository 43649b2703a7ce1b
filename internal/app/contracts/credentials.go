package contracts

import (
	"github.com/KuechlerO/simple-sams-api/internal/pkg/dto/requests"
)

// CredentialsProvider resolves a credential pair for login. Implementations
// exist for literal username/password values and for the two-line
// credentials file format.
type CredentialsProvider interface {
	Credentials() (*requests.Login, error)
}
