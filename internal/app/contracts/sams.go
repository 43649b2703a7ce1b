package contracts

import (
	"context"

	"github.com/KuechlerO/simple-sams-api/internal/pkg/sams_dto"
)

type SamsClient interface {
	Login(ctx context.Context, username, password string) error
	LoginWithProvider(ctx context.Context, provider CredentialsProvider) error
	LoginWithCredentialsFile(ctx context.Context, path string) error
	// IsLoggedIn inspects the local cookie jar only; it does not verify the
	// session with the server and goes stale once the server-side session
	// expires.
	IsLoggedIn() bool
	GetAllPhenopackets(ctx context.Context) ([]sams_dto.Phenopacket, error)
	GetPhenopacket(ctx context.Context, patientID string) (*sams_dto.Phenopacket, error)
}
