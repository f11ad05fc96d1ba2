package notification

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/password"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

// SenderIdentity is the inactive account system messages are sent from. It is
// resolved once at startup.
type SenderIdentity struct {
	id uuid.UUID
}

func NewSenderIdentity(id uuid.UUID) *SenderIdentity {
	return &SenderIdentity{id: id}
}

func (s *SenderIdentity) ID() uuid.UUID { return s.id }

// InitSenderIdentity creates the system account on first start and returns
// its identity. The stored password is random and never disclosed.
func InitSenderIdentity(ctx context.Context, uow shared.UnitOfWork, username, email string) (*SenderIdentity, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, errs.Wrap(err, "failed to generate system password")
	}
	hash, err := password.Hash(hex.EncodeToString(secret))
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash system password")
	}

	var id uuid.UUID
	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Users().UpsertSystemUser(ctx, tx.DB(), username, email, hash)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialise system sender")
	}
	return NewSenderIdentity(id), nil
}
