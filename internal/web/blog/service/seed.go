package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	gcrypto "github.com/Laisky/go-utils/v6/crypto"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
	mongoSDK "github.com/inkwell-blog/inkwell/library/db/mongo"
)

// ErrSeedNotConfigured indicates the seeded admin settings are absent.
var ErrSeedNotConfigured = errors.New("seed admin not configured")

// SeedResult reports what the repair actually did.
type SeedResult struct {
	// Created the account did not exist and was inserted
	Created bool
	// Promoted the account existed but had the wrong role or missing
	// seeded flag and was repaired
	Promoted bool
	Email    string
	Role     model.AdminRole
}

// EnsureSeedAdmin creates the designated seeded admin if absent, or
// promotes an existing account with that email to the configured role and
// marks it protected. Safe to call repeatedly; a no-op returns neither
// Created nor Promoted.
func (s *Blog) EnsureSeedAdmin(ctx context.Context) (*SeedResult, error) {
	if !s.cfg.Seed.Enabled() {
		return nil, errors.WithStack(ErrSeedNotConfigured)
	}

	seed := s.cfg.Seed
	admin := &model.Admin{}
	err := s.dao.GetAdminsCol().
		FindOne(ctx, bson.D{{Key: "email", Value: seed.Email}}).
		Decode(admin)
	switch {
	case err == nil:
	case mongoSDK.NotFound(err):
		if admin, err = s.createWithPassword(ctx,
			seed.Email, seed.Password, seed.Role, true); err != nil {
			// concurrent repair may have inserted it first; that run won
			if errors.Is(err, model.ErrEmailTaken) {
				return &SeedResult{Email: seed.Email, Role: seed.Role}, nil
			}

			return nil, errors.Wrap(err, "create seed admin")
		}

		s.logger.Info("created seed admin", zap.String("email", seed.Email))
		return &SeedResult{Created: true, Email: admin.Email, Role: admin.Role}, nil
	default:
		return nil, errors.Wrapf(err, "find seed admin %q", seed.Email)
	}

	set := bson.M{}
	if admin.Role != seed.Role {
		set["role"] = seed.Role
	}
	if !admin.IsSeeded {
		set["isSeeded"] = true
	}
	if len(set) == 0 {
		return &SeedResult{Email: admin.Email, Role: admin.Role}, nil
	}

	set["updatedAt"] = gutils.Clock.GetUTCNow()
	if _, err = s.dao.GetAdminsCol().UpdateByID(ctx, admin.ID,
		bson.M{"$set": set}); err != nil {
		return nil, errors.Wrapf(err, "promote seed admin %q", seed.Email)
	}

	s.logger.Info("promoted seed admin",
		zap.String("email", seed.Email),
		zap.String("role", string(seed.Role)),
	)
	return &SeedResult{Promoted: true, Email: admin.Email, Role: seed.Role}, nil
}

// ResetSeedAdmin runs the repair and additionally resets the stored
// password hash to the configured one. Used by the one-shot seed command,
// never by the watchdog.
func (s *Blog) ResetSeedAdmin(ctx context.Context) (*SeedResult, error) {
	result, err := s.EnsureSeedAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if result.Created {
		return result, nil
	}

	hash, err := gcrypto.PasswordHash([]byte(s.cfg.Seed.Password), gutils.HashTypeSha256)
	if err != nil {
		return nil, errors.Wrap(err, "generate seed password hash")
	}

	if _, err = s.dao.GetAdminsCol().UpdateOne(ctx,
		bson.D{{Key: "email", Value: s.cfg.Seed.Email}},
		bson.M{"$set": bson.M{
			"passwordHash": hash,
			"updatedAt":    gutils.Clock.GetUTCNow(),
		}},
	); err != nil {
		return nil, errors.Wrap(err, "reset seed password")
	}

	s.logger.Info("reset seed admin password", zap.String("email", s.cfg.Seed.Email))
	return result, nil
}
