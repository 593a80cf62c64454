package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	gcrypto "github.com/Laisky/go-utils/v6/crypto"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
	mongoSDK "github.com/inkwell-blog/inkwell/library/db/mongo"
)

// ValidateLogin validate admin login
func (s *Blog) ValidateLogin(ctx context.Context, email, password string) (*model.Admin, error) {
	return s.dao.ValidateLogin(ctx, email, password)
}

// LoadAdminByID resolve an admin by id. A token referencing a deleted
// admin fails here.
func (s *Blog) LoadAdminByID(ctx context.Context, id primitive.ObjectID) (admin *model.Admin, err error) {
	admin = &model.Admin{}
	if err = s.dao.GetAdminsCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(admin); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrapf(err, "find admin %s", id.Hex())
	}

	return admin, nil
}

// ListAdmins returns every admin account, newest first.
func (s *Blog) ListAdmins(ctx context.Context) (admins []*model.Admin, err error) {
	admins = []*model.Admin{}
	cur, err := s.dao.GetAdminsCol().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find admins")
	}
	defer cur.Close(ctx)

	if err = cur.All(ctx, &admins); err != nil {
		return nil, errors.Wrap(err, "load admins")
	}

	return admins, nil
}

// Register creates an editor account through the public bootstrap endpoint.
// The caller must present the shared setup secret, and the seeded identity
// can never be claimed this way.
func (s *Blog) Register(ctx context.Context, email, password, setupToken string) (*model.Admin, error) {
	if err := s.CheckSetupToken(setupToken); err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, errors.WithStack(model.ErrEmailPasswordRequired)
	}

	if s.isSeedEmail(email) {
		return nil, errors.WithStack(model.ErrSeededAdminRegister)
	}

	return s.createWithPassword(ctx, email, password, model.RoleEditor, false)
}

// CreateAdmin creates an account on behalf of a master admin. Role is
// forced to editor unless master is explicitly requested. Password may be
// empty; such an account cannot log in until a hash is set out of band.
func (s *Blog) CreateAdmin(ctx context.Context, email, password string, role model.AdminRole) (*model.Admin, error) {
	if s.isSeedEmail(email) {
		return nil, errors.WithStack(model.ErrSeededAdminCreate)
	}

	if role != model.RoleMaster {
		role = model.RoleEditor
	}

	if password == "" {
		admin := model.NewAdmin()
		admin.Email = email
		admin.Role = role
		if _, err := s.dao.GetAdminsCol().InsertOne(ctx, admin); err != nil {
			if mongoSDK.IsDup(err) {
				return nil, errors.WithStack(model.ErrEmailTaken)
			}

			return nil, errors.Wrapf(err, "insert admin %q", email)
		}

		s.logger.Info("created admin without password", zap.String("email", email))
		return admin, nil
	}

	return s.createWithPassword(ctx, email, password, role, false)
}

// DeleteAdmin removes an admin account. The target lookup runs first so an
// unknown id is reported as missing regardless of the caller's role; seeded
// accounts are refused before the role check for the same reason.
func (s *Blog) DeleteAdmin(ctx context.Context, caller *model.Admin, id primitive.ObjectID) error {
	target, err := s.LoadAdminByID(ctx, id)
	if err != nil {
		return err
	}

	if target.IsSeeded {
		return errors.WithStack(model.ErrSeededAdminDelete)
	}

	if caller == nil || !caller.IsMaster() {
		return errors.WithStack(model.ErrForbidden)
	}

	if _, err = s.dao.GetAdminsCol().
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return errors.Wrapf(err, "delete admin %s", id.Hex())
	}

	s.logger.Info("deleted admin",
		zap.String("id", id.Hex()),
		zap.String("caller", caller.Email),
	)
	return nil
}

// createWithPassword hash the password and insert the account.
func (s *Blog) createWithPassword(ctx context.Context, email, password string,
	role model.AdminRole, isSeeded bool) (*model.Admin, error) {
	hash, err := gcrypto.PasswordHash([]byte(password), gutils.HashTypeSha256)
	if err != nil {
		return nil, errors.Wrapf(err, "generate password hash for %q", email)
	}

	admin := model.NewAdmin()
	admin.Email = email
	admin.PasswordHash = hash
	admin.Role = role
	admin.IsSeeded = isSeeded

	if _, err = s.dao.GetAdminsCol().InsertOne(ctx, admin); err != nil {
		if mongoSDK.IsDup(err) {
			return nil, errors.WithStack(model.ErrEmailTaken)
		}

		return nil, errors.Wrapf(err, "insert admin %q", email)
	}

	s.logger.Info("created admin",
		zap.String("email", email),
		zap.String("role", string(role)),
	)
	return admin, nil
}

// CheckSetupToken matches the presented secret against the configured one.
// An unset server secret disables the gated endpoints entirely.
func (s *Blog) CheckSetupToken(setupToken string) error {
	if s.cfg.SetupToken == "" || setupToken != s.cfg.SetupToken {
		return errors.WithStack(model.ErrNotAllowed)
	}

	return nil
}

// isSeedEmail reports whether email names the designated seeded identity.
// The comparison is case-insensitive, mirroring how the identity is
// protected on the bootstrap paths.
func (s *Blog) isSeedEmail(email string) bool {
	return s.cfg.Seed.Email != "" &&
		strings.EqualFold(email, s.cfg.Seed.Email)
}
