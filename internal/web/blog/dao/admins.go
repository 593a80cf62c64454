package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	gcrypto "github.com/Laisky/go-utils/v6/crypto"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
	mongoSDK "github.com/inkwell-blog/inkwell/library/db/mongo"
)

// ValidateLogin validate admin login. Unknown email and wrong password
// collapse into the same credentials error so callers cannot tell which
// case occurred.
func (d *Blog) ValidateLogin(ctx context.Context, email, rawPassword string) (a *model.Admin, err error) {
	d.logger.Debug("ValidateLogin", zap.String("email", email))
	a = &model.Admin{}
	if err := d.GetAdminsCol().
		FindOne(ctx, bson.D{{Key: "email", Value: email}}).
		Decode(a); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.WithStack(model.ErrInvalidCredentials)
		}

		return nil, errors.Wrapf(err, "find admin %q", email)
	}

	if a.PasswordHash == "" {
		return nil, errors.WithStack(model.ErrInvalidCredentials)
	}

	if err = gcrypto.VerifyHashedPassword([]byte(rawPassword), a.PasswordHash); err != nil {
		return nil, errors.WithStack(model.ErrInvalidCredentials)
	}

	return a, nil
}
