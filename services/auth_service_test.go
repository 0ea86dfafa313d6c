package services

import (
	"testing"
	"time"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"github.com/moeinteractive/ohtommys-sub000/repository"

	qt "github.com/frankban/quicktest"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	c.Assert(err, qt.IsNil)
	c.Assert(db.Create(&entity.User{
		Email:    "admin@ohtommys.com",
		Password: string(hash),
		Role:     "admin",
	}).Error, qt.IsNil)

	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	token, user, err := svc.Login("  Admin@ohtommys.com ", "s3cret")
	c.Assert(err, qt.IsNil)
	c.Assert(token, qt.Not(qt.Equals), "")
	c.Assert(user.Role, qt.Equals, "admin")

	_, _, err = svc.Login("admin@ohtommys.com", "wrong")
	c.Assert(err, qt.ErrorMatches, "invalid credentials")

	_, _, err = svc.Login("nobody@ohtommys.com", "s3cret")
	c.Assert(err, qt.ErrorMatches, "invalid credentials")
}
