package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-rent-market/internal/core/auth"
	"go-rent-market/internal/core/database"
	"go-rent-market/internal/domain"
	"go-rent-market/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.NewGorm(database.Opts{Driver: "sqlite", DSN: dsn, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Item{}, &domain.Offer{}))
	return db
}

func newTestJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "rent-market", TTL: time.Hour}
}

type testEnv struct {
	users  *UserService
	items  *ItemService
	offers *OfferService
	jwter  *auth.JWTer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	jwter := newTestJWTer()
	userRepo := repo.NewUserRepo(db)
	itemRepo := repo.NewItemRepo(db)
	offerRepo := repo.NewOfferRepo(db)
	return &testEnv{
		users:  NewUserService(userRepo, jwter),
		items:  NewItemService(itemRepo, nil),
		offers: NewOfferService(offerRepo, itemRepo),
		jwter:  jwter,
	}
}

func validRegister(email string) RegisterInput {
	return RegisterInput{
		Email:     email,
		Password:  "password1",
		FirstName: "Ann",
		LastName:  "Lee",
		ZipCode:   "10001",
	}
}
