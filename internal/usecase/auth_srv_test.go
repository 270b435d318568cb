package usecase

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func newAuthService(repo *repository.Repository) *authService {
	return &authService{
		repo: repo,
		config: &utils.Config{
			JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		},
		log: zap.NewNop(),
	}
}

func registerReq() *request.RegisterRequest {
	return &request.RegisterRequest{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Password:  "correct-horse",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo, _ := newTestRepo()
	svc := newAuthService(repo)

	auth, err := svc.Register(context.Background(), registerReq())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if auth.Token == "" {
		t.Fatal("empty token")
	}
	if auth.User.Role != string(entity.RoleCustomer) {
		t.Errorf("role = %s, want customer", auth.User.Role)
	}

	claims, err := utils.ParseToken(auth.Token, svc.config.JWT)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != auth.User.ID {
		t.Errorf("token user id = %s, want %s", claims.UserID, auth.User.ID)
	}

	login, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "jdoe",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != auth.User.ID {
		t.Errorf("login user id = %s, want %s", login.User.ID, auth.User.ID)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	repo, _ := newTestRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerReq()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	dup := registerReq()
	dup.Username = "other"
	_, err := svc.Register(context.Background(), dup)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email: expected conflict, got %v", err)
	}

	dup = registerReq()
	dup.Email = "other@example.com"
	_, err = svc.Register(context.Background(), dup)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate username: expected conflict, got %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	repo, db := newTestRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerReq()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "jdoe",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("wrong password: expected invalid argument, got %v", err)
	}

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("unknown user: expected invalid argument, got %v", err)
	}

	for _, u := range db.users {
		u.IsActive = false
	}
	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Username: "jdoe",
		Password: "correct-horse",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("deactivated user: expected forbidden, got %v", err)
	}
}
