package services

import (
	"context"
	"errors"
	"testing"

	"registro-api/internal/app/models/dto"
	"registro-api/internal/pkg/apperrors"
	"registro-api/internal/pkg/auth"
)

func TestUsuarioServiceRegister(t *testing.T) {
	store := newFakeUsuarioStore()
	svc := NewUsuarioService(store)

	usuario, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana@example.com",
		Username: "ana",
		Password: "Password1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if usuario.ID == 0 {
		t.Error("usuario.ID not assigned")
	}
	if usuario.Password == "Password1" {
		t.Error("password stored in plain text")
	}
	if !auth.CheckPassword(usuario.Password, "Password1") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestUsuarioServiceRegisterDuplicates(t *testing.T) {
	store := newFakeUsuarioStore()
	svc := NewUsuarioService(store)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana@example.com",
		Username: "ana",
		Password: "Password1",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"duplicate email", dto.RegisterRequest{Email: "ana@example.com", Username: "otra", Password: "Password1"}},
		{"duplicate username", dto.RegisterRequest{Email: "otra@example.com", Username: "ana", Password: "Password1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			if !errors.Is(err, apperrors.ErrConflict) {
				t.Errorf("err = %v, want ErrConflict", err)
			}
		})
	}
}

// blindUsuarioStore simulates losing a check-then-act race: the existence
// pre-checks see nothing, but the insert still hits the unique constraint.
type blindUsuarioStore struct {
	*fakeUsuarioStore
}

func (s *blindUsuarioStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (s *blindUsuarioStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func TestUsuarioServiceRegisterLosesRace(t *testing.T) {
	store := &blindUsuarioStore{newFakeUsuarioStore()}
	svc := NewUsuarioService(store)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana@example.com",
		Username: "ana",
		Password: "Password1",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// The pre-checks pass, so the constraint is the arbiter
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana@example.com",
		Username: "ana",
		Password: "Password1",
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestUsuarioServiceList(t *testing.T) {
	store := newFakeUsuarioStore()
	svc := NewUsuarioService(store)

	summaries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if summaries == nil || len(summaries) != 0 {
		t.Errorf("empty list = %#v, want non-nil empty slice", summaries)
	}

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana@example.com",
		Username: "ana",
		Password: "Password1",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	summaries, err = svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1", len(summaries))
	}
	if summaries[0].Username != "ana" || summaries[0].Email != "ana@example.com" {
		t.Errorf("summary = %+v", summaries[0])
	}
}

func TestUsuarioServiceDeleteMissing(t *testing.T) {
	svc := NewUsuarioService(newFakeUsuarioStore())

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("err = %v, want ErrResourceNotFound", err)
	}
}
