package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jobzen/dashboard/internal/core/domain"
)

func TestManagedUserHandler_List(t *testing.T) {
	stub := &stubManagedService{
		listFn: func(ctx context.Context, role domain.Role) (domain.ManagedUserList, error) {
			if role != domain.RoleWorker {
				t.Fatalf("unexpected role %q", role)
			}
			return domain.NewManagedUserList([]domain.User{
				{ID: "1", Status: domain.StatusActive},
				{ID: "2", Status: domain.StatusInactive},
			}), nil
		},
	}
	h := NewManagedUserHandler(stub)

	c, rec := newJSONContext(http.MethodGet, "/api/users/managed?role=worker", "")
	withSession(c, &domain.Session{ID: "s", User: domain.User{ID: "e1", Role: domain.RoleEmployer}})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var list domain.ManagedUserList
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if list.Stats.Total != 2 || list.Stats.Active != 1 || list.Stats.Inactive != 1 {
		t.Fatalf("unexpected stats: %+v", list.Stats)
	}
}

func TestManagedUserHandler_List_Failure(t *testing.T) {
	stub := &stubManagedService{
		listFn: func(ctx context.Context, role domain.Role) (domain.ManagedUserList, error) {
			return domain.ManagedUserList{}, domain.ErrUpstream
		},
	}
	h := NewManagedUserHandler(stub)

	c, _ := newJSONContext(http.MethodGet, "/api/users/managed?role=client", "")
	withSession(c, &domain.Session{ID: "s", User: domain.User{Role: domain.RoleEmployer}})

	var te *ToastError
	if err := h.List(c); !errors.As(err, &te) || te.Toast.Description != "Failed to load clients" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestManagedUserHandler_Create(t *testing.T) {
	stub := &stubManagedService{
		createFn: func(ctx context.Context, in domain.CreateManagedUser) (*domain.User, error) {
			if in.Role != domain.RoleClient || in.FirstName != "Ada" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "c1", Email: in.Email, Role: in.Role}, nil
		},
	}
	h := NewManagedUserHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/users/managed", `{"email":"ada@example.com","password":"secret","role":"client","firstName":"Ada","lastName":"L"}`)
	withSession(c, &domain.Session{ID: "s", User: domain.User{Role: domain.RoleEmployer}})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp managedUserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Toast == nil || resp.Toast.Description != "Client created successfully" {
		t.Fatalf("unexpected toast: %+v", resp.Toast)
	}
}

func TestManagedUserHandler_Create_DuplicateEmail(t *testing.T) {
	stub := &stubManagedService{
		createFn: func(ctx context.Context, in domain.CreateManagedUser) (*domain.User, error) {
			return nil, fmt.Errorf("create worker: %w", domain.ErrUserExists)
		},
	}
	h := NewManagedUserHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/api/users/managed", `{"email":"dup@example.com","password":"secret","role":"worker","name":"Dup"}`)
	withSession(c, &domain.Session{ID: "s", User: domain.User{Role: domain.RoleEmployer}})

	err := h.Create(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	var te *ToastError
	if !errors.As(err, &te) {
		t.Fatalf("expected toast error, got %v", err)
	}
	if te.Toast.Variant != domain.ToastDestructive || te.Toast.Description != "Failed to create worker. Email might be taken." {
		t.Fatalf("unexpected toast: %+v", te.Toast)
	}
}

func TestManagedUserHandler_Create_Validation(t *testing.T) {
	h := NewManagedUserHandler(&stubManagedService{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"employer role", `{"email":"a@example.com","password":"secret","role":"employer","name":"A"}`, "role must be one of: client worker"},
		{"no name", `{"email":"a@example.com","password":"secret","role":"client"}`, "name"},
		{"bad email", `{"email":"nope","password":"secret","role":"client","name":"A"}`, "email must be a valid email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/api/users/managed", tt.body)
			withSession(c, &domain.Session{ID: "s", User: domain.User{Role: domain.RoleEmployer}})
			assertBadRequest(t, h.Create(c), tt.want)
		})
	}
}

func TestManagedUserHandler_Delete(t *testing.T) {
	var deleted string
	stub := &stubManagedService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewManagedUserHandler(stub)

	c, rec := newJSONContext(http.MethodDelete, "/api/users/managed/w1", "")
	c.SetParamNames("id")
	c.SetParamValues("w1")
	withSession(c, &domain.Session{ID: "s", User: domain.User{Role: domain.RoleEmployer}})

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || deleted != "w1" {
		t.Fatalf("expected 204 deleting w1, got %d deleting %q", rec.Code, deleted)
	}
}
