// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bookworm Authors

package utils

import (
	"context"
	"testing"

	"github.com/bookworm-social/bookworm-server/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestActingUserCtxKey(t *testing.T) {
	if ActingUserCtxKey.String() != "actingUser" {
		t.Errorf("expected 'actingUser', got '%s'", ActingUserCtxKey.String())
	}
}

func TestGetActingUser_Success(t *testing.T) {
	want := models.User{UserID: 42, Username: "john"}
	ctx := context.WithValue(context.Background(), ActingUserCtxKey, want)

	user, ok := GetActingUser(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user.UserID != 42 || user.Username != "john" {
		t.Errorf("expected user %+v, got %+v", want, user)
	}
}

func TestGetActingUser_Missing(t *testing.T) {
	ctx := context.Background()

	user, ok := GetActingUser(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if user.UserID != 0 {
		t.Errorf("expected zero user, got %+v", user)
	}
}

func TestGetActingUser_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ActingUserCtxKey, "not-a-user")

	_, ok := GetActingUser(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
