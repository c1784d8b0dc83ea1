// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := WithUserID(context.Background(), "u-42")

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != "u-42" {
		t.Errorf("expected userID=u-42, got %s", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if userID != "" {
		t.Errorf("expected empty userID, got %s", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for int64 value, got true")
	}
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	ctx := WithUserID(context.Background(), "")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty id, got true")
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "u-1")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for a different key, got true")
	}
}
