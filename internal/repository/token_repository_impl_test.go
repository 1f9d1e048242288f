package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"hospital-records-api/internal/domain/entity"
	"hospital-records-api/pkg/token"
)

func TestTokenGetOrCreateReturnsStableKey(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "tokenuser-"+uuid.NewString())
	repo := NewTokenRepository()
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, db, user.ID)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if len(first.Key) != token.KeyLength {
		t.Errorf("key length = %d, want %d", len(first.Key), token.KeyLength)
	}

	second, err := repo.GetOrCreate(ctx, db, user.ID)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if second.Key != first.Key {
		t.Errorf("second call key = %q, want the first call's %q", second.Key, first.Key)
	}
}

func TestTokenGetOrCreateConcurrent(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "tokenrace-"+uuid.NewString())
	repo := NewTokenRepository()
	ctx := context.Background()

	const callers = 8
	keys := make([]string, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok, err := repo.GetOrCreate(ctx, db, user.ID)
			if err != nil {
				errs[i] = err
				return
			}
			keys[i] = tok.Key
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: GetOrCreate() error = %v", i, errs[i])
		}
		if keys[i] != keys[0] {
			t.Errorf("caller %d got key %q, caller 0 got %q", i, keys[i], keys[0])
		}
	}

	var count int64
	if err := db.Model(&entity.Token{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count tokens: %v", err)
	}
	if count != 1 {
		t.Errorf("token rows = %d, want 1", count)
	}
}
