package repo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"server/internal/domain"
)

func TestJobRegistryCreateIssuesFreshIDs(t *testing.T) {
	reg := NewJobRegistry()
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		job, err := reg.Create(ctx, "Acme", "Bakery", "IN")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if job.ID == "" {
			t.Fatalf("empty job id")
		}
		if job.Status != domain.JobStatusPending {
			t.Fatalf("status = %q, want pending", job.Status)
		}
		if _, dup := seen[job.ID]; dup {
			t.Fatalf("duplicate job id %q", job.ID)
		}
		seen[job.ID] = struct{}{}
	}
}

func TestJobRegistryCreateRejectsEmptyFields(t *testing.T) {
	reg := NewJobRegistry()
	ctx := context.Background()

	if _, err := reg.Create(ctx, "", "Bakery", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("create without name: %v, want ErrInvalidInput", err)
	}
	if _, err := reg.Create(ctx, "Acme", "", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("create without type: %v, want ErrInvalidInput", err)
	}
	if reg.Len() != 0 {
		t.Fatalf("registry should stay empty, has %d entries", reg.Len())
	}
}

func TestJobRegistryGetAfterDeleteReportsNotFound(t *testing.T) {
	reg := NewJobRegistry()
	ctx := context.Background()

	job, err := reg.Create(ctx, "Acme", "Bakery", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := reg.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.BusinessName != "Acme" || got.BusinessType != "Bakery" {
		t.Fatalf("unexpected job: %+v", got)
	}

	reg.Delete(ctx, job.ID)
	reg.Delete(ctx, job.ID) // idempotent

	if _, err := reg.Get(ctx, job.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get after delete: %v, want ErrNotFound", err)
	}
	if _, err := reg.Get(ctx, "never-issued"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get unknown: %v, want ErrNotFound", err)
	}
}

func TestJobRegistryConcurrentAccess(t *testing.T) {
	reg := NewJobRegistry()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job, err := reg.Create(ctx, "Acme", "Bakery", "")
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			if _, err := reg.Get(ctx, job.ID); err != nil {
				t.Errorf("get: %v", err)
			}
			reg.Delete(ctx, job.ID)
		}()
	}
	wg.Wait()

	if reg.Len() != 0 {
		t.Fatalf("registry should be empty, has %d entries", reg.Len())
	}
}
