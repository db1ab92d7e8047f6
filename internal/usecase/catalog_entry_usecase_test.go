package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_mecanica/internal/domain/entities"
	mock_interfaces "oficina_mecanica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogEntryUseCase(t *testing.T) {
	t.Run("create rejects non positive price", func(t *testing.T) {
		uc := NewCatalogEntryUseCase(nil)
		if _, err := uc.Create(context.Background(), "Oil change", dec("0")); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogEntryRepository(ctrl)
		uc := NewCatalogEntryUseCase(repo)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) { return e, nil },
		)

		res, err := uc.Create(context.Background(), " Oil change ", dec("79.90"))
		if err != nil || res.Name != "Oil change" || !res.Active || res.ID == "" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogEntryRepository(ctrl)
		uc := NewCatalogEntryUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.CatalogEntry{}, nil)

		if _, err := uc.GetByID(context.Background(), "svc-1"); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update price only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogEntryRepository(ctrl)
		uc := NewCatalogEntryUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.CatalogEntry{ID: "svc-1", Name: "Oil change", Price: dec("79.90"), Active: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) { return e, nil },
		)

		price := dec("89.90")
		res, err := uc.Update(context.Background(), "svc-1", entities.CatalogEntryPatch{Price: &price})
		if err != nil || !res.Price.Equal(price) || res.Name != "Oil change" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogEntryRepository(ctrl)
		uc := NewCatalogEntryUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.CatalogEntry{ID: "svc-1", Name: "Oil change", Price: dec("79.90"), Active: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
				if e.Active {
					t.Fatalf("expected inactive entry")
				}
				return e, nil
			},
		)

		if err := uc.Deactivate(context.Background(), "svc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
