package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_mecanica/internal/domain/entities"
	mock_interfaces "oficina_mecanica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVehicleUseCase_Create(t *testing.T) {
	in := CreateVehicleInput{Plate: "abc1d23", Model: "Onix", Brand: "Chevrolet", Year: 2020, Type: "car", CustomerID: "c-1"}

	t.Run("invalid plate", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		bad := in
		bad.Plate = "12-ABC"
		if _, err := uc.Create(context.Background(), bad); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers)
		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		if _, err := uc.Create(context.Background(), in); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("inactive customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers)
		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)

		if _, err := uc.Create(context.Background(), in); !errors.Is(err, entities.ErrVehicleInactiveCustomer) {
			t.Fatalf("expected ErrVehicleInactiveCustomer, got %v", err)
		}
	})

	t.Run("normalizes and creates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers)
		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", Active: true}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) { return v, nil },
		)

		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Plate != "ABC1D23" || res.Type != entities.VehicleTypeCar || !res.Active {
			t.Fatalf("unexpected vehicle: %+v", res)
		}
	})

	t.Run("duplicated plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers)
		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", Active: true}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, entities.ErrPlateAlreadyRegistered)

		if _, err := uc.Create(context.Background(), in); !errors.Is(err, entities.ErrPlateAlreadyRegistered) {
			t.Fatalf("expected ErrPlateAlreadyRegistered, got %v", err)
		}
	})
}

func TestVehicleUseCase_Reads(t *testing.T) {
	t.Run("get returns inactive vehicles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", Active: false}, nil)

		res, err := uc.GetByID(context.Background(), "v-1")
		if err != nil || res.ID != "v-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("list by customer requires id", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		if _, err := uc.ListByCustomer(context.Background(), "", entities.PageRequest{}); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("update lower case type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", Plate: "ABC1234", Model: "Onix", Brand: "Chevrolet", Year: 2020, Type: entities.VehicleTypeCar, CustomerID: "c-1", Active: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) { return v, nil },
		)

		typ := entities.VehicleType("truck")
		res, err := uc.Update(context.Background(), "v-1", entities.VehiclePatch{Type: &typ})
		if err != nil || res.Type != entities.VehicleTypeTruck {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
