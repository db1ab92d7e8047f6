package request

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestPlateValidator(t *testing.T) {
	RegisterValidators()
	RegisterValidators()

	cases := map[string]bool{
		"ABC1234":  true,
		"abc1d23":  true,
		" XYZ9A88": true,
		"ABC-1234": false,
		"AB12345":  false,
		"":         false,
	}
	for plate, valid := range cases {
		req := CreateVehicleRequest{Plate: plate, Model: "Onix", Brand: "Chevrolet", Year: 2020, Type: "CAR", CustomerID: "c-1"}
		err := binding.Validator.ValidateStruct(req)
		if valid && err != nil {
			t.Fatalf("expected %q to be accepted, got %v", plate, err)
		}
		if !valid && err == nil {
			t.Fatalf("expected %q to be rejected", plate)
		}
	}
}
