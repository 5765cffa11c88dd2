package dagconfig

import (
	"testing"

	"github.com/pkg/errors"
)

// TestMustRegisterPanic ensures the mustRegister function panics when used to
// register an invalid network.
func TestMustRegisterPanic(t *testing.T) {
	t.Parallel()

	// Setup a defer to catch the expected panic to ensure it actually
	// paniced.
	defer func() {
		if err := recover(); err == nil {
			t.Error("mustRegister did not panic as expected")
		}
	}()

	// Intentionally try to register duplicate params to force a panic.
	mustRegister(&MainnetParams)
}

func TestRegister(t *testing.T) {
	mocknetParams := Params{Name: "mocknet", CostPerByte: 1, PreValidationBatchSize: 1}

	tests := []struct {
		name   string
		params *Params
		err    error
	}{
		{"duplicate mainnet", &MainnetParams, ErrDuplicateNet},
		{"duplicate testnet", &TestnetParams, ErrDuplicateNet},
		{"duplicate simnet", &SimnetParams, ErrDuplicateNet},
		{"duplicate devnet", &DevnetParams, ErrDuplicateNet},
		{"new mocknet", &mocknetParams, nil},
		{"duplicate mocknet", &mocknetParams, ErrDuplicateNet},
	}

	for _, test := range tests {
		err := Register(test.params)
		if !errors.Is(err, test.err) || (test.err == nil && err != nil) {
			t.Fatalf("TestRegister: %s: Expected error %v, found: %v", test.name, test.err, err)
		}
	}

	if !IsRegistered("mocknet") {
		t.Fatalf("TestRegister: Expected mocknet to be registered")
	}
	params, err := ParamsByName("mocknet")
	if err != nil {
		t.Fatalf("TestRegister: ParamsByName unexpectedly failed: %s", err)
	}
	if params != &mocknetParams {
		t.Fatalf("TestRegister: Expected ParamsByName to return the registered params")
	}
}

func TestParamsByNameUnknown(t *testing.T) {
	_, err := ParamsByName("nosuchnet")
	if !errors.Is(err, ErrUnknownNet) {
		t.Fatalf("TestParamsByNameUnknown: Expected ErrUnknownNet, found: %v", err)
	}
}

func TestDefaultNetworksCostParams(t *testing.T) {
	for _, params := range []*Params{&MainnetParams, &TestnetParams, &SimnetParams, &DevnetParams} {
		if params.CostPerByte != 12000 {
			t.Fatalf("TestDefaultNetworksCostParams: %s: Expected cost per byte 12000, found: %d",
				params.Name, params.CostPerByte)
		}
		if params.MaxBlockCostCLVM != 11_000_000_000 {
			t.Fatalf("TestDefaultNetworksCostParams: %s: Expected max block cost 11000000000, found: %d",
				params.Name, params.MaxBlockCostCLVM)
		}
		if params.PreValidationBatchSize <= 0 {
			t.Fatalf("TestDefaultNetworksCostParams: %s: Expected a positive batch size", params.Name)
		}
	}
	if MainnetParams.PreValidateBlockCosts {
		t.Fatalf("TestDefaultNetworksCostParams: Expected mainnet not to pre-validate block costs")
	}
}
