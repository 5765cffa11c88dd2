package testutils

import (
	"testing"

	"github.com/coincost/coincost/domain/dagconfig"
)

// ForAllNets runs the passed testFunc with all available networks.
// Every run gets its own copy of the network's params, so testFunc may
// modify them.
func ForAllNets(t *testing.T, testFunc func(*testing.T, *dagconfig.Params)) {
	allParams := []dagconfig.Params{
		dagconfig.MainnetParams,
		dagconfig.TestnetParams,
		dagconfig.SimnetParams,
		dagconfig.DevnetParams,
	}

	for _, params := range allParams {
		params := params
		t.Run(params.Name, func(t *testing.T) {
			t.Parallel()
			t.Logf("Running test for %s", params.Name)
			testFunc(t, &params)
		})
	}
}
