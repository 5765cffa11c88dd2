// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"github.com/coincost/coincost/domain/consensus/utils/constants"
	"github.com/pkg/errors"
)

// Params defines a network by the parameters that affect the cost of its
// blocks and spend bundles.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// CostPerByte is the cost charged for every byte of a serialized
	// program.
	CostPerByte uint64

	// MaxBlockCostCLVM is the maximum cost of the transactions generator
	// of a single block.
	MaxBlockCostCLVM uint64

	// PreValidateBlockCosts specifies whether block pre-validation costs
	// the transactions generators of the blocks it validates.
	PreValidateBlockCosts bool

	// PreValidationBatchSize is the number of blocks pre-validated together
	// by a single worker.
	PreValidationBatchSize int
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name:             "mainnet",
	CostPerByte:      constants.CostPerByte,
	MaxBlockCostCLVM: constants.MaxBlockCostCLVM,

	// Transactions are disabled on mainnet until the transaction fork, so
	// there is nothing to cost before the blocks are added to the chain.
	PreValidateBlockCosts:  false,
	PreValidationBatchSize: constants.PreValidationBatchSize,
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name:                   "testnet",
	CostPerByte:            constants.CostPerByte,
	MaxBlockCostCLVM:       constants.MaxBlockCostCLVM,
	PreValidateBlockCosts:  true,
	PreValidationBatchSize: constants.PreValidationBatchSize,
}

// SimnetParams defines the network parameters for the simulation test network.
var SimnetParams = Params{
	Name:                   "simnet",
	CostPerByte:            constants.CostPerByte,
	MaxBlockCostCLVM:       constants.MaxBlockCostCLVM,
	PreValidateBlockCosts:  true,
	PreValidationBatchSize: constants.PreValidationBatchSize,
}

// DevnetParams defines the network parameters for the development network.
var DevnetParams = Params{
	Name:                   "devnet",
	CostPerByte:            constants.CostPerByte,
	MaxBlockCostCLVM:       constants.MaxBlockCostCLVM,
	PreValidateBlockCosts:  true,
	PreValidationBatchSize: constants.PreValidationBatchSize,
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNet describes an error where the parameters of a network
	// were requested by a name that was never registered.
	ErrUnknownNet = errors.New("unknown network")
)

var registeredNets = make(map[string]*Params)

// Register registers the network parameters for a network. This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible. Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Name]; ok {
		return errors.Wrapf(ErrDuplicateNet, "network %s", params.Name)
	}
	registeredNets[params.Name] = params
	return nil
}

// IsRegistered returns whether a network with the given name was registered
func IsRegistered(name string) bool {
	_, ok := registeredNets[name]
	return ok
}

// ParamsByName returns the parameters of the registered network with the
// given name
func ParamsByName(name string) (*Params, error) {
	params, ok := registeredNets[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNet, "network %s", name)
	}
	return params, nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainnetParams)
	mustRegister(&TestnetParams)
	mustRegister(&SimnetParams)
	mustRegister(&DevnetParams)
}
