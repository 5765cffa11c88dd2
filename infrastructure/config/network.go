package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coincost/coincost/domain/dagconfig"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet               bool   `long:"testnet" description:"Use the test network"`
	Simnet                bool   `long:"simnet" description:"Use the simulation test network"`
	Devnet                bool   `long:"devnet" description:"Use the development test network"`
	OverrideDAGParamsFile string `long:"override-dag-params-file" description:"Overrides DAG params (allowed only on devnet)"`

	ActiveNetParams *dagconfig.Params
}

type overrideDAGParamsConfig struct {
	CostPerByte            *uint64 `json:"costPerByte"`
	MaxBlockCostCLVM       *uint64 `json:"maxBlockCostCLVM"`
	PreValidateBlockCosts  *bool   `json:"preValidateBlockCosts"`
	PreValidationBatchSize *int    `json:"preValidationBatchSize"`
}

// ResolveNetwork parses the network command line argument and sets NetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	//NetParams holds the selected network parameters. Default value is main-net.
	networkFlags.ActiveNetParams = &dagconfig.MainnetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	// Count number of network flags passed; assign active network params
	// while we're at it
	if networkFlags.Testnet {
		numNets++
		networkFlags.ActiveNetParams = &dagconfig.TestnetParams
	}
	if networkFlags.Simnet {
		numNets++
		networkFlags.ActiveNetParams = &dagconfig.SimnetParams
	}
	if networkFlags.Devnet {
		numNets++
		networkFlags.ActiveNetParams = &dagconfig.DevnetParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, simnet, devnet, etc.) cannot be used " +
			"together. Please choose only one network"
		err := errors.Errorf(message)
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	return networkFlags.overrideDAGParams()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *dagconfig.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideDAGParams() error {
	if networkFlags.OverrideDAGParamsFile == "" {
		return nil
	}

	if !networkFlags.Devnet {
		return errors.Errorf("override-dag-params-file is allowed only when using devnet")
	}

	overrideDAGParamsFile, err := os.Open(networkFlags.OverrideDAGParamsFile)
	if err != nil {
		return errors.WithStack(err)
	}
	defer overrideDAGParamsFile.Close()

	decoder := json.NewDecoder(overrideDAGParamsFile)
	decoder.DisallowUnknownFields()
	config := &overrideDAGParamsConfig{}
	err = decoder.Decode(config)
	if err != nil {
		return errors.Wrapf(err, "couldn't decode %s", networkFlags.OverrideDAGParamsFile)
	}

	// The registered devnet params are shared, so the overrides go to a copy.
	params := *networkFlags.ActiveNetParams

	if config.CostPerByte != nil {
		params.CostPerByte = *config.CostPerByte
	}

	if config.MaxBlockCostCLVM != nil {
		params.MaxBlockCostCLVM = *config.MaxBlockCostCLVM
	}

	if config.PreValidateBlockCosts != nil {
		params.PreValidateBlockCosts = *config.PreValidateBlockCosts
	}

	if config.PreValidationBatchSize != nil {
		if *config.PreValidationBatchSize <= 0 {
			return errors.Errorf("preValidationBatchSize must be positive, found %d", *config.PreValidationBatchSize)
		}
		params.PreValidationBatchSize = *config.PreValidationBatchSize
	}

	networkFlags.ActiveNetParams = &params
	return nil
}
