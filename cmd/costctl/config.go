package main

import (
	"github.com/coincost/coincost/infrastructure/config"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const defaultLogLevel = "info"

type configFlags struct {
	LogLevel    string  `short:"d" long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir      string  `long:"logdir" description:"Directory to log output. Nothing is logged if not set"`
	Strict      bool    `long:"strict" description:"Parse programs in strict mode, rejecting unknown conditions"`
	CostPerByte *uint64 `long:"cost-per-byte" description:"Overrides the cost per program byte of the active network"`
	ShowVersion bool    `short:"V" long:"version" description:"Display version information and exit"`
	VectorFiles []string
	config.NetworkFlags
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		LogLevel: defaultLogLevel,
	}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	parser.Usage = "costctl [OPTIONS] VECTOR_FILE [VECTOR_FILE...]\n\n" +
		"Each vector file is a JSON array of programs together with their condition parser output"
	remainingArgs, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	if cfg.CostPerByte != nil {
		params := *cfg.ActiveNetParams
		params.CostPerByte = *cfg.CostPerByte
		cfg.ActiveNetParams = &params
	}

	cfg.VectorFiles = remainingArgs
	if len(cfg.VectorFiles) == 0 {
		return nil, errors.New("At least one vector file must be specified")
	}

	return cfg, nil
}
