package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/coincost/coincost/domain/consensus"
	"github.com/coincost/coincost/domain/consensus/utils/hashes"
	"github.com/coincost/coincost/domain/consensus/utils/parsedprogram"
	"github.com/coincost/coincost/infrastructure/logger"
	"github.com/coincost/coincost/version"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type vectorResult struct {
	Name                string  `json:"name"`
	ProgramHash         string  `json:"programHash"`
	Error               *uint16 `json:"error"`
	Cost                uint64  `json:"cost"`
	MaxBlockCost        uint64  `json:"maxBlockCost"`
	ExceedsMaxBlockCost bool    `json:"exceedsMaxBlockCost"`
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error parsing command-line arguments: %s", err))
	}

	if cfg.ShowVersion {
		fmt.Println("costctl version", version.Version())
		return
	}

	err = initLog(cfg)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error initializing the logger: %s", err))
	}

	exitCode := costVectorFiles(cfg, os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	logger.BackendLog.Close()
	os.Exit(exitCode)
}

// costVectorFiles writes the results of every vector in the configured files
// to out and returns the process exit code
func costVectorFiles(cfg *configFlags, out io.Writer, indent bool) int {
	encoder := json.NewEncoder(out)
	if indent {
		encoder.SetIndent("", "  ")
	}

	hasDecodeFailures := false
	for _, vectorFile := range cfg.VectorFiles {
		vectors, err := decodeVectorFile(vectorFile)
		if err != nil {
			hasDecodeFailures = true
			log.Errorf("Skipping %s: %s", vectorFile, err)
			fmt.Fprintf(os.Stderr, "error decoding %s: %s\n", vectorFile, err)
			continue
		}

		results, err := costVectors(cfg, vectors)
		if err != nil {
			printErrorAndExit(fmt.Sprintf("error costing %s: %s", vectorFile, err))
		}
		for _, result := range results {
			err := encoder.Encode(result)
			if err != nil {
				printErrorAndExit(fmt.Sprintf("error writing results: %s", err))
			}
		}
	}

	if hasDecodeFailures {
		return 1
	}
	return 0
}

func decodeVectorFile(path string) ([]*parsedprogram.Vector, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return parsedprogram.Decode(file)
}

func costVectors(cfg *configFlags, vectors []*parsedprogram.Vector) ([]*vectorResult, error) {
	params := cfg.NetParams()
	results := make([]*vectorResult, len(vectors))
	for i, vector := range vectors {
		// Every vector gets its own parser, so vectors that share a program
		// are each costed with their own recorded output.
		c, err := consensus.NewFactory().NewConsensus(params, parsedprogram.NewReplayParser(vector), nil)
		if err != nil {
			return nil, err
		}

		costResult, err := c.CalculateCostOfProgram(vector.Program, cfg.Strict)
		if err != nil {
			log.Debugf("Vector %s failed: %s", vector.Name, err)
		} else {
			log.Infof("Vector %s costs %d", vector.Name, costResult.Cost)
		}

		results[i] = &vectorResult{
			Name:                vector.Name,
			ProgramHash:         hashes.ProgramHash(vector.Program).String(),
			Error:               costResult.Error,
			Cost:                costResult.Cost,
			MaxBlockCost:        params.MaxBlockCostCLVM,
			ExceedsMaxBlockCost: c.ExceedsMaxBlockCost(costResult),
		}
	}
	return results, nil
}

func printErrorAndExit(message string) {
	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(1)
}
