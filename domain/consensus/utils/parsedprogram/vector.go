package parsedprogram

import (
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/coincost/coincost/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// Vector is a serialized program together with the output its condition
// parser produced for it in each parsing mode
type Vector struct {
	Name      string
	Program   externalapi.SerializedProgram
	Strict    *externalapi.ParsedConditions
	NonStrict *externalapi.ParsedConditions
}

// ParsedConditions returns the parser output of the vector for the given
// mode. A vector that carries a single mode uses it for both.
func (vector *Vector) ParsedConditions(strictMode bool) *externalapi.ParsedConditions {
	if strictMode && vector.Strict != nil || vector.NonStrict == nil {
		return vector.Strict
	}
	return vector.NonStrict
}

type jsonVector struct {
	Name      string                `json:"name"`
	Program   string                `json:"program"`
	Strict    *jsonParsedConditions `json:"strict"`
	NonStrict *jsonParsedConditions `json:"nonStrict"`
}

type jsonParsedConditions struct {
	Error   *uint16    `json:"error"`
	NPCList []*jsonNPC `json:"npcList"`
	Cost    *uint64    `json:"cost"`
}

type jsonNPC struct {
	CoinName   string           `json:"coinName"`
	PuzzleHash string           `json:"puzzleHash"`
	Conditions []*jsonCondition `json:"conditions"`
}

type jsonCondition struct {
	Opcode uint8    `json:"opcode"`
	Vars   []string `json:"vars"`
}

// Decode reads a JSON array of vectors from the given reader
func Decode(reader io.Reader) ([]*Vector, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var jsonVectors []*jsonVector
	err := decoder.Decode(&jsonVectors)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't decode vectors")
	}

	vectors := make([]*Vector, len(jsonVectors))
	for i, jsonVector := range jsonVectors {
		if jsonVector == nil {
			return nil, errors.Errorf("vector #%d is null", i)
		}
		vector, err := jsonVector.toVector()
		if err != nil {
			return nil, errors.Wrapf(err, "vector #%d (%s)", i, jsonVector.Name)
		}
		vectors[i] = vector
	}
	return vectors, nil
}

func (jsonVector *jsonVector) toVector() (*Vector, error) {
	if jsonVector.Name == "" {
		return nil, errors.New("vector has no name")
	}
	if jsonVector.Strict == nil && jsonVector.NonStrict == nil {
		return nil, errors.New("vector has neither strict nor non-strict parser output")
	}

	program, err := hex.DecodeString(jsonVector.Program)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't decode program")
	}

	strict, err := jsonVector.Strict.toParsedConditions()
	if err != nil {
		return nil, errors.Wrap(err, "strict")
	}
	nonStrict, err := jsonVector.NonStrict.toParsedConditions()
	if err != nil {
		return nil, errors.Wrap(err, "non-strict")
	}

	return &Vector{
		Name:      jsonVector.Name,
		Program:   program,
		Strict:    strict,
		NonStrict: nonStrict,
	}, nil
}

func (jsonConditions *jsonParsedConditions) toParsedConditions() (*externalapi.ParsedConditions, error) {
	if jsonConditions == nil {
		return nil, nil
	}

	parsedConditions := &externalapi.ParsedConditions{
		Error: jsonConditions.Error,
		Cost:  jsonConditions.Cost,
	}
	// A missing npcList stays nil so that it is told apart from an
	// empty one.
	if jsonConditions.NPCList != nil {
		parsedConditions.NPCList = make([]*externalapi.NPC, len(jsonConditions.NPCList))
		for i, jsonNPC := range jsonConditions.NPCList {
			npc, err := jsonNPC.toNPC()
			if err != nil {
				return nil, errors.Wrapf(err, "npc #%d", i)
			}
			parsedConditions.NPCList[i] = npc
		}
	}
	return parsedConditions, nil
}

func (jsonNPC *jsonNPC) toNPC() (*externalapi.NPC, error) {
	if jsonNPC == nil {
		return nil, nil
	}

	npc := &externalapi.NPC{
		ConditionDict: make(map[externalapi.ConditionOpcode][]*externalapi.ConditionWithArgs),
	}

	var err error
	if jsonNPC.CoinName != "" {
		npc.CoinName, err = externalapi.NewDomainHashFromString(jsonNPC.CoinName)
		if err != nil {
			return nil, errors.Wrap(err, "coinName")
		}
	}
	if jsonNPC.PuzzleHash != "" {
		npc.PuzzleHash, err = externalapi.NewDomainHashFromString(jsonNPC.PuzzleHash)
		if err != nil {
			return nil, errors.Wrap(err, "puzzleHash")
		}
	}

	for i, jsonCondition := range jsonNPC.Conditions {
		if jsonCondition == nil {
			return nil, errors.Errorf("condition #%d is null", i)
		}
		condition := &externalapi.ConditionWithArgs{
			Opcode: externalapi.ConditionOpcode(jsonCondition.Opcode),
			Vars:   make([][]byte, len(jsonCondition.Vars)),
		}
		for j, jsonVar := range jsonCondition.Vars {
			condition.Vars[j], err = hex.DecodeString(jsonVar)
			if err != nil {
				return nil, errors.Wrapf(err, "condition #%d var #%d", i, j)
			}
		}
		npc.ConditionDict[condition.Opcode] = append(npc.ConditionDict[condition.Opcode], condition)
	}
	return npc, nil
}
