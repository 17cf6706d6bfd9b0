package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/sro/foundation/core/error"
	"github.com/msto63/sro/pkg/sro"
)

// Batch is a decoded input file
type Batch struct {
	Kind    sro.Kind
	Source  string
	Records []Record
}

// Decoder reads envelopes in one format
type Decoder struct {
	format Format
}

// NewDecoder creates a decoder for format
func NewDecoder(format Format) *Decoder {
	return &Decoder{format: format}
}

// Decode reads one envelope from r. Records are decoded into the record
// type of the envelope's entity kind.
func (d *Decoder) Decode(r io.Reader, source string) (Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Batch{}, decodeError(err, source, "failed to read input")
	}

	var (
		kindName string
		records  []Record
	)
	switch d.format {
	case FormatJSON:
		kindName, records, err = decodeJSON(data)
	case FormatYAML:
		kindName, records, err = decodeYAML(data)
	case FormatTOML:
		kindName, records, err = decodeTOML(data)
	default:
		return Batch{}, mdwerror.Newf("unsupported format %q", d.format).
			WithCode(mdwerror.CodeUnsupportedFormat).
			WithOperation("intake.Decode")
	}
	if err != nil {
		if mdwerror.HasCode(err, mdwerror.CodeUnknownEntity) {
			return Batch{}, err
		}
		return Batch{}, decodeError(err, source, "failed to decode "+string(d.format))
	}

	kind, _ := sro.ParseKind(kindName)
	return Batch{Kind: kind, Source: source, Records: records}, nil
}

// DecodeRecord decodes a single JSON record of kind
func DecodeRecord(kind sro.Kind, data []byte) (Record, error) {
	rec := newRecord(kind)
	if rec == nil {
		return nil, unknownEntity(string(kind))
	}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, decodeError(err, string(kind), "failed to decode record")
	}
	return rec, nil
}

// recordsFor resolves kind and allocates n empty records
func recordsFor(kindName string, n int) ([]Record, error) {
	kind, ok := sro.ParseKind(kindName)
	if !ok {
		return nil, unknownEntity(kindName)
	}
	records := make([]Record, n)
	for i := range records {
		records[i] = newRecord(kind)
	}
	return records, nil
}

func decodeJSON(data []byte) (string, []Record, error) {
	var env struct {
		Entity  string            `json:"entity"`
		Records []json.RawMessage `json:"records"`
	}
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return "", nil, err
	}
	records, err := recordsFor(env.Entity, len(env.Records))
	if err != nil {
		return "", nil, err
	}
	for i, raw := range env.Records {
		if err := json.Unmarshal(raw, records[i]); err != nil {
			return "", nil, fmt.Errorf("records[%d]: %w", i, err)
		}
	}
	return env.Entity, records, nil
}

func decodeYAML(data []byte) (string, []Record, error) {
	var env struct {
		Entity  string      `yaml:"entity"`
		Records []yaml.Node `yaml:"records"`
	}
	if err := yaml.Unmarshal(data, &env); err != nil {
		return "", nil, err
	}
	records, err := recordsFor(env.Entity, len(env.Records))
	if err != nil {
		return "", nil, err
	}
	for i := range env.Records {
		if err := env.Records[i].Decode(records[i]); err != nil {
			return "", nil, fmt.Errorf("records[%d]: %w", i, err)
		}
	}
	return env.Entity, records, nil
}

func decodeTOML(data []byte) (string, []Record, error) {
	var env struct {
		Entity  string           `toml:"entity"`
		Records []toml.Primitive `toml:"records"`
	}
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&env)
	if err != nil {
		return "", nil, err
	}
	records, err := recordsFor(env.Entity, len(env.Records))
	if err != nil {
		return "", nil, err
	}
	for i, prim := range env.Records {
		if err := md.PrimitiveDecode(prim, records[i]); err != nil {
			return "", nil, fmt.Errorf("records[%d]: %w", i, err)
		}
	}
	return env.Entity, records, nil
}

func unknownEntity(name string) error {
	return mdwerror.Newf("unknown entity %q", name).
		WithCode(mdwerror.CodeUnknownEntity).
		WithOperation("intake.Decode").
		WithDetail("entity", name)
}

func decodeError(err error, source, message string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDecodeFailed).
		WithOperation("intake.Decode").
		WithDetail("source", source)
}
