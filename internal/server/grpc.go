package server

import (
	"context"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	mdwerror "github.com/msto63/sro/foundation/core/error"
	"github.com/msto63/sro/internal/intake"
	"github.com/msto63/sro/internal/report"
	coreGrpc "github.com/msto63/sro/pkg/core/grpc"
	"github.com/msto63/sro/pkg/sro"
)

// Ensure Server implements ValidationServiceServer
var _ ValidationServiceServer = (*Server)(nil)

// defaultListLimit caps ListReports when no limit is given
const defaultListLimit = 50

type validateRequest struct {
	Entity string          `json:"entity"`
	Record json.RawMessage `json:"record"`
	Today  string          `json:"today,omitempty"`
}

type batchRequest struct {
	Entity  string            `json:"entity"`
	Source  string            `json:"source,omitempty"`
	Records []json.RawMessage `json:"records"`
	Today   string            `json:"today,omitempty"`
}

type reportRequest struct {
	ID    string `json:"id,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

type reportList struct {
	Reports []*report.Report `json:"reports"`
}

// Validate implements ValidationServiceServer.Validate
func (s *Server) Validate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in validateRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	kind, err := parseKind(in.Entity)
	if err != nil {
		return nil, err
	}
	if len(in.Record) == 0 {
		return nil, invalidInput("record is required")
	}

	rec, err := intake.DecodeRecord(kind, in.Record)
	if err != nil {
		return nil, err
	}
	v, err := s.validator(in.Today)
	if err != nil {
		return nil, err
	}

	outcome := v.ValidateRecord(kind, 0, rec)
	return toStruct(outcome)
}

// ValidateBatch implements ValidationServiceServer.ValidateBatch
func (s *Server) ValidateBatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in batchRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	kind, err := parseKind(in.Entity)
	if err != nil {
		return nil, err
	}

	batch := intake.Batch{Kind: kind, Source: in.Source, Records: make([]intake.Record, len(in.Records))}
	if batch.Source == "" {
		batch.Source = "grpc"
	}
	for i, raw := range in.Records {
		rec, err := intake.DecodeRecord(kind, raw)
		if err != nil {
			return nil, mdwerror.Wrapf(err, "records[%d]", i).
				WithCode(mdwerror.CodeDecodeFailed).
				WithDetail("index", i)
		}
		batch.Records[i] = rec
	}

	v, err := s.validator(in.Today)
	if err != nil {
		return nil, err
	}
	rep, err := v.ValidateBatch(ctx, batch)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.Save(ctx, rep); err != nil {
			s.logger.WithRequestID(coreGrpc.GetRequestID(ctx)).
				Error("Failed to store report", "report_id", rep.ID, "error", err)
		} else {
			s.reports.Set(rep.ID, rep)
		}
	}
	return toStruct(rep)
}

// GetReport implements ValidationServiceServer.GetReport
func (s *Server) GetReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.store == nil {
		return nil, storeDisabled()
	}
	var in reportRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	if in.ID == "" {
		return nil, invalidInput("id is required")
	}

	rep, err := s.reports.GetOrSet(in.ID, func() (*report.Report, error) {
		return s.store.Get(ctx, in.ID)
	})
	if err != nil {
		return nil, err
	}
	return toStruct(rep)
}

// ListReports implements ValidationServiceServer.ListReports
func (s *Server) ListReports(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.store == nil {
		return nil, storeDisabled()
	}
	var in reportRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	if in.Limit <= 0 {
		in.Limit = defaultListLimit
	}

	reports, err := s.store.List(ctx, in.Limit)
	if err != nil {
		return nil, err
	}
	return toStruct(reportList{Reports: reports})
}

func parseKind(name string) (sro.Kind, error) {
	if name == "" {
		return "", invalidInput("entity is required")
	}
	kind, ok := sro.ParseKind(name)
	if !ok {
		return "", mdwerror.Newf("unknown entity %q", name).
			WithCode(mdwerror.CodeUnknownEntity).
			WithDetail("entity", name)
	}
	return kind, nil
}

func invalidInput(message string) error {
	return mdwerror.New(message).WithCode(mdwerror.CodeInvalidInput)
}

func storeDisabled() error {
	return mdwerror.New("report store is not configured").
		WithCode(mdwerror.CodeServiceUnavailable)
}
