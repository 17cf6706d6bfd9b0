package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/msto63/sro/internal/intake"
	"github.com/msto63/sro/internal/report"
	"github.com/msto63/sro/pkg/sro"
)

// Client calls a remote validation service
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on cc
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

type clientRecord struct {
	Entity string        `json:"entity"`
	Record intake.Record `json:"record"`
	Today  string        `json:"today,omitempty"`
}

type clientBatch struct {
	Entity  string          `json:"entity"`
	Source  string          `json:"source,omitempty"`
	Records []intake.Record `json:"records"`
	Today   string          `json:"today,omitempty"`
}

// Validate validates one record remotely. An empty today uses the
// server's reference date.
func (c *Client) Validate(ctx context.Context, kind sro.Kind, rec intake.Record, today string) (report.RecordOutcome, error) {
	var out report.RecordOutcome
	err := c.invoke(ctx, MethodValidate, clientRecord{Entity: string(kind), Record: rec, Today: today}, &out)
	return out, err
}

// ValidateBatch validates a decoded batch remotely
func (c *Client) ValidateBatch(ctx context.Context, batch intake.Batch, today string) (*report.Report, error) {
	req := clientBatch{
		Entity:  string(batch.Kind),
		Source:  batch.Source,
		Records: batch.Records,
		Today:   today,
	}
	out := new(report.Report)
	if err := c.invoke(ctx, MethodValidateBatch, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetReport fetches a stored report
func (c *Client) GetReport(ctx context.Context, id string) (*report.Report, error) {
	out := new(report.Report)
	if err := c.invoke(ctx, MethodGetReport, reportRequest{ID: id}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListReports lists stored reports, newest first
func (c *Client) ListReports(ctx context.Context, limit int) ([]*report.Report, error) {
	var out reportList
	if err := c.invoke(ctx, MethodListReports, reportRequest{Limit: limit}, &out); err != nil {
		return nil, err
	}
	return out.Reports, nil
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any) error {
	in, err := toStruct(req)
	if err != nil {
		return err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out); err != nil {
		return err
	}
	return fromStruct(out, resp)
}
