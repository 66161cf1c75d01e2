package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"csvtool/internal/decode"
	"csvtool/internal/model"
	"csvtool/internal/sniff"
	"csvtool/internal/tabular"
)

var (
	ErrUnsupportedFileType = errors.New("only .csv files are accepted")
	ErrEmptyFile           = errors.New("file is empty")
)

// ParseError marks a CSV the tabular library rejected. The message carries
// the parser's own error text so the client can see what is wrong with the
// file.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("failed to read CSV: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// AnalyzeService defines the use case for analyzing an uploaded CSV file.
type AnalyzeService interface {
	// Analyze runs the pipeline on one upload: validate, decode, sniff the
	// delimiter, parse, aggregate, shape. The whole pipeline is synchronous
	// and request-scoped; nothing is retained after the call returns.
	Analyze(ctx context.Context, raw []byte, filename string) (*model.AnalysisResult, error)
}

// analyzeService is a concrete implementation of AnalyzeService.
type analyzeService struct {
	decoders    []decode.Decoder
	sniffer     sniff.Sniffer
	previewRows int
}

// NewAnalyzeService constructs an AnalyzeService with the default decoder
// chain and delimiter sniffer.
func NewAnalyzeService(previewRows int) AnalyzeService {
	return &analyzeService{
		decoders:    decode.DefaultChain(),
		sniffer:     sniff.CountSniffer{},
		previewRows: previewRows,
	}
}

func (s *analyzeService) Analyze(_ context.Context, raw []byte, filename string) (*model.AnalysisResult, error) {
	if !strings.HasSuffix(filename, ".csv") {
		return nil, ErrUnsupportedFileType
	}
	if len(raw) == 0 {
		return nil, ErrEmptyFile
	}

	text, err := decode.Text(raw, s.decoders)
	if err != nil {
		return nil, fmt.Errorf("decode upload: %w", err)
	}

	tbl, err := tabular.Parse(text, s.sniffer.Sniff(text))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	return &model.AnalysisResult{
		Filename:       filename,
		Rows:           tbl.Rows(),
		Cols:           tbl.Cols(),
		NumericColumns: tbl.NumericColumns(),
		Stats:          tbl.Stats(),
		Preview:        tbl.Preview(s.previewRows),
	}, nil
}
