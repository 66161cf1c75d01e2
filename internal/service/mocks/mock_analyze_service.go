package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"csvtool/internal/model"
)

type MockAnalyzeService struct {
	mock.Mock
}

func (m *MockAnalyzeService) Analyze(ctx context.Context, raw []byte, filename string) (*model.AnalysisResult, error) {
	args := m.Called(ctx, raw, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalysisResult), args.Error(1)
}
