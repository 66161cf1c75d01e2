package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeService_Analyze(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalyzeService(20)

	tests := []struct {
		name     string
		filename string
		raw      []byte
		wantErr  error
	}{
		{
			name:     "validation error - wrong extension",
			filename: "data.txt",
			raw:      []byte("a,b\n1,2\n"),
			wantErr:  ErrUnsupportedFileType,
		},
		{
			name:     "validation error - empty body",
			filename: "data.csv",
			raw:      nil,
			wantErr:  ErrEmptyFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Analyze(ctx, tt.raw, tt.filename)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAnalyzeHappyPath(t *testing.T) {
	svc := NewAnalyzeService(20)

	res, err := svc.Analyze(context.Background(), []byte("a,b\n1,2\n3,4\n"), "data.csv")
	require.NoError(t, err)

	assert.Equal(t, "data.csv", res.Filename)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 2, res.Cols)
	assert.Equal(t, []string{"a", "b"}, res.NumericColumns)

	a := res.Stats["a"]
	assert.Equal(t, 2, a.Count)
	assert.Equal(t, 1.0, *a.Min)
	assert.Equal(t, 3.0, *a.Max)
	assert.Equal(t, 2.0, *a.Mean)
	assert.Equal(t, 4.0, a.Sum)

	b := res.Stats["b"]
	assert.Equal(t, 2, b.Count)
	assert.Equal(t, 2.0, *b.Min)
	assert.Equal(t, 4.0, *b.Max)
	assert.Equal(t, 3.0, *b.Mean)
	assert.Equal(t, 6.0, b.Sum)

	require.Len(t, res.Preview, 2)
	assert.Equal(t, 1.0, res.Preview[0]["a"])
	assert.Equal(t, 2.0, res.Preview[0]["b"])
}

func TestAnalyzeHeaderOnlyCSV(t *testing.T) {
	svc := NewAnalyzeService(20)

	res, err := svc.Analyze(context.Background(), []byte("a,b\n"), "data.csv")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Rows)
	assert.Equal(t, 2, res.Cols)
	assert.Empty(t, res.NumericColumns)
	assert.Empty(t, res.Stats)
	assert.Empty(t, res.Preview)
}

func TestAnalyzeNegativePreviewRows(t *testing.T) {
	svc := NewAnalyzeService(-5)

	res, err := svc.Analyze(context.Background(), []byte("a\n1\n2\n"), "data.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Rows)
	assert.Empty(t, res.Preview)
}

func TestAnalyzeSniffsSemicolon(t *testing.T) {
	svc := NewAnalyzeService(20)

	res, err := svc.Analyze(context.Background(), []byte("a;b\n1;x\n2;y\n"), "data.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Cols)
	assert.Equal(t, []string{"a"}, res.NumericColumns)
	_, hasB := res.Stats["b"]
	assert.False(t, hasB)
	require.Len(t, res.Preview, 2)
	assert.Equal(t, "x", res.Preview[0]["b"])
	assert.Equal(t, "y", res.Preview[1]["b"])
}

func TestAnalyzeLatin1Upload(t *testing.T) {
	svc := NewAnalyzeService(20)

	// "ação" in Latin-1; invalid as UTF-8, decoded by the fallback.
	raw := append([]byte("name,n\n"), []byte{'a', 0xE7, 0xE3, 'o', ',', '1', '\n'}...)
	res, err := svc.Analyze(context.Background(), raw, "data.csv")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Rows)
	assert.Equal(t, []string{"n"}, res.NumericColumns)
	require.Len(t, res.Preview, 1)
	assert.Equal(t, "ação", res.Preview[0]["name"])
}

func TestAnalyzeParseFailure(t *testing.T) {
	svc := NewAnalyzeService(20)

	_, err := svc.Analyze(context.Background(), []byte("a,b\n1,2\n3,\"4\n"), "data.csv")
	require.Error(t, err)

	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "failed to read CSV")
}
