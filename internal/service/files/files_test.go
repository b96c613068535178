package files

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/jgivc/weatherdata/internal/adapter/fsadapter"
	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/entity"
)

const (
	testRoot = "/nas"
	townDir  = testRoot + "/단기예보/서울특별시/강남구/역삼동"
)

var townLoc = entity.Location{
	ForecastType: "단기예보",
	City:         "서울특별시",
	District:     "강남구",
	Town:         "역삼동",
}

func newTestService(t *testing.T) *filesService {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range map[string]string{
		townDir + "/humidity/data_20230201_20230228.csv":    "h",
		townDir + "/humidity/data_20230101_20230131.csv":    "h",
		townDir + "/station_wind_20230101_20230131.csv":     "w",
		townDir + "/temperature/data_20230101_20230131.csv": "t",
	} {
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewFilesService(fsadapter.NewFSAdapterWithFS(fs, testRoot, log), log)
}

func TestFiles(t *testing.T) {
	srv := newTestService(t)

	groups, err := srv.Files(context.Background(), townLoc)
	require.NoError(t, err)
	require.Equal(t, 4, groups.FileCount())
	require.ElementsMatch(t, []string{"humidity", "temperature", "wind"}, groups.Keys())
	require.Equal(t, "20230101", groups.Get("humidity")[0].StartDate)
}

func TestVariables(t *testing.T) {
	srv := newTestService(t)

	variables, err := srv.Variables(context.Background(), townLoc)
	require.NoError(t, err)
	require.Len(t, variables, 2)
	require.Equal(t, "humidity", variables[0].Name)
	require.Equal(t, 2, variables[0].FileCount)
	require.Equal(t, "temperature", variables[1].Name)
}

func TestVariableFiles(t *testing.T) {
	srv := newTestService(t)

	loc := townLoc
	loc.Variable = "humidity"
	files, err := srv.VariableFiles(context.Background(), loc)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "data_20230101_20230131.csv", files[0].Filename)
}

func TestFilesErrors(t *testing.T) {
	srv := newTestService(t)
	ctx := context.Background()

	missing := townLoc
	missing.Town = "없는동"

	dotted := townLoc
	dotted.District = ".."

	testCases := []struct {
		name        string
		call        func() error
		expectedErr error
		expectedMsg string
	}{
		{
			name: "files missing town",
			call: func() error {
				_, err := srv.Files(ctx, missing)
				return err
			},
			expectedErr: common.ErrNotFound,
			expectedMsg: "cannot list files",
		},
		{
			name: "variables bad segment",
			call: func() error {
				_, err := srv.Variables(ctx, dotted)
				return err
			},
			expectedErr: common.ErrBadRequest,
			expectedMsg: "cannot list variables",
		},
		{
			name: "variable files missing variable",
			call: func() error {
				loc := townLoc
				loc.Variable = "pressure"
				_, err := srv.VariableFiles(ctx, loc)
				return err
			},
			expectedErr: common.ErrNotFound,
			expectedMsg: "cannot list variable files",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.ErrorIs(t, err, tc.expectedErr)
			require.Contains(t, err.Error(), tc.expectedMsg)
		})
	}
}
