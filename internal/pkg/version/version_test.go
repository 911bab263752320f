package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	// init에서 채워진 전역 값 조회. 필드별 값은 빌드 환경에 따라 다르므로
	// 비어 있지 않은지만 확인한다.
	got := Get()
	assert.NotEmpty(t, got.Version)
	assert.NotEmpty(t, got.GoVersion)
	assert.Equal(t, runtime.GOOS, got.OS)
	assert.Equal(t, runtime.GOARCH, got.Arch)

	assert.Equal(t, got.Version, Version())
}

func TestEnrichBuildInfo(t *testing.T) {
	t.Run("RuntimeFields_AutoPopulated", func(t *testing.T) {
		got := enrichBuildInfo(Info{Version: "v1.0.0"})

		assert.Equal(t, runtime.Version(), got.GoVersion)
		assert.Equal(t, runtime.GOOS, got.OS)
		assert.Equal(t, runtime.GOARCH, got.Arch)
	})

	t.Run("VCSMetadata_FillsMissingFields", func(t *testing.T) {
		restore := readBuildInfo
		defer func() { readBuildInfo = restore }()

		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "f25b8bfabc123"},
					{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			}, true
		}

		got := enrichBuildInfo(Info{Version: "v1.0.0"})
		assert.Equal(t, "f25b8bfabc123", got.Commit)
		assert.Equal(t, "2026-01-01T00:00:00Z", got.BuildDate)
		assert.True(t, got.DirtyBuild)
	})

	t.Run("LdflagsValues_NotOverwritten", func(t *testing.T) {
		restore := readBuildInfo
		defer func() { readBuildInfo = restore }()

		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "deadbeef"},
					{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
				},
			}, true
		}

		got := enrichBuildInfo(Info{
			Version:   "v2.0.0",
			Commit:    "f25b8bf",
			BuildDate: "2026-02-02T00:00:00Z",
		})
		assert.Equal(t, "f25b8bf", got.Commit)
		assert.Equal(t, "2026-02-02T00:00:00Z", got.BuildDate)
	})

	t.Run("NoBuildInfo_DefaultsToUnknown", func(t *testing.T) {
		restore := readBuildInfo
		defer func() { readBuildInfo = restore }()

		readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

		got := enrichBuildInfo(Info{})
		assert.Equal(t, unknown, got.Version)
		assert.Equal(t, unknown, got.Commit)
	})
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Info
		want  string
	}{
		{
			name: "CompleteInfo",
			input: Info{
				Version:     "v1.0.0",
				Commit:      "f25b8bfabc123",
				BuildDate:   "2026-01-01",
				BuildNumber: "1",
				GoVersion:   "go1.24",
			},
			want: "v1.0.0 (commit: f25b8bf, build: 1, date: 2026-01-01, go_version: go1.24)",
		},
		{
			name:  "DirtyBuild_Suffix",
			input: Info{Version: "v1.0.0", DirtyBuild: true},
			want:  "v1.0.0+dirty",
		},
		{
			name:  "EmptyInfo",
			input: Info{},
			want:  "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.input.String())
		})
	}
}

func TestInfoJSONTags(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Info{Version: "v1.0.0", BuildNumber: "123"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "v1.0.0", decoded["version"])
	assert.Equal(t, "123", decoded["build_number"])
}
