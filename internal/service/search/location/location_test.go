package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
)

// TestParse 외부 입력 문자열의 Location 변환을 검증합니다.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Location
		wantErr  bool
	}{
		{name: "소문자 시장 코드", input: "us", expected: US},
		{name: "대문자 입력은 소문자로 정규화", input: "PL", expected: PL},
		{name: "앞뒤 공백 제거", input: "  de  ", expected: DE},
		{name: "지원되지 않는 시장 코드", input: "fr", wantErr: true},
		{name: "빈 문자열", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loc, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, loc)
		})
	}
}

// TestProviderParams 모든 시장에 대해 검색 제공자 매개변수가 정의되어 있는지 검증합니다.
func TestProviderParams(t *testing.T) {
	t.Parallel()

	for _, loc := range All() {
		params := loc.ProviderParams()
		assert.NotEmpty(t, params.GoogleDomain, "loc=%s", loc)
		assert.NotEmpty(t, params.CountryCode, "loc=%s", loc)
		assert.NotEmpty(t, params.LanguageCode, "loc=%s", loc)
		assert.NotEmpty(t, params.CanonicalName, "loc=%s", loc)
	}

	assert.True(t, GB.IsValid())
	assert.False(t, Location("kr").IsValid())
}
