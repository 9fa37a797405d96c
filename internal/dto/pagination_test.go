package dto_test

import (
	"testing"

	"github.com/eder5on/Estoque/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginated_ComputesTotalPages(t *testing.T) {
	p := dto.NewPaginated([]int{1, 2, 3}, 25, 2, 10)

	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 3, p.TotalPages)
}

func TestNewPaginated_NilDataBecomesEmptySlice(t *testing.T) {
	p := dto.NewPaginated[string](nil, 0, 1, 10)

	require.NotNil(t, p.Data)
	assert.Empty(t, p.Data)
	assert.Equal(t, 0, p.TotalPages)
}

func TestNewPaginated_FloorsLimitAtOne(t *testing.T) {
	p := dto.NewPaginated([]int{1, 2, 3}, 3, 1, 0)

	assert.Equal(t, 1, p.Limit)
	assert.Equal(t, 3, p.TotalPages)

	neg := dto.NewPaginated([]int{1}, 1, 1, -5)
	assert.Equal(t, 1, neg.Limit)
	assert.Equal(t, 1, neg.TotalPages)
}
