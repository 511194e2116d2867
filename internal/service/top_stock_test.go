package service

import (
	"testing"

	"franchise-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func productWith(idSuffix byte, stock int) models.Product {
	id := uuid.MustParse("01890000-0000-7000-8000-000000000000")
	id[15] = idSuffix
	return models.Product{BaseModel: models.BaseModel{ID: id}, Stock: stock}
}

func TestSelectTopStockEmpty(t *testing.T) {
	assert.Nil(t, selectTopStock(nil))
	assert.Nil(t, selectTopStock([]models.Product{}))
}

func TestSelectTopStockHighestWins(t *testing.T) {
	products := []models.Product{productWith(1, 5), productWith(2, 12), productWith(3, 0)}

	top := selectTopStock(products)

	assert.Equal(t, products[1].ID, top.ID)
	assert.Equal(t, 12, top.Stock)
}

func TestSelectTopStockTieBreakIsOrderIndependent(t *testing.T) {
	a, b, c := productWith(7, 9), productWith(3, 9), productWith(5, 9)

	permutations := [][]models.Product{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	for _, products := range permutations {
		top := selectTopStock(products)
		assert.Equal(t, b.ID, top.ID)
	}
}

func TestSelectTopStockAllZero(t *testing.T) {
	top := selectTopStock([]models.Product{productWith(2, 0), productWith(1, 0)})

	assert.NotNil(t, top)
	assert.Equal(t, 0, top.Stock)
	assert.Equal(t, byte(1), top.ID[15])
}
