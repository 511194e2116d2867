package service

import "franchise-backend/internal/database/models"

// selectTopStock returns the product with the highest stock, ties going to the
// lowest id, or nil when products is empty. The input order does not matter.
func selectTopStock(products []models.Product) *models.Product {
	var top *models.Product
	for i := range products {
		if top == nil || products[i].OutranksInStock(top) {
			top = &products[i]
		}
	}
	return top
}
