package catalog

import "github.com/google/uuid"

// seedProducts is the starter catalog used on a fresh terminal, before the
// store has saved anything of its own.
func seedProducts() []*Product {
	return []*Product{
		{ID: uuid.MustParse("6f1a2c3e-0001-4a9b-8f10-000000000001"), Barcode: "123456", NameEN: "Apple", NameAR: "تفاح", Price: 5.50, Category: "Fruits"},
		{ID: uuid.MustParse("6f1a2c3e-0002-4a9b-8f10-000000000002"), Barcode: "789012", NameEN: "Orange", NameAR: "برتقال", Price: 4.25, Category: "Fruits"},
		{ID: uuid.MustParse("6f1a2c3e-0003-4a9b-8f10-000000000003"), Barcode: "345678", NameEN: "Milk 1L", NameAR: "حليب 1 لتر", Price: 7.00, Category: "Dairy"},
		{ID: uuid.MustParse("6f1a2c3e-0004-4a9b-8f10-000000000004"), Barcode: "901234", NameEN: "Bread", NameAR: "خبز", Price: 3.50, Category: "Bakery"},
		{ID: uuid.MustParse("6f1a2c3e-0005-4a9b-8f10-000000000005"), Barcode: "567890", NameEN: "Water 500ml", NameAR: "ماء 500 مل", Price: 1.50, Category: "Beverages"},
	}
}
