package postgres

import "gorm.io/gorm"

// Migrate cria/atualiza o schema, incluindo as CHECK constraints que
// espelham as regras de cardinalidade do domínio
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&StoreModel{},
		&CategoryModel{},
		&ProductModel{},
		&ProductVariationModel{},
		&StockItemModel{},
		&UserModel{},
		&OrderStatusModel{},
		&OrderModel{},
		&EvaluationModel{},
		&MediaFileModel{},
		&AddressModel{},
		&HasAddressModel{},
	)
}
