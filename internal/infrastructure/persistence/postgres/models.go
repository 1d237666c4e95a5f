package postgres

import "github.com/shopspring/decimal"

// StoreModel é o model GORM para lojas
type StoreModel struct {
	ID        string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string `gorm:"type:varchar(45);uniqueIndex;not null"`
	Slogan    string `gorm:"type:varchar(100);uniqueIndex;not null"`
	LogoPath  string `gorm:"type:varchar(500)"`
	CNPJ      string `gorm:"column:cnpj;type:varchar(14);not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (StoreModel) TableName() string {
	return "stores"
}

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID   string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string `gorm:"type:varchar(45);not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel é o model GORM para produtos
type ProductModel struct {
	ID            string          `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string          `gorm:"type:varchar(45);uniqueIndex;not null"`
	Slug          string          `gorm:"type:varchar(60);uniqueIndex;not null"`
	ThumbnailPath string          `gorm:"type:varchar(500)"`
	Description   string          `gorm:"type:varchar(500)"`
	Categories    []CategoryModel `gorm:"many2many:product_categories"`
	CreatedAt     int64           `gorm:"autoCreateTime;index"`
	UpdatedAt     int64           `gorm:"autoUpdateTime"`

	Variations []ProductVariationModel `gorm:"foreignKey:ProductID"`
}

func (ProductModel) TableName() string {
	return "products"
}

// ProductVariationModel é o model GORM para variações de produto
type ProductVariationModel struct {
	ID        string          `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string          `gorm:"type:varchar(45);uniqueIndex;not null"`
	Size      string          `gorm:"type:varchar(4);not null"`
	Color     string          `gorm:"type:varchar(20);not null"`
	Slug      string          `gorm:"type:varchar(60);uniqueIndex;not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null;check:chk_variation_price,price >= 0"`
	ProductID string          `gorm:"type:uuid;not null;index"`
	CreatedAt int64           `gorm:"autoCreateTime"`
	UpdatedAt int64           `gorm:"autoUpdateTime"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

func (ProductVariationModel) TableName() string {
	return "product_variations"
}

// StockItemModel relaciona loja e variação com a quantidade em estoque
type StockItemModel struct {
	ID                 string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StoreID            string `gorm:"type:uuid;not null;uniqueIndex:idx_stock_store_variation"`
	ProductVariationID string `gorm:"type:uuid;not null;uniqueIndex:idx_stock_store_variation"`
	Quantity           int    `gorm:"not null;default:0;check:chk_stock_quantity,quantity >= 0"`
}

func (StockItemModel) TableName() string {
	return "stock_items"
}

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username  string `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// OrderStatusModel é o model GORM para status de pedido
type OrderStatusModel struct {
	ID   string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string `gorm:"type:varchar(45);uniqueIndex;not null"`
}

func (OrderStatusModel) TableName() string {
	return "order_statuses"
}

// OrderModel é o model GORM para pedidos
type OrderModel struct {
	ID                    string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Quantity              int    `gorm:"column:qtd;not null;default:1;check:chk_order_qtd,qtd >= 1"`
	StripePaymentID       string `gorm:"type:varchar(32);uniqueIndex"`
	StripePaymentMethodID string `gorm:"type:varchar(32)"`
	StatusID              string `gorm:"type:uuid;not null"`
	UserID                string `gorm:"type:uuid;not null;index"`
	ProductVariationID    string `gorm:"type:uuid;not null;index"`
	CreatedAt             int64  `gorm:"autoCreateTime"`

	Status    *OrderStatusModel      `gorm:"foreignKey:StatusID"`
	User      *UserModel             `gorm:"foreignKey:UserID"`
	Variation *ProductVariationModel `gorm:"foreignKey:ProductVariationID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// EvaluationModel é o model GORM para avaliações
type EvaluationModel struct {
	ID          string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Rating      int    `gorm:"not null;check:chk_evaluation_rating,rating BETWEEN 1 AND 5"`
	Description string `gorm:"type:varchar(255)"`
	OrderID     string `gorm:"type:uuid;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime"`

	Order *OrderModel `gorm:"foreignKey:OrderID"`
}

func (EvaluationModel) TableName() string {
	return "evaluations"
}

// MediaFileModel é o model GORM para arquivos de mídia.
// A CHECK constraint espelha a regra de cardinalidade do domínio:
// exatamente uma das referências deve ser não nula, protegendo caminhos
// de escrita que não passem pelo validador.
type MediaFileModel struct {
	ID                 string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FilePath           string  `gorm:"type:varchar(500);not null"`
	FileSize           int64   `gorm:"not null;default:0"`
	EvaluationID       *string `gorm:"type:uuid;index;check:chk_media_owner,(evaluation_id IS NULL) <> (product_variation_id IS NULL)"`
	ProductVariationID *string `gorm:"type:uuid;index"`
	CreatedAt          int64   `gorm:"autoCreateTime"`

	Evaluation *EvaluationModel       `gorm:"foreignKey:EvaluationID"`
	Variation  *ProductVariationModel `gorm:"foreignKey:ProductVariationID"`
}

func (MediaFileModel) TableName() string {
	return "media_files"
}

// AddressModel é o model GORM para endereços
type AddressModel struct {
	ID         string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Street     string `gorm:"type:varchar(100);not null"`
	State      string `gorm:"type:varchar(2);not null"`
	City       string `gorm:"type:varchar(45);not null"`
	PostalCode string `gorm:"type:varchar(10);not null"`
	Country    string `gorm:"type:varchar(2);not null"`
}

func (AddressModel) TableName() string {
	return "addresses"
}

// HasAddressModel liga endereço a usuário e/ou loja.
// A CHECK constraint garante pelo menos uma das referências.
type HasAddressModel struct {
	ID         string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Number     string  `gorm:"type:varchar(10);not null"`
	Complement string  `gorm:"type:varchar(100)"`
	UserID     *string `gorm:"type:uuid;index;check:chk_address_owner,user_id IS NOT NULL OR store_id IS NOT NULL"`
	StoreID    *string `gorm:"type:uuid;index"`
	AddressID  string  `gorm:"type:uuid;not null;index"`

	Address *AddressModel `gorm:"foreignKey:AddressID"`
}

func (HasAddressModel) TableName() string {
	return "has_addresses"
}
