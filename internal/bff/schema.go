package bff

// createProductRequest は商品作成エンドポイントのリクエストボディ。
// フィールドの有無を区別するため、数値はポインタで受け取る。
type createProductRequest struct {
	// ProductName は作成する商品の名前。必須。
	ProductName string `json:"productName"`
	// Price は作成する商品の価格。必須。
	Price *float64 `json:"price"`
}

// createOrderRequest は注文作成エンドポイントのリクエストボディ。
type createOrderRequest struct {
	// ProductUUID は注文対象の商品識別子。必須。
	ProductUUID string `json:"productUuid"`
	// Quantity は注文数量。必須。
	Quantity *int `json:"quantity"`
}
