package product

// Product は商品サービスが保有する商品エンティティの読み取り用コピー。
// 識別子はサーバー側で採番され、本システムはリクエスト単位の一時的な
// コピーのみを保持する。
type Product struct {
	// UUID は商品の一意識別子。サーバー採番で不変。
	UUID string `json:"uuid"`
	// ProductName は商品名。必須で空文字列は許可されない。
	ProductName string `json:"productName"`
	// Price は商品価格。0以上の値のみ有効。
	Price float64 `json:"price"`
}

// CreatePayload は商品作成リクエストのペイロード。
type CreatePayload struct {
	// ProductName は作成する商品の名前。
	ProductName string `json:"productName"`
	// Price は作成する商品の価格。
	Price float64 `json:"price"`
}

// UpdatePayload は商品更新リクエストのペイロード。部分更新を許可する。
type UpdatePayload struct {
	// ProductName は更新後の商品名。nilの場合は変更しない。
	ProductName *string `json:"productName,omitempty"`
	// Price は更新後の価格。nilの場合は変更しない。
	Price *float64 `json:"price,omitempty"`
}
