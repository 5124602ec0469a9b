package order

import "github.com/somatra-dev/gateway-bff/internal/product"

// Status は注文の状態を表す。遷移は注文サービス側で管理され、
// 本システムは表示用の値として扱うのみ。
type Status string

const (
	// StatusPending は注文が受付済みで未確定の状態を表す。
	StatusPending Status = "PENDING"
	// StatusConfirmed は注文が確定した状態を表す。
	StatusConfirmed Status = "CONFIRMED"
	// StatusShipped は注文が発送された状態を表す。
	StatusShipped Status = "SHIPPED"
	// StatusDelivered は注文が配達完了した状態を表す。
	StatusDelivered Status = "DELIVERED"
	// StatusCancelled は注文がキャンセルされた状態を表す。
	StatusCancelled Status = "CANCELLED"
)

// Order は注文サービスが保有する注文エンティティの読み取り用コピー。
type Order struct {
	// UUID は注文の一意識別子。サーバー採番。
	UUID string `json:"uuid"`
	// Product は注文時点の商品スナップショット。
	Product product.Product `json:"product"`
	// Quantity は注文数量。1以上の整数。
	Quantity int `json:"quantity"`
	// TotalPrice はサーバー側で計算された合計金額。読み取り専用。
	TotalPrice float64 `json:"totalPrice"`
	// OrderDate は注文の作成日時。読み取り専用。
	OrderDate string `json:"orderDate"`
	// Status は注文の現在の状態。
	Status Status `json:"status"`
}

// CreatePayload は注文作成リクエストのペイロード。
type CreatePayload struct {
	// ProductUUID は注文対象の商品識別子。
	ProductUUID string `json:"productUuid"`
	// Quantity は注文数量。
	Quantity int `json:"quantity"`
}
