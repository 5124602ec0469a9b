package order

import (
	"context"

	"github.com/somatra-dev/gateway-bff/pkg/httpclient"
)

// basePath はゲートウェイ上の注文エンドポイントのベースパス。
const basePath = "/api/v1/orders"

// Invalidates は変更操作の成功後に再取得が必要となるリソース名。
const Invalidates = "orders"

// Facade は注文サービスへの薄いファサード。
type Facade struct {
	// client はゲートウェイ通信用クライアント。
	client *httpclient.Client
}

// NewFacade は新しい注文ファサードを生成する。
func NewFacade(client *httpclient.Client) *Facade {
	return &Facade{client: client}
}

// GetAll は注文の一覧を取得する。
func (f *Facade) GetAll(ctx context.Context) httpclient.Result[[]Order] {
	return httpclient.Get[[]Order](ctx, f.client, basePath)
}

// GetByID は指定した識別子の注文を取得する。
func (f *Facade) GetByID(ctx context.Context, uuid string) httpclient.Result[Order] {
	return httpclient.Get[Order](ctx, f.client, basePath+"/"+uuid)
}

// Create は注文を作成する。完了通知のみを返し、作成された注文の識別子は
// 返さない。最新の状態は一覧の再取得で観測する。
func (f *Facade) Create(ctx context.Context, payload CreatePayload) httpclient.Result[any] {
	return httpclient.Post[any](ctx, f.client, basePath, payload)
}

// Delete は指定した識別子の注文を削除する。
func (f *Facade) Delete(ctx context.Context, uuid string) httpclient.Result[any] {
	return httpclient.Delete[any](ctx, f.client, basePath+"/"+uuid)
}
