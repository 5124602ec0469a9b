package product

import (
	"context"

	"github.com/somatra-dev/gateway-bff/pkg/httpclient"
)

// basePath はゲートウェイ上の商品エンドポイントのベースパス。
const basePath = "/api/v1/products"

// Invalidates は変更操作の成功後に再取得が必要となるリソース名。
// 呼び出し側はこのシグナルを受けて一覧の再取得を行うかを判断する。
const Invalidates = "products"

// Facade は商品サービスへの薄いファサード。
// 状態を持たないため、単一のインスタンスを共有して使用できる。
type Facade struct {
	// client はゲートウェイ通信用クライアント。
	client *httpclient.Client
}

// NewFacade は新しい商品ファサードを生成する。
func NewFacade(client *httpclient.Client) *Facade {
	return &Facade{client: client}
}

// GetAll は商品の一覧を取得する。
func (f *Facade) GetAll(ctx context.Context) httpclient.Result[[]Product] {
	return httpclient.Get[[]Product](ctx, f.client, basePath)
}

// GetByID は指定した識別子の商品を取得する。
func (f *Facade) GetByID(ctx context.Context, uuid string) httpclient.Result[Product] {
	return httpclient.Get[Product](ctx, f.client, basePath+"/"+uuid)
}

// Create は商品を作成する。完了通知のみを返し、作成されたエンティティは
// 返さない。最新の状態は一覧の再取得で観測する。
func (f *Facade) Create(ctx context.Context, payload CreatePayload) httpclient.Result[any] {
	return httpclient.Post[any](ctx, f.client, basePath, payload)
}

// Update は指定した識別子の商品を部分更新する。完了通知のみを返す。
func (f *Facade) Update(ctx context.Context, uuid string, payload UpdatePayload) httpclient.Result[any] {
	return httpclient.Put[any](ctx, f.client, basePath+"/"+uuid, payload)
}

// Delete は指定した識別子の商品を削除する。
func (f *Facade) Delete(ctx context.Context, uuid string) httpclient.Result[any] {
	return httpclient.Delete[any](ctx, f.client, basePath+"/"+uuid)
}
