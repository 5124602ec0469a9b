package bff

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/somatra-dev/gateway-bff/internal/auth"
	"github.com/somatra-dev/gateway-bff/internal/config"
	"github.com/somatra-dev/gateway-bff/internal/order"
	"github.com/somatra-dev/gateway-bff/internal/product"
	"github.com/somatra-dev/gateway-bff/pkg/httpclient"
	"github.com/somatra-dev/gateway-bff/pkg/middleware"
)

// Server はBFFのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// log は構造化ロガー。
	log *zap.Logger
	// products は商品サービスへのファサード。
	products *product.Facade
	// orders は注文サービスへのファサード。
	orders *order.Facade
}

// NewServer は新しいBFFサーバーを生成する。
// ゲートウェイ通信用クライアントは構築時に一度だけ生成し、
// 両ファサードへ注入して共有する。
func NewServer(cfg *config.Config, log *zap.Logger) (*Server, error) {
	client, err := httpclient.New(cfg.GatewayURL)
	if err != nil {
		return nil, fmt.Errorf("ゲートウェイクライアントの生成に失敗: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-XSRF-TOKEN"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.TokenRelay())

	s := &Server{
		router:   router,
		port:     cfg.Port,
		log:      log,
		products: product.NewFacade(client),
		orders:   order.NewFacade(client),
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		// 認証状態の確認（未認証でもエラーにならない）
		api.GET("/auth/me", s.handleAuthMe())

		products := api.Group("/products")
		{
			products.GET("", s.handleListProducts())
			products.POST("", s.handleCreateProduct())
			products.GET("/:id", s.handleGetProduct())
			products.PUT("/:id", s.handleUpdateProduct())
			products.DELETE("/:id", s.handleDeleteProduct())
		}

		orders := api.Group("/orders")
		{
			orders.GET("", s.handleListOrders())
			orders.POST("", s.handleCreateOrder())
			orders.GET("/:id", s.handleGetOrder())
			orders.DELETE("/:id", s.handleDeleteOrder())
		}
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "bff"})
	})
}

// handleAuthMe は現在の呼び出しユーザーを返すハンドラを返す。
// 認証されていない状態はエラーではなく authenticated=false の200応答で表現する。
func (s *Server) handleAuthMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.ResolveUser(c.GetHeader("Authorization"))
		c.JSON(http.StatusOK, auth.MeResponse{
			Authenticated: user != nil,
			User:          user,
		})
	}
}

// handleListProducts は商品一覧を返すハンドラを返す。
func (s *Server) handleListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := s.products.GetAll(c.Request.Context())
		if !res.OK() {
			c.JSON(res.Status, gin.H{"error": res.Err})
			return
		}
		c.JSON(http.StatusOK, res.Payload)
	}
}

// handleGetProduct は指定した識別子の商品を返すハンドラを返す。
func (s *Server) handleGetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := s.products.GetByID(c.Request.Context(), c.Param("id"))
		if !res.OK() {
			c.JSON(res.Status, gin.H{"error": res.Err})
			return
		}
		c.JSON(http.StatusOK, res.Payload)
	}
}

// handleCreateProduct は商品を作成するハンドラを返す。
// 必須フィールドが欠けている場合はファサードを呼び出さずに400を返す。
func (s *Server) handleCreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.ProductName == "" || req.Price == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productName and price are required"})
			return
		}

		res := s.products.Create(c.Request.Context(), product.CreatePayload{
			ProductName: req.ProductName,
			Price:       *req.Price,
		})
		if !res.OK() {
			c.JSON(res.Status, gin.H{"error": res.Err})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully"})
	}
}

// handleUpdateProduct は商品を部分更新するハンドラを返す。
// ボディがJSONとして解釈できることのみを検証し、フィールドの検証は行わない。
func (s *Server) handleUpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload product.UpdatePayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		res := s.products.Update(c.Request.Context(), c.Param("id"), payload)
		if !res.OK() {
			c.JSON(res.Status, gin.H{"error": res.Err})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
	}
}

// handleDeleteProduct は商品を削除するハンドラを返す。
// 成功時は削除されたエンティティではなく完了メッセージを返す。
func (s *Server) handleDeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := s.products.Delete(c.Request.Context(), c.Param("id"))
		if !res.OK() {
			c.JSON(res.Status, gin.H{"error": res.Err})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

// handleListOrders は注文一覧を返すハンドラを返す。
func (s *Server) handleListOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := s.orders.GetAll(c.Request.Context())
		if !res.OK() {
			c.JSON(res.Status, gin.H{"error": res.Err})
			return
		}
		c.JSON(http.StatusOK, res.Payload)
	}
}

// handleGetOrder は指定した識別子の注文を返すハンドラを返す。
func (s *Server) handleGetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := s.orders.GetByID(c.Request.Context(), c.Param("id"))
		if !res.OK() {
			c.JSON(res.Status, gin.H{"error": res.Err})
			return
		}
		c.JSON(http.StatusOK, res.Payload)
	}
}

// handleCreateOrder は注文を作成するハンドラを返す。
// 必須フィールドが欠けている場合はファサードを呼び出さずに400を返す。
func (s *Server) handleCreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.ProductUUID == "" || req.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productUuid and quantity are required"})
			return
		}

		res := s.orders.Create(c.Request.Context(), order.CreatePayload{
			ProductUUID: req.ProductUUID,
			Quantity:    *req.Quantity,
		})
		if !res.OK() {
			c.JSON(res.Status, gin.H{"error": res.Err})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully"})
	}
}

// handleDeleteOrder は注文を削除するハンドラを返す。
func (s *Server) handleDeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := s.orders.Delete(c.Request.Context(), c.Param("id"))
		if !res.OK() {
			c.JSON(res.Status, gin.H{"error": res.Err})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
