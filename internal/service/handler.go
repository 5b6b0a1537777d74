package service

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// ServiceName is the fully-qualified name of the billing service.
const ServiceName = "billing.v1.BillingService"

const (
	ListCatalogProcedure   = "/" + ServiceName + "/ListCatalog"
	GetCartProcedure       = "/" + ServiceName + "/GetCart"
	AddLineProcedure       = "/" + ServiceName + "/AddLine"
	AddProductProcedure    = "/" + ServiceName + "/AddProduct"
	UpdateLineProcedure    = "/" + ServiceName + "/UpdateLine"
	RemoveLineProcedure    = "/" + ServiceName + "/RemoveLine"
	ClearAllProcedure      = "/" + ServiceName + "/ClearAll"
	SetHeaderProcedure     = "/" + ServiceName + "/SetHeader"
	PayProcedure           = "/" + ServiceName + "/Pay"
	MonthlyReportProcedure = "/" + ServiceName + "/MonthlyReport"
	LoadHistoryProcedure   = "/" + ServiceName + "/LoadHistory"
)

// NewBillingServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewBillingServiceHandler(svc *BillingService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ListCatalogProcedure, connect.NewUnaryHandler(ListCatalogProcedure, svc.ListCatalog, opts...))
	mux.Handle(GetCartProcedure, connect.NewUnaryHandler(GetCartProcedure, svc.GetCart, opts...))
	mux.Handle(AddLineProcedure, connect.NewUnaryHandler(AddLineProcedure, svc.AddLine, opts...))
	mux.Handle(AddProductProcedure, connect.NewUnaryHandler(AddProductProcedure, svc.AddProduct, opts...))
	mux.Handle(UpdateLineProcedure, connect.NewUnaryHandler(UpdateLineProcedure, svc.UpdateLine, opts...))
	mux.Handle(RemoveLineProcedure, connect.NewUnaryHandler(RemoveLineProcedure, svc.RemoveLine, opts...))
	mux.Handle(ClearAllProcedure, connect.NewUnaryHandler(ClearAllProcedure, svc.ClearAll, opts...))
	mux.Handle(SetHeaderProcedure, connect.NewUnaryHandler(SetHeaderProcedure, svc.SetHeader, opts...))
	mux.Handle(PayProcedure, connect.NewUnaryHandler(PayProcedure, svc.Pay, opts...))
	mux.Handle(MonthlyReportProcedure, connect.NewUnaryHandler(MonthlyReportProcedure, svc.MonthlyReport, opts...))
	mux.Handle(LoadHistoryProcedure, connect.NewUnaryHandler(LoadHistoryProcedure, svc.LoadHistory, opts...))

	return "/" + ServiceName + "/", mux
}

// BillingServiceClient calls a remote BillingService.
type BillingServiceClient struct {
	listCatalog   *connect.Client[Empty, ListCatalogResponse]
	getCart       *connect.Client[Empty, CartResponse]
	addLine       *connect.Client[AddLineRequest, AddLineResponse]
	addProduct    *connect.Client[AddProductRequest, AddLineResponse]
	updateLine    *connect.Client[UpdateLineRequest, CartResponse]
	removeLine    *connect.Client[RemoveLineRequest, CartResponse]
	clearAll      *connect.Client[ClearAllRequest, CartResponse]
	setHeader     *connect.Client[SetHeaderRequest, CartResponse]
	pay           *connect.Client[PayRequest, PayResponse]
	monthlyReport *connect.Client[Empty, MonthlyReportResponse]
	loadHistory   *connect.Client[Empty, LoadHistoryResponse]
}

// NewBillingServiceClient constructs a client for the service at baseURL.
func NewBillingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BillingServiceClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &BillingServiceClient{
		listCatalog:   connect.NewClient[Empty, ListCatalogResponse](httpClient, baseURL+ListCatalogProcedure, opts...),
		getCart:       connect.NewClient[Empty, CartResponse](httpClient, baseURL+GetCartProcedure, opts...),
		addLine:       connect.NewClient[AddLineRequest, AddLineResponse](httpClient, baseURL+AddLineProcedure, opts...),
		addProduct:    connect.NewClient[AddProductRequest, AddLineResponse](httpClient, baseURL+AddProductProcedure, opts...),
		updateLine:    connect.NewClient[UpdateLineRequest, CartResponse](httpClient, baseURL+UpdateLineProcedure, opts...),
		removeLine:    connect.NewClient[RemoveLineRequest, CartResponse](httpClient, baseURL+RemoveLineProcedure, opts...),
		clearAll:      connect.NewClient[ClearAllRequest, CartResponse](httpClient, baseURL+ClearAllProcedure, opts...),
		setHeader:     connect.NewClient[SetHeaderRequest, CartResponse](httpClient, baseURL+SetHeaderProcedure, opts...),
		pay:           connect.NewClient[PayRequest, PayResponse](httpClient, baseURL+PayProcedure, opts...),
		monthlyReport: connect.NewClient[Empty, MonthlyReportResponse](httpClient, baseURL+MonthlyReportProcedure, opts...),
		loadHistory:   connect.NewClient[Empty, LoadHistoryResponse](httpClient, baseURL+LoadHistoryProcedure, opts...),
	}
}

func (c *BillingServiceClient) ListCatalog(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListCatalogResponse], error) {
	return c.listCatalog.CallUnary(ctx, req)
}

func (c *BillingServiceClient) GetCart(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[CartResponse], error) {
	return c.getCart.CallUnary(ctx, req)
}

func (c *BillingServiceClient) AddLine(ctx context.Context, req *connect.Request[AddLineRequest]) (*connect.Response[AddLineResponse], error) {
	return c.addLine.CallUnary(ctx, req)
}

func (c *BillingServiceClient) AddProduct(ctx context.Context, req *connect.Request[AddProductRequest]) (*connect.Response[AddLineResponse], error) {
	return c.addProduct.CallUnary(ctx, req)
}

func (c *BillingServiceClient) UpdateLine(ctx context.Context, req *connect.Request[UpdateLineRequest]) (*connect.Response[CartResponse], error) {
	return c.updateLine.CallUnary(ctx, req)
}

func (c *BillingServiceClient) RemoveLine(ctx context.Context, req *connect.Request[RemoveLineRequest]) (*connect.Response[CartResponse], error) {
	return c.removeLine.CallUnary(ctx, req)
}

func (c *BillingServiceClient) ClearAll(ctx context.Context, req *connect.Request[ClearAllRequest]) (*connect.Response[CartResponse], error) {
	return c.clearAll.CallUnary(ctx, req)
}

func (c *BillingServiceClient) SetHeader(ctx context.Context, req *connect.Request[SetHeaderRequest]) (*connect.Response[CartResponse], error) {
	return c.setHeader.CallUnary(ctx, req)
}

func (c *BillingServiceClient) Pay(ctx context.Context, req *connect.Request[PayRequest]) (*connect.Response[PayResponse], error) {
	return c.pay.CallUnary(ctx, req)
}

func (c *BillingServiceClient) MonthlyReport(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[MonthlyReportResponse], error) {
	return c.monthlyReport.CallUnary(ctx, req)
}

func (c *BillingServiceClient) LoadHistory(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[LoadHistoryResponse], error) {
	return c.loadHistory.CallUnary(ctx, req)
}
