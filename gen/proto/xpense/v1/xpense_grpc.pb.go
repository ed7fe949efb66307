// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: xpense/v1/xpense.proto

package xpensepb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ExpensesService_AddExpense_FullMethodName     = "/xpense.v1.ExpensesService/AddExpense"
	ExpensesService_ListExpenses_FullMethodName   = "/xpense.v1.ExpensesService/ListExpenses"
	ExpensesService_DeleteExpense_FullMethodName  = "/xpense.v1.ExpensesService/DeleteExpense"
	ExpensesService_ExportExpenses_FullMethodName = "/xpense.v1.ExpensesService/ExportExpenses"
)

// ExpensesServiceClient is the client API for ExpensesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExpensesServiceClient interface {
	AddExpense(ctx context.Context, in *AddExpenseRequest, opts ...grpc.CallOption) (*AddExpenseResponse, error)
	ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error)
	DeleteExpense(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*DeleteExpenseResponse, error)
	ExportExpenses(ctx context.Context, in *ExportExpensesRequest, opts ...grpc.CallOption) (*ExportExpensesResponse, error)
}

type expensesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExpensesServiceClient(cc grpc.ClientConnInterface) ExpensesServiceClient {
	return &expensesServiceClient{cc}
}

func (c *expensesServiceClient) AddExpense(ctx context.Context, in *AddExpenseRequest, opts ...grpc.CallOption) (*AddExpenseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddExpenseResponse)
	err := c.cc.Invoke(ctx, ExpensesService_AddExpense_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExpensesResponse)
	err := c.cc.Invoke(ctx, ExpensesService_ListExpenses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) DeleteExpense(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*DeleteExpenseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteExpenseResponse)
	err := c.cc.Invoke(ctx, ExpensesService_DeleteExpense_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) ExportExpenses(ctx context.Context, in *ExportExpensesRequest, opts ...grpc.CallOption) (*ExportExpensesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportExpensesResponse)
	err := c.cc.Invoke(ctx, ExpensesService_ExportExpenses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExpensesServiceServer is the server API for ExpensesService service.
// All implementations must embed UnimplementedExpensesServiceServer
// for forward compatibility.
type ExpensesServiceServer interface {
	AddExpense(context.Context, *AddExpenseRequest) (*AddExpenseResponse, error)
	ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error)
	DeleteExpense(context.Context, *DeleteExpenseRequest) (*DeleteExpenseResponse, error)
	ExportExpenses(context.Context, *ExportExpensesRequest) (*ExportExpensesResponse, error)
	mustEmbedUnimplementedExpensesServiceServer()
}

// UnimplementedExpensesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExpensesServiceServer struct{}

func (UnimplementedExpensesServiceServer) AddExpense(context.Context, *AddExpenseRequest) (*AddExpenseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddExpense not implemented")
}
func (UnimplementedExpensesServiceServer) ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExpenses not implemented")
}
func (UnimplementedExpensesServiceServer) DeleteExpense(context.Context, *DeleteExpenseRequest) (*DeleteExpenseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteExpense not implemented")
}
func (UnimplementedExpensesServiceServer) ExportExpenses(context.Context, *ExportExpensesRequest) (*ExportExpensesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportExpenses not implemented")
}
func (UnimplementedExpensesServiceServer) mustEmbedUnimplementedExpensesServiceServer() {}
func (UnimplementedExpensesServiceServer) testEmbeddedByValue()                         {}

// UnsafeExpensesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExpensesServiceServer will
// result in compilation errors.
type UnsafeExpensesServiceServer interface {
	mustEmbedUnimplementedExpensesServiceServer()
}

func RegisterExpensesServiceServer(s grpc.ServiceRegistrar, srv ExpensesServiceServer) {
	// If the following call pancis, it indicates UnimplementedExpensesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExpensesService_ServiceDesc, srv)
}

func _ExpensesService_AddExpense_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddExpenseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).AddExpense(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_AddExpense_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).AddExpense(ctx, req.(*AddExpenseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_ListExpenses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExpensesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).ListExpenses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_ListExpenses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).ListExpenses(ctx, req.(*ListExpensesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_DeleteExpense_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteExpenseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).DeleteExpense(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_DeleteExpense_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).DeleteExpense(ctx, req.(*DeleteExpenseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_ExportExpenses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportExpensesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).ExportExpenses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_ExportExpenses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).ExportExpenses(ctx, req.(*ExportExpensesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExpensesService_ServiceDesc is the grpc.ServiceDesc for ExpensesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExpensesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xpense.v1.ExpensesService",
	HandlerType: (*ExpensesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddExpense",
			Handler:    _ExpensesService_AddExpense_Handler,
		},
		{
			MethodName: "ListExpenses",
			Handler:    _ExpensesService_ListExpenses_Handler,
		},
		{
			MethodName: "DeleteExpense",
			Handler:    _ExpensesService_DeleteExpense_Handler,
		},
		{
			MethodName: "ExportExpenses",
			Handler:    _ExpensesService_ExportExpenses_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "xpense/v1/xpense.proto",
}

const (
	BudgetsService_UpsertBudget_FullMethodName = "/xpense.v1.BudgetsService/UpsertBudget"
	BudgetsService_ListBudgets_FullMethodName  = "/xpense.v1.BudgetsService/ListBudgets"
	BudgetsService_DeleteBudget_FullMethodName = "/xpense.v1.BudgetsService/DeleteBudget"
)

// BudgetsServiceClient is the client API for BudgetsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type BudgetsServiceClient interface {
	UpsertBudget(ctx context.Context, in *UpsertBudgetRequest, opts ...grpc.CallOption) (*UpsertBudgetResponse, error)
	ListBudgets(ctx context.Context, in *ListBudgetsRequest, opts ...grpc.CallOption) (*ListBudgetsResponse, error)
	DeleteBudget(ctx context.Context, in *DeleteBudgetRequest, opts ...grpc.CallOption) (*DeleteBudgetResponse, error)
}

type budgetsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBudgetsServiceClient(cc grpc.ClientConnInterface) BudgetsServiceClient {
	return &budgetsServiceClient{cc}
}

func (c *budgetsServiceClient) UpsertBudget(ctx context.Context, in *UpsertBudgetRequest, opts ...grpc.CallOption) (*UpsertBudgetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpsertBudgetResponse)
	err := c.cc.Invoke(ctx, BudgetsService_UpsertBudget_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *budgetsServiceClient) ListBudgets(ctx context.Context, in *ListBudgetsRequest, opts ...grpc.CallOption) (*ListBudgetsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBudgetsResponse)
	err := c.cc.Invoke(ctx, BudgetsService_ListBudgets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *budgetsServiceClient) DeleteBudget(ctx context.Context, in *DeleteBudgetRequest, opts ...grpc.CallOption) (*DeleteBudgetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteBudgetResponse)
	err := c.cc.Invoke(ctx, BudgetsService_DeleteBudget_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BudgetsServiceServer is the server API for BudgetsService service.
// All implementations must embed UnimplementedBudgetsServiceServer
// for forward compatibility.
type BudgetsServiceServer interface {
	UpsertBudget(context.Context, *UpsertBudgetRequest) (*UpsertBudgetResponse, error)
	ListBudgets(context.Context, *ListBudgetsRequest) (*ListBudgetsResponse, error)
	DeleteBudget(context.Context, *DeleteBudgetRequest) (*DeleteBudgetResponse, error)
	mustEmbedUnimplementedBudgetsServiceServer()
}

// UnimplementedBudgetsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBudgetsServiceServer struct{}

func (UnimplementedBudgetsServiceServer) UpsertBudget(context.Context, *UpsertBudgetRequest) (*UpsertBudgetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpsertBudget not implemented")
}
func (UnimplementedBudgetsServiceServer) ListBudgets(context.Context, *ListBudgetsRequest) (*ListBudgetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBudgets not implemented")
}
func (UnimplementedBudgetsServiceServer) DeleteBudget(context.Context, *DeleteBudgetRequest) (*DeleteBudgetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteBudget not implemented")
}
func (UnimplementedBudgetsServiceServer) mustEmbedUnimplementedBudgetsServiceServer() {}
func (UnimplementedBudgetsServiceServer) testEmbeddedByValue()                        {}

// UnsafeBudgetsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BudgetsServiceServer will
// result in compilation errors.
type UnsafeBudgetsServiceServer interface {
	mustEmbedUnimplementedBudgetsServiceServer()
}

func RegisterBudgetsServiceServer(s grpc.ServiceRegistrar, srv BudgetsServiceServer) {
	// If the following call pancis, it indicates UnimplementedBudgetsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BudgetsService_ServiceDesc, srv)
}

func _BudgetsService_UpsertBudget_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertBudgetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BudgetsServiceServer).UpsertBudget(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BudgetsService_UpsertBudget_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BudgetsServiceServer).UpsertBudget(ctx, req.(*UpsertBudgetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BudgetsService_ListBudgets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBudgetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BudgetsServiceServer).ListBudgets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BudgetsService_ListBudgets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BudgetsServiceServer).ListBudgets(ctx, req.(*ListBudgetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BudgetsService_DeleteBudget_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteBudgetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BudgetsServiceServer).DeleteBudget(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BudgetsService_DeleteBudget_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BudgetsServiceServer).DeleteBudget(ctx, req.(*DeleteBudgetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BudgetsService_ServiceDesc is the grpc.ServiceDesc for BudgetsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BudgetsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xpense.v1.BudgetsService",
	HandlerType: (*BudgetsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UpsertBudget",
			Handler:    _BudgetsService_UpsertBudget_Handler,
		},
		{
			MethodName: "ListBudgets",
			Handler:    _BudgetsService_ListBudgets_Handler,
		},
		{
			MethodName: "DeleteBudget",
			Handler:    _BudgetsService_DeleteBudget_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "xpense/v1/xpense.proto",
}

const (
	ScanService_ScanReceipt_FullMethodName   = "/xpense.v1.ScanService/ScanReceipt"
	ScanService_CommitItem_FullMethodName    = "/xpense.v1.ScanService/CommitItem"
	ScanService_CommitAll_FullMethodName     = "/xpense.v1.ScanService/CommitAll"
	ScanService_ResetSession_FullMethodName  = "/xpense.v1.ScanService/ResetSession"
	ScanService_ResumeSession_FullMethodName = "/xpense.v1.ScanService/ResumeSession"
)

// ScanServiceClient is the client API for ScanService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ScanServiceClient interface {
	// ScanReceipt streams progress updates while the pipeline runs and ends
	// with the review-ready result (or a terminal NO_ITEMS stage).
	ScanReceipt(ctx context.Context, in *ScanReceiptRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ScanReceiptResponse], error)
	CommitItem(ctx context.Context, in *CommitItemRequest, opts ...grpc.CallOption) (*CommitItemResponse, error)
	CommitAll(ctx context.Context, in *CommitAllRequest, opts ...grpc.CallOption) (*CommitAllResponse, error)
	ResetSession(ctx context.Context, in *ResetSessionRequest, opts ...grpc.CallOption) (*ResetSessionResponse, error)
	ResumeSession(ctx context.Context, in *ResumeSessionRequest, opts ...grpc.CallOption) (*ResumeSessionResponse, error)
}

type scanServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewScanServiceClient(cc grpc.ClientConnInterface) ScanServiceClient {
	return &scanServiceClient{cc}
}

func (c *scanServiceClient) ScanReceipt(ctx context.Context, in *ScanReceiptRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ScanReceiptResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ScanService_ServiceDesc.Streams[0], ScanService_ScanReceipt_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[ScanReceiptRequest, ScanReceiptResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ScanService_ScanReceiptClient = grpc.ServerStreamingClient[ScanReceiptResponse]

func (c *scanServiceClient) CommitItem(ctx context.Context, in *CommitItemRequest, opts ...grpc.CallOption) (*CommitItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitItemResponse)
	err := c.cc.Invoke(ctx, ScanService_CommitItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scanServiceClient) CommitAll(ctx context.Context, in *CommitAllRequest, opts ...grpc.CallOption) (*CommitAllResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitAllResponse)
	err := c.cc.Invoke(ctx, ScanService_CommitAll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scanServiceClient) ResetSession(ctx context.Context, in *ResetSessionRequest, opts ...grpc.CallOption) (*ResetSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetSessionResponse)
	err := c.cc.Invoke(ctx, ScanService_ResetSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scanServiceClient) ResumeSession(ctx context.Context, in *ResumeSessionRequest, opts ...grpc.CallOption) (*ResumeSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeSessionResponse)
	err := c.cc.Invoke(ctx, ScanService_ResumeSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ScanServiceServer is the server API for ScanService service.
// All implementations must embed UnimplementedScanServiceServer
// for forward compatibility.
type ScanServiceServer interface {
	// ScanReceipt streams progress updates while the pipeline runs and ends
	// with the review-ready result (or a terminal NO_ITEMS stage).
	ScanReceipt(*ScanReceiptRequest, grpc.ServerStreamingServer[ScanReceiptResponse]) error
	CommitItem(context.Context, *CommitItemRequest) (*CommitItemResponse, error)
	CommitAll(context.Context, *CommitAllRequest) (*CommitAllResponse, error)
	ResetSession(context.Context, *ResetSessionRequest) (*ResetSessionResponse, error)
	ResumeSession(context.Context, *ResumeSessionRequest) (*ResumeSessionResponse, error)
	mustEmbedUnimplementedScanServiceServer()
}

// UnimplementedScanServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedScanServiceServer struct{}

func (UnimplementedScanServiceServer) ScanReceipt(*ScanReceiptRequest, grpc.ServerStreamingServer[ScanReceiptResponse]) error {
	return status.Errorf(codes.Unimplemented, "method ScanReceipt not implemented")
}
func (UnimplementedScanServiceServer) CommitItem(context.Context, *CommitItemRequest) (*CommitItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CommitItem not implemented")
}
func (UnimplementedScanServiceServer) CommitAll(context.Context, *CommitAllRequest) (*CommitAllResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CommitAll not implemented")
}
func (UnimplementedScanServiceServer) ResetSession(context.Context, *ResetSessionRequest) (*ResetSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResetSession not implemented")
}
func (UnimplementedScanServiceServer) ResumeSession(context.Context, *ResumeSessionRequest) (*ResumeSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResumeSession not implemented")
}
func (UnimplementedScanServiceServer) mustEmbedUnimplementedScanServiceServer() {}
func (UnimplementedScanServiceServer) testEmbeddedByValue()                     {}

// UnsafeScanServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ScanServiceServer will
// result in compilation errors.
type UnsafeScanServiceServer interface {
	mustEmbedUnimplementedScanServiceServer()
}

func RegisterScanServiceServer(s grpc.ServiceRegistrar, srv ScanServiceServer) {
	// If the following call pancis, it indicates UnimplementedScanServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ScanService_ServiceDesc, srv)
}

func _ScanService_ScanReceipt_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ScanReceiptRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ScanServiceServer).ScanReceipt(m, &grpc.GenericServerStream[ScanReceiptRequest, ScanReceiptResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ScanService_ScanReceiptServer = grpc.ServerStreamingServer[ScanReceiptResponse]

func _ScanService_CommitItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScanServiceServer).CommitItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScanService_CommitItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScanServiceServer).CommitItem(ctx, req.(*CommitItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScanService_CommitAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScanServiceServer).CommitAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScanService_CommitAll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScanServiceServer).CommitAll(ctx, req.(*CommitAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScanService_ResetSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScanServiceServer).ResetSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScanService_ResetSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScanServiceServer).ResetSession(ctx, req.(*ResetSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScanService_ResumeSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScanServiceServer).ResumeSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScanService_ResumeSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScanServiceServer).ResumeSession(ctx, req.(*ResumeSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ScanService_ServiceDesc is the grpc.ServiceDesc for ScanService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ScanService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xpense.v1.ScanService",
	HandlerType: (*ScanServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CommitItem",
			Handler:    _ScanService_CommitItem_Handler,
		},
		{
			MethodName: "CommitAll",
			Handler:    _ScanService_CommitAll_Handler,
		},
		{
			MethodName: "ResetSession",
			Handler:    _ScanService_ResetSession_Handler,
		},
		{
			MethodName: "ResumeSession",
			Handler:    _ScanService_ResumeSession_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ScanReceipt",
			Handler:       _ScanService_ScanReceipt_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "xpense/v1/xpense.proto",
}
