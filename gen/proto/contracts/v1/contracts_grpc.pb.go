// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: contracts/v1/contracts.proto

package contractsv1

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
	ExtractionService_IngestFile_FullMethodName      = "/contracts.v1.ExtractionService/IngestFile"
	ExtractionService_IngestDirectory_FullMethodName = "/contracts.v1.ExtractionService/IngestDirectory"
	ExtractionService_ExtractContract_FullMethodName = "/contracts.v1.ExtractionService/ExtractContract"
	ExtractionService_GetContract_FullMethodName     = "/contracts.v1.ExtractionService/GetContract"
	ExtractionService_ListContracts_FullMethodName   = "/contracts.v1.ExtractionService/ListContracts"
)

// ExtractionServiceClient is the client API for ExtractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExtractionService ingests contract documents and runs field extraction.
type ExtractionServiceClient interface {
	IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error)
	ExtractContract(ctx context.Context, in *ExtractContractRequest, opts ...grpc.CallOption) (*ExtractContractResponse, error)
	GetContract(ctx context.Context, in *GetContractRequest, opts ...grpc.CallOption) (*GetContractResponse, error)
	ListContracts(ctx context.Context, in *ListContractsRequest, opts ...grpc.CallOption) (*ListContractsResponse, error)
}

type extractionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionServiceClient(cc grpc.ClientConnInterface) ExtractionServiceClient {
	return &extractionServiceClient{cc}
}

func (c *extractionServiceClient) IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResponse)
	err := c.cc.Invoke(ctx, ExtractionService_IngestFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDirectoryResponse)
	err := c.cc.Invoke(ctx, ExtractionService_IngestDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ExtractContract(ctx context.Context, in *ExtractContractRequest, opts ...grpc.CallOption) (*ExtractContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractContractResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExtractContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetContract(ctx context.Context, in *GetContractRequest, opts ...grpc.CallOption) (*GetContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetContractResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ListContracts(ctx context.Context, in *ListContractsRequest, opts ...grpc.CallOption) (*ListContractsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListContractsResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ListContracts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionServiceServer is the server API for ExtractionService service.
// All implementations must embed UnimplementedExtractionServiceServer
// for forward compatibility.
//
// ExtractionService ingests contract documents and runs field extraction.
type ExtractionServiceServer interface {
	IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error)
	IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error)
	ExtractContract(context.Context, *ExtractContractRequest) (*ExtractContractResponse, error)
	GetContract(context.Context, *GetContractRequest) (*GetContractResponse, error)
	ListContracts(context.Context, *ListContractsRequest) (*ListContractsResponse, error)
	mustEmbedUnimplementedExtractionServiceServer()
}

// UnimplementedExtractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionServiceServer struct{}

func (UnimplementedExtractionServiceServer) IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestFile not implemented")
}
func (UnimplementedExtractionServiceServer) IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestDirectory not implemented")
}
func (UnimplementedExtractionServiceServer) ExtractContract(context.Context, *ExtractContractRequest) (*ExtractContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractContract not implemented")
}
func (UnimplementedExtractionServiceServer) GetContract(context.Context, *GetContractRequest) (*GetContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetContract not implemented")
}
func (UnimplementedExtractionServiceServer) ListContracts(context.Context, *ListContractsRequest) (*ListContractsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListContracts not implemented")
}
func (UnimplementedExtractionServiceServer) mustEmbedUnimplementedExtractionServiceServer() {}
func (UnimplementedExtractionServiceServer) testEmbeddedByValue()                           {}

// UnsafeExtractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionServiceServer will
// result in compilation errors.
type UnsafeExtractionServiceServer interface {
	mustEmbedUnimplementedExtractionServiceServer()
}

func RegisterExtractionServiceServer(s grpc.ServiceRegistrar, srv ExtractionServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionService_ServiceDesc, srv)
}

func _ExtractionService_IngestFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).IngestFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_IngestFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).IngestFile(ctx, req.(*IngestFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_IngestDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).IngestDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_IngestDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).IngestDirectory(ctx, req.(*IngestDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ExtractContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExtractContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExtractContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExtractContract(ctx, req.(*ExtractContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetContract(ctx, req.(*GetContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ListContracts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListContractsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ListContracts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ListContracts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ListContracts(ctx, req.(*ListContractsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionService_ServiceDesc is the grpc.ServiceDesc for ExtractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "contracts.v1.ExtractionService",
	HandlerType: (*ExtractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestFile",
			Handler:    _ExtractionService_IngestFile_Handler,
		},
		{
			MethodName: "IngestDirectory",
			Handler:    _ExtractionService_IngestDirectory_Handler,
		},
		{
			MethodName: "ExtractContract",
			Handler:    _ExtractionService_ExtractContract_Handler,
		},
		{
			MethodName: "GetContract",
			Handler:    _ExtractionService_GetContract_Handler,
		},
		{
			MethodName: "ListContracts",
			Handler:    _ExtractionService_ListContracts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/v1/contracts.proto",
}

const (
	ExportService_ExportContracts_FullMethodName = "/contracts.v1.ExportService/ExportContracts"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService produces workbook exports of extracted contracts.
type ExportServiceClient interface {
	ExportContracts(ctx context.Context, in *ExportContractsRequest, opts ...grpc.CallOption) (*ExportContractsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportContracts(ctx context.Context, in *ExportContractsRequest, opts ...grpc.CallOption) (*ExportContractsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportContractsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportContracts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService produces workbook exports of extracted contracts.
type ExportServiceServer interface {
	ExportContracts(context.Context, *ExportContractsRequest) (*ExportContractsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportContracts(context.Context, *ExportContractsRequest) (*ExportContractsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportContracts not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportContracts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportContractsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportContracts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportContracts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportContracts(ctx, req.(*ExportContractsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "contracts.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportContracts",
			Handler:    _ExportService_ExportContracts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/v1/contracts.proto",
}
