// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: labreports/v1/labreports.proto

package labreportsv1

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
	ProfilesService_CreateProfile_FullMethodName = "/labreports.v1.ProfilesService/CreateProfile"
	ProfilesService_ListProfiles_FullMethodName  = "/labreports.v1.ProfilesService/ListProfiles"
)

// ProfilesServiceClient is the client API for ProfilesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProfilesService manages the people whose lab reports are tracked.
type ProfilesServiceClient interface {
	CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error)
	ListProfiles(ctx context.Context, in *ListProfilesRequest, opts ...grpc.CallOption) (*ListProfilesResponse, error)
}

type profilesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProfilesServiceClient(cc grpc.ClientConnInterface) ProfilesServiceClient {
	return &profilesServiceClient{cc}
}

func (c *profilesServiceClient) CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateProfileResponse)
	err := c.cc.Invoke(ctx, ProfilesService_CreateProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *profilesServiceClient) ListProfiles(ctx context.Context, in *ListProfilesRequest, opts ...grpc.CallOption) (*ListProfilesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProfilesResponse)
	err := c.cc.Invoke(ctx, ProfilesService_ListProfiles_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProfilesServiceServer is the server API for ProfilesService service.
// All implementations must embed UnimplementedProfilesServiceServer
// for forward compatibility.
//
// ProfilesService manages the people whose lab reports are tracked.
type ProfilesServiceServer interface {
	CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error)
	ListProfiles(context.Context, *ListProfilesRequest) (*ListProfilesResponse, error)
	mustEmbedUnimplementedProfilesServiceServer()
}

// UnimplementedProfilesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProfilesServiceServer struct{}

func (UnimplementedProfilesServiceServer) CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateProfile not implemented")
}
func (UnimplementedProfilesServiceServer) ListProfiles(context.Context, *ListProfilesRequest) (*ListProfilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProfiles not implemented")
}
func (UnimplementedProfilesServiceServer) mustEmbedUnimplementedProfilesServiceServer() {}
func (UnimplementedProfilesServiceServer) testEmbeddedByValue()                         {}

// UnsafeProfilesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProfilesServiceServer will
// result in compilation errors.
type UnsafeProfilesServiceServer interface {
	mustEmbedUnimplementedProfilesServiceServer()
}

func RegisterProfilesServiceServer(s grpc.ServiceRegistrar, srv ProfilesServiceServer) {
	// If the following call pancis, it indicates UnimplementedProfilesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProfilesService_ServiceDesc, srv)
}

func _ProfilesService_CreateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServiceServer).CreateProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfilesService_CreateProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServiceServer).CreateProfile(ctx, req.(*CreateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProfilesService_ListProfiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProfilesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServiceServer).ListProfiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfilesService_ListProfiles_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServiceServer).ListProfiles(ctx, req.(*ListProfilesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProfilesService_ServiceDesc is the grpc.ServiceDesc for ProfilesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProfilesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "labreports.v1.ProfilesService",
	HandlerType: (*ProfilesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProfile",
			Handler:    _ProfilesService_CreateProfile_Handler,
		},
		{
			MethodName: "ListProfiles",
			Handler:    _ProfilesService_ListProfiles_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "labreports/v1/labreports.proto",
}

const (
	PanelsService_ProcessReport_FullMethodName = "/labreports.v1.PanelsService/ProcessReport"
	PanelsService_ListPanels_FullMethodName    = "/labreports.v1.PanelsService/ListPanels"
	PanelsService_GetPanel_FullMethodName      = "/labreports.v1.PanelsService/GetPanel"
	PanelsService_ExportPanels_FullMethodName  = "/labreports.v1.PanelsService/ExportPanels"
)

// PanelsServiceClient is the client API for PanelsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PanelsService runs the extraction pipeline and serves its results.
type PanelsServiceClient interface {
	// ProcessReport runs OCR and biomarker extraction on a local file and
	// persists the resulting panel.
	ProcessReport(ctx context.Context, in *ProcessReportRequest, opts ...grpc.CallOption) (*ProcessReportResponse, error)
	ListPanels(ctx context.Context, in *ListPanelsRequest, opts ...grpc.CallOption) (*ListPanelsResponse, error)
	GetPanel(ctx context.Context, in *GetPanelRequest, opts ...grpc.CallOption) (*GetPanelResponse, error)
	ExportPanels(ctx context.Context, in *ExportPanelsRequest, opts ...grpc.CallOption) (*ExportPanelsResponse, error)
}

type panelsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPanelsServiceClient(cc grpc.ClientConnInterface) PanelsServiceClient {
	return &panelsServiceClient{cc}
}

func (c *panelsServiceClient) ProcessReport(ctx context.Context, in *ProcessReportRequest, opts ...grpc.CallOption) (*ProcessReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessReportResponse)
	err := c.cc.Invoke(ctx, PanelsService_ProcessReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *panelsServiceClient) ListPanels(ctx context.Context, in *ListPanelsRequest, opts ...grpc.CallOption) (*ListPanelsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPanelsResponse)
	err := c.cc.Invoke(ctx, PanelsService_ListPanels_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *panelsServiceClient) GetPanel(ctx context.Context, in *GetPanelRequest, opts ...grpc.CallOption) (*GetPanelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPanelResponse)
	err := c.cc.Invoke(ctx, PanelsService_GetPanel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *panelsServiceClient) ExportPanels(ctx context.Context, in *ExportPanelsRequest, opts ...grpc.CallOption) (*ExportPanelsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportPanelsResponse)
	err := c.cc.Invoke(ctx, PanelsService_ExportPanels_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PanelsServiceServer is the server API for PanelsService service.
// All implementations must embed UnimplementedPanelsServiceServer
// for forward compatibility.
//
// PanelsService runs the extraction pipeline and serves its results.
type PanelsServiceServer interface {
	// ProcessReport runs OCR and biomarker extraction on a local file and
	// persists the resulting panel.
	ProcessReport(context.Context, *ProcessReportRequest) (*ProcessReportResponse, error)
	ListPanels(context.Context, *ListPanelsRequest) (*ListPanelsResponse, error)
	GetPanel(context.Context, *GetPanelRequest) (*GetPanelResponse, error)
	ExportPanels(context.Context, *ExportPanelsRequest) (*ExportPanelsResponse, error)
	mustEmbedUnimplementedPanelsServiceServer()
}

// UnimplementedPanelsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPanelsServiceServer struct{}

func (UnimplementedPanelsServiceServer) ProcessReport(context.Context, *ProcessReportRequest) (*ProcessReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessReport not implemented")
}
func (UnimplementedPanelsServiceServer) ListPanels(context.Context, *ListPanelsRequest) (*ListPanelsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPanels not implemented")
}
func (UnimplementedPanelsServiceServer) GetPanel(context.Context, *GetPanelRequest) (*GetPanelResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPanel not implemented")
}
func (UnimplementedPanelsServiceServer) ExportPanels(context.Context, *ExportPanelsRequest) (*ExportPanelsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportPanels not implemented")
}
func (UnimplementedPanelsServiceServer) mustEmbedUnimplementedPanelsServiceServer() {}
func (UnimplementedPanelsServiceServer) testEmbeddedByValue()                       {}

// UnsafePanelsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PanelsServiceServer will
// result in compilation errors.
type UnsafePanelsServiceServer interface {
	mustEmbedUnimplementedPanelsServiceServer()
}

func RegisterPanelsServiceServer(s grpc.ServiceRegistrar, srv PanelsServiceServer) {
	// If the following call pancis, it indicates UnimplementedPanelsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PanelsService_ServiceDesc, srv)
}

func _PanelsService_ProcessReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PanelsServiceServer).ProcessReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PanelsService_ProcessReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PanelsServiceServer).ProcessReport(ctx, req.(*ProcessReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PanelsService_ListPanels_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPanelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PanelsServiceServer).ListPanels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PanelsService_ListPanels_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PanelsServiceServer).ListPanels(ctx, req.(*ListPanelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PanelsService_GetPanel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPanelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PanelsServiceServer).GetPanel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PanelsService_GetPanel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PanelsServiceServer).GetPanel(ctx, req.(*GetPanelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PanelsService_ExportPanels_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportPanelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PanelsServiceServer).ExportPanels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PanelsService_ExportPanels_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PanelsServiceServer).ExportPanels(ctx, req.(*ExportPanelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PanelsService_ServiceDesc is the grpc.ServiceDesc for PanelsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PanelsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "labreports.v1.PanelsService",
	HandlerType: (*PanelsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessReport",
			Handler:    _PanelsService_ProcessReport_Handler,
		},
		{
			MethodName: "ListPanels",
			Handler:    _PanelsService_ListPanels_Handler,
		},
		{
			MethodName: "GetPanel",
			Handler:    _PanelsService_GetPanel_Handler,
		},
		{
			MethodName: "ExportPanels",
			Handler:    _PanelsService_ExportPanels_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "labreports/v1/labreports.proto",
}
