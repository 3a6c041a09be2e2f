package propertiespb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	PropertyServiceName      = "properties.v1.PropertyService"
	PropertyTraceServiceName = "properties.v1.PropertyTraceService"
)

// PropertyServiceServer is the server contract of the Property RPC surface.
type PropertyServiceServer interface {
	GetProperties(context.Context, *GetPropertiesRequest) (*GetPropertiesResponse, error)
	GetProperty(context.Context, *GetPropertyRequest) (*PropertyResponse, error)
	CreateProperty(context.Context, *PropertyRequest) (*PropertyResponse, error)
	UpdateProperty(context.Context, *PropertyRequest) (*PropertyResponse, error)
	DeleteProperty(context.Context, *DeletePropertyRequest) (*DeleteResponse, error)
}

// PropertyTraceServiceServer is the server contract of the trace RPC surface.
type PropertyTraceServiceServer interface {
	GetPropertyTraces(context.Context, *GetPropertyTracesRequest) (*GetPropertyTracesResponse, error)
	GetPropertyTrace(context.Context, *GetPropertyTraceRequest) (*PropertyTraceResponse, error)
	CreatePropertyTrace(context.Context, *PropertyTraceRequest) (*PropertyTraceResponse, error)
	UpdatePropertyTrace(context.Context, *PropertyTraceRequest) (*PropertyTraceResponse, error)
	DeletePropertyTrace(context.Context, *DeletePropertyTraceRequest) (*DeleteResponse, error)
}

func RegisterPropertyServiceServer(s grpc.ServiceRegistrar, srv PropertyServiceServer) {
	s.RegisterService(&PropertyService_ServiceDesc, srv)
}

func RegisterPropertyTraceServiceServer(s grpc.ServiceRegistrar, srv PropertyTraceServiceServer) {
	s.RegisterService(&PropertyTraceService_ServiceDesc, srv)
}

// unary adapts one typed server method into the shape grpc.MethodDesc
// expects, keeping the descriptors below free of decode boilerplate.
func unary[Req any](fullMethod string, invoke func(srv any, ctx context.Context, in *Req) (any, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return invoke(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return invoke(srv, ctx, req.(*Req))
		})
	}
}

var PropertyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PropertyServiceName,
	HandlerType: (*PropertyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetProperties",
			Handler: unary("/"+PropertyServiceName+"/GetProperties",
				func(srv any, ctx context.Context, in *GetPropertiesRequest) (any, error) {
					return srv.(PropertyServiceServer).GetProperties(ctx, in)
				}),
		},
		{
			MethodName: "GetProperty",
			Handler: unary("/"+PropertyServiceName+"/GetProperty",
				func(srv any, ctx context.Context, in *GetPropertyRequest) (any, error) {
					return srv.(PropertyServiceServer).GetProperty(ctx, in)
				}),
		},
		{
			MethodName: "CreateProperty",
			Handler: unary("/"+PropertyServiceName+"/CreateProperty",
				func(srv any, ctx context.Context, in *PropertyRequest) (any, error) {
					return srv.(PropertyServiceServer).CreateProperty(ctx, in)
				}),
		},
		{
			MethodName: "UpdateProperty",
			Handler: unary("/"+PropertyServiceName+"/UpdateProperty",
				func(srv any, ctx context.Context, in *PropertyRequest) (any, error) {
					return srv.(PropertyServiceServer).UpdateProperty(ctx, in)
				}),
		},
		{
			MethodName: "DeleteProperty",
			Handler: unary("/"+PropertyServiceName+"/DeleteProperty",
				func(srv any, ctx context.Context, in *DeletePropertyRequest) (any, error) {
					return srv.(PropertyServiceServer).DeleteProperty(ctx, in)
				}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

var PropertyTraceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PropertyTraceServiceName,
	HandlerType: (*PropertyTraceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetPropertyTraces",
			Handler: unary("/"+PropertyTraceServiceName+"/GetPropertyTraces",
				func(srv any, ctx context.Context, in *GetPropertyTracesRequest) (any, error) {
					return srv.(PropertyTraceServiceServer).GetPropertyTraces(ctx, in)
				}),
		},
		{
			MethodName: "GetPropertyTrace",
			Handler: unary("/"+PropertyTraceServiceName+"/GetPropertyTrace",
				func(srv any, ctx context.Context, in *GetPropertyTraceRequest) (any, error) {
					return srv.(PropertyTraceServiceServer).GetPropertyTrace(ctx, in)
				}),
		},
		{
			MethodName: "CreatePropertyTrace",
			Handler: unary("/"+PropertyTraceServiceName+"/CreatePropertyTrace",
				func(srv any, ctx context.Context, in *PropertyTraceRequest) (any, error) {
					return srv.(PropertyTraceServiceServer).CreatePropertyTrace(ctx, in)
				}),
		},
		{
			MethodName: "UpdatePropertyTrace",
			Handler: unary("/"+PropertyTraceServiceName+"/UpdatePropertyTrace",
				func(srv any, ctx context.Context, in *PropertyTraceRequest) (any, error) {
					return srv.(PropertyTraceServiceServer).UpdatePropertyTrace(ctx, in)
				}),
		},
		{
			MethodName: "DeletePropertyTrace",
			Handler: unary("/"+PropertyTraceServiceName+"/DeletePropertyTrace",
				func(srv any, ctx context.Context, in *DeletePropertyTraceRequest) (any, error) {
					return srv.(PropertyTraceServiceServer).DeletePropertyTrace(ctx, in)
				}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// PropertyServiceClient is the client contract of the Property RPC surface.
type PropertyServiceClient interface {
	GetProperties(ctx context.Context, in *GetPropertiesRequest, opts ...grpc.CallOption) (*GetPropertiesResponse, error)
	GetProperty(ctx context.Context, in *GetPropertyRequest, opts ...grpc.CallOption) (*PropertyResponse, error)
	CreateProperty(ctx context.Context, in *PropertyRequest, opts ...grpc.CallOption) (*PropertyResponse, error)
	UpdateProperty(ctx context.Context, in *PropertyRequest, opts ...grpc.CallOption) (*PropertyResponse, error)
	DeleteProperty(ctx context.Context, in *DeletePropertyRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
}

type propertyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPropertyServiceClient(cc grpc.ClientConnInterface) PropertyServiceClient {
	return &propertyServiceClient{cc: cc}
}

func (c *propertyServiceClient) GetProperties(ctx context.Context, in *GetPropertiesRequest, opts ...grpc.CallOption) (*GetPropertiesResponse, error) {
	out := new(GetPropertiesResponse)
	if err := c.cc.Invoke(ctx, "/"+PropertyServiceName+"/GetProperties", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *propertyServiceClient) GetProperty(ctx context.Context, in *GetPropertyRequest, opts ...grpc.CallOption) (*PropertyResponse, error) {
	out := new(PropertyResponse)
	if err := c.cc.Invoke(ctx, "/"+PropertyServiceName+"/GetProperty", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *propertyServiceClient) CreateProperty(ctx context.Context, in *PropertyRequest, opts ...grpc.CallOption) (*PropertyResponse, error) {
	out := new(PropertyResponse)
	if err := c.cc.Invoke(ctx, "/"+PropertyServiceName+"/CreateProperty", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *propertyServiceClient) UpdateProperty(ctx context.Context, in *PropertyRequest, opts ...grpc.CallOption) (*PropertyResponse, error) {
	out := new(PropertyResponse)
	if err := c.cc.Invoke(ctx, "/"+PropertyServiceName+"/UpdateProperty", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *propertyServiceClient) DeleteProperty(ctx context.Context, in *DeletePropertyRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	if err := c.cc.Invoke(ctx, "/"+PropertyServiceName+"/DeleteProperty", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// PropertyTraceServiceClient is the client contract of the trace RPC surface.
type PropertyTraceServiceClient interface {
	GetPropertyTraces(ctx context.Context, in *GetPropertyTracesRequest, opts ...grpc.CallOption) (*GetPropertyTracesResponse, error)
	GetPropertyTrace(ctx context.Context, in *GetPropertyTraceRequest, opts ...grpc.CallOption) (*PropertyTraceResponse, error)
	CreatePropertyTrace(ctx context.Context, in *PropertyTraceRequest, opts ...grpc.CallOption) (*PropertyTraceResponse, error)
	UpdatePropertyTrace(ctx context.Context, in *PropertyTraceRequest, opts ...grpc.CallOption) (*PropertyTraceResponse, error)
	DeletePropertyTrace(ctx context.Context, in *DeletePropertyTraceRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
}

type propertyTraceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPropertyTraceServiceClient(cc grpc.ClientConnInterface) PropertyTraceServiceClient {
	return &propertyTraceServiceClient{cc: cc}
}

func (c *propertyTraceServiceClient) GetPropertyTraces(ctx context.Context, in *GetPropertyTracesRequest, opts ...grpc.CallOption) (*GetPropertyTracesResponse, error) {
	out := new(GetPropertyTracesResponse)
	if err := c.cc.Invoke(ctx, "/"+PropertyTraceServiceName+"/GetPropertyTraces", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *propertyTraceServiceClient) GetPropertyTrace(ctx context.Context, in *GetPropertyTraceRequest, opts ...grpc.CallOption) (*PropertyTraceResponse, error) {
	out := new(PropertyTraceResponse)
	if err := c.cc.Invoke(ctx, "/"+PropertyTraceServiceName+"/GetPropertyTrace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *propertyTraceServiceClient) CreatePropertyTrace(ctx context.Context, in *PropertyTraceRequest, opts ...grpc.CallOption) (*PropertyTraceResponse, error) {
	out := new(PropertyTraceResponse)
	if err := c.cc.Invoke(ctx, "/"+PropertyTraceServiceName+"/CreatePropertyTrace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *propertyTraceServiceClient) UpdatePropertyTrace(ctx context.Context, in *PropertyTraceRequest, opts ...grpc.CallOption) (*PropertyTraceResponse, error) {
	out := new(PropertyTraceResponse)
	if err := c.cc.Invoke(ctx, "/"+PropertyTraceServiceName+"/UpdatePropertyTrace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *propertyTraceServiceClient) DeletePropertyTrace(ctx context.Context, in *DeletePropertyTraceRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	if err := c.cc.Invoke(ctx, "/"+PropertyTraceServiceName+"/DeletePropertyTrace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
