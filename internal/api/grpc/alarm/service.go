package alarm

import (
	"context"

	"google.golang.org/grpc"

	"github.com/oshokin/clockrobustus/internal/api/grpc/codec"
	domain "github.com/oshokin/clockrobustus/internal/domain/alarm"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "clockrobustus.v1.AlarmService"

// Full method names.
const (
	ListAlarmsMethod  = "/" + ServiceName + "/ListAlarms"
	UpsertAlarmMethod = "/" + ServiceName + "/UpsertAlarm"
	DeleteAlarmMethod = "/" + ServiceName + "/DeleteAlarm"
)

// ListAlarmsRequest asks for every stored alarm.
type ListAlarmsRequest struct {
	RequestingActor *domain.Actor `json:"requestingActor,omitempty"`
}

// ListAlarmsResponse carries the stored alarms in store order.
type ListAlarmsResponse struct {
	Alarms []domain.Alarm `json:"alarms"`
}

// UpsertAlarmRequest saves one alarm: insert without id, update with id.
type UpsertAlarmRequest struct {
	Actor *domain.Actor `json:"actor,omitempty"`
	Alarm *domain.Alarm `json:"alarm"`
}

// UpsertAlarmResponse is empty; a new id is visible through ListAlarms.
type UpsertAlarmResponse struct{}

// DeleteAlarmRequest removes one alarm by value; the alarm must carry an id.
type DeleteAlarmRequest struct {
	Actor *domain.Actor `json:"actor,omitempty"`
	Alarm *domain.Alarm `json:"alarm"`
}

// DeleteAlarmResponse is empty.
type DeleteAlarmResponse struct{}

// AlarmServiceServer is the server API of the alarm service.
type AlarmServiceServer interface {
	ListAlarms(ctx context.Context, req *ListAlarmsRequest) (*ListAlarmsResponse, error)
	UpsertAlarm(ctx context.Context, req *UpsertAlarmRequest) (*UpsertAlarmResponse, error)
	DeleteAlarm(ctx context.Context, req *DeleteAlarmRequest) (*DeleteAlarmResponse, error)
}

// RegisterAlarmServiceServer registers srv on s.
func RegisterAlarmServiceServer(s grpc.ServiceRegistrar, srv AlarmServiceServer) {
	s.RegisterService(&alarmServiceDesc, srv)
}

//nolint:gochecknoglobals // gRPC service descriptors are package-level by convention.
var alarmServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AlarmServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListAlarms", Handler: listAlarmsHandler},
		{MethodName: "UpsertAlarm", Handler: upsertAlarmHandler},
		{MethodName: "DeleteAlarm", Handler: deleteAlarmHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "clockrobustus/v1/alarm",
}

func listAlarmsHandler(
	srv any,
	ctx context.Context, //nolint:revive // Signature is fixed by grpc.MethodDesc.
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ListAlarmsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AlarmServiceServer).ListAlarms(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListAlarmsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlarmServiceServer).ListAlarms(ctx, req.(*ListAlarmsRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func upsertAlarmHandler(
	srv any,
	ctx context.Context, //nolint:revive // Signature is fixed by grpc.MethodDesc.
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(UpsertAlarmRequest)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AlarmServiceServer).UpsertAlarm(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UpsertAlarmMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlarmServiceServer).UpsertAlarm(ctx, req.(*UpsertAlarmRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func deleteAlarmHandler(
	srv any,
	ctx context.Context, //nolint:revive // Signature is fixed by grpc.MethodDesc.
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(DeleteAlarmRequest)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AlarmServiceServer).DeleteAlarm(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DeleteAlarmMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlarmServiceServer).DeleteAlarm(ctx, req.(*DeleteAlarmRequest))
	}

	return interceptor(ctx, in, info, handler)
}

// AlarmServiceClient is the client API of the alarm service.
type AlarmServiceClient interface {
	ListAlarms(ctx context.Context, in *ListAlarmsRequest, opts ...grpc.CallOption) (*ListAlarmsResponse, error)
	UpsertAlarm(ctx context.Context, in *UpsertAlarmRequest, opts ...grpc.CallOption) (*UpsertAlarmResponse, error)
	DeleteAlarm(ctx context.Context, in *DeleteAlarmRequest, opts ...grpc.CallOption) (*DeleteAlarmResponse, error)
}

type alarmServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAlarmServiceClient returns a client that speaks the JSON codec over cc.
func NewAlarmServiceClient(cc grpc.ClientConnInterface) AlarmServiceClient {
	return &alarmServiceClient{cc: cc}
}

func (c *alarmServiceClient) ListAlarms(
	ctx context.Context,
	in *ListAlarmsRequest,
	opts ...grpc.CallOption,
) (*ListAlarmsResponse, error) {
	out := new(ListAlarmsResponse)
	if err := c.cc.Invoke(ctx, ListAlarmsMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *alarmServiceClient) UpsertAlarm(
	ctx context.Context,
	in *UpsertAlarmRequest,
	opts ...grpc.CallOption,
) (*UpsertAlarmResponse, error) {
	out := new(UpsertAlarmResponse)
	if err := c.cc.Invoke(ctx, UpsertAlarmMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *alarmServiceClient) DeleteAlarm(
	ctx context.Context,
	in *DeleteAlarmRequest,
	opts ...grpc.CallOption,
) (*DeleteAlarmResponse, error) {
	out := new(DeleteAlarmResponse)
	if err := c.cc.Invoke(ctx, DeleteAlarmMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}

	return out, nil
}

// withCodec prepends the JSON content-subtype to the caller's options.
func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
}
