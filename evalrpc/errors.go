package evalrpc

import (
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/varbin/function"
	"xdao.co/varbin/varbin"
)

// errorDomain tags ErrorInfo details produced by this service.
const errorDomain = "varbin.xdao.co"

const (
	reasonUnknownFunction = "UNKNOWN_FUNCTION"
	reasonNoOverload      = "NO_OVERLOAD"
)

// mapErr converts a catalog error into a gRPC status.
//
// Malformed input maps to InvalidArgument and invalid lengths to OutOfRange.
// The varbin RuleID (and expected/actual lengths) travel in an ErrorInfo
// detail so the client can rebuild the typed error.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var e *varbin.Error
	if errors.As(err, &e) {
		code := codes.InvalidArgument
		info := &errdetails.ErrorInfo{Reason: e.RuleID, Domain: errorDomain}
		if e.Kind == varbin.KindInvalidLength {
			code = codes.OutOfRange
			info.Metadata = map[string]string{
				"expected": strconv.Itoa(e.Expected),
				"actual":   strconv.Itoa(e.Actual),
			}
		}
		return withInfo(status.New(code, e.Message), info)
	}
	switch {
	case errors.Is(err, function.ErrUnknownFunction):
		return withInfo(status.New(codes.Unimplemented, err.Error()), &errdetails.ErrorInfo{Reason: reasonUnknownFunction, Domain: errorDomain})
	case errors.Is(err, function.ErrNoOverload):
		return withInfo(status.New(codes.Unimplemented, err.Error()), &errdetails.ErrorInfo{Reason: reasonNoOverload, Domain: errorDomain})
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func withInfo(st *status.Status, info *errdetails.ErrorInfo) error {
	detailed, err := st.WithDetails(info)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// mapRPC converts a gRPC status from the server back into the error the
// catalog would have returned in process.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	info := errorInfo(st)

	switch st.Code() {
	case codes.InvalidArgument:
		e := &varbin.Error{Kind: varbin.KindMalformedInput, Message: st.Message(), Cause: err}
		if info != nil {
			e.RuleID = info.GetReason()
		}
		return e
	case codes.OutOfRange:
		e := &varbin.Error{Kind: varbin.KindInvalidLength, Message: st.Message(), Cause: err}
		if info != nil {
			e.RuleID = info.GetReason()
			e.Expected, _ = strconv.Atoi(info.GetMetadata()["expected"])
			e.Actual, _ = strconv.Atoi(info.GetMetadata()["actual"])
		}
		return e
	case codes.Unimplemented:
		if info != nil && info.GetReason() == reasonNoOverload {
			return fmt.Errorf("%w: %s", function.ErrNoOverload, st.Message())
		}
		return fmt.Errorf("%w: %s", function.ErrUnknownFunction, st.Message())
	default:
		return err
	}
}

func errorInfo(st *status.Status) *errdetails.ErrorInfo {
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == errorDomain {
			return info
		}
	}
	return nil
}
