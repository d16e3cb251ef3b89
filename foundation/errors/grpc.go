package errors

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// violationReasonPrefix carries violation reasons through ErrorInfo metadata,
// since BadRequest only has room for field and description.
const violationReasonPrefix = "_errors.violation_reason."

// ToGRPC converts the response into a status error with ErrorInfo and, for
// InvalidArgument, BadRequest field violations.
func (e ErrorResponse) ToGRPC() error {
	st := status.New(e.Code, e.Message)

	if ei := e.errorInfo(); ei != nil {
		if withInfo, err := st.WithDetails(ei); err == nil {
			st = withInfo
		}
	}
	if br := e.badRequest(); br != nil {
		if withBR, err := st.WithDetails(br); err == nil {
			st = withBR
		}
	}
	return st.Err()
}

func (e ErrorResponse) errorInfo() *errdetails.ErrorInfo {
	metadata := cloneDetails(e.Details)
	for _, v := range e.Violations {
		if v.Field == "" || v.Reason == "" {
			continue
		}
		if metadata == nil {
			metadata = map[string]string{}
		}
		metadata[violationReasonPrefix+v.Field] = v.Reason
	}
	if e.Reason == "" && e.Domain == "" && len(metadata) == 0 {
		return nil
	}
	return &errdetails.ErrorInfo{Reason: string(e.Reason), Domain: e.Domain, Metadata: metadata}
}

func (e ErrorResponse) badRequest() *errdetails.BadRequest {
	if e.Code != codes.InvalidArgument || len(e.Violations) == 0 {
		return nil
	}
	br := &errdetails.BadRequest{
		FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(e.Violations)),
	}
	for _, v := range e.Violations {
		desc := v.Description
		if desc == "" {
			desc = v.Reason
		}
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: desc,
		})
	}
	return br
}

// FromGRPC is the inverse of ToGRPC. Non-status errors become Unknown.
func FromGRPC(err error) ErrorResponse {
	st, ok := status.FromError(err)
	if !ok {
		return Unknown()
	}

	out := New(st.Message(), st.Code(), nil)
	reasons := map[string]string{}
	var violations []FieldViolation

	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			out.Reason = Reason(x.GetReason())
			out.Domain = x.GetDomain()
			for k, v := range x.GetMetadata() {
				if field, ok := strings.CutPrefix(k, violationReasonPrefix); ok {
					if field != "" {
						reasons[field] = v
					}
					continue
				}
				out = out.WithDetail(k, v)
			}
		case *errdetails.BadRequest:
			for _, fv := range x.GetFieldViolations() {
				violations = append(violations, FieldViolation{Field: fv.GetField(), Description: fv.GetDescription()})
			}
		}
	}

	for i := range violations {
		violations[i].Reason = reasons[violations[i].Field]
	}
	return out.WithViolations(violations)
}
