package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/creature-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "creature not found",
			expected: "NOT_FOUND: creature not found",
		},
		{
			name:     "data format error",
			code:     errors.CodeDataFormat,
			message:  "stat list too short",
			expected: "DATA_FORMAT: stat list too short",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("no such creature").WithMeta("name", "missingno")
	wrapped := errors.Wrap(baseErr, "failed to resolve creature")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to resolve creature", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Equal("missingno", errors.GetMeta(wrapped)["name"])
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	baseErr := fmt.Errorf("connection reset")
	wrapped := errors.Wrap(baseErr, "provider call failed")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.True(errors.IsInternal(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("unexpected EOF")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeDataFormat, "malformed creature record")

	s.True(errors.IsDataFormat(wrapped))
	s.Equal("malformed creature record", errors.GetMessage(wrapped))
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.Is(errors.Wrap(errors.DataFormat("a"), "b"), errors.DataFormat("c")))
	s.False(errors.Is(errors.NotFound("a"), errors.DataFormat("a")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeNotFound, errors.GetCode(errors.Wrap(errors.NotFound("x"), "y")))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeDataFormat, 502},
		{errors.CodeInternal, 500},
		{errors.CodeUnavailable, 503},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.DataFormatf("creature %q has only %d stats", "ditto", 4).
		WithMeta("creature", "ditto").
		WithMeta("stat_count", 4)

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.DataLoss, st.Code())
	s.Equal(`creature "ditto" has only 4 stats`, st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsDataFormat(back))
	s.Equal("ditto", errors.GetMeta(back)["creature"])
	s.Equal(float64(4), errors.GetMeta(back)["stat_count"])
}

func (s *ErrorsTestSuite) TestFromGRPCErrorWithoutDetails() {
	err := errors.FromGRPCError(status.Error(codes.InvalidArgument, "bad input"))
	s.True(errors.IsInvalidArgument(err))
	s.Equal("bad input", errors.GetMessage(err))
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlainError() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
}
