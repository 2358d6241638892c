package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
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
			message:  "actor not found",
			expected: "NOT_FOUND: actor not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "no monster header found",
			expected: "FAILED_PRECONDITION: no monster header found",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("foreign errors become internal", func() {
		base := fmt.Errorf("connection refused")
		wrapped := errors.Wrap(base, "failed to save actor")

		s.Assert().Equal(errors.CodeInternal, wrapped.Code)
		s.Assert().Equal("failed to save actor", wrapped.Message)
		s.Assert().Equal(base, wrapped.Unwrap())
	})

	s.Run("code and meta are preserved", func() {
		base := errors.NotFound("actor not found").WithMeta("actor_id", "a-1")
		wrapped := errors.Wrapf(base, "lookup %s", "a-1")

		s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
		s.Assert().Equal("a-1", wrapped.Meta["actor_id"])
		s.Assert().True(errors.IsNotFound(wrapped))
	})

	s.Run("wrap with code copies meta", func() {
		base := errors.Internal("boom").WithMeta("key", "v")
		wrapped := errors.WrapWithCode(base, errors.CodeUnavailable, "store down")

		s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
		s.Assert().Equal("v", wrapped.Meta["key"])
	})

	s.Run("nil stays nil", func() {
		s.Assert().Nil(errors.Wrap(nil, "unused"))
		s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "unused"))
	})
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(context.Canceled))
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.GetCode(fmt.Errorf("wrap: %w", context.DeadlineExceeded)))
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgumentf("bad %d", 1)))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err := errors.FailedPrecondition("no header")
	s.Assert().True(errors.Is(err, errors.FailedPrecondition("other message")))
	s.Assert().False(errors.Is(err, errors.NotFound("no header")))
	s.Assert().True(errors.IsFailedPrecondition(errors.Wrap(err, "import failed")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("actor not found", errors.GetMessage(errors.NotFound("actor not found")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	s.Run("code and meta survive a round trip", func() {
		err := errors.FailedPrecondition("no monster header found").WithMeta("blocks", 3)

		grpcErr := errors.ToGRPCError(err)
		st, ok := status.FromError(grpcErr)
		s.Require().True(ok)
		s.Assert().Equal(codes.FailedPrecondition, st.Code())
		s.Assert().Equal("no monster header found", st.Message())

		back := errors.FromGRPCError(grpcErr)
		s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(back))
		s.Assert().Equal("3", errors.GetMeta(back)["blocks"])
	})

	s.Run("status errors pass through", func() {
		in := status.Error(codes.NotFound, "gone")
		s.Assert().Equal(in, errors.ToGRPCError(in))
	})

	s.Run("plain errors become internal", func() {
		st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("plain")))
		s.Assert().Equal(codes.Internal, st.Code())
	})

	s.Run("nil", func() {
		s.Assert().Nil(errors.ToGRPCError(nil))
		s.Assert().Nil(errors.FromGRPCError(nil))
	})
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("MADE_UP"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
