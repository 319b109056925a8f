package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewError tests the basic creation of errors.
func TestNewError(t *testing.T) {
	tests := []struct {
		name    string
		code    ErrorCode
		message string
	}{
		{
			name:    "InvalidConfig",
			code:    InvalidConfig,
			message: "invalid engine configuration",
		},
		{
			name:    "MissingComponent",
			code:    MissingComponent,
			message: "no generator supplied",
		},
		{
			name:    "EvaluationFailed",
			code:    EvaluationFailed,
			message: "evaluation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message)

			customErr, ok := err.(*Error)

			assert.True(t, ok, "should be a custom *Error")
			assert.Equal(t, tt.code, customErr.Code())
			assert.Equal(t, tt.message, customErr.Error())

			// New errors carry no original error
			assert.Nil(t, customErr.Unwrap())
		})
	}
}

// TestWrapError tests error wrapping functionality.
func TestWrapError(t *testing.T) {
	originalErr := stderrors.New("original error")

	tests := []struct {
		name       string
		err        error
		code       ErrorCode
		wrapMsg    string
		expectNil  bool
		expectCode ErrorCode
	}{
		{
			name:       "Wrap normal error",
			err:        originalErr,
			code:       StorageFailed,
			wrapMsg:    "recording generation",
			expectNil:  false,
			expectCode: StorageFailed,
		},
		{
			name:      "Wrap nil error",
			err:       nil,
			code:      StorageFailed,
			wrapMsg:   "recording generation",
			expectNil: true,
		},
		{
			name:       "Wrap custom error",
			err:        New(InvalidConfig, "bad option"),
			code:       ValidationFailed,
			wrapMsg:    "loading config",
			expectNil:  false,
			expectCode: ValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.code, tt.wrapMsg)
			if tt.expectNil {
				assert.Nil(t, wrapped)
				return
			}

			require.NotNil(t, wrapped)
			customErr, ok := wrapped.(*Error)
			require.True(t, ok)
			assert.Equal(t, tt.expectCode, customErr.Code())
			assert.Contains(t, wrapped.Error(), tt.wrapMsg)
			assert.Equal(t, tt.err, customErr.Unwrap())
		})
	}
}

// TestWithFields tests attaching structured context.
func TestWithFields(t *testing.T) {
	t.Run("fields on custom error", func(t *testing.T) {
		err := New(EvaluationFailed, "evaluator returned short fitness list")
		err = WithFields(err, Fields{"generation": 3, "expected": 10, "got": 8})

		customErr, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, EvaluationFailed, customErr.Code())
		assert.Equal(t, 3, customErr.Fields()["generation"])
		assert.Contains(t, err.Error(), "generation=3")
	})

	t.Run("fields on plain error", func(t *testing.T) {
		err := WithFields(stderrors.New("boom"), Fields{"stage": "variation"})

		customErr, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, Unknown, customErr.Code())
		assert.Equal(t, "variation", customErr.Fields()["stage"])
	})

	t.Run("fields are copied", func(t *testing.T) {
		err := WithFields(New(Unknown, "x"), Fields{"a": 1})
		fields := err.(*Error).Fields()
		fields["a"] = 2
		assert.Equal(t, 1, err.(*Error).Fields()["a"])
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, WithFields(nil, Fields{"a": 1}))
	})
}

// TestErrorMatching tests errors.Is and errors.As support.
func TestErrorMatching(t *testing.T) {
	err := Wrap(stderrors.New("root"), Timeout, "evaluation timed out")

	assert.True(t, stderrors.Is(err, New(Timeout, "anything")))
	assert.False(t, stderrors.Is(err, New(Canceled, "anything")))

	var target *Error
	require.True(t, stderrors.As(err, &target))
	assert.Equal(t, Timeout, target.Code())
}
