package object

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextCallFunc(t *testing.T) {
	callFunc, ok := GetCallFunc(context.Background())
	require.False(t, ok)
	require.Nil(t, callFunc)

	rt := NewRuntime()
	answer := rt.NewStr("42")
	ctx := WithCallFunc(context.Background(),
		func(ctx context.Context, fn Object, args []Object) (Object, error) {
			return answer, nil
		})
	callFunc, ok = GetCallFunc(ctx)
	require.True(t, ok)
	require.NotNil(t, callFunc)

	result, err := callFunc(ctx, rt.None(), nil)
	require.Nil(t, err)
	require.Same(t, answer, result)
}

func TestContextCallFuncNil(t *testing.T) {
	ctx := WithCallFunc(context.Background(), nil)
	_, ok := GetCallFunc(ctx)
	require.False(t, ok)
}
