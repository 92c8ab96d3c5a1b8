package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Operation
		wantErr bool
	}{
		{name: "add", input: "add", want: OperationAdd},
		{name: "remove", input: "remove", want: OperationRemove},
		{name: "set", input: "set", want: OperationSet},
		{name: "clear", input: "clear", want: OperationClear},
		{name: "empty string", input: "", wantErr: true},
		{name: "unknown operation", input: "delete", wantErr: true},
		{name: "case sensitive", input: "Add", wantErr: true},
		{name: "whitespace is not trimmed", input: " add", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperation(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOperation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperationRequiresLabels(t *testing.T) {
	assert.True(t, OperationAdd.RequiresLabels())
	assert.True(t, OperationRemove.RequiresLabels())
	assert.False(t, OperationSet.RequiresLabels())
	assert.False(t, OperationClear.RequiresLabels())
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "add", OperationAdd.String())
	assert.Equal(t, "clear", OperationClear.String())
}
