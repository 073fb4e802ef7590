package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-qrform/pkg/model"
)

func TestForm_CancelRemovesListener(t *testing.T) {
	t.Parallel()

	form := NewForm(model.FieldName)
	var kept []string
	keep := form.OnFieldChange(func(_ model.FieldID, _, new string) {
		kept = append(kept, new)
	})
	for i := 0; i < 10; i++ {
		form.OnFieldChange(func(model.FieldID, string, string) {}).Cancel()
	}
	assert.Len(t, form.listeners, 1)

	require.NoError(t, form.Set(model.FieldName, "Ada"))
	assert.Equal(t, []string{"Ada"}, kept)

	keep.Cancel()
	keep.Cancel()
	assert.Empty(t, form.listeners)
}
