package checkpoint

import (
	"fmt"
	"sync"
	"testing"

	"gaia-pathfinder/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCheckpointer_PutGetDelete(t *testing.T) {
	c := NewMemoryCheckpointer()
	state := entity.NewAgentState("s1", "q")

	c.Put("s1", state)

	got, ok := c.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "q", got.CurrentQuestion)

	c.Delete("s1")
	_, ok = c.Get("s1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCheckpointer_StoresSnapshot(t *testing.T) {
	c := NewMemoryCheckpointer()
	state := entity.NewAgentState("s1", "q")
	c.Put("s1", state)

	state.AppendMessage(entity.AssistantMessage("later"))
	state.Iteration = 3

	got, ok := c.Get("s1")
	require.True(t, ok)
	assert.Len(t, got.Messages, 1)
	assert.Equal(t, 0, got.Iteration)

	got.AppendStep(entity.ErrorStep("mutated copy"))
	again, _ := c.Get("s1")
	assert.Empty(t, again.StepLog)
}

func TestMemoryCheckpointer_Concurrent(t *testing.T) {
	c := NewMemoryCheckpointer()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i)
			c.Put(id, entity.NewAgentState(id, "q"))
			_, _ = c.Get(id)
			c.Delete(id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, c.Len())
}
