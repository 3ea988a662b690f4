package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagpt/pharmagpt/internal/llm"
	"github.com/pharmagpt/pharmagpt/internal/vectorstore"
)

func TestAssemble_MessageOrder(t *testing.T) {
	retrieved := vectorstore.QueryResult{Documents: []string{"doc one"}}
	history := []llm.Message{{Role: llm.RoleUser, Content: "a"}}

	messages := Assemble("b", retrieved, history)

	require.Len(t, messages, 3)
	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "a"}, messages[1])
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "b"}, messages[2])
}

func TestAssemble_ContextJoinedWithSeparator(t *testing.T) {
	retrieved := vectorstore.QueryResult{
		Documents: []string{"first document", "second document"},
	}

	messages := Assemble("q", retrieved, nil)

	require.NotEmpty(t, messages)
	system := messages[0].Content
	assert.Contains(t, system, "first document\n---\nsecond document")
}

func TestAssemble_SystemDirectives(t *testing.T) {
	messages := Assemble("q", vectorstore.QueryResult{Documents: []string{"ctx"}}, nil)

	system := messages[0].Content
	assert.Contains(t, system, "PharmaGPT")
	assert.Contains(t, system, "say you don't know")
	assert.Contains(t, system, "safety warnings")
	assert.Contains(t, system, "not medical advice")
	assert.Contains(t, system, "Context:\nctx")
}

func TestAssemble_HistoryPassesThroughVerbatim(t *testing.T) {
	history := []llm.Message{
		{Role: "user", Content: "first"},
		{Role: "assistant", Content: "second"},
		{Role: "weird-role", Content: "third"}, // no role validation
	}

	messages := Assemble("q", vectorstore.QueryResult{}, history)

	require.Len(t, messages, 5)
	assert.Equal(t, history, messages[1:4])
}

func TestAssemble_EmptyRetrievalStillProducesSystemMessage(t *testing.T) {
	messages := Assemble("q", vectorstore.QueryResult{}, nil)

	require.Len(t, messages, 2)
	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, "Context:\n")
}
