// Package prompt merges retrieved context, conversation history and the
// fixed policy directives into the message sequence sent to the completion
// service.
package prompt

import (
	"fmt"
	"strings"

	"github.com/pharmagpt/pharmagpt/internal/llm"
	"github.com/pharmagpt/pharmagpt/internal/vectorstore"
)

// contextSeparator joins the retrieved documents into one context block.
const contextSeparator = "\n---\n"

// systemTemplate carries the fixed policy directives: answer from the given
// context only, admit what the context does not cover, always surface
// safety warnings, format with Markdown, and state the disclaimer.
const systemTemplate = "You are PharmaGPT, a professional medical assistant. Use the following context to answer the user's question. " +
	"If the information is not in the context, say you don't know based on the current database. " +
	"ALWAYS include safety warnings if applicable. " +
	"Format your response in composed Markdown, using tables, bullet points, and bold text where appropriate. " +
	"DISCLAIMER: State that this is not medical advice.\n\n" +
	"Context:\n%s"

// Assemble builds the message sequence for one chat turn.
//
// The order is always [system, ...history in original order, final user
// message]. History turns pass through verbatim — roles and content are not
// validated, reordered or deduplicated.
func Assemble(queryText string, retrieved vectorstore.QueryResult, history []llm.Message) []llm.Message {
	context := strings.Join(retrieved.Documents, contextSeparator)

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: fmt.Sprintf(systemTemplate, context),
	})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: queryText,
	})

	return messages
}
