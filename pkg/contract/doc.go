// Package contract embeds the OpenAPI description of the document generation
// backend and resolves each form type to the endpoint it posts to. The engine
// consumes only this request/response contract and never inspects how the
// backend composes documents.
package contract
