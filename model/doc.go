// Package model defines the normalized generation request/response structures
// and the Model interface implemented by provider adapters (model/openai,
// model/anthropic). A MockModel is included for tests and demos.
package model
