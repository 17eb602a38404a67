package openapi

// This package contains code generated from the OpenAPI document at
// openapi/mistral.yaml. Do not hand-edit the *.gen.go files; regenerate
// them instead with:
//
//	go generate ./...
//
// or via the harness CLI, which validates the document and fully replaces
// the previous output first:
//
//	go run ./cmd/mistral-e2e generate

//go:generate go tool oapi-codegen --config=types.yaml ../../openapi/mistral.yaml
//go:generate go tool oapi-codegen --config=client.yaml ../../openapi/mistral.yaml
