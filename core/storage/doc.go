// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client. The auditor uses it for two optional things:
// keeping a remote copy of every gearset backup before a correction, and
// archiving exported reports. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.PutBytes(ctx, client, "gear-auditor", "reports/run.json", data, "application/json")
package storage
