// Package s3 provides a client for S3-compatible object storage.
//
// It is used to mirror generated artifacts to a bucket: the bucket is
// created on first use and objects are uploaded whole. Endpoints other than
// AWS (MinIO, Hetzner, R2) are addressed with path-style URLs.
package s3
