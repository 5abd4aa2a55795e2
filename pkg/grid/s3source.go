//go:build s3source
// +build s3source

// This file provides an example S3-backed cell Source. It is excluded from
// regular builds because synthesized labels are the default; enable it with
// the "s3source" build tag when a bucket holds real cell content.
//
// Object layout: one object per populated cell, keyed {prefix}{row}/{letter}
// with the one-based row. Missing objects fall back to the placeholder label,
// so a sparse bucket still renders a complete slice.

package grid

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// maxCellBytes bounds a single cell read; anything larger is truncated.
const maxCellBytes = 4 * 1024

// S3Source reads cell content from an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	src := grid.NewS3Source(s3.NewFromConfig(cfg), "my-grid", "cells/")
//	engine := grid.NewEngine(grid.DefaultBounds(), src)
type S3Source struct {
	client   *s3.Client
	bucket   string
	prefix   string
	fallback LabelSource
}

// NewS3Source creates a source reading from the given bucket under prefix.
func NewS3Source(client *s3.Client, bucket, prefix string) *S3Source {
	return &S3Source{client: client, bucket: bucket, prefix: prefix}
}

// Cell fetches the object for the cell, falling back to the synthesized
// label on any miss or error. A slice fetch must never fail on one cell.
func (s *S3Source) Cell(row uint64, col uint32, letter string) string {
	key := fmt.Sprintf("%s%d/%s", s.prefix, row+1, letter)

	out, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return s.fallback.Cell(row, col, letter)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxCellBytes))
	if err != nil || len(data) == 0 {
		return s.fallback.Cell(row, col, letter)
	}
	return string(data)
}
