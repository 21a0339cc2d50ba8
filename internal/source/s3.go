// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/jcmp/jcmp/internal/aws"
	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/log"
)

// parseS3URI splits s3://bucket/key/path into bucket and key.
func parseS3URI(spec string) (string, string, error) {
	rest := strings.TrimPrefix(spec, "s3://")
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q, expected s3://bucket/key", spec)
	}
	return bucket, key, nil
}

func loadS3(ctx context.Context, spec string) ([]byte, error) {
	bucket, key, err := parseS3URI(spec)
	if err != nil {
		return nil, err
	}

	// Region/profile fall through to the ambient AWS chain unless pinned
	// in config.
	var cfgOpts []awsx.Option
	if region, _ := config.GetString("s3.region", ""); region != "" {
		cfgOpts = append(cfgOpts, awsx.WithRegion(region))
	}
	if profile, _ := config.GetString("s3.profile", ""); profile != "" {
		cfgOpts = append(cfgOpts, awsx.WithProfile(profile))
	}

	cfg, err := awsx.LoadAWSConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	svc := awsx.NewS3(cfg)
	result, err := svc.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object %s: %w", spec, err)
	}
	defer result.Body.Close()

	raw, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object %s: %w", spec, err)
	}
	log.Debugf("s3 object read: bucket=%s, key=%s, bytes=%d", bucket, key, len(raw))
	return raw, nil
}
