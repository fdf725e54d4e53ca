// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import "testing"

func TestNew_UnconfiguredReturnsNil(t *testing.T) {
	tests := []struct {
		name                           string
		endpoint, accessKey, secretKey string
	}{
		{"all empty", "", "", ""},
		{"no endpoint", "", "ak", "sk"},
		{"no access key", "https://minio.internal", "", "sk"},
		{"no secret key", "https://minio.internal", "ak", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.endpoint, "us-east-1", tt.accessKey, tt.secretKey, "bucket", "")
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if c != nil {
				t.Error("incomplete config must yield a nil client, not an error")
			}
		})
	}
}

func TestPublicFileURL(t *testing.T) {
	c, err := New("https://minio.internal/", "us-east-1", "ak", "sk", "siteforge-public", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c == nil {
		t.Fatal("expected a client")
	}

	// Path-style endpoint URL; trailing slash trimmed.
	if got, want := c.PublicFileURL("heroes/abc.png"), "https://minio.internal/siteforge-public/heroes/abc.png"; got != want {
		t.Errorf("PublicFileURL = %q, want %q", got, want)
	}
}

func TestPublicFileURL_PrefersCDN(t *testing.T) {
	c, err := New("https://minio.internal", "us-east-1", "ak", "sk", "siteforge-public", "https://cdn.siteforge.example/")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, want := c.PublicFileURL("heroes/abc.png"), "https://cdn.siteforge.example/heroes/abc.png"; got != want {
		t.Errorf("PublicFileURL = %q, want %q", got, want)
	}
}
