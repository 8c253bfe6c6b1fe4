package model

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{
			name:     "zero is the unknown sentinel",
			bytes:    0,
			expected: UnknownSizeLabel,
		},
		{
			name:     "negative is the unknown sentinel",
			bytes:    -1,
			expected: UnknownSizeLabel,
		},
		{
			name:     "single byte",
			bytes:    1,
			expected: "1.0 B",
		},
		{
			name:     "below one kilobyte stays in bytes",
			bytes:    1023,
			expected: "1023.0 B",
		},
		{
			name:     "exact kilobyte",
			bytes:    1024,
			expected: "1.0 KB",
		},
		{
			name:     "kilobytes with fraction",
			bytes:    1536,
			expected: "1.5 KB",
		},
		{
			name:     "megabytes",
			bytes:    5 * 1024 * 1024,
			expected: "5.0 MB",
		},
		{
			name:     "gigabytes",
			bytes:    1610612736, // 1.5 GiB
			expected: "1.5 GB",
		},
		{
			name:     "terabytes",
			bytes:    2 * 1024 * 1024 * 1024 * 1024,
			expected: "2.0 TB",
		},
		{
			name:     "beyond terabytes stays in TB",
			bytes:    3 * 1024 * 1024 * 1024 * 1024 * 1024,
			expected: "3072.0 TB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.expected {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.expected)
			}
		})
	}
}
