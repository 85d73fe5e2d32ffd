package arch

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Class
	}{
		{
			name: "arm64 classifies as ARM",
			raw:  "arm64",
			want: ClassARM,
		},
		{
			name: "aarch64 classifies as ARM",
			raw:  "aarch64",
			want: ClassARM,
		},
		{
			name: "amd64 classifies as other",
			raw:  "amd64",
			want: ClassOther,
		},
		{
			name: "x86_64 classifies as other",
			raw:  "x86_64",
			want: ClassOther,
		},
		{
			name: "riscv64 classifies as other",
			raw:  "riscv64",
			want: ClassOther,
		},
		{
			name: "empty string classifies as other",
			raw:  "",
			want: ClassOther,
		},
		{
			name: "uppercase ARM64 is not recognized",
			raw:  "ARM64",
			want: ClassOther,
		},
		{
			name: "32-bit arm classifies as other",
			raw:  "arm",
			want: ClassOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.raw); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHost(t *testing.T) {
	// Host must return one of the two classes regardless of platform.
	got := Host()
	if got != ClassARM && got != ClassOther {
		t.Errorf("Host() = %v, want ClassARM or ClassOther", got)
	}
}
