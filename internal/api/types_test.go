package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"compact date", "20230415", "2023-04-15"},
		{"already formatted", "2023-04-15", "2023-04-15"},
		{"empty", "", ""},
		{"not a date", "unknown", "unknown"},
		{"eight letters", "abcdefgh", "abcdefgh"},
		{"too short", "202304", "202304"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestDocument_URL(t *testing.T) {
	d := Document{PMID: "36038128"}
	require.Equal(t, "https://pubmed.ncbi.nlm.nih.gov/36038128/", d.URL())
}
